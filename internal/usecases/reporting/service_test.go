package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teledash/analytics-api/infrastructure/repository/mocks"
	"github.com/teledash/analytics-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (WindowBuilder, *mocks.MockOrganizationRepository, *mocks.MockUsageStatisticRepository, *mocks.MockAgentPerformanceRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	orgRepo := mocks.NewMockOrganizationRepository(ctrl)
	usageRepo := mocks.NewMockUsageStatisticRepository(ctrl)
	agentPerfRepo := mocks.NewMockAgentPerformanceRepository(ctrl)

	return NewService(orgRepo, usageRepo, agentPerfRepo), orgRepo, usageRepo, agentPerfRepo
}

func knownOrg(id string) *domain.Organization {
	return &domain.Organization{ID: id, Status: domain.OrganizationStatusActive}
}

func TestService_BuildUsageWindow(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)

	t.Run("preenche lacunas com zeros e marca os pontos sintetizados", func(t *testing.T) {
		service, orgRepo, usageRepo, _ := newTestService(t)

		stored := []*domain.UsageStatistic{
			{OrganizationID: "org-1", Date: start, TotalCalls: 10, TotalRevenue: 100},
			{OrganizationID: "org-1", Date: start.AddDate(0, 0, 2), TotalCalls: 30, TotalRevenue: 300},
		}

		orgRepo.EXPECT().GetByID("org-1").Return(knownOrg("org-1"), nil)
		usageRepo.EXPECT().GetByDateRange("org-1", start, end).Return(stored, nil)

		points, err := service.BuildUsageWindow("org-1", start, end, domain.GapPolicyZeroFill)
		require.NoError(t, err)

		// Exatamente um ponto por dia, em ordem cronológica
		require.Len(t, points, 5)
		for i, point := range points {
			assert.Equal(t, start.AddDate(0, 0, i), point.Date)
		}

		assert.False(t, points[0].GapFilled)
		assert.Equal(t, 10, points[0].Stats.TotalCalls)

		assert.True(t, points[1].GapFilled)
		assert.Equal(t, 0, points[1].Stats.TotalCalls)
		assert.Equal(t, 0.0, points[1].Stats.TotalRevenue)

		assert.False(t, points[2].GapFilled)
		assert.Equal(t, 30, points[2].Stats.TotalCalls)

		assert.True(t, points[3].GapFilled)
		assert.True(t, points[4].GapFilled)
	})

	t.Run("carry-forward repete o último ponto conhecido", func(t *testing.T) {
		service, orgRepo, usageRepo, _ := newTestService(t)

		createdAt := time.Date(2025, 6, 2, 2, 15, 0, 0, time.UTC)
		stored := []*domain.UsageStatistic{
			{ID: 42, OrganizationID: "org-1", Date: start.AddDate(0, 0, 1), TotalCalls: 20, TotalSMS: 7, CreatedAt: createdAt, UpdatedAt: createdAt},
		}

		orgRepo.EXPECT().GetByID("org-1").Return(knownOrg("org-1"), nil)
		usageRepo.EXPECT().GetByDateRange("org-1", start, end).Return(stored, nil)

		points, err := service.BuildUsageWindow("org-1", start, end, domain.GapPolicyCarryForward)
		require.NoError(t, err)
		require.Len(t, points, 5)

		// Antes do primeiro ponto conhecido não há nada a repetir: zeros
		assert.True(t, points[0].GapFilled)
		assert.Equal(t, 0, points[0].Stats.TotalCalls)

		assert.False(t, points[1].GapFilled)

		// Depois, o último conhecido é repetido com a data do dia sintetizado
		assert.True(t, points[2].GapFilled)
		assert.Equal(t, 20, points[2].Stats.TotalCalls)
		assert.Equal(t, 7, points[2].Stats.TotalSMS)
		assert.Equal(t, start.AddDate(0, 0, 2), points[2].Stats.Date)

		// O ponto sintetizado repete contadores, não a identidade da linha
		assert.Equal(t, int64(0), points[2].Stats.ID)
		assert.True(t, points[2].Stats.CreatedAt.IsZero())
		assert.True(t, points[2].Stats.UpdatedAt.IsZero())
	})

	t.Run("janela de um dia funciona", func(t *testing.T) {
		service, orgRepo, usageRepo, _ := newTestService(t)

		orgRepo.EXPECT().GetByID("org-1").Return(knownOrg("org-1"), nil)
		usageRepo.EXPECT().GetByDateRange("org-1", start, start).Return(nil, nil)

		points, err := service.BuildUsageWindow("org-1", start, start, domain.GapPolicyZeroFill)
		require.NoError(t, err)
		require.Len(t, points, 1)
		assert.True(t, points[0].GapFilled)
	})

	t.Run("janela invertida é rejeitada", func(t *testing.T) {
		service, _, _, _ := newTestService(t)

		_, err := service.BuildUsageWindow("org-1", end, start, domain.GapPolicyZeroFill)
		assert.True(t, domain.IsValidationError(err))
	})

	t.Run("organização desconhecida é rejeitada", func(t *testing.T) {
		service, orgRepo, _, _ := newTestService(t)

		orgRepo.EXPECT().GetByID("ghost").Return(nil, nil)

		_, err := service.BuildUsageWindow("ghost", start, end, domain.GapPolicyZeroFill)
		assert.True(t, domain.IsValidationError(err))
	})

	t.Run("pontas são truncadas à meia-noite UTC", func(t *testing.T) {
		service, orgRepo, usageRepo, _ := newTestService(t)

		orgRepo.EXPECT().GetByID("org-1").Return(knownOrg("org-1"), nil)
		usageRepo.EXPECT().GetByDateRange("org-1", start, start).Return(nil, nil)

		points, err := service.BuildUsageWindow("org-1", start.Add(10*time.Hour), start.Add(15*time.Hour), domain.GapPolicyZeroFill)
		require.NoError(t, err)
		require.Len(t, points, 1)
		assert.Equal(t, start, points[0].Date)
	})
}

func TestService_BuildAgentWindow(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)

	t.Run("preenche lacunas preservando o marcador", func(t *testing.T) {
		service, orgRepo, _, agentPerfRepo := newTestService(t)

		score := 80.0
		stored := []*domain.AgentPerformance{
			{OrganizationID: "org-1", AgentID: "agent-1", Date: start, TicketsHandled: 5, PerformanceScore: &score},
		}

		orgRepo.EXPECT().GetByID("org-1").Return(knownOrg("org-1"), nil)
		agentPerfRepo.EXPECT().GetByDateRange("org-1", "agent-1", start, end).Return(stored, nil)

		points, err := service.BuildAgentWindow("org-1", "agent-1", start, end, domain.GapPolicyZeroFill)
		require.NoError(t, err)
		require.Len(t, points, 3)

		assert.False(t, points[0].GapFilled)
		assert.Equal(t, 5, points[0].Performance.TicketsHandled)

		assert.True(t, points[1].GapFilled)
		assert.Equal(t, 0, points[1].Performance.TicketsHandled)
		assert.Nil(t, points[1].Performance.PerformanceScore)

		assert.True(t, points[2].GapFilled)
	})

	t.Run("carry-forward repete o desempenho sem herdar a identidade da linha", func(t *testing.T) {
		service, orgRepo, _, agentPerfRepo := newTestService(t)

		score := 80.0
		createdAt := time.Date(2025, 6, 1, 3, 0, 0, 0, time.UTC)
		stored := []*domain.AgentPerformance{
			{ID: 7, OrganizationID: "org-1", AgentID: "agent-1", Date: start, TicketsHandled: 5, PerformanceScore: &score, CreatedAt: createdAt, UpdatedAt: createdAt},
		}

		orgRepo.EXPECT().GetByID("org-1").Return(knownOrg("org-1"), nil)
		agentPerfRepo.EXPECT().GetByDateRange("org-1", "agent-1", start, end).Return(stored, nil)

		points, err := service.BuildAgentWindow("org-1", "agent-1", start, end, domain.GapPolicyCarryForward)
		require.NoError(t, err)
		require.Len(t, points, 3)

		assert.True(t, points[1].GapFilled)
		assert.Equal(t, 5, points[1].Performance.TicketsHandled)
		assert.Equal(t, start.AddDate(0, 0, 1), points[1].Performance.Date)
		assert.Equal(t, int64(0), points[1].Performance.ID)
		assert.True(t, points[1].Performance.CreatedAt.IsZero())
		assert.True(t, points[1].Performance.UpdatedAt.IsZero())
	})

	t.Run("agente vazio é rejeitado", func(t *testing.T) {
		service, orgRepo, _, _ := newTestService(t)

		orgRepo.EXPECT().GetByID("org-1").Return(knownOrg("org-1"), nil)

		_, err := service.BuildAgentWindow("org-1", "", start, end, domain.GapPolicyZeroFill)
		assert.True(t, domain.IsValidationError(err))
	})
}
