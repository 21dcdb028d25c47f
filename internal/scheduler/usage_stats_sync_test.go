package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teledash/analytics-api/infrastructure/repository/mocks"
	"github.com/teledash/analytics-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestClosedDaysToProcess(t *testing.T) {
	now := time.Date(2025, 6, 10, 14, 30, 0, 0, time.UTC)

	t.Run("retorna os dias fechados em ordem cronológica", func(t *testing.T) {
		days := closedDaysToProcess(3, now)

		require.Len(t, days, 3)
		assert.Equal(t, time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC), days[0])
		assert.Equal(t, time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC), days[1])
		assert.Equal(t, time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC), days[2])
	})

	t.Run("o dia corrente nunca entra no lote", func(t *testing.T) {
		today := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
		for _, day := range closedDaysToProcess(10, now) {
			assert.True(t, day.Before(today))
		}
	})

	t.Run("fusos são normalizados para UTC antes do corte", func(t *testing.T) {
		loc := time.FixedZone("UTC-5", -5*60*60)
		late := time.Date(2025, 6, 10, 22, 0, 0, 0, loc) // 03:00 UTC do dia 11

		days := closedDaysToProcess(1, late)
		require.Len(t, days, 1)
		assert.Equal(t, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), days[0])
	})
}

func TestSyncStatus(t *testing.T) {
	t.Run("timestamps zerados ficam omitidos", func(t *testing.T) {
		status := syncStatus(false, time.Time{}, time.Time{})

		assert.False(t, status.Running)
		assert.Nil(t, status.LastStartedAt)
		assert.Nil(t, status.LastCompletedAt)
	})

	t.Run("execução em andamento expõe o início", func(t *testing.T) {
		startedAt := time.Date(2025, 6, 10, 2, 0, 0, 0, time.UTC)
		status := syncStatus(true, startedAt, time.Time{})

		assert.True(t, status.Running)
		require.NotNil(t, status.LastStartedAt)
		assert.Equal(t, startedAt, *status.LastStartedAt)
		assert.Nil(t, status.LastCompletedAt)
	})
}

func TestUsageStatsSyncService_syncAllUsageStats(t *testing.T) {
	t.Run("lookback sem dias fechados encerra sem processar nem quebrar", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		orgRepo := mocks.NewMockOrganizationRepository(ctrl)
		customerRepo := mocks.NewMockCustomerRepository(ctrl)
		eventRepo := mocks.NewMockEventRepository(ctrl)
		usageRepo := mocks.NewMockUsageStatisticRepository(ctrl)

		orgRepo.EXPECT().
			ListByStatus([]domain.OrganizationStatus{domain.OrganizationStatusActive}).
			Return([]*domain.Organization{{ID: "org-1", Status: domain.OrganizationStatusActive}}, nil)

		service := &UsageStatsSyncService{
			config:       UsageStatsSyncConfig{LookbackDays: 0, MaxConcurrentJobs: 1},
			orgRepo:      orgRepo,
			customerRepo: customerRepo,
			eventRepo:    eventRepo,
			usageRepo:    usageRepo,
		}

		// Nenhuma expectativa nos repositórios de eventos: qualquer leitura
		// ou gravação derrubaria o teste
		assert.NotPanics(t, func() { service.syncAllUsageStats() })
		assert.False(t, service.Status().Running)
	})
}

func TestUsageStatsSyncService_processOrganizationDay(t *testing.T) {
	day := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)
	dayEnd := day.Add(24 * time.Hour)
	org := &domain.Organization{ID: "org-1", Status: domain.OrganizationStatusActive}

	newService := func(t *testing.T) (*UsageStatsSyncService, *mocks.MockCustomerRepository, *mocks.MockEventRepository, *mocks.MockUsageStatisticRepository) {
		ctrl := gomock.NewController(t)
		customerRepo := mocks.NewMockCustomerRepository(ctrl)
		eventRepo := mocks.NewMockEventRepository(ctrl)
		usageRepo := mocks.NewMockUsageStatisticRepository(ctrl)

		service := &UsageStatsSyncService{
			customerRepo: customerRepo,
			eventRepo:    eventRepo,
			usageRepo:    usageRepo,
		}
		return service, customerRepo, eventRepo, usageRepo
	}

	t.Run("agrega o dia e persiste por upsert", func(t *testing.T) {
		service, customerRepo, eventRepo, usageRepo := newService(t)

		duration := 120
		eventRepo.EXPECT().ListInteractions("org-1", day, dayEnd).Return([]*domain.Interaction{
			{OrganizationID: "org-1", CustomerID: "c1", Type: domain.InteractionTypeCall, DurationSeconds: &duration, StartedAt: day.Add(9 * time.Hour)},
		}, nil)
		eventRepo.EXPECT().ListTickets("org-1", day, dayEnd).Return(nil, nil)
		eventRepo.EXPECT().ListTransactions("org-1", day, dayEnd).Return([]*domain.Transaction{
			{OrganizationID: "org-1", CustomerID: "c2", Type: domain.TransactionTypeTopup, Amount: 15, CompletedAt: day.Add(10 * time.Hour)},
		}, nil)
		eventRepo.EXPECT().ListFirstSeenCustomerIDs("org-1", day, dayEnd).Return([]string{"c2"}, nil)
		customerRepo.EXPECT().ListChurnedOn("org-1", day).Return([]string{"c9"}, nil)

		usageRepo.EXPECT().SaveOrUpdate(gomock.Any()).DoAndReturn(func(stat *domain.UsageStatistic) error {
			assert.Equal(t, "org-1", stat.OrganizationID)
			assert.Equal(t, day, stat.Date)
			assert.Equal(t, 1, stat.TotalCalls)
			assert.Equal(t, int64(120), stat.TotalCallDurationSeconds)
			assert.Equal(t, 15.0, stat.TotalRevenue)
			assert.Equal(t, 2, stat.ActiveCustomers)
			assert.Equal(t, 1, stat.NewCustomers)
			assert.Equal(t, 1, stat.ChurnedCustomers)
			return nil
		})

		err := service.processOrganizationDay(org, day)
		require.NoError(t, err)
	})

	t.Run("dia sem eventos ainda grava o registro zerado", func(t *testing.T) {
		service, customerRepo, eventRepo, usageRepo := newService(t)

		eventRepo.EXPECT().ListInteractions("org-1", day, dayEnd).Return(nil, nil)
		eventRepo.EXPECT().ListTickets("org-1", day, dayEnd).Return(nil, nil)
		eventRepo.EXPECT().ListTransactions("org-1", day, dayEnd).Return(nil, nil)
		eventRepo.EXPECT().ListFirstSeenCustomerIDs("org-1", day, dayEnd).Return(nil, nil)
		customerRepo.EXPECT().ListChurnedOn("org-1", day).Return(nil, nil)

		usageRepo.EXPECT().SaveOrUpdate(gomock.Any()).DoAndReturn(func(stat *domain.UsageStatistic) error {
			assert.Equal(t, 0, stat.TotalCalls)
			assert.Equal(t, 0, stat.ActiveCustomers)
			return nil
		})

		err := service.processOrganizationDay(org, day)
		require.NoError(t, err)
	})

	t.Run("erro do repositório interrompe o dia sem gravar", func(t *testing.T) {
		service, _, eventRepo, _ := newService(t)

		eventRepo.EXPECT().ListInteractions("org-1", day, dayEnd).Return(nil, assert.AnError)

		err := service.processOrganizationDay(org, day)
		assert.Error(t, err)
	})
}
