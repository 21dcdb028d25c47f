package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teledash/analytics-api/infrastructure/repository/mocks"
	"github.com/teledash/analytics-api/internal/config"
	"github.com/teledash/analytics-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (*Service, *mocks.MockCustomerRepository, *mocks.MockEventRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	customerRepo := mocks.NewMockCustomerRepository(ctrl)
	eventRepo := mocks.NewMockEventRepository(ctrl)

	scorer, err := NewScorer(defaultWeights())
	require.NoError(t, err)

	cfg := &config.Config{ChurnScoring: defaultWeights()}
	service := NewService(scorer, customerRepo, eventRepo, cfg).(*Service)

	return service, customerRepo, eventRepo
}

func TestService_RescoreCustomer(t *testing.T) {
	t.Run("recalcula e persiste o score", func(t *testing.T) {
		service, customerRepo, eventRepo := newTestService(t)

		now := time.Now().UTC()
		customer := &domain.Customer{
			ID:             "cust-1",
			OrganizationID: "org-1",
			PlanType:       domain.PlanTypePostpaid,
			Status:         domain.CustomerStatusActive,
			AccountBalance: 5,
			ActivatedAt:    now.AddDate(0, 0, -60),
		}

		customerRepo.EXPECT().GetByID("cust-1").Return(customer, nil)
		eventRepo.EXPECT().
			CountComplaintTickets("org-1", "cust-1", gomock.Any()).
			Return(6, nil)
		eventRepo.EXPECT().
			LastTransactionAt("org-1", "cust-1").
			Return(nil, nil)

		// Sem transação registrada a recência fica no default neutro (0 dias):
		// complaints 1.0, balance 0.95, recency 0, tenure 1 - 2/24
		customerRepo.EXPECT().
			UpdateChurn("cust-1", 72.75, domain.ChurnRiskHigh).
			Return(nil)

		rescored, err := service.RescoreCustomer("cust-1")
		require.NoError(t, err)
		assert.Equal(t, 72.75, rescored.ChurnScore)
		assert.Equal(t, domain.ChurnRiskHigh, rescored.ChurnRisk)
	})

	t.Run("recência conta a partir da última transação", func(t *testing.T) {
		service, customerRepo, eventRepo := newTestService(t)

		now := time.Now().UTC()
		customer := &domain.Customer{
			ID:             "cust-2",
			OrganizationID: "org-1",
			PlanType:       domain.PlanTypePrepaid,
			AccountBalance: 50,
			ActivatedAt:    now.AddDate(0, -36, 0),
		}
		lastTx := now.AddDate(0, 0, -60)

		customerRepo.EXPECT().GetByID("cust-2").Return(customer, nil)
		eventRepo.EXPECT().
			CountComplaintTickets("org-1", "cust-2", gomock.Any()).
			Return(0, nil)
		eventRepo.EXPECT().
			LastTransactionAt("org-1", "cust-2").
			Return(&lastTx, nil)
		customerRepo.EXPECT().
			UpdateChurn("cust-2", gomock.Any(), gomock.Any()).
			Return(nil)

		rescored, err := service.RescoreCustomer("cust-2")
		require.NoError(t, err)

		// Pré-pago com 60 dias sem transação satura a recência: 0.25 de peso inteiro
		assert.GreaterOrEqual(t, rescored.ChurnScore, 25.0)
	})

	t.Run("cliente inexistente é erro de validação", func(t *testing.T) {
		service, customerRepo, _ := newTestService(t)

		customerRepo.EXPECT().GetByID("ghost").Return(nil, nil)

		_, err := service.RescoreCustomer("ghost")
		assert.True(t, domain.IsValidationError(err))
	})
}

func TestService_SnapshotFor(t *testing.T) {
	service, _, eventRepo := newTestService(t)

	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	customer := &domain.Customer{
		ID:             "cust-3",
		OrganizationID: "org-1",
		PlanType:       domain.PlanTypePostpaid,
		AccountBalance: 42,
		ActivatedAt:    now.AddDate(0, 0, -300),
	}
	lastTx := now.AddDate(0, 0, -12)

	eventRepo.EXPECT().
		CountComplaintTickets("org-1", "cust-3", now.AddDate(0, 0, -30)).
		Return(2, nil)
	eventRepo.EXPECT().
		LastTransactionAt("org-1", "cust-3").
		Return(&lastTx, nil)

	snap, err := service.SnapshotFor(customer, now)
	require.NoError(t, err)

	assert.Equal(t, 2, snap.RecentComplaints)
	assert.Equal(t, 42.0, snap.AccountBalance)
	assert.InDelta(t, 12.0, snap.DaysSinceLastTransaction, 0.001)
	assert.InDelta(t, 10.0, snap.TenureMonths, 0.001)
	assert.Equal(t, domain.PlanTypePostpaid, snap.PlanType)
}
