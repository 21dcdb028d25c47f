package scoring

import (
	"time"

	"github.com/pkg/errors"
	"github.com/teledash/analytics-api/infrastructure/repository"
	"github.com/teledash/analytics-api/internal/config"
	"github.com/teledash/analytics-api/internal/domain"
	"github.com/teledash/analytics-api/pkg/log"
)

// ChurnScorer é a interface consumida pelos handlers e pela varredura agendada
type ChurnScorer interface {
	// RescoreCustomer recalcula e persiste o score de churn de um cliente
	RescoreCustomer(customerID string) (*domain.Customer, error)
	// GetCustomerChurn retorna o cliente com o score derivado atual
	GetCustomerChurn(customerID string) (*domain.Customer, error)
}

// Service monta snapshots a partir dos eventos recentes e delega o cálculo
// ao Scorer puro; a persistência do resultado fica aqui, fora do cálculo.
type Service struct {
	scorer              *Scorer
	customerRepo        repository.CustomerRepository
	eventRepo           repository.EventRepository
	complaintWindowDays int
}

func NewService(
	scorer *Scorer,
	customerRepo repository.CustomerRepository,
	eventRepo repository.EventRepository,
	cfg *config.Config,
) ChurnScorer {
	return &Service{
		scorer:              scorer,
		customerRepo:        customerRepo,
		eventRepo:           eventRepo,
		complaintWindowDays: cfg.ChurnScoring.ComplaintWindowDays,
	}
}

func (s *Service) GetCustomerChurn(customerID string) (*domain.Customer, error) {
	customer, err := s.customerRepo.GetByID(customerID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar cliente")
	}
	if customer == nil {
		return nil, &domain.ValidationError{Field: "customer_id", Reason: "cliente não encontrado: " + customerID}
	}
	return customer, nil
}

func (s *Service) RescoreCustomer(customerID string) (*domain.Customer, error) {
	customer, err := s.GetCustomerChurn(customerID)
	if err != nil {
		return nil, err
	}

	snapshot, err := s.SnapshotFor(customer, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	score, level, err := s.scorer.Score(snapshot)
	if err != nil {
		return nil, err
	}

	if err := s.customerRepo.UpdateChurn(customer.ID, score, level); err != nil {
		return nil, errors.Wrap(err, "erro ao persistir score de churn")
	}

	log.L.WithFields(log.Fields{
		"customer_id": customer.ID,
		"churn_score": score,
		"churn_risk":  level,
	}).Debug("Score de churn recalculado")

	customer.ChurnScore = score
	customer.ChurnRisk = level
	return customer, nil
}

// SnapshotFor monta o snapshot de score a partir do cadastro do cliente e
// dos eventos recentes: reclamações na janela configurada e recência da
// última transação. Cliente sem transação registrada fica no default neutro.
func (s *Service) SnapshotFor(customer *domain.Customer, now time.Time) (Snapshot, error) {
	since := now.AddDate(0, 0, -s.complaintWindowDays)

	complaints, err := s.eventRepo.CountComplaintTickets(customer.OrganizationID, customer.ID, since)
	if err != nil {
		return Snapshot{}, errors.Wrap(err, "erro ao contar reclamações recentes")
	}

	lastTx, err := s.eventRepo.LastTransactionAt(customer.OrganizationID, customer.ID)
	if err != nil {
		return Snapshot{}, errors.Wrap(err, "erro ao buscar última transação")
	}

	daysSinceTx := 0.0
	if lastTx != nil && now.After(*lastTx) {
		daysSinceTx = now.Sub(*lastTx).Hours() / 24
	}

	return Snapshot{
		TenureMonths:             customer.TenureMonths(now),
		AccountBalance:           customer.AccountBalance,
		RecentComplaints:         complaints,
		DaysSinceLastTransaction: daysSinceTx,
		PlanType:                 customer.PlanType,
	}, nil
}
