package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/teledash/analytics-api/infrastructure/repository"
	"github.com/teledash/analytics-api/internal/config"
	"github.com/teledash/analytics-api/internal/domain"
	"github.com/teledash/analytics-api/internal/usecases/scoring"
	"github.com/teledash/analytics-api/pkg/utils"
)

type ChurnSweepConfig struct {
	CronSchedule      string
	MaxConcurrentJobs int
	SweepEnabled      bool
}

// ChurnSweepService recalcula periodicamente o score de churn de toda a
// base de clientes ativos, organização por organização
type ChurnSweepService struct {
	scheduler            *gocron.Scheduler
	config               ChurnSweepConfig
	orgRepo              repository.OrganizationRepository
	customerRepo         repository.CustomerRepository
	churnService         scoring.ChurnScorer
	sweepRunning         bool
	sweepMutex           sync.Mutex
	lastSweepStartedAt   time.Time
	lastSweepCompletedAt time.Time
}

func NewChurnSweepService(
	orgRepo repository.OrganizationRepository,
	customerRepo repository.CustomerRepository,
	churnService scoring.ChurnScorer,
	appConfig *config.Config,
) *ChurnSweepService {
	sweepConfig := ChurnSweepConfig{
		CronSchedule:      appConfig.ChurnSweep.CronSchedule,
		MaxConcurrentJobs: appConfig.ChurnSweep.MaxConcurrentJobs,
		SweepEnabled:      appConfig.ChurnSweep.Enabled,
	}

	scheduler := gocron.NewScheduler(time.UTC)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       sweepConfig.CronSchedule,
		"max_concurrent_jobs": sweepConfig.MaxConcurrentJobs,
		"sweep_enabled":       sweepConfig.SweepEnabled,
	}).Info("Configuração da varredura de churn carregada")

	return &ChurnSweepService{
		scheduler:    scheduler,
		config:       sweepConfig,
		orgRepo:      orgRepo,
		customerRepo: customerRepo,
		churnService: churnService,
	}
}

func (s *ChurnSweepService) Start(ctx context.Context) error {
	if !s.config.SweepEnabled {
		logrus.Info("Varredura de churn desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador da varredura de churn")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.sweepAllOrganizations()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar varredura de churn: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador da varredura de churn")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *ChurnSweepService) TriggerManualSync() {
	s.sweepMutex.Lock()
	if s.sweepRunning {
		s.sweepMutex.Unlock()
		logrus.Info("Varredura de churn já em andamento, ignorando solicitação manual")
		return
	}
	s.sweepMutex.Unlock()

	go s.sweepAllOrganizations()
}

func (s *ChurnSweepService) Status() SyncStatus {
	s.sweepMutex.Lock()
	defer s.sweepMutex.Unlock()

	return syncStatus(s.sweepRunning, s.lastSweepStartedAt, s.lastSweepCompletedAt)
}

func (s *ChurnSweepService) sweepAllOrganizations() {
	s.sweepMutex.Lock()
	if s.sweepRunning {
		s.sweepMutex.Unlock()
		logrus.Info("Varredura de churn já em andamento, ignorando")
		return
	}
	s.sweepRunning = true
	s.lastSweepStartedAt = time.Now()
	s.sweepMutex.Unlock()

	defer func() {
		s.sweepMutex.Lock()
		s.sweepRunning = false
		s.lastSweepCompletedAt = time.Now()
		s.sweepMutex.Unlock()
	}()

	runID, _ := utils.GenerateID()
	startTime := time.Now()

	logrus.WithField("run_id", runID).Info("Iniciando varredura de churn")

	organizations, err := s.orgRepo.ListByStatus([]domain.OrganizationStatus{domain.OrganizationStatusActive})
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar organizações para varredura de churn")
		return
	}

	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup

	for _, org := range organizations {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(org *domain.Organization) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			s.sweepOrganization(org)
		}(org)
	}

	wg.Wait()

	logrus.WithFields(logrus.Fields{
		"run_id":        runID,
		"organizations": len(organizations),
		"duration":      time.Since(startTime).String(),
	}).Info("Varredura de churn concluída")
}

func (s *ChurnSweepService) sweepOrganization(org *domain.Organization) {
	customers, err := s.customerRepo.ListByOrganization(org.ID, []domain.CustomerStatus{domain.CustomerStatusActive})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"organization_id": org.ID,
			"error":           err.Error(),
		}).Error("Erro ao listar clientes para varredura de churn")
		return
	}

	rescored := 0
	for _, customer := range customers {
		if _, err := s.churnService.RescoreCustomer(customer.ID); err != nil {
			logrus.WithFields(logrus.Fields{
				"organization_id": org.ID,
				"customer_id":     customer.ID,
				"error":           err.Error(),
			}).Error("Erro ao recalcular score de churn do cliente")
			continue
		}
		rescored++
	}

	logrus.WithFields(logrus.Fields{
		"organization_id": org.ID,
		"customers":       len(customers),
		"rescored":        rescored,
	}).Info("Varredura de churn da organização concluída")
}
