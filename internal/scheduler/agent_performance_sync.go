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
	"github.com/teledash/analytics-api/internal/usecases/aggregating"
	"github.com/teledash/analytics-api/pkg/utils"
)

type AgentPerformanceSyncConfig struct {
	CronSchedule      string
	LookbackDays      int
	MaxConcurrentJobs int
	SyncEnabled       bool
}

// AgentPerformanceSyncService agrega o desempenho diário por
// (organização, agente). Os agentes de cada dia são descobertos a partir
// dos próprios eventos: quem não atuou no dia não ganha linha.
type AgentPerformanceSyncService struct {
	scheduler           *gocron.Scheduler
	config              AgentPerformanceSyncConfig
	scoringWeights      config.AgentScoring
	orgRepo             repository.OrganizationRepository
	eventRepo           repository.EventRepository
	agentPerfRepo       repository.AgentPerformanceRepository
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewAgentPerformanceSyncService(
	orgRepo repository.OrganizationRepository,
	eventRepo repository.EventRepository,
	agentPerfRepo repository.AgentPerformanceRepository,
	appConfig *config.Config,
) *AgentPerformanceSyncService {
	syncConfig := AgentPerformanceSyncConfig{
		CronSchedule:      appConfig.AgentPerformanceSync.CronSchedule,
		LookbackDays:      appConfig.AgentPerformanceSync.LookbackDays,
		MaxConcurrentJobs: appConfig.AgentPerformanceSync.MaxConcurrentJobs,
		SyncEnabled:       appConfig.AgentPerformanceSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.UTC)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       syncConfig.CronSchedule,
		"lookback_days":       syncConfig.LookbackDays,
		"max_concurrent_jobs": syncConfig.MaxConcurrentJobs,
		"sync_enabled":        syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de desempenho de agentes carregada")

	return &AgentPerformanceSyncService{
		scheduler:      scheduler,
		config:         syncConfig,
		scoringWeights: appConfig.AgentScoring,
		orgRepo:        orgRepo,
		eventRepo:      eventRepo,
		agentPerfRepo:  agentPerfRepo,
	}
}

func (s *AgentPerformanceSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de desempenho de agentes desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de desempenho de agentes")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllAgentPerformance()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de desempenho de agentes: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de desempenho de agentes")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *AgentPerformanceSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de desempenho de agentes já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	go s.syncAllAgentPerformance()
}

func (s *AgentPerformanceSyncService) Status() SyncStatus {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return syncStatus(s.syncRunning, s.lastSyncStartedAt, s.lastSyncCompletedAt)
}

func (s *AgentPerformanceSyncService) syncAllAgentPerformance() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de desempenho de agentes já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	runID, _ := utils.GenerateID()
	startTime := time.Now()

	logrus.WithField("run_id", runID).Info("Iniciando sincronização de desempenho de agentes")

	organizations, err := s.orgRepo.ListByStatus([]domain.OrganizationStatus{domain.OrganizationStatusActive})
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar organizações para sincronização de desempenho de agentes")
		return
	}

	if len(organizations) == 0 {
		logrus.Info("Nenhuma organização ativa encontrada para sincronização de desempenho de agentes")
		return
	}

	days := closedDaysToProcess(s.config.LookbackDays, time.Now())

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

			for _, day := range days {
				if err := s.processOrganizationDay(org, day); err != nil {
					logrus.WithFields(logrus.Fields{
						"organization_id": org.ID,
						"date":            day.Format(time.DateOnly),
						"error":           err.Error(),
					}).Error("Erro ao agregar desempenho de agentes do dia")
				}
			}
		}(org)
	}

	wg.Wait()

	logrus.WithFields(logrus.Fields{
		"run_id":   runID,
		"duration": time.Since(startTime).String(),
	}).Info("Sincronização de desempenho de agentes concluída")
}

func (s *AgentPerformanceSyncService) processOrganizationDay(org *domain.Organization, day time.Time) error {
	dayEnd := day.Add(24 * time.Hour)

	agentIDs, err := s.eventRepo.ListActiveAgentIDs(org.ID, day, dayEnd)
	if err != nil {
		return err
	}

	if len(agentIDs) == 0 {
		return nil
	}

	tickets, err := s.eventRepo.ListTickets(org.ID, day, dayEnd)
	if err != nil {
		return err
	}

	interactions, err := s.eventRepo.ListInteractions(org.ID, day, dayEnd)
	if err != nil {
		return err
	}

	for _, agentID := range agentIDs {
		agentTickets := make([]*domain.Ticket, 0)
		for _, tk := range tickets {
			if tk.AssignedTo != nil && *tk.AssignedTo == agentID {
				agentTickets = append(agentTickets, tk)
			}
		}

		agentInteractions := make([]*domain.Interaction, 0)
		for _, it := range interactions {
			if it.AgentID != nil && *it.AgentID == agentID {
				agentInteractions = append(agentInteractions, it)
			}
		}

		perf, err := aggregating.AggregateAgentDay(org.ID, agentID, day, agentTickets, agentInteractions, s.scoringWeights)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"organization_id": org.ID,
				"agent_id":        agentID,
				"date":            day.Format(time.DateOnly),
				"error":           err.Error(),
			}).Error("Erro ao agregar desempenho do agente")
			continue
		}

		if err := s.agentPerfRepo.SaveOrUpdate(perf); err != nil {
			logrus.WithFields(logrus.Fields{
				"organization_id": org.ID,
				"agent_id":        agentID,
				"date":            day.Format(time.DateOnly),
				"error":           err.Error(),
			}).Error("Erro ao salvar desempenho do agente")
		}
	}

	return nil
}
