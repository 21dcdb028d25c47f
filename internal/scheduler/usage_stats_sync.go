// Package scheduler contém os serviços de agendamento das agregações diárias
package scheduler

import (
	"context"
	"fmt"
	"sort"
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

// SyncStatus resume o estado de execução de um agendador para o endpoint de status
type SyncStatus struct {
	Running         bool       `json:"running"`
	LastStartedAt   *time.Time `json:"last_started_at,omitempty"`
	LastCompletedAt *time.Time `json:"last_completed_at,omitempty"`
}

type UsageStatsSyncConfig struct {
	CronSchedule      string
	LookbackDays      int
	MaxConcurrentJobs int
	SyncEnabled       bool
}

// UsageStatsSyncService agrega diariamente os eventos brutos de cada
// organização ativa em linhas de usage_statistics. Só processa dias UTC já
// fechados: o dia corrente nunca entra no lote.
type UsageStatsSyncService struct {
	scheduler           *gocron.Scheduler
	config              UsageStatsSyncConfig
	orgRepo             repository.OrganizationRepository
	customerRepo        repository.CustomerRepository
	eventRepo           repository.EventRepository
	usageRepo           repository.UsageStatisticRepository
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewUsageStatsSyncService(
	orgRepo repository.OrganizationRepository,
	customerRepo repository.CustomerRepository,
	eventRepo repository.EventRepository,
	usageRepo repository.UsageStatisticRepository,
	appConfig *config.Config,
) *UsageStatsSyncService {
	syncConfig := UsageStatsSyncConfig{
		CronSchedule:      appConfig.UsageStatsSync.CronSchedule,
		LookbackDays:      appConfig.UsageStatsSync.LookbackDays,
		MaxConcurrentJobs: appConfig.UsageStatsSync.MaxConcurrentJobs,
		SyncEnabled:       appConfig.UsageStatsSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.UTC)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       syncConfig.CronSchedule,
		"lookback_days":       syncConfig.LookbackDays,
		"max_concurrent_jobs": syncConfig.MaxConcurrentJobs,
		"sync_enabled":        syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de estatísticas de uso carregada")

	return &UsageStatsSyncService{
		scheduler:    scheduler,
		config:       syncConfig,
		orgRepo:      orgRepo,
		customerRepo: customerRepo,
		eventRepo:    eventRepo,
		usageRepo:    usageRepo,
	}
}

// Start inicia o agendador
func (s *UsageStatsSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de estatísticas de uso desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de estatísticas de uso")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllUsageStats()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de estatísticas de uso: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de estatísticas de uso")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync inicia manualmente uma sincronização
func (s *UsageStatsSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de estatísticas de uso já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	go s.syncAllUsageStats()
}

// Status retorna o estado atual do agendador
func (s *UsageStatsSyncService) Status() SyncStatus {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return syncStatus(s.syncRunning, s.lastSyncStartedAt, s.lastSyncCompletedAt)
}

func (s *UsageStatsSyncService) syncAllUsageStats() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de estatísticas de uso já em andamento, ignorando")
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

	logrus.WithField("run_id", runID).Info("Iniciando sincronização de estatísticas de uso")

	organizations, err := s.orgRepo.ListByStatus([]domain.OrganizationStatus{domain.OrganizationStatusActive})
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar organizações para sincronização de estatísticas de uso")
		return
	}

	if len(organizations) == 0 {
		logrus.Info("Nenhuma organização ativa encontrada para sincronização de estatísticas de uso")
		return
	}

	days := closedDaysToProcess(s.config.LookbackDays, time.Now())
	if len(days) == 0 {
		logrus.WithFields(logrus.Fields{
			"run_id":        runID,
			"lookback_days": s.config.LookbackDays,
		}).Warn("Nenhum dia fechado para processar, sincronização ignorada")
		return
	}

	logrus.WithFields(logrus.Fields{
		"run_id":        runID,
		"organizations": len(organizations),
		"days":          len(days),
		"start_date":    days[0].Format(time.DateOnly),
		"end_date":      days[len(days)-1].Format(time.DateOnly),
	}).Info("Período para sincronização de estatísticas de uso")

	s.processOrganizations(organizations, days)

	logrus.WithFields(logrus.Fields{
		"run_id":   runID,
		"duration": time.Since(startTime).String(),
	}).Info("Sincronização de estatísticas de uso concluída")
}

func (s *UsageStatsSyncService) processOrganizations(organizations []*domain.Organization, days []time.Time) {
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup

	// Organizações distintas são independentes e podem rodar em paralelo;
	// dentro de uma organização os dias são processados em ordem
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
					}).Error("Erro ao agregar estatísticas de uso do dia")
				}
			}
		}(org)
	}

	wg.Wait()
}

// processOrganizationDay agrega a janela fechada [dia, dia+1) de uma
// organização e grava o resultado por upsert
func (s *UsageStatsSyncService) processOrganizationDay(org *domain.Organization, day time.Time) error {
	dayEnd := day.Add(24 * time.Hour)

	interactions, err := s.eventRepo.ListInteractions(org.ID, day, dayEnd)
	if err != nil {
		return err
	}

	tickets, err := s.eventRepo.ListTickets(org.ID, day, dayEnd)
	if err != nil {
		return err
	}

	transactions, err := s.eventRepo.ListTransactions(org.ID, day, dayEnd)
	if err != nil {
		return err
	}

	newCustomerIDs, err := s.eventRepo.ListFirstSeenCustomerIDs(org.ID, day, dayEnd)
	if err != nil {
		return err
	}

	churnedCustomerIDs, err := s.customerRepo.ListChurnedOn(org.ID, day)
	if err != nil {
		return err
	}

	stat, err := aggregating.AggregateDay(org.ID, day, aggregating.DayEvents{
		Interactions:       interactions,
		Tickets:            tickets,
		Transactions:       transactions,
		NewCustomerIDs:     newCustomerIDs,
		ChurnedCustomerIDs: churnedCustomerIDs,
	})
	if err != nil {
		return err
	}

	if err := s.usageRepo.SaveOrUpdate(stat); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"organization_id":  org.ID,
		"date":             day.Format(time.DateOnly),
		"total_calls":      stat.TotalCalls,
		"active_customers": stat.ActiveCustomers,
	}).Debug("Estatísticas de uso do dia agregadas")

	return nil
}

// closedDaysToProcess retorna os últimos N dias UTC já fechados, em ordem
// cronológica, começando pelo mais antigo. O dia corrente nunca entra.
func closedDaysToProcess(lookbackDays int, now time.Time) []time.Time {
	now = now.UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	days := make([]time.Time, 0, lookbackDays)
	for i := 1; i <= lookbackDays; i++ {
		days = append(days, today.AddDate(0, 0, -i))
	}

	sort.Slice(days, func(i, j int) bool {
		return days[i].Before(days[j])
	})

	return days
}

func syncStatus(running bool, startedAt, completedAt time.Time) SyncStatus {
	status := SyncStatus{Running: running}
	if !startedAt.IsZero() {
		status.LastStartedAt = &startedAt
	}
	if !completedAt.IsZero() {
		status.LastCompletedAt = &completedAt
	}
	return status
}
