package reporting

import (
	"time"

	"github.com/teledash/analytics-api/infrastructure/repository"
	"github.com/teledash/analytics-api/internal/domain"
	"github.com/teledash/analytics-api/pkg/log"
)

type Service struct {
	orgRepo       repository.OrganizationRepository
	usageRepo     repository.UsageStatisticRepository
	agentPerfRepo repository.AgentPerformanceRepository
}

func NewService(
	orgRepo repository.OrganizationRepository,
	usageRepo repository.UsageStatisticRepository,
	agentPerfRepo repository.AgentPerformanceRepository,
) WindowBuilder {
	return &Service{
		orgRepo:       orgRepo,
		usageRepo:     usageRepo,
		agentPerfRepo: agentPerfRepo,
	}
}

func (s *Service) BuildUsageWindow(organizationID string, start, end time.Time, policy domain.GapPolicy) ([]*domain.UsagePoint, error) {
	start, end, err := s.validateWindow(organizationID, start, end)
	if err != nil {
		return nil, err
	}

	// Uma leitura em lote por janela, nunca uma por dia
	stored, err := s.usageRepo.GetByDateRange(organizationID, start, end)
	if err != nil {
		return nil, err
	}

	byDay := make(map[string]*domain.UsageStatistic, len(stored))
	for _, stat := range stored {
		byDay[stat.Date.Format(time.DateOnly)] = stat
	}

	days := int(end.Sub(start).Hours()/24) + 1
	points := make([]*domain.UsagePoint, 0, days)
	gapFilled := 0

	var lastKnown *domain.UsageStatistic
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		if stat, ok := byDay[day.Format(time.DateOnly)]; ok {
			points = append(points, &domain.UsagePoint{Date: day, Stats: *stat})
			lastKnown = stat
			continue
		}

		// Dia sem agregado: o ponto é sintetizado pela política e marcado,
		// jamais inventado com valores aleatórios
		stats := domain.UsageStatistic{OrganizationID: organizationID, Date: day}
		if policy == domain.GapPolicyCarryForward && lastKnown != nil {
			// Só os contadores são repetidos; a identidade da linha de origem
			// (id, timestamps) não pertence ao ponto sintetizado
			stats = *lastKnown
			stats.ID = 0
			stats.Date = day
			stats.CreatedAt = time.Time{}
			stats.UpdatedAt = time.Time{}
		}

		points = append(points, &domain.UsagePoint{Date: day, Stats: stats, GapFilled: true})
		gapFilled++
	}

	if gapFilled > 0 {
		log.L.WithFields(log.Fields{
			"organization_id": organizationID,
			"start_date":      start.Format(time.DateOnly),
			"end_date":        end.Format(time.DateOnly),
			"gap_filled_days": gapFilled,
			"policy":          policy,
		}).Warn("Janela de uso contém dias sem dados reais")
	}

	return points, nil
}

func (s *Service) BuildAgentWindow(organizationID, agentID string, start, end time.Time, policy domain.GapPolicy) ([]*domain.AgentPerformancePoint, error) {
	start, end, err := s.validateWindow(organizationID, start, end)
	if err != nil {
		return nil, err
	}

	if agentID == "" {
		return nil, &domain.ValidationError{Field: "agent_id", Reason: "identificador do agente é obrigatório"}
	}

	stored, err := s.agentPerfRepo.GetByDateRange(organizationID, agentID, start, end)
	if err != nil {
		return nil, err
	}

	byDay := make(map[string]*domain.AgentPerformance, len(stored))
	for _, perf := range stored {
		byDay[perf.Date.Format(time.DateOnly)] = perf
	}

	days := int(end.Sub(start).Hours()/24) + 1
	points := make([]*domain.AgentPerformancePoint, 0, days)
	gapFilled := 0

	var lastKnown *domain.AgentPerformance
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		if perf, ok := byDay[day.Format(time.DateOnly)]; ok {
			points = append(points, &domain.AgentPerformancePoint{Date: day, Performance: *perf})
			lastKnown = perf
			continue
		}

		perf := domain.AgentPerformance{OrganizationID: organizationID, AgentID: agentID, Date: day}
		if policy == domain.GapPolicyCarryForward && lastKnown != nil {
			perf = *lastKnown
			perf.ID = 0
			perf.Date = day
			perf.CreatedAt = time.Time{}
			perf.UpdatedAt = time.Time{}
		}

		points = append(points, &domain.AgentPerformancePoint{Date: day, Performance: perf, GapFilled: true})
		gapFilled++
	}

	if gapFilled > 0 {
		log.L.WithFields(log.Fields{
			"organization_id": organizationID,
			"agent_id":        agentID,
			"start_date":      start.Format(time.DateOnly),
			"end_date":        end.Format(time.DateOnly),
			"gap_filled_days": gapFilled,
			"policy":          policy,
		}).Warn("Janela de desempenho contém dias sem dados reais")
	}

	return points, nil
}

// validateWindow trunca as pontas à meia-noite UTC, rejeita janelas
// invertidas e confirma que a organização existe no diretório de tenants
func (s *Service) validateWindow(organizationID string, start, end time.Time) (time.Time, time.Time, error) {
	start = truncateToDay(start)
	end = truncateToDay(end)

	if start.After(end) {
		return time.Time{}, time.Time{}, &domain.ValidationError{
			Field:  "start_date",
			Reason: "data inicial posterior à data final",
		}
	}

	org, err := s.orgRepo.GetByID(organizationID)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if org == nil {
		return time.Time{}, time.Time{}, &domain.ValidationError{
			Field:  "organization_id",
			Reason: "organização desconhecida: " + organizationID,
		}
	}

	return start, end, nil
}

func truncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
