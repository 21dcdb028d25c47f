package aggregating

import (
	"fmt"
	"math"
	"time"

	"github.com/teledash/analytics-api/internal/config"
	"github.com/teledash/analytics-api/internal/domain"
)

// AggregateAgentDay dobra os tickets e chamadas de um agente em um registro
// diário de desempenho. Os tickets da entrada são os que tiveram mudança de
// status no dia, atribuídos ao agente; as interações são as chamadas
// atendidas por ele na janela.
//
// Médias de um dia sem eventos ficam nil (sem dados), nunca zero: zero
// minutos de atendimento seria uma mentira sobre o desempenho real.
func AggregateAgentDay(
	organizationID string,
	agentID string,
	day time.Time,
	tickets []*domain.Ticket,
	interactions []*domain.Interaction,
	weights config.AgentScoring,
) (*domain.AgentPerformance, error) {
	day, err := validateDay(day)
	if err != nil {
		return nil, err
	}
	dayEnd := day.Add(24 * time.Hour)

	perf := &domain.AgentPerformance{
		OrganizationID: organizationID,
		AgentID:        agentID,
		Date:           day,
	}

	var (
		handleTimeSum float64
		handleTimeN   int
		fcrCount      int
		csatSum       float64
		csatN         int
	)

	for _, tk := range tickets {
		if err := validateEvent(organizationID, tk.OrganizationID, tk.UpdatedAt, day, dayEnd, "ticket"); err != nil {
			return nil, err
		}
		if tk.AssignedTo == nil || *tk.AssignedTo != agentID {
			return nil, &domain.ValidationError{
				Field:  "ticket.assigned_to",
				Reason: "ticket de outro agente na janela: " + tk.ID,
			}
		}

		perf.TicketsHandled++

		if tk.ResolvedAt != nil && !tk.ResolvedAt.Before(day) && tk.ResolvedAt.Before(dayEnd) {
			perf.TicketsResolved++
			if tk.FirstContactResolution {
				fcrCount++
			}
		}

		if tk.HandleTimeSeconds != nil {
			handleTimeSum += float64(*tk.HandleTimeSeconds)
			handleTimeN++
		}
		if tk.SatisfactionScore != nil {
			csatSum += *tk.SatisfactionScore
			csatN++
		}
	}

	// Invariante do agregado: resolvidos nunca excedem atendidos
	if perf.TicketsResolved > perf.TicketsHandled {
		return nil, fmt.Errorf(
			"invariante violada: tickets resolvidos (%d) > atendidos (%d)",
			perf.TicketsResolved, perf.TicketsHandled,
		)
	}

	var (
		callDurationSum float64
		callDurationN   int
	)

	for _, it := range interactions {
		if err := validateEvent(organizationID, it.OrganizationID, it.StartedAt, day, dayEnd, "interaction"); err != nil {
			return nil, err
		}
		if it.AgentID == nil || *it.AgentID != agentID {
			return nil, &domain.ValidationError{
				Field:  "interaction.agent_id",
				Reason: "interação de outro agente na janela: " + it.ID,
			}
		}
		if it.Type != domain.InteractionTypeCall {
			continue
		}

		perf.CallsAnswered++
		if it.DurationSeconds != nil {
			callDurationSum += float64(*it.DurationSeconds)
			callDurationN++
		}
	}

	if handleTimeN > 0 {
		avg := handleTimeSum / float64(handleTimeN)
		perf.AvgHandleTimeSeconds = &avg
	}
	if callDurationN > 0 {
		avg := callDurationSum / float64(callDurationN)
		perf.AvgCallDurationSeconds = &avg
	}
	if perf.TicketsResolved > 0 {
		rate := float64(fcrCount) / float64(perf.TicketsResolved) * 100
		perf.FirstContactResolutionRate = &rate
	}
	if csatN > 0 {
		avg := csatSum / float64(csatN)
		perf.SatisfactionScore = &avg
	}

	perf.PerformanceScore = compositeScore(perf, weights)

	return perf, nil
}

// compositeScore combina taxa de resolução, satisfação e eficiência de
// atendimento em um score [0,100]. Sinais sem dados no dia saem da conta e
// os pesos restantes são renormalizados; sem nenhum sinal, o score é nil.
func compositeScore(perf *domain.AgentPerformance, weights config.AgentScoring) *float64 {
	var weighted, weightSum float64

	if perf.TicketsHandled > 0 {
		resolutionRate := float64(perf.TicketsResolved) / float64(perf.TicketsHandled)
		weighted += weights.WeightResolution * resolutionRate
		weightSum += weights.WeightResolution
	}

	if perf.SatisfactionScore != nil {
		// CSAT em escala 1-5 normalizado para [0,1]
		csat := (*perf.SatisfactionScore - 1) / 4
		csat = math.Min(1, math.Max(0, csat))
		weighted += weights.WeightSatisfaction * csat
		weightSum += weights.WeightSatisfaction
	}

	if perf.AvgHandleTimeSeconds != nil {
		target := float64(weights.TargetHandleTimeSeconds)
		efficiency := 1 - math.Min(1, *perf.AvgHandleTimeSeconds/(2*target))
		weighted += weights.WeightEfficiency * efficiency
		weightSum += weights.WeightEfficiency
	}

	if weightSum == 0 {
		return nil
	}

	score := 100 * weighted / weightSum
	score = math.Min(100, math.Max(0, score))
	return &score
}
