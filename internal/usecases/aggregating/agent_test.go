package aggregating

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teledash/analytics-api/internal/config"
	"github.com/teledash/analytics-api/internal/domain"
)

func testAgentWeights() config.AgentScoring {
	return config.AgentScoring{
		WeightResolution:        0.4,
		WeightSatisfaction:      0.35,
		WeightEfficiency:        0.25,
		TargetHandleTimeSeconds: 600,
	}
}

func TestAggregateAgentDay(t *testing.T) {
	day := testDay()
	at := func(hour int) time.Time { return day.Add(time.Duration(hour) * time.Hour) }
	agent := "agent-1"

	t.Run("dobra tickets e chamadas do agente", func(t *testing.T) {
		tickets := []*domain.Ticket{
			{
				OrganizationID:         "org-1",
				CustomerID:             "c1",
				AssignedTo:             strPtr(agent),
				Status:                 domain.TicketStatusResolved,
				UpdatedAt:              at(10),
				ResolvedAt:             timePtr(at(10)),
				HandleTimeSeconds:      intPtr(300),
				FirstContactResolution: true,
				SatisfactionScore:      floatPtr(5),
			},
			{
				OrganizationID:    "org-1",
				CustomerID:        "c2",
				AssignedTo:        strPtr(agent),
				Status:            domain.TicketStatusResolved,
				UpdatedAt:         at(11),
				ResolvedAt:        timePtr(at(11)),
				HandleTimeSeconds: intPtr(900),
				SatisfactionScore: floatPtr(3),
			},
			{
				OrganizationID: "org-1",
				CustomerID:     "c3",
				AssignedTo:     strPtr(agent),
				Status:         domain.TicketStatusInProgress,
				UpdatedAt:      at(12),
			},
		}
		interactions := []*domain.Interaction{
			{OrganizationID: "org-1", CustomerID: "c1", AgentID: strPtr(agent), Type: domain.InteractionTypeCall, DurationSeconds: intPtr(200), StartedAt: at(9)},
			{OrganizationID: "org-1", CustomerID: "c2", AgentID: strPtr(agent), Type: domain.InteractionTypeCall, DurationSeconds: intPtr(400), StartedAt: at(10)},
			{OrganizationID: "org-1", CustomerID: "c2", AgentID: strPtr(agent), Type: domain.InteractionTypeSMS, StartedAt: at(11)},
		}

		perf, err := AggregateAgentDay("org-1", agent, day, tickets, interactions, testAgentWeights())
		require.NoError(t, err)

		assert.Equal(t, 3, perf.TicketsHandled)
		assert.Equal(t, 2, perf.TicketsResolved)
		require.NotNil(t, perf.AvgHandleTimeSeconds)
		assert.InDelta(t, 600.0, *perf.AvgHandleTimeSeconds, 0.001)
		require.NotNil(t, perf.FirstContactResolutionRate)
		assert.InDelta(t, 50.0, *perf.FirstContactResolutionRate, 0.001)
		require.NotNil(t, perf.SatisfactionScore)
		assert.InDelta(t, 4.0, *perf.SatisfactionScore, 0.001)
		// SMS não conta como chamada atendida
		assert.Equal(t, 2, perf.CallsAnswered)
		require.NotNil(t, perf.AvgCallDurationSeconds)
		assert.InDelta(t, 300.0, *perf.AvgCallDurationSeconds, 0.001)

		// resolução 2/3, csat (4-1)/4, eficiência 1 - 600/1200
		require.NotNil(t, perf.PerformanceScore)
		expected := 100 * (0.4*(2.0/3.0) + 0.35*0.75 + 0.25*0.5)
		assert.InDelta(t, expected, *perf.PerformanceScore, 0.001)
	})

	t.Run("dia sem eventos produz médias nil, nunca zero", func(t *testing.T) {
		perf, err := AggregateAgentDay("org-1", agent, day, nil, nil, testAgentWeights())
		require.NoError(t, err)

		assert.Equal(t, 0, perf.TicketsHandled)
		assert.Nil(t, perf.AvgHandleTimeSeconds)
		assert.Nil(t, perf.FirstContactResolutionRate)
		assert.Nil(t, perf.SatisfactionScore)
		assert.Nil(t, perf.AvgCallDurationSeconds)
		assert.Nil(t, perf.PerformanceScore)
	})

	t.Run("pesos são renormalizados sobre os sinais disponíveis", func(t *testing.T) {
		tickets := []*domain.Ticket{
			{
				OrganizationID: "org-1",
				CustomerID:     "c1",
				AssignedTo:     strPtr(agent),
				Status:         domain.TicketStatusResolved,
				UpdatedAt:      at(10),
				ResolvedAt:     timePtr(at(10)),
			},
		}

		perf, err := AggregateAgentDay("org-1", agent, day, tickets, nil, testAgentWeights())
		require.NoError(t, err)

		// Só o sinal de resolução existe: score é a própria taxa em [0,100]
		require.NotNil(t, perf.PerformanceScore)
		assert.InDelta(t, 100.0, *perf.PerformanceScore, 0.001)
	})

	t.Run("ticket resolvido fora do dia conta como atendido, não como resolvido", func(t *testing.T) {
		tickets := []*domain.Ticket{
			{
				OrganizationID: "org-1",
				CustomerID:     "c1",
				AssignedTo:     strPtr(agent),
				Status:         domain.TicketStatusClosed,
				UpdatedAt:      at(10),
				ResolvedAt:     timePtr(day.AddDate(0, 0, -2)),
			},
		}

		perf, err := AggregateAgentDay("org-1", agent, day, tickets, nil, testAgentWeights())
		require.NoError(t, err)

		assert.Equal(t, 1, perf.TicketsHandled)
		assert.Equal(t, 0, perf.TicketsResolved)
		assert.Nil(t, perf.FirstContactResolutionRate)
	})

	t.Run("ticket de outro agente é rejeitado", func(t *testing.T) {
		tickets := []*domain.Ticket{
			{OrganizationID: "org-1", CustomerID: "c1", AssignedTo: strPtr("agent-2"), UpdatedAt: at(10)},
		}

		_, err := AggregateAgentDay("org-1", agent, day, tickets, nil, testAgentWeights())
		assert.True(t, domain.IsValidationError(err))
	})

	t.Run("interação de outra organização é rejeitada", func(t *testing.T) {
		interactions := []*domain.Interaction{
			{OrganizationID: "org-2", CustomerID: "c1", AgentID: strPtr(agent), Type: domain.InteractionTypeCall, StartedAt: at(9)},
		}

		_, err := AggregateAgentDay("org-1", agent, day, nil, interactions, testAgentWeights())
		assert.True(t, domain.IsValidationError(err))
	})
}
