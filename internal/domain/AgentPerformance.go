package domain

import (
	"time"
)

// AgentPerformance representa o desempenho diário de um agente de suporte.
// Uma linha por (organização, agente, dia UTC), com as mesmas garantias de
// idempotência do UsageStatistic.
//
// As médias e taxas são ponteiros: nil significa "sem dados no dia", que os
// consumidores devem distinguir de zero minutos / zero por cento.
type AgentPerformance struct {
	ID                         int64     `json:"id"`
	OrganizationID             string    `json:"organization_id"`
	AgentID                    string    `json:"agent_id"`
	Date                       time.Time `json:"date"`
	TicketsHandled             int       `json:"tickets_handled"`
	TicketsResolved            int       `json:"tickets_resolved"`
	AvgHandleTimeSeconds       *float64  `json:"avg_handle_time_seconds"`
	FirstContactResolutionRate *float64  `json:"first_contact_resolution_rate"`
	SatisfactionScore          *float64  `json:"satisfaction_score"`
	CallsAnswered              int       `json:"calls_answered"`
	AvgCallDurationSeconds     *float64  `json:"avg_call_duration_seconds"`
	PerformanceScore           *float64  `json:"performance_score"`
	CreatedAt                  time.Time `json:"created_at"`
	UpdatedAt                  time.Time `json:"updated_at"`
}
