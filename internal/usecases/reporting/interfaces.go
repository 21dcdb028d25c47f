package reporting

import (
	"time"

	"github.com/teledash/analytics-api/internal/domain"
)

// WindowBuilder monta janelas diárias contínuas para os dashboards.
// Toda janela devolvida tem exatamente (end - start + 1) pontos, em ordem
// cronológica, com dias sem agregado persistido preenchidos pela política
// de lacunas e marcados como GapFilled.
type WindowBuilder interface {
	// BuildUsageWindow monta a janela de uso de uma organização, inclusiva nas duas pontas
	BuildUsageWindow(organizationID string, start, end time.Time, policy domain.GapPolicy) ([]*domain.UsagePoint, error)

	// BuildAgentWindow monta a janela de desempenho diário de um agente
	BuildAgentWindow(organizationID, agentID string, start, end time.Time, policy domain.GapPolicy) ([]*domain.AgentPerformancePoint, error)
}
