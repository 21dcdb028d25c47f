package domain

import (
	"time"
)

// GapPolicy define como preencher dias sem agregado persistido em uma janela
type GapPolicy string

const (
	// GapPolicyZeroFill emite um ponto com todos os contadores zerados
	GapPolicyZeroFill GapPolicy = "zero"
	// GapPolicyCarryForward repete o último ponto conhecido da janela
	GapPolicyCarryForward GapPolicy = "carry"
)

// ParseGapPolicy valida a política de preenchimento; string vazia usa o default (zero-fill)
func ParseGapPolicy(value string) (GapPolicy, error) {
	switch GapPolicy(value) {
	case "":
		return GapPolicyZeroFill, nil
	case GapPolicyZeroFill, GapPolicyCarryForward:
		return GapPolicy(value), nil
	}
	return "", &ValidationError{Field: "fill", Reason: "política de preenchimento desconhecida: " + value}
}

// UsagePoint é um ponto diário da janela de uso. GapFilled marca pontos
// sintetizados por política de preenchimento: o dashboard deve exibi-los
// de forma distinta, nunca como dado real de atividade zero.
type UsagePoint struct {
	Date      time.Time      `json:"date"`
	Stats     UsageStatistic `json:"stats"`
	GapFilled bool           `json:"gap_filled"`
}

// AgentPerformancePoint é um ponto diário da janela de desempenho de um agente
type AgentPerformancePoint struct {
	Date        time.Time        `json:"date"`
	Performance AgentPerformance `json:"performance"`
	GapFilled   bool             `json:"gap_filled"`
}
