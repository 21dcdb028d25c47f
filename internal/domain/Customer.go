package domain

import (
	"time"
)

type ChurnRiskLevel string

const (
	ChurnRiskLow    ChurnRiskLevel = "LOW"
	ChurnRiskMedium ChurnRiskLevel = "MEDIUM"
	ChurnRiskHigh   ChurnRiskLevel = "HIGH"
)

// Limiares fixos da partição de [0,100] em níveis de risco
const (
	churnHighThreshold   = 70.0
	churnMediumThreshold = 40.0
)

// RiskLevelForScore é a única fonte de verdade do mapeamento score -> nível de risco.
// Nenhum outro componente pode derivar o nível a partir do score por conta própria.
func RiskLevelForScore(score float64) ChurnRiskLevel {
	switch {
	case score >= churnHighThreshold:
		return ChurnRiskHigh
	case score >= churnMediumThreshold:
		return ChurnRiskMedium
	default:
		return ChurnRiskLow
	}
}

// ParseChurnRiskLevel valida um nível de risco vindo da borda (banco, API)
func ParseChurnRiskLevel(value string) (ChurnRiskLevel, error) {
	switch ChurnRiskLevel(value) {
	case ChurnRiskLow, ChurnRiskMedium, ChurnRiskHigh:
		return ChurnRiskLevel(value), nil
	}
	return "", &ValidationError{Field: "churn_risk", Reason: "nível de risco desconhecido: " + value}
}

type CustomerStatus string

const (
	CustomerStatusActive    CustomerStatus = "ACTIVE"
	CustomerStatusSuspended CustomerStatus = "SUSPENDED"
	CustomerStatusChurned   CustomerStatus = "CHURNED"
)

func ParseCustomerStatus(value string) (CustomerStatus, error) {
	switch CustomerStatus(value) {
	case CustomerStatusActive, CustomerStatusSuspended, CustomerStatusChurned:
		return CustomerStatus(value), nil
	}
	return "", &ValidationError{Field: "status", Reason: "status de cliente desconhecido: " + value}
}

type PlanType string

const (
	PlanTypePrepaid  PlanType = "PREPAID"
	PlanTypePostpaid PlanType = "POSTPAID"
)

func ParsePlanType(value string) (PlanType, error) {
	switch PlanType(value) {
	case PlanTypePrepaid, PlanTypePostpaid:
		return PlanType(value), nil
	}
	return "", &ValidationError{Field: "plan_type", Reason: "tipo de plano desconhecido: " + value}
}

// Customer representa um cliente da operadora dentro de uma organização.
// ChurnScore e ChurnRisk são campos derivados, escritos apenas pelo scorer de churn.
type Customer struct {
	ID             string         `json:"id"`
	OrganizationID string         `json:"organization_id"`
	Code           string         `json:"code"`
	Name           string         `json:"name"`
	PhoneNumber    string         `json:"phone_number"`
	PlanType       PlanType       `json:"plan_type"`
	Status         CustomerStatus `json:"status"`
	AccountBalance float64        `json:"account_balance"`
	ActivatedAt    time.Time      `json:"activated_at"`
	ChurnScore     float64        `json:"churn_score"`
	ChurnRisk      ChurnRiskLevel `json:"churn_risk"`
	ChurnedAt      *time.Time     `json:"churned_at,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// TenureMonths calcula o tempo de casa do cliente em meses, em relação a uma referência
func (c *Customer) TenureMonths(ref time.Time) float64 {
	if c.ActivatedAt.IsZero() || ref.Before(c.ActivatedAt) {
		return 0
	}
	return ref.Sub(c.ActivatedAt).Hours() / 24 / 30
}
