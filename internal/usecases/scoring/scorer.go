package scoring

import (
	"math"

	"github.com/teledash/analytics-api/internal/config"
	"github.com/teledash/analytics-api/internal/domain"
	"github.com/teledash/analytics-api/pkg/utils"
)

// Horizontes de normalização dos sub-sinais. Acima desses valores o sinal
// satura em 1.0; a calibração fina fica nos pesos configuráveis.
const (
	complaintSaturation       = 5.0
	balanceSaturation         = 100.0
	recencyHorizonDays        = 90.0
	recencyHorizonDaysPrepaid = 60.0
	tenureHorizonMonths       = 24.0
)

// Snapshot é a foto dos atributos do cliente usada no cálculo do score.
// Campos ausentes ficam no zero value, que é o default neutro do domínio.
type Snapshot struct {
	TenureMonths             float64
	AccountBalance           float64
	RecentComplaints         int
	DaysSinceLastTransaction float64
	PlanType                 domain.PlanType
}

// Scorer calcula o score de churn de um cliente. É uma função pura:
// não persiste nada e nunca falha para entrada numérica válida.
type Scorer struct {
	weights config.ChurnScoring
}

// NewScorer valida o vetor de pesos e cria o scorer.
// Pesos que não somam 1.0 são erro de configuração fatal.
func NewScorer(weights config.ChurnScoring) (*Scorer, error) {
	if err := weights.Validate(); err != nil {
		return nil, err
	}
	return &Scorer{weights: weights}, nil
}

// Score calcula o score de churn em [0,100] e o nível de risco correspondente.
// O nível vem sempre de domain.RiskLevelForScore, nunca é derivado aqui.
func (s *Scorer) Score(snap Snapshot) (float64, domain.ChurnRiskLevel, error) {
	if err := validateSnapshot(snap); err != nil {
		return 0, "", err
	}

	complaints := clampNonNegative(float64(snap.RecentComplaints))
	balance := clampNonNegative(snap.AccountBalance)
	daysSinceTx := clampNonNegative(snap.DaysSinceLastTransaction)
	tenure := clampNonNegative(snap.TenureMonths)

	// Clientes pré-pagos ficam dormentes mais rápido: horizonte de recência menor
	recencyHorizon := recencyHorizonDays
	if snap.PlanType == domain.PlanTypePrepaid {
		recencyHorizon = recencyHorizonDaysPrepaid
	}

	complaintSignal := saturate(complaints / complaintSaturation)
	balanceSignal := 1 - saturate(balance/balanceSaturation)
	recencySignal := saturate(daysSinceTx / recencyHorizon)
	tenureSignal := 1 - saturate(tenure/tenureHorizonMonths)

	score := 100 * (s.weights.WeightComplaints*complaintSignal +
		s.weights.WeightBalance*balanceSignal +
		s.weights.WeightRecency*recencySignal +
		s.weights.WeightTenure*tenureSignal)

	score = utils.RoundWithTwoDecimalPlace(math.Min(100, math.Max(0, score)))

	return score, domain.RiskLevelForScore(score), nil
}

// validateSnapshot rejeita snapshots estruturalmente malformados (NaN/Inf)
func validateSnapshot(snap Snapshot) error {
	fields := map[string]float64{
		"tenure_months":               snap.TenureMonths,
		"account_balance":             snap.AccountBalance,
		"days_since_last_transaction": snap.DaysSinceLastTransaction,
	}
	for field, value := range fields {
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return &domain.ValidationError{Field: field, Reason: "valor numérico inválido"}
		}
	}
	return nil
}

func clampNonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

func saturate(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < 0 {
		return 0
	}
	return v
}
