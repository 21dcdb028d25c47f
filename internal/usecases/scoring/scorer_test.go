package scoring

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teledash/analytics-api/internal/config"
	"github.com/teledash/analytics-api/internal/domain"
)

func defaultWeights() config.ChurnScoring {
	return config.ChurnScoring{
		WeightComplaints:    0.4,
		WeightBalance:       0.2,
		WeightRecency:       0.25,
		WeightTenure:        0.15,
		ComplaintWindowDays: 30,
	}
}

func TestNewScorer(t *testing.T) {
	t.Run("pesos válidos", func(t *testing.T) {
		scorer, err := NewScorer(defaultWeights())
		require.NoError(t, err)
		assert.NotNil(t, scorer)
	})

	t.Run("pesos que não somam 1.0 são rejeitados", func(t *testing.T) {
		weights := defaultWeights()
		weights.WeightComplaints = 0.9

		scorer, err := NewScorer(weights)
		assert.Error(t, err)
		assert.Nil(t, scorer)

		var cfgErr *config.ConfigError
		assert.ErrorAs(t, err, &cfgErr)
	})
}

func TestScorer_Score(t *testing.T) {
	scorer, err := NewScorer(defaultWeights())
	require.NoError(t, err)

	t.Run("cliente novo, inativo e reclamando fica em risco alto", func(t *testing.T) {
		score, level, err := scorer.Score(Snapshot{
			TenureMonths:             2,
			AccountBalance:           5,
			RecentComplaints:         6,
			DaysSinceLastTransaction: 90,
			PlanType:                 domain.PlanTypePostpaid,
		})
		require.NoError(t, err)

		// complaints saturado em 1.0; balance 0.95; recency 1.0; tenure 1 - 2/24
		assert.InDelta(t, 97.75, score, 0.01)
		assert.Equal(t, domain.ChurnRiskHigh, level)
	})

	t.Run("cliente antigo, ativo e sem reclamações fica em risco baixo", func(t *testing.T) {
		score, level, err := scorer.Score(Snapshot{
			TenureMonths:             36,
			AccountBalance:           200,
			RecentComplaints:         0,
			DaysSinceLastTransaction: 5,
			PlanType:                 domain.PlanTypePostpaid,
		})
		require.NoError(t, err)

		assert.InDelta(t, 1.39, score, 0.01)
		assert.Equal(t, domain.ChurnRiskLow, level)
	})

	t.Run("pré-pago satura a recência mais cedo que pós-pago", func(t *testing.T) {
		snap := Snapshot{
			TenureMonths:             12,
			AccountBalance:           50,
			RecentComplaints:         1,
			DaysSinceLastTransaction: 60,
		}

		snap.PlanType = domain.PlanTypePostpaid
		postpaid, _, err := scorer.Score(snap)
		require.NoError(t, err)

		snap.PlanType = domain.PlanTypePrepaid
		prepaid, _, err := scorer.Score(snap)
		require.NoError(t, err)

		assert.Greater(t, prepaid, postpaid)
	})

	t.Run("valores negativos são tratados como zero", func(t *testing.T) {
		score, _, err := scorer.Score(Snapshot{
			TenureMonths:             -3,
			AccountBalance:           -50,
			RecentComplaints:         0,
			DaysSinceLastTransaction: -1,
			PlanType:                 domain.PlanTypePostpaid,
		})
		require.NoError(t, err)

		// tenure 0 -> sinal 1.0; balance 0 -> sinal 1.0; recency 0 -> sinal 0
		assert.InDelta(t, 35.0, score, 0.01)
	})

	t.Run("mais reclamações nunca reduzem o score", func(t *testing.T) {
		base := Snapshot{
			TenureMonths:             12,
			AccountBalance:           50,
			DaysSinceLastTransaction: 10,
			PlanType:                 domain.PlanTypePostpaid,
		}

		previous := -1.0
		for complaints := 0; complaints <= 8; complaints++ {
			base.RecentComplaints = complaints
			score, _, err := scorer.Score(base)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, score, previous)
			previous = score
		}
	})

	t.Run("score sempre fica em [0,100]", func(t *testing.T) {
		extremes := []Snapshot{
			{TenureMonths: 0, AccountBalance: 0, RecentComplaints: 1000, DaysSinceLastTransaction: 10000},
			{TenureMonths: 1000, AccountBalance: 1e9, RecentComplaints: 0, DaysSinceLastTransaction: 0},
		}
		for _, snap := range extremes {
			snap.PlanType = domain.PlanTypePostpaid
			score, level, err := scorer.Score(snap)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, score, 0.0)
			assert.LessOrEqual(t, score, 100.0)
			assert.Equal(t, domain.RiskLevelForScore(score), level)
		}
	})

	t.Run("NaN e Inf são rejeitados como erro de validação", func(t *testing.T) {
		for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
			_, _, err := scorer.Score(Snapshot{
				TenureMonths:   bad,
				AccountBalance: 10,
				PlanType:       domain.PlanTypePostpaid,
			})
			assert.True(t, domain.IsValidationError(err))
		}
	})
}
