package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChurnScoringValidate(t *testing.T) {
	t.Run("pesos default são válidos", func(t *testing.T) {
		weights := ChurnScoring{
			WeightComplaints: 0.4,
			WeightBalance:    0.2,
			WeightRecency:    0.25,
			WeightTenure:     0.15,
		}
		assert.NoError(t, weights.Validate())
	})

	t.Run("soma fora da tolerância é rejeitada", func(t *testing.T) {
		weights := ChurnScoring{
			WeightComplaints: 0.5,
			WeightBalance:    0.2,
			WeightRecency:    0.25,
			WeightTenure:     0.15,
		}

		err := weights.Validate()
		assert.Error(t, err)

		var cfgErr *ConfigError
		assert.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, "churn_weight_*", cfgErr.Option)
	})

	t.Run("imprecisão de ponto flutuante dentro da tolerância passa", func(t *testing.T) {
		weights := ChurnScoring{
			WeightComplaints: 0.1 + 0.2, // 0.30000000000000004
			WeightBalance:    0.3,
			WeightRecency:    0.25,
			WeightTenure:     0.15,
		}
		assert.NoError(t, weights.Validate())
	})

	t.Run("peso negativo é rejeitado mesmo somando 1.0", func(t *testing.T) {
		weights := ChurnScoring{
			WeightComplaints: 1.2,
			WeightBalance:    -0.2,
			WeightRecency:    0.0,
			WeightTenure:     0.0,
		}
		assert.Error(t, weights.Validate())
	})
}

func TestAgentScoringValidate(t *testing.T) {
	t.Run("pesos default são válidos", func(t *testing.T) {
		weights := AgentScoring{
			WeightResolution:        0.4,
			WeightSatisfaction:      0.35,
			WeightEfficiency:        0.25,
			TargetHandleTimeSeconds: 600,
		}
		assert.NoError(t, weights.Validate())
	})

	t.Run("soma incorreta é rejeitada", func(t *testing.T) {
		weights := AgentScoring{
			WeightResolution:        0.4,
			WeightSatisfaction:      0.4,
			WeightEfficiency:        0.4,
			TargetHandleTimeSeconds: 600,
		}
		assert.Error(t, weights.Validate())
	})

	t.Run("tempo de atendimento alvo não positivo é rejeitado", func(t *testing.T) {
		weights := AgentScoring{
			WeightResolution:        0.4,
			WeightSatisfaction:      0.35,
			WeightEfficiency:        0.25,
			TargetHandleTimeSeconds: 0,
		}
		assert.Error(t, weights.Validate())
	})
}

func TestSyncConfigValidate(t *testing.T) {
	t.Run("valores default são válidos", func(t *testing.T) {
		assert.NoError(t, UsageStatsSync{LookbackDays: 3, MaxConcurrentJobs: 3}.Validate())
		assert.NoError(t, AgentPerformanceSync{LookbackDays: 3, MaxConcurrentJobs: 3}.Validate())
		assert.NoError(t, ChurnSweep{MaxConcurrentJobs: 3}.Validate())
	})

	t.Run("lookback menor que um dia é rejeitado", func(t *testing.T) {
		err := UsageStatsSync{LookbackDays: 0, MaxConcurrentJobs: 3}.Validate()

		var cfgErr *ConfigError
		assert.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, "usage_stats_sync_lookback_days", cfgErr.Option)

		assert.Error(t, AgentPerformanceSync{LookbackDays: -1, MaxConcurrentJobs: 3}.Validate())
	})

	t.Run("concorrência zero é rejeitada", func(t *testing.T) {
		// Um semáforo de capacidade zero bloquearia o primeiro worker para sempre
		assert.Error(t, UsageStatsSync{LookbackDays: 3, MaxConcurrentJobs: 0}.Validate())
		assert.Error(t, AgentPerformanceSync{LookbackDays: 3, MaxConcurrentJobs: 0}.Validate())
		assert.Error(t, ChurnSweep{MaxConcurrentJobs: 0}.Validate())
	})
}
