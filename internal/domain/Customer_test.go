package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRiskLevelForScore(t *testing.T) {
	tests := []struct {
		score float64
		want  ChurnRiskLevel
	}{
		{0, ChurnRiskLow},
		{39.99, ChurnRiskLow},
		{40, ChurnRiskMedium},
		{69.99, ChurnRiskMedium},
		{70, ChurnRiskHigh},
		{100, ChurnRiskHigh},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, RiskLevelForScore(tt.score), "score %.2f", tt.score)
	}
}

func TestParseChurnRiskLevel(t *testing.T) {
	level, err := ParseChurnRiskLevel("MEDIUM")
	assert.NoError(t, err)
	assert.Equal(t, ChurnRiskMedium, level)

	_, err = ParseChurnRiskLevel("EXTREME")
	assert.True(t, IsValidationError(err))
}

func TestCustomerTenureMonths(t *testing.T) {
	ref := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	t.Run("tempo de casa em meses de 30 dias", func(t *testing.T) {
		customer := &Customer{ActivatedAt: ref.AddDate(0, 0, -90)}
		assert.InDelta(t, 3.0, customer.TenureMonths(ref), 0.001)
	})

	t.Run("ativação futura ou ausente vale zero", func(t *testing.T) {
		assert.Equal(t, 0.0, (&Customer{}).TenureMonths(ref))
		assert.Equal(t, 0.0, (&Customer{ActivatedAt: ref.AddDate(0, 0, 1)}).TenureMonths(ref))
	})
}
