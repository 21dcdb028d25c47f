package aggregating

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teledash/analytics-api/internal/domain"
)

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func floatPtr(v float64) *float64 { return &v }

func timePtr(v time.Time) *time.Time { return &v }

func testDay() time.Time {
	return time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
}

func TestAggregateDay(t *testing.T) {
	day := testDay()
	at := func(hour int) time.Time { return day.Add(time.Duration(hour) * time.Hour) }

	t.Run("dobra eventos mistos em um agregado", func(t *testing.T) {
		events := DayEvents{
			Interactions: []*domain.Interaction{
				{OrganizationID: "org-1", CustomerID: "c1", Type: domain.InteractionTypeCall, DurationSeconds: intPtr(120), StartedAt: at(9)},
				{OrganizationID: "org-1", CustomerID: "c1", Type: domain.InteractionTypeCall, DurationSeconds: intPtr(300), StartedAt: at(10)},
				{OrganizationID: "org-1", CustomerID: "c2", Type: domain.InteractionTypeCall, StartedAt: at(11)},
				{OrganizationID: "org-1", CustomerID: "c2", Type: domain.InteractionTypeSMS, StartedAt: at(12)},
				{OrganizationID: "org-1", CustomerID: "c3", Type: domain.InteractionTypeData, DataUsedBytes: 1 << 20, StartedAt: at(13)},
			},
			Tickets: []*domain.Ticket{
				{OrganizationID: "org-1", CustomerID: "c4", Status: domain.TicketStatusOpen, UpdatedAt: at(14)},
			},
			Transactions: []*domain.Transaction{
				{OrganizationID: "org-1", CustomerID: "c1", Type: domain.TransactionTypeTopup, Amount: 10.5, CompletedAt: at(8)},
				{OrganizationID: "org-1", CustomerID: "c5", Type: domain.TransactionTypePayment, Amount: 30, CompletedAt: at(15)},
				{OrganizationID: "org-1", CustomerID: "c5", Type: domain.TransactionTypeRefund, Amount: 99, CompletedAt: at(16)},
			},
			NewCustomerIDs:     []string{"c3"},
			ChurnedCustomerIDs: []string{"c9", "c10"},
		}

		stat, err := AggregateDay("org-1", day, events)
		require.NoError(t, err)

		assert.Equal(t, "org-1", stat.OrganizationID)
		assert.Equal(t, day, stat.Date)
		assert.Equal(t, 3, stat.TotalCalls)
		assert.Equal(t, int64(420), stat.TotalCallDurationSeconds)
		assert.Equal(t, 1, stat.TotalSMS)
		assert.Equal(t, int64(1<<20), stat.TotalDataUsedBytes)
		// Reembolso não entra na receita
		assert.Equal(t, 40.5, stat.TotalRevenue)
		assert.Equal(t, 5, stat.ActiveCustomers)
		assert.Equal(t, 1, stat.NewCustomers)
		assert.Equal(t, 2, stat.ChurnedCustomers)
	})

	t.Run("dia sem eventos produz registro zerado", func(t *testing.T) {
		stat, err := AggregateDay("org-1", day, DayEvents{})
		require.NoError(t, err)

		assert.Equal(t, 0, stat.TotalCalls)
		assert.Equal(t, 0.0, stat.TotalRevenue)
		assert.Equal(t, 0, stat.ActiveCustomers)
	})

	t.Run("mesma entrada produz sempre a mesma saída", func(t *testing.T) {
		events := DayEvents{
			Interactions: []*domain.Interaction{
				{OrganizationID: "org-1", CustomerID: "c1", Type: domain.InteractionTypeCall, DurationSeconds: intPtr(60), StartedAt: at(9)},
			},
			NewCustomerIDs: []string{"c1"},
		}

		first, err := AggregateDay("org-1", day, events)
		require.NoError(t, err)
		second, err := AggregateDay("org-1", day, events)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("dia fora da meia-noite UTC é rejeitado", func(t *testing.T) {
		_, err := AggregateDay("org-1", day.Add(3*time.Hour), DayEvents{})
		assert.True(t, domain.IsValidationError(err))
	})

	t.Run("evento de outra organização é rejeitado", func(t *testing.T) {
		events := DayEvents{
			Transactions: []*domain.Transaction{
				{OrganizationID: "org-2", CustomerID: "c1", Type: domain.TransactionTypeTopup, Amount: 5, CompletedAt: at(8)},
			},
		}

		_, err := AggregateDay("org-1", day, events)
		assert.True(t, domain.IsValidationError(err))
	})

	t.Run("evento fora da janela do dia é rejeitado", func(t *testing.T) {
		events := DayEvents{
			Interactions: []*domain.Interaction{
				{OrganizationID: "org-1", CustomerID: "c1", Type: domain.InteractionTypeCall, StartedAt: day.Add(24 * time.Hour)},
			},
		}

		_, err := AggregateDay("org-1", day, events)
		assert.True(t, domain.IsValidationError(err))
	})

	t.Run("fronteira inicial entra, fronteira final não", func(t *testing.T) {
		events := DayEvents{
			Interactions: []*domain.Interaction{
				{OrganizationID: "org-1", CustomerID: "c1", Type: domain.InteractionTypeSMS, StartedAt: day},
			},
		}

		stat, err := AggregateDay("org-1", day, events)
		require.NoError(t, err)
		assert.Equal(t, 1, stat.TotalSMS)
	})
}
