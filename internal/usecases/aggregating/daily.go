// Package aggregating contém as dobras puras de eventos brutos em agregados
// diários. As funções não consultam armazenamento: o chamador entrega a
// janela fechada [dia 00:00, dia+1 00:00) UTC e recebe o agregado de volta.
package aggregating

import (
	"time"

	"github.com/teledash/analytics-api/internal/domain"
)

// DayEvents é o conjunto de eventos brutos de uma organização em um dia UTC.
// NewCustomerIDs e ChurnedCustomerIDs são sinais externos: o primeiro evento
// de um cliente e a marcação de churn são conhecidos do EventStore, não
// deriváveis só da janela.
type DayEvents struct {
	Interactions       []*domain.Interaction
	Tickets            []*domain.Ticket
	Transactions       []*domain.Transaction
	NewCustomerIDs     []string
	ChurnedCustomerIDs []string
}

// AggregateDay dobra os eventos de um dia em um UsageStatistic.
// Um dia sem tráfego é válido e produz um registro com contadores zerados,
// necessário para o preenchimento de lacunas do caminho de leitura.
// A mesma entrada produz sempre a mesma saída, bit a bit.
func AggregateDay(organizationID string, day time.Time, events DayEvents) (*domain.UsageStatistic, error) {
	day, err := validateDay(day)
	if err != nil {
		return nil, err
	}
	dayEnd := day.Add(24 * time.Hour)

	stat := &domain.UsageStatistic{
		OrganizationID: organizationID,
		Date:           day,
	}

	activeCustomers := make(map[string]struct{})

	for _, it := range events.Interactions {
		if err := validateEvent(organizationID, it.OrganizationID, it.StartedAt, day, dayEnd, "interaction"); err != nil {
			return nil, err
		}

		switch it.Type {
		case domain.InteractionTypeCall:
			stat.TotalCalls++
			if it.DurationSeconds != nil {
				stat.TotalCallDurationSeconds += int64(*it.DurationSeconds)
			}
		case domain.InteractionTypeSMS:
			stat.TotalSMS++
		case domain.InteractionTypeData:
			stat.TotalDataUsedBytes += it.DataUsedBytes
		}

		activeCustomers[it.CustomerID] = struct{}{}
	}

	for _, tk := range events.Tickets {
		if err := validateEvent(organizationID, tk.OrganizationID, tk.UpdatedAt, day, dayEnd, "ticket"); err != nil {
			return nil, err
		}
		activeCustomers[tk.CustomerID] = struct{}{}
	}

	for _, tx := range events.Transactions {
		if err := validateEvent(organizationID, tx.OrganizationID, tx.CompletedAt, day, dayEnd, "transaction"); err != nil {
			return nil, err
		}
		if tx.Type.IsRevenue() {
			stat.TotalRevenue += tx.Amount
		}
		activeCustomers[tx.CustomerID] = struct{}{}
	}

	stat.ActiveCustomers = len(activeCustomers)
	stat.NewCustomers = len(events.NewCustomerIDs)
	stat.ChurnedCustomers = len(events.ChurnedCustomerIDs)

	return stat, nil
}

// validateDay exige um dia truncado à meia-noite UTC, a fronteira canônica
// que evita baldes duplicados ou faltantes entre fusos
func validateDay(day time.Time) (time.Time, error) {
	day = day.UTC()
	truncated := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	if !day.Equal(truncated) {
		return time.Time{}, &domain.ValidationError{
			Field:  "day",
			Reason: "dia deve estar truncado à meia-noite UTC",
		}
	}
	return truncated, nil
}

// validateEvent barra vazamento entre tenants e eventos fora da janela do dia.
// Ambos são bugs do chamador e nunca devem ser agregados silenciosamente.
func validateEvent(wantOrg, gotOrg string, ts, day, dayEnd time.Time, kind string) error {
	if gotOrg != wantOrg {
		return &domain.ValidationError{
			Field:  kind + ".organization_id",
			Reason: "evento de outra organização na janela: " + gotOrg,
		}
	}
	if ts.Before(day) || !ts.Before(dayEnd) {
		return &domain.ValidationError{
			Field:  kind + ".timestamp",
			Reason: "timestamp fora da janela do dia: " + ts.UTC().Format(time.RFC3339),
		}
	}
	return nil
}
