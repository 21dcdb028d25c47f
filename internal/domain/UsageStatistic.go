package domain

import (
	"time"
)

// UsageStatistic representa o agregado diário de uso de uma organização.
// Existe no máximo uma linha por (organização, dia UTC); a persistência é
// feita por upsert na chave natural, então reprocessar um dia é idempotente.
type UsageStatistic struct {
	ID                       int64     `json:"id"`
	OrganizationID           string    `json:"organization_id"`
	Date                     time.Time `json:"date"`
	TotalCalls               int       `json:"total_calls"`
	TotalCallDurationSeconds int64     `json:"total_call_duration_seconds"`
	TotalDataUsedBytes       int64     `json:"total_data_used_bytes"`
	TotalSMS                 int       `json:"total_sms"`
	TotalRevenue             float64   `json:"total_revenue"`
	ActiveCustomers          int       `json:"active_customers"`
	NewCustomers             int       `json:"new_customers"`
	ChurnedCustomers         int       `json:"churned_customers"`
	CreatedAt                time.Time `json:"created_at"`
	UpdatedAt                time.Time `json:"updated_at"`
}
