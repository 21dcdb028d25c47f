package domain

import (
	"time"
)

// Eventos brutos do EventStore. Este serviço apenas lê; a escrita é do
// produto (CRM, billing, central de atendimento).

type InteractionType string

const (
	InteractionTypeCall InteractionType = "CALL"
	InteractionTypeSMS  InteractionType = "SMS"
	InteractionTypeData InteractionType = "DATA"
)

func ParseInteractionType(value string) (InteractionType, error) {
	switch InteractionType(value) {
	case InteractionTypeCall, InteractionTypeSMS, InteractionTypeData:
		return InteractionType(value), nil
	}
	return "", &ValidationError{Field: "type", Reason: "tipo de interação desconhecido: " + value}
}

type Direction string

const (
	DirectionInbound  Direction = "INBOUND"
	DirectionOutbound Direction = "OUTBOUND"
)

func ParseDirection(value string) (Direction, error) {
	switch Direction(value) {
	case DirectionInbound, DirectionOutbound:
		return Direction(value), nil
	}
	return "", &ValidationError{Field: "direction", Reason: "direção desconhecida: " + value}
}

// Interaction é um contato de rede ou de atendimento: chamada, SMS ou sessão de dados
type Interaction struct {
	ID              string          `json:"id"`
	OrganizationID  string          `json:"organization_id"`
	CustomerID      string          `json:"customer_id"`
	AgentID         *string         `json:"agent_id,omitempty"`
	Type            InteractionType `json:"type"`
	Direction       Direction       `json:"direction"`
	DurationSeconds *int            `json:"duration_seconds,omitempty"`
	DataUsedBytes   int64           `json:"data_used_bytes"`
	StartedAt       time.Time       `json:"started_at"`
}

type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "OPEN"
	TicketStatusInProgress TicketStatus = "IN_PROGRESS"
	TicketStatusResolved   TicketStatus = "RESOLVED"
	TicketStatusClosed     TicketStatus = "CLOSED"
)

func ParseTicketStatus(value string) (TicketStatus, error) {
	switch TicketStatus(value) {
	case TicketStatusOpen, TicketStatusInProgress, TicketStatusResolved, TicketStatusClosed:
		return TicketStatus(value), nil
	}
	return "", &ValidationError{Field: "status", Reason: "status de ticket desconhecido: " + value}
}

type TicketCategory string

const (
	TicketCategoryBilling   TicketCategory = "BILLING"
	TicketCategoryTechnical TicketCategory = "TECHNICAL"
	TicketCategoryRoaming   TicketCategory = "ROAMING"
	TicketCategoryPorting   TicketCategory = "PORTING"
	TicketCategoryComplaint TicketCategory = "COMPLAINT"
)

func ParseTicketCategory(value string) (TicketCategory, error) {
	switch TicketCategory(value) {
	case TicketCategoryBilling, TicketCategoryTechnical, TicketCategoryRoaming,
		TicketCategoryPorting, TicketCategoryComplaint:
		return TicketCategory(value), nil
	}
	return "", &ValidationError{Field: "category", Reason: "categoria de ticket desconhecida: " + value}
}

// IsComplaint informa se a categoria conta como reclamação para o score de churn
func (c TicketCategory) IsComplaint() bool {
	return c == TicketCategoryComplaint || c == TicketCategoryBilling
}

// Ticket é um chamado de suporte. UpdatedAt marca a última mudança de status;
// ResolvedAt só é preenchido quando o ticket foi resolvido.
type Ticket struct {
	ID                     string         `json:"id"`
	OrganizationID         string         `json:"organization_id"`
	CustomerID             string         `json:"customer_id"`
	AssignedTo             *string        `json:"assigned_to,omitempty"`
	Status                 TicketStatus   `json:"status"`
	Category               TicketCategory `json:"category"`
	Priority               string         `json:"priority"`
	HandleTimeSeconds      *int           `json:"handle_time_seconds,omitempty"`
	FirstContactResolution bool           `json:"first_contact_resolution"`
	SatisfactionScore      *float64       `json:"satisfaction_score,omitempty"`
	CreatedAt              time.Time      `json:"created_at"`
	UpdatedAt              time.Time      `json:"updated_at"`
	ResolvedAt             *time.Time     `json:"resolved_at,omitempty"`
}

type TransactionType string

const (
	TransactionTypeTopup   TransactionType = "TOPUP"
	TransactionTypePayment TransactionType = "PAYMENT"
	TransactionTypeRefund  TransactionType = "REFUND"
)

func ParseTransactionType(value string) (TransactionType, error) {
	switch TransactionType(value) {
	case TransactionTypeTopup, TransactionTypePayment, TransactionTypeRefund:
		return TransactionType(value), nil
	}
	return "", &ValidationError{Field: "type", Reason: "tipo de transação desconhecido: " + value}
}

// IsRevenue informa se o tipo de transação entra na receita do dia
func (t TransactionType) IsRevenue() bool {
	return t == TransactionTypeTopup || t == TransactionTypePayment
}

// Transaction é um lançamento financeiro já liquidado do cliente
type Transaction struct {
	ID             string          `json:"id"`
	OrganizationID string          `json:"organization_id"`
	CustomerID     string          `json:"customer_id"`
	Type           TransactionType `json:"type"`
	Amount         float64         `json:"amount"`
	CompletedAt    time.Time       `json:"completed_at"`
}
