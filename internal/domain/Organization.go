package domain

import (
	"time"
)

type OrganizationStatus string

const (
	OrganizationStatusActive    OrganizationStatus = "ACTIVE"
	OrganizationStatusSuspended OrganizationStatus = "SUSPENDED"
)

// ParseOrganizationStatus valida um status de organização vindo da borda
func ParseOrganizationStatus(value string) (OrganizationStatus, error) {
	switch OrganizationStatus(value) {
	case OrganizationStatusActive, OrganizationStatusSuspended:
		return OrganizationStatus(value), nil
	}
	return "", &ValidationError{Field: "status", Reason: "status de organização desconhecido: " + value}
}

// Organization representa um tenant isolado; todos os agregados e scores são particionados por ele
type Organization struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Slug      string             `json:"slug"`
	Status    OrganizationStatus `json:"status"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}
