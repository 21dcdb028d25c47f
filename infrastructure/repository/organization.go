package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/teledash/analytics-api/infrastructure/database/postgres"
	"github.com/teledash/analytics-api/internal/domain"
)

const (
	organizationsTable = "organizations o"
	organizationsCols  = "o.id, o.name, o.slug, o.status, o.created_at, o.updated_at"
)

// OrganizationRepository é o diretório de tenants: lista organizações para
// os batches e resolve se um ID pertence a um tenant conhecido
type OrganizationRepository interface {
	GetByID(id string) (*domain.Organization, error)
	ListByStatus(statuses []domain.OrganizationStatus) ([]*domain.Organization, error)
}

type organizationRepository struct {
	conn *postgres.Connection
}

func NewOrganizationRepository(conn *postgres.Connection) OrganizationRepository {
	return &organizationRepository{
		conn: conn,
	}
}

func (r *organizationRepository) GetByID(id string) (*domain.Organization, error) {
	query, args, err := squirrel.
		Select(organizationsCols).
		From(organizationsTable).
		Where(squirrel.Eq{"o.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	org, err := scanOrganization(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear organização: %w", err)
	}

	return org, nil
}

func (r *organizationRepository) ListByStatus(statuses []domain.OrganizationStatus) ([]*domain.Organization, error) {
	query, args, err := squirrel.
		Select(organizationsCols).
		From(organizationsTable).
		Where(squirrel.Eq{"o.status": statuses}).
		OrderBy("o.name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	orgs := make([]*domain.Organization, 0)
	for rows.Next() {
		org, err := scanOrganization(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear organizações: %w", err)
		}
		orgs = append(orgs, org)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return orgs, nil
}

func scanOrganization(row rowScanner) (*domain.Organization, error) {
	org := &domain.Organization{}
	var status string

	err := row.Scan(
		&org.ID,
		&org.Name,
		&org.Slug,
		&status,
		&org.CreatedAt,
		&org.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	org.Status, err = domain.ParseOrganizationStatus(status)
	if err != nil {
		return nil, err
	}

	return org, nil
}
