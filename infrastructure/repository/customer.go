package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/teledash/analytics-api/infrastructure/database/postgres"
	"github.com/teledash/analytics-api/internal/domain"
)

const (
	customersTable = "customers c"
	customersCols  = "c.id, c.organization_id, c.code, c.name, c.phone_number, c.plan_type, c.status, c.account_balance, c.activated_at, c.churn_score, c.churn_risk, c.churned_at, c.created_at, c.updated_at"
)

type CustomerRepository interface {
	GetByID(id string) (*domain.Customer, error)
	ListByOrganization(organizationID string, statuses []domain.CustomerStatus) ([]*domain.Customer, error)
	// ListChurnedOn retorna os IDs dos clientes marcados como churned no dia
	ListChurnedOn(organizationID string, day time.Time) ([]string, error)
	// UpdateChurn grava os campos derivados do scorer; nada mais é mutável aqui
	UpdateChurn(customerID string, score float64, level domain.ChurnRiskLevel) error
}

type customerRepository struct {
	conn *postgres.Connection
}

func NewCustomerRepository(conn *postgres.Connection) CustomerRepository {
	return &customerRepository{
		conn: conn,
	}
}

func (r *customerRepository) GetByID(id string) (*domain.Customer, error) {
	query, args, err := squirrel.
		Select(customersCols).
		From(customersTable).
		Where(squirrel.Eq{"c.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	customer, err := scanCustomer(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear cliente: %w", err)
	}

	return customer, nil
}

func (r *customerRepository) ListByOrganization(organizationID string, statuses []domain.CustomerStatus) ([]*domain.Customer, error) {
	builder := squirrel.
		Select(customersCols).
		From(customersTable).
		Where(squirrel.Eq{"c.organization_id": organizationID})

	if len(statuses) > 0 {
		builder = builder.Where(squirrel.Eq{"c.status": statuses})
	}

	query, args, err := builder.
		OrderBy("c.code ASC").
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

	customers := make([]*domain.Customer, 0)
	for rows.Next() {
		customer, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear clientes: %w", err)
		}
		customers = append(customers, customer)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return customers, nil
}

func (r *customerRepository) ListChurnedOn(organizationID string, day time.Time) ([]string, error) {
	dayStart := day.UTC().Format("2006-01-02")
	dayEnd := day.UTC().AddDate(0, 0, 1).Format("2006-01-02")

	query, args, err := squirrel.
		Select("c.id").
		From(customersTable).
		Where(squirrel.Eq{"c.organization_id": organizationID, "c.status": domain.CustomerStatusChurned}).
		Where(squirrel.GtOrEq{"c.churned_at": dayStart}).
		Where(squirrel.Lt{"c.churned_at": dayEnd}).
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

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("erro ao escanear IDs de clientes: %w", err)
		}
		ids = append(ids, id)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return ids, nil
}

func (r *customerRepository) UpdateChurn(customerID string, score float64, level domain.ChurnRiskLevel) error {
	query, args, err := squirrel.
		Update("customers").
		Set("churn_score", score).
		Set("churn_risk", string(level)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": customerID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func scanCustomer(row rowScanner) (*domain.Customer, error) {
	customer := &domain.Customer{}
	var planType, status, churnRisk string

	err := row.Scan(
		&customer.ID,
		&customer.OrganizationID,
		&customer.Code,
		&customer.Name,
		&customer.PhoneNumber,
		&planType,
		&status,
		&customer.AccountBalance,
		&customer.ActivatedAt,
		&customer.ChurnScore,
		&churnRisk,
		&customer.ChurnedAt,
		&customer.CreatedAt,
		&customer.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	// Enums validados na borda: linha com tag desconhecida falha na hora,
	// nunca segue adiante como string solta
	customer.PlanType, err = domain.ParsePlanType(planType)
	if err != nil {
		return nil, err
	}
	customer.Status, err = domain.ParseCustomerStatus(status)
	if err != nil {
		return nil, err
	}
	customer.ChurnRisk, err = domain.ParseChurnRiskLevel(churnRisk)
	if err != nil {
		return nil, err
	}

	return customer, nil
}
