package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/teledash/analytics-api/infrastructure/database/postgres"
	"github.com/teledash/analytics-api/internal/domain"
)

// EventRepository é a face de leitura do EventStore: janelas de eventos
// brutos por organização, já validados e escopados pelo produto. Este
// serviço nunca escreve nessas tabelas.
type EventRepository interface {
	ListInteractions(organizationID string, start, end time.Time) ([]*domain.Interaction, error)
	// ListTickets retorna tickets com mudança de status dentro da janela
	ListTickets(organizationID string, start, end time.Time) ([]*domain.Ticket, error)
	ListTransactions(organizationID string, start, end time.Time) ([]*domain.Transaction, error)
	// ListActiveAgentIDs retorna os agentes distintos com atividade na janela
	ListActiveAgentIDs(organizationID string, start, end time.Time) ([]string, error)
	// ListFirstSeenCustomerIDs retorna clientes cujo primeiro evento de todos
	// os tempos cai dentro da janela
	ListFirstSeenCustomerIDs(organizationID string, start, end time.Time) ([]string, error)
	CountComplaintTickets(organizationID, customerID string, since time.Time) (int, error)
	LastTransactionAt(organizationID, customerID string) (*time.Time, error)
}

type eventRepository struct {
	conn *postgres.Connection
}

func NewEventRepository(conn *postgres.Connection) EventRepository {
	return &eventRepository{
		conn: conn,
	}
}

func (r *eventRepository) ListInteractions(organizationID string, start, end time.Time) ([]*domain.Interaction, error) {
	query, args, err := squirrel.
		Select("i.id, i.organization_id, i.customer_id, i.agent_id, i.type, i.direction, i.duration_seconds, i.data_used_bytes, i.started_at").
		From("interactions i").
		Where(squirrel.Eq{"i.organization_id": organizationID}).
		Where(squirrel.GtOrEq{"i.started_at": start}).
		Where(squirrel.Lt{"i.started_at": end}).
		OrderBy("i.started_at ASC").
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

	interactions := make([]*domain.Interaction, 0)
	for rows.Next() {
		it := &domain.Interaction{}
		var itype, direction string

		err := rows.Scan(
			&it.ID,
			&it.OrganizationID,
			&it.CustomerID,
			&it.AgentID,
			&itype,
			&direction,
			&it.DurationSeconds,
			&it.DataUsedBytes,
			&it.StartedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear interações: %w", err)
		}

		it.Type, err = domain.ParseInteractionType(itype)
		if err != nil {
			return nil, err
		}
		it.Direction, err = domain.ParseDirection(direction)
		if err != nil {
			return nil, err
		}

		interactions = append(interactions, it)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return interactions, nil
}

func (r *eventRepository) ListTickets(organizationID string, start, end time.Time) ([]*domain.Ticket, error) {
	query, args, err := squirrel.
		Select("t.id, t.organization_id, t.customer_id, t.assigned_to, t.status, t.category, t.priority, t.handle_time_seconds, t.first_contact_resolution, t.satisfaction_score, t.created_at, t.updated_at, t.resolved_at").
		From("tickets t").
		Where(squirrel.Eq{"t.organization_id": organizationID}).
		Where(squirrel.GtOrEq{"t.updated_at": start}).
		Where(squirrel.Lt{"t.updated_at": end}).
		OrderBy("t.updated_at ASC").
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

	tickets := make([]*domain.Ticket, 0)
	for rows.Next() {
		tk := &domain.Ticket{}
		var status, category string

		err := rows.Scan(
			&tk.ID,
			&tk.OrganizationID,
			&tk.CustomerID,
			&tk.AssignedTo,
			&status,
			&category,
			&tk.Priority,
			&tk.HandleTimeSeconds,
			&tk.FirstContactResolution,
			&tk.SatisfactionScore,
			&tk.CreatedAt,
			&tk.UpdatedAt,
			&tk.ResolvedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear tickets: %w", err)
		}

		tk.Status, err = domain.ParseTicketStatus(status)
		if err != nil {
			return nil, err
		}
		tk.Category, err = domain.ParseTicketCategory(category)
		if err != nil {
			return nil, err
		}

		tickets = append(tickets, tk)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return tickets, nil
}

func (r *eventRepository) ListTransactions(organizationID string, start, end time.Time) ([]*domain.Transaction, error) {
	query, args, err := squirrel.
		Select("tx.id, tx.organization_id, tx.customer_id, tx.type, tx.amount, tx.completed_at").
		From("transactions tx").
		Where(squirrel.Eq{"tx.organization_id": organizationID}).
		Where(squirrel.GtOrEq{"tx.completed_at": start}).
		Where(squirrel.Lt{"tx.completed_at": end}).
		OrderBy("tx.completed_at ASC").
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

	transactions := make([]*domain.Transaction, 0)
	for rows.Next() {
		tx := &domain.Transaction{}
		var txType string

		err := rows.Scan(
			&tx.ID,
			&tx.OrganizationID,
			&tx.CustomerID,
			&txType,
			&tx.Amount,
			&tx.CompletedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear transações: %w", err)
		}

		tx.Type, err = domain.ParseTransactionType(txType)
		if err != nil {
			return nil, err
		}

		transactions = append(transactions, tx)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return transactions, nil
}

func (r *eventRepository) ListActiveAgentIDs(organizationID string, start, end time.Time) ([]string, error) {
	// Agentes com tickets movimentados ou chamadas atendidas na janela
	query := `
		SELECT DISTINCT agent_id FROM (
			SELECT assigned_to AS agent_id
			FROM tickets
			WHERE organization_id = $1 AND assigned_to IS NOT NULL
				AND updated_at >= $2 AND updated_at < $3
			UNION
			SELECT agent_id
			FROM interactions
			WHERE organization_id = $1 AND agent_id IS NOT NULL
				AND started_at >= $2 AND started_at < $3
		) agents
		ORDER BY agent_id
	`

	rows, err := r.conn.Query(query, organizationID, start, end)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("erro ao escanear IDs de agentes: %w", err)
		}
		ids = append(ids, id)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return ids, nil
}

func (r *eventRepository) ListFirstSeenCustomerIDs(organizationID string, start, end time.Time) ([]string, error) {
	query := `
		SELECT customer_id FROM (
			SELECT customer_id, MIN(first_seen) AS first_seen FROM (
				SELECT customer_id, MIN(started_at) AS first_seen
				FROM interactions WHERE organization_id = $1 GROUP BY customer_id
				UNION ALL
				SELECT customer_id, MIN(created_at) AS first_seen
				FROM tickets WHERE organization_id = $1 GROUP BY customer_id
				UNION ALL
				SELECT customer_id, MIN(completed_at) AS first_seen
				FROM transactions WHERE organization_id = $1 GROUP BY customer_id
			) firsts
			GROUP BY customer_id
		) combined
		WHERE first_seen >= $2 AND first_seen < $3
		ORDER BY customer_id
	`

	rows, err := r.conn.Query(query, organizationID, start, end)
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

func (r *eventRepository) CountComplaintTickets(organizationID, customerID string, since time.Time) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From("tickets t").
		Where(squirrel.Eq{
			"t.organization_id": organizationID,
			"t.customer_id":     customerID,
			"t.category": []domain.TicketCategory{
				domain.TicketCategoryComplaint,
				domain.TicketCategoryBilling,
			},
		}).
		Where(squirrel.GtOrEq{"t.created_at": since}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar tickets de reclamação: %w", err)
	}

	return count, nil
}

func (r *eventRepository) LastTransactionAt(organizationID, customerID string) (*time.Time, error) {
	query, args, err := squirrel.
		Select("MAX(tx.completed_at)").
		From("transactions tx").
		Where(squirrel.Eq{"tx.organization_id": organizationID, "tx.customer_id": customerID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var last sql.NullTime
	if err := r.conn.QueryRow(query, args...).Scan(&last); err != nil {
		return nil, fmt.Errorf("erro ao buscar última transação: %w", err)
	}

	if !last.Valid {
		return nil, nil
	}

	return &last.Time, nil
}
