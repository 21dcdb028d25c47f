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
	agentPerformanceTable = "agent_performance ap"
	agentPerformanceCols  = "ap.id, ap.organization_id, ap.agent_id, ap.date, ap.tickets_handled, ap.tickets_resolved, ap.avg_handle_time_seconds, ap.first_contact_resolution_rate, ap.satisfaction_score, ap.calls_answered, ap.avg_call_duration_seconds, ap.performance_score, ap.created_at, ap.updated_at"
)

type AgentPerformanceRepository interface {
	GetByAgentAndDate(organizationID, agentID string, date time.Time) (*domain.AgentPerformance, error)
	GetByDateRange(organizationID, agentID string, startDate, endDate time.Time) ([]*domain.AgentPerformance, error)
	SaveOrUpdate(perf *domain.AgentPerformance) error
	DeleteOlderThan(days int) (int64, error)
}

type agentPerformanceRepository struct {
	conn *postgres.Connection
}

func NewAgentPerformanceRepository(conn *postgres.Connection) AgentPerformanceRepository {
	return &agentPerformanceRepository{
		conn: conn,
	}
}

func (r *agentPerformanceRepository) GetByAgentAndDate(organizationID, agentID string, date time.Time) (*domain.AgentPerformance, error) {
	query, args, err := squirrel.
		Select(agentPerformanceCols).
		From(agentPerformanceTable).
		Where(squirrel.Eq{
			"ap.organization_id": organizationID,
			"ap.agent_id":        agentID,
			"ap.date":            date.Format("2006-01-02"),
		}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	perf, err := scanAgentPerformance(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear desempenho do agente: %w", err)
	}

	return perf, nil
}

func (r *agentPerformanceRepository) GetByDateRange(organizationID, agentID string, startDate, endDate time.Time) ([]*domain.AgentPerformance, error) {
	query, args, err := squirrel.
		Select(agentPerformanceCols).
		From(agentPerformanceTable).
		Where(squirrel.Eq{"ap.organization_id": organizationID, "ap.agent_id": agentID}).
		Where(squirrel.GtOrEq{"ap.date": startDate.Format("2006-01-02")}).
		Where(squirrel.LtOrEq{"ap.date": endDate.Format("2006-01-02")}).
		OrderBy("ap.date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	records := make([]*domain.AgentPerformance, 0)
	for rows.Next() {
		perf, err := scanAgentPerformance(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear registros de desempenho: %w", err)
		}
		records = append(records, perf)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

// SaveOrUpdate faz upsert pela chave natural (organization_id, agent_id, date)
func (r *agentPerformanceRepository) SaveOrUpdate(perf *domain.AgentPerformance) error {
	query := squirrel.StatementBuilder.
		Insert("agent_performance").
		Columns(
			"organization_id", "agent_id", "date", "tickets_handled", "tickets_resolved",
			"avg_handle_time_seconds", "first_contact_resolution_rate", "satisfaction_score",
			"calls_answered", "avg_call_duration_seconds", "performance_score",
		).
		Values(
			perf.OrganizationID,
			perf.AgentID,
			perf.Date.Format("2006-01-02"),
			perf.TicketsHandled,
			perf.TicketsResolved,
			perf.AvgHandleTimeSeconds,
			perf.FirstContactResolutionRate,
			perf.SatisfactionScore,
			perf.CallsAnswered,
			perf.AvgCallDurationSeconds,
			perf.PerformanceScore,
		).
		Suffix(`
			ON CONFLICT (organization_id, agent_id, date) DO UPDATE SET
				tickets_handled = EXCLUDED.tickets_handled,
				tickets_resolved = EXCLUDED.tickets_resolved,
				avg_handle_time_seconds = EXCLUDED.avg_handle_time_seconds,
				first_contact_resolution_rate = EXCLUDED.first_contact_resolution_rate,
				satisfaction_score = EXCLUDED.satisfaction_score,
				calls_answered = EXCLUDED.calls_answered,
				avg_call_duration_seconds = EXCLUDED.avg_call_duration_seconds,
				performance_score = EXCLUDED.performance_score,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *agentPerformanceRepository) DeleteOlderThan(days int) (int64, error) {
	cutoffDate := time.Now().AddDate(0, 0, -days).Format("2006-01-02")

	query, args, err := squirrel.
		Delete("agent_performance").
		Where(squirrel.Lt{"date": cutoffDate}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

func scanAgentPerformance(row rowScanner) (*domain.AgentPerformance, error) {
	perf := &domain.AgentPerformance{}

	err := row.Scan(
		&perf.ID,
		&perf.OrganizationID,
		&perf.AgentID,
		&perf.Date,
		&perf.TicketsHandled,
		&perf.TicketsResolved,
		&perf.AvgHandleTimeSeconds,
		&perf.FirstContactResolutionRate,
		&perf.SatisfactionScore,
		&perf.CallsAnswered,
		&perf.AvgCallDurationSeconds,
		&perf.PerformanceScore,
		&perf.CreatedAt,
		&perf.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	perf.Date = perf.Date.UTC()

	return perf, nil
}
