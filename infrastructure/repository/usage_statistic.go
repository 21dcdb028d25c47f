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
	usageStatisticsTable = "usage_statistics us"
	usageStatisticsCols  = "us.id, us.organization_id, us.date, us.total_calls, us.total_call_duration_seconds, us.total_data_used_bytes, us.total_sms, us.total_revenue, us.active_customers, us.new_customers, us.churned_customers, us.created_at, us.updated_at"
)

type UsageStatisticRepository interface {
	GetByOrganizationAndDate(organizationID string, date time.Time) (*domain.UsageStatistic, error)
	GetByDateRange(organizationID string, startDate, endDate time.Time) ([]*domain.UsageStatistic, error)
	SaveOrUpdate(stat *domain.UsageStatistic) error
	DeleteOlderThan(days int) (int64, error)
}

type usageStatisticRepository struct {
	conn *postgres.Connection
}

func NewUsageStatisticRepository(conn *postgres.Connection) UsageStatisticRepository {
	return &usageStatisticRepository{
		conn: conn,
	}
}

func (r *usageStatisticRepository) GetByOrganizationAndDate(organizationID string, date time.Time) (*domain.UsageStatistic, error) {
	query, args, err := squirrel.
		Select(usageStatisticsCols).
		From(usageStatisticsTable).
		Where(squirrel.Eq{"us.organization_id": organizationID, "us.date": date.Format("2006-01-02")}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	stat, err := scanUsageStatistic(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear estatística de uso: %w", err)
	}

	return stat, nil
}

func (r *usageStatisticRepository) GetByDateRange(organizationID string, startDate, endDate time.Time) ([]*domain.UsageStatistic, error) {
	query, args, err := squirrel.
		Select(usageStatisticsCols).
		From(usageStatisticsTable).
		Where(squirrel.Eq{"us.organization_id": organizationID}).
		Where(squirrel.GtOrEq{"us.date": startDate.Format("2006-01-02")}).
		Where(squirrel.LtOrEq{"us.date": endDate.Format("2006-01-02")}).
		OrderBy("us.date ASC").
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

	stats := make([]*domain.UsageStatistic, 0)
	for rows.Next() {
		stat, err := scanUsageStatistic(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear estatísticas de uso: %w", err)
		}
		stats = append(stats, stat)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return stats, nil
}

// SaveOrUpdate faz upsert pela chave natural (organization_id, date):
// reprocessar o mesmo dia nunca gera linha duplicada
func (r *usageStatisticRepository) SaveOrUpdate(stat *domain.UsageStatistic) error {
	query := squirrel.StatementBuilder.
		Insert("usage_statistics").
		Columns(
			"organization_id", "date", "total_calls", "total_call_duration_seconds",
			"total_data_used_bytes", "total_sms", "total_revenue",
			"active_customers", "new_customers", "churned_customers",
		).
		Values(
			stat.OrganizationID,
			stat.Date.Format("2006-01-02"),
			stat.TotalCalls,
			stat.TotalCallDurationSeconds,
			stat.TotalDataUsedBytes,
			stat.TotalSMS,
			stat.TotalRevenue,
			stat.ActiveCustomers,
			stat.NewCustomers,
			stat.ChurnedCustomers,
		).
		Suffix(`
			ON CONFLICT (organization_id, date) DO UPDATE SET
				total_calls = EXCLUDED.total_calls,
				total_call_duration_seconds = EXCLUDED.total_call_duration_seconds,
				total_data_used_bytes = EXCLUDED.total_data_used_bytes,
				total_sms = EXCLUDED.total_sms,
				total_revenue = EXCLUDED.total_revenue,
				active_customers = EXCLUDED.active_customers,
				new_customers = EXCLUDED.new_customers,
				churned_customers = EXCLUDED.churned_customers,
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

func (r *usageStatisticRepository) DeleteOlderThan(days int) (int64, error) {
	cutoffDate := time.Now().AddDate(0, 0, -days).Format("2006-01-02")

	query, args, err := squirrel.
		Delete("usage_statistics").
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

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanUsageStatistic(row rowScanner) (*domain.UsageStatistic, error) {
	stat := &domain.UsageStatistic{}

	err := row.Scan(
		&stat.ID,
		&stat.OrganizationID,
		&stat.Date,
		&stat.TotalCalls,
		&stat.TotalCallDurationSeconds,
		&stat.TotalDataUsedBytes,
		&stat.TotalSMS,
		&stat.TotalRevenue,
		&stat.ActiveCustomers,
		&stat.NewCustomers,
		&stat.ChurnedCustomers,
		&stat.CreatedAt,
		&stat.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	stat.Date = stat.Date.UTC()

	return stat, nil
}
