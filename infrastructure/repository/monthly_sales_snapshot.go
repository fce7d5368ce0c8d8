package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/vfg2006/apotek-report-api/infrastructure/database/postgres"
	"github.com/vfg2006/apotek-report-api/internal/domain"
)

const (
	monthlySalesSnapshotsTable = "monthly_sales_snapshots"
	snapshotColumns            = "id, period, total_quantity_sold, total_revenue, refresh_id, created_at, updated_at"
)

type MonthlySalesSnapshotRepository interface {
	SaveOrUpdate(ctx context.Context, snapshots []*domain.MonthlySalesSnapshot) error
	GetByPeriodRange(ctx context.Context, from, to string) ([]*domain.MonthlySalesSnapshot, error)
	GetAllPeriods(ctx context.Context) ([]string, error)
}

type monthlySalesSnapshotRepository struct {
	conn postgres.Queryer
}

func NewMonthlySalesSnapshotRepository(conn postgres.Queryer) MonthlySalesSnapshotRepository {
	return &monthlySalesSnapshotRepository{
		conn: conn,
	}
}

// SaveOrUpdate grava os meses em um único upsert por período
func (r *monthlySalesSnapshotRepository) SaveOrUpdate(ctx context.Context, snapshots []*domain.MonthlySalesSnapshot) error {
	if len(snapshots) == 0 {
		return nil
	}

	query, args, err := buildUpsertQuery(snapshots, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro ao salvar snapshots mensais (%s): %w", pqErr.Code.Name(), err)
		}
		return fmt.Errorf("erro ao salvar snapshots mensais: %w", err)
	}

	return nil
}

// GetByPeriodRange busca os meses entre from e to (YYYY-MM, inclusivos). Vazio não limita.
func (r *monthlySalesSnapshotRepository) GetByPeriodRange(ctx context.Context, from, to string) ([]*domain.MonthlySalesSnapshot, error) {
	query, args, err := buildPeriodRangeQuery(from, to)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	snapshots := make([]*domain.MonthlySalesSnapshot, 0)
	for rows.Next() {
		var (
			snapshot domain.MonthlySalesSnapshot
			revenue  string
		)

		if err := rows.Scan(
			&snapshot.ID,
			&snapshot.Period,
			&snapshot.TotalQuantitySold,
			&revenue,
			&snapshot.RefreshID,
			&snapshot.CreatedAt,
			&snapshot.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear snapshot mensal: %w", err)
		}

		snapshot.TotalRevenue, err = decimal.NewFromString(revenue)
		if err != nil {
			return nil, fmt.Errorf("erro ao converter receita do período %s: %w", snapshot.Period, err)
		}

		snapshots = append(snapshots, &snapshot)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return snapshots, nil
}

func (r *monthlySalesSnapshotRepository) GetAllPeriods(ctx context.Context) ([]string, error) {
	query, args, err := buildAllPeriodsQuery()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	periods := make([]string, 0)
	for rows.Next() {
		var period string
		if err := rows.Scan(&period); err != nil {
			return nil, fmt.Errorf("erro ao escanear período: %w", err)
		}
		periods = append(periods, period)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return periods, nil
}

func buildUpsertQuery(snapshots []*domain.MonthlySalesSnapshot, now time.Time) (string, []any, error) {
	builder := squirrel.
		Insert(monthlySalesSnapshotsTable).
		Columns("id", "period", "total_quantity_sold", "total_revenue", "refresh_id", "created_at", "updated_at")

	for _, s := range snapshots {
		builder = builder.Values(s.ID, s.Period, s.TotalQuantitySold, s.TotalRevenue.String(), s.RefreshID, now, now)
	}

	return builder.
		Suffix(`ON CONFLICT (period) DO UPDATE SET
			total_quantity_sold = EXCLUDED.total_quantity_sold,
			total_revenue = EXCLUDED.total_revenue,
			refresh_id = EXCLUDED.refresh_id,
			updated_at = EXCLUDED.updated_at`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func buildPeriodRangeQuery(from, to string) (string, []any, error) {
	builder := squirrel.
		Select(snapshotColumns).
		From(monthlySalesSnapshotsTable)

	if from != "" {
		builder = builder.Where(squirrel.GtOrEq{"period": from})
	}
	if to != "" {
		builder = builder.Where(squirrel.LtOrEq{"period": to})
	}

	return builder.
		OrderBy("period ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func buildAllPeriodsQuery() (string, []any, error) {
	return squirrel.
		Select("period").
		From(monthlySalesSnapshotsTable).
		OrderBy("period DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}
