package pgsql

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/cash_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/cash_dashboard/internal/core/ports/repositories"
	"github.com/SscSPs/cash_dashboard/internal/middleware"
	"github.com/SscSPs/cash_dashboard/internal/models"
	"github.com/SscSPs/cash_dashboard/internal/utils/mapping"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const cashPositionColumns = `id, report_date, company_id, account_type_id, sub_account_id, amount, created_at, created_by`

type PgxCashPositionRepository struct {
	BaseRepository
}

func newPgxCashPositionRepository(pool *pgxpool.Pool) *PgxCashPositionRepository {
	return &PgxCashPositionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.CashPositionRepositoryFacade = (*PgxCashPositionRepository)(nil)

func scanCashPosition(row pgx.CollectableRow) (models.CashPosition, error) {
	var m models.CashPosition
	err := row.Scan(
		&m.ID,
		&m.ReportDate,
		&m.CompanyID,
		&m.AccountTypeID,
		&m.SubAccountID,
		&m.Amount,
		&m.CreatedAt,
		&m.CreatedBy,
	)
	return m, err
}

// CreateCashPosition inserts one record under a freshly generated id. Ids are
// time-ordered, so records sharing created_at keep insertion order.
func (r *PgxCashPositionRepository) CreateCashPosition(ctx context.Context, record domain.CashPosition) (string, error) {
	id, err := newCashPositionID()
	if err != nil {
		return "", err
	}
	m := mapping.ToModelCashPosition(record)
	m.ID = id

	query := `
		INSERT INTO cash_positions (` + cashPositionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err = r.Pool.Exec(ctx, query,
		m.ID,
		m.ReportDate,
		m.CompanyID,
		m.AccountTypeID,
		m.SubAccountID,
		m.Amount,
		m.CreatedAt,
		m.CreatedBy,
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert cash position: %w", err)
	}
	return m.ID, nil
}

func newCashPositionID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate cash position id: %w", err)
	}
	return id.String(), nil
}

// FindCashPositionsByDate returns every record for a report date in insertion order.
func (r *PgxCashPositionRepository) FindCashPositionsByDate(ctx context.Context, reportDate string) ([]domain.CashPosition, error) {
	query := `
		SELECT ` + cashPositionColumns + `
		FROM cash_positions
		WHERE report_date = $1
		ORDER BY created_at, id;
	`
	rows, err := r.Pool.Query(ctx, query, reportDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query cash positions for %s: %w", reportDate, err)
	}
	defer rows.Close()

	modelPositions, err := pgx.CollectRows(rows, scanCashPosition)
	if err != nil {
		return nil, fmt.Errorf("failed to scan cash positions: %w", err)
	}
	return mapping.ToDomainCashPositionSlice(modelPositions), nil
}

// ListCashPositionsByDate returns a keyset page ordered by (created_at, id).
func (r *PgxCashPositionRepository) ListCashPositionsByDate(ctx context.Context, reportDate string, limit int, after *portsrepo.CashPositionCursor) ([]domain.CashPosition, error) {
	var rows pgx.Rows
	var err error
	if after == nil {
		query := `
			SELECT ` + cashPositionColumns + `
			FROM cash_positions
			WHERE report_date = $1
			ORDER BY created_at, id
			LIMIT $2;
		`
		rows, err = r.Pool.Query(ctx, query, reportDate, limit)
	} else {
		query := `
			SELECT ` + cashPositionColumns + `
			FROM cash_positions
			WHERE report_date = $1 AND (created_at, id) > ($2, $3)
			ORDER BY created_at, id
			LIMIT $4;
		`
		rows, err = r.Pool.Query(ctx, query, reportDate, after.CreatedAt, after.ID, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list cash positions for %s: %w", reportDate, err)
	}
	defer rows.Close()

	modelPositions, err := pgx.CollectRows(rows, scanCashPosition)
	if err != nil {
		return nil, fmt.Errorf("failed to scan cash positions: %w", err)
	}
	return mapping.ToDomainCashPositionSlice(modelPositions), nil
}

// FindAvailableDates returns the most recent distinct report dates. Dates
// are stored as YYYY-MM-DD text, so text order is date order.
func (r *PgxCashPositionRepository) FindAvailableDates(ctx context.Context, limit int) ([]string, error) {
	query := `
		SELECT DISTINCT report_date
		FROM cash_positions
		ORDER BY report_date DESC
		LIMIT $1;
	`
	rows, err := r.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query report dates: %w", err)
	}
	defer rows.Close()

	dates, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to scan report dates: %w", err)
	}
	return dates, nil
}

// FindAllCashPositionIDs returns the id of every stored record.
func (r *PgxCashPositionRepository) FindAllCashPositionIDs(ctx context.Context) ([]string, error) {
	rows, err := r.Pool.Query(ctx, `SELECT id FROM cash_positions ORDER BY created_at, id;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query cash position ids: %w", err)
	}
	defer rows.Close()

	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to scan cash position ids: %w", err)
	}
	return ids, nil
}

// DeleteCashPositionsByIDs removes the given records in one transaction.
func (r *PgxCashPositionRepository) DeleteCashPositionsByIDs(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() {
		if rbErr := r.Rollback(ctx, tx); rbErr != nil {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to rollback delete batch", slog.String("error", rbErr.Error()))
		}
	}()

	tag, err := tx.Exec(ctx, `DELETE FROM cash_positions WHERE id = ANY($1);`, ids)
	if err != nil {
		return 0, fmt.Errorf("failed to delete cash positions: %w", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
