package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/cash_dashboard/internal/core/domain"
)

// CashPositionCursor marks the last record of a page. Records are ordered by
// (created_at, id) within a report date.
type CashPositionCursor struct {
	CreatedAt time.Time
	ID        string
}

// CashPositionReader defines read operations for cash position records
type CashPositionReader interface {
	// FindCashPositionsByDate returns every record for a report date.
	FindCashPositionsByDate(ctx context.Context, reportDate string) ([]domain.CashPosition, error)

	// ListCashPositionsByDate returns up to limit records for a report date, starting after the cursor.
	ListCashPositionsByDate(ctx context.Context, reportDate string, limit int, after *CashPositionCursor) ([]domain.CashPosition, error)

	// FindAvailableDates returns the most recent distinct report dates, newest first.
	FindAvailableDates(ctx context.Context, limit int) ([]string, error)

	// FindAllCashPositionIDs returns the ids of every stored record.
	FindAllCashPositionIDs(ctx context.Context) ([]string, error)
}

// CashPositionWriter defines write operations for cash position records
type CashPositionWriter interface {
	// CreateCashPosition persists one record and returns the id assigned to it.
	CreateCashPosition(ctx context.Context, record domain.CashPosition) (string, error)

	// DeleteCashPositionsByIDs removes the given records in a single transaction.
	DeleteCashPositionsByIDs(ctx context.Context, ids []string) (int64, error)
}

// CashPositionRepositoryFacade combines all cash position repository interfaces
type CashPositionRepositoryFacade interface {
	CashPositionReader
	CashPositionWriter
}
