package services

import (
	"context"

	"github.com/SscSPs/cash_dashboard/internal/core/domain"
	"github.com/SscSPs/cash_dashboard/internal/dto"
)

// CashSummarySvcFacade defines the dashboard read operations
type CashSummarySvcFacade interface {
	// GetCashSummary aggregates the records of a report date. An empty date
	// selects the most recent date with data.
	GetCashSummary(ctx context.Context, reportDate string) (*domain.CashSummary, error)

	// GetAvailableDates returns the most recent report dates with data, newest first.
	GetAvailableDates(ctx context.Context) ([]string, error)

	// ListCashPositions returns a page of raw records for a report date.
	ListCashPositions(ctx context.Context, params dto.ListCashPositionsParams) (*dto.ListCashPositionsResponse, error)
}
