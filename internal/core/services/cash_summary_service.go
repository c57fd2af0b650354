package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/cash_dashboard/internal/apperrors"
	"github.com/SscSPs/cash_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/cash_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cash_dashboard/internal/core/ports/services"
	"github.com/SscSPs/cash_dashboard/internal/dto"
	"github.com/SscSPs/cash_dashboard/internal/utils/cashposition"
	"github.com/SscSPs/cash_dashboard/internal/utils/pagination"
)

// AvailableDatesLimit caps how many report dates the date picker offers.
const AvailableDatesLimit = 20

// cashSummaryService implements the CashSummarySvcFacade interface
type cashSummaryService struct {
	BaseService
	cashPositionRepo  portsrepo.CashPositionReader
	referenceDataRepo portsrepo.ReferenceDataReader
}

// NewCashSummaryService creates a new cash summary service
func NewCashSummaryService(cashPositionRepo portsrepo.CashPositionReader, referenceDataRepo portsrepo.ReferenceDataReader) portssvc.CashSummarySvcFacade {
	return &cashSummaryService{
		cashPositionRepo:  cashPositionRepo,
		referenceDataRepo: referenceDataRepo,
	}
}

var _ portssvc.CashSummarySvcFacade = (*cashSummaryService)(nil)

// GetCashSummary aggregates the records of one report date against a fresh
// snapshot of the lookup tables.
func (s *cashSummaryService) GetCashSummary(ctx context.Context, reportDate string) (*domain.CashSummary, error) {
	if reportDate == "" {
		dates, err := s.cashPositionRepo.FindAvailableDates(ctx, 1)
		if err != nil {
			s.LogError(ctx, err, "Failed to find latest report date")
			return nil, fmt.Errorf("failed to find latest report date: %w", err)
		}
		if len(dates) == 0 {
			empty := cashposition.Aggregate(nil, domain.ReferenceSnapshot{})
			return &empty, nil
		}
		reportDate = dates[0]
	} else if !cashposition.IsReportDate(reportDate) {
		return nil, apperrors.NewValidationError("Report date must be in YYYY-MM-DD format")
	}

	records, err := s.cashPositionRepo.FindCashPositionsByDate(ctx, reportDate)
	if err != nil {
		s.LogError(ctx, err, "Failed to load cash positions", slog.String("report_date", reportDate))
		return nil, fmt.Errorf("failed to load cash positions for %s: %w", reportDate, err)
	}

	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	summary := cashposition.Aggregate(records, snap)
	summary.ReportDate = reportDate

	if summary.Unresolved.Count > 0 {
		s.LogWarn(ctx, "Records with unresolved account types excluded from totals",
			slog.String("report_date", reportDate),
			slog.Int("count", summary.Unresolved.Count),
			slog.Any("account_type_ids", summary.Unresolved.AccountTypeIDs))
	}

	s.LogDebug(ctx, "Cash summary aggregated",
		slog.String("report_date", reportDate),
		slog.Int("records", len(records)),
		slog.Int("companies", len(summary.Summaries)))
	return &summary, nil
}

func (s *cashSummaryService) snapshot(ctx context.Context) (domain.ReferenceSnapshot, error) {
	companies, err := s.referenceDataRepo.ListCompanies(ctx, true)
	if err != nil {
		s.LogError(ctx, err, "Failed to load companies")
		return domain.ReferenceSnapshot{}, fmt.Errorf("failed to load companies: %w", err)
	}
	accountTypes, err := s.referenceDataRepo.ListAccountTypes(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load account types")
		return domain.ReferenceSnapshot{}, fmt.Errorf("failed to load account types: %w", err)
	}
	subAccounts, err := s.referenceDataRepo.ListSubAccounts(ctx, true)
	if err != nil {
		s.LogError(ctx, err, "Failed to load sub-accounts")
		return domain.ReferenceSnapshot{}, fmt.Errorf("failed to load sub-accounts: %w", err)
	}
	return domain.ReferenceSnapshot{
		Companies:    companies,
		AccountTypes: accountTypes,
		SubAccounts:  subAccounts,
	}, nil
}

// GetAvailableDates returns the most recent report dates, newest first.
func (s *cashSummaryService) GetAvailableDates(ctx context.Context) ([]string, error) {
	dates, err := s.cashPositionRepo.FindAvailableDates(ctx, AvailableDatesLimit)
	if err != nil {
		s.LogError(ctx, err, "Failed to list available dates")
		return nil, fmt.Errorf("failed to list available dates: %w", err)
	}
	if dates == nil {
		dates = []string{}
	}
	return dates, nil
}

// ListCashPositions returns one page of raw records for a report date.
func (s *cashSummaryService) ListCashPositions(ctx context.Context, params dto.ListCashPositionsParams) (*dto.ListCashPositionsResponse, error) {
	var after *portsrepo.CashPositionCursor
	if params.NextToken != nil && *params.NextToken != "" {
		createdAt, id, err := pagination.DecodeCursorToken(*params.NextToken)
		if err != nil {
			s.LogWarn(ctx, "Invalid pagination token", slog.String("error", err.Error()))
			return nil, apperrors.NewValidationError("Invalid pagination token")
		}
		after = &portsrepo.CashPositionCursor{CreatedAt: createdAt, ID: id}
	}

	limit := params.Limit
	if limit <= 0 {
		limit = 50
	}

	// One extra row tells us whether another page exists.
	records, err := s.cashPositionRepo.ListCashPositionsByDate(ctx, params.Date, limit+1, after)
	if err != nil {
		s.LogError(ctx, err, "Failed to list cash positions", slog.String("report_date", params.Date))
		return nil, fmt.Errorf("failed to list cash positions: %w", err)
	}

	resp := &dto.ListCashPositionsResponse{CashPositions: records}
	if len(records) > limit {
		resp.CashPositions = records[:limit]
		last := resp.CashPositions[limit-1]
		token := pagination.EncodeCursorToken(last.CreatedAt, last.ID)
		resp.NextToken = &token
	}
	if resp.CashPositions == nil {
		resp.CashPositions = []domain.CashPosition{}
	}
	return resp, nil
}
