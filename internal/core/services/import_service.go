package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/SscSPs/cash_dashboard/internal/apperrors"
	"github.com/SscSPs/cash_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/cash_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cash_dashboard/internal/core/ports/services"
	"github.com/SscSPs/cash_dashboard/internal/utils/cashposition"
)

const (
	// DeleteBatchSize is how many records one delete-all transaction removes.
	DeleteBatchSize = 500

	previewRowLimit = 10
)

// importService implements the ImportSvcFacade interface
type importService struct {
	BaseService
	cashPositionRepo portsrepo.CashPositionRepositoryFacade
	archiver         portsrepo.UploadArchiver
	deleteBatchSize  int
	now              func() time.Time
}

// ImportServiceOption is a functional option for configuring the import service
type ImportServiceOption func(*importService)

// WithUploadArchiver makes ImportFile keep a copy of every accepted upload.
func WithUploadArchiver(archiver portsrepo.UploadArchiver) ImportServiceOption {
	return func(s *importService) {
		s.archiver = archiver
	}
}

// WithDeleteBatchSize overrides DeleteBatchSize.
func WithDeleteBatchSize(size int) ImportServiceOption {
	return func(s *importService) {
		if size > 0 {
			s.deleteBatchSize = size
		}
	}
}

// NewImportService creates a new import service with the provided options
func NewImportService(repo portsrepo.CashPositionRepositoryFacade, options ...ImportServiceOption) portssvc.ImportSvcFacade {
	svc := &importService{
		cashPositionRepo: repo,
		deleteBatchSize:  DeleteBatchSize,
		now:              time.Now,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

var _ portssvc.ImportSvcFacade = (*importService)(nil)

// Template returns the example upload file.
func (s *importService) Template() string {
	return cashposition.Template
}

// PreviewImport parses and validates an upload without writing anything.
func (s *importService) PreviewImport(ctx context.Context, csv io.Reader) (*domain.ImportPreview, error) {
	rows, err := cashposition.ReadRows(csv)
	if err != nil {
		s.LogWarn(ctx, "Rejected malformed CSV in preview", slog.String("error", err.Error()))
		return nil, err
	}

	valid, problems, invalid := cashposition.Check(rows)

	preview := &domain.ImportPreview{
		Total:   len(rows),
		Valid:   len(valid),
		Invalid: invalid,
		Errors:  problems,
		Rows:    valid[:min(previewRowLimit, len(valid))],
	}

	s.LogDebug(ctx, "Import preview built",
		slog.Int("total", preview.Total),
		slog.Int("valid", preview.Valid),
		slog.Int("invalid", preview.Invalid))
	return preview, nil
}

// ImportFile validates every row first and writes nothing unless all rows are valid.
func (s *importService) ImportFile(ctx context.Context, csv io.Reader, fileName string, userID string) (*domain.ImportReport, error) {
	data, err := io.ReadAll(csv)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}

	rows, err := cashposition.ReadRows(bytes.NewReader(data))
	if err != nil {
		s.LogWarn(ctx, "Rejected malformed CSV", slog.String("file_name", fileName), slog.String("error", err.Error()))
		return nil, err
	}

	valid, problems, invalid := cashposition.Check(rows)
	if len(problems) > 0 {
		s.LogInfo(ctx, "Rejected import with invalid rows",
			slog.String("file_name", fileName),
			slog.Int("invalid_rows", invalid),
			slog.Int("problems", len(problems)))
		return nil, apperrors.NewValidationError(problems...)
	}
	if len(valid) == 0 {
		return nil, apperrors.NewValidationError("No valid rows to import")
	}

	report := &domain.ImportReport{}
	if s.archiver != nil {
		location, err := s.archiver.ArchiveUpload(ctx, fileName, data)
		if err != nil {
			s.LogError(ctx, err, "Failed to archive upload, continuing with import", slog.String("file_name", fileName))
		} else {
			report.ArchivedTo = location
		}
	}

	report.Results = s.ImportRecords(ctx, valid, userID)
	report.Total = len(report.Results)
	for _, r := range report.Results {
		if r.Success {
			report.Succeeded++
		} else {
			report.Failed++
		}
	}

	s.LogInfo(ctx, "Import finished",
		slog.String("file_name", fileName),
		slog.Int("total", report.Total),
		slog.Int("succeeded", report.Succeeded),
		slog.Int("failed", report.Failed))
	return report, nil
}

// ImportRecords writes each record on its own, in order. A failed write is
// reported in its result and does not stop the rest.
func (s *importService) ImportRecords(ctx context.Context, records []domain.CashPosition, userID string) []domain.ImportResult {
	results := make([]domain.ImportResult, 0, len(records))
	createdAt := s.now().UTC()

	for _, record := range records {
		record.CreatedAt = createdAt
		record.CreatedBy = userID

		id, err := s.cashPositionRepo.CreateCashPosition(ctx, record)
		if err != nil {
			s.LogError(ctx, err, "Failed to persist cash position",
				slog.String("company_id", record.CompanyID),
				slog.String("account_type_id", record.AccountTypeID))
			results = append(results, domain.ImportResult{Success: false, Error: err.Error()})
			continue
		}
		results = append(results, domain.ImportResult{Success: true, ID: id})
	}

	return results
}

// DeleteAllCashPositions removes every stored record, one transaction per batch.
func (s *importService) DeleteAllCashPositions(ctx context.Context, userID string) (int, error) {
	ids, err := s.cashPositionRepo.FindAllCashPositionIDs(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list cash positions for deletion")
		return 0, fmt.Errorf("failed to list cash positions: %w", err)
	}

	deleted := 0
	for start := 0; start < len(ids); start += s.deleteBatchSize {
		end := min(start+s.deleteBatchSize, len(ids))
		n, err := s.cashPositionRepo.DeleteCashPositionsByIDs(ctx, ids[start:end])
		if err != nil {
			s.LogError(ctx, err, "Failed to delete cash position batch",
				slog.Int("batch_start", start),
				slog.Int("deleted_so_far", deleted))
			return deleted, fmt.Errorf("failed to delete cash positions after %d records: %w", deleted, err)
		}
		deleted += int(n)
	}

	s.LogInfo(ctx, "Deleted all cash positions", slog.Int("deleted", deleted), slog.String("deleted_by", userID))
	return deleted, nil
}
