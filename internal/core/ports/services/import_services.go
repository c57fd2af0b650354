package services

import (
	"context"
	"io"

	"github.com/SscSPs/cash_dashboard/internal/core/domain"
)

// ImportPreviewSvc parses and validates uploads without writing anything
type ImportPreviewSvc interface {
	// PreviewImport reports row counts, every validation problem and the first valid rows.
	PreviewImport(ctx context.Context, csv io.Reader) (*domain.ImportPreview, error)

	// Template returns the example upload file.
	Template() string
}

// ImportWriterSvc persists cash position records
type ImportWriterSvc interface {
	// ImportFile validates a whole upload and persists it only if every row is valid.
	ImportFile(ctx context.Context, csv io.Reader, fileName string, userID string) (*domain.ImportReport, error)

	// ImportRecords persists records one by one and reports each outcome.
	ImportRecords(ctx context.Context, records []domain.CashPosition, userID string) []domain.ImportResult
}

// ImportLifecycleSvc defines bulk removal of stored records
type ImportLifecycleSvc interface {
	// DeleteAllCashPositions removes every stored record in batches and returns the count.
	DeleteAllCashPositions(ctx context.Context, userID string) (int, error)
}

// ImportSvcFacade combines all import-related service interfaces
type ImportSvcFacade interface {
	ImportPreviewSvc
	ImportWriterSvc
	ImportLifecycleSvc
}
