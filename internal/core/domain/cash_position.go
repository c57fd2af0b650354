package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CSV column names expected in the import header.
const (
	ColumnReportDate    = "reportDate"
	ColumnCompanyID     = "companyId"
	ColumnAccountTypeID = "accountTypeId"
	ColumnSubAccountID  = "subAccountId"
	ColumnAmount        = "amount"
)

// ReportDateLayout is the only accepted report date format (YYYY-MM-DD).
const ReportDateLayout = "2006-01-02"

// RawRow is one CSV data row exactly as read, before any validation.
type RawRow struct {
	Line          int // 1-based source line number, the header being line 1
	ReportDate    string
	CompanyID     string
	AccountTypeID string
	SubAccountID  string
	Amount        string
}

// ValidatedRow is a RawRow that produced no validation errors.
// Only the validator hands these out.
type ValidatedRow struct {
	RawRow
}

// CashPosition is the canonical cash position fact: one amount for one
// company/account type (and optional sub-account) on one report date.
// IDs are lower-cased; the ID is assigned by the store on persistence.
type CashPosition struct {
	ID            string          `json:"id"`
	ReportDate    string          `json:"reportDate"`
	CompanyID     string          `json:"companyId"`
	AccountTypeID string          `json:"accountTypeId"`
	SubAccountID  string          `json:"subAccountId,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
}

// HasSubAccount reports whether the record carries a sub-account breakdown.
func (c CashPosition) HasSubAccount() bool {
	return c.SubAccountID != ""
}

// ImportResult is the outcome of persisting one record.
type ImportResult struct {
	Success bool   `json:"success"`
	ID      string `json:"id,omitempty"`
	Error   string `json:"error,omitempty"`
}

// ImportPreview summarises a parsed upload without writing anything.
type ImportPreview struct {
	Total   int            `json:"total"`
	Valid   int            `json:"valid"`
	Invalid int            `json:"invalid"`
	Errors  []string       `json:"errors"`
	Rows    []CashPosition `json:"rows"` // first valid rows only
}

// ImportReport is the combined outcome of a whole-file import.
type ImportReport struct {
	Total     int            `json:"total"`
	Succeeded int            `json:"succeeded"`
	Failed    int            `json:"failed"`
	Results   []ImportResult `json:"results"`
	// ArchivedTo is where the raw upload was copied, if archiving is enabled.
	ArchivedTo string `json:"archivedTo,omitempty"`
}
