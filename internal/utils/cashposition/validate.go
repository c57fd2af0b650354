package cashposition

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/SscSPs/cash_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
)

// reportDatePattern only checks the shape; 2026-02-31 is accepted.
var reportDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// IsReportDate reports whether s (after trimming) has the YYYY-MM-DD shape.
func IsReportDate(s string) bool {
	return reportDatePattern.MatchString(strings.TrimSpace(s))
}

// ValidateRow checks one raw row and returns every problem found, each
// prefixed with the row's source line number. An empty result means valid.
func ValidateRow(row domain.RawRow) []string {
	var errs []string
	n := row.Line

	reportDate := strings.TrimSpace(row.ReportDate)
	if reportDate == "" {
		errs = append(errs, fmt.Sprintf("Row %d: Missing reportDate", n))
	} else if !reportDatePattern.MatchString(reportDate) {
		errs = append(errs, fmt.Sprintf("Row %d: Invalid date format. Use YYYY-MM-DD (e.g., 2026-02-13)", n))
	}

	// Unknown companies and account types are accepted as-is.
	if strings.TrimSpace(row.CompanyID) == "" {
		errs = append(errs, fmt.Sprintf("Row %d: Missing companyId", n))
	}
	if strings.TrimSpace(row.AccountTypeID) == "" {
		errs = append(errs, fmt.Sprintf("Row %d: Missing accountTypeId", n))
	}

	if strings.TrimSpace(row.Amount) == "" {
		errs = append(errs, fmt.Sprintf("Row %d: Missing amount", n))
	} else {
		amount, err := ParseAmount(row.Amount)
		if err != nil {
			errs = append(errs, fmt.Sprintf("Row %d: Invalid amount \"%s\". Must be a number.", n, row.Amount))
		} else if amount.IsNegative() {
			errs = append(errs, fmt.Sprintf("Row %d: Amount cannot be negative", n))
		}
	}

	return errs
}

// Validate runs ValidateRow and, when the row is clean, hands back a ValidatedRow.
func Validate(row domain.RawRow) (domain.ValidatedRow, []string) {
	if errs := ValidateRow(row); len(errs) > 0 {
		return domain.ValidatedRow{}, errs
	}
	return domain.ValidatedRow{RawRow: row}, nil
}

// ParseAmount strips thousands separators and surrounding whitespace and
// parses the remainder as a decimal. Currency symbols are not accepted.
func ParseAmount(raw string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(strings.ReplaceAll(raw, ",", ""))
	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", raw, err)
	}
	return amount, nil
}
