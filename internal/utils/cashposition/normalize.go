package cashposition

import (
	"strings"

	"github.com/SscSPs/cash_dashboard/internal/core/domain"
)

// Normalize converts a validated row into its canonical record: trimmed
// report date, lower-cased trimmed identifiers and a parsed amount.
func Normalize(row domain.ValidatedRow) (domain.CashPosition, error) {
	amount, err := ParseAmount(row.Amount)
	if err != nil {
		return domain.CashPosition{}, err
	}

	return domain.CashPosition{
		ReportDate:    strings.TrimSpace(row.ReportDate),
		CompanyID:     NormalizeID(row.CompanyID),
		AccountTypeID: NormalizeID(row.AccountTypeID),
		SubAccountID:  NormalizeID(row.SubAccountID),
		Amount:        amount,
	}, nil
}

// NormalizeID lower-cases and trims an identifier the way stored records are.
func NormalizeID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}
