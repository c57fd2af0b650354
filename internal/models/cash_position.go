package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashPosition is a row of the cash_positions table.
type CashPosition struct {
	ID            string          `db:"id"`
	ReportDate    string          `db:"report_date"`
	CompanyID     string          `db:"company_id"`
	AccountTypeID string          `db:"account_type_id"`
	SubAccountID  *string         `db:"sub_account_id"` // Nullable
	Amount        decimal.Decimal `db:"amount"`
	CreatedAt     time.Time       `db:"created_at"`
	CreatedBy     string          `db:"created_by"`
}
