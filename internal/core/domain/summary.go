package domain

import "github.com/shopspring/decimal"

// CompanySummary holds category totals for one company on one report date.
type CompanySummary struct {
	CompanyID        string          `json:"companyId"`
	CompanyName      string          `json:"companyName"`
	CompanyCode      string          `json:"companyCode"`
	BankTotal        decimal.Decimal `json:"bankTotal"`
	AssetsTotal      decimal.Decimal `json:"assetsTotal"`
	LiabilitiesTotal decimal.Decimal `json:"liabilitiesTotal"`
}

// NetPosition is bank + assets - liabilities.
func (s CompanySummary) NetPosition() decimal.Decimal {
	return s.BankTotal.Add(s.AssetsTotal).Sub(s.LiabilitiesTotal)
}

// SubAccountDetail sums amounts sharing one (company, account type, sub-account) triple.
type SubAccountDetail struct {
	CompanyID       string          `json:"companyId"`
	CompanyName     string          `json:"companyName"`
	AccountTypeID   string          `json:"accountTypeId"`
	AccountTypeName string          `json:"accountTypeName"`
	SubAccountID    string          `json:"subAccountId"`
	SubAccountName  string          `json:"subAccountName"`
	Amount          decimal.Decimal `json:"amount"`
}

// UnresolvedBucket counts records whose account type resolved to no category.
// Their amounts are excluded from every category total.
type UnresolvedBucket struct {
	Count          int             `json:"count"`
	Amount         decimal.Decimal `json:"amount"`
	AccountTypeIDs []string        `json:"accountTypeIds"`
}

// CashSummary is the aggregation output for one report date.
type CashSummary struct {
	ReportDate        string             `json:"reportDate"`
	Summaries         []CompanySummary   `json:"summaries"`
	SubAccountDetails []SubAccountDetail `json:"subAccountDetails"`
	Unresolved        UnresolvedBucket   `json:"unresolved"`
}

// Totals are the cross-company category sums.
type Totals struct {
	Bank        decimal.Decimal `json:"bank"`
	Assets      decimal.Decimal `json:"assets"`
	Liabilities decimal.Decimal `json:"liabilities"`
	NetPosition decimal.Decimal `json:"netPosition"`
}

// PercentageBasis names the denominator used for percentage shares.
type PercentageBasis string

const (
	BasisBankAndAssets PercentageBasis = "bank_and_assets"
	BasisAllCategories PercentageBasis = "all_categories"
)

// Shares are category percentages against one basis, rounded to one decimal place.
type Shares struct {
	Basis       PercentageBasis `json:"basis"`
	Bank        decimal.Decimal `json:"bank"`
	Assets      decimal.Decimal `json:"assets"`
	Liabilities decimal.Decimal `json:"liabilities"`
	NetPosition decimal.Decimal `json:"netPosition"`
}
