package dto

import (
	"github.com/SscSPs/cash_dashboard/internal/core/domain"
	"github.com/SscSPs/cash_dashboard/internal/utils/cashposition"
	"github.com/shopspring/decimal"
)

// CashSummaryParams defines query parameters for the summary endpoint.
type CashSummaryParams struct {
	Date  string `form:"date" binding:"omitempty,reportdate"`
	Basis string `form:"basis" binding:"omitempty,oneof=bank_and_assets all_categories"`
}

// ListCashPositionsParams defines query parameters for listing raw records.
type ListCashPositionsParams struct {
	Date      string  `form:"date" binding:"required,reportdate"`
	Limit     int     `form:"limit,default=50" binding:"min=1,max=500"`
	NextToken *string `form:"nextToken"`
}

// ListCashPositionsResponse wraps a page of raw records.
type ListCashPositionsResponse struct {
	CashPositions []domain.CashPosition `json:"cashPositions"`
	NextToken     *string               `json:"nextToken,omitempty"`
}

// AvailableDatesResponse lists report dates that have data, newest first.
type AvailableDatesResponse struct {
	Dates []string `json:"dates"`
}

// DeleteAllResponse reports how many records delete-all removed.
type DeleteAllResponse struct {
	DeletedCount int `json:"deletedCount"`
}

// CompanySummaryResponse is one company row of the dashboard table.
type CompanySummaryResponse struct {
	CompanyID        string          `json:"companyId"`
	CompanyName      string          `json:"companyName"`
	CompanyCode      string          `json:"companyCode,omitempty"`
	BankTotal        decimal.Decimal `json:"bankTotal"`
	AssetsTotal      decimal.Decimal `json:"assetsTotal"`
	LiabilitiesTotal decimal.Decimal `json:"liabilitiesTotal"`
	NetPosition      decimal.Decimal `json:"netPosition"`
	ShareOfTotal     decimal.Decimal `json:"shareOfTotal"`
}

// CashSummaryResponse is the aggregated dashboard for one report date.
type CashSummaryResponse struct {
	ReportDate        string                                   `json:"reportDate"`
	Companies         []CompanySummaryResponse                 `json:"companies"`
	SubAccountDetails []domain.SubAccountDetail                `json:"subAccountDetails"`
	Totals            domain.Totals                            `json:"totals"`
	DefaultBasis      domain.PercentageBasis                   `json:"defaultBasis"`
	Shares            map[domain.PercentageBasis]domain.Shares `json:"shares"`
	Unresolved        domain.UnresolvedBucket                  `json:"unresolved"`
}

// ToCashSummaryResponse derives totals and percentage shares from an
// aggregated summary. Per-company shares use basis; both bases are included
// for the category breakdown.
func ToCashSummaryResponse(s domain.CashSummary, basis domain.PercentageBasis) CashSummaryResponse {
	if basis == "" {
		basis = domain.BasisAllCategories
	}
	totals := cashposition.ComputeTotals(s.Summaries)

	companies := make([]CompanySummaryResponse, len(s.Summaries))
	for i, cs := range s.Summaries {
		companies[i] = CompanySummaryResponse{
			CompanyID:        cs.CompanyID,
			CompanyName:      cs.CompanyName,
			CompanyCode:      cs.CompanyCode,
			BankTotal:        cs.BankTotal,
			AssetsTotal:      cs.AssetsTotal,
			LiabilitiesTotal: cs.LiabilitiesTotal,
			NetPosition:      cs.NetPosition(),
			ShareOfTotal:     cashposition.CompanyShare(cs, totals, basis),
		}
	}

	return CashSummaryResponse{
		ReportDate:        s.ReportDate,
		Companies:         companies,
		SubAccountDetails: s.SubAccountDetails,
		Totals:            totals,
		DefaultBasis:      basis,
		Shares: map[domain.PercentageBasis]domain.Shares{
			domain.BasisBankAndAssets: cashposition.SharesOfBankAndAssets(totals),
			domain.BasisAllCategories: cashposition.SharesOfAllCategories(totals),
		},
		Unresolved: s.Unresolved,
	}
}
