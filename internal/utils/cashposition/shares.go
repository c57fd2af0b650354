package cashposition

import (
	"github.com/SscSPs/cash_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ComputeTotals sums category totals across companies.
func ComputeTotals(summaries []domain.CompanySummary) domain.Totals {
	t := domain.Totals{
		Bank:        decimal.Zero,
		Assets:      decimal.Zero,
		Liabilities: decimal.Zero,
	}
	for _, s := range summaries {
		t.Bank = t.Bank.Add(s.BankTotal)
		t.Assets = t.Assets.Add(s.AssetsTotal)
		t.Liabilities = t.Liabilities.Add(s.LiabilitiesTotal)
	}
	t.NetPosition = t.Bank.Add(t.Assets).Sub(t.Liabilities)
	return t
}

// SharesOfBankAndAssets expresses each category as a percentage of bank + assets.
// Liabilities and net position can exceed 100 on this basis.
func SharesOfBankAndAssets(t domain.Totals) domain.Shares {
	return sharesAgainst(domain.BasisBankAndAssets, t, t.Bank.Add(t.Assets))
}

// SharesOfAllCategories expresses each category as a percentage of
// bank + assets + liabilities.
func SharesOfAllCategories(t domain.Totals) domain.Shares {
	return sharesAgainst(domain.BasisAllCategories, t, t.Bank.Add(t.Assets).Add(t.Liabilities))
}

// SharesFor dispatches on the basis name.
func SharesFor(basis domain.PercentageBasis, t domain.Totals) domain.Shares {
	if basis == domain.BasisBankAndAssets {
		return SharesOfBankAndAssets(t)
	}
	return SharesOfAllCategories(t)
}

// CompanyShare is a company's share of the grand total on the given basis.
func CompanyShare(s domain.CompanySummary, t domain.Totals, basis domain.PercentageBasis) decimal.Decimal {
	if basis == domain.BasisBankAndAssets {
		return Percentage(s.BankTotal.Add(s.AssetsTotal), t.Bank.Add(t.Assets))
	}
	companyTotal := s.BankTotal.Add(s.AssetsTotal).Add(s.LiabilitiesTotal)
	return Percentage(companyTotal, t.Bank.Add(t.Assets).Add(t.Liabilities))
}

// Percentage returns part/whole*100 rounded to one decimal place, or zero
// when whole is not positive.
func Percentage(part, whole decimal.Decimal) decimal.Decimal {
	if !whole.IsPositive() {
		return decimal.Zero
	}
	return part.Div(whole).Mul(hundred).Round(1)
}

func sharesAgainst(basis domain.PercentageBasis, t domain.Totals, whole decimal.Decimal) domain.Shares {
	return domain.Shares{
		Basis:       basis,
		Bank:        Percentage(t.Bank, whole),
		Assets:      Percentage(t.Assets, whole),
		Liabilities: Percentage(t.Liabilities, whole),
		NetPosition: Percentage(t.NetPosition, whole),
	}
}
