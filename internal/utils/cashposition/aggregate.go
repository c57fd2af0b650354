package cashposition

import (
	"strings"

	"github.com/SscSPs/cash_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type subAccountKey struct {
	companyID     string
	accountTypeID string
	subAccountID  string
}

// Aggregate groups records by company and sums amounts into category
// totals. Output order follows first appearance in records. Records whose
// category cannot be resolved add to no total and are counted in the
// unresolved bucket instead.
func Aggregate(records []domain.CashPosition, snap domain.ReferenceSnapshot) domain.CashSummary {
	result := domain.CashSummary{
		Summaries:         []domain.CompanySummary{},
		SubAccountDetails: []domain.SubAccountDetail{},
		Unresolved: domain.UnresolvedBucket{
			Amount:         decimal.Zero,
			AccountTypeIDs: []string{},
		},
	}

	companyIndex := make(map[string]int)
	detailIndex := make(map[subAccountKey]int)
	unresolvedSeen := make(map[string]bool)

	for _, rec := range records {
		idx, ok := companyIndex[rec.CompanyID]
		if !ok {
			name, code := CompanyDisplay(rec.CompanyID, snap)
			result.Summaries = append(result.Summaries, domain.CompanySummary{
				CompanyID:        rec.CompanyID,
				CompanyName:      name,
				CompanyCode:      code,
				BankTotal:        decimal.Zero,
				AssetsTotal:      decimal.Zero,
				LiabilitiesTotal: decimal.Zero,
			})
			idx = len(result.Summaries) - 1
			companyIndex[rec.CompanyID] = idx
		}

		category, resolved := ResolveCategory(rec.AccountTypeID, snap.AccountTypes)
		if !addToBucket(&result.Summaries[idx], category, resolved, rec.Amount) {
			result.Unresolved.Count++
			result.Unresolved.Amount = result.Unresolved.Amount.Add(rec.Amount)
			if !unresolvedSeen[rec.AccountTypeID] {
				unresolvedSeen[rec.AccountTypeID] = true
				result.Unresolved.AccountTypeIDs = append(result.Unresolved.AccountTypeIDs, rec.AccountTypeID)
			}
		}

		if !rec.HasSubAccount() {
			continue
		}
		key := subAccountKey{rec.CompanyID, rec.AccountTypeID, rec.SubAccountID}
		dIdx, ok := detailIndex[key]
		if !ok {
			result.SubAccountDetails = append(result.SubAccountDetails, domain.SubAccountDetail{
				CompanyID:       rec.CompanyID,
				CompanyName:     result.Summaries[idx].CompanyName,
				AccountTypeID:   rec.AccountTypeID,
				AccountTypeName: accountTypeDisplay(rec.AccountTypeID, snap),
				SubAccountID:    rec.SubAccountID,
				SubAccountName:  subAccountDisplay(rec.SubAccountID, snap),
				Amount:          decimal.Zero,
			})
			dIdx = len(result.SubAccountDetails) - 1
			detailIndex[key] = dIdx
		}
		result.SubAccountDetails[dIdx].Amount = result.SubAccountDetails[dIdx].Amount.Add(rec.Amount)
	}

	return result
}

// addToBucket adds amount to the total matching category. It returns false
// when the amount was dropped; changing the drop policy happens here.
func addToBucket(s *domain.CompanySummary, category domain.Category, resolved bool, amount decimal.Decimal) bool {
	if !resolved {
		return false
	}
	switch category {
	case domain.CategoryBank:
		s.BankTotal = s.BankTotal.Add(amount)
	case domain.CategoryCurrentAssets:
		s.AssetsTotal = s.AssetsTotal.Add(amount)
	case domain.CategoryCurrentLiabilities:
		s.LiabilitiesTotal = s.LiabilitiesTotal.Add(amount)
	default:
		return false
	}
	return true
}

// CompanyDisplay returns the display name and code for a company id,
// deriving a title-cased name when the company is not in the snapshot.
func CompanyDisplay(companyID string, snap domain.ReferenceSnapshot) (string, string) {
	if c, ok := snap.FindCompany(companyID); ok && c.Name != "" {
		return c.Name, c.Code
	}
	return TitleFromID(companyID), ""
}

func accountTypeDisplay(id string, snap domain.ReferenceSnapshot) string {
	if at, ok := snap.FindAccountType(id); ok && at.Name != "" {
		return at.Name
	}
	return id
}

func subAccountDisplay(id string, snap domain.ReferenceSnapshot) string {
	if sa, ok := snap.FindSubAccount(id); ok && sa.Name != "" {
		return sa.Name
	}
	return id
}

// TitleFromID turns an identifier like "speccon-holdings" into "Speccon Holdings".
func TitleFromID(id string) string {
	words := strings.FieldsFunc(id, func(r rune) bool {
		return r == '-' || r == '_' || r == ' ' || r == '.'
	})
	if len(words) == 0 {
		return id
	}
	return cases.Title(language.English).String(strings.Join(words, " "))
}
