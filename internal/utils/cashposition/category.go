package cashposition

import (
	"strings"

	"github.com/SscSPs/cash_dashboard/internal/core/domain"
)

// categoryRule maps identifier fragments to a category. Rules are checked in order.
type categoryRule struct {
	fragments []string
	category  domain.Category
}

var categoryRules = []categoryRule{
	{fragments: []string{"bank", "cash"}, category: domain.CategoryBank},
	{fragments: []string{"asset", "receivable", "loan"}, category: domain.CategoryCurrentAssets},
	{fragments: []string{"liabilit", "payable", "debt"}, category: domain.CategoryCurrentLiabilities},
}

// ResolveCategory finds the category for an account type id. An exact
// case-insensitive match in the lookup table wins and its category is used
// verbatim; otherwise the id is matched against fixed fragments. The second
// return value is false when nothing matched.
func ResolveCategory(accountTypeID string, accountTypes []domain.AccountType) (domain.Category, bool) {
	for _, at := range accountTypes {
		if strings.EqualFold(at.ID, accountTypeID) && at.Category != "" {
			return at.Category, true
		}
	}
	return InferCategory(accountTypeID)
}

// InferCategory applies only the fragment heuristics.
func InferCategory(accountTypeID string) (domain.Category, bool) {
	id := strings.ToLower(accountTypeID)
	for _, rule := range categoryRules {
		for _, fragment := range rule.fragments {
			if strings.Contains(id, fragment) {
				return rule.category, true
			}
		}
	}
	return "", false
}
