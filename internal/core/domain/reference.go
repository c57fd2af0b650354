package domain

import "strings"

// Category is one of the three buckets cash positions are aggregated into.
type Category string

const (
	CategoryBank               Category = "Bank"
	CategoryCurrentAssets      Category = "Current Assets"
	CategoryCurrentLiabilities Category = "Current Liabilities"
)

// IsKnown reports whether c is one of the three aggregation buckets.
func (c Category) IsKnown() bool {
	switch c {
	case CategoryBank, CategoryCurrentAssets, CategoryCurrentLiabilities:
		return true
	}
	return false
}

// Company is a reporting entity. Records may reference companies that do not exist.
type Company struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Code   string `json:"code"`
	Active bool   `json:"active"`
	AuditFields
}

// AccountType maps an account type identifier to a Category.
type AccountType struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Category     Category `json:"category"`
	DisplayOrder int      `json:"displayOrder"`
	AuditFields
}

// SubAccount is a display-name lookup for the optional sub-account breakdown.
type SubAccount struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Active       bool   `json:"active"`
	DisplayOrder int    `json:"displayOrder"`
	AuditFields
}

// ReferenceSnapshot is a read-only copy of the lookup tables taken for one
// summary computation.
type ReferenceSnapshot struct {
	Companies    []Company
	AccountTypes []AccountType
	SubAccounts  []SubAccount
}

// FindCompany looks a company up by case-insensitive id.
func (s ReferenceSnapshot) FindCompany(id string) (Company, bool) {
	for _, c := range s.Companies {
		if strings.EqualFold(c.ID, id) {
			return c, true
		}
	}
	return Company{}, false
}

// FindAccountType looks an account type up by case-insensitive id.
func (s ReferenceSnapshot) FindAccountType(id string) (AccountType, bool) {
	for _, at := range s.AccountTypes {
		if strings.EqualFold(at.ID, id) {
			return at, true
		}
	}
	return AccountType{}, false
}

// FindSubAccount looks a sub-account up by case-insensitive id.
func (s ReferenceSnapshot) FindSubAccount(id string) (SubAccount, bool) {
	for _, sa := range s.SubAccounts {
		if strings.EqualFold(sa.ID, id) {
			return sa, true
		}
	}
	return SubAccount{}, false
}
