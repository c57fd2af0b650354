package dto

import (
	"github.com/SscSPs/cash_dashboard/internal/core/domain"
)

// UpsertCompanyRequest creates or replaces a company.
type UpsertCompanyRequest struct {
	Name   string `json:"name" binding:"required"`
	Code   string `json:"code"`
	Active *bool  `json:"active"`
}

// UpsertAccountTypeRequest creates or replaces an account type. Category is
// stored verbatim; values outside the three known buckets are not aggregated.
type UpsertAccountTypeRequest struct {
	Name         string `json:"name" binding:"required"`
	Category     string `json:"category" binding:"required"`
	DisplayOrder int    `json:"displayOrder" binding:"gte=0"`
}

// UpsertSubAccountRequest creates or replaces a sub-account.
type UpsertSubAccountRequest struct {
	Name         string `json:"name" binding:"required"`
	Active       *bool  `json:"active"`
	DisplayOrder int    `json:"displayOrder" binding:"gte=0"`
}

// CompanyResponse is the public view of a company.
type CompanyResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Code   string `json:"code"`
	Active bool   `json:"active"`
}

// AccountTypeResponse is the public view of an account type.
type AccountTypeResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	DisplayOrder int    `json:"displayOrder"`
}

// SubAccountResponse is the public view of a sub-account.
type SubAccountResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Active       bool   `json:"active"`
	DisplayOrder int    `json:"displayOrder"`
}

func ToCompanyResponse(c domain.Company) CompanyResponse {
	return CompanyResponse{ID: c.ID, Name: c.Name, Code: c.Code, Active: c.Active}
}

func ToAccountTypeResponse(at domain.AccountType) AccountTypeResponse {
	return AccountTypeResponse{ID: at.ID, Name: at.Name, Category: string(at.Category), DisplayOrder: at.DisplayOrder}
}

func ToSubAccountResponse(sa domain.SubAccount) SubAccountResponse {
	return SubAccountResponse{ID: sa.ID, Name: sa.Name, Active: sa.Active, DisplayOrder: sa.DisplayOrder}
}

// ToCompanyResponseSlice converts a slice of domain.Company to response DTOs
func ToCompanyResponseSlice(companies []domain.Company) []CompanyResponse {
	out := make([]CompanyResponse, len(companies))
	for i, c := range companies {
		out[i] = ToCompanyResponse(c)
	}
	return out
}

// ToAccountTypeResponseSlice converts a slice of domain.AccountType to response DTOs
func ToAccountTypeResponseSlice(accountTypes []domain.AccountType) []AccountTypeResponse {
	out := make([]AccountTypeResponse, len(accountTypes))
	for i, at := range accountTypes {
		out[i] = ToAccountTypeResponse(at)
	}
	return out
}

// ToSubAccountResponseSlice converts a slice of domain.SubAccount to response DTOs
func ToSubAccountResponseSlice(subAccounts []domain.SubAccount) []SubAccountResponse {
	out := make([]SubAccountResponse, len(subAccounts))
	for i, sa := range subAccounts {
		out[i] = ToSubAccountResponse(sa)
	}
	return out
}
