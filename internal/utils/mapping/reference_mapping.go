package mapping

import (
	"github.com/SscSPs/cash_dashboard/internal/core/domain"
	"github.com/SscSPs/cash_dashboard/internal/models"
)

// ToModelCompany converts a domain Company to a model Company
func ToModelCompany(d domain.Company) models.Company {
	return models.Company{
		ID:          d.ID,
		Name:        d.Name,
		Code:        d.Code,
		IsActive:    d.Active,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCompany converts a model Company to a domain Company
func ToDomainCompany(m models.Company) domain.Company {
	return domain.Company{
		ID:          m.ID,
		Name:        m.Name,
		Code:        m.Code,
		Active:      m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCompanySlice converts a slice of model Companies to domain Companies
func ToDomainCompanySlice(ms []models.Company) []domain.Company {
	ds := make([]domain.Company, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCompany(m)
	}
	return ds
}

// ToModelAccountType converts a domain AccountType to a model AccountType
func ToModelAccountType(d domain.AccountType) models.AccountType {
	return models.AccountType{
		ID:           d.ID,
		Name:         d.Name,
		Category:     string(d.Category),
		DisplayOrder: d.DisplayOrder,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccountType converts a model AccountType to a domain AccountType
func ToDomainAccountType(m models.AccountType) domain.AccountType {
	return domain.AccountType{
		ID:           m.ID,
		Name:         m.Name,
		Category:     domain.Category(m.Category),
		DisplayOrder: m.DisplayOrder,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAccountTypeSlice converts a slice of model AccountTypes to domain AccountTypes
func ToDomainAccountTypeSlice(ms []models.AccountType) []domain.AccountType {
	ds := make([]domain.AccountType, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccountType(m)
	}
	return ds
}

// ToModelSubAccount converts a domain SubAccount to a model SubAccount
func ToModelSubAccount(d domain.SubAccount) models.SubAccount {
	return models.SubAccount{
		ID:           d.ID,
		Name:         d.Name,
		IsActive:     d.Active,
		DisplayOrder: d.DisplayOrder,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSubAccount converts a model SubAccount to a domain SubAccount
func ToDomainSubAccount(m models.SubAccount) domain.SubAccount {
	return domain.SubAccount{
		ID:           m.ID,
		Name:         m.Name,
		Active:       m.IsActive,
		DisplayOrder: m.DisplayOrder,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainSubAccountSlice converts a slice of model SubAccounts to domain SubAccounts
func ToDomainSubAccountSlice(ms []models.SubAccount) []domain.SubAccount {
	ds := make([]domain.SubAccount, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSubAccount(m)
	}
	return ds
}
