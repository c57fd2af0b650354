package services

import (
	"context"

	"github.com/SscSPs/cash_dashboard/internal/core/domain"
	"github.com/SscSPs/cash_dashboard/internal/dto"
)

// ReferenceDataReaderSvc defines read operations for the lookup tables
type ReferenceDataReaderSvc interface {
	ListCompanies(ctx context.Context) ([]domain.Company, error)
	ListAccountTypes(ctx context.Context) ([]domain.AccountType, error)
	ListSubAccounts(ctx context.Context) ([]domain.SubAccount, error)
}

// ReferenceDataWriterSvc defines admin upserts for the lookup tables
type ReferenceDataWriterSvc interface {
	UpsertCompany(ctx context.Context, id string, req dto.UpsertCompanyRequest, userID string) (*domain.Company, error)
	UpsertAccountType(ctx context.Context, id string, req dto.UpsertAccountTypeRequest, userID string) (*domain.AccountType, error)
	UpsertSubAccount(ctx context.Context, id string, req dto.UpsertSubAccountRequest, userID string) (*domain.SubAccount, error)
}

// ReferenceDataSvcFacade combines all reference data service interfaces
type ReferenceDataSvcFacade interface {
	ReferenceDataReaderSvc
	ReferenceDataWriterSvc
}
