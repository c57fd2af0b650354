package repositories

import (
	"context"

	"github.com/SscSPs/cash_dashboard/internal/core/domain"
)

// ReferenceDataReader defines read operations for the lookup tables
type ReferenceDataReader interface {
	// ListCompanies returns companies ordered by name.
	ListCompanies(ctx context.Context, activeOnly bool) ([]domain.Company, error)

	// ListAccountTypes returns account types ordered by display order.
	ListAccountTypes(ctx context.Context) ([]domain.AccountType, error)

	// ListSubAccounts returns sub-accounts ordered by display order.
	ListSubAccounts(ctx context.Context, activeOnly bool) ([]domain.SubAccount, error)
}

// ReferenceDataWriter defines upserts for the lookup tables
type ReferenceDataWriter interface {
	SaveCompany(ctx context.Context, company domain.Company) error
	SaveAccountType(ctx context.Context, accountType domain.AccountType) error
	SaveSubAccount(ctx context.Context, subAccount domain.SubAccount) error
}

// ReferenceDataRepositoryFacade combines all reference data repository interfaces
type ReferenceDataRepositoryFacade interface {
	ReferenceDataReader
	ReferenceDataWriter
}
