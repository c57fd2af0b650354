package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/cash_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/cash_dashboard/internal/core/ports/repositories"
	"github.com/SscSPs/cash_dashboard/internal/models"
	"github.com/SscSPs/cash_dashboard/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxReferenceDataRepository struct {
	BaseRepository
}

func newPgxReferenceDataRepository(pool *pgxpool.Pool) *PgxReferenceDataRepository {
	return &PgxReferenceDataRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ReferenceDataRepositoryFacade = (*PgxReferenceDataRepository)(nil)

// ListCompanies returns companies ordered by name.
func (r *PgxReferenceDataRepository) ListCompanies(ctx context.Context, activeOnly bool) ([]domain.Company, error) {
	query := `
		SELECT id, name, code, is_active, created_at, created_by, last_updated_at, last_updated_by
		FROM companies
		WHERE is_active OR NOT $1
		ORDER BY name;
	`
	rows, err := r.Pool.Query(ctx, query, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to query companies: %w", err)
	}
	defer rows.Close()

	modelCompanies, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Company, error) {
		var c models.Company
		err := row.Scan(
			&c.ID,
			&c.Name,
			&c.Code,
			&c.IsActive,
			&c.CreatedAt,
			&c.CreatedBy,
			&c.LastUpdatedAt,
			&c.LastUpdatedBy,
		)
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan companies: %w", err)
	}
	return mapping.ToDomainCompanySlice(modelCompanies), nil
}

// ListAccountTypes returns account types ordered by display order.
func (r *PgxReferenceDataRepository) ListAccountTypes(ctx context.Context) ([]domain.AccountType, error) {
	query := `
		SELECT id, name, category, display_order, created_at, created_by, last_updated_at, last_updated_by
		FROM account_types
		ORDER BY display_order, id;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query account types: %w", err)
	}
	defer rows.Close()

	modelAccountTypes, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.AccountType, error) {
		var at models.AccountType
		err := row.Scan(
			&at.ID,
			&at.Name,
			&at.Category,
			&at.DisplayOrder,
			&at.CreatedAt,
			&at.CreatedBy,
			&at.LastUpdatedAt,
			&at.LastUpdatedBy,
		)
		return at, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan account types: %w", err)
	}
	return mapping.ToDomainAccountTypeSlice(modelAccountTypes), nil
}

// ListSubAccounts returns sub-accounts ordered by display order.
func (r *PgxReferenceDataRepository) ListSubAccounts(ctx context.Context, activeOnly bool) ([]domain.SubAccount, error) {
	query := `
		SELECT id, name, is_active, display_order, created_at, created_by, last_updated_at, last_updated_by
		FROM sub_accounts
		WHERE is_active OR NOT $1
		ORDER BY display_order, id;
	`
	rows, err := r.Pool.Query(ctx, query, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to query sub-accounts: %w", err)
	}
	defer rows.Close()

	modelSubAccounts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.SubAccount, error) {
		var sa models.SubAccount
		err := row.Scan(
			&sa.ID,
			&sa.Name,
			&sa.IsActive,
			&sa.DisplayOrder,
			&sa.CreatedAt,
			&sa.CreatedBy,
			&sa.LastUpdatedAt,
			&sa.LastUpdatedBy,
		)
		return sa, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan sub-accounts: %w", err)
	}
	return mapping.ToDomainSubAccountSlice(modelSubAccounts), nil
}

// SaveCompany inserts or updates a company. The original creator is kept on update.
func (r *PgxReferenceDataRepository) SaveCompany(ctx context.Context, company domain.Company) error {
	m := mapping.ToModelCompany(company)
	query := `
		INSERT INTO companies (id, name, code, is_active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			code = EXCLUDED.code,
			is_active = EXCLUDED.is_active,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ID,
		m.Name,
		m.Code,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save company %s: %w", m.ID, err)
	}
	return nil
}

// SaveAccountType inserts or updates an account type.
func (r *PgxReferenceDataRepository) SaveAccountType(ctx context.Context, accountType domain.AccountType) error {
	m := mapping.ToModelAccountType(accountType)
	query := `
		INSERT INTO account_types (id, name, category, display_order, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			category = EXCLUDED.category,
			display_order = EXCLUDED.display_order,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ID,
		m.Name,
		m.Category,
		m.DisplayOrder,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save account type %s: %w", m.ID, err)
	}
	return nil
}

// SaveSubAccount inserts or updates a sub-account.
func (r *PgxReferenceDataRepository) SaveSubAccount(ctx context.Context, subAccount domain.SubAccount) error {
	m := mapping.ToModelSubAccount(subAccount)
	query := `
		INSERT INTO sub_accounts (id, name, is_active, display_order, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			is_active = EXCLUDED.is_active,
			display_order = EXCLUDED.display_order,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ID,
		m.Name,
		m.IsActive,
		m.DisplayOrder,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save sub-account %s: %w", m.ID, err)
	}
	return nil
}
