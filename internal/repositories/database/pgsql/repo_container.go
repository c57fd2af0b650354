package pgsql

import (
	portsrepo "github.com/SscSPs/cash_dashboard/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CashPositionRepo:  newPgxCashPositionRepository(dbPool),
		ReferenceDataRepo: newPgxReferenceDataRepository(dbPool),
		UserRepo:          newPgxUserRepository(dbPool),
		RevokedTokenRepo:  newPgxRevokedTokenRepository(dbPool),
	}
}
