package pgsql

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/cash_dashboard/internal/apperrors"
	"github.com/SscSPs/cash_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/cash_dashboard/internal/core/ports/repositories"
	"github.com/SscSPs/cash_dashboard/internal/middleware"
	"github.com/SscSPs/cash_dashboard/internal/models"
	"github.com/SscSPs/cash_dashboard/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(pool *pgxpool.Pool) *PgxUserRepository {
	return &PgxUserRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

// FindCredentialByEmail looks a credential up by case-insensitive email.
func (r *PgxUserRepository) FindCredentialByEmail(ctx context.Context, email string) (*domain.Credential, error) {
	query := `
		SELECT user_id, email, password_hash, created_at
		FROM credentials
		WHERE lower(email) = lower($1);
	`
	var m models.Credential
	err := r.Pool.QueryRow(ctx, query, email).Scan(
		&m.UserID,
		&m.Email,
		&m.PasswordHash,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find credential by email: %w", err)
	}

	credential := mapping.ToDomainCredential(m)
	return &credential, nil
}

// FindProfileByUserID retrieves the profile attached to a credential.
func (r *PgxUserRepository) FindProfileByUserID(ctx context.Context, userID string) (*domain.UserProfile, error) {
	query := `
		SELECT user_id, email, first_name, last_name, role, created_at
		FROM user_profiles
		WHERE user_id = $1;
	`
	var m models.UserProfile
	err := r.Pool.QueryRow(ctx, query, userID).Scan(
		&m.UserID,
		&m.Email,
		&m.FirstName,
		&m.LastName,
		&m.Role,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user profile %s: %w", userID, err)
	}

	profile := mapping.ToDomainUserProfile(m)
	return &profile, nil
}

// CreateUser stores a credential and its profile in one transaction.
func (r *PgxUserRepository) CreateUser(ctx context.Context, credential domain.Credential, profile domain.UserProfile) error {
	mc := mapping.ToModelCredential(credential)
	mp := mapping.ToModelUserProfile(profile)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if rbErr := r.Rollback(ctx, tx); rbErr != nil {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to rollback user creation", slog.String("error", rbErr.Error()))
		}
	}()

	_, err = tx.Exec(ctx, `
		INSERT INTO credentials (user_id, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4);
	`, mc.UserID, mc.Email, mc.PasswordHash, mc.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to insert credential: %w", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO user_profiles (user_id, email, first_name, last_name, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`, mp.UserID, mp.Email, mp.FirstName, mp.LastName, mp.Role, mp.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert user profile: %w", err)
	}

	return r.Commit(ctx, tx)
}
