package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/cash_dashboard/internal/core/domain"
)

// CredentialReader defines read operations for sign-in credentials
type CredentialReader interface {
	// FindCredentialByEmail looks a credential up by case-insensitive email.
	FindCredentialByEmail(ctx context.Context, email string) (*domain.Credential, error)
}

// ProfileReader defines read operations for user profiles
type ProfileReader interface {
	// FindProfileByUserID retrieves the profile attached to a credential.
	FindProfileByUserID(ctx context.Context, userID string) (*domain.UserProfile, error)
}

// UserWriter defines write operations for users
type UserWriter interface {
	// CreateUser stores a credential and its profile together. A taken email
	// yields apperrors.ErrDuplicate.
	CreateUser(ctx context.Context, credential domain.Credential, profile domain.UserProfile) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	CredentialReader
	ProfileReader
	UserWriter
}

// RevokedTokenRepository tracks signed-out session tokens until they expire.
type RevokedTokenRepository interface {
	// RevokeToken records a token id as signed out.
	RevokeToken(ctx context.Context, tokenID string, userID string, expiresAt time.Time) error

	// IsTokenRevoked reports whether a token id was signed out.
	IsTokenRevoked(ctx context.Context, tokenID string) (bool, error)

	// DeleteExpired removes revocations whose token expired before the given time.
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}
