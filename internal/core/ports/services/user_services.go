package services

import (
	"context"

	"github.com/SscSPs/cash_dashboard/internal/core/domain"
	"github.com/SscSPs/cash_dashboard/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetProfile retrieves the profile of a signed-in user.
	GetProfile(ctx context.Context, userID string) (*domain.UserProfile, error)

	// GetProfileByEmail resolves an email to its profile, used after an external sign-in.
	GetProfileByEmail(ctx context.Context, email string) (*domain.UserProfile, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// CreateUser creates a credential and its profile.
	CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.UserProfile, error)
}

// UserAuthSvc defines operations for user authentication
type UserAuthSvc interface {
	// AuthenticateUser authenticates a user with email and password.
	AuthenticateUser(ctx context.Context, email, password string) (*domain.UserProfile, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserAuthSvc
}
