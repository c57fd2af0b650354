package services

import (
	"context"
	"time"

	"github.com/SscSPs/cash_dashboard/internal/core/domain"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

// TokenSvcFacade issues and revokes session tokens.
type TokenSvcFacade interface {
	// IssueSession signs a new access token for the profile.
	IssueSession(ctx context.Context, profile domain.UserProfile) (*domain.Session, error)

	// RevokeSession signs a token out until it expires.
	RevokeSession(ctx context.Context, tokenID string, userID string, expiresAt time.Time) error

	// IsRevoked reports whether a token id was signed out.
	IsRevoked(ctx context.Context, tokenID string) (bool, error)

	// PurgeExpiredRevocations forgets revocations of tokens that have expired anyway.
	PurgeExpiredRevocations(ctx context.Context) (int64, error)
}

// GoogleOAuthHandlerSvcFacade defines the interface for Google OAuth operations.
type GoogleOAuthHandlerSvcFacade interface {
	// GenerateStateString creates a secure random string to be used as a CSRF token for OAuth flow.
	GenerateStateString(ctx context.Context) (string, error)
	// GetGoogleLoginURL returns the URL to redirect the user to for Google login.
	GetGoogleLoginURL(ctx context.Context, state string) string
	// ExchangeCodeForToken exchanges an OAuth authorization code for a token.
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)
	// ValidateGoogleIDToken validates an ID token string from Google and returns its payload.
	ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error)
}
