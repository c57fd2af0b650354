package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/cash_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/cash_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cash_dashboard/internal/core/ports/services"
	"github.com/SscSPs/cash_dashboard/internal/platform/config"
	"github.com/SscSPs/cash_dashboard/internal/utils"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

// tokenService implements the TokenSvcFacade. Access tokens are stateless
// JWTs; sign-out records the token id until the token would have expired.
type tokenService struct {
	BaseService
	cfg           *config.Config
	revokedTokens portsrepo.RevokedTokenRepository
	now           func() time.Time
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config, revokedTokens portsrepo.RevokedTokenRepository) portssvc.TokenSvcFacade {
	return &tokenService{
		cfg:           cfg,
		revokedTokens: revokedTokens,
		now:           time.Now,
	}
}

var _ portssvc.TokenSvcFacade = (*tokenService)(nil)

// IssueSession signs a new access token for the profile.
func (s *tokenService) IssueSession(ctx context.Context, profile domain.UserProfile) (*domain.Session, error) {
	tokenID := uuid.NewString()
	token, expiresAt, err := utils.GenerateJWT(profile.UserID, string(profile.Role), tokenID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate access token", slog.String("user_id", profile.UserID))
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	return &domain.Session{
		Token:     token,
		TokenID:   tokenID,
		ExpiresAt: expiresAt,
		Profile:   profile,
	}, nil
}

// RevokeSession signs a token out. Tokens already past expiry need no record.
func (s *tokenService) RevokeSession(ctx context.Context, tokenID string, userID string, expiresAt time.Time) error {
	if tokenID == "" {
		return errors.New("token id is required")
	}
	if !expiresAt.After(s.now()) {
		return nil
	}
	if err := s.revokedTokens.RevokeToken(ctx, tokenID, userID, expiresAt); err != nil {
		s.LogError(ctx, err, "Failed to revoke token", slog.String("user_id", userID))
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	s.LogInfo(ctx, "Session signed out", slog.String("user_id", userID))
	return nil
}

// IsRevoked reports whether a token id was signed out.
func (s *tokenService) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	revoked, err := s.revokedTokens.IsTokenRevoked(ctx, tokenID)
	if err != nil {
		return false, fmt.Errorf("failed to check token revocation: %w", err)
	}
	return revoked, nil
}

// PurgeExpiredRevocations drops revocations of tokens that are expired anyway.
func (s *tokenService) PurgeExpiredRevocations(ctx context.Context) (int64, error) {
	n, err := s.revokedTokens.DeleteExpired(ctx, s.now())
	if err != nil {
		s.LogError(ctx, err, "Failed to purge expired revocations")
		return 0, fmt.Errorf("failed to purge expired revocations: %w", err)
	}
	if n > 0 {
		s.LogDebug(ctx, "Purged expired revocations", slog.Int64("count", n))
	}
	return n, nil
}

// --- GoogleOAuthHandlerSvcFacade Implementation ---

// googleOAuthHandlerService implements the GoogleOAuthHandlerSvcFacade.
type googleOAuthHandlerService struct {
	cfg *config.Config
	// oauth2Config is configured at initialization time
	oauth2Config *oauth2.Config
}

// NewGoogleOAuthHandlerService creates a new instance of googleOAuthHandlerService.
func NewGoogleOAuthHandlerService(cfg *config.Config) portssvc.GoogleOAuthHandlerSvcFacade {
	return &googleOAuthHandlerService{
		cfg: cfg,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"openid", "https://www.googleapis.com/auth/userinfo.email"},
			Endpoint:     google.Endpoint,
		},
	}
}

// GenerateStateString creates a secure random string used as the CSRF token of the redirect flow.
func (s *googleOAuthHandlerService) GenerateStateString(ctx context.Context) (string, error) {
	state, err := utils.GenerateSecureRandomString(16)
	if err != nil {
		return "", fmt.Errorf("failed to generate state string for OAuth: %w", err)
	}
	return state, nil
}

// GetGoogleLoginURL returns the URL to redirect the user to for Google sign-in.
func (s *googleOAuthHandlerService) GetGoogleLoginURL(ctx context.Context, state string) string {
	return s.oauth2Config.AuthCodeURL(state)
}

// ExchangeCodeForToken exchanges an OAuth authorization code for a token.
func (s *googleOAuthHandlerService) ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange oauth code for token: %w", err)
	}
	return token, nil
}

// ValidateGoogleIDToken validates an ID token issued by Google for this client.
func (s *googleOAuthHandlerService) ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error) {
	if s.cfg.GoogleClientID == "" {
		return nil, errors.New("google client ID is not configured in the application")
	}

	payload, err := idtoken.Validate(ctx, idTokenString, s.cfg.GoogleClientID)
	if err != nil {
		return nil, fmt.Errorf("google ID token validation failed: %w", err)
	}
	return payload, nil
}
