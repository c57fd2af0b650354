package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/SscSPs/cash_dashboard/internal/apperrors"
	"github.com/SscSPs/cash_dashboard/internal/core/domain"
	portssvc "github.com/SscSPs/cash_dashboard/internal/core/ports/services"
	"github.com/SscSPs/cash_dashboard/internal/dto"
	"github.com/SscSPs/cash_dashboard/internal/middleware"
	"github.com/SscSPs/cash_dashboard/internal/platform/config"
	"github.com/gin-gonic/gin"
)

const (
	oauthStateCookie    = "oauth_state"
	oauthStateMaxAge    = 600
	profileMissingError = "User profile not found. Please contact administrator to create your user profile."
)

// authHandler handles sign-in and sign-out.
type authHandler struct {
	userService   portssvc.UserSvcFacade
	tokenService  portssvc.TokenSvcFacade
	googleService portssvc.GoogleOAuthHandlerSvcFacade
	cfg           *config.Config
}

func newAuthHandler(services *portssvc.ServiceContainer, cfg *config.Config) *authHandler {
	return &authHandler{
		userService:   services.User,
		tokenService:  services.TokenService,
		googleService: services.GoogleOAuthHandler,
		cfg:           cfg,
	}
}

// registerAuthRoutes sets up the routes for authentication.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer, authMiddleware gin.HandlerFunc) error {
	h := newAuthHandler(services, cfg)

	loginLimiter, err := middleware.NewIPRateLimiter(cfg.LoginRateLimit)
	if err != nil {
		return err
	}

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/login", middleware.RateLimit(loginLimiter), h.login)
		auth.POST("/google", h.googleSignIn)
		auth.GET("/google/login", h.googleRedirect)
		auth.GET("/google/callback", h.googleCallback)
		auth.POST("/logout", authMiddleware, h.logout)
	}
	return nil
}

func (h *authHandler) respondSession(c *gin.Context, session *domain.Session) {
	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
		User:      dto.ToProfileResponse(session.Profile),
	})
}

// login godoc
// @Summary User login
// @Description Authenticates a user by email and password and returns a JWT token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Credential has no user profile"
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, logger, err)
		return
	}

	profile, err := h.userService.AuthenticateUser(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrUnauthorized):
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid email or password"})
		case errors.Is(err, apperrors.ErrProfileNotFound):
			c.JSON(http.StatusConflict, ErrorResponse{Error: profileMissingError})
		default:
			logger.Error("Failed to authenticate user", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to sign in"})
		}
		return
	}

	session, err := h.tokenService.IssueSession(c.Request.Context(), *profile)
	if err != nil {
		logger.Error("Failed to issue session", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	logger.Info("User signed in", slog.String("user_id", profile.UserID))
	h.respondSession(c, session)
}

// googleSignIn godoc
// @Summary Sign in with a Google ID token
// @Description Verifies a Google ID token and signs in the user registered under its email.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.GoogleLoginRequest true "Google ID token"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Credential has no user profile"
// @Failure 500 {object} ErrorResponse
// @Router /auth/google [post]
func (h *authHandler) googleSignIn(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.GoogleLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, logger, err)
		return
	}

	session, status, msg := h.signInWithGoogleIDToken(c.Request.Context(), logger, req.IDToken)
	if session == nil {
		c.JSON(status, ErrorResponse{Error: msg})
		return
	}
	h.respondSession(c, session)
}

// googleRedirect godoc
// @Summary Start Google sign-in
// @Description Redirects the browser to Google's consent screen.
// @Tags auth
// @Success 307
// @Failure 500 {object} ErrorResponse
// @Router /auth/google/login [get]
func (h *authHandler) googleRedirect(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	state, err := h.googleService.GenerateStateString(c.Request.Context())
	if err != nil {
		logger.Error("Failed to generate OAuth state", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to start Google sign-in"})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(oauthStateCookie, state, oauthStateMaxAge, "/", "", h.cfg.IsProduction, true)
	c.Redirect(http.StatusTemporaryRedirect, h.googleService.GetGoogleLoginURL(c.Request.Context(), state))
}

// googleCallback godoc
// @Summary Finish Google sign-in
// @Description Exchanges the authorization code and redirects to the front end with the session token in the URL fragment.
// @Tags auth
// @Param state query string true "OAuth state"
// @Param code query string true "Authorization code"
// @Success 307
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/google/callback [get]
func (h *authHandler) googleCallback(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	expectedState, err := c.Cookie(oauthStateCookie)
	if err != nil || expectedState == "" || c.Query("state") != expectedState {
		logger.Warn("OAuth state mismatch")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid OAuth state"})
		return
	}
	c.SetCookie(oauthStateCookie, "", -1, "/", "", h.cfg.IsProduction, true)

	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Authorization code is required"})
		return
	}

	oauth2Token, err := h.googleService.ExchangeCodeForToken(ctx, code)
	if err != nil {
		logger.Error("Failed to exchange authorization code with Google", slog.String("error", err.Error()))
		status := http.StatusBadGateway
		if strings.Contains(strings.ToLower(err.Error()), "invalid_grant") {
			status = http.StatusBadRequest
		}
		c.JSON(status, ErrorResponse{Error: "Failed to complete Google sign-in"})
		return
	}

	idToken, ok := oauth2Token.Extra("id_token").(string)
	if !ok || idToken == "" {
		logger.Error("ID token not found in Google's token response")
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Failed to retrieve ID token from Google"})
		return
	}

	session, status, msg := h.signInWithGoogleIDToken(ctx, logger, idToken)
	if session == nil {
		c.JSON(status, ErrorResponse{Error: msg})
		return
	}

	fragment := url.Values{}
	fragment.Set("token", session.Token)
	c.Redirect(http.StatusTemporaryRedirect, strings.TrimRight(h.cfg.FrontendBaseURL, "/")+"/auth/callback#"+fragment.Encode())
}

// signInWithGoogleIDToken verifies the token and opens a session for the
// registered user with the same email. There is no self-registration.
func (h *authHandler) signInWithGoogleIDToken(ctx context.Context, logger *slog.Logger, idToken string) (*domain.Session, int, string) {
	payload, err := h.googleService.ValidateGoogleIDToken(ctx, idToken)
	if err != nil {
		logger.Warn("Google ID token validation failed", slog.String("error", err.Error()))
		return nil, http.StatusUnauthorized, "Invalid Google ID token"
	}

	email, _ := payload.Claims["email"].(string)
	emailVerified, _ := payload.Claims["email_verified"].(bool)
	if email == "" || !emailVerified {
		logger.Warn("Google ID token without a verified email", slog.String("google_user_id", payload.Subject))
		return nil, http.StatusUnauthorized, "Google account email is not verified"
	}

	profile, err := h.userService.GetProfileByEmail(ctx, email)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Info("Google sign-in for unregistered email", slog.String("email", email))
			return nil, http.StatusUnauthorized, "No account is registered for this email"
		case errors.Is(err, apperrors.ErrProfileNotFound):
			return nil, http.StatusConflict, profileMissingError
		default:
			logger.Error("Failed to resolve Google user", slog.String("error", err.Error()))
			return nil, http.StatusInternalServerError, "Failed to sign in"
		}
	}

	session, err := h.tokenService.IssueSession(ctx, *profile)
	if err != nil {
		logger.Error("Failed to issue session", slog.String("error", err.Error()))
		return nil, http.StatusInternalServerError, "Failed to generate token"
	}

	logger.Info("User signed in with Google", slog.String("user_id", profile.UserID))
	return session, http.StatusOK, ""
}

// logout godoc
// @Summary Sign out
// @Description Revokes the token used for this request.
// @Tags auth
// @Success 204
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /auth/logout [post]
func (h *authHandler) logout(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	session, ok := middleware.GetSessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.tokenService.RevokeSession(c.Request.Context(), session.TokenID, session.UserID, session.ExpiresAt); err != nil {
		logger.Error("Failed to sign out", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to sign out"})
		return
	}

	c.Status(http.StatusNoContent)
}
