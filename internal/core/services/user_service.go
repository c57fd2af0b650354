package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/cash_dashboard/internal/apperrors"
	"github.com/SscSPs/cash_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/cash_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cash_dashboard/internal/core/ports/services"
	"github.com/SscSPs/cash_dashboard/internal/dto"
	"github.com/SscSPs/cash_dashboard/internal/utils"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const minPasswordLength = 6

// userService implements the UserSvcFacade interface
type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
	validate *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{
		userRepo: userRepo,
		validate: validator.New(),
	}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// GetProfile retrieves the profile attached to a signed-in user.
func (s *userService) GetProfile(ctx context.Context, userID string) (*domain.UserProfile, error) {
	profile, err := s.userRepo.FindProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogWarn(ctx, "Signed-in user has no profile", slog.String("user_id", userID))
			return nil, apperrors.ErrProfileNotFound
		}
		s.LogError(ctx, err, "Failed to load user profile", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to load user profile: %w", err)
	}
	return profile, nil
}

// GetProfileByEmail resolves an email to its profile. An unknown email yields
// apperrors.ErrNotFound.
func (s *userService) GetProfileByEmail(ctx context.Context, email string) (*domain.UserProfile, error) {
	credential, err := s.userRepo.FindCredentialByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to look up credential: %w", err)
	}
	return s.GetProfile(ctx, credential.UserID)
}

// CreateUser creates a credential and its profile together.
func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.UserProfile, error) {
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.Email = normalizeEmail(req.Email)

	if msgs := s.checkNewUser(req); len(msgs) > 0 {
		return nil, apperrors.NewValidationError(msgs...)
	}

	role := domain.UserRole(req.Role)
	if role == "" {
		role = domain.RoleUser
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	userID := uuid.NewString()
	credential := domain.Credential{
		UserID:       userID,
		Email:        req.Email,
		PasswordHash: hash,
		CreatedAt:    now,
	}
	profile := domain.UserProfile{
		UserID:    userID,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      role,
		CreatedAt: now,
	}

	if err := s.userRepo.CreateUser(ctx, credential, profile); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			s.LogInfo(ctx, "Rejected user creation for registered email", slog.String("email", req.Email))
			return nil, apperrors.ErrDuplicate
		}
		s.LogError(ctx, err, "Failed to create user", slog.String("email", req.Email))
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.LogInfo(ctx, "User created",
		slog.String("user_id", userID),
		slog.String("role", string(role)),
		slog.String("created_by", creatorUserID))
	return &profile, nil
}

func (s *userService) checkNewUser(req dto.CreateUserRequest) []string {
	var msgs []string
	if req.FirstName == "" {
		msgs = append(msgs, "First name is required")
	}
	if req.LastName == "" {
		msgs = append(msgs, "Last name is required")
	}
	if req.Email == "" {
		msgs = append(msgs, "Email is required")
	} else if s.validate.Var(req.Email, "email") != nil {
		msgs = append(msgs, "Please enter a valid email address")
	}
	if len(req.Password) < minPasswordLength {
		msgs = append(msgs, fmt.Sprintf("Password must be at least %d characters long", minPasswordLength))
	}
	if req.Password != req.ConfirmPassword {
		msgs = append(msgs, "Passwords do not match")
	}
	if req.Role != "" && !domain.UserRole(req.Role).IsValid() {
		msgs = append(msgs, "Role must be one of: user admin")
	}
	return msgs
}

// AuthenticateUser checks an email/password pair and returns the matching profile.
func (s *userService) AuthenticateUser(ctx context.Context, email, password string) (*domain.UserProfile, error) {
	email = normalizeEmail(email)
	credential, err := s.userRepo.FindCredentialByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogInfo(ctx, "Sign-in for unknown email", slog.String("email", email))
			return nil, apperrors.ErrUnauthorized
		}
		s.LogError(ctx, err, "Failed to look up credential", slog.String("email", email))
		return nil, fmt.Errorf("failed to look up credential: %w", err)
	}

	if !utils.CheckPasswordHash(password, credential.PasswordHash) {
		s.LogInfo(ctx, "Sign-in with wrong password", slog.String("user_id", credential.UserID))
		return nil, apperrors.ErrUnauthorized
	}

	return s.GetProfile(ctx, credential.UserID)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
