package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/cash_dashboard/internal/apperrors"
	"github.com/SscSPs/cash_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/cash_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cash_dashboard/internal/core/ports/services"
	"github.com/SscSPs/cash_dashboard/internal/dto"
	"github.com/SscSPs/cash_dashboard/internal/utils/cashposition"
)

type referenceDataService struct {
	BaseService
	repo portsrepo.ReferenceDataRepositoryFacade
}

// NewReferenceDataService creates a service over the company, account type and sub-account tables.
func NewReferenceDataService(repo portsrepo.ReferenceDataRepositoryFacade) portssvc.ReferenceDataSvcFacade {
	return &referenceDataService{repo: repo}
}

var _ portssvc.ReferenceDataSvcFacade = (*referenceDataService)(nil)

func (s *referenceDataService) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	companies, err := s.repo.ListCompanies(ctx, true)
	if err != nil {
		s.LogError(ctx, err, "Failed to list companies")
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	return companies, nil
}

func (s *referenceDataService) ListAccountTypes(ctx context.Context) ([]domain.AccountType, error) {
	accountTypes, err := s.repo.ListAccountTypes(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list account types")
		return nil, fmt.Errorf("failed to list account types: %w", err)
	}
	return accountTypes, nil
}

func (s *referenceDataService) ListSubAccounts(ctx context.Context) ([]domain.SubAccount, error) {
	subAccounts, err := s.repo.ListSubAccounts(ctx, true)
	if err != nil {
		s.LogError(ctx, err, "Failed to list sub-accounts")
		return nil, fmt.Errorf("failed to list sub-accounts: %w", err)
	}
	return subAccounts, nil
}

func auditFor(userID string) domain.AuditFields {
	now := time.Now().UTC()
	return domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}
}

func referenceID(raw string) (string, error) {
	id := cashposition.NormalizeID(raw)
	if id == "" {
		return "", apperrors.NewValidationError("ID is required")
	}
	return id, nil
}

func activeOrDefault(active *bool) bool {
	if active == nil {
		return true
	}
	return *active
}

func (s *referenceDataService) UpsertCompany(ctx context.Context, id string, req dto.UpsertCompanyRequest, userID string) (*domain.Company, error) {
	companyID, err := referenceID(id)
	if err != nil {
		return nil, err
	}
	company := domain.Company{
		ID:          companyID,
		Name:        strings.TrimSpace(req.Name),
		Code:        strings.TrimSpace(req.Code),
		Active:      activeOrDefault(req.Active),
		AuditFields: auditFor(userID),
	}
	if err := s.repo.SaveCompany(ctx, company); err != nil {
		s.LogError(ctx, err, "Failed to save company", slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to save company: %w", err)
	}
	s.LogInfo(ctx, "Company saved", slog.String("company_id", companyID), slog.String("user_id", userID))
	return &company, nil
}

func (s *referenceDataService) UpsertAccountType(ctx context.Context, id string, req dto.UpsertAccountTypeRequest, userID string) (*domain.AccountType, error) {
	accountTypeID, err := referenceID(id)
	if err != nil {
		return nil, err
	}
	accountType := domain.AccountType{
		ID:           accountTypeID,
		Name:         strings.TrimSpace(req.Name),
		Category:     domain.Category(strings.TrimSpace(req.Category)),
		DisplayOrder: req.DisplayOrder,
		AuditFields:  auditFor(userID),
	}
	if !accountType.Category.IsKnown() {
		s.LogWarn(ctx, "Account type category is not aggregated",
			slog.String("account_type_id", accountTypeID),
			slog.String("category", string(accountType.Category)))
	}
	if err := s.repo.SaveAccountType(ctx, accountType); err != nil {
		s.LogError(ctx, err, "Failed to save account type", slog.String("account_type_id", accountTypeID))
		return nil, fmt.Errorf("failed to save account type: %w", err)
	}
	s.LogInfo(ctx, "Account type saved", slog.String("account_type_id", accountTypeID), slog.String("user_id", userID))
	return &accountType, nil
}

func (s *referenceDataService) UpsertSubAccount(ctx context.Context, id string, req dto.UpsertSubAccountRequest, userID string) (*domain.SubAccount, error) {
	subAccountID, err := referenceID(id)
	if err != nil {
		return nil, err
	}
	subAccount := domain.SubAccount{
		ID:           subAccountID,
		Name:         strings.TrimSpace(req.Name),
		Active:       activeOrDefault(req.Active),
		DisplayOrder: req.DisplayOrder,
		AuditFields:  auditFor(userID),
	}
	if err := s.repo.SaveSubAccount(ctx, subAccount); err != nil {
		s.LogError(ctx, err, "Failed to save sub-account", slog.String("sub_account_id", subAccountID))
		return nil, fmt.Errorf("failed to save sub-account: %w", err)
	}
	s.LogInfo(ctx, "Sub-account saved", slog.String("sub_account_id", subAccountID), slog.String("user_id", userID))
	return &subAccount, nil
}
