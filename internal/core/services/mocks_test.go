package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/cash_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/cash_dashboard/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Mock CashPositionRepository ---
type MockCashPositionRepository struct {
	mock.Mock
}

func (m *MockCashPositionRepository) FindCashPositionsByDate(ctx context.Context, reportDate string) ([]domain.CashPosition, error) {
	args := m.Called(ctx, reportDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CashPosition), args.Error(1)
}

func (m *MockCashPositionRepository) ListCashPositionsByDate(ctx context.Context, reportDate string, limit int, after *portsrepo.CashPositionCursor) ([]domain.CashPosition, error) {
	args := m.Called(ctx, reportDate, limit, after)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CashPosition), args.Error(1)
}

func (m *MockCashPositionRepository) FindAvailableDates(ctx context.Context, limit int) ([]string, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockCashPositionRepository) FindAllCashPositionIDs(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockCashPositionRepository) CreateCashPosition(ctx context.Context, record domain.CashPosition) (string, error) {
	args := m.Called(ctx, record)
	return args.String(0), args.Error(1)
}

func (m *MockCashPositionRepository) DeleteCashPositionsByIDs(ctx context.Context, ids []string) (int64, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock ReferenceDataRepository ---
type MockReferenceDataRepository struct {
	mock.Mock
}

func (m *MockReferenceDataRepository) ListCompanies(ctx context.Context, activeOnly bool) ([]domain.Company, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Company), args.Error(1)
}

func (m *MockReferenceDataRepository) ListAccountTypes(ctx context.Context) ([]domain.AccountType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountType), args.Error(1)
}

func (m *MockReferenceDataRepository) ListSubAccounts(ctx context.Context, activeOnly bool) ([]domain.SubAccount, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SubAccount), args.Error(1)
}

func (m *MockReferenceDataRepository) SaveCompany(ctx context.Context, company domain.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

func (m *MockReferenceDataRepository) SaveAccountType(ctx context.Context, accountType domain.AccountType) error {
	args := m.Called(ctx, accountType)
	return args.Error(0)
}

func (m *MockReferenceDataRepository) SaveSubAccount(ctx context.Context, subAccount domain.SubAccount) error {
	args := m.Called(ctx, subAccount)
	return args.Error(0)
}

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindCredentialByEmail(ctx context.Context, email string) (*domain.Credential, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Credential), args.Error(1)
}

func (m *MockUserRepository) FindProfileByUserID(ctx context.Context, userID string) (*domain.UserProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProfile), args.Error(1)
}

func (m *MockUserRepository) CreateUser(ctx context.Context, credential domain.Credential, profile domain.UserProfile) error {
	args := m.Called(ctx, credential, profile)
	return args.Error(0)
}

// --- Mock RevokedTokenRepository ---
type MockRevokedTokenRepository struct {
	mock.Mock
}

func (m *MockRevokedTokenRepository) RevokeToken(ctx context.Context, tokenID string, userID string, expiresAt time.Time) error {
	args := m.Called(ctx, tokenID, userID, expiresAt)
	return args.Error(0)
}

func (m *MockRevokedTokenRepository) IsTokenRevoked(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRevokedTokenRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	args := m.Called(ctx, before)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock UploadArchiver ---
type MockUploadArchiver struct {
	mock.Mock
}

func (m *MockUploadArchiver) ArchiveUpload(ctx context.Context, fileName string, data []byte) (string, error) {
	args := m.Called(ctx, fileName, data)
	return args.String(0), args.Error(1)
}
