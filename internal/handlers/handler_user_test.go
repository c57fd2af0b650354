package handlers_test

import (
	"net/http"

	"github.com/SscSPs/cash_dashboard/internal/apperrors"
	"github.com/SscSPs/cash_dashboard/internal/core/domain"
	"github.com/SscSPs/cash_dashboard/internal/dto"
	"github.com/stretchr/testify/mock"
)

func newUserRequest() dto.CreateUserRequest {
	return dto.CreateUserRequest{
		FirstName:       "John",
		LastName:        "Smith",
		Email:           "john@example.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	}
}

func (suite *HandlerTestSuite) TestGetMe_Success() {
	profile := testProfile()
	suite.userSvc.On("GetProfile", mock.Anything, testUserID).Return(&profile, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/me", suite.userToken, nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ProfileResponse
	suite.decode(w, &resp)
	suite.Equal("jane@example.com", resp.Email)
}

func (suite *HandlerTestSuite) TestGetMe_ProfileMissing() {
	suite.userSvc.On("GetProfile", mock.Anything, testUserID).Return(nil, apperrors.ErrProfileNotFound).Once()

	w := suite.do(http.MethodGet, "/api/v1/me", suite.userToken, nil)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlerTestSuite) TestCreateUser_RequiresAdmin() {
	w := suite.do(http.MethodPost, "/api/v1/users", suite.userToken, newUserRequest())

	suite.Equal(http.StatusForbidden, w.Code)
	suite.userSvc.AssertNotCalled(suite.T(), "CreateUser", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestCreateUser_Success() {
	req := newUserRequest()
	created := &domain.UserProfile{UserID: "user-9", Email: req.Email, FirstName: "John", LastName: "Smith", Role: domain.RoleUser}
	suite.userSvc.On("CreateUser", mock.Anything, req, testAdminID).Return(created, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/users", suite.adminToken, req)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.ProfileResponse
	suite.decode(w, &resp)
	suite.Equal("user-9", resp.UserID)
}

func (suite *HandlerTestSuite) TestCreateUser_PasswordMismatch() {
	req := newUserRequest()
	req.ConfirmPassword = "different"

	w := suite.do(http.MethodPost, "/api/v1/users", suite.adminToken, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	var resp struct {
		Errors []string `json:"errors"`
	}
	suite.decode(w, &resp)
	suite.Contains(resp.Errors, "Passwords do not match")
}

func (suite *HandlerTestSuite) TestCreateUser_DuplicateEmail() {
	req := newUserRequest()
	suite.userSvc.On("CreateUser", mock.Anything, req, testAdminID).Return(nil, apperrors.ErrDuplicate).Once()

	w := suite.do(http.MethodPost, "/api/v1/users", suite.adminToken, req)

	suite.Equal(http.StatusConflict, w.Code)
	suite.Contains(w.Body.String(), "This email is already registered.")
}

func (suite *HandlerTestSuite) TestCreateUser_ServiceValidation() {
	req := newUserRequest()
	suite.userSvc.On("CreateUser", mock.Anything, req, testAdminID).
		Return(nil, apperrors.NewValidationError("First name is required")).Once()

	w := suite.do(http.MethodPost, "/api/v1/users", suite.adminToken, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "First name is required")
}
