package handlers_test

import (
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/cash_dashboard/internal/apperrors"
	"github.com/SscSPs/cash_dashboard/internal/core/domain"
	"github.com/SscSPs/cash_dashboard/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func testProfile() domain.UserProfile {
	return domain.UserProfile{
		UserID:    testUserID,
		Email:     "jane@example.com",
		FirstName: "Jane",
		LastName:  "Doe",
		Role:      domain.RoleUser,
	}
}

func testSession() *domain.Session {
	return &domain.Session{
		Token:     "signed-token",
		TokenID:   "jti-1",
		ExpiresAt: time.Date(2026, 10, 18, 20, 0, 0, 0, time.UTC),
		Profile:   testProfile(),
	}
}

func (suite *HandlerTestSuite) TestLogin_Success() {
	profile := testProfile()
	suite.userSvc.On("AuthenticateUser", mock.Anything, "jane@example.com", "secret1").Return(&profile, nil).Once()
	suite.tokenSvc.On("IssueSession", mock.Anything, profile).Return(testSession(), nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{Email: "jane@example.com", Password: "secret1"})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.LoginResponse
	suite.decode(w, &resp)
	suite.Equal("signed-token", resp.Token)
	suite.Equal(testUserID, resp.User.UserID)
	suite.Equal("user", resp.User.Role)
}

func (suite *HandlerTestSuite) TestLogin_InvalidCredentials() {
	suite.userSvc.On("AuthenticateUser", mock.Anything, "jane@example.com", "wrong1").Return(nil, apperrors.ErrUnauthorized).Once()

	w := suite.do(http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{Email: "jane@example.com", Password: "wrong1"})

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Contains(w.Body.String(), "Invalid email or password")
}

func (suite *HandlerTestSuite) TestLogin_ProfileMissing() {
	suite.userSvc.On("AuthenticateUser", mock.Anything, "jane@example.com", "secret1").Return(nil, apperrors.ErrProfileNotFound).Once()

	w := suite.do(http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{Email: "jane@example.com", Password: "secret1"})

	suite.Equal(http.StatusConflict, w.Code)
	suite.Contains(w.Body.String(), "contact administrator")
}

func (suite *HandlerTestSuite) TestLogin_MissingFields() {
	w := suite.do(http.MethodPost, "/api/v1/auth/login", "", map[string]string{"email": "jane@example.com"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "Password is required")
	suite.userSvc.AssertNotCalled(suite.T(), "AuthenticateUser", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestGoogleSignIn_Success() {
	profile := testProfile()
	payload := &idtoken.Payload{Subject: "g-1", Claims: map[string]interface{}{"email": "jane@example.com", "email_verified": true}}
	suite.googleSvc.On("ValidateGoogleIDToken", mock.Anything, "google-id-token").Return(payload, nil).Once()
	suite.userSvc.On("GetProfileByEmail", mock.Anything, "jane@example.com").Return(&profile, nil).Once()
	suite.tokenSvc.On("IssueSession", mock.Anything, profile).Return(testSession(), nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/auth/google", "", dto.GoogleLoginRequest{IDToken: "google-id-token"})

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "signed-token")
}

func (suite *HandlerTestSuite) TestGoogleSignIn_UnregisteredEmail() {
	payload := &idtoken.Payload{Subject: "g-2", Claims: map[string]interface{}{"email": "stranger@example.com", "email_verified": true}}
	suite.googleSvc.On("ValidateGoogleIDToken", mock.Anything, "google-id-token").Return(payload, nil).Once()
	suite.userSvc.On("GetProfileByEmail", mock.Anything, "stranger@example.com").Return(nil, apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodPost, "/api/v1/auth/google", "", dto.GoogleLoginRequest{IDToken: "google-id-token"})

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.tokenSvc.AssertNotCalled(suite.T(), "IssueSession", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestGoogleSignIn_UnverifiedEmail() {
	payload := &idtoken.Payload{Subject: "g-3", Claims: map[string]interface{}{"email": "jane@example.com", "email_verified": false}}
	suite.googleSvc.On("ValidateGoogleIDToken", mock.Anything, "google-id-token").Return(payload, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/auth/google", "", dto.GoogleLoginRequest{IDToken: "google-id-token"})

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Contains(w.Body.String(), "not verified")
}

func (suite *HandlerTestSuite) TestGoogleRedirect_SetsStateCookie() {
	suite.googleSvc.On("GenerateStateString", mock.Anything).Return("state-123", nil).Once()
	suite.googleSvc.On("GetGoogleLoginURL", mock.Anything, "state-123").Return("https://accounts.google.com/o/oauth2/auth?state=state-123").Once()

	w := suite.do(http.MethodGet, "/api/v1/auth/google/login", "", nil)

	suite.Equal(http.StatusTemporaryRedirect, w.Code)
	suite.Equal("https://accounts.google.com/o/oauth2/auth?state=state-123", w.Header().Get("Location"))
	suite.Contains(w.Header().Get("Set-Cookie"), "oauth_state=state-123")
}

func (suite *HandlerTestSuite) TestGoogleCallback_StateMismatch() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/auth/google/callback?state=forged&code=abc", nil)
	req.AddCookie(&http.Cookie{Name: "oauth_state", Value: "state-123"})

	w := suite.perform(req, "")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.googleSvc.AssertNotCalled(suite.T(), "ExchangeCodeForToken", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestGoogleCallback_RedirectsWithToken() {
	profile := testProfile()
	token := (&oauth2.Token{AccessToken: "access"}).WithExtra(map[string]interface{}{"id_token": "google-id-token"})
	payload := &idtoken.Payload{Subject: "g-1", Claims: map[string]interface{}{"email": "jane@example.com", "email_verified": true}}
	suite.googleSvc.On("ExchangeCodeForToken", mock.Anything, "abc").Return(token, nil).Once()
	suite.googleSvc.On("ValidateGoogleIDToken", mock.Anything, "google-id-token").Return(payload, nil).Once()
	suite.userSvc.On("GetProfileByEmail", mock.Anything, "jane@example.com").Return(&profile, nil).Once()
	suite.tokenSvc.On("IssueSession", mock.Anything, profile).Return(testSession(), nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/auth/google/callback?state=state-123&code=abc", nil)
	req.AddCookie(&http.Cookie{Name: "oauth_state", Value: "state-123"})
	w := suite.perform(req, "")

	suite.Equal(http.StatusTemporaryRedirect, w.Code)
	location := w.Header().Get("Location")
	suite.True(strings.HasPrefix(location, "http://localhost:3000/auth/callback#"))
	fragment, err := url.ParseQuery(location[strings.Index(location, "#")+1:])
	suite.Require().NoError(err)
	suite.Equal("signed-token", fragment.Get("token"))
}

func (suite *HandlerTestSuite) TestLogout_RevokesToken() {
	suite.tokenSvc.On("RevokeSession", mock.Anything, "jti-user", testUserID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/auth/logout", suite.userToken, nil)

	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *HandlerTestSuite) TestLogout_RequiresToken() {
	w := suite.do(http.MethodPost, "/api/v1/auth/logout", "", nil)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.tokenSvc.AssertNotCalled(suite.T(), "RevokeSession", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestRevokedTokenRejected() {
	suite.tokenSvc.ExpectedCalls = nil
	suite.tokenSvc.On("IsRevoked", mock.Anything, "jti-user").Return(true, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/me", suite.userToken, nil)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.userSvc.AssertNotCalled(suite.T(), "GetProfile", mock.Anything, mock.Anything)
}
