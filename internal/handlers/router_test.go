package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"time"

	portssvc "github.com/SscSPs/cash_dashboard/internal/core/ports/services"
	"github.com/SscSPs/cash_dashboard/internal/handlers"
	"github.com/SscSPs/cash_dashboard/internal/platform/config"
	"github.com/SscSPs/cash_dashboard/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const (
	testSecret  = "handlers-test-secret-key-long-enough"
	testUserID  = "user-1"
	testAdminID = "admin-1"
)

// HandlerTestSuite builds the full router around mocked services.
type HandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	cfg           *config.Config
	importSvc     *MockImportService
	summarySvc    *MockCashSummaryService
	referenceSvc  *MockReferenceDataService
	userSvc       *MockUserService
	tokenSvc      *MockTokenService
	googleSvc     *MockGoogleOAuthService
	userToken     string
	adminToken    string
	userTokenExp  time.Time
	adminTokenExp time.Time
}

func (suite *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.cfg = &config.Config{
		IsProduction:      true,
		JWTSecret:         testSecret,
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "test",
		FrontendBaseURL:   "http://localhost:3000",
		LoginRateLimit:    "100-M",
		MaxUploadBytes:    1 << 20,
		DeleteBatchSize:   500,
	}

	suite.importSvc = new(MockImportService)
	suite.summarySvc = new(MockCashSummaryService)
	suite.referenceSvc = new(MockReferenceDataService)
	suite.userSvc = new(MockUserService)
	suite.tokenSvc = new(MockTokenService)
	suite.googleSvc = new(MockGoogleOAuthService)

	suite.tokenSvc.On("IsRevoked", mock.Anything, mock.Anything).Return(false, nil).Maybe()

	services := &portssvc.ServiceContainer{
		Import:             suite.importSvc,
		CashSummary:        suite.summarySvc,
		ReferenceData:      suite.referenceSvc,
		User:               suite.userSvc,
		TokenService:       suite.tokenSvc,
		GoogleOAuthHandler: suite.googleSvc,
	}

	suite.router = gin.New()
	suite.Require().NoError(handlers.RegisterRoutes(suite.router, suite.cfg, services))

	var err error
	suite.userToken, suite.userTokenExp, err = utils.GenerateJWT(testUserID, "user", "jti-user", testSecret, time.Hour, "test")
	suite.Require().NoError(err)
	suite.adminToken, suite.adminTokenExp, err = utils.GenerateJWT(testAdminID, "admin", "jti-admin", testSecret, time.Hour, "test")
	suite.Require().NoError(err)
}

func (suite *HandlerTestSuite) TearDownTest() {
	suite.importSvc.AssertExpectations(suite.T())
	suite.summarySvc.AssertExpectations(suite.T())
	suite.referenceSvc.AssertExpectations(suite.T())
	suite.userSvc.AssertExpectations(suite.T())
	suite.tokenSvc.AssertExpectations(suite.T())
	suite.googleSvc.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) perform(req *http.Request, token string) *httptest.ResponseRecorder {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlerTestSuite) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, path, reader)
	suite.Require().NoError(err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return suite.perform(req, token)
}

func (suite *HandlerTestSuite) decode(w *httptest.ResponseRecorder, target interface{}) {
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), target))
}
