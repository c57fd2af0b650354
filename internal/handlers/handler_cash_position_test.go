package handlers_test

import (
	"errors"
	"net/http"

	"github.com/SscSPs/cash_dashboard/internal/core/domain"
	"github.com/SscSPs/cash_dashboard/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlerTestSuite) TestGetCashSummary_Success() {
	summary := &domain.CashSummary{
		ReportDate: "2026-02-13",
		Summaries: []domain.CompanySummary{{
			CompanyID:        "speccon",
			CompanyName:      "SpecCon",
			BankTotal:        decimal.NewFromInt(1000000),
			AssetsTotal:      decimal.NewFromInt(1000000),
			LiabilitiesTotal: decimal.NewFromInt(300000),
		}},
	}
	suite.summarySvc.On("GetCashSummary", mock.Anything, "2026-02-13").Return(summary, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/cash-positions/summary?date=2026-02-13", suite.userToken, nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.CashSummaryResponse
	suite.decode(w, &resp)
	suite.Equal("2026-02-13", resp.ReportDate)
	suite.Equal(domain.BasisAllCategories, resp.DefaultBasis)
	suite.Require().Len(resp.Companies, 1)
	suite.True(resp.Companies[0].NetPosition.Equal(decimal.NewFromInt(1700000)))
	suite.True(resp.Totals.NetPosition.Equal(decimal.NewFromInt(1700000)))
	suite.Contains(resp.Shares, domain.BasisBankAndAssets)
}

func (suite *HandlerTestSuite) TestGetCashSummary_DefaultsToLatestDate() {
	suite.summarySvc.On("GetCashSummary", mock.Anything, "").Return(&domain.CashSummary{}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/cash-positions/summary", suite.userToken, nil)

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlerTestSuite) TestGetCashSummary_InvalidDate() {
	w := suite.do(http.MethodGet, "/api/v1/cash-positions/summary?date=13/02/2026", suite.userToken, nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "Invalid date format")
}

func (suite *HandlerTestSuite) TestGetCashSummary_InvalidBasis() {
	w := suite.do(http.MethodGet, "/api/v1/cash-positions/summary?basis=net_only", suite.userToken, nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestGetCashSummary_RequiresToken() {
	w := suite.do(http.MethodGet, "/api/v1/cash-positions/summary", "", nil)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *HandlerTestSuite) TestGetAvailableDates() {
	suite.summarySvc.On("GetAvailableDates", mock.Anything).Return([]string{"2026-02-13", "2026-02-12"}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/cash-positions/dates", suite.userToken, nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.AvailableDatesResponse
	suite.decode(w, &resp)
	suite.Equal([]string{"2026-02-13", "2026-02-12"}, resp.Dates)
}

func (suite *HandlerTestSuite) TestListCashPositions_RequiresDate() {
	w := suite.do(http.MethodGet, "/api/v1/cash-positions", suite.userToken, nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.summarySvc.AssertNotCalled(suite.T(), "ListCashPositions", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestListCashPositions_DefaultLimit() {
	params := dto.ListCashPositionsParams{Date: "2026-02-13", Limit: 50}
	suite.summarySvc.On("ListCashPositions", mock.Anything, params).
		Return(&dto.ListCashPositionsResponse{CashPositions: []domain.CashPosition{}}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/cash-positions?date=2026-02-13", suite.userToken, nil)

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlerTestSuite) TestDeleteAll_RequiresAdmin() {
	w := suite.do(http.MethodDelete, "/api/v1/cash-positions", suite.userToken, nil)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.importSvc.AssertNotCalled(suite.T(), "DeleteAllCashPositions", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestDeleteAll_Success() {
	suite.importSvc.On("DeleteAllCashPositions", mock.Anything, testAdminID).Return(1200, nil).Once()

	w := suite.do(http.MethodDelete, "/api/v1/cash-positions", suite.adminToken, nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.DeleteAllResponse
	suite.decode(w, &resp)
	suite.Equal(1200, resp.DeletedCount)
}

func (suite *HandlerTestSuite) TestDeleteAll_PartialFailureReportsCount() {
	suite.importSvc.On("DeleteAllCashPositions", mock.Anything, testAdminID).Return(500, errors.New("batch 2 failed")).Once()

	w := suite.do(http.MethodDelete, "/api/v1/cash-positions", suite.adminToken, nil)

	suite.Equal(http.StatusInternalServerError, w.Code)
	var resp dto.DeleteAllResponse
	suite.decode(w, &resp)
	suite.Equal(500, resp.DeletedCount)
}
