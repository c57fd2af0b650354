package handlers_test

import (
	"errors"
	"net/http"

	"github.com/SscSPs/cash_dashboard/internal/apperrors"
	"github.com/SscSPs/cash_dashboard/internal/core/domain"
	"github.com/SscSPs/cash_dashboard/internal/dto"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlerTestSuite) TestListCompanies() {
	companies := []domain.Company{{ID: "speccon", Name: "SpecCon", Code: "SC", Active: true}}
	suite.referenceSvc.On("ListCompanies", mock.Anything).Return(companies, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/companies", suite.userToken, nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.CompanyResponse
	suite.decode(w, &resp)
	suite.Require().Len(resp, 1)
	suite.Equal("speccon", resp[0].ID)
}

func (suite *HandlerTestSuite) TestListAccountTypes_Error() {
	suite.referenceSvc.On("ListAccountTypes", mock.Anything).Return(nil, errors.New("db down")).Once()

	w := suite.do(http.MethodGet, "/api/v1/account-types", suite.userToken, nil)

	suite.Equal(http.StatusInternalServerError, w.Code)
}

func (suite *HandlerTestSuite) TestUpsertCompany_RequiresAdmin() {
	w := suite.do(http.MethodPut, "/api/v1/companies/speccon", suite.userToken, dto.UpsertCompanyRequest{Name: "SpecCon"})

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *HandlerTestSuite) TestUpsertCompany_Success() {
	req := dto.UpsertCompanyRequest{Name: "SpecCon", Code: "SC"}
	suite.referenceSvc.On("UpsertCompany", mock.Anything, "speccon", req, testAdminID).
		Return(&domain.Company{ID: "speccon", Name: "SpecCon", Code: "SC", Active: true}, nil).Once()

	w := suite.do(http.MethodPut, "/api/v1/companies/speccon", suite.adminToken, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"active":true`)
}

func (suite *HandlerTestSuite) TestUpsertAccountType_MissingCategory() {
	w := suite.do(http.MethodPut, "/api/v1/account-types/bank-account", suite.adminToken, map[string]string{"name": "Bank Account"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "Category is required")
}

func (suite *HandlerTestSuite) TestUpsertSubAccount_ServiceValidation() {
	req := dto.UpsertSubAccountRequest{Name: "Client Loans"}
	suite.referenceSvc.On("UpsertSubAccount", mock.Anything, "x", req, testAdminID).
		Return(nil, apperrors.NewValidationError("ID is required")).Once()

	w := suite.do(http.MethodPut, "/api/v1/sub-accounts/x", suite.adminToken, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "ID is required")
}
