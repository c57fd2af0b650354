package handlers_test

import (
	"bytes"
	"mime/multipart"
	"net/http"

	"github.com/SscSPs/cash_dashboard/internal/apperrors"
	"github.com/SscSPs/cash_dashboard/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

const sampleCSV = "reportDate,companyId,accountTypeId,subAccountId,amount\n2026-02-13,speccon,bank-account,,1500000\n"

func (suite *HandlerTestSuite) upload(path, fileName, content string) *http.Request {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", fileName)
	suite.Require().NoError(err)
	_, err = part.Write([]byte(content))
	suite.Require().NoError(err)
	suite.Require().NoError(writer.Close())

	req, err := http.NewRequest(http.MethodPost, path, body)
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func (suite *HandlerTestSuite) TestDownloadTemplate() {
	suite.importSvc.On("Template").Return(sampleCSV).Once()

	w := suite.do(http.MethodGet, "/api/v1/imports/template", suite.userToken, nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Header().Get("Content-Type"), "text/csv")
	suite.Contains(w.Header().Get("Content-Disposition"), "attachment")
	suite.Equal(sampleCSV, w.Body.String())
}

func (suite *HandlerTestSuite) TestPreviewImport_Success() {
	preview := &domain.ImportPreview{Total: 1, Valid: 1, Errors: []string{}}
	suite.importSvc.On("PreviewImport", mock.Anything, mock.Anything).Return(preview, nil).Once()

	w := suite.perform(suite.upload("/api/v1/imports/preview", "positions.csv", sampleCSV), suite.userToken)

	suite.Equal(http.StatusOK, w.Code)
	var resp domain.ImportPreview
	suite.decode(w, &resp)
	suite.Equal(1, resp.Valid)
}

func (suite *HandlerTestSuite) TestPreviewImport_RejectsNonCSV() {
	w := suite.perform(suite.upload("/api/v1/imports/preview", "positions.xlsx", sampleCSV), suite.userToken)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "Please select a CSV file")
	suite.importSvc.AssertNotCalled(suite.T(), "PreviewImport", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestPreviewImport_MissingFile() {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/imports/preview", http.NoBody)

	w := suite.perform(req, suite.userToken)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestImportFile_Success() {
	report := &domain.ImportReport{Total: 1, Succeeded: 1, Results: []domain.ImportResult{{Success: true, ID: "cp-1"}}}
	suite.importSvc.On("ImportFile", mock.Anything, mock.Anything, "positions.csv", testUserID).Return(report, nil).Once()

	w := suite.perform(suite.upload("/api/v1/imports", "positions.csv", sampleCSV), suite.userToken)

	suite.Equal(http.StatusOK, w.Code)
	var resp domain.ImportReport
	suite.decode(w, &resp)
	suite.Equal(1, resp.Succeeded)
}

func (suite *HandlerTestSuite) TestImportFile_InvalidRowsRejected() {
	suite.importSvc.On("ImportFile", mock.Anything, mock.Anything, "positions.csv", testUserID).
		Return(nil, apperrors.NewValidationError("Row 3: Amount must be a positive number", "Row 4: Invalid date format")).Once()

	w := suite.perform(suite.upload("/api/v1/imports", "positions.csv", sampleCSV), suite.userToken)

	suite.Equal(http.StatusBadRequest, w.Code)
	var resp struct {
		Errors []string `json:"errors"`
	}
	suite.decode(w, &resp)
	suite.Len(resp.Errors, 2)
}

func (suite *HandlerTestSuite) TestImportFile_MalformedCSV() {
	suite.importSvc.On("ImportFile", mock.Anything, mock.Anything, "positions.csv", testUserID).
		Return(nil, apperrors.ErrMalformedCSV).Once()

	w := suite.perform(suite.upload("/api/v1/imports", "positions.csv", "\"unterminated"), suite.userToken)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "malformed CSV")
}
