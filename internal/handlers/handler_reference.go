package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/cash_dashboard/internal/apperrors"
	portssvc "github.com/SscSPs/cash_dashboard/internal/core/ports/services"
	"github.com/SscSPs/cash_dashboard/internal/dto"
	"github.com/SscSPs/cash_dashboard/internal/middleware"
	"github.com/gin-gonic/gin"
)

type referenceDataHandler struct {
	referenceService portssvc.ReferenceDataSvcFacade
}

func newReferenceDataHandler(rs portssvc.ReferenceDataSvcFacade) *referenceDataHandler {
	return &referenceDataHandler{referenceService: rs}
}

// registerReferenceDataRoutes registers the lookup table routes. Writes are admin only.
func registerReferenceDataRoutes(rg *gin.RouterGroup, referenceService portssvc.ReferenceDataSvcFacade) {
	h := newReferenceDataHandler(referenceService)
	admin := middleware.RequireAdmin()

	rg.GET("/companies", h.listCompanies)
	rg.PUT("/companies/:id", admin, h.upsertCompany)

	rg.GET("/account-types", h.listAccountTypes)
	rg.PUT("/account-types/:id", admin, h.upsertAccountType)

	rg.GET("/sub-accounts", h.listSubAccounts)
	rg.PUT("/sub-accounts/:id", admin, h.upsertSubAccount)
}

// respondUpsertError maps service errors of the upsert endpoints.
func respondUpsertError(c *gin.Context, logger *slog.Logger, err error, what string) {
	if errors.Is(err, apperrors.ErrValidation) {
		respondValidation(c, apperrors.ValidationMessages(err))
		return
	}
	logger.Error("Failed to save "+what, slog.String("error", err.Error()))
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to save " + what})
}

// listCompanies godoc
// @Summary List companies
// @Description Lists the active companies shown on the dashboard.
// @Tags reference
// @Produce json
// @Success 200 {array} dto.CompanyResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /companies [get]
func (h *referenceDataHandler) listCompanies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	companies, err := h.referenceService.ListCompanies(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list companies", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list companies"})
		return
	}
	c.JSON(http.StatusOK, dto.ToCompanyResponseSlice(companies))
}

// upsertCompany godoc
// @Summary Create or replace a company
// @Tags reference
// @Accept json
// @Produce json
// @Param id path string true "Company ID"
// @Param company body dto.UpsertCompanyRequest true "Company"
// @Success 200 {object} dto.CompanyResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /companies/{id} [put]
func (h *referenceDataHandler) upsertCompany(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpsertCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, logger, err)
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)
	company, err := h.referenceService.UpsertCompany(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondUpsertError(c, logger, err, "company")
		return
	}
	c.JSON(http.StatusOK, dto.ToCompanyResponse(*company))
}

// listAccountTypes godoc
// @Summary List account types
// @Tags reference
// @Produce json
// @Success 200 {array} dto.AccountTypeResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /account-types [get]
func (h *referenceDataHandler) listAccountTypes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accountTypes, err := h.referenceService.ListAccountTypes(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list account types", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list account types"})
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountTypeResponseSlice(accountTypes))
}

// upsertAccountType godoc
// @Summary Create or replace an account type
// @Tags reference
// @Accept json
// @Produce json
// @Param id path string true "Account type ID"
// @Param accountType body dto.UpsertAccountTypeRequest true "Account type"
// @Success 200 {object} dto.AccountTypeResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /account-types/{id} [put]
func (h *referenceDataHandler) upsertAccountType(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpsertAccountTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, logger, err)
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)
	accountType, err := h.referenceService.UpsertAccountType(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondUpsertError(c, logger, err, "account type")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountTypeResponse(*accountType))
}

// listSubAccounts godoc
// @Summary List sub-accounts
// @Description Lists the active sub-accounts.
// @Tags reference
// @Produce json
// @Success 200 {array} dto.SubAccountResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /sub-accounts [get]
func (h *referenceDataHandler) listSubAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	subAccounts, err := h.referenceService.ListSubAccounts(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list sub-accounts", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list sub-accounts"})
		return
	}
	c.JSON(http.StatusOK, dto.ToSubAccountResponseSlice(subAccounts))
}

// upsertSubAccount godoc
// @Summary Create or replace a sub-account
// @Tags reference
// @Accept json
// @Produce json
// @Param id path string true "Sub-account ID"
// @Param subAccount body dto.UpsertSubAccountRequest true "Sub-account"
// @Success 200 {object} dto.SubAccountResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /sub-accounts/{id} [put]
func (h *referenceDataHandler) upsertSubAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpsertSubAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, logger, err)
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)
	subAccount, err := h.referenceService.UpsertSubAccount(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondUpsertError(c, logger, err, "sub-account")
		return
	}
	c.JSON(http.StatusOK, dto.ToSubAccountResponse(*subAccount))
}
