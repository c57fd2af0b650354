package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/cash_dashboard/internal/apperrors"
	"github.com/SscSPs/cash_dashboard/internal/core/domain"
	portssvc "github.com/SscSPs/cash_dashboard/internal/core/ports/services"
	"github.com/SscSPs/cash_dashboard/internal/dto"
	"github.com/SscSPs/cash_dashboard/internal/middleware"
	"github.com/gin-gonic/gin"
)

// cashPositionHandler serves the dashboard reads and delete-all.
type cashPositionHandler struct {
	summaryService portssvc.CashSummarySvcFacade
	importService  portssvc.ImportLifecycleSvc
}

func newCashPositionHandler(ss portssvc.CashSummarySvcFacade, is portssvc.ImportLifecycleSvc) *cashPositionHandler {
	return &cashPositionHandler{
		summaryService: ss,
		importService:  is,
	}
}

// registerCashPositionRoutes registers routes related to cash positions
func registerCashPositionRoutes(rg *gin.RouterGroup, summaryService portssvc.CashSummarySvcFacade, importService portssvc.ImportLifecycleSvc) {
	h := newCashPositionHandler(summaryService, importService)

	cashPositions := rg.Group("/cash-positions")
	{
		cashPositions.GET("", h.listCashPositions)
		cashPositions.GET("/dates", h.getAvailableDates)
		cashPositions.GET("/summary", h.getCashSummary)
		cashPositions.DELETE("", middleware.RequireAdmin(), h.deleteAllCashPositions)
	}
}

// getAvailableDates godoc
// @Summary List report dates
// @Description Lists the most recent report dates that have data, newest first.
// @Tags cash-positions
// @Produce json
// @Success 200 {object} dto.AvailableDatesResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /cash-positions/dates [get]
func (h *cashPositionHandler) getAvailableDates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	dates, err := h.summaryService.GetAvailableDates(c.Request.Context())
	if err != nil {
		logger.Error("Failed to get available dates", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to load available dates"})
		return
	}
	c.JSON(http.StatusOK, dto.AvailableDatesResponse{Dates: dates})
}

// getCashSummary godoc
// @Summary Get the cash summary
// @Description Aggregates the records of a report date per company. Without a date the latest date with data is used.
// @Tags cash-positions
// @Produce json
// @Param date query string false "Report date (YYYY-MM-DD)"
// @Param basis query string false "Percentage basis" Enums(bank_and_assets, all_categories)
// @Success 200 {object} dto.CashSummaryResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /cash-positions/summary [get]
func (h *cashPositionHandler) getCashSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.CashSummaryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindingError(c, logger, err)
		return
	}

	summary, err := h.summaryService.GetCashSummary(c.Request.Context(), params.Date)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			respondValidation(c, apperrors.ValidationMessages(err))
			return
		}
		logger.Error("Failed to get cash summary", slog.String("error", err.Error()), slog.String("date", params.Date))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to load cash summary"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCashSummaryResponse(*summary, domain.PercentageBasis(params.Basis)))
}

// listCashPositions godoc
// @Summary List raw records
// @Description Lists the stored records of a report date with keyset pagination.
// @Tags cash-positions
// @Produce json
// @Param date query string true "Report date (YYYY-MM-DD)"
// @Param limit query int false "Page size" default(50)
// @Param nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListCashPositionsResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /cash-positions [get]
func (h *cashPositionHandler) listCashPositions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListCashPositionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindingError(c, logger, err)
		return
	}

	page, err := h.summaryService.ListCashPositions(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			respondValidation(c, apperrors.ValidationMessages(err))
			return
		}
		logger.Error("Failed to list cash positions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list cash positions"})
		return
	}
	c.JSON(http.StatusOK, page)
}

// deleteAllCashPositions godoc
// @Summary Delete all records
// @Description Removes every stored cash position record in batches. Admin only.
// @Tags cash-positions
// @Produce json
// @Success 200 {object} dto.DeleteAllResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /cash-positions [delete]
func (h *cashPositionHandler) deleteAllCashPositions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, _ := middleware.GetUserIDFromContext(c)
	deleted, err := h.importService.DeleteAllCashPositions(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Delete-all stopped early", slog.String("error", err.Error()), slog.Int("deleted", deleted))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":        "Failed to delete all cash positions",
			"deletedCount": deleted,
		})
		return
	}

	logger.Info("Deleted all cash positions", slog.Int("deleted", deleted))
	c.JSON(http.StatusOK, dto.DeleteAllResponse{DeletedCount: deleted})
}
