package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/cash_dashboard/internal/dto"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the generic error body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse lists every problem found in a request or upload.
type ValidationErrorResponse struct {
	Error  string   `json:"error"`
	Errors []string `json:"errors"`
}

func respondValidation(c *gin.Context, messages []string) {
	c.JSON(http.StatusBadRequest, ValidationErrorResponse{
		Error:  strings.Join(messages, "; "),
		Errors: messages,
	})
}

// respondBindingError reports gin binding failures as readable messages.
func respondBindingError(c *gin.Context, logger *slog.Logger, err error) {
	logger.Warn("Request binding failed", slog.String("error", err.Error()))
	respondValidation(c, dto.BindingErrorMessages(err))
}
