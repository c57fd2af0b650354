package handlers

import (
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/SscSPs/cash_dashboard/internal/apperrors"
	portssvc "github.com/SscSPs/cash_dashboard/internal/core/ports/services"
	"github.com/SscSPs/cash_dashboard/internal/middleware"
	"github.com/gin-gonic/gin"
)

const (
	uploadFormField  = "file"
	templateFileName = "cash_position_template.csv"
)

type importHandler struct {
	importService  portssvc.ImportSvcFacade
	maxUploadBytes int64
}

func newImportHandler(is portssvc.ImportSvcFacade, maxUploadBytes int64) *importHandler {
	return &importHandler{
		importService:  is,
		maxUploadBytes: maxUploadBytes,
	}
}

// registerImportRoutes registers the CSV upload routes
func registerImportRoutes(rg *gin.RouterGroup, importService portssvc.ImportSvcFacade, maxUploadBytes int64) {
	h := newImportHandler(importService, maxUploadBytes)

	imports := rg.Group("/imports")
	{
		imports.GET("/template", h.downloadTemplate)
		imports.POST("/preview", h.previewImport)
		imports.POST("", h.importFile)
	}
}

// downloadTemplate godoc
// @Summary Download the CSV template
// @Tags imports
// @Produce text/csv
// @Success 200 {string} string "CSV template"
// @Security BearerAuth
// @Router /imports/template [get]
func (h *importHandler) downloadTemplate(c *gin.Context) {
	c.Header("Content-Disposition", `attachment; filename="`+templateFileName+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(h.importService.Template()))
}

// openUpload reads the multipart file field, enforcing the size cap and the .csv extension.
// It writes the error response itself and returns ok=false on failure.
func (h *importHandler) openUpload(c *gin.Context, logger *slog.Logger) (multipart.File, string, bool) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)

	fileHeader, err := c.FormFile(uploadFormField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			logger.Warn("Upload exceeds size limit", slog.Int64("limit", tooLarge.Limit))
			c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: "File is too large"})
			return nil, "", false
		}
		logger.Warn("Upload missing", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Please select a CSV file"})
		return nil, "", false
	}

	if !strings.EqualFold(filepath.Ext(fileHeader.Filename), ".csv") {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Please select a CSV file"})
		return nil, "", false
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error("Failed to open upload", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to read uploaded file"})
		return nil, "", false
	}
	return file, fileHeader.Filename, true
}

// respondImportError maps parse and validation failures of an upload.
func respondImportError(c *gin.Context, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, apperrors.ErrMalformedCSV):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, ValidationErrorResponse{
			Error:  "The file contains invalid rows",
			Errors: apperrors.ValidationMessages(err),
		})
	default:
		logger.Error("Import failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to import file"})
	}
}

// previewImport godoc
// @Summary Preview a CSV upload
// @Description Validates an upload without saving it and returns counts, problems and the first valid rows.
// @Tags imports
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file"
// @Success 200 {object} domain.ImportPreview
// @Failure 400 {object} ErrorResponse
// @Failure 413 {object} ErrorResponse
// @Security BearerAuth
// @Router /imports/preview [post]
func (h *importHandler) previewImport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	file, _, ok := h.openUpload(c, logger)
	if !ok {
		return
	}
	defer file.Close()

	preview, err := h.importService.PreviewImport(c.Request.Context(), file)
	if err != nil {
		respondImportError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, preview)
}

// importFile godoc
// @Summary Import a CSV upload
// @Description Validates the whole file and saves every row only if all rows are valid.
// @Tags imports
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file"
// @Success 200 {object} domain.ImportReport
// @Failure 400 {object} ValidationErrorResponse
// @Failure 413 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /imports [post]
func (h *importHandler) importFile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	file, fileName, ok := h.openUpload(c, logger)
	if !ok {
		return
	}
	defer file.Close()

	userID, _ := middleware.GetUserIDFromContext(c)
	report, err := h.importService.ImportFile(c.Request.Context(), file, fileName, userID)
	if err != nil {
		respondImportError(c, logger, err)
		return
	}

	logger.Info("Import finished",
		slog.Int("total", report.Total),
		slog.Int("succeeded", report.Succeeded),
		slog.Int("failed", report.Failed))
	c.JSON(http.StatusOK, report)
}
