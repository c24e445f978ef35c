package controllers

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yigit/tpoportal/internal/app/models/dto"
	"github.com/yigit/tpoportal/internal/app/services"
	"github.com/yigit/tpoportal/internal/middleware"
	"github.com/yigit/tpoportal/internal/pkg/apperrors"
)

// Import request errors
var (
	ErrNoFile    = apperrors.NewValidationError("No file uploaded", "file")
	ErrEmptyFile = apperrors.NewValidationError("Uploaded file is empty", "file")
)

// TransferController handles CSV import and XLSX export
type TransferController struct {
	importService services.ImportService
	exportService services.ExportService
	maxUpload     int64
}

// NewTransferController creates a new TransferController. maxUpload caps the
// size of an uploaded CSV file in bytes.
func NewTransferController(importService services.ImportService, exportService services.ExportService, maxUpload int64) *TransferController {
	return &TransferController{
		importService: importService,
		exportService: exportService,
		maxUpload:     maxUpload,
	}
}

func (c *TransferController) readUpload(ctx *gin.Context) (string, error) {
	fh, err := ctx.FormFile("file")
	if err != nil {
		return "", ErrNoFile
	}
	if fh.Size == 0 {
		return "", ErrEmptyFile
	}
	if c.maxUpload > 0 && fh.Size > c.maxUpload {
		return "", apperrors.NewValidationError(fmt.Sprintf("File exceeds the %d byte limit", c.maxUpload), "file")
	}

	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("failed to read upload: %w", err)
	}
	text := string(data)
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyFile
	}
	return text, nil
}

// Import loads a CSV file
// @Summary Import CSV
// @Description Imports students, events, alumni or attendance row by row. Rows that fail are reported as "Row N: message" and do not stop the import.
// @Tags import
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param kind path string true "students, events, alumni or attendance"
// @Param file formData file true "CSV file with a header row"
// @Success 200 {object} dto.APIResponse{data=csvimport.Result} "Import finished"
// @Failure 400 {object} dto.ErrorResponse "Missing, empty or header-only file, or unsupported kind"
// @Router /import/{kind} [post]
func (c *TransferController) Import(ctx *gin.Context) {
	text, err := c.readUpload(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	result, err := c.importService.Import(ctx.Request.Context(), ctx.Param("kind"), text)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(result, result.Message))
}

// Export downloads an XLSX workbook
// @Summary Export XLSX
// @Description Exports students, alumni or attendance. Students accept branch, year and batch filters.
// @Tags export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param kind path string true "students, alumni or attendance"
// @Param branch query string false "Branch"
// @Param year query string false "Year"
// @Param batch query string false "Batch"
// @Success 200 {file} file "Workbook"
// @Failure 400 {object} dto.ErrorResponse "Unsupported kind"
// @Router /export/{kind} [get]
func (c *TransferController) Export(ctx *gin.Context) {
	var filter dto.StudentFilter
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	file, err := c.exportService.Export(ctx.Request.Context(), ctx.Param("kind"), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, file.Filename))
	ctx.Data(http.StatusOK, file.ContentType, file.Data)
}
