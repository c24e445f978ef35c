package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/tpoportal/internal/app/models/dto"
	"github.com/yigit/tpoportal/internal/app/services"
	"github.com/yigit/tpoportal/internal/middleware"
	"github.com/yigit/tpoportal/internal/pkg/helpers"
)

// AlumniController handles alumni endpoints
type AlumniController struct {
	alumniService services.AlumniService
}

// NewAlumniController creates a new AlumniController
func NewAlumniController(alumniService services.AlumniService) *AlumniController {
	return &AlumniController{alumniService: alumniService}
}

// RegisterAlumni is the public self registration form
// @Summary Register as alumni
// @Tags alumni
// @Accept json
// @Produce json
// @Param request body dto.CreateAlumniRequest true "Alumni information"
// @Success 201 {object} dto.APIResponse{data=models.Alumni} "Alumni registered successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 429 {object} dto.ErrorResponse "Too many requests"
// @Router /alumni [post]
func (c *AlumniController) RegisterAlumni(ctx *gin.Context) {
	var req dto.CreateAlumniRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	alumni, err := c.alumniService.RegisterAlumni(ctx.Request.Context(), req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(alumni, "Alumni registered successfully"))
}

// ListAlumni lists alumni registrations
// @Summary List alumni
// @Tags alumni
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Alumni} "Alumni retrieved successfully"
// @Router /alumni [get]
func (c *AlumniController) ListAlumni(ctx *gin.Context) {
	alumni, err := c.alumniService.ListAlumni(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(alumni, ""))
}

// GroupedAlumni lists alumni grouped by pass out year, newest first
// @Summary Grouped alumni
// @Tags alumni
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse "Alumni grouped by pass out year"
// @Router /alumni/grouped [get]
func (c *AlumniController) GroupedAlumni(ctx *gin.Context) {
	groups, err := c.alumniService.GroupedAlumni(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(groups, ""))
}

// GetAlumni retrieves one alumni registration
// @Summary Get alumni by ID
// @Tags alumni
// @Produce json
// @Security BearerAuth
// @Param id path int true "Alumni ID"
// @Success 200 {object} dto.APIResponse{data=models.Alumni} "Alumni retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Alumni not found"
// @Router /alumni/{id} [get]
func (c *AlumniController) GetAlumni(ctx *gin.Context) {
	id, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	alumni, err := c.alumniService.GetAlumni(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(alumni, ""))
}

// UpdateAlumni applies a partial update
// @Summary Update alumni
// @Tags alumni
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Alumni ID"
// @Param request body dto.UpdateAlumniRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.Alumni} "Alumni updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Alumni not found"
// @Router /alumni/{id} [put]
func (c *AlumniController) UpdateAlumni(ctx *gin.Context) {
	id, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.UpdateAlumniRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	alumni, err := c.alumniService.UpdateAlumni(ctx.Request.Context(), id, req.ToPatch())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(alumni, "Alumni updated successfully"))
}

// DeleteAlumni deletes an alumni registration
// @Summary Delete alumni
// @Tags alumni
// @Produce json
// @Security BearerAuth
// @Param id path int true "Alumni ID"
// @Success 200 {object} dto.APIResponse "Alumni deleted successfully"
// @Failure 404 {object} dto.ErrorResponse "Alumni not found"
// @Router /alumni/{id} [delete]
func (c *AlumniController) DeleteAlumni(ctx *gin.Context) {
	id, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.alumniService.DeleteAlumni(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Alumni deleted successfully"))
}
