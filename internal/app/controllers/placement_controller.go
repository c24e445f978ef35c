package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yigit/tpoportal/internal/app/models/dto"
	"github.com/yigit/tpoportal/internal/app/services"
	"github.com/yigit/tpoportal/internal/middleware"
)

// PlacementController serves placement statistics
type PlacementController struct {
	placementService services.PlacementService
}

// NewPlacementController creates a new PlacementController
func NewPlacementController(placementService services.PlacementService) *PlacementController {
	return &PlacementController{placementService: placementService}
}

// Stats returns placement totals
// @Summary Placement statistics
// @Tags placements
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.PlacementStats} "Statistics retrieved successfully"
// @Router /placements/stats [get]
func (c *PlacementController) Stats(ctx *gin.Context) {
	stats, err := c.placementService.Stats(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(stats, ""))
}

// Recent lists the latest placements
// @Summary Recent placements
// @Tags placements
// @Produce json
// @Param limit query int false "Number of entries (default 10, max 100)"
// @Success 200 {object} dto.APIResponse{data=[]dto.RecentPlacement} "Placements retrieved successfully"
// @Router /placements/recent [get]
func (c *PlacementController) Recent(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.Query("limit"))

	recent, err := c.placementService.Recent(ctx.Request.Context(), limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(recent, ""))
}
