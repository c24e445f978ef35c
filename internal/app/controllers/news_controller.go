package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/tpoportal/internal/app/models/dto"
	"github.com/yigit/tpoportal/internal/app/services"
	"github.com/yigit/tpoportal/internal/middleware"
	"github.com/yigit/tpoportal/internal/pkg/helpers"
)

// NewsController handles news endpoints
type NewsController struct {
	newsService services.NewsService
}

// NewNewsController creates a new NewsController
func NewNewsController(newsService services.NewsService) *NewsController {
	return &NewsController{newsService: newsService}
}

// ListNews lists news, newest first
// @Summary List news
// @Tags news
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.News} "News retrieved successfully"
// @Router /news [get]
func (c *NewsController) ListNews(ctx *gin.Context) {
	news, err := c.newsService.ListNews(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(news, ""))
}

// CreateNews creates a news item
// @Summary Create news
// @Tags news
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateNewsRequest true "News item"
// @Success 201 {object} dto.APIResponse{data=models.News} "News created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /news [post]
func (c *NewsController) CreateNews(ctx *gin.Context) {
	var req dto.CreateNewsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	news, err := c.newsService.CreateNews(ctx.Request.Context(), req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(news, "News created successfully"))
}

// UpdateNews applies a partial update
// @Summary Update news
// @Tags news
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "News ID"
// @Param request body dto.UpdateNewsRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.News} "News updated successfully"
// @Failure 404 {object} dto.ErrorResponse "News not found"
// @Router /news/{id} [put]
func (c *NewsController) UpdateNews(ctx *gin.Context) {
	id, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.UpdateNewsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	news, err := c.newsService.UpdateNews(ctx.Request.Context(), id, req.ToPatch())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(news, "News updated successfully"))
}

// DeleteNews deletes a news item
// @Summary Delete news
// @Tags news
// @Produce json
// @Security BearerAuth
// @Param id path int true "News ID"
// @Success 200 {object} dto.APIResponse "News deleted successfully"
// @Failure 404 {object} dto.ErrorResponse "News not found"
// @Router /news/{id} [delete]
func (c *NewsController) DeleteNews(ctx *gin.Context) {
	id, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.newsService.DeleteNews(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "News deleted successfully"))
}
