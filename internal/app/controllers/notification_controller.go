package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/tpoportal/internal/app/models"
	"github.com/yigit/tpoportal/internal/app/models/dto"
	"github.com/yigit/tpoportal/internal/app/services"
	"github.com/yigit/tpoportal/internal/middleware"
	"github.com/yigit/tpoportal/internal/pkg/helpers"
)

// NotificationController serves hero and important notifications. The
// category is fixed per route.
type NotificationController struct {
	notificationService services.NotificationService
}

// NewNotificationController creates a new NotificationController
func NewNotificationController(notificationService services.NotificationService) *NotificationController {
	return &NotificationController{notificationService: notificationService}
}

// ListImportant lists important notifications, or the defaults when none are stored
// @Summary Important notifications
// @Tags notifications
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Notification} "Notifications retrieved successfully"
// @Router /important-notifications [get]
func (c *NotificationController) ListImportant(ctx *gin.Context) {
	list, err := c.notificationService.ListImportant(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(list, ""))
}

// ManageImportant lists the stored important notifications only
// @Summary Stored important notifications
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Notification} "Notifications retrieved successfully"
// @Router /important-notifications/manage [get]
func (c *NotificationController) ManageImportant(ctx *gin.Context) {
	list, err := c.notificationService.ManageImportant(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(list, ""))
}

// ListHero lists hero notifications
// @Summary Hero notifications
// @Tags notifications
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Notification} "Notifications retrieved successfully"
// @Router /hero-notifications [get]
func (c *NotificationController) ListHero(ctx *gin.Context) {
	list, err := c.notificationService.ListHero(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(list, ""))
}

// Create returns the create handler for category
// @Summary Create a notification
// @Tags notifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateNotificationRequest true "Notification"
// @Success 201 {object} dto.APIResponse{data=models.Notification} "Notification created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /important-notifications [post]
// @Router /hero-notifications [post]
func (c *NotificationController) Create(category models.NotificationCategory) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req dto.CreateNotificationRequest
		if err := ctx.ShouldBindJSON(&req); err != nil {
			middleware.HandleBindingError(ctx, err)
			return
		}

		n, err := c.notificationService.Create(ctx.Request.Context(), req.ToModel(category))
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(n, "Notification created successfully"))
	}
}

// Update returns the update handler for category
// @Summary Update a notification
// @Description Default notifications (id <= 0) cannot be modified
// @Tags notifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Notification ID"
// @Param request body dto.UpdateNotificationRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.Notification} "Notification updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or default notification"
// @Failure 404 {object} dto.ErrorResponse "Notification not found"
// @Router /important-notifications/{id} [put]
// @Router /hero-notifications/{id} [put]
func (c *NotificationController) Update(category models.NotificationCategory) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id, err := helpers.ParseIDParam(ctx, "id")
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}

		var req dto.UpdateNotificationRequest
		if err := ctx.ShouldBindJSON(&req); err != nil {
			middleware.HandleBindingError(ctx, err)
			return
		}

		n, err := c.notificationService.Update(ctx.Request.Context(), category, id, req.ToPatch())
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, dto.NewSuccessResponse(n, "Notification updated successfully"))
	}
}

// Delete returns the delete handler for category
// @Summary Delete a notification
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Notification ID"
// @Success 200 {object} dto.APIResponse "Notification deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Default notification"
// @Failure 404 {object} dto.ErrorResponse "Notification not found"
// @Router /important-notifications/{id} [delete]
// @Router /hero-notifications/{id} [delete]
func (c *NotificationController) Delete(category models.NotificationCategory) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id, err := helpers.ParseIDParam(ctx, "id")
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}

		if err := c.notificationService.Delete(ctx.Request.Context(), category, id); err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Notification deleted successfully"))
	}
}
