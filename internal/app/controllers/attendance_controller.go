package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/tpoportal/internal/app/models/dto"
	"github.com/yigit/tpoportal/internal/app/services"
	"github.com/yigit/tpoportal/internal/middleware"
	"github.com/yigit/tpoportal/internal/pkg/helpers"
)

// AttendanceController handles attendance endpoints
type AttendanceController struct {
	attendanceService services.AttendanceService
}

// NewAttendanceController creates a new AttendanceController
func NewAttendanceController(attendanceService services.AttendanceService) *AttendanceController {
	return &AttendanceController{attendanceService: attendanceService}
}

// MarkAttendance records a student's attendance
// @Summary Mark attendance
// @Tags attendance
// @Accept json
// @Produce json
// @Param request body dto.MarkAttendanceRequest true "Attendance information"
// @Success 201 {object} dto.APIResponse{data=models.Attendance} "Attendance marked successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or unknown event"
// @Failure 429 {object} dto.ErrorResponse "Too many requests"
// @Router /attendance [post]
func (c *AttendanceController) MarkAttendance(ctx *gin.Context) {
	var req dto.MarkAttendanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	mark, err := c.attendanceService.MarkAttendance(ctx.Request.Context(), req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(mark, "Attendance marked successfully"))
}

// ListAttendance lists attendance marks
// @Summary List attendance
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Param eventId query int false "Only marks of this event"
// @Success 200 {object} dto.APIResponse{data=[]models.Attendance} "Attendance retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid eventId"
// @Router /attendance [get]
func (c *AttendanceController) ListAttendance(ctx *gin.Context) {
	eventID, err := helpers.OptionalQueryInt64(ctx, "eventId")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	marks, err := c.attendanceService.ListAttendance(ctx.Request.Context(), eventID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(marks, ""))
}

// DeleteAttendance deletes an attendance mark
// @Summary Delete attendance
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Param id path int true "Attendance ID"
// @Success 200 {object} dto.APIResponse "Attendance deleted successfully"
// @Failure 404 {object} dto.ErrorResponse "Attendance record not found"
// @Router /attendance/{id} [delete]
func (c *AttendanceController) DeleteAttendance(ctx *gin.Context) {
	id, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.attendanceService.DeleteAttendance(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Attendance deleted successfully"))
}
