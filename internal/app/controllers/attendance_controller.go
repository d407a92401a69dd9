package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/app/services"
	"github.com/campushub/backend/internal/middleware"
)

// AttendanceController handles attendance operations
type AttendanceController struct {
	attendanceService *services.AttendanceService
}

// NewAttendanceController creates a new AttendanceController
func NewAttendanceController(attendanceService *services.AttendanceService) *AttendanceController {
	return &AttendanceController{attendanceService: attendanceService}
}

// MarkAttendance records attendance for a student on a course
func (c *AttendanceController) MarkAttendance(ctx *gin.Context) {
	courseID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.MarkAttendanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	actor := middleware.GetActor(ctx)
	attendance, err := c.attendanceService.MarkAttendance(ctx.Request.Context(), actor, courseID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(attendance))
}

// ListAttendance retrieves attendance records of a course, filtered by
// studentId and date
func (c *AttendanceController) ListAttendance(ctx *gin.Context) {
	courseID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	filter := dto.AttendanceFilter{
		StudentID: queryInt64(ctx, "studentId"),
		Date:      queryString(ctx, "date"),
	}

	actor := middleware.GetActor(ctx)
	records, err := c.attendanceService.ListAttendance(ctx.Request.Context(), actor, courseID, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(records))
}
