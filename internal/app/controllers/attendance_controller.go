package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hrmslite/backend/internal/app/models/dto"
	"github.com/hrmslite/backend/internal/app/services"
	"github.com/hrmslite/backend/internal/middleware"
)

// AttendanceController handles attendance-related operations
type AttendanceController struct {
	attendanceService *services.AttendanceService
}

// NewAttendanceController creates a new AttendanceController
func NewAttendanceController(attendanceService *services.AttendanceService) *AttendanceController {
	return &AttendanceController{attendanceService: attendanceService}
}

// ListAttendance returns attendance records with optional filters
// @Summary List attendance records
// @Description Retrieves attendance records, optionally filtered by employee id and/or exact date
// @Tags attendance
// @Produce json
// @Param employee_id query string false "Filter by employee internal id"
// @Param date query string false "Filter by exact date (YYYY-MM-DD)"
// @Success 200 {object} dto.APIResponse{data=[]models.AttendanceRecord} "Attendance records retrieved successfully"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/attendance [get]
func (c *AttendanceController) ListAttendance(ctx *gin.Context) {
	filter := dto.AttendanceFilter{
		EmployeeID: ctx.Query("employee_id"),
		Date:       ctx.Query("date"),
	}

	records, err := c.attendanceService.ListAttendance(ctx, &filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(records))
}

// MarkAttendance upserts an attendance mark for one employee-day
// @Summary Mark attendance
// @Description Marks Present/Absent for an employee on a date; a repeated mark for the same day overwrites in place
// @Tags attendance
// @Accept json
// @Produce json
// @Param request body dto.MarkAttendanceRequest true "Attendance mark"
// @Success 201 {object} dto.APIResponse{data=models.AttendanceRecord} "Attendance recorded"
// @Failure 400 {object} dto.APIResponse "Invalid date or status"
// @Failure 404 {object} dto.APIResponse "Employee not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/attendance [post]
func (c *AttendanceController) MarkAttendance(ctx *gin.Context) {
	var req dto.MarkAttendanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.BindingErrorDetail(err)))
		return
	}

	record, err := c.attendanceService.MarkAttendance(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewDataResponse(record))
}

// DeleteAttendance deletes a single attendance record
// @Summary Delete attendance record
// @Description Deletes one attendance record by id
// @Tags attendance
// @Param id path string true "Attendance record id"
// @Success 204 "Attendance record deleted successfully"
// @Failure 404 {object} dto.APIResponse "Attendance record not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/attendance/{id} [delete]
func (c *AttendanceController) DeleteAttendance(ctx *gin.Context) {
	if err := c.attendanceService.DeleteAttendance(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
