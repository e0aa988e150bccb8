package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hrmslite/backend/internal/app/models/dto"
	"github.com/hrmslite/backend/internal/app/services"
	"github.com/hrmslite/backend/internal/middleware"
)

// EmployeeController handles employee-related operations
type EmployeeController struct {
	employeeService *services.EmployeeService
}

// NewEmployeeController creates a new EmployeeController
func NewEmployeeController(employeeService *services.EmployeeService) *EmployeeController {
	return &EmployeeController{employeeService: employeeService}
}

// ListEmployees returns all employees with their attendance summary
// @Summary List employees
// @Description Retrieves every employee joined with present/absent day counts, newest first
// @Tags employees
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.EmployeeWithAttendance} "Employees retrieved successfully"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/employees [get]
func (c *EmployeeController) ListEmployees(ctx *gin.Context) {
	employees, err := c.employeeService.ListEmployees(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(employees))
}

// GetEmployee returns one employee with attendance summary
// @Summary Get employee by id
// @Description Retrieves a specific employee with present/absent day counts
// @Tags employees
// @Produce json
// @Param id path string true "Employee internal id"
// @Success 200 {object} dto.APIResponse{data=models.EmployeeWithAttendance} "Employee retrieved successfully"
// @Failure 404 {object} dto.APIResponse "Employee not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/employees/{id} [get]
func (c *EmployeeController) GetEmployee(ctx *gin.Context) {
	employee, err := c.employeeService.GetEmployee(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(employee))
}

// CreateEmployee creates a new employee
// @Summary Create employee
// @Description Creates a new employee after uniqueness checks on employee_id and email
// @Tags employees
// @Accept json
// @Produce json
// @Param request body dto.CreateEmployeeRequest true "Employee information"
// @Success 201 {object} dto.APIResponse{data=models.Employee} "Employee created successfully"
// @Failure 400 {object} dto.APIResponse "Invalid data or duplicate employee_id/email"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/employees [post]
func (c *EmployeeController) CreateEmployee(ctx *gin.Context) {
	var req dto.CreateEmployeeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.BindingErrorDetail(err)))
		return
	}

	employee, err := c.employeeService.CreateEmployee(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewDataResponse(employee))
}

// DeleteEmployee deletes an employee and their attendance records
// @Summary Delete employee
// @Description Deletes an employee; all of their attendance records go with them
// @Tags employees
// @Param id path string true "Employee internal id"
// @Success 204 "Employee deleted successfully"
// @Failure 404 {object} dto.APIResponse "Employee not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/employees/{id} [delete]
func (c *EmployeeController) DeleteEmployee(ctx *gin.Context) {
	if err := c.employeeService.DeleteEmployee(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
