package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hrmslite/backend/internal/app/controllers"
	"github.com/hrmslite/backend/internal/app/models/dto"
)

// Version is the API version reported by the root endpoint.
const Version = "1.0.0"

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	employeeController *controllers.EmployeeController,
	attendanceController *controllers.AttendanceController,
	dashboardController *controllers.DashboardController,
) {
	// Root health/info endpoint
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.NewDataResponse(dto.InfoResponse{
			Message: "HRMS Lite API is running",
			Version: Version,
			Status:  "ok",
		}))
	})

	api := router.Group("/api")

	employees := api.Group("/employees")
	{
		employees.GET("", employeeController.ListEmployees)
		employees.GET("/:id", employeeController.GetEmployee)
		employees.POST("", employeeController.CreateEmployee)
		employees.DELETE("/:id", employeeController.DeleteEmployee)
	}

	attendance := api.Group("/attendance")
	{
		attendance.GET("", attendanceController.ListAttendance)
		attendance.POST("", attendanceController.MarkAttendance)
		attendance.DELETE("/:id", attendanceController.DeleteAttendance)
	}

	api.GET("/dashboard", dashboardController.GetStats)
}
