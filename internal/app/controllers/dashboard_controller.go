package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hrmslite/backend/internal/app/models/dto"
	"github.com/hrmslite/backend/internal/app/services"
	"github.com/hrmslite/backend/internal/middleware"
)

// DashboardController serves the aggregate statistics endpoint
type DashboardController struct {
	dashboardService *services.DashboardService
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(dashboardService *services.DashboardService) *DashboardController {
	return &DashboardController{dashboardService: dashboardService}
}

// GetStats returns dashboard statistics
// @Summary Dashboard statistics
// @Description Returns employee, department and attendance counts as of the moment of the call
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.APIResponse{data=models.DashboardStats} "Statistics retrieved successfully"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/dashboard [get]
func (c *DashboardController) GetStats(ctx *gin.Context) {
	stats, err := c.dashboardService.GetStats(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(stats))
}
