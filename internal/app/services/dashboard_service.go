package services

import (
	"context"
	"fmt"

	"github.com/hrmslite/backend/internal/app/models"
	"github.com/hrmslite/backend/internal/app/repositories"
	"github.com/hrmslite/backend/internal/pkg/helpers"
)

// DashboardService computes aggregate statistics
type DashboardService struct {
	dashboardRepo *repositories.DashboardRepository
}

// NewDashboardService creates a new dashboard service instance
func NewDashboardService(dashboardRepo *repositories.DashboardRepository) *DashboardService {
	return &DashboardService{dashboardRepo: dashboardRepo}
}

// GetStats recomputes the dashboard from current store state, using the
// server's local date for "today".
func (s *DashboardService) GetStats(ctx context.Context) (*models.DashboardStats, error) {
	stats, err := s.dashboardRepo.Stats(ctx, helpers.Today())
	if err != nil {
		return nil, fmt.Errorf("error computing dashboard stats: %w", err)
	}
	return stats, nil
}
