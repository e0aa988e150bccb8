package repositories

import (
	"context"
	"fmt"

	"github.com/hrmslite/backend/internal/app/models"
	"github.com/hrmslite/backend/internal/db"
)

// DashboardRepository computes aggregate statistics from current store
// state. Nothing is materialized or cached.
type DashboardRepository struct {
	store *db.SQLite
}

// NewDashboardRepository creates a new dashboard repository
func NewDashboardRepository(store *db.SQLite) *DashboardRepository {
	return &DashboardRepository{store: store}
}

// Stats computes the dashboard counts as of now. today is the caller's
// calendar date in YYYY-MM-DD form.
func (r *DashboardRepository) Stats(ctx context.Context, today string) (*models.DashboardStats, error) {
	stats := &models.DashboardStats{
		Departments: []models.DepartmentCount{},
	}

	counts := []struct {
		dest  *int
		query string
		args  []interface{}
	}{
		{&stats.TotalEmployees, `SELECT COUNT(*) FROM employees`, nil},
		{&stats.TotalDepartments, `SELECT COUNT(DISTINCT department) FROM employees`, nil},
		{&stats.PresentToday, `SELECT COUNT(*) FROM attendance WHERE date = ? AND status = 'Present'`, []interface{}{today}},
		{&stats.AbsentToday, `SELECT COUNT(*) FROM attendance WHERE date = ? AND status = 'Absent'`, []interface{}{today}},
		{&stats.TotalPresent, `SELECT COUNT(*) FROM attendance WHERE status = 'Present'`, nil},
		{&stats.TotalAbsent, `SELECT COUNT(*) FROM attendance WHERE status = 'Absent'`, nil},
	}

	for _, c := range counts {
		if err := r.store.DB.QueryRowContext(ctx, c.query, c.args...).Scan(c.dest); err != nil {
			return nil, fmt.Errorf("error computing dashboard count: %w", err)
		}
	}

	// Tie-break on name keeps the ordering stable; only the count ordering
	// is meaningful.
	rows, err := r.store.DB.QueryContext(ctx, `
		SELECT department, COUNT(*) AS count
		FROM employees
		GROUP BY department
		ORDER BY count DESC, department ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("error computing department distribution: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var dc models.DepartmentCount
		if err := rows.Scan(&dc.Name, &dc.Count); err != nil {
			return nil, fmt.Errorf("error scanning department count: %w", err)
		}
		stats.Departments = append(stats.Departments, dc)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}
