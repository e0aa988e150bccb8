package repositories

import (
	"github.com/hrmslite/backend/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	EmployeeRepository   *EmployeeRepository
	AttendanceRepository *AttendanceRepository
	DashboardRepository  *DashboardRepository
}

// NewRepositories initializes all repositories
func NewRepositories(store *db.SQLite) *Repositories {
	return &Repositories{
		EmployeeRepository:   NewEmployeeRepository(store),
		AttendanceRepository: NewAttendanceRepository(store),
		DashboardRepository:  NewDashboardRepository(store),
	}
}
