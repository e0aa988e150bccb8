package services

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/hrmslite/backend/internal/app/migrations"
	"github.com/hrmslite/backend/internal/app/repositories"
	"github.com/hrmslite/backend/internal/db"
)

// testEnv wires the full service stack over a throwaway in-memory store.
type testEnv struct {
	store      *db.SQLite
	employees  *EmployeeService
	attendance *AttendanceService
	dashboard  *DashboardService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	conn, err := sql.Open("sqlite", db.DSN(":memory:"))
	require.NoError(t, err)
	// A second pool connection would see a fresh empty in-memory database.
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = conn.Close() })

	migrator := migrations.NewMigrator(conn)
	require.NoError(t, migrator.MigrateFromDirectory(filepath.Join("..", "..", "..", "migrations")))

	store := &db.SQLite{DB: conn}
	repos := repositories.NewRepositories(store)
	lgr := zerolog.Nop()

	return &testEnv{
		store:      store,
		employees:  NewEmployeeService(repos.EmployeeRepository, lgr),
		attendance: NewAttendanceService(repos.AttendanceRepository, lgr),
		dashboard:  NewDashboardService(repos.DashboardRepository),
	}
}
