package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/hrmslite/backend/internal/app/controllers"
	appMigrations "github.com/hrmslite/backend/internal/app/migrations"
	appRepos "github.com/hrmslite/backend/internal/app/repositories"
	appRoutes "github.com/hrmslite/backend/internal/app/routes"
	appServices "github.com/hrmslite/backend/internal/app/services"
	"github.com/hrmslite/backend/internal/config"
	"github.com/hrmslite/backend/internal/db"
	appMiddleware "github.com/hrmslite/backend/internal/middleware"
	"github.com/hrmslite/backend/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	EmployeeService      *appServices.EmployeeService
	AttendanceService    *appServices.AttendanceService
	DashboardService     *appServices.DashboardService
	EmployeeController   *appControllers.EmployeeController
	AttendanceController *appControllers.AttendanceController
	DashboardController  *appControllers.DashboardController
	Repos                *appRepos.Repositories
	Logger               zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	// Optional .env for local development; env vars win either way.
	_ = godotenv.Load()

	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase opens the store and applies pending migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.SQLite, error) {
	lgr.Info().Str("path", cfg.Database.Path).Msg("Opening database...")
	store, err := db.NewSQLite(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to open database")
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := store.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		_ = store.Close()
		return nil, err
	}

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(store.DB)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		_ = store.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		_ = store.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database ready.")
	return store, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, store *db.SQLite, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(store)

	deps.EmployeeService = appServices.NewEmployeeService(deps.Repos.EmployeeRepository, lgr)
	deps.AttendanceService = appServices.NewAttendanceService(deps.Repos.AttendanceRepository, lgr)
	deps.DashboardService = appServices.NewDashboardService(deps.Repos.DashboardRepository)

	deps.EmployeeController = appControllers.NewEmployeeController(deps.EmployeeService)
	deps.AttendanceController = appControllers.NewAttendanceController(deps.AttendanceService)
	deps.DashboardController = appControllers.NewDashboardController(deps.DashboardService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(lgr))
	router.Use(gin.Recovery())
	router.Use(appMiddleware.CORS())

	appRoutes.SetupRouter(router,
		deps.EmployeeController,
		deps.AttendanceController,
		deps.DashboardController,
	)

	return router
}
