package main

import (
	"os"

	"github.com/hrmslite/backend/internal/pkg/logger"
	"github.com/hrmslite/backend/internal/server"
)

// @title HRMS Lite API
// @version 1.0
// @description A lightweight Human Resource Management System API
// @host localhost:8000
// @BasePath /
// @schemes http

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
