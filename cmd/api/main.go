package main

import (
	"os"

	"github.com/wbvaa/portal/internal/pkg/logger"
	"github.com/wbvaa/portal/internal/server"
)

// @title WBVAA Portal API
// @version 1.0
// @description JSON API of the West Bengal Veterinary Alumni Association portal

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

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
