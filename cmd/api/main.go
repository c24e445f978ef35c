package main

import (
	"os"

	"github.com/yigit/tpoportal/internal/pkg/logger"
	"github.com/yigit/tpoportal/internal/server"
)

// @title TPO Portal API
// @version 1.0
// @description Backend for the Training and Placement Office portal: students, placement events, alumni, attendance, news and notifications.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for the TPO admin, sent as "Bearer <token>"

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
