package main

import (
	"os"

	"github.com/mindsethq/mindset-backend/internal/pkg/logger"
	"github.com/mindsethq/mindset-backend/internal/server"
)

// @title Mindset API
// @version 1.0
// @description REST backend for the Mindset education platform: courses, events, registrations and blog

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed")
		os.Exit(1)
	}
}
