package main

import (
	"lessons/config"
	"lessons/di"
	"lessons/helper"
	"lessons/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Lessons API
// @version 1.0
// @description Guitar lesson booking ledger with payment confirmation.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()
	logger.UseJSONOutput(cfg)
	logger.SetLogLevel(cfg)

	if err := helper.AutoMigrate(cfg); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate database")
	}

	http, err := di.InitializeService()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize service")
	}

	http.Serve()
}
