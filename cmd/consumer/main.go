package main

import (
	"context"
	"lessons/config"
	"lessons/di"
	"lessons/shared/logger"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()
	logger.UseJSONOutput(cfg)
	logger.SetLogLevel(cfg)

	consumer, err := di.InitializePaymentConsumer()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize payment consumer")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := consumer.Run(ctx); err != nil && ctx.Err() == nil {
		log.Fatal().Err(err).Msg("Payment consumer stopped")
	}

	log.Info().Msg("Payment consumer shut down")
}
