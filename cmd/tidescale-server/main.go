package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/datakit-labs/tidescale/internal/config"
	"github.com/datakit-labs/tidescale/internal/logger"
	"github.com/datakit-labs/tidescale/internal/service"
)

func main() {
	logger.Init()
	log.Info().Msg("starting tidescale server...")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load environment configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := service.NewServer(&cfg.ServerEnvConfig)

	log.Info().Str("address", cfg.Address).Int("port", cfg.Port).Msg("listening")
	if err := srv.Start(ctx); err != nil {
		log.Error().Err(err).Msg("server shutdown with error")
	}
	log.Info().Msg("server stopped")
}
