package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/WailSalutem-Health-Care/patient-dashboard/internal/app"
	"github.com/WailSalutem-Health-Care/patient-dashboard/internal/config"
	"github.com/WailSalutem-Health-Care/patient-dashboard/internal/logging"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load(os.Getenv("ENV_FILE"))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	if err := logging.Setup(logging.Options{App: "patient-dashboard", Level: cfg.LogLevel, Format: cfg.LogFormat}); err != nil {
		log.Fatal().Err(err).Msg("Failed to configure logging")
	}

	log.Info().Str("env", cfg.Env).Msg("Starting patient-dashboard API")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize application")
	}

	if err := a.Serve(ctx); err != nil {
		log.Error().Err(err).Msg("Server stopped with error")
	}

	if err := a.Close(context.Background()); err != nil {
		log.Warn().Err(err).Msg("Cleanup finished with errors")
	}
	log.Info().Msg("API service shutdown complete")
}
