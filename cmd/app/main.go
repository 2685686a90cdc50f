package main

import (
	"bouncepro-reminder/config"
	"bouncepro-reminder/di"
	"bouncepro-reminder/internal/scheduler"
	"bouncepro-reminder/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	svc := di.InitializeService()

	if err := svc.Scheduler.Start(); err != nil {
		log.Fatal().Err(err).Msg("Failed to start reminder scheduler")
	}

	go svc.HTTP.Serve()

	sig := <-scheduler.NotifyShutdown()

	log.Info().Str("signal", sig.String()).Msg("Received termination signal, shutting down")

	svc.Scheduler.Stop()
	svc.HTTP.Shutdown()

	log.Info().Msg("Shutdown complete")
}
