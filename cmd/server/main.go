package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/clumio-bot/internal/adapter"
	"github.com/MKhiriev/clumio-bot/internal/config"
	"github.com/MKhiriev/clumio-bot/internal/handler"
	"github.com/MKhiriev/clumio-bot/internal/logger"
	"github.com/MKhiriev/clumio-bot/internal/metrics"
	"github.com/MKhiriev/clumio-bot/internal/server"
	"github.com/MKhiriev/clumio-bot/internal/service"
	"github.com/MKhiriev/clumio-bot/internal/store"
	"github.com/MKhiriev/clumio-bot/internal/workers"
	"github.com/MKhiriev/clumio-bot/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("clumio-bot")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Warn().Err(err).Msg("invalid log level")
	}
	log.Debug().Any("config", cfg.Redacted()).Msg("received configs")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	storages, err := store.NewStorages(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	m := metrics.New()

	clumio, err := adapter.NewHTTPClumioAdapter(cfg.Clumio, m, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating clumio adapter")
	}

	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	services, err := service.NewServices(clumio, storages, *cfg, build, m, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, m, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	bg := workers.NewWorkers(services, *cfg, log)
	bg.Run(ctx)

	if err = srv.RunServer(); err != nil {
		log.Err(err).Msg("server stopped with error")
	}

	cancel()
	bg.Stop()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
