package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-wallet-keeper/internal/config"
	"github.com/MKhiriev/go-wallet-keeper/internal/handler"
	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/internal/server"
	"github.com/MKhiriev/go-wallet-keeper/internal/service"
	"github.com/MKhiriev/go-wallet-keeper/internal/store"
	"github.com/MKhiriev/go-wallet-keeper/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("wallet-keeper-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services := service.NewServices(storages, *cfg, log)

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	backgroundWorkers := workers.NewWorkers(storages, cfg.Workers, log)
	backgroundWorkers.Run()

	srv.RunServer()
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
