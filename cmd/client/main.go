package main

import (
	"fmt"

	"github.com/MKhiriev/go-wallet-keeper/internal/client"
	"github.com/MKhiriev/go-wallet-keeper/internal/config"
	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/internal/service"
	"github.com/MKhiriev/go-wallet-keeper/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("wallet-keeper-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	localStorage, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services, err := service.NewClientServices(localStorage, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create client services")
	}

	app, err := client.NewApp(services, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
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
