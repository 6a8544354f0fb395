package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/yousign-node/internal/adapter"
	"github.com/MKhiriev/yousign-node/internal/config"
	"github.com/MKhiriev/yousign-node/internal/credentials"
	"github.com/MKhiriev/yousign-node/internal/handler"
	"github.com/MKhiriev/yousign-node/internal/logger"
	"github.com/MKhiriev/yousign-node/internal/server"
	"github.com/MKhiriev/yousign-node/internal/service"
	"github.com/MKhiriev/yousign-node/internal/store"
	"github.com/MKhiriev/yousign-node/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("yousign-node-server").Fatal().Err(err).Msg("error getting configs")
	}
	if err = cfg.ValidateServer(); err != nil {
		logger.NewLogger("yousign-node-server").Fatal().Err(err).Msg("invalid server configs")
	}

	log := logger.NewLogger("yousign-node-server", logger.WithLevel(cfg.App.LogLevel))

	creds, err := credentials.New(cfg.Yousign)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating credentials")
	}

	yousign, err := adapter.NewHTTPYousignAdapter(cfg.Yousign, creds, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating yousign adapter")
	}

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services := service.NewServices(yousign, storages, *cfg, log)

	handlers, err := handler.NewHandlers(services, cfg, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

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
