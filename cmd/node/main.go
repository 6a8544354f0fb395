package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/yousign-node/internal/adapter"
	"github.com/MKhiriev/yousign-node/internal/config"
	"github.com/MKhiriev/yousign-node/internal/credentials"
	"github.com/MKhiriev/yousign-node/internal/logger"
	"github.com/MKhiriev/yousign-node/internal/service"
	"github.com/MKhiriev/yousign-node/internal/store"
	"github.com/MKhiriev/yousign-node/internal/utils"
	"github.com/MKhiriev/yousign-node/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

func run() int {
	printBuildInfo()

	log := logger.NewLogger("yousign-node", logger.WithOutput(os.Stderr))

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Err(err).Msg("error getting configs")
		return 2
	}
	if err = cfg.ValidateNode(); err != nil {
		log.Err(err).Msg("invalid node configs")
		return 2
	}

	log = logger.NewLogger("yousign-node", logger.WithOutput(os.Stderr), logger.WithLevel(cfg.App.LogLevel))

	manifest, err := readManifest(cfg.Node.ManifestPath, cfg.DefaultParameters())
	if err != nil {
		log.Err(err).Str("manifest", cfg.Node.ManifestPath).Msg("error reading manifest")
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	creds, err := credentials.New(cfg.Yousign)
	if err != nil {
		log.Err(err).Msg("error creating credentials")
		return 1
	}

	yousign, err := adapter.NewHTTPYousignAdapter(cfg.Yousign, creds, log)
	if err != nil {
		log.Err(err).Msg("error creating yousign adapter")
		return 1
	}

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Err(err).Msg("error creating storages")
		return 1
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services := service.NewServices(yousign, storages, *cfg, log)

	runID := utils.NewUUIDGenerator().Generate()
	ctx = log.WithContext(utils.WithRunID(ctx, runID))

	results, runErr := services.SignatureRequestService.Execute(ctx, manifest.Items, manifest.Parameters)

	if err = writeResponse(os.Stdout, models.NewExecutionResponse(runID, results, runErr)); err != nil {
		log.Err(err).Msg("error writing execution response")
		return 1
	}

	if runErr != nil {
		return 1
	}
	for _, result := range results {
		if result.Failed() {
			return 1
		}
	}
	return 0
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

	fmt.Fprintf(os.Stderr, "Build version: %s\n", buildVersion)
	fmt.Fprintf(os.Stderr, "Build date: %s\n", buildDate)
	fmt.Fprintf(os.Stderr, "Build commit: %s\n", buildCommit)
}
