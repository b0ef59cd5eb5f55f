package main

import (
	"context"
	"fmt"

	"spendbook/internal/config"
	handler "spendbook/internal/handler/http"
	"spendbook/internal/logger"
	"spendbook/internal/server"
	"spendbook/internal/service"
	"spendbook/internal/store"
)

// Build information, injected at link time via
// -ldflags "-X main.buildVersion=... -X main.buildDate=... -X main.buildCommit=...".
var (
	buildVersion = "N/A"
	buildDate    = "N/A"
	buildCommit  = "N/A"
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("server")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error loading config")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error initializing storage")
	}

	services := service.NewServices(storages, cfg, log)
	h := handler.NewHandler(services, log)

	if err = server.NewServer(cfg, h, log).Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}

func printBuildInfo() {
	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
