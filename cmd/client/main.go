// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/sommelier/internal/adapter"
	"github.com/MKhiriev/sommelier/internal/client"
	"github.com/MKhiriev/sommelier/internal/config"
	"github.com/MKhiriev/sommelier/internal/logger"
	"github.com/MKhiriev/sommelier/internal/service"
	"github.com/MKhiriev/sommelier/internal/store"
	"github.com/MKhiriev/sommelier/internal/tui"
	"github.com/MKhiriev/sommelier/internal/workers"
	"github.com/MKhiriev/sommelier/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewClientLogger("sommelier-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	localStorage, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer localStorage.Close()

	serverAdapter, err := adapter.NewHTTPAdapter(cfg.Adapter, localStorage.SessionRepository, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	services := service.NewClientServices(serverAdapter, log)
	pool := workers.New(cfg.Workers, log)

	ui, err := tui.New(services, pool, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(ui, pool, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
