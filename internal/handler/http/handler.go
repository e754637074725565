// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/sommelier/internal/config"
	"github.com/MKhiriev/sommelier/internal/logger"
	"github.com/MKhiriev/sommelier/internal/service"
)

type Handler struct {
	services *service.Services

	// filesDir is served read-only under /files/.
	filesDir string
	// metricsOnAPI exposes /metrics on the API router when no dedicated
	// metrics address is configured.
	metricsOnAPI   bool
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		filesDir:       cfg.Storage.Files.Dir,
		metricsOnAPI:   cfg.Server.MetricsAddress == "",
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}
}
