// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	nethttp "net/http"

	"github.com/MKhiriev/sommelier/internal/config"
	"github.com/MKhiriev/sommelier/internal/handler/http"
	"github.com/MKhiriev/sommelier/internal/logger"
	"github.com/MKhiriev/sommelier/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	// Metrics serves /metrics on its own address; nil when metrics share
	// the API router.
	Metrics nethttp.Handler
}

func NewHandlers(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	handlers := &Handlers{
		HTTP: http.NewHandler(services, cfg, logger),
	}
	if cfg.Server.MetricsAddress != "" {
		handlers.Metrics = http.MetricsRouter()
	}

	return handlers, nil
}
