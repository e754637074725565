// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/sommelier/internal/config"
	"github.com/MKhiriev/sommelier/internal/handler"
	"github.com/MKhiriev/sommelier/internal/logger"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

type server struct {
	servers []*httpServer
	logger  *logger.Logger
}

// NewServer creates the API listener and, when cfg.MetricsAddress is set
// and handlers carry a metrics router, a dedicated metrics listener.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{logger: logger}

	if handlers != nil && handlers.HTTP != nil && cfg.HTTPAddress != "" {
		servers.servers = append(servers.servers, newHTTPServer("api", cfg.HTTPAddress, handlers.HTTP.Init(), logger))
	}
	if len(servers.servers) == 0 {
		return nil, errNoServersAreCreated
	}

	if handlers.Metrics != nil && cfg.MetricsAddress != "" {
		servers.servers = append(servers.servers, newHTTPServer("metrics", cfg.MetricsAddress, handlers.Metrics, logger))
	}

	return servers, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.run(ctx); err != nil {
		s.logger.Err(err).Msg("error running server")
		return
	}
	s.logger.Info().Msg("server Shutdown gracefully")
}

func (s *server) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	for _, srv := range s.servers {
		srv.Shutdown(ctx)
	}
}

// run serves until ctx is cancelled or a listener fails, then shuts every
// listener down.
func (s *server) run(ctx context.Context) error {
	g, gCtx := errgroup.WithContext(ctx)

	for _, srv := range s.servers {
		g.Go(srv.RunServer)
	}

	g.Go(func() error {
		<-gCtx.Done()
		s.Shutdown()
		return nil
	})

	return g.Wait()
}
