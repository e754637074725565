// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/sommelier/internal/config"
	"github.com/MKhiriev/sommelier/internal/handler"
	myHTTP "github.com/MKhiriev/sommelier/internal/handler/http"
	"github.com/MKhiriev/sommelier/internal/logger"
	"github.com/MKhiriev/sommelier/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHandlers() *handler.Handlers {
	return &handler.Handlers{
		HTTP:    myHTTP.NewHandler(&service.Services{}, config.StructuredConfig{}, logger.Nop()),
		Metrics: http.NotFoundHandler(),
	}
}

func TestNewServer_NoAPIAddress(t *testing.T) {
	_, err := NewServer(newHandlers(), config.Server{}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewServer_NoHandlers(t *testing.T) {
	_, err := NewServer(nil, config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewServer_Listeners(t *testing.T) {
	tests := []struct {
		name  string
		cfg   config.Server
		names []string
	}{
		{name: "api only", cfg: config.Server{HTTPAddress: "127.0.0.1:0"}, names: []string{"api"}},
		{
			name:  "api and metrics",
			cfg:   config.Server{HTTPAddress: "127.0.0.1:0", MetricsAddress: "127.0.0.1:0"},
			names: []string{"api", "metrics"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, err := NewServer(newHandlers(), tt.cfg, logger.Nop())
			require.NoError(t, err)

			var names []string
			for _, s := range srv.(*server).servers {
				names = append(names, s.name)
			}
			assert.Equal(t, tt.names, names)
		})
	}
}

func TestRun_StopsOnCancel(t *testing.T) {
	srv, err := NewServer(newHandlers(), config.Server{HTTPAddress: "127.0.0.1:0", MetricsAddress: "127.0.0.1:0"}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.(*server).run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestRun_ListenFailureStopsAll(t *testing.T) {
	srv, err := NewServer(newHandlers(), config.Server{HTTPAddress: "127.0.0.1:0", MetricsAddress: "bad:address:format"}, logger.Nop())
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- srv.(*server).run(context.Background()) }()

	select {
	case err := <-done:
		assert.ErrorContains(t, err, "metrics ListenAndServe")
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
