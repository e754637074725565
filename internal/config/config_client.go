// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

const (
	defaultAdapterTimeout = 10 * time.Second
	defaultSessionDSN     = "file:sommelier.db"
)

// ClientAdapter holds the settings of the client's connection to the server.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the sommelier server.
	HTTPAddress string
	// RequestTimeout bounds every request made by the adapter.
	RequestTimeout time.Duration
}

// ClientStorage holds the client's local storage settings.
type ClientStorage struct {
	// SessionDSN is the sqlite data source of the session store.
	SessionDSN string
}

// ClientWorkers sizes the client's background pool. Non-positive values
// select the pool defaults.
type ClientWorkers struct {
	PoolSize  int
	QueueSize int
}

// ClientConfig is the configuration of the terminal client.
type ClientConfig struct {
	Version string
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
}

// GetClientConfig loads the structured configuration and narrows it to the
// client's settings. Missing optional values are filled with defaults.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	clientCfg := &ClientConfig{
		Version: cfg.App.Version,
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			SessionDSN: cfg.Storage.Session.DSN,
		},
		Workers: ClientWorkers{
			PoolSize:  cfg.Workers.PoolSize,
			QueueSize: cfg.Workers.QueueSize,
		},
	}

	if clientCfg.Adapter.RequestTimeout == 0 {
		clientCfg.Adapter.RequestTimeout = defaultAdapterTimeout
	}
	if clientCfg.Storage.SessionDSN == "" {
		clientCfg.Storage.SessionDSN = defaultSessionDSN
	}

	return clientCfg
}
