// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

const (
	defaultTokenDuration  = 24 * time.Hour
	defaultCodeTTL        = 15 * time.Minute
	defaultRequestTimeout = 30 * time.Second
	defaultFilesDir       = "files"
	defaultTokenIssuer    = "sommelier"
)

// GetServerConfig loads the structured configuration, fills in server
// defaults and validates the settings the server cannot start without.
func GetServerConfig() (*StructuredConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	cfg.applyServerDefaults()
	return cfg, cfg.validateServer()
}

func (cfg *StructuredConfig) applyServerDefaults() {
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}
	if cfg.App.CodeTTL == 0 {
		cfg.App.CodeTTL = defaultCodeTTL
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Storage.Files.Dir == "" {
		cfg.Storage.Files.Dir = defaultFilesDir
	}
	if cfg.Storage.Files.PublicURL == "" && cfg.Server.HTTPAddress != "" {
		cfg.Storage.Files.PublicURL = "http://" + cfg.Server.HTTPAddress + "/files"
	}
}
