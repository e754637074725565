// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv reads a partial [StructuredConfig] from the environment. Variable
// names come from the env and envPrefix tags, e.g. STORAGE_REDIS_ADDRESS.
// Unset variables leave their fields zero so that the merge keeps values
// from flags and the JSON file.
func parseEnv() (*StructuredConfig, error) {
	cfg, err := env.ParseAs[StructuredConfig]()
	if err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	return &cfg, nil
}
