// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"io/fs"
	"os"

	"github.com/bureau-foundation/seriall/lib/config"
)

// ConfigFile is an embeddable struct that adds the --config flag to a
// command's parameter struct.
type ConfigFile struct {
	ConfigPath string `json:"-" flag:"config" desc:"configuration file (default: $SERIALL_CONFIG, then built-in defaults)"`
}

// LoadConfig loads and validates the configuration named by --config,
// falling back to SERIALL_CONFIG and then to [config.Default]. A named
// file that does not exist is a not-found error.
func (c *ConfigFile) LoadConfig() (*config.Config, error) {
	path := c.ConfigPath
	if path == "" {
		path = os.Getenv(config.EnvironmentVariable)
	}

	cfg := config.Default()
	if path != "" {
		loaded, err := config.LoadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			return nil, NotFound("config file %s does not exist", path)
		}
		if err != nil {
			return nil, Validation("loading config: %w", err)
		}
		cfg = loaded
	}

	if err := cfg.Validate(); err != nil {
		return nil, Validation("invalid config %s: %w", path, err)
	}
	return cfg, nil
}
