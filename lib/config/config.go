// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/seriall/lib/envelope"
	"github.com/bureau-foundation/seriall/lib/format"
	"github.com/bureau-foundation/seriall/lib/seriall"
)

// EnvironmentVariable names the config file for [Load].
const EnvironmentVariable = "SERIALL_CONFIG"

// CompressionAuto selects a compression per document with
// [envelope.SelectCompression].
const CompressionAuto = "auto"

// Config is the master configuration for the seriall command.
type Config struct {
	// Format configures document framing.
	Format FormatConfig `yaml:"format"`

	// Envelope configures pack and unpack.
	Envelope EnvelopeConfig `yaml:"envelope"`

	// Engine configures encoding and decoding.
	Engine EngineConfig `yaml:"engine"`
}

// FormatConfig configures document framing.
type FormatConfig struct {
	// Default is the framing used when neither a flag nor a file
	// extension names one.
	// Default: json
	Default format.Format `yaml:"default"`

	// Indent is the indentation width for text output. Zero writes
	// compact documents.
	// Default: 2
	Indent int `yaml:"indent"`
}

// EnvelopeConfig configures pack and unpack.
type EnvelopeConfig struct {
	// Compression is "auto" or a compression name (none, lz4, zstd).
	// Default: auto
	Compression string `yaml:"compression"`

	// KeyFile is the master key used to seal and open envelopes when
	// no --key-file flag is given. Empty means envelopes are not
	// sealed.
	KeyFile string `yaml:"key_file"`
}

// EngineConfig configures encoding and decoding.
type EngineConfig struct {
	// MaxDepth bounds decode nesting. Zero uses the engine default.
	MaxDepth int `yaml:"max_depth"`

	// BuiltinPalette and BuiltinAdapters enable the two halves of the
	// built-in context.
	// Default: true
	BuiltinPalette  bool `yaml:"builtin_palette"`
	BuiltinAdapters bool `yaml:"builtin_adapters"`
}

// Default returns the configuration used when no file is loaded. File
// values are layered over it.
func Default() *Config {
	return &Config{
		Format: FormatConfig{
			Default: format.JSON,
			Indent:  2,
		},
		Envelope: EnvelopeConfig{
			Compression: CompressionAuto,
		},
		Engine: EngineConfig{
			BuiltinPalette:  true,
			BuiltinAdapters: true,
		},
	}
}

// Load loads configuration from the file named by SERIALL_CONFIG. It
// fails when the variable is unset; callers that can run without a
// file check the variable themselves and fall back to [Default].
func Load() (*Config, error) {
	configPath := os.Getenv(EnvironmentVariable)
	if configPath == "" {
		return nil, fmt.Errorf("%s environment variable not set; "+
			"set it to the path of your seriall.yaml config file, or use --config flag", EnvironmentVariable)
	}
	return LoadFile(configPath)
}

// LoadFile loads configuration from path, layered over [Default].
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	cfg.expandVariables()
	return cfg, nil
}

// expandVariables expands ${VAR} and ${VAR:-default} in path fields.
func (c *Config) expandVariables() {
	vars := map[string]string{
		"HOME": os.Getenv("HOME"),
	}
	c.Envelope.KeyFile = expandVars(c.Envelope.KeyFile, vars)
}

var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

// expandVars expands ${VAR} and ${VAR:-default} patterns, consulting
// vars before the process environment.
func expandVars(s string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		if value, ok := vars[name]; ok && value != "" {
			return value
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if !c.Format.Default.Valid() {
		errs = append(errs, fmt.Errorf("format.default: unknown format %s", c.Format.Default))
	}
	if c.Format.Indent < 0 || c.Format.Indent > 16 {
		errs = append(errs, fmt.Errorf("format.indent must be between 0 and 16, got %d", c.Format.Indent))
	}

	if c.Envelope.Compression != CompressionAuto {
		if _, err := envelope.ParseCompression(c.Envelope.Compression); err != nil {
			errs = append(errs, fmt.Errorf("envelope.compression: %w", err))
		}
	}

	if c.Engine.MaxDepth < 0 {
		errs = append(errs, fmt.Errorf("engine.max_depth must not be negative, got %d", c.Engine.MaxDepth))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// Compression resolves the configured compression for one framed
// document.
func (c *Config) Compression(framed []byte, framing format.Format) (envelope.Compression, error) {
	if c.Envelope.Compression == CompressionAuto {
		return envelope.SelectCompression(framed, framing), nil
	}
	return envelope.ParseCompression(c.Envelope.Compression)
}

// Options returns the seriall options the engine section implies.
func (c *Config) Options(logger *slog.Logger) seriall.Options {
	return seriall.Options{
		DisableBuiltinPalette:  !c.Engine.BuiltinPalette,
		DisableBuiltinAdapters: !c.Engine.BuiltinAdapters,
		MaxDepth:               c.Engine.MaxDepth,
		Logger:                 logger,
	}
}
