// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bureau-foundation/seriall/lib/envelope"
	"github.com/bureau-foundation/seriall/lib/format"
	"github.com/bureau-foundation/seriall/lib/testutil"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	return testutil.WriteFile(t, "seriall.yaml", []byte(content), 0644)
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Format.Default != format.JSON {
		t.Errorf("expected format.default=json, got %s", cfg.Format.Default)
	}
	if cfg.Format.Indent != 2 {
		t.Errorf("expected format.indent=2, got %d", cfg.Format.Indent)
	}
	if cfg.Envelope.Compression != CompressionAuto {
		t.Errorf("expected envelope.compression=auto, got %s", cfg.Envelope.Compression)
	}
	if !cfg.Engine.BuiltinPalette || !cfg.Engine.BuiltinAdapters {
		t.Error("expected the built-in context to be enabled")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config is invalid: %v", err)
	}
}

func TestLoad_RequiresSeriallConfig(t *testing.T) {
	t.Setenv(EnvironmentVariable, "")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error when SERIALL_CONFIG not set, got nil")
	}
	expectedMsg := "SERIALL_CONFIG environment variable not set"
	if !strings.HasPrefix(err.Error(), expectedMsg) {
		t.Errorf("expected error message to start with %q, got %q", expectedMsg, err.Error())
	}
}

func TestLoad_WithSeriallConfig(t *testing.T) {
	t.Setenv(EnvironmentVariable, writeConfig(t, `
format:
  default: cbor
`))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Format.Default != format.CBOR {
		t.Errorf("expected format.default=cbor, got %s", cfg.Format.Default)
	}
	// Unset fields keep their defaults.
	if cfg.Format.Indent != 2 {
		t.Errorf("expected format.indent=2 from defaults, got %d", cfg.Format.Indent)
	}
}

func TestLoadFile(t *testing.T) {
	configPath := writeConfig(t, `
format:
  default: yml
  indent: 0
envelope:
  compression: zstd
  key_file: ${SERIALL_TEST_KEYS:-/etc/seriall}/master.key
engine:
  max_depth: 500
  builtin_adapters: false
`)
	t.Setenv("SERIALL_TEST_KEYS", "")

	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile() failed: %v", err)
	}
	if cfg.Format.Default != format.YAML {
		t.Errorf("expected format.default=yaml, got %s", cfg.Format.Default)
	}
	if cfg.Format.Indent != 0 {
		t.Errorf("expected format.indent=0, got %d", cfg.Format.Indent)
	}
	if cfg.Envelope.KeyFile != "/etc/seriall/master.key" {
		t.Errorf("expected expanded key_file, got %s", cfg.Envelope.KeyFile)
	}
	if cfg.Engine.MaxDepth != 500 {
		t.Errorf("expected engine.max_depth=500, got %d", cfg.Engine.MaxDepth)
	}
	if !cfg.Engine.BuiltinPalette || cfg.Engine.BuiltinAdapters {
		t.Errorf("expected palette on and adapters off, got %+v", cfg.Engine)
	}

	options := cfg.Options(nil)
	if options.DisableBuiltinPalette || !options.DisableBuiltinAdapters || options.MaxDepth != 500 {
		t.Errorf("Options = %+v", options)
	}
	compression, err := cfg.Compression([]byte("{}"), format.JSON)
	if err != nil || compression != envelope.CompressionZstd {
		t.Errorf("Compression = %s, %v; want zstd", compression, err)
	}
}

func TestLoadFile_Errors(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); !os.IsNotExist(err) {
		t.Errorf("missing file: err = %v, want not-exist", err)
	}
	if _, err := LoadFile(writeConfig(t, "format:\n  default: xml\n")); err == nil {
		t.Error("unknown format accepted")
	}
	if _, err := LoadFile(writeConfig(t, "format: [\n")); err == nil {
		t.Error("malformed YAML accepted")
	}
}

func TestEnvVarsDoNotOverride(t *testing.T) {
	configPath := writeConfig(t, "format:\n  default: toml\n")
	t.Setenv("SERIALL_FORMAT", "cbor")

	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile() failed: %v", err)
	}
	if cfg.Format.Default != format.TOML {
		t.Errorf("expected format.default=toml from file, got %s (env vars should not override)", cfg.Format.Default)
	}
}

func TestExpandVars(t *testing.T) {
	tests := []struct {
		input    string
		vars     map[string]string
		expected string
	}{
		{
			input:    "${HOME}/keys",
			vars:     map[string]string{"HOME": "/home/user"},
			expected: "/home/user/keys",
		},
		{
			input:    "${SERIALL_TEST_MISSING:-default}",
			vars:     map[string]string{},
			expected: "default",
		},
		{
			input:    "${PRESENT:-default}",
			vars:     map[string]string{"PRESENT": "value"},
			expected: "value",
		},
		{
			input:    "${A}/${B}",
			vars:     map[string]string{"A": "first", "B": "second"},
			expected: "first/second",
		},
		{
			input:    "no variables here",
			vars:     map[string]string{},
			expected: "no variables here",
		},
	}

	for _, tt := range tests {
		result := expandVars(tt.input, tt.vars)
		if result != tt.expected {
			t.Errorf("expandVars(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestCompression_Auto(t *testing.T) {
	cfg := Default()
	compression, err := cfg.Compression([]byte(`[{"T":7,"K":"Object"}]`), format.JSON)
	if err != nil {
		t.Fatalf("Compression: %v", err)
	}
	if compression != envelope.CompressionZstd {
		t.Errorf("auto for JSON = %s, want zstd", compression)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid default config",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name: "unknown format",
			modify: func(c *Config) {
				c.Format.Default = format.Format(42)
			},
			wantErr: true,
		},
		{
			name: "negative indent",
			modify: func(c *Config) {
				c.Format.Indent = -1
			},
			wantErr: true,
		},
		{
			name: "unknown compression",
			modify: func(c *Config) {
				c.Envelope.Compression = "brotli"
			},
			wantErr: true,
		},
		{
			name: "explicit compression",
			modify: func(c *Config) {
				c.Envelope.Compression = "lz4"
			},
			wantErr: false,
		},
		{
			name: "negative max depth",
			modify: func(c *Config) {
				c.Engine.MaxDepth = -5
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
