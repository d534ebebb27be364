// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bureau-foundation/seriall/lib/config"
	"github.com/bureau-foundation/seriall/lib/format"
	"github.com/bureau-foundation/seriall/lib/testutil"
)

func TestConfigFile_LoadConfig(t *testing.T) {
	path := testutil.WriteFile(t, "seriall.yaml", []byte("format:\n  default: toml\n"), 0644)

	t.Run("flag", func(t *testing.T) {
		t.Setenv(config.EnvironmentVariable, "")
		cfg, err := (&ConfigFile{ConfigPath: path}).LoadConfig()
		if err != nil {
			t.Fatalf("LoadConfig: %v", err)
		}
		if cfg.Format.Default != format.TOML {
			t.Errorf("format = %s, want toml", cfg.Format.Default)
		}
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv(config.EnvironmentVariable, path)
		cfg, err := (&ConfigFile{}).LoadConfig()
		if err != nil {
			t.Fatalf("LoadConfig: %v", err)
		}
		if cfg.Format.Default != format.TOML {
			t.Errorf("format = %s, want toml", cfg.Format.Default)
		}
	})

	t.Run("defaults", func(t *testing.T) {
		t.Setenv(config.EnvironmentVariable, "")
		cfg, err := (&ConfigFile{}).LoadConfig()
		if err != nil {
			t.Fatalf("LoadConfig: %v", err)
		}
		if cfg.Format.Default != format.JSON {
			t.Errorf("format = %s, want json", cfg.Format.Default)
		}
	})
}

func TestConfigFile_LoadConfigErrors(t *testing.T) {
	t.Setenv(config.EnvironmentVariable, "")

	_, err := (&ConfigFile{ConfigPath: filepath.Join(t.TempDir(), "missing.yaml")}).LoadConfig()
	if CategoryOf(err) != CategoryNotFound {
		t.Errorf("missing file: err = %v (category %s), want not_found", err, CategoryOf(err))
	}

	bad := testutil.WriteFile(t, "bad.yaml", []byte("engine:\n  max_depth: -1\n"), 0644)
	_, err = (&ConfigFile{ConfigPath: bad}).LoadConfig()
	if CategoryOf(err) != CategoryValidation {
		t.Errorf("invalid file: err = %v (category %s), want validation", err, CategoryOf(err))
	}
}

func TestJSONOutput_EmitJSON(t *testing.T) {
	var buffer bytes.Buffer

	disabled := JSONOutput{}
	emitted, err := disabled.EmitJSON(&buffer, map[string]int{"nodes": 3})
	if err != nil || emitted || buffer.Len() != 0 {
		t.Errorf("disabled EmitJSON = %v, %v, wrote %q", emitted, err, buffer.String())
	}

	enabled := JSONOutput{OutputJSON: true}
	var nothing []string
	emitted, err = enabled.EmitJSON(&buffer, nothing)
	if err != nil || !emitted {
		t.Fatalf("EmitJSON = %v, %v", emitted, err)
	}
	if got := strings.TrimSpace(buffer.String()); got != "[]" {
		t.Errorf("nil slice emitted as %q, want []", got)
	}
}
