// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/bureau-foundation/seriall/cmd/seriall/cli"
	"github.com/bureau-foundation/seriall/lib/envelope"
	"github.com/bureau-foundation/seriall/lib/format"
	"github.com/bureau-foundation/seriall/lib/testutil"
)

func TestReadInput(t *testing.T) {
	path := testutil.WriteFile(t, "graph.json", []byte(plainObject), 0644)
	empty := testutil.WriteFile(t, "empty.json", nil, 0644)

	in, err := readInput([]string{path}, strings.NewReader("ignored"))
	if err != nil {
		t.Fatalf("readInput(file): %v", err)
	}
	if string(in.data) != plainObject || in.path != path || in.name() != path {
		t.Errorf("file input = %q from %q", in.data, in.path)
	}

	in, err = readInput(nil, strings.NewReader(plainObject))
	if err != nil {
		t.Fatalf("readInput(stdin): %v", err)
	}
	if string(in.data) != plainObject || in.path != "" || in.name() != "stdin" {
		t.Errorf("stdin input = %q from %q", in.data, in.path)
	}

	tests := []struct {
		name     string
		args     []string
		stdin    string
		category cli.ErrorCategory
	}{
		{"missing file", []string{filepath.Join(t.TempDir(), "missing.json")}, "", cli.CategoryNotFound},
		{"empty file", []string{empty}, "", cli.CategoryValidation},
		{"empty stdin", nil, "", cli.CategoryValidation},
		{"two files", []string{path, path}, "", cli.CategoryValidation},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := readInput(test.args, strings.NewReader(test.stdin))
			if err == nil {
				t.Fatal("readInput succeeded")
			}
			if got := cli.CategoryOf(err); got != test.category {
				t.Errorf("category = %s, want %s (err %v)", got, test.category, err)
			}
		})
	}
}

func TestSniffFormat(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		want   format.Format
		wantOK bool
	}{
		{"json", plainObject, format.JSON, true},
		{"json with leading space", "\n  [1]", format.JSON, true},
		{"jsonc comment", "// graph\n[1]", format.JSON, true},
		{"yaml sequence", "- 1\n- x\n", format.YAML, true},
		{"toml array of tables", "[[pures]]\nT = 7\n", format.TOML, true},
		{"toml inline", "pures = [1]\n", format.TOML, true},
		{"cbor array", "\x82\x01\x02", format.CBOR, true},
		{"unknown", "hello", 0, false},
		{"empty", "", 0, false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, ok := sniffFormat([]byte(test.data))
			if ok != test.wantOK || (ok && got != test.want) {
				t.Errorf("sniffFormat = %s, %v; want %s, %v", got, ok, test.want, test.wantOK)
			}
		})
	}
}

func TestDetectFormat(t *testing.T) {
	yaml := format.YAML

	tests := []struct {
		name     string
		in       *input
		explicit *format.Format
		want     format.Format
	}{
		{"explicit wins", &input{data: []byte(plainObject), path: "graph.toml"}, &yaml, format.YAML},
		{"extension", &input{data: []byte(plainObject), path: "graph.toml"}, nil, format.TOML},
		{"sniffed", &input{data: []byte(plainObject), path: "graph.dat"}, nil, format.JSON},
		{"fallback", &input{data: []byte("hello")}, nil, format.CBOR},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := detectFormat(test.in, test.explicit, format.CBOR); got != test.want {
				t.Errorf("detectFormat = %s, want %s", got, test.want)
			}
		})
	}
}

func TestDecodeInput(t *testing.T) {
	document, err := decodeInput(&input{data: []byte(plainObject)}, format.JSON)
	if err != nil {
		t.Fatalf("decodeInput: %v", err)
	}
	if len(document) != 7 {
		t.Errorf("decoded %d nodes, want 7", len(document))
	}

	_, err = decodeInput(&input{data: []byte("{not json")}, format.JSON)
	if cli.CategoryOf(err) != cli.CategoryValidation {
		t.Errorf("malformed input: err = %v, want validation", err)
	}

	packed, err := envelope.Pack([]byte(plainObject), envelope.PackOptions{Format: format.JSON})
	if err != nil {
		t.Fatalf("Pack: %v", err)
	}
	_, err = decodeInput(&input{data: packed, path: "graph.srll"}, format.JSON)
	if err == nil || !strings.Contains(err.Error(), "seriall unpack") {
		t.Errorf("envelope input: err = %v, want a hint to unpack", err)
	}
}
