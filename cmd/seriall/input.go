// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/bureau-foundation/seriall/cmd/seriall/cli"
	"github.com/bureau-foundation/seriall/lib/envelope"
	"github.com/bureau-foundation/seriall/lib/format"
	"github.com/bureau-foundation/seriall/lib/pure"
)

// input is a document read from a file or stdin.
type input struct {
	data []byte
	// path is empty when the data came from stdin.
	path string
}

// name returns a label for messages.
func (in *input) name() string {
	if in.path == "" {
		return "stdin"
	}
	return in.path
}

// readInput reads the single optional file argument, or stdin when
// args is empty.
func readInput(args []string, stdin io.Reader) (*input, error) {
	switch len(args) {
	case 0:
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, cli.Internal("read stdin: %w", err)
		}
		if len(data) == 0 {
			return nil, cli.Validation("empty input: expected a document on stdin or a file argument")
		}
		return &input{data: data}, nil
	case 1:
		data, err := os.ReadFile(args[0])
		if errors.Is(err, fs.ErrNotExist) {
			return nil, cli.NotFound("input file %s does not exist", args[0])
		}
		if err != nil {
			return nil, cli.Internal("read %s: %w", args[0], err)
		}
		if len(data) == 0 {
			return nil, cli.Validation("empty input: %s is empty", args[0])
		}
		return &input{data: data, path: args[0]}, nil
	default:
		return nil, cli.Validation("expected at most one file argument, got %d", len(args))
	}
}

// detectFormat picks the input framing: the explicit choice, then the
// file extension, then a sniff of the content, then fallback.
func detectFormat(in *input, explicit *format.Format, fallback format.Format) format.Format {
	if explicit != nil {
		return *explicit
	}
	if in.path != "" {
		if framing, ok := format.FromExtension(in.path); ok {
			return framing
		}
	}
	if framing, ok := sniffFormat(in.data); ok {
		return framing
	}
	return fallback
}

// sniffFormat guesses a framing from the leading bytes. A pure
// document is always an array, which narrows the candidates.
func sniffFormat(data []byte) (format.Format, bool) {
	if len(data) == 0 {
		return 0, false
	}
	// CBOR major type 4 (array).
	if data[0] >= 0x80 && data[0] <= 0x9f {
		return format.CBOR, true
	}
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	switch {
	case bytes.HasPrefix(trimmed, []byte("[[pures")), bytes.HasPrefix(trimmed, []byte("pures")):
		return format.TOML, true
	case bytes.HasPrefix(trimmed, []byte("[")), bytes.HasPrefix(trimmed, []byte("//")), bytes.HasPrefix(trimmed, []byte("/*")):
		return format.JSON, true
	case bytes.HasPrefix(trimmed, []byte("-")):
		return format.YAML, true
	}
	return 0, false
}

// decodeInput unframes in as a pure document.
func decodeInput(in *input, framing format.Format) (pure.Document, error) {
	if bytes.HasPrefix(in.data, envelope.Magic[:]) {
		return nil, cli.Validation("%s is a packed envelope, not a framed document", in.name()).
			WithHint("Run 'seriall unpack' first.")
	}
	document, err := format.Unmarshal(in.data, framing)
	if err != nil {
		return nil, cli.Validation("decoding %s as %s: %w", in.name(), framing, err)
	}
	return document, nil
}
