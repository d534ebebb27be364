// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package format

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bureau-foundation/seriall/lib/pure"
)

// Format identifies a framing. The numeric values are stored in packed
// envelopes and must not change.
type Format uint8

const (
	JSON Format = iota
	YAML
	TOML
	CBOR

	formatCount
)

var formatNames = [formatCount]string{
	JSON: "json",
	YAML: "yaml",
	TOML: "toml",
	CBOR: "cbor",
}

// Formats lists every format.
func Formats() []Format {
	return []Format{JSON, YAML, TOML, CBOR}
}

func (f Format) String() string {
	if f < formatCount {
		return formatNames[f]
	}
	return fmt.Sprintf("format(%d)", uint8(f))
}

// Valid reports whether f is a known format.
func (f Format) Valid() bool {
	return f < formatCount
}

// Binary reports whether the framing is not text.
func (f Format) Binary() bool {
	return f == CBOR
}

// ParseFormat parses a format name, case-insensitively. "yml" and
// "jsonc" are accepted as aliases.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json", "jsonc":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	case "toml":
		return TOML, nil
	case "cbor":
		return CBOR, nil
	}
	return 0, fmt.Errorf("unknown format %q (expected json, yaml, toml, or cbor)", name)
}

// FromExtension infers the format from a file name.
func FromExtension(path string) (Format, bool) {
	extension := strings.TrimPrefix(filepath.Ext(path), ".")
	if extension == "" {
		return 0, false
	}
	format, err := ParseFormat(extension)
	if err != nil {
		return 0, false
	}
	return format, true
}

// MarshalText implements encoding.TextMarshaler.
func (f Format) MarshalText() ([]byte, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("invalid format %d", uint8(f))
	}
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Format) UnmarshalText(text []byte) error {
	parsed, err := ParseFormat(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// MarshalOptions controls text layout. Binary framings ignore it.
type MarshalOptions struct {
	// Indent is the number of spaces per nesting level. Zero gives the
	// most compact layout the framing supports.
	Indent int
}

// Marshal frames document in format. The document is validated first
// so that no framing ever writes a document Unmarshal would reject.
func Marshal(document pure.Document, format Format, options MarshalOptions) ([]byte, error) {
	if err := pure.Validate(document); err != nil {
		return nil, err
	}
	var (
		data []byte
		err  error
	)
	switch format {
	case JSON:
		data, err = marshalJSON(document, options)
	case YAML:
		data, err = marshalYAML(document, options)
	case TOML:
		data, err = marshalTOML(document, options)
	case CBOR:
		data, err = marshalCBOR(document)
	default:
		return nil, fmt.Errorf("marshal: invalid format %d", uint8(format))
	}
	if err != nil {
		return nil, fmt.Errorf("marshal %s: %w", format, err)
	}
	return data, nil
}

// Unmarshal parses a document framed in format. It checks node shape
// but not index ranges; call [pure.Validate] for that.
func Unmarshal(data []byte, format Format) (pure.Document, error) {
	var (
		document pure.Document
		err      error
	)
	switch format {
	case JSON:
		document, err = unmarshalJSON(data)
	case YAML:
		document, err = unmarshalYAML(data)
	case TOML:
		document, err = unmarshalTOML(data)
	case CBOR:
		document, err = unmarshalCBOR(data)
	default:
		return nil, fmt.Errorf("unmarshal: invalid format %d", uint8(format))
	}
	if err != nil {
		return nil, fmt.Errorf("unmarshal %s: %w", format, err)
	}
	return document, nil
}
