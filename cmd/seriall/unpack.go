// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/bureau-foundation/seriall/cmd/seriall/cli"
	"github.com/bureau-foundation/seriall/lib/envelope"
	"github.com/bureau-foundation/seriall/lib/format"
)

type unpackParams struct {
	cli.ConfigFile
	cli.JSONOutput
	KeyFile string         `json:"key_file" flag:"key-file" desc:"master key for sealed envelopes (default: envelope.key_file from config)"`
	To      *format.Format `json:"to"       flag:"to,t"     desc:"re-frame the document (default: the framing it was packed in)"`
	Indent  int            `json:"indent"   flag:"indent"   desc:"indentation width when re-framing; -1 uses format.indent from config" default:"-1"`
	Header  bool           `json:"header"   flag:"header"   desc:"print the envelope header instead of the document"`
	Output  string         `json:"output"   flag:"output,o" desc:"write to this file instead of stdout"`
}

// headerInfo is the printable form of an envelope header.
type headerInfo struct {
	Version     int    `json:"version"`
	Format      string `json:"format"`
	Compression string `json:"compression"`
	Sealed      bool   `json:"sealed"`
	Length      uint32 `json:"length"`
	Digest      string `json:"digest"`
}

func unpackCommand() *cli.Command {
	var params unpackParams

	return &cli.Command{
		Name:    "unpack",
		Summary: "Verify and open an envelope",
		Description: `Read an envelope written by "seriall pack", verify its digest, and
write the document it holds. Sealed envelopes need the master key they
were packed with.

By default the document is written byte-for-byte in the framing it was
packed in. With --to it is re-framed; with --header only the header is
printed, which needs no key.`,
		Usage: "seriall unpack [--key-file P] [--to F] [--header] [file]",
		Examples: []cli.Example{
			{
				Description: "Unpack to the original framing",
				Command:     "seriall unpack graph.srll",
			},
			{
				Description: "Unpack a sealed envelope as YAML",
				Command:     "seriall unpack --key-file master.key --to yaml graph.srll",
			},
			{
				Description: "Show the header",
				Command:     "seriall unpack --header --json graph.srll",
			},
		},
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			cfg, err := params.LoadConfig()
			if err != nil {
				return err
			}
			in, err := readInput(args, os.Stdin)
			if err != nil {
				return err
			}

			if params.Header {
				header, err := envelope.ReadHeader(in.data)
				if err != nil {
					return envelopeError(in, err)
				}
				info := describeHeader(header)
				if emitted, err := params.EmitJSON(os.Stdout, info); emitted {
					return err
				}
				return writeHeader(os.Stdout, info)
			}

			key, err := loadKey(firstNonEmpty(params.KeyFile, cfg.Envelope.KeyFile))
			if err != nil {
				return err
			}
			if key != nil {
				defer key.Close()
			}

			opened, framed, framing, err := unpackInput(in, key, params.To, indentFor(params.Indent, cfg))
			if err != nil {
				return err
			}
			logger.Debug("unpacked envelope",
				"format", opened.Header.Format,
				"compression", opened.Header.Compression,
				"sealed", opened.Header.Sealed(),
			)
			return writeDocument(params.Output, framed, framing)
		},
	}
}

// unpackInput opens the envelope in in. The document keeps its packed
// bytes unless to names a different framing or indent is positive.
func unpackInput(in *input, key *envelope.Key, to *format.Format, indent int) (*envelope.Envelope, []byte, format.Format, error) {
	opened, err := envelope.Unpack(in.data, key)
	if err != nil {
		return nil, nil, 0, envelopeError(in, err)
	}

	framing := opened.Header.Format
	if to == nil && indent <= 0 {
		return opened, opened.Framed, framing, nil
	}
	if to != nil {
		framing = *to
	}
	document, err := opened.Document()
	if err != nil {
		return nil, nil, 0, cli.Validation("%s: packed document: %w", in.name(), err)
	}
	framed, err := format.Marshal(document, framing, format.MarshalOptions{Indent: indent})
	if err != nil {
		return nil, nil, 0, cli.Validation("framing as %s: %w", framing, err)
	}
	return opened, framed, framing, nil
}

// envelopeError categorizes envelope failures.
func envelopeError(in *input, err error) error {
	switch {
	case errors.Is(err, envelope.ErrKeyRequired):
		return cli.Validation("%s: %w", in.name(), err).
			WithHint("Pass --key-file or set envelope.key_file in the config.")
	case errors.Is(err, envelope.ErrBadMagic):
		return cli.Validation("%s: %w", in.name(), err).
			WithHint("Framed documents can be read directly by convert and inspect.")
	}
	return cli.Validation("%s: %w", in.name(), err)
}

func describeHeader(header envelope.Header) headerInfo {
	return headerInfo{
		Version:     int(header.Version),
		Format:      header.Format.String(),
		Compression: header.Compression.String(),
		Sealed:      header.Sealed(),
		Length:      header.Length,
		Digest:      header.Digest.String(),
	}
}

func writeHeader(w io.Writer, info headerInfo) error {
	_, err := fmt.Fprintf(w,
		"version:     %d\nformat:      %s\ncompression: %s\nsealed:      %t\nlength:      %d\ndigest:      %s\n",
		info.Version, info.Format, info.Compression, info.Sealed, info.Length, info.Digest)
	if err != nil {
		return cli.Internal("write output: %w", err)
	}
	return nil
}
