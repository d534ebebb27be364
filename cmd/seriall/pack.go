// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/bureau-foundation/seriall/cmd/seriall/cli"
	"github.com/bureau-foundation/seriall/lib/config"
	"github.com/bureau-foundation/seriall/lib/envelope"
	"github.com/bureau-foundation/seriall/lib/format"
	"github.com/bureau-foundation/seriall/lib/pure"
)

type packParams struct {
	cli.ConfigFile
	From        *format.Format `json:"from"        flag:"from"        desc:"input framing (default: from extension or content)"`
	Compression string         `json:"compression" flag:"compression" desc:"none, lz4, zstd, or auto (default: envelope.compression from config)"`
	KeyFile     string         `json:"key_file"    flag:"key-file"    desc:"seal with this 32-byte master key (default: envelope.key_file from config)"`
	Output      string         `json:"output"      flag:"output,o"    desc:"write to this file instead of stdout"`
}

func packCommand() *cli.Command {
	var params packParams

	return &cli.Command{
		Name:    "pack",
		Summary: "Wrap a document in a compressed, digest-checked envelope",
		Description: `Wrap a framed document in an envelope: a fixed header recording the
framing, compression, length, and a BLAKE3 digest of the document,
followed by the (optionally compressed) payload.

With a key file the payload is sealed with XChaCha20-Poly1305 under a
key derived from the 32-byte master key, and the header is
authenticated along with it. Key files hold the raw 32 bytes or 64
hex characters.

The document is validated before packing. Compression "auto" picks
zstd for text framings and probes binary ones; payloads that do not
shrink are stored uncompressed.`,
		Usage: "seriall pack [--compression C] [--key-file P] [-o file] [file]",
		Examples: []cli.Example{
			{
				Description: "Pack with zstd",
				Command:     "seriall pack --compression zstd -o graph.srll graph.json",
			},
			{
				Description: "Pack and seal",
				Command:     "seriall pack --key-file ~/.config/seriall/master.key graph.cbor > graph.srll",
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
			framing := detectFormat(in, params.From, cfg.Format.Default)

			compression, err := resolveCompression(params.Compression, cfg, in.data, framing)
			if err != nil {
				return err
			}
			key, err := loadKey(firstNonEmpty(params.KeyFile, cfg.Envelope.KeyFile))
			if err != nil {
				return err
			}
			if key != nil {
				defer key.Close()
			}

			packed, err := packInput(in, framing, compression, key)
			if err != nil {
				return err
			}
			header, _ := envelope.ReadHeader(packed)
			logger.Info("packed document",
				"format", framing,
				"compression", header.Compression,
				"sealed", header.Sealed(),
				"document_bytes", len(in.data),
				"envelope_bytes", len(packed),
				"digest", header.Digest.String(),
			)
			return writeBinary(params.Output, packed)
		},
	}
}

// packInput validates in and wraps it in an envelope.
func packInput(in *input, framing format.Format, compression envelope.Compression, key *envelope.Key) ([]byte, error) {
	document, err := decodeInput(in, framing)
	if err != nil {
		return nil, err
	}
	if err := pure.Validate(document); err != nil {
		return nil, cli.Validation("%s: %w", in.name(), err)
	}
	packed, err := envelope.Pack(in.data, envelope.PackOptions{
		Format:      framing,
		Compression: compression,
		Key:         key,
	})
	if err != nil {
		return nil, cli.Internal("%w", err)
	}
	return packed, nil
}

// resolveCompression applies the --compression flag, falling back to
// the configuration.
func resolveCompression(flagValue string, cfg *config.Config, framed []byte, framing format.Format) (envelope.Compression, error) {
	switch flagValue {
	case "":
		compression, err := cfg.Compression(framed, framing)
		if err != nil {
			return 0, cli.Validation("envelope.compression: %w", err)
		}
		return compression, nil
	case config.CompressionAuto:
		return envelope.SelectCompression(framed, framing), nil
	}
	compression, err := envelope.ParseCompression(flagValue)
	if err != nil {
		return 0, cli.Validation("--compression: %w", err)
	}
	return compression, nil
}

// loadKey reads a master key file. An empty path yields a nil key.
func loadKey(path string) (*envelope.Key, error) {
	if path == "" {
		return nil, nil
	}
	key, err := envelope.LoadKeyFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, cli.NotFound("key file %s does not exist", path)
	}
	if err != nil {
		return nil, cli.Validation("loading key: %w", err)
	}
	return key, nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
