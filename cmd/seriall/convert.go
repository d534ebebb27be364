// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/bureau-foundation/seriall/cmd/seriall/cli"
	"github.com/bureau-foundation/seriall/lib/config"
	"github.com/bureau-foundation/seriall/lib/format"
	"github.com/bureau-foundation/seriall/lib/pure"
)

type convertParams struct {
	cli.ConfigFile
	From   *format.Format `json:"from"   flag:"from"     desc:"input framing (default: from extension or content)"`
	To     *format.Format `json:"to"     flag:"to,t"     desc:"output framing (default: format.default from config)"`
	Indent int            `json:"indent" flag:"indent"   desc:"indentation width; -1 uses format.indent from config" default:"-1"`
	Output string         `json:"output" flag:"output,o" desc:"write to this file instead of stdout"`
}

func convertCommand() *cli.Command {
	var params convertParams

	return &cli.Command{
		Name:    "convert",
		Summary: "Re-frame a document in another format",
		Description: `Read a pure document and write it in another framing. The document
is structurally validated on the way through, so convert also rejects
dangling indices, unknown tags, and malformed nodes.

JSON input may carry comments and trailing commas. CBOR output is
refused on a terminal; redirect stdout or pass --output.`,
		Usage: "seriall convert [--from F] [--to F] [--indent N] [file]",
		Examples: []cli.Example{
			{
				Description: "JSON to YAML",
				Command:     "seriall convert --to yaml graph.json",
			},
			{
				Description: "Compact JSON from stdin to CBOR",
				Command:     "cat graph.json | seriall convert --to cbor -o graph.cbor",
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

			from := detectFormat(in, params.From, cfg.Format.Default)
			to := cfg.Format.Default
			if params.To != nil {
				to = *params.To
			}
			document, converted, err := convertDocument(in, from, to, indentFor(params.Indent, cfg))
			if err != nil {
				return err
			}
			logger.Debug("converted document", "from", from, "to", to, "nodes", len(document))
			return writeDocument(params.Output, converted, to)
		},
	}
}

// indentFor resolves the --indent flag against the configuration.
func indentFor(flagValue int, cfg *config.Config) int {
	if flagValue < 0 {
		return cfg.Format.Indent
	}
	return flagValue
}

// convertDocument decodes in as from and frames it as to.
func convertDocument(in *input, from, to format.Format, indent int) (pure.Document, []byte, error) {
	document, err := decodeInput(in, from)
	if err != nil {
		return nil, nil, err
	}
	converted, err := format.Marshal(document, to, format.MarshalOptions{Indent: indent})
	if err != nil {
		return nil, nil, cli.Validation("framing as %s: %w", to, err)
	}
	return document, converted, nil
}
