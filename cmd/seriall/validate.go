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
	"github.com/bureau-foundation/seriall/lib/engine"
	"github.com/bureau-foundation/seriall/lib/format"
	"github.com/bureau-foundation/seriall/lib/pure"
	"github.com/bureau-foundation/seriall/lib/seriall"
)

type validateParams struct {
	cli.ConfigFile
	From    *format.Format `json:"from"    flag:"from"    desc:"input framing (default: from extension or content)"`
	Resolve bool           `json:"resolve" flag:"resolve" desc:"also decode the document against the built-in context"`
}

func validateCommand() *cli.Command {
	var params validateParams

	return &cli.Command{
		Name:    "validate",
		Summary: "Check a document's structure",
		Description: `Check that a document parses in its framing and is a well-formed pure
document: every node has a known tag and shape, and every index points
inside the document. Exits 0 with "valid", or 1 with a diagnosis.

With --resolve, the document is also decoded against the built-in
context (Date, RegExp, Map, Set, typed arrays, and the standard
classes, subject to the engine settings in the config). The first
palette key or adapter name the context cannot supply is reported.`,
		Usage: "seriall validate [--resolve] [file]",
		Examples: []cli.Example{
			{
				Description: "Structural check",
				Command:     "seriall validate graph.json",
			},
			{
				Description: "Check that every reference resolves",
				Command:     "seriall validate --resolve graph.cbor",
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

			var options *seriall.Options
			if params.Resolve {
				resolved := cfg.Options(logger)
				options = &resolved
			}
			return validateInput(ctx, in, framing, options, os.Stdout, painter{styled: stdoutIsTerminal()})
		},
	}
}

// validateInput writes "valid" or a diagnosis to w. An invalid
// document yields an ExitError so main exits 1 without repeating the
// message. A nil options skips resolution.
func validateInput(ctx context.Context, in *input, framing format.Format, options *seriall.Options, w io.Writer, paint painter) error {
	if diagnosis := diagnose(ctx, in, framing, options); diagnosis != "" {
		fmt.Fprintf(w, "%s %s\n", paint.render(invalidStyle, "invalid:"), diagnosis)
		return &cli.ExitError{Code: 1}
	}
	fmt.Fprintln(w, paint.render(validStyle, "valid"))
	return nil
}

// diagnose returns an empty string for a valid document.
func diagnose(ctx context.Context, in *input, framing format.Format, options *seriall.Options) string {
	document, err := decodeInput(in, framing)
	if err != nil {
		return err.Error()
	}
	if err := pure.Validate(document); err != nil {
		return err.Error()
	}
	if options == nil {
		return ""
	}
	if _, err := seriall.Parse(ctx, document, *options); err != nil {
		var valueMissing *engine.ReferredValueNotFoundError
		var adapterMissing *engine.ReferredAdapterNotFoundError
		switch {
		case errors.As(err, &valueMissing):
			return fmt.Sprintf("node %d: unresolved palette key %q", valueMissing.Index, valueMissing.Key)
		case errors.As(err, &adapterMissing):
			return fmt.Sprintf("node %d: unresolved adapter %q", adapterMissing.Index, adapterMissing.Name)
		}
		return err.Error()
	}
	return ""
}
