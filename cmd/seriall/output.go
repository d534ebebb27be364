// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/chroma/v2/quick"

	"github.com/bureau-foundation/seriall/cmd/seriall/cli"
	"github.com/bureau-foundation/seriall/lib/format"
)

// stdoutIsTerminal is swapped in tests.
var stdoutIsTerminal = func() bool { return cli.IsTerminal(os.Stdout) }

// writeDocument writes framed bytes to path, or to stdout when path is
// empty. Text framings are highlighted on a terminal; binary output to
// a terminal is refused.
func writeDocument(path string, data []byte, framing format.Format) error {
	if path != "" {
		if err := os.WriteFile(path, data, 0644); err != nil {
			return cli.Internal("write %s: %w", path, err)
		}
		return nil
	}
	terminal := stdoutIsTerminal()
	if framing.Binary() && terminal {
		return cli.Validation("refusing to write binary %s output to a terminal", framing).
			WithHint("Redirect stdout or pass --output.")
	}
	return emit(os.Stdout, data, framing, terminal)
}

// writeBinary writes bytes that have no text rendering.
func writeBinary(path string, data []byte) error {
	if path != "" {
		if err := os.WriteFile(path, data, 0644); err != nil {
			return cli.Internal("write %s: %w", path, err)
		}
		return nil
	}
	if stdoutIsTerminal() {
		return cli.Validation("refusing to write binary output to a terminal").
			WithHint("Redirect stdout or pass --output.")
	}
	if _, err := os.Stdout.Write(data); err != nil {
		return cli.Internal("write stdout: %w", err)
	}
	return nil
}

// emit writes data to w, highlighting text framings when highlight is
// set. Highlighting failures fall back to the plain bytes.
func emit(w io.Writer, data []byte, framing format.Format, highlight bool) error {
	if highlight && !framing.Binary() {
		if err := quick.Highlight(w, ensureNewline(string(data)), framing.String(), "terminal256", "monokai"); err == nil {
			return nil
		}
	}
	if _, err := w.Write(data); err != nil {
		return cli.Internal("write output: %w", err)
	}
	if !framing.Binary() && len(data) > 0 && data[len(data)-1] != '\n' {
		fmt.Fprintln(w)
	}
	return nil
}

func ensureNewline(text string) string {
	if len(text) > 0 && text[len(text)-1] != '\n' {
		return text + "\n"
	}
	return text
}
