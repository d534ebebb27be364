// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/bureau-foundation/seriall/cmd/seriall/cli"
	"github.com/bureau-foundation/seriall/lib/format"
	"github.com/bureau-foundation/seriall/lib/pure"
)

type inspectParams struct {
	cli.ConfigFile
	cli.JSONOutput
	From *format.Format `json:"from" flag:"from" desc:"input framing (default: from extension or content)"`
}

// inspectNode is one row of the node table.
type inspectNode struct {
	Index   int    `json:"index"`
	Tag     string `json:"tag"`
	Summary string `json:"summary"`
}

// inspectResult is the JSON form of inspect output.
type inspectResult struct {
	Format string        `json:"format"`
	Nodes  []inspectNode `json:"nodes"`
	Stats  pure.Stats    `json:"stats"`

	// Problem is the structural validation failure, if any.
	Problem string `json:"problem,omitempty"`
}

func inspectCommand() *cli.Command {
	var params inspectParams

	return &cli.Command{
		Name:    "inspect",
		Summary: "Show a document's nodes and statistics",
		Description: `List every node of a pure document with its index, tag, and a
one-line summary, followed by per-tag counts and the palette keys and
adapter names the document refers to.

Index 0 is the root. Structural problems are reported but do not stop
the listing; use "seriall validate" for a pass/fail check.`,
		Usage: "seriall inspect [--json] [file]",
		Examples: []cli.Example{
			{
				Description: "Node table of a CBOR document",
				Command:     "seriall inspect graph.cbor",
			},
			{
				Description: "Statistics as JSON",
				Command:     "seriall inspect --json graph.yaml | jq .stats",
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
			document, err := decodeInput(in, framing)
			if err != nil {
				return err
			}

			result := inspectDocument(document, framing)
			if emitted, err := params.EmitJSON(os.Stdout, result); emitted {
				return err
			}
			return writeInspection(os.Stdout, result, painter{styled: stdoutIsTerminal()})
		},
	}
}

func inspectDocument(document pure.Document, framing format.Format) inspectResult {
	result := inspectResult{
		Format: framing.String(),
		Nodes:  make([]inspectNode, len(document)),
		Stats:  document.Stats(),
	}
	for index, node := range document {
		tag := "missing"
		if node != nil {
			tag = node.Tag().String()
		}
		result.Nodes[index] = inspectNode{Index: index, Tag: tag, Summary: pure.Summary(node)}
	}
	if err := pure.Validate(document); err != nil {
		result.Problem = err.Error()
	}
	return result
}

// writeInspection renders the node table and statistics.
func writeInspection(w io.Writer, result inspectResult, paint painter) error {
	indexWidth := len("INDEX")
	tagWidth := len("TAG")
	for _, node := range result.Nodes {
		indexWidth = max(indexWidth, len(strconv.Itoa(node.Index))+1)
		tagWidth = max(tagWidth, len(node.Tag))
	}

	var builder strings.Builder
	builder.WriteString(paint.render(headerStyle, fmt.Sprintf("%-*s  %-*s  %s", indexWidth, "INDEX", tagWidth, "TAG", "SUMMARY")))
	builder.WriteString("\n")
	for _, node := range result.Nodes {
		index := fmt.Sprintf("%-*s", indexWidth, "#"+strconv.Itoa(node.Index))
		tag := fmt.Sprintf("%-*s", tagWidth, node.Tag)
		fmt.Fprintf(&builder, "%s  %s  %s\n",
			paint.render(indexStyle, index), paint.tag(tagFromName(node.Tag), tag), node.Summary)
	}

	stats := result.Stats
	fmt.Fprintf(&builder, "\n%s\n", paint.render(headerStyle,
		fmt.Sprintf("%d nodes, %d properties (%s)", stats.Nodes, stats.Properties, result.Format)))
	for _, tag := range pure.Tags() {
		if count := stats.Tags[tag.String()]; count > 0 {
			fmt.Fprintf(&builder, "  %s  %d\n", paint.tag(tag, fmt.Sprintf("%-*s", len("ref-adapter"), tag)), count)
		}
	}
	if len(stats.Values) > 0 {
		fmt.Fprintf(&builder, "palette keys: %s\n", countList(stats.Values))
	}
	if len(stats.Adapters) > 0 {
		fmt.Fprintf(&builder, "adapters: %s\n", countList(stats.Adapters))
	}
	if result.Problem != "" {
		fmt.Fprintf(&builder, "%s %s\n", paint.render(invalidStyle, "invalid:"), result.Problem)
	}

	if _, err := io.WriteString(w, builder.String()); err != nil {
		return cli.Internal("write output: %w", err)
	}
	return nil
}

func tagFromName(name string) pure.Tag {
	for _, tag := range pure.Tags() {
		if tag.String() == name {
			return tag
		}
	}
	return -1
}

// countList renders {"b":1,"a":2} as "a (2), b (1)".
func countList(counts map[string]int) string {
	names := slices.Sorted(maps.Keys(counts))
	parts := make([]string, len(names))
	for position, name := range names {
		parts[position] = fmt.Sprintf("%s (%d)", name, counts[name])
	}
	return strings.Join(parts, ", ")
}
