// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/bureau-foundation/seriall/cmd/seriall/cli"
)

func rootCommand() *cli.Command {
	return &cli.Command{
		Name:    "seriall",
		Summary: "Identity-preserving object graph documents",
		Description: `Seriall converts, inspects, validates, and packages pure documents:
the flat node lists produced when an object graph is serialized with
shared references, cycles, classes, and adapters intact.

Every command reads a single document from a file argument or stdin.`,
		Subcommands: []*cli.Command{
			convertCommand(),
			inspectCommand(),
			validateCommand(),
			packCommand(),
			unpackCommand(),
			versionCommand(),
		},
		Examples: []cli.Example{
			{
				Description: "Convert a JSON document to YAML",
				Command:     "seriall convert --to yaml graph.json",
			},
			{
				Description: "Show the node table of a CBOR document",
				Command:     "seriall inspect graph.cbor",
			},
			{
				Description: "Pack a document into a sealed envelope",
				Command:     "seriall pack --key-file master.key -o graph.srll graph.json",
			},
		},
	}
}
