// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Seriall is the command-line interface for pure documents: the flat,
// index-linked node lists that the seriall library produces from
// object graphs.
//
// Subcommands:
//
//   - convert: re-frame a document between JSON, YAML, TOML, and CBOR
//   - inspect: list a document's nodes and per-tag statistics
//   - validate: check structure, optionally resolving every reference
//     against the built-in context
//   - pack / unpack: wrap a framed document in a compressed,
//     digest-checked, optionally sealed envelope
//   - version: print build information
//
// Input is read from the single positional file argument, or from
// stdin when none is given. The input framing comes from --from, the
// file extension, or a sniff of the content, in that order; the
// configured default is the last resort.
//
// Configuration is read from --config or $SERIALL_CONFIG (see
// lib/config). Text output is syntax-highlighted when stdout is a
// terminal.
package main
