// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command-line framework for the seriall
// command.
//
// The central type is [Command], which represents a named subcommand
// with optional nested [Command.Subcommands], a parameter struct whose
// tagged fields become pflag flags ([FlagsFromParams]), and a Run
// function that receives a context and a scoped logger. Commands are
// assembled into a tree in cmd/seriall and dispatched via
// [Command.Execute], which handles flag parsing, subcommand routing,
// and structured help output with examples.
//
// When a user types an unknown subcommand or flag, the framework
// computes Levenshtein edit distance against all known names and
// suggests the closest match (threshold: distance <= 3).
//
// Errors returned by commands are either categorized [ToolError]s
// (validation, not found, internal) or an [ExitError] for commands
// that already printed their own diagnosis and only need a non-zero
// exit status.
//
// Embeddable parameter structs add common flags: [JSONOutput] for
// --json and [ConfigFile] for --config.
package cli
