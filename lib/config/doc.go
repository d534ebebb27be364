// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides YAML configuration loading for the seriall
// command.
//
// Configuration is loaded from a single file named by either the
// SERIALL_CONFIG environment variable (via [Load]) or a --config flag
// (via [LoadFile]). There is no discovery and no per-field environment
// override: the file is the only source, layered over [Default].
//
// The envelope key file path supports ${VAR} and ${VAR:-default}
// expansion so one file can serve several machines.
//
// Key exports:
//
//   - [Config] -- master struct with Format, Envelope, Engine sections
//   - [Default] -- the configuration used when no file is given
//   - [Load] and [LoadFile] -- the two entry points for loading
//   - [Config.Options] -- the seriall options a configuration implies
package config
