// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for seriall packages.
//
// [WriteFile] places a fixture (a config file, a key file, a framed
// document) in the test's temporary directory and returns its path.
//
// All helpers call t.Fatalf on failure rather than returning errors,
// since test setup failures are not recoverable.
//
// This package has no seriall-internal dependencies.
package testutil
