// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package envelope packs a framed document into a self-describing
// binary container for storage and transfer.
//
// An envelope is a fixed 44-byte header followed by the payload:
//
//	[Magic "SRLL": 4] [Version: 1] [Format: 1] [Compression: 1] [Flags: 1]
//	[Uncompressed length: 4, big endian] [Digest: 32] [Payload]
//
// The format byte is the [format.Format] the document was framed with,
// so an envelope can be unpacked without knowing how it was produced.
// The digest is a BLAKE3 keyed hash of the uncompressed framed bytes and
// is checked on every [Unpack].
//
// A sealed envelope ([FlagSealed]) carries its payload encrypted with
// XChaCha20-Poly1305:
//
//	[Nonce: 24] [Ciphertext+Tag: N+16]
//
// The encryption key is derived with HKDF-SHA256 from a 32-byte master
// [Key], and the whole header is authenticated as additional data, so
// flipping a format or compression byte fails decryption instead of
// producing garbage.
package envelope
