// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package envelope

import (
	"encoding/hex"
	"fmt"

	"github.com/zeebo/blake3"
)

// Digest is the 32-byte BLAKE3 digest stored in an envelope header.
type Digest [32]byte

// documentDomainKey separates envelope digests from any other BLAKE3
// use of the same bytes. It is the ASCII domain name, zero-padded.
var documentDomainKey = [32]byte{
	's', 'e', 'r', 'i', 'a', 'l', 'l', '.', 'e', 'n', 'v', 'e', 'l', 'o', 'p', 'e', '.',
	'd', 'o', 'c', 'u', 'm', 'e', 'n', 't', 0, 0, 0, 0, 0, 0, 0,
}

// DigestDocument computes the digest of a framed document.
func DigestDocument(framed []byte) Digest {
	hasher, err := blake3.NewKeyed(documentDomainKey[:])
	if err != nil {
		// Only a wrong key length fails, and the key is fixed-size.
		panic("envelope: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	hasher.Write(framed)
	var digest Digest
	copy(digest[:], hasher.Sum(nil))
	return digest
}

// String returns the hex encoding.
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// ParseDigest parses a 64-character hex string.
func ParseDigest(text string) (Digest, error) {
	var digest Digest
	decoded, err := hex.DecodeString(text)
	if err != nil {
		return digest, fmt.Errorf("parsing digest: %w", err)
	}
	if len(decoded) != len(digest) {
		return digest, fmt.Errorf("digest is %d bytes, want %d", len(decoded), len(digest))
	}
	copy(digest[:], decoded)
	return digest, nil
}
