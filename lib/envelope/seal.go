// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package envelope

import (
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/hkdf"
)

// SealOverhead is the payload growth of a sealed envelope: the nonce
// plus the Poly1305 tag.
const SealOverhead = chacha20poly1305.NonceSizeX + chacha20poly1305.Overhead

// hkdfInfoSeal is the HKDF info string for the payload key. Changing
// it invalidates every sealed envelope.
var hkdfInfoSeal = []byte("seriall.envelope.seal.v1")

// seal encrypts payload under a key derived from master, authenticating
// header. The result is nonce || ciphertext || tag.
func seal(payload []byte, master *Key, header []byte) ([]byte, error) {
	sealKey, err := deriveSealKey(master)
	if err != nil {
		return nil, err
	}
	defer sealKey.Close()

	aead, err := chacha20poly1305.NewX(sealKey.Bytes())
	if err != nil {
		return nil, fmt.Errorf("creating XChaCha20-Poly1305 cipher: %w", err)
	}

	output := make([]byte, chacha20poly1305.NonceSizeX, chacha20poly1305.NonceSizeX+len(payload)+aead.Overhead())
	if _, err := io.ReadFull(rand.Reader, output); err != nil {
		return nil, fmt.Errorf("generating random nonce: %w", err)
	}
	return aead.Seal(output, output[:chacha20poly1305.NonceSizeX], payload, header), nil
}

// open reverses seal.
func open(sealed []byte, master *Key, header []byte) ([]byte, error) {
	if len(sealed) < SealOverhead {
		return nil, fmt.Errorf("%w: sealed payload is %d bytes, minimum is %d",
			ErrTruncated, len(sealed), SealOverhead)
	}

	sealKey, err := deriveSealKey(master)
	if err != nil {
		return nil, err
	}
	defer sealKey.Close()

	aead, err := chacha20poly1305.NewX(sealKey.Bytes())
	if err != nil {
		return nil, fmt.Errorf("creating XChaCha20-Poly1305 cipher: %w", err)
	}

	nonce := sealed[:chacha20poly1305.NonceSizeX]
	plaintext, err := aead.Open(nil, nonce, sealed[chacha20poly1305.NonceSizeX:], header)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpenFailed, err)
	}
	return plaintext, nil
}

// deriveSealKey runs HKDF-SHA256 over the master key. The salt is nil:
// master keys are uniformly random.
func deriveSealKey(master *Key) (*Key, error) {
	reader := hkdf.New(sha256.New, master.Bytes(), nil, hkdfInfoSeal)
	derived := make([]byte, KeySize)
	if _, err := io.ReadFull(reader, derived); err != nil {
		clear(derived)
		return nil, fmt.Errorf("HKDF key derivation failed: %w", err)
	}
	return NewKey(derived)
}
