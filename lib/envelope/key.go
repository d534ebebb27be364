// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package envelope

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"sync"

	"golang.org/x/sys/unix"
)

// KeySize is the size of master and derived keys.
const KeySize = 32

// Key holds key material outside the Go heap: an anonymous mmap region
// that is locked against swap and excluded from core dumps. Close
// zeroes and releases it; any read after Close panics.
//
// A Key must not be copied after creation.
type Key struct {
	mu     sync.Mutex
	data   []byte
	closed bool
}

func newKey() (*Key, error) {
	data, err := unix.Mmap(-1, 0, KeySize, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
	if err != nil {
		return nil, fmt.Errorf("envelope: mmap failed: %w", err)
	}
	if err := unix.Mlock(data); err != nil {
		unix.Munmap(data)
		return nil, fmt.Errorf("envelope: mlock failed: %w", err)
	}
	if err := unix.Madvise(data, unix.MADV_DONTDUMP); err != nil {
		unix.Munlock(data)
		unix.Munmap(data)
		return nil, fmt.Errorf("envelope: madvise(MADV_DONTDUMP) failed: %w", err)
	}
	return &Key{data: data}, nil
}

// NewKey copies source into a protected Key and zeroes source in place.
// source must be exactly [KeySize] bytes.
func NewKey(source []byte) (*Key, error) {
	if len(source) != KeySize {
		return nil, fmt.Errorf("envelope: key must be %d bytes, got %d", KeySize, len(source))
	}
	key, err := newKey()
	if err != nil {
		return nil, err
	}
	copy(key.data, source)
	clear(source)
	return key, nil
}

// GenerateKey returns a random master key.
func GenerateKey() (*Key, error) {
	key, err := newKey()
	if err != nil {
		return nil, err
	}
	if _, err := io.ReadFull(rand.Reader, key.data); err != nil {
		key.Close()
		return nil, fmt.Errorf("envelope: generating key: %w", err)
	}
	return key, nil
}

// LoadKeyFile reads a master key from path. The file holds either the
// 32 raw key bytes or their hex encoding; surrounding whitespace is
// ignored for the hex form.
func LoadKeyFile(path string) (*Key, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading key file: %w", err)
	}
	defer clear(content)

	if len(content) == KeySize {
		return NewKey(content)
	}

	trimmed := bytes.TrimSpace(content)
	if len(trimmed) != hex.EncodedLen(KeySize) {
		return nil, fmt.Errorf("key file %s: want %d raw bytes or %d hex characters, got %d bytes",
			path, KeySize, hex.EncodedLen(KeySize), len(content))
	}
	decoded := make([]byte, KeySize)
	if _, err := hex.Decode(decoded, trimmed); err != nil {
		clear(decoded)
		return nil, fmt.Errorf("key file %s: %w", path, err)
	}
	return NewKey(decoded)
}

// Bytes returns the key material. The slice points into the protected
// region and must not outlive the Key. Panics after Close.
func (k *Key) Bytes() []byte {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.closed {
		panic("envelope: read from closed key")
	}
	return k.data
}

// Close zeroes, unlocks, and unmaps the key. Idempotent.
func (k *Key) Close() error {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.closed {
		return nil
	}
	k.closed = true
	clear(k.data)

	var firstError error
	if err := unix.Munlock(k.data); err != nil {
		firstError = fmt.Errorf("envelope: munlock failed: %w", err)
	}
	if err := unix.Munmap(k.data); err != nil && firstError == nil {
		firstError = fmt.Errorf("envelope: munmap failed: %w", err)
	}
	k.data = nil
	return firstError
}
