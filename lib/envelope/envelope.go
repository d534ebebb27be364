// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package envelope

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/bureau-foundation/seriall/lib/format"
	"github.com/bureau-foundation/seriall/lib/pure"
)

// Magic opens every envelope.
var Magic = [4]byte{'S', 'R', 'L', 'L'}

// Version is the only header version this package reads and writes.
const Version byte = 1

// HeaderSize is the fixed header length.
const HeaderSize = 4 + 1 + 1 + 1 + 1 + 4 + len(Digest{})

// MaxDocumentSize bounds the uncompressed document an envelope holds.
// Headers declaring more are rejected before any payload is touched.
const MaxDocumentSize = 1 << 30

// documentLimit is MaxDocumentSize; tests lower it.
var documentLimit uint64 = MaxDocumentSize

// Flags is the header flag byte.
type Flags uint8

const (
	// FlagSealed marks an encrypted payload.
	FlagSealed Flags = 1 << 0

	knownFlags = FlagSealed
)

var (
	ErrBadMagic           = errors.New("not an envelope")
	ErrUnsupportedVersion = errors.New("unsupported envelope version")
	ErrTruncated          = errors.New("envelope truncated")
	ErrDigestMismatch     = errors.New("envelope digest mismatch")
	ErrKeyRequired        = errors.New("envelope is sealed and no key was given")
	ErrOpenFailed         = errors.New("cannot open sealed envelope (wrong key or tampered data)")
	ErrTooLarge           = errors.New("envelope document too large")
)

// Header is the decoded fixed-size envelope header.
type Header struct {
	Version     byte
	Format      format.Format
	Compression Compression
	Flags       Flags

	// Length is the size of the uncompressed framed document.
	Length uint32
	Digest Digest
}

// Sealed reports whether the payload is encrypted.
func (h Header) Sealed() bool {
	return h.Flags&FlagSealed != 0
}

// MarshalBinary encodes the header.
func (h Header) MarshalBinary() ([]byte, error) {
	header := make([]byte, 0, HeaderSize)
	header = append(header, Magic[:]...)
	header = append(header, h.Version, byte(h.Format), byte(h.Compression), byte(h.Flags))
	header = binary.BigEndian.AppendUint32(header, h.Length)
	header = append(header, h.Digest[:]...)
	return header, nil
}

// ReadHeader decodes the header at the start of data without touching
// the payload.
func ReadHeader(data []byte) (Header, error) {
	var header Header
	if len(data) < len(Magic) || !bytes.Equal(data[:len(Magic)], Magic[:]) {
		return header, ErrBadMagic
	}
	if len(data) < HeaderSize {
		return header, fmt.Errorf("%w: %d bytes, header needs %d", ErrTruncated, len(data), HeaderSize)
	}

	header.Version = data[4]
	if header.Version != Version {
		return header, fmt.Errorf("%w: %d (expected %d)", ErrUnsupportedVersion, header.Version, Version)
	}
	header.Format = format.Format(data[5])
	if !header.Format.Valid() {
		return header, fmt.Errorf("envelope format tag %d is unknown", data[5])
	}
	header.Compression = Compression(data[6])
	if !header.Compression.Valid() {
		return header, fmt.Errorf("envelope compression tag %d is unknown", data[6])
	}
	header.Flags = Flags(data[7])
	if header.Flags&^knownFlags != 0 {
		return header, fmt.Errorf("envelope flags %#02x include unknown bits", data[7])
	}
	header.Length = binary.BigEndian.Uint32(data[8:12])
	if uint64(header.Length) > documentLimit {
		return header, fmt.Errorf("%w: header declares %d bytes, limit is %d", ErrTooLarge, header.Length, documentLimit)
	}
	copy(header.Digest[:], data[12:HeaderSize])
	return header, nil
}

// PackOptions control [Pack].
type PackOptions struct {
	// Format is the framing the document was produced with.
	Format format.Format

	// Compression is the preferred compression. Payloads it cannot
	// shrink are stored uncompressed.
	Compression Compression

	// Key seals the envelope when non-nil. The key is borrowed.
	Key *Key
}

// Pack wraps a framed document in an envelope.
func Pack(framed []byte, options PackOptions) ([]byte, error) {
	if !options.Format.Valid() {
		return nil, fmt.Errorf("pack: unknown format %s", options.Format)
	}
	if uint64(len(framed)) > documentLimit {
		return nil, fmt.Errorf("pack: %w: document is %d bytes, limit is %d", ErrTooLarge, len(framed), documentLimit)
	}

	compression := options.Compression
	payload, err := compress(framed, compression)
	if errors.Is(err, errIncompressible) {
		payload, compression = framed, CompressionNone
	} else if err != nil {
		return nil, fmt.Errorf("pack: %w", err)
	}

	header := Header{
		Version:     Version,
		Format:      options.Format,
		Compression: compression,
		Length:      uint32(len(framed)),
		Digest:      DigestDocument(framed),
	}
	if options.Key != nil {
		header.Flags |= FlagSealed
	}
	encoded, err := header.MarshalBinary()
	if err != nil {
		return nil, err
	}

	if options.Key != nil {
		payload, err = seal(payload, options.Key, encoded)
		if err != nil {
			return nil, fmt.Errorf("pack: %w", err)
		}
	}
	return append(encoded, payload...), nil
}

// Envelope is an unpacked envelope.
type Envelope struct {
	Header Header

	// Framed is the verified, decompressed document in Header.Format.
	Framed []byte
}

// Document parses the framed document.
func (e *Envelope) Document() (pure.Document, error) {
	return format.Unmarshal(e.Framed, e.Header.Format)
}

// Unpack verifies and opens an envelope. key is required for sealed
// envelopes and ignored otherwise.
func Unpack(data []byte, key *Key) (*Envelope, error) {
	header, err := ReadHeader(data)
	if err != nil {
		return nil, err
	}

	payload := data[HeaderSize:]
	if header.Sealed() {
		if key == nil {
			return nil, ErrKeyRequired
		}
		payload, err = open(payload, key, data[:HeaderSize])
		if err != nil {
			return nil, err
		}
	}

	framed, err := decompress(payload, header.Compression, int(header.Length))
	if err != nil {
		return nil, fmt.Errorf("unpack: %w", err)
	}
	if DigestDocument(framed) != header.Digest {
		return nil, ErrDigestMismatch
	}
	return &Envelope{Header: header, Framed: framed}, nil
}
