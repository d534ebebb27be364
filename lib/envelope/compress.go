// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package envelope

import (
	"errors"
	"fmt"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/bureau-foundation/seriall/lib/format"
)

// Compression identifies the algorithm applied to an envelope payload.
// The values are stored in the header and must not change.
type Compression uint8

const (
	// CompressionNone stores the framed document as is. Pack falls back
	// to it whenever compression would not shrink the payload.
	CompressionNone Compression = 0

	// CompressionLZ4 is LZ4 block compression. Cheap to decode, modest
	// ratio; suited to CBOR documents.
	CompressionLZ4 Compression = 1

	// CompressionZstd is zstd at the default level. The better choice
	// for the text formats, where property names and tags repeat.
	CompressionZstd Compression = 2
)

// Compressions lists every compression in tag order.
func Compressions() []Compression {
	return []Compression{CompressionNone, CompressionLZ4, CompressionZstd}
}

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionLZ4:
		return "lz4"
	case CompressionZstd:
		return "zstd"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(c))
	}
}

// Valid reports whether c is a known compression.
func (c Compression) Valid() bool {
	return c <= CompressionZstd
}

// ParseCompression parses a compression name as printed by String.
func ParseCompression(name string) (Compression, error) {
	switch name {
	case "none":
		return CompressionNone, nil
	case "lz4":
		return CompressionLZ4, nil
	case "zstd":
		return CompressionZstd, nil
	default:
		return 0, fmt.Errorf("unknown compression %q (want none, lz4, or zstd)", name)
	}
}

// SelectCompression picks a compression for a framed document. Text
// framings go straight to zstd. Binary framings are probed: zstd when
// it reaches a 1.5x ratio, LZ4 above 1.1x, none below that.
func SelectCompression(framed []byte, framing format.Format) Compression {
	if len(framed) == 0 {
		return CompressionNone
	}
	if !framing.Binary() {
		return CompressionZstd
	}

	compressed := zstdEncoder.EncodeAll(framed, nil)
	ratio := float64(len(framed)) / float64(len(compressed))
	switch {
	case ratio >= 1.5:
		return CompressionZstd
	case ratio >= 1.1:
		return CompressionLZ4
	default:
		return CompressionNone
	}
}

// compress applies c to data. It returns errIncompressible when the
// result would not be smaller than the input.
func compress(data []byte, c Compression) ([]byte, error) {
	switch c {
	case CompressionNone:
		return data, nil
	case CompressionLZ4:
		return compressLZ4(data)
	case CompressionZstd:
		return compressZstd(data)
	default:
		return nil, fmt.Errorf("unsupported compression: %s", c)
	}
}

// decompress reverses compress. uncompressedSize comes from the header
// and must match exactly.
func decompress(compressed []byte, c Compression, uncompressedSize int) ([]byte, error) {
	switch c {
	case CompressionNone:
		if len(compressed) != uncompressedSize {
			return nil, fmt.Errorf("uncompressed payload: size %d does not match expected %d",
				len(compressed), uncompressedSize)
		}
		return compressed, nil
	case CompressionLZ4:
		return decompressLZ4(compressed, uncompressedSize)
	case CompressionZstd:
		return decompressZstd(compressed, uncompressedSize)
	default:
		return nil, fmt.Errorf("unsupported compression: %s", c)
	}
}

func compressLZ4(data []byte) ([]byte, error) {
	destination := make([]byte, lz4.CompressBlockBound(len(data)))
	written, err := lz4.CompressBlock(data, destination, nil)
	if err != nil {
		return nil, fmt.Errorf("lz4 compress: %w", err)
	}
	// CompressBlock reports 0 for incompressible input.
	if written == 0 || written >= len(data) {
		return nil, errIncompressible
	}
	return destination[:written], nil
}

// lz4MaxRatio bounds LZ4 block expansion: a length byte of 255 in a
// match run yields at most 255 output bytes.
const lz4MaxRatio = 255

func decompressLZ4(compressed []byte, uncompressedSize int) ([]byte, error) {
	if uncompressedSize > lz4MaxRatio*len(compressed) {
		return nil, fmt.Errorf("lz4 decompress: %d payload bytes cannot expand to %d", len(compressed), uncompressedSize)
	}
	destination := make([]byte, uncompressedSize)
	read, err := lz4.UncompressBlock(compressed, destination)
	if err != nil {
		return nil, fmt.Errorf("lz4 decompress: %w", err)
	}
	if read != uncompressedSize {
		return nil, fmt.Errorf("lz4 decompress: got %d bytes, expected %d", read, uncompressedSize)
	}
	return destination, nil
}

// zstd.Encoder and zstd.Decoder are safe for concurrent use with
// EncodeAll and DecodeAll.
var (
	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder
)

func init() {
	var err error
	zstdEncoder, err = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		panic("envelope: zstd encoder initialization failed: " + err.Error())
	}
	zstdDecoder, err = zstd.NewReader(nil, zstd.WithDecoderMaxMemory(MaxDocumentSize))
	if err != nil {
		panic("envelope: zstd decoder initialization failed: " + err.Error())
	}
}

func compressZstd(data []byte) ([]byte, error) {
	compressed := zstdEncoder.EncodeAll(data, nil)
	if len(compressed) >= len(data) {
		return nil, errIncompressible
	}
	return compressed, nil
}

// zstdHintRatio caps the preallocation for zstd payloads.
const zstdHintRatio = 16

func decompressZstd(compressed []byte, uncompressedSize int) ([]byte, error) {
	// The declared size is only a capacity hint; DecodeAll grows the
	// buffer as frames actually decode.
	result, err := zstdDecoder.DecodeAll(compressed, make([]byte, 0, min(uncompressedSize, zstdHintRatio*len(compressed))))
	if err != nil {
		return nil, fmt.Errorf("zstd decompress: %w", err)
	}
	if len(result) != uncompressedSize {
		return nil, fmt.Errorf("zstd decompress: got %d bytes, expected %d", len(result), uncompressedSize)
	}
	return result, nil
}

var errIncompressible = errors.New("data is incompressible")
