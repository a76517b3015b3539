// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package nbtfile reads and writes NBT container files. Nearly all
// NBT on disk is compressed: level.dat and player dat files are
// gzip-wrapped, region-file chunks are zlib-wrapped (with LZ4 as a
// modern option), and servers occasionally emit uncompressed trees.
// This package sniffs the compression from the container's magic
// bytes and hands the inner payload to lib/nbt, so callers never
// branch on the wrapping themselves.
package nbtfile

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
	"github.com/pierrec/lz4/v4"

	"github.com/bureau-foundation/nbt/lib/nbt"
)

// Compression identifies the algorithm wrapping an NBT payload.
type Compression uint8

const (
	// CompressionNone indicates a bare NBT payload.
	CompressionNone Compression = 0

	// CompressionGzip indicates a gzip member (RFC 1952). The
	// convention for level.dat and player dat files.
	CompressionGzip Compression = 1

	// CompressionZlib indicates a zlib stream (RFC 1950). The
	// convention for chunk payloads inside region files.
	CompressionZlib Compression = 2

	// CompressionLZ4 indicates an LZ4 frame. Supported for region
	// chunks since Minecraft 1.20.5.
	CompressionLZ4 Compression = 3
)

// String returns the human-readable name of a compression scheme.
func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionGzip:
		return "gzip"
	case CompressionZlib:
		return "zlib"
	case CompressionLZ4:
		return "lz4"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(c))
	}
}

// ParseCompression parses a compression scheme from its string
// representation.
func ParseCompression(name string) (Compression, error) {
	switch name {
	case "none":
		return CompressionNone, nil
	case "gzip":
		return CompressionGzip, nil
	case "zlib":
		return CompressionZlib, nil
	case "lz4":
		return CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("unknown compression scheme: %q", name)
	}
}

// lz4FrameMagic is the little-endian encoding of 0x184D2204.
var lz4FrameMagic = []byte{0x04, 0x22, 0x4D, 0x18}

// Detect sniffs the compression scheme from the leading magic bytes.
// Anything unrecognized is reported as CompressionNone — a bare NBT
// payload starts with a tag byte in 0-12, which collides with none of
// the magics.
func Detect(data []byte) Compression {
	switch {
	case len(data) >= 2 && data[0] == 0x1F && data[1] == 0x8B:
		return CompressionGzip
	case len(data) >= 2 && data[0] == 0x78 && (uint16(data[0])<<8|uint16(data[1]))%31 == 0:
		return CompressionZlib
	case bytes.HasPrefix(data, lz4FrameMagic):
		return CompressionLZ4
	default:
		return CompressionNone
	}
}

// Decompress unwraps data according to its sniffed compression and
// returns the inner payload along with the scheme that was detected.
// For CompressionNone the input is returned unchanged (no copy).
func Decompress(data []byte) ([]byte, Compression, error) {
	scheme := Detect(data)
	switch scheme {
	case CompressionNone:
		return data, scheme, nil

	case CompressionGzip:
		reader, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, scheme, fmt.Errorf("gzip: %w", err)
		}
		defer reader.Close()
		inner, err := io.ReadAll(reader)
		if err != nil {
			return nil, scheme, fmt.Errorf("gzip: %w", err)
		}
		return inner, scheme, nil

	case CompressionZlib:
		reader, err := zlib.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, scheme, fmt.Errorf("zlib: %w", err)
		}
		defer reader.Close()
		inner, err := io.ReadAll(reader)
		if err != nil {
			return nil, scheme, fmt.Errorf("zlib: %w", err)
		}
		return inner, scheme, nil

	default:
		inner, err := io.ReadAll(lz4.NewReader(bytes.NewReader(data)))
		if err != nil {
			return nil, scheme, fmt.Errorf("lz4: %w", err)
		}
		return inner, scheme, nil
	}
}

// Compress wraps data with the given scheme. For CompressionNone the
// input is returned unchanged (no copy).
func Compress(data []byte, scheme Compression) ([]byte, error) {
	switch scheme {
	case CompressionNone:
		return data, nil

	case CompressionGzip:
		var buffer bytes.Buffer
		writer := gzip.NewWriter(&buffer)
		if _, err := writer.Write(data); err != nil {
			return nil, fmt.Errorf("gzip: %w", err)
		}
		if err := writer.Close(); err != nil {
			return nil, fmt.Errorf("gzip: %w", err)
		}
		return buffer.Bytes(), nil

	case CompressionZlib:
		var buffer bytes.Buffer
		writer := zlib.NewWriter(&buffer)
		if _, err := writer.Write(data); err != nil {
			return nil, fmt.Errorf("zlib: %w", err)
		}
		if err := writer.Close(); err != nil {
			return nil, fmt.Errorf("zlib: %w", err)
		}
		return buffer.Bytes(), nil

	case CompressionLZ4:
		var buffer bytes.Buffer
		writer := lz4.NewWriter(&buffer)
		if _, err := writer.Write(data); err != nil {
			return nil, fmt.Errorf("lz4: %w", err)
		}
		if err := writer.Close(); err != nil {
			return nil, fmt.Errorf("lz4: %w", err)
		}
		return buffer.Bytes(), nil

	default:
		return nil, fmt.Errorf("unsupported compression scheme: %d", scheme)
	}
}

// Read consumes r to the end, unwraps any compression, and decodes
// the named NBT root inside.
func Read(r io.Reader) (string, nbt.Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", nil, fmt.Errorf("read container: %w", err)
	}
	inner, _, err := Decompress(data)
	if err != nil {
		return "", nil, err
	}
	return nbt.DecodeNamed(inner)
}

// Write encodes v as a named NBT root, wraps it with the given
// scheme, and writes the container to w.
func Write(w io.Writer, name string, v nbt.Value, scheme Compression) error {
	payload, err := nbt.MarshalNamed(name, v)
	if err != nil {
		return err
	}
	wrapped, err := Compress(payload, scheme)
	if err != nil {
		return err
	}
	_, err = w.Write(wrapped)
	return err
}
