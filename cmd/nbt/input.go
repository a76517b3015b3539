// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"unicode"

	"github.com/bureau-foundation/nbt/lib/nbt"
	"github.com/bureau-foundation/nbt/lib/nbtfile"
)

// readInput resolves input from either a file (the last positional
// argument, if it names a regular file) or stdin, optionally decoding
// hex first, and unwraps any container compression. Returns the bare
// NBT payload and the arguments with a consumed file path removed.
func readInput(args []string, hexMode bool) ([]byte, []string, error) {
	var data []byte
	remaining := args

	if length := len(args); length > 0 {
		candidate := args[length-1]
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			data, err = os.ReadFile(candidate)
			if err != nil {
				return nil, nil, fmt.Errorf("read %s: %w", candidate, err)
			}
			remaining = args[:length-1]
		}
	}

	if data == nil {
		var err error
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			return nil, nil, fmt.Errorf("read stdin: %w", err)
		}
	}

	if len(data) == 0 {
		return nil, nil, fmt.Errorf("empty input: expected NBT data")
	}

	if hexMode {
		decoded, err := decodeHexInput(data)
		if err != nil {
			return nil, nil, err
		}
		data = decoded
	}

	payload, _, err := nbtfile.Decompress(data)
	if err != nil {
		return nil, nil, err
	}
	return payload, remaining, nil
}

// decodeHexInput strips whitespace from hex-encoded input and decodes
// it to binary. Whitespace between digit pairs is allowed ("0a 00 00"
// or "0a0000").
func decodeHexInput(data []byte) ([]byte, error) {
	cleaned := bytes.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, data)

	if len(cleaned) == 0 {
		return nil, fmt.Errorf("empty input after stripping whitespace from hex")
	}

	decoded := make([]byte, hex.DecodedLen(len(cleaned)))
	count, err := hex.Decode(decoded, cleaned)
	if err != nil {
		return nil, fmt.Errorf("decode hex: %w", err)
	}
	return decoded[:count], nil
}

// toNative recursively converts a decoded NBT value to plain Go types
// for JSON, YAML, and CBOR output. Width information is lost (that is
// what "nbt diag" is for); compound entries become map keys, arrays
// and lists become slices.
func toNative(v nbt.Value) (any, error) {
	switch value := v.(type) {
	case nbt.Byte:
		return int8(value), nil
	case nbt.Short:
		return int16(value), nil
	case nbt.Int:
		return int32(value), nil
	case nbt.Long:
		return int64(value), nil
	case nbt.Float:
		return float32(value), nil
	case nbt.Double:
		return float64(value), nil
	case nbt.String:
		return string(value), nil
	case nbt.ByteArray:
		return value.Slice()
	case nbt.IntArray:
		return value.Slice()
	case nbt.LongArray:
		return value.Slice()
	case nbt.List:
		elems := make([]any, len(value.Elems))
		for i, elem := range value.Elems {
			native, err := toNative(elem)
			if err != nil {
				return nil, err
			}
			elems[i] = native
		}
		return elems, nil
	case nbt.Compound:
		result := make(map[string]any, len(value))
		for name, elem := range value {
			native, err := toNative(elem)
			if err != nil {
				return nil, err
			}
			result[name] = native
		}
		return result, nil
	default:
		return nil, fmt.Errorf("unhandled value kind %s", v.Tag())
	}
}
