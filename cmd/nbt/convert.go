// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"os"

	gocbor "github.com/fxamacker/cbor/v2"
	"github.com/spf13/pflag"

	"github.com/bureau-foundation/nbt/lib/nbt"
)

// cborEncMode uses Core Deterministic Encoding (RFC 8949 §4.2):
// sorted map keys, smallest integer encoding, no indefinite-length
// items. The same NBT input always converts to identical CBOR bytes.
var cborEncMode gocbor.EncMode

func init() {
	var err error
	cborEncMode, err = gocbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("nbt: CBOR encoder initialization failed: " + err.Error())
	}
}

func runConvertCBOR(args []string) error {
	var hexMode bool

	flags := pflag.NewFlagSet("cbor", pflag.ContinueOnError)
	flags.BoolVarP(&hexMode, "hex", "x", false, "treat input as hex-encoded bytes")
	if err := flags.Parse(args); err != nil {
		return err
	}

	data, remaining, err := readInput(flags.Args(), hexMode)
	if err != nil {
		return err
	}
	if len(remaining) > 0 {
		return fmt.Errorf("cbor takes no positional arguments besides an optional file path, got %q", remaining[0])
	}

	return convertCBOR(data, os.Stdout)
}

// convertCBOR decodes the NBT payload in data and writes the
// equivalent CBOR to w. The output is binary; pipe it to a CBOR
// diagnostic tool or xxd to inspect.
func convertCBOR(data []byte, w io.Writer) error {
	value, err := nbt.Decode(data)
	if err != nil {
		return err
	}

	native, err := toNative(value)
	if err != nil {
		return err
	}

	encoded, err := cborEncMode.Marshal(native)
	if err != nil {
		return fmt.Errorf("encode CBOR: %w", err)
	}

	_, err = w.Write(encoded)
	return err
}
