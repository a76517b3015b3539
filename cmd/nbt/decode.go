// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/nbt/lib/nbt"
)

func runDecode(args []string) error {
	var (
		compact bool
		output  string
		hexMode bool
	)

	flags := pflag.NewFlagSet("decode", pflag.ContinueOnError)
	flags.BoolVarP(&compact, "compact", "c", false, "compact JSON output (no indentation)")
	flags.StringVarP(&output, "output", "o", "json", "output format: json or yaml")
	flags.BoolVarP(&hexMode, "hex", "x", false, "treat input as hex-encoded bytes")
	if err := flags.Parse(args); err != nil {
		return err
	}

	data, remaining, err := readInput(flags.Args(), hexMode)
	if err != nil {
		return err
	}
	if len(remaining) > 0 {
		return fmt.Errorf("decode takes no positional arguments besides an optional file path, got %q", remaining[0])
	}

	return decodeNBT(data, os.Stdout, output, compact)
}

// decodeNBT decodes the NBT payload in data and writes it to w in the
// requested format.
func decodeNBT(data []byte, w io.Writer, output string, compact bool) error {
	value, err := nbt.Decode(data)
	if err != nil {
		return err
	}

	native, err := toNative(value)
	if err != nil {
		return err
	}

	switch output {
	case "json":
		return writeJSON(w, native, compact)
	case "yaml":
		encoded, err := yaml.Marshal(native)
		if err != nil {
			return fmt.Errorf("encode YAML: %w", err)
		}
		_, err = w.Write(encoded)
		return err
	default:
		return fmt.Errorf("unknown output format %q (want json or yaml)", output)
	}
}

// writeJSON encodes value as JSON and writes it to w with a trailing
// newline. When compact is false, output is pretty-printed with
// 2-space indentation.
func writeJSON(w io.Writer, value any, compact bool) error {
	var encoded []byte
	var err error
	if compact {
		encoded, err = json.Marshal(value)
	} else {
		encoded, err = json.MarshalIndent(value, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}

	_, err = fmt.Fprintln(w, string(encoded))
	return err
}
