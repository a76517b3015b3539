// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/nbt/lib/nbt"
)

func runDiag(args []string) error {
	var hexMode bool

	flags := pflag.NewFlagSet("diag", pflag.ContinueOnError)
	flags.BoolVarP(&hexMode, "hex", "x", false, "treat input as hex-encoded bytes")
	if err := flags.Parse(args); err != nil {
		return err
	}

	data, remaining, err := readInput(flags.Args(), hexMode)
	if err != nil {
		return err
	}
	if len(remaining) > 0 {
		return fmt.Errorf("diag takes no positional arguments besides an optional file path, got %q", remaining[0])
	}

	return diagNBT(data, os.Stdout)
}

// diagNBT writes the SNBT notation for the NBT payload in data to w.
// Unlike JSON output, SNBT preserves the wire kinds: integer widths
// carry suffixes (5b, 3s, 7, 9L) and the three array kinds are
// distinguished from lists ([B;...], [I;...], [L;...]).
func diagNBT(data []byte, w io.Writer) error {
	value, err := nbt.Decode(data)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, nbt.Snbt(value))
	return err
}
