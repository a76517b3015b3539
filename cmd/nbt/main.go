// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// nbt is a command-line tool for inspecting NBT data, the tag-prefixed
// binary format used by Minecraft: Java Edition. Compressed containers
// (gzip, zlib, LZ4) are unwrapped transparently.
//
// Subcommands:
//
//   - decode: convert NBT to JSON or YAML.
//   - diag: convert NBT to SNBT notation, which preserves the wire
//     kinds (integer widths, array kinds) that JSON flattens.
//   - cbor: convert NBT to deterministically-encoded CBOR.
//
// All subcommands accept input from stdin or from a trailing file path
// argument. The --hex flag treats input as hex-encoded bytes for
// debugging wire dumps.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "nbt: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		printUsage(os.Stderr)
		return fmt.Errorf("missing subcommand")
	}

	switch args[0] {
	case "decode":
		return runDecode(args[1:])
	case "diag":
		return runDiag(args[1:])
	case "cbor":
		return runConvertCBOR(args[1:])
	case "help", "-h", "--help":
		printUsage(os.Stdout)
		return nil
	default:
		printUsage(os.Stderr)
		return fmt.Errorf("unknown subcommand %q", args[0])
	}
}

func printUsage(w *os.File) {
	fmt.Fprint(w, `Usage: nbt <subcommand> [flags] [file]

Inspect NBT data. Input is read from stdin, or from a trailing file
path. Compressed containers (gzip, zlib, LZ4) are detected and
unwrapped automatically.

Subcommands:
  decode    convert NBT to JSON (default) or YAML
  diag      convert NBT to SNBT diagnostic notation
  cbor      convert NBT to CBOR

Examples:
  nbt decode level.dat
  nbt decode -o yaml < level.dat
  nbt diag player.dat
  nbt cbor level.dat > level.cbor
`)
}
