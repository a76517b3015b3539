// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"testing"

	"github.com/bureau-foundation/nbt/lib/nbt"
)

func TestDecodeHexInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []byte
	}{
		{"plain", "0a0000", []byte{10, 0, 0}},
		{"spaced", "0a 00 00", []byte{10, 0, 0}},
		{"multiline", "0a\n00\n00\n", []byte{10, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeHexInput([]byte(tt.input))
			if err != nil {
				t.Fatalf("decodeHexInput: %v", err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("decoded % x, want % x", got, tt.want)
			}
		})
	}
}

func TestDecodeHexInputInvalid(t *testing.T) {
	if _, err := decodeHexInput([]byte("zz")); err == nil {
		t.Error("expected an error for non-hex input")
	}
	if _, err := decodeHexInput([]byte("  \n ")); err == nil {
		t.Error("expected an error for whitespace-only input")
	}
}

func TestToNativePreservesStructure(t *testing.T) {
	native, err := toNative(nbt.Compound{
		"ids":  nbt.IntArrayOf(1, -1),
		"list": nbt.List{ElementTag: nbt.TagString, Elems: []nbt.Value{nbt.String("a")}},
	})
	if err != nil {
		t.Fatalf("toNative: %v", err)
	}

	result := native.(map[string]any)
	ids := result["ids"].([]int32)
	if len(ids) != 2 || ids[0] != 1 || ids[1] != -1 {
		t.Errorf("ids = %v", ids)
	}
	list := result["list"].([]any)
	if len(list) != 1 || list[0] != "a" {
		t.Errorf("list = %v", list)
	}
}

func TestToNativeTruncatedBorrow(t *testing.T) {
	// A truncated borrowed array must surface its error, not emit
	// partial data.
	if _, err := toNative(nbt.BorrowedIntArray([]byte{0, 0}, 1)); err == nil {
		t.Error("expected an error for a truncated borrowed array")
	}
}
