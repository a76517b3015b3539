// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package nbt

import (
	"strings"
	"testing"
)

func TestSnbt(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"byte", Byte(5), "5b"},
		{"short", Short(-3), "-3s"},
		{"int", Int(42), "42"},
		{"long", Long(9), "9L"},
		{"float", Float(1.5), "1.5f"},
		{"double", Double(-2.25), "-2.25d"},
		{"string", String("hi"), `"hi"`},
		{"string escaping", String(`a"b\c`), `"a\"b\\c"`},
		{"byte array", ByteArrayOf(-1, 2), "[B;-1b,2b]"},
		{"int array", IntArrayOf(1, -1), "[I;1,-1]"},
		{"long array", LongArrayOf(7), "[L;7L]"},
		{"empty int array", IntArrayOf(), "[I;]"},
		{"list", List{ElementTag: TagInt, Elems: []Value{Int(1), Int(2)}}, "[1,2]"},
		{"empty list", List{}, "[]"},
		{"compound", Compound{"A": Byte(5)}, "{A:5b}"},
		{"compound sorted", Compound{"b": Int(2), "a": Int(1)}, "{a:1,b:2}"},
		{"quoted key", Compound{"two words": Int(1)}, `{"two words":1}`},
		{"empty key", Compound{"": Int(1)}, `{"":1}`},
		{"nested", Compound{"x": Compound{"y": List{ElementTag: TagByte, Elems: []Value{Byte(1)}}}}, "{x:{y:[1b]}}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Snbt(tt.v); got != tt.want {
				t.Errorf("Snbt() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSnbtBorrowedMatchesOwned(t *testing.T) {
	raw := []byte{0, 0, 0, 1, 0xFF, 0xFF, 0xFF, 0xFF}
	owned := Snbt(IntArrayOf(1, -1))
	borrowed := Snbt(BorrowedIntArray(raw, 2))
	if owned != borrowed {
		t.Errorf("owned %q, borrowed %q", owned, borrowed)
	}
}

func TestSnbtTruncatedBorrow(t *testing.T) {
	got := Snbt(BorrowedIntArray([]byte{0, 0, 0, 1}, 3))
	if !strings.Contains(got, "<truncated>") {
		t.Errorf("Snbt() = %q, want a <truncated> marker", got)
	}
	if !strings.HasPrefix(got, "[I;1") {
		t.Errorf("Snbt() = %q, want the readable prefix first", got)
	}
}
