// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package nbt

import (
	"errors"
	"testing"
)

// mustMarshal builds test fixtures from values; encoding is covered
// by its own tests.
func mustMarshal(t *testing.T, v Value) []byte {
	t.Helper()
	data, err := Marshal(v)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	return data
}

func TestUnmarshalStruct(t *testing.T) {
	data := mustMarshal(t, Compound{
		"DataVersion": Int(3465),
		"Name":        String("overworld"),
		"Hardcore":    Byte(1),
		"Seed":        Long(-42),
		"Spawn":       Compound{"X": Int(7), "Z": Int(-7)},
		"ignored":     String("not bound"),
	})

	var level struct {
		DataVersion int32  `nbt:"DataVersion"`
		Name        string `nbt:"Name"`
		Hardcore    bool   `nbt:"Hardcore"`
		Seed        int64  `nbt:"Seed"`
		Spawn       struct {
			X int32 `nbt:"X"`
			Z int32 `nbt:"Z"`
		} `nbt:"Spawn"`
		Skipped string `nbt:"-"`
		Missing int16  `nbt:"NotPresent"`
	}
	if err := Unmarshal(data, &level); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if level.DataVersion != 3465 || level.Name != "overworld" || !level.Hardcore {
		t.Errorf("bound %+v", level)
	}
	if level.Seed != -42 {
		t.Errorf("Seed = %d, want -42", level.Seed)
	}
	if level.Spawn.X != 7 || level.Spawn.Z != -7 {
		t.Errorf("Spawn = %+v", level.Spawn)
	}
	if level.Missing != 0 {
		t.Errorf("absent entry must leave the field zero, have %d", level.Missing)
	}
}

func TestUnmarshalStrictWidths(t *testing.T) {
	// Every cross-width pairing must be refused, even when the value
	// would fit numerically.
	tests := []struct {
		name string
		v    Value
		out  func() any
		ok   bool
	}{
		{"byte into int8", Byte(5), func() any { return new(int8) }, true},
		{"short into int8", Short(5), func() any { return new(int8) }, false},
		{"int into int8", Int(5), func() any { return new(int8) }, false},
		{"byte into int16", Byte(5), func() any { return new(int16) }, false},
		{"short into int16", Short(5), func() any { return new(int16) }, true},
		{"int into int16", Int(5), func() any { return new(int16) }, false},
		{"byte into int32", Byte(5), func() any { return new(int32) }, false},
		{"short into int32", Short(5), func() any { return new(int32) }, false},
		{"int into int32", Int(5), func() any { return new(int32) }, true},
		{"long into int32", Long(5), func() any { return new(int32) }, false},
		{"byte into uint8", Byte(5), func() any { return new(uint8) }, true},
		{"int into uint16", Int(5), func() any { return new(uint16) }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Bind(tt.v, tt.out())
			if tt.ok && err != nil {
				t.Fatalf("Bind: %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrTypeMismatch) {
				t.Fatalf("expected ErrTypeMismatch, got %v", err)
			}
		})
	}
}

func TestUnmarshalWideTargets(t *testing.T) {
	// 64-bit and float targets are unambiguous and accept any kind
	// of the right family.
	for _, v := range []Value{Byte(5), Short(5), Int(5), Long(5)} {
		var out int64
		if err := Bind(v, &out); err != nil {
			t.Fatalf("Bind %s into int64: %v", v.Tag(), err)
		}
		if out != 5 {
			t.Errorf("bound %d from %s, want 5", out, v.Tag())
		}
	}
	for _, v := range []Value{Float(1.5), Double(1.5)} {
		var out float64
		if err := Bind(v, &out); err != nil {
			t.Fatalf("Bind %s into float64: %v", v.Tag(), err)
		}
		if out != 1.5 {
			t.Errorf("bound %v from %s, want 1.5", out, v.Tag())
		}
	}

	var out float64
	if err := Bind(Int(5), &out); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("integer into float target: expected ErrTypeMismatch, got %v", err)
	}
}

func TestUnmarshalArrayGate(t *testing.T) {
	data := mustMarshal(t, Compound{"blocks": LongArrayOf(1, 2)})

	// A LongArray payload must never populate an IntArray field.
	var wrong struct {
		Blocks IntArray `nbt:"blocks"`
	}
	err := Unmarshal(data, &wrong)
	if !errors.Is(err, ErrArrayTypeMismatch) {
		t.Fatalf("expected ErrArrayTypeMismatch, got %v", err)
	}

	var right struct {
		Blocks LongArray `nbt:"blocks"`
	}
	if err := Unmarshal(data, &right); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !right.Blocks.Equal(LongArrayOf(1, 2)) {
		t.Errorf("bound %v", right.Blocks)
	}
}

func TestUnmarshalArrayGateOnSlices(t *testing.T) {
	data := mustMarshal(t, Compound{"ids": IntArrayOf(3, 4)})

	var wrong struct {
		IDs []int64 `nbt:"ids"`
	}
	if err := Unmarshal(data, &wrong); !errors.Is(err, ErrArrayTypeMismatch) {
		t.Fatalf("expected ErrArrayTypeMismatch, got %v", err)
	}

	var right struct {
		IDs []int32 `nbt:"ids"`
	}
	if err := Unmarshal(data, &right); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(right.IDs) != 2 || right.IDs[0] != 3 || right.IDs[1] != 4 {
		t.Errorf("bound %v, want [3 4]", right.IDs)
	}
}

func TestUnmarshalNonArrayIntoArrayField(t *testing.T) {
	var out IntArray
	err := Bind(String("nope"), &out)
	if !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("expected ErrTypeMismatch, got %v", err)
	}
}

func TestUnmarshalListOfCompounds(t *testing.T) {
	data := mustMarshal(t, Compound{
		"Inventory": List{ElementTag: TagCompound, Elems: []Value{
			Compound{"id": String("minecraft:stone"), "Count": Byte(64)},
			Compound{"id": String("minecraft:torch"), "Count": Byte(3)},
		}},
	})

	var player struct {
		Inventory []struct {
			ID    string `nbt:"id"`
			Count int8   `nbt:"Count"`
		} `nbt:"Inventory"`
	}
	if err := Unmarshal(data, &player); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(player.Inventory) != 2 {
		t.Fatalf("bound %d slots, want 2", len(player.Inventory))
	}
	if player.Inventory[0].ID != "minecraft:stone" || player.Inventory[0].Count != 64 {
		t.Errorf("slot 0 = %+v", player.Inventory[0])
	}
}

func TestUnmarshalMap(t *testing.T) {
	data := mustMarshal(t, Compound{"a": Int(1), "b": Int(2)})

	var out map[string]int32
	if err := Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(out) != 2 || out["a"] != 1 || out["b"] != 2 {
		t.Errorf("bound %v", out)
	}
}

func TestUnmarshalValueCapture(t *testing.T) {
	data := mustMarshal(t, Compound{
		"known":   Int(1),
		"unknown": Compound{"deep": List{ElementTag: TagByte, Elems: []Value{Byte(1)}}},
	})

	var out struct {
		Known   int32 `nbt:"known"`
		Unknown Value `nbt:"unknown"`
	}
	if err := Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	want := Compound{"deep": List{ElementTag: TagByte, Elems: []Value{Byte(1)}}}
	if !Equal(out.Unknown, want) {
		t.Errorf("captured %v, want %v", out.Unknown, want)
	}
}

func TestUnmarshalPointerField(t *testing.T) {
	data := mustMarshal(t, Compound{"x": Int(9)})

	var out struct {
		X *int32 `nbt:"x"`
		Y *int32 `nbt:"y"`
	}
	if err := Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if out.X == nil || *out.X != 9 {
		t.Errorf("X = %v, want 9", out.X)
	}
	if out.Y != nil {
		t.Errorf("absent entry must leave a pointer field nil")
	}
}

func TestUnmarshalBorrowedZeroCopy(t *testing.T) {
	data := mustMarshal(t, Compound{"ids": IntArrayOf(1, -1)})

	var out struct {
		IDs IntArray `nbt:"ids"`
	}
	if err := UnmarshalBorrowed(data, &out); err != nil {
		t.Fatalf("UnmarshalBorrowed: %v", err)
	}
	if !out.IDs.Equal(IntArrayOf(1, -1)) {
		t.Errorf("bound %v, want [I;1,-1]", out.IDs)
	}
}

func TestUnmarshalErrorPath(t *testing.T) {
	data := mustMarshal(t, Compound{
		"Spawn": Compound{"X": Long(7)},
	})

	var out struct {
		Spawn struct {
			X int32 `nbt:"X"`
		} `nbt:"Spawn"`
	}
	err := Unmarshal(data, &out)
	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("expected *DecodeError, got %T: %v", err, err)
	}
	if de.Path != "Spawn/X" {
		t.Errorf("path %q, want Spawn/X", de.Path)
	}
}

func TestBindRequiresPointer(t *testing.T) {
	var out int32
	if err := Bind(Int(1), out); err == nil {
		t.Fatal("expected an error for a non-pointer target")
	}
}
