// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package nbt

import (
	"errors"
	"testing"
)

func TestArrayOwnedBorrowedEqual(t *testing.T) {
	// Big-endian wire bytes for int32 values 1 and -1.
	raw := []byte{0, 0, 0, 1, 0xFF, 0xFF, 0xFF, 0xFF}

	owned := IntArrayOf(1, -1)
	borrowed := BorrowedIntArray(raw, 2)

	if !owned.Equal(borrowed) {
		t.Error("owned and borrowed arrays with the same elements must compare equal")
	}
	if !borrowed.Equal(owned) {
		t.Error("equality must be symmetric")
	}
	if owned.String() != borrowed.String() {
		t.Errorf("formatting differs: owned %s, borrowed %s", owned, borrowed)
	}
}

func TestArrayLen(t *testing.T) {
	if got := LongArrayOf(1, 2, 3).Len(); got != 3 {
		t.Errorf("Len() = %d, want 3", got)
	}
	if got := BorrowedLongArray(nil, 4).Len(); got != 4 {
		t.Errorf("borrowed Len() = %d, want 4 (count is fixed at construction)", got)
	}
	if got := ByteArrayOf().Len(); got != 0 {
		t.Errorf("empty Len() = %d, want 0", got)
	}
}

func TestBorrowedTruncatedAtIteration(t *testing.T) {
	// Two elements declared but only six of the eight needed bytes
	// present. Construction succeeds; the failure surfaces when the
	// second element is read.
	raw := []byte{0, 0, 0, 1, 0, 0}
	arr := BorrowedIntArray(raw, 2)

	var got []int32
	var iterErr error
	for v, err := range arr.All() {
		if err != nil {
			iterErr = err
			break
		}
		got = append(got, v)
	}
	if len(got) != 1 || got[0] != 1 {
		t.Errorf("elements before truncation: %v, want [1]", got)
	}
	if !errors.Is(iterErr, ErrTruncated) {
		t.Fatalf("expected ErrTruncated during iteration, got %v", iterErr)
	}

	if _, err := arr.Slice(); !errors.Is(err, ErrTruncated) {
		t.Errorf("Slice on truncated borrow: expected ErrTruncated, got %v", err)
	}
}

func TestTruncatedBorrowNeverEqual(t *testing.T) {
	truncated := BorrowedIntArray([]byte{0, 0, 0, 1}, 2)
	if truncated.Equal(IntArrayOf(1, 0)) {
		t.Error("a truncated borrowed array must not compare equal to anything")
	}
}

func TestArrayIterationRestartable(t *testing.T) {
	arr := BorrowedByteArray([]byte{1, 2, 3}, 3)
	for pass := 0; pass < 2; pass++ {
		var got []int8
		for v, err := range arr.All() {
			if err != nil {
				t.Fatalf("pass %d: %v", pass, err)
			}
			got = append(got, v)
		}
		if len(got) != 3 || got[0] != 1 || got[2] != 3 {
			t.Errorf("pass %d: elements %v, want [1 2 3]", pass, got)
		}
	}
}

func TestArrayIterationEarlyBreak(t *testing.T) {
	arr := IntArrayOf(1, 2, 3, 4)
	count := 0
	for _, err := range arr.All() {
		if err != nil {
			t.Fatal(err)
		}
		count++
		if count == 2 {
			break
		}
	}
	if count != 2 {
		t.Errorf("iterated %d elements after break at 2", count)
	}
}

func TestBorrowedByteArrayElements(t *testing.T) {
	raw := []byte{0xFF, 0x00, 0x7F}
	elems, err := BorrowedByteArray(raw, 3).Slice()
	if err != nil {
		t.Fatalf("Slice: %v", err)
	}
	if elems[0] != -1 || elems[1] != 0 || elems[2] != 127 {
		t.Errorf("elements %v, want [-1 0 127]", elems)
	}
}

func TestArrayKindsNeverEqualAcrossKinds(t *testing.T) {
	// The same numbers in different array kinds are different values.
	if Equal(IntArrayOf(1, 2), LongArrayOf(1, 2)) {
		t.Error("IntArray and LongArray must never compare equal")
	}
	if Equal(ByteArrayOf(1), IntArrayOf(1)) {
		t.Error("ByteArray and IntArray must never compare equal")
	}
}
