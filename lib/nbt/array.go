// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package nbt

import (
	"encoding/binary"
	"fmt"
	"iter"
)

// arrayElem is the set of element types the three NBT array kinds
// carry on the wire.
type arrayElem interface {
	int8 | int32 | int64
}

// array is the shared representation behind ByteArray, IntArray, and
// LongArray. It is either owning (elems holds decoded native-endian
// elements) or borrowing (raw references big-endian wire bytes in the
// original input buffer and elements are decoded on demand). The
// element count is fixed at construction and the array is immutable
// once built.
type array[T arrayElem] struct {
	elems    []T
	raw      []byte
	count    int
	borrowed bool
}

func ownedArray[T arrayElem](elems []T) array[T] {
	return array[T]{elems: elems, count: len(elems)}
}

// borrowedArray records the reference and count without reading.
// Validation of buffer sufficiency is deferred to element access.
func borrowedArray[T arrayElem](raw []byte, count int) array[T] {
	return array[T]{raw: raw, count: count, borrowed: true}
}

func elemSize[T arrayElem]() int {
	var zero T
	switch any(zero).(type) {
	case int8:
		return 1
	case int32:
		return 4
	default:
		return 8
	}
}

func decodeElem[T arrayElem](raw []byte) T {
	var zero T
	switch any(zero).(type) {
	case int8:
		return T(int8(raw[0]))
	case int32:
		return T(int32(binary.BigEndian.Uint32(raw)))
	default:
		return T(int64(binary.BigEndian.Uint64(raw)))
	}
}

func (a array[T]) len() int {
	if a.count < 0 {
		return 0
	}
	return a.count
}

// at returns element i. For the borrowing form it decodes one
// big-endian element from the referenced buffer, failing with
// ErrTruncated when the buffer is too short to hold it.
func (a array[T]) at(i int) (T, error) {
	if !a.borrowed {
		return a.elems[i], nil
	}
	size := elemSize[T]()
	end := (i + 1) * size
	if end > len(a.raw) {
		var zero T
		return zero, &DecodeError{
			Kind:   ErrTruncated,
			Offset: -1,
			Detail: fmt.Sprintf("borrowed array: element %d needs bytes %d..%d, buffer has %d",
				i, i*size, end, len(a.raw)),
		}
	}
	return decodeElem[T](a.raw[i*size : end]), nil
}

// all returns a restartable forward sequence over the elements. For
// the borrowing form, a buffer shorter than count×elementSize yields
// an ErrTruncated error at the first unreadable element and stops.
func (a array[T]) all() iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for i := 0; i < a.len(); i++ {
			v, err := a.at(i)
			if !yield(v, err) || err != nil {
				return
			}
		}
	}
}

func (a array[T]) slice() ([]T, error) {
	if !a.borrowed {
		return a.elems, nil
	}
	out := make([]T, 0, a.len())
	for v, err := range a.all() {
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// equal compares decoded element sequences, so a borrowed array and
// an owning array over the same logical data compare equal. Any
// truncation makes the comparison false.
func (a array[T]) equal(b array[T]) bool {
	if a.len() != b.len() {
		return false
	}
	for i := 0; i < a.len(); i++ {
		av, err := a.at(i)
		if err != nil {
			return false
		}
		bv, err := b.at(i)
		if err != nil {
			return false
		}
		if av != bv {
			return false
		}
	}
	return true
}

// ByteArray is an array of signed 8-bit integers (wire tag 7).
type ByteArray struct{ a array[int8] }

// IntArray is an array of signed 32-bit integers (wire tag 11).
type IntArray struct{ a array[int32] }

// LongArray is an array of signed 64-bit integers (wire tag 12).
type LongArray struct{ a array[int64] }

// ByteArrayOf wraps an owned element slice. The array takes ownership
// of elems; the caller must not mutate it afterwards.
func ByteArrayOf(elems ...int8) ByteArray {
	return ByteArray{ownedArray(elems)}
}

// IntArrayOf wraps an owned element slice.
func IntArrayOf(elems ...int32) IntArray {
	return IntArray{ownedArray(elems)}
}

// LongArrayOf wraps an owned element slice.
func LongArrayOf(elems ...int64) LongArray {
	return LongArray{ownedArray(elems)}
}

// BorrowedByteArray references count elements in raw without copying.
// The array is valid only while raw is; buffer sufficiency is checked
// at element access, not here.
func BorrowedByteArray(raw []byte, count int) ByteArray {
	return ByteArray{borrowedArray[int8](raw, count)}
}

// BorrowedIntArray references count big-endian 32-bit elements in raw
// without copying.
func BorrowedIntArray(raw []byte, count int) IntArray {
	return IntArray{borrowedArray[int32](raw, count)}
}

// BorrowedLongArray references count big-endian 64-bit elements in
// raw without copying.
func BorrowedLongArray(raw []byte, count int) LongArray {
	return LongArray{borrowedArray[int64](raw, count)}
}

func (b ByteArray) Tag() Tag { return TagByteArray }
func (b ByteArray) isValue() {}

// Len returns the fixed element count.
func (b ByteArray) Len() int { return b.a.len() }

// All returns a lazy, restartable sequence over the elements. The
// borrowing form decodes elements on demand and yields ErrTruncated
// if the referenced buffer is too short.
func (b ByteArray) All() iter.Seq2[int8, error] { return b.a.all() }

// Slice returns the elements as a slice. For the owning form this is
// the backing slice itself, not a copy.
func (b ByteArray) Slice() ([]int8, error) { return b.a.slice() }

// Equal reports whether both arrays hold the same element sequence,
// regardless of owning/borrowing form.
func (b ByteArray) Equal(o ByteArray) bool { return b.a.equal(o.a) }

// String renders the array in SNBT notation.
func (b ByteArray) String() string { return Snbt(b) }

func (i IntArray) Tag() Tag { return TagIntArray }
func (i IntArray) isValue() {}

// Len returns the fixed element count.
func (i IntArray) Len() int { return i.a.len() }

// All returns a lazy, restartable sequence over the elements.
func (i IntArray) All() iter.Seq2[int32, error] { return i.a.all() }

// Slice returns the elements as a slice.
func (i IntArray) Slice() ([]int32, error) { return i.a.slice() }

// Equal reports whether both arrays hold the same element sequence.
func (i IntArray) Equal(o IntArray) bool { return i.a.equal(o.a) }

// String renders the array in SNBT notation.
func (i IntArray) String() string { return Snbt(i) }

func (l LongArray) Tag() Tag { return TagLongArray }
func (l LongArray) isValue() {}

// Len returns the fixed element count.
func (l LongArray) Len() int { return l.a.len() }

// All returns a lazy, restartable sequence over the elements.
func (l LongArray) All() iter.Seq2[int64, error] { return l.a.all() }

// Slice returns the elements as a slice.
func (l LongArray) Slice() ([]int64, error) { return l.a.slice() }

// Equal reports whether both arrays hold the same element sequence.
func (l LongArray) Equal(o LongArray) bool { return l.a.equal(o.a) }

// String renders the array in SNBT notation.
func (l LongArray) String() string { return Snbt(l) }
