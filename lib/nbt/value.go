// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package nbt

import "fmt"

// Value is a complete decoded NBT value. It is a closed sum: the only
// implementations are the twelve variant types in this package (one
// per wire tag other than End). The concrete variant always matches
// the tag that introduced the value on the wire — widths are never
// coerced during decode, so a round trip reproduces the original tags
// exactly.
//
// A Value owns all of its children; the exception is the borrowing
// array forms, which reference the input buffer they were decoded
// from and are valid only while that buffer is.
type Value interface {
	// Tag reports the wire tag of this variant.
	Tag() Tag

	isValue()
}

// Byte is a signed 8-bit integer (wire tag 1).
type Byte int8

// Short is a signed 16-bit integer (wire tag 2).
type Short int16

// Int is a signed 32-bit integer (wire tag 3).
type Int int32

// Long is a signed 64-bit integer (wire tag 4).
type Long int64

// Float is a 32-bit IEEE 754 float (wire tag 5).
type Float float32

// Double is a 64-bit IEEE 754 float (wire tag 6).
type Double float64

// String is a text value (wire tag 8). On the wire it is encoded as
// modified UTF-8; in memory it is an ordinary Go string.
type String string

// List is an ordered sequence of values sharing one element tag (wire
// tag 9). ElementTag records the tag declared on the wire; for a
// non-empty list it always equals the tag of every element. It is
// retained on empty lists purely for round-trip fidelity — an empty
// list is conventionally declared with TagEnd, but any tag is
// accepted when the count is zero.
type List struct {
	ElementTag Tag
	Elems      []Value
}

// Compound is a name-keyed collection of values (wire tag 10). Entry
// order is not significant; keys are unique, with the last occurrence
// winning when the wire carries duplicates.
type Compound map[string]Value

func (Byte) Tag() Tag     { return TagByte }
func (Short) Tag() Tag    { return TagShort }
func (Int) Tag() Tag      { return TagInt }
func (Long) Tag() Tag     { return TagLong }
func (Float) Tag() Tag    { return TagFloat }
func (Double) Tag() Tag   { return TagDouble }
func (String) Tag() Tag   { return TagString }
func (List) Tag() Tag     { return TagList }
func (Compound) Tag() Tag { return TagCompound }

func (Byte) isValue()     {}
func (Short) isValue()    {}
func (Int) isValue()      {}
func (Long) isValue()     {}
func (Float) isValue()    {}
func (Double) isValue()   {}
func (String) isValue()   {}
func (List) isValue()     {}
func (Compound) isValue() {}

// String renders the list in SNBT notation.
func (l List) String() string { return Snbt(l) }

// String renders the compound in SNBT notation.
func (c Compound) String() string { return Snbt(c) }

// Equal reports structural equality of two values. Borrowed and
// owning arrays with the same elements compare equal; compound entry
// order is irrelevant; two empty lists compare equal regardless of
// their declared element tags. A borrowed array whose underlying
// buffer is too short never compares equal to anything.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case Byte:
		bv, ok := b.(Byte)
		return ok && av == bv
	case Short:
		bv, ok := b.(Short)
		return ok && av == bv
	case Int:
		bv, ok := b.(Int)
		return ok && av == bv
	case Long:
		bv, ok := b.(Long)
		return ok && av == bv
	case Float:
		bv, ok := b.(Float)
		return ok && av == bv
	case Double:
		bv, ok := b.(Double)
		return ok && av == bv
	case String:
		bv, ok := b.(String)
		return ok && av == bv
	case ByteArray:
		bv, ok := b.(ByteArray)
		return ok && av.Equal(bv)
	case IntArray:
		bv, ok := b.(IntArray)
		return ok && av.Equal(bv)
	case LongArray:
		bv, ok := b.(LongArray)
		return ok && av.Equal(bv)
	case List:
		bv, ok := b.(List)
		if !ok || len(av.Elems) != len(bv.Elems) {
			return false
		}
		for i := range av.Elems {
			if !Equal(av.Elems[i], bv.Elems[i]) {
				return false
			}
		}
		return true
	case Compound:
		bv, ok := b.(Compound)
		if !ok || len(av) != len(bv) {
			return false
		}
		for name, elem := range av {
			other, present := bv[name]
			if !present || !Equal(elem, other) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// typeMismatch builds the error for a strict accessor refusing a
// variant of the wrong kind.
func typeMismatch(want Tag, have Value) error {
	return &DecodeError{
		Kind:   ErrTypeMismatch,
		Offset: -1,
		Detail: fmt.Sprintf("expected %s, have %s", want, have.Tag()),
	}
}

// The As* accessors are strict: each accepts exactly one variant and
// fails with ErrTypeMismatch for every other, including numerically
// compatible ones. AsByte(Int(5)) fails even though 5 fits in an
// int8 — the accessors exist to recover the original wire kind, not
// to convert.

// AsByte returns the value of a Byte variant.
func AsByte(v Value) (int8, error) {
	b, ok := v.(Byte)
	if !ok {
		return 0, typeMismatch(TagByte, v)
	}
	return int8(b), nil
}

// AsShort returns the value of a Short variant.
func AsShort(v Value) (int16, error) {
	s, ok := v.(Short)
	if !ok {
		return 0, typeMismatch(TagShort, v)
	}
	return int16(s), nil
}

// AsInt returns the value of an Int variant.
func AsInt(v Value) (int32, error) {
	i, ok := v.(Int)
	if !ok {
		return 0, typeMismatch(TagInt, v)
	}
	return int32(i), nil
}

// AsLong returns the value of a Long variant.
func AsLong(v Value) (int64, error) {
	l, ok := v.(Long)
	if !ok {
		return 0, typeMismatch(TagLong, v)
	}
	return int64(l), nil
}

// AsFloat returns the value of a Float variant.
func AsFloat(v Value) (float32, error) {
	f, ok := v.(Float)
	if !ok {
		return 0, typeMismatch(TagFloat, v)
	}
	return float32(f), nil
}

// AsDouble returns the value of a Double variant.
func AsDouble(v Value) (float64, error) {
	d, ok := v.(Double)
	if !ok {
		return 0, typeMismatch(TagDouble, v)
	}
	return float64(d), nil
}

// AsString returns the value of a String variant.
func AsString(v Value) (string, error) {
	s, ok := v.(String)
	if !ok {
		return "", typeMismatch(TagString, v)
	}
	return string(s), nil
}
