// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package nbt

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Decoder decodes one named NBT root value from a byte slice. The
// decode is synchronous and single-threaded; recursion depth equals
// the nesting depth of the input. A Decoder is not safe for
// concurrent use.
type Decoder struct {
	data   []byte
	pos    int
	borrow bool
	path   []string
}

// NewDecoder returns a decoder producing owning values: array
// elements are copied out of data, so the result does not reference
// the input buffer.
func NewDecoder(data []byte) *Decoder {
	return &Decoder{data: data}
}

// NewBorrowingDecoder returns a zero-copy decoder: the array
// variants of the result hold references into data and decode their
// big-endian elements lazily. The result is valid only while data is
// neither mutated nor released.
func NewBorrowingDecoder(data []byte) *Decoder {
	return &Decoder{data: data, borrow: true}
}

// Decode reads the named root value and returns its payload,
// discarding the root name. Trailing bytes after the root are left
// unconsumed; see Rest.
func (d *Decoder) Decode() (Value, error) {
	_, v, err := d.DecodeNamed()
	return v, err
}

// DecodeNamed reads the named root value: a tag byte, a name string,
// and the tagged payload. A root End tag fails with ErrUnexpectedEnd
// since End introduces no value.
func (d *Decoder) DecodeNamed() (string, Value, error) {
	tag, err := d.readTag()
	if err != nil {
		return "", nil, err
	}
	if tag == TagEnd {
		return "", nil, d.errorf(ErrUnexpectedEnd, "End tag at root")
	}
	name, err := d.readString()
	if err != nil {
		return "", nil, err
	}
	v, err := d.value(tag)
	if err != nil {
		return "", nil, err
	}
	return name, v, nil
}

// Rest returns the bytes following the last decoded value.
func (d *Decoder) Rest() []byte {
	return d.data[d.pos:]
}

// Decode decodes one named root value from data, returning its
// payload. Array elements are copied; the result does not reference
// data.
func Decode(data []byte) (Value, error) {
	return NewDecoder(data).Decode()
}

// DecodeNamed decodes one named root value from data, returning the
// root name and payload.
func DecodeNamed(data []byte) (string, Value, error) {
	return NewDecoder(data).DecodeNamed()
}

// DecodeBorrowed decodes one named root value in zero-copy mode: the
// array variants of the result reference data directly. See
// NewBorrowingDecoder for the validity constraint.
func DecodeBorrowed(data []byte) (Value, error) {
	return NewBorrowingDecoder(data).Decode()
}

// errorf builds a *DecodeError carrying the current offset and tree
// path.
func (d *Decoder) errorf(kind error, format string, args ...any) error {
	return &DecodeError{
		Kind:   kind,
		Offset: d.pos,
		Path:   strings.Join(d.path, "/"),
		Detail: fmt.Sprintf(format, args...),
	}
}

// need fails with ErrTruncated unless n more bytes are available.
func (d *Decoder) need(n int) error {
	if len(d.data)-d.pos < n {
		return d.errorf(ErrTruncated, "need %d bytes, have %d", n, len(d.data)-d.pos)
	}
	return nil
}

func (d *Decoder) readTag() (Tag, error) {
	if err := d.need(1); err != nil {
		return 0, err
	}
	tag, err := TagFromByte(d.data[d.pos])
	if err != nil {
		return 0, d.errorf(ErrUnknownTag, "byte 0x%02x", d.data[d.pos])
	}
	d.pos++
	return tag, nil
}

// The primitive readers are width-pinned: each consumes exactly the
// wire width of its kind, so tag-first dispatch can never confuse an
// 8-bit payload with a 32-bit one.

func (d *Decoder) readInt8() (int8, error) {
	if err := d.need(1); err != nil {
		return 0, err
	}
	v := int8(d.data[d.pos])
	d.pos++
	return v, nil
}

func (d *Decoder) readInt16() (int16, error) {
	if err := d.need(2); err != nil {
		return 0, err
	}
	v := int16(binary.BigEndian.Uint16(d.data[d.pos:]))
	d.pos += 2
	return v, nil
}

func (d *Decoder) readInt32() (int32, error) {
	if err := d.need(4); err != nil {
		return 0, err
	}
	v := int32(binary.BigEndian.Uint32(d.data[d.pos:]))
	d.pos += 4
	return v, nil
}

func (d *Decoder) readInt64() (int64, error) {
	if err := d.need(8); err != nil {
		return 0, err
	}
	v := int64(binary.BigEndian.Uint64(d.data[d.pos:]))
	d.pos += 8
	return v, nil
}

func (d *Decoder) readFloat32() (float32, error) {
	bits, err := d.readInt32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(uint32(bits)), nil
}

func (d *Decoder) readFloat64() (float64, error) {
	bits, err := d.readInt64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(uint64(bits)), nil
}

// readString reads a length-prefixed modified-UTF-8 string. The
// length prefix is an unsigned big-endian 16-bit integer.
func (d *Decoder) readString() (string, error) {
	if err := d.need(2); err != nil {
		return "", err
	}
	length := int(binary.BigEndian.Uint16(d.data[d.pos:]))
	d.pos += 2
	if err := d.need(length); err != nil {
		return "", err
	}
	start := d.pos
	d.pos += length
	s, err := decodeMUTF8(d.data[start:d.pos])
	if err != nil {
		// Re-anchor the in-payload offset to the whole input.
		var de *DecodeError
		if errors.As(err, &de) {
			return "", d.errorf(de.Kind, "%s (payload byte %d)", de.Detail, de.Offset)
		}
		return "", err
	}
	return s, nil
}

// value decodes one payload whose tag has already been consumed.
func (d *Decoder) value(tag Tag) (Value, error) {
	switch tag {
	case TagByte:
		v, err := d.readInt8()
		return Byte(v), err
	case TagShort:
		v, err := d.readInt16()
		return Short(v), err
	case TagInt:
		v, err := d.readInt32()
		return Int(v), err
	case TagLong:
		v, err := d.readInt64()
		return Long(v), err
	case TagFloat:
		v, err := d.readFloat32()
		return Float(v), err
	case TagDouble:
		v, err := d.readFloat64()
		return Double(v), err
	case TagString:
		v, err := d.readString()
		return String(v), err
	case TagByteArray, TagIntArray, TagLongArray:
		return d.arrayValue(tag)
	case TagList:
		return d.listValue()
	case TagCompound:
		return d.compoundValue()
	default:
		// TagEnd: reachable only through a decoder bug, since every
		// caller screens End before dispatching here.
		return nil, d.errorf(ErrUnexpectedEnd, "End tag has no payload")
	}
}

// checkElementKind is the array element-kind gate: want is the array
// kind a caller is constructing, got is the kind declared on the
// wire. It is the single chokepoint that keeps, say, an IntArray
// request from silently consuming LongArray elements.
func checkElementKind(got, want Tag) error {
	if got != want {
		return &DecodeError{
			Kind:   ErrArrayTypeMismatch,
			Offset: -1,
			Detail: fmt.Sprintf("expected %s, wire declares %s", want, got),
		}
	}
	return nil
}

// arrayValue decodes the payload of one of the three array kinds: a
// signed 32-bit element count followed by count big-endian elements.
// In borrowing mode the element bytes are referenced, not read;
// sufficiency is checked by the array itself at iteration time.
func (d *Decoder) arrayValue(tag Tag) (Value, error) {
	count, err := d.readInt32()
	if err != nil {
		return nil, err
	}
	if count < 0 {
		return nil, d.errorf(ErrNegativeLength, "array count %d", count)
	}
	n := int(count)

	size := 1
	switch tag {
	case TagIntArray:
		size = 4
	case TagLongArray:
		size = 8
	}

	if d.borrow {
		// Capture the reference even when the buffer is short: the
		// borrowing contract reports truncation lazily, on element
		// access. The reference still must not extend past the input.
		end := min(d.pos+n*size, len(d.data))
		raw := d.data[d.pos:end]
		d.pos = end
		switch tag {
		case TagByteArray:
			return BorrowedByteArray(raw, n), nil
		case TagIntArray:
			return BorrowedIntArray(raw, n), nil
		default:
			return BorrowedLongArray(raw, n), nil
		}
	}

	if err := d.need(n * size); err != nil {
		return nil, err
	}
	raw := d.data[d.pos : d.pos+n*size]
	d.pos += n * size
	switch tag {
	case TagByteArray:
		elems := make([]int8, n)
		for i := range elems {
			elems[i] = int8(raw[i])
		}
		return ByteArrayOf(elems...), nil
	case TagIntArray:
		elems := make([]int32, n)
		for i := range elems {
			elems[i] = int32(binary.BigEndian.Uint32(raw[i*4:]))
		}
		return IntArrayOf(elems...), nil
	default:
		elems := make([]int64, n)
		for i := range elems {
			elems[i] = int64(binary.BigEndian.Uint64(raw[i*8:]))
		}
		return LongArrayOf(elems...), nil
	}
}

// listValue decodes a List payload: one element tag shared by the
// whole list, a signed 32-bit count, then count recursively decoded
// values. An End element tag declares an empty list and decodes to
// zero elements regardless of the count that follows.
func (d *Decoder) listValue() (Value, error) {
	elem, err := d.readTag()
	if err != nil {
		return nil, err
	}
	count, err := d.readInt32()
	if err != nil {
		return nil, err
	}
	if count < 0 {
		return nil, d.errorf(ErrNegativeLength, "list count %d", count)
	}
	if elem == TagEnd {
		return List{ElementTag: TagEnd}, nil
	}

	elems := make([]Value, 0, min(int(count), 1<<16))
	for i := 0; i < int(count); i++ {
		d.path = append(d.path, strconv.Itoa(i))
		v, err := d.value(elem)
		d.path = d.path[:len(d.path)-1]
		if err != nil {
			return nil, err
		}
		elems = append(elems, v)
	}
	return List{ElementTag: elem, Elems: elems}, nil
}

// compoundValue decodes a Compound payload: a sequence of
// (tag, name, payload) entries terminated by an End tag. A duplicate
// name overwrites the earlier entry (last occurrence wins). Input
// ending before the End tag fails with ErrTruncated.
func (d *Decoder) compoundValue() (Value, error) {
	m := Compound{}
	for {
		tag, err := d.readTag()
		if err != nil {
			return nil, err
		}
		if tag == TagEnd {
			return m, nil
		}
		name, err := d.readString()
		if err != nil {
			return nil, err
		}
		d.path = append(d.path, name)
		v, err := d.value(tag)
		d.path = d.path[:len(d.path)-1]
		if err != nil {
			return nil, err
		}
		m[name] = v
	}
}
