// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package nbt

import (
	"encoding/binary"
	"fmt"
	"math"
	"slices"
)

// Marshal encodes v as a named NBT root with an empty name. The
// output is deterministic: compound entries are written in sorted key
// order, so the same logical value always produces identical bytes.
func Marshal(v Value) ([]byte, error) {
	return MarshalNamed("", v)
}

// MarshalNamed encodes v as a named NBT root: tag byte, name, payload.
func MarshalNamed(name string, v Value) ([]byte, error) {
	out := []byte{v.Tag().Byte()}
	out, err := appendString(out, name)
	if err != nil {
		return nil, err
	}
	out, err = appendValue(out, v)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func appendString(dst []byte, s string) ([]byte, error) {
	length := mutf8Len(s)
	if length > math.MaxUint16 {
		return nil, fmt.Errorf("nbt: string of %d encoded bytes exceeds the 16-bit length prefix", length)
	}
	dst = binary.BigEndian.AppendUint16(dst, uint16(length))
	return appendMUTF8(dst, s), nil
}

func appendValue(dst []byte, v Value) ([]byte, error) {
	switch value := v.(type) {
	case Byte:
		return append(dst, byte(value)), nil
	case Short:
		return binary.BigEndian.AppendUint16(dst, uint16(value)), nil
	case Int:
		return binary.BigEndian.AppendUint32(dst, uint32(value)), nil
	case Long:
		return binary.BigEndian.AppendUint64(dst, uint64(value)), nil
	case Float:
		return binary.BigEndian.AppendUint32(dst, math.Float32bits(float32(value))), nil
	case Double:
		return binary.BigEndian.AppendUint64(dst, math.Float64bits(float64(value))), nil
	case String:
		return appendString(dst, string(value))
	case ByteArray:
		dst = binary.BigEndian.AppendUint32(dst, uint32(value.Len()))
		for elem, err := range value.All() {
			if err != nil {
				return nil, err
			}
			dst = append(dst, byte(elem))
		}
		return dst, nil
	case IntArray:
		dst = binary.BigEndian.AppendUint32(dst, uint32(value.Len()))
		for elem, err := range value.All() {
			if err != nil {
				return nil, err
			}
			dst = binary.BigEndian.AppendUint32(dst, uint32(elem))
		}
		return dst, nil
	case LongArray:
		dst = binary.BigEndian.AppendUint32(dst, uint32(value.Len()))
		for elem, err := range value.All() {
			if err != nil {
				return nil, err
			}
			dst = binary.BigEndian.AppendUint64(dst, uint64(elem))
		}
		return dst, nil
	case List:
		return appendList(dst, value)
	case Compound:
		return appendCompound(dst, value)
	default:
		return nil, fmt.Errorf("nbt: cannot encode %T", v)
	}
}

// appendList writes the shared element tag, the count, and the
// elements. The declared element tag is preserved for empty lists
// (the Tag zero value is End, the conventional empty-list marker);
// for non-empty lists every element must carry the declared tag, or
// the tag of the first element when none was declared.
func appendList(dst []byte, l List) ([]byte, error) {
	elem := l.ElementTag
	if len(l.Elems) > 0 && elem == TagEnd {
		elem = l.Elems[0].Tag()
	}
	dst = append(dst, elem.Byte())
	dst = binary.BigEndian.AppendUint32(dst, uint32(len(l.Elems)))
	for i, v := range l.Elems {
		if v.Tag() != elem {
			return nil, fmt.Errorf("nbt: list element %d is %s, list declares %s", i, v.Tag(), elem)
		}
		var err error
		dst, err = appendValue(dst, v)
		if err != nil {
			return nil, err
		}
	}
	return dst, nil
}

func appendCompound(dst []byte, c Compound) ([]byte, error) {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		v := c[name]
		dst = append(dst, v.Tag().Byte())
		var err error
		dst, err = appendString(dst, name)
		if err != nil {
			return nil, err
		}
		dst, err = appendValue(dst, v)
		if err != nil {
			return nil, err
		}
	}
	return append(dst, TagEnd.Byte()), nil
}
