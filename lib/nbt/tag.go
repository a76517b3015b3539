// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package nbt

import "fmt"

// Tag is an NBT wire discriminant. It names the kind of the value
// that follows it on the wire; it carries neither the value nor the
// name of the data. The byte values are protocol constants — changing
// them breaks format compatibility.
type Tag byte

const (
	// TagEnd terminates a Compound. It never introduces a value.
	TagEnd Tag = 0
	// TagByte introduces a signed 8-bit integer.
	TagByte Tag = 1
	// TagShort introduces a signed 16-bit integer.
	TagShort Tag = 2
	// TagInt introduces a signed 32-bit integer.
	TagInt Tag = 3
	// TagLong introduces a signed 64-bit integer.
	TagLong Tag = 4
	// TagFloat introduces a 32-bit IEEE 754 float.
	TagFloat Tag = 5
	// TagDouble introduces a 64-bit IEEE 754 float.
	TagDouble Tag = 6
	// TagByteArray introduces a length-prefixed array of signed bytes.
	TagByteArray Tag = 7
	// TagString introduces a length-prefixed modified-UTF-8 string.
	TagString Tag = 8
	// TagList introduces an ordered sequence sharing one element tag.
	TagList Tag = 9
	// TagCompound introduces a name-keyed collection of tagged values,
	// terminated by TagEnd.
	TagCompound Tag = 10
	// TagIntArray introduces a length-prefixed array of big-endian
	// signed 32-bit integers.
	TagIntArray Tag = 11
	// TagLongArray introduces a length-prefixed array of big-endian
	// signed 64-bit integers.
	TagLongArray Tag = 12
)

// TagFromByte converts a wire byte to its Tag. Bytes 0-12 map to the
// thirteen tags; anything else fails with ErrUnknownTag.
func TagFromByte(b byte) (Tag, error) {
	if b > byte(TagLongArray) {
		return 0, &DecodeError{
			Kind:   ErrUnknownTag,
			Offset: -1,
			Detail: fmt.Sprintf("byte 0x%02x", b),
		}
	}
	return Tag(b), nil
}

// Byte returns the wire discriminant for the tag. It is the inverse
// of TagFromByte over the valid range.
func (t Tag) Byte() byte {
	return byte(t)
}

// IsValid reports whether the tag is one of the thirteen defined
// discriminants.
func (t Tag) IsValid() bool {
	return t <= TagLongArray
}

// String returns the conventional name of the tag.
func (t Tag) String() string {
	switch t {
	case TagEnd:
		return "End"
	case TagByte:
		return "Byte"
	case TagShort:
		return "Short"
	case TagInt:
		return "Int"
	case TagLong:
		return "Long"
	case TagFloat:
		return "Float"
	case TagDouble:
		return "Double"
	case TagByteArray:
		return "ByteArray"
	case TagString:
		return "String"
	case TagList:
		return "List"
	case TagCompound:
		return "Compound"
	case TagIntArray:
		return "IntArray"
	case TagLongArray:
		return "LongArray"
	default:
		return fmt.Sprintf("unknown(%d)", byte(t))
	}
}
