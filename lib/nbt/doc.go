// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package nbt decodes and encodes NBT, the tag-prefixed binary format
// used by Minecraft: Java Edition for world data, player inventories,
// and most other persistent game state.
//
// NBT is self-describing: every value on the wire is introduced by a
// one-byte tag naming its kind (13 kinds, discriminants 0-12). The
// in-memory representation is the [Value] sum type, whose concrete
// variant always matches the wire tag that produced it — a Byte on
// the wire decodes to [Byte], never to [Short] or [Int], even though
// the numeric value would fit. This exactness is what makes round
// trips lossless.
//
// For a one-shot decode of a named root value:
//
//	value, err := nbt.Decode(data)
//	name, value, err := nbt.DecodeNamed(data)
//
// For binding a compound directly onto a struct:
//
//	var level struct {
//		DataVersion int32     `nbt:"DataVersion"`
//		Sections    nbt.Value `nbt:"sections"`
//	}
//	err := nbt.Unmarshal(data, &level)
//
// Struct binding is strict about integer widths: an int8 field only
// accepts a Byte-tagged wire value, an int32 field only an Int-tagged
// one. int64 and the float kinds are wide enough to be unambiguous
// and accept any numeric wire kind. Array-typed fields ([ByteArray],
// [IntArray], [LongArray]) are gated on the wire's array kind and
// never reinterpret another array's elements.
//
// # Array containers
//
// The three numeric array kinds each come in an owning form (elements
// copied out during decode) and a borrowing form that reads
// big-endian elements lazily out of the original input buffer. Use
// [NewBorrowingDecoder] or [UnmarshalBorrowed] for the zero-copy
// form; the resulting arrays are valid only as long as the input
// buffer they reference. Both forms offer the same Len/All/Slice
// surface and compare equal when their elements match.
//
// # Errors
//
// Malformed input is reported as a [*DecodeError] wrapping one of the
// sentinel kinds ([ErrUnknownTag], [ErrTypeMismatch],
// [ErrArrayTypeMismatch], [ErrNegativeLength], [ErrTruncated],
// [ErrUnexpectedEnd], [ErrInvalidText]), with the byte offset and the
// path within the value tree where decoding stopped. All kinds are
// terminal for the decode call: no partial value is returned.
//
// Compressed container files (almost all NBT on disk is gzip- or
// zlib-wrapped) are handled by the companion package
// lib/nbtfile.
package nbt
