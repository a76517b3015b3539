// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package nbt

import (
	"fmt"
	"unicode/utf16"
	"unicode/utf8"
)

// NBT strings are modified UTF-8, the variant used by Java's
// DataOutput.writeUTF: U+0000 is written as the overlong pair C0 80
// (so encoded strings never contain a zero byte), and code points
// above U+FFFF are written as a CESU-8 surrogate pair (two three-byte
// sequences) instead of one four-byte sequence. Both deviations must
// survive a decode/encode round trip.

// decodeMUTF8 converts a modified-UTF-8 byte run to a Go string.
// Byte runs that are not valid modified UTF-8 (bad continuation
// bytes, four-byte UTF-8 sequences, unpaired surrogates) fail with
// ErrInvalidText.
func decodeMUTF8(data []byte) (string, error) {
	// Fast path: pure ASCII needs no transformation.
	ascii := true
	for _, b := range data {
		if b >= 0x80 {
			ascii = false
			break
		}
	}
	if ascii {
		return string(data), nil
	}

	out := make([]byte, 0, len(data))
	for i := 0; i < len(data); {
		c := data[i]
		switch {
		case c < 0x80:
			out = append(out, c)
			i++

		case c&0xE0 == 0xC0:
			if i+2 > len(data) || data[i+1]&0xC0 != 0x80 {
				return "", invalidText(i, "bad two-byte sequence")
			}
			r := rune(c&0x1F)<<6 | rune(data[i+1]&0x3F)
			out = utf8.AppendRune(out, r)
			i += 2

		case c&0xF0 == 0xE0:
			if i+3 > len(data) || data[i+1]&0xC0 != 0x80 || data[i+2]&0xC0 != 0x80 {
				return "", invalidText(i, "bad three-byte sequence")
			}
			r := rune(c&0x0F)<<12 | rune(data[i+1]&0x3F)<<6 | rune(data[i+2]&0x3F)
			i += 3
			if utf16.IsSurrogate(r) {
				// A high surrogate must be followed by a low surrogate
				// encoded as another three-byte sequence; the pair
				// combines to one supplementary code point.
				if r >= 0xDC00 {
					return "", invalidText(i-3, "unpaired low surrogate")
				}
				if i+3 > len(data) || data[i]&0xF0 != 0xE0 ||
					data[i+1]&0xC0 != 0x80 || data[i+2]&0xC0 != 0x80 {
					return "", invalidText(i-3, "high surrogate without low surrogate")
				}
				low := rune(data[i]&0x0F)<<12 | rune(data[i+1]&0x3F)<<6 | rune(data[i+2]&0x3F)
				if low < 0xDC00 || low > 0xDFFF {
					return "", invalidText(i-3, "high surrogate without low surrogate")
				}
				r = utf16.DecodeRune(r, low)
				i += 3
			}
			out = utf8.AppendRune(out, r)

		default:
			// Continuation byte in lead position, or a four-byte UTF-8
			// lead, which modified UTF-8 does not use.
			return "", invalidText(i, fmt.Sprintf("bad lead byte 0x%02x", c))
		}
	}
	return string(out), nil
}

// appendMUTF8 appends the modified-UTF-8 encoding of s to dst.
func appendMUTF8(dst []byte, s string) []byte {
	for _, r := range s {
		switch {
		case r == 0:
			dst = append(dst, 0xC0, 0x80)
		case r < 0x80:
			dst = append(dst, byte(r))
		case r < 0x800:
			dst = append(dst, 0xC0|byte(r>>6), 0x80|byte(r&0x3F))
		case r < 0x10000:
			dst = append(dst, 0xE0|byte(r>>12), 0x80|byte(r>>6&0x3F), 0x80|byte(r&0x3F))
		default:
			high, low := utf16.EncodeRune(r)
			dst = append(dst, 0xE0|byte(high>>12), 0x80|byte(high>>6&0x3F), 0x80|byte(high&0x3F))
			dst = append(dst, 0xE0|byte(low>>12), 0x80|byte(low>>6&0x3F), 0x80|byte(low&0x3F))
		}
	}
	return dst
}

// mutf8Len returns the encoded length of s without encoding it.
func mutf8Len(s string) int {
	n := 0
	for _, r := range s {
		switch {
		case r == 0:
			n += 2
		case r < 0x80:
			n++
		case r < 0x800:
			n += 2
		case r < 0x10000:
			n += 3
		default:
			n += 6
		}
	}
	return n
}

func invalidText(offset int, detail string) error {
	return &DecodeError{
		Kind:   ErrInvalidText,
		Offset: offset,
		Detail: detail,
	}
}
