// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package nbt

import (
	"slices"
	"strconv"
	"strings"
)

// Snbt renders a value in SNBT (stringified NBT) notation, the
// human-readable form used by Minecraft commands and most NBT
// tooling. Unlike JSON output, SNBT preserves the wire kinds: numeric
// suffixes distinguish the integer widths (5b, 3s, 7, 9L) and the
// float widths (1.5f, 2.5d), and the array kinds carry a prefix
// ([B;...], [I;...], [L;...]). Compound keys are rendered in sorted
// order so output is deterministic.
//
// A borrowed array whose buffer is too short renders the readable
// prefix followed by a <truncated> marker.
func Snbt(v Value) string {
	var b strings.Builder
	writeSnbt(&b, v)
	return b.String()
}

func writeSnbt(b *strings.Builder, v Value) {
	switch value := v.(type) {
	case Byte:
		b.WriteString(strconv.FormatInt(int64(value), 10))
		b.WriteByte('b')
	case Short:
		b.WriteString(strconv.FormatInt(int64(value), 10))
		b.WriteByte('s')
	case Int:
		b.WriteString(strconv.FormatInt(int64(value), 10))
	case Long:
		b.WriteString(strconv.FormatInt(int64(value), 10))
		b.WriteByte('L')
	case Float:
		b.WriteString(strconv.FormatFloat(float64(value), 'g', -1, 32))
		b.WriteByte('f')
	case Double:
		b.WriteString(strconv.FormatFloat(float64(value), 'g', -1, 64))
		b.WriteByte('d')
	case String:
		writeSnbtString(b, string(value))
	case ByteArray:
		b.WriteString("[B;")
		first := true
		for elem, err := range value.All() {
			if err != nil {
				writeTruncated(b, first)
				return
			}
			writeSep(b, &first)
			b.WriteString(strconv.FormatInt(int64(elem), 10))
			b.WriteByte('b')
		}
		b.WriteByte(']')
	case IntArray:
		b.WriteString("[I;")
		first := true
		for elem, err := range value.All() {
			if err != nil {
				writeTruncated(b, first)
				return
			}
			writeSep(b, &first)
			b.WriteString(strconv.FormatInt(int64(elem), 10))
		}
		b.WriteByte(']')
	case LongArray:
		b.WriteString("[L;")
		first := true
		for elem, err := range value.All() {
			if err != nil {
				writeTruncated(b, first)
				return
			}
			writeSep(b, &first)
			b.WriteString(strconv.FormatInt(elem, 10))
			b.WriteByte('L')
		}
		b.WriteByte(']')
	case List:
		b.WriteByte('[')
		for i, elem := range value.Elems {
			if i > 0 {
				b.WriteByte(',')
			}
			writeSnbt(b, elem)
		}
		b.WriteByte(']')
	case Compound:
		names := make([]string, 0, len(value))
		for name := range value {
			names = append(names, name)
		}
		slices.Sort(names)
		b.WriteByte('{')
		for i, name := range names {
			if i > 0 {
				b.WriteByte(',')
			}
			writeSnbtKey(b, name)
			b.WriteByte(':')
			writeSnbt(b, value[name])
		}
		b.WriteByte('}')
	}
}

func writeSep(b *strings.Builder, first *bool) {
	if !*first {
		b.WriteByte(',')
	}
	*first = false
}

func writeTruncated(b *strings.Builder, first bool) {
	if !first {
		b.WriteByte(',')
	}
	b.WriteString("<truncated>]")
}

// writeSnbtKey writes a compound key, unquoted when it consists only
// of the characters SNBT allows bare.
func writeSnbtKey(b *strings.Builder, key string) {
	if key != "" && isBareKey(key) {
		b.WriteString(key)
		return
	}
	writeSnbtString(b, key)
}

func isBareKey(key string) bool {
	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '_' || r == '-' || r == '.' || r == '+':
		default:
			return false
		}
	}
	return true
}

func writeSnbtString(b *strings.Builder, s string) {
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
}
