// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package nbt

import (
	"errors"
	"fmt"
	"strings"
)

// The sentinel error kinds. Every failure surfaced by this package is
// a *DecodeError wrapping exactly one of these, so callers classify
// failures with errors.Is regardless of where in the value tree the
// failure occurred. All kinds are hard failures of the input; none
// implies a transient condition worth retrying.
var (
	// ErrUnknownTag: a tag byte outside 0-12.
	ErrUnknownTag = errors.New("unknown tag")

	// ErrTypeMismatch: a scalar was requested at a width or kind that
	// does not match the wire tag that produced it.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrArrayTypeMismatch: an array was requested whose element kind
	// disagrees with the array kind declared on the wire.
	ErrArrayTypeMismatch = errors.New("array element kind mismatch")

	// ErrNegativeLength: a list or array declared a negative count.
	ErrNegativeLength = errors.New("negative length")

	// ErrTruncated: the input ended before a construct completed.
	ErrTruncated = errors.New("truncated input")

	// ErrUnexpectedEnd: an End tag where a value was required.
	ErrUnexpectedEnd = errors.New("unexpected End tag")

	// ErrInvalidText: a string payload that is not decodable as
	// modified UTF-8.
	ErrInvalidText = errors.New("invalid modified UTF-8")
)

// DecodeError describes a malformed-input failure. Kind is one of the
// package sentinels; Offset is the byte offset into the input where
// decoding stopped (-1 when no offset applies, e.g. failures during
// struct binding of an already-decoded value); Path locates the
// failure within the value tree ("Level/Sections/3/Palette"); Detail
// is a human-readable elaboration.
type DecodeError struct {
	Kind   error
	Offset int
	Path   string
	Detail string
}

func (e *DecodeError) Error() string {
	var b strings.Builder
	b.WriteString("nbt: ")
	b.WriteString(e.Kind.Error())
	if e.Offset >= 0 {
		fmt.Fprintf(&b, " at byte %d", e.Offset)
	}
	if e.Path != "" {
		fmt.Fprintf(&b, " (at %s)", e.Path)
	}
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	return b.String()
}

// Unwrap exposes the sentinel kind to errors.Is.
func (e *DecodeError) Unwrap() error {
	return e.Kind
}
