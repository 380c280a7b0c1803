package varint

import "errors"

var (
	// ErrTruncated is returned when the input ends before a declared
	// encoding is complete.
	ErrTruncated = errors.New("varint: truncated input")

	// ErrOverflow is returned when a base-128 varint does not fit the
	// 64-bit accumulator.
	ErrOverflow = errors.New("varint: overflow")
)
