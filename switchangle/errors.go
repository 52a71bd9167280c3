// SPDX-License-Identifier: MIT
// Package switchangle: sentinel error set.
// Every decode failure maps onto exactly one of the three sentinels below.
// Call sites wrap them with fmt.Errorf("ctx: %w", ErrX); callers match with
// errors.Is. The evaluator has no error path and never returns these.

package switchangle

import "errors"

var (
	// ErrInvalidInput is returned when the source stream is nil, or when an
	// argument cannot describe a table at all (nil table, populated receiver).
	ErrInvalidInput = errors.New("switchangle: invalid input")

	// ErrTruncated indicates the stream ended before the header or a declared
	// block was fully read. It is always joined with io.ErrUnexpectedEOF.
	ErrTruncated = errors.New("switchangle: truncated table")

	// ErrMalformedTable indicates a structural invariant was violated:
	// non-monotonic thresholds, a level above MaxLevel, a non-finite angle,
	// a bad header value or a polarity byte outside {0,1} in strict mode.
	ErrMalformedTable = errors.New("switchangle: malformed table")

	// ErrBucketRange is returned by accessors asked for a bucket index
	// outside [0, BlockCount).
	ErrBucketRange = errors.New("switchangle: bucket index out of range")
)
