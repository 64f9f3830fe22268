// Package errs defines the sentinel errors shared by every codec package in
// this module.
//
// Call sites wrap a sentinel with additional context using fmt.Errorf and
// the %w verb, e.g.:
//
//	return nil, fmt.Errorf("simple16: value %d exceeds 28-bit slot: %w", v, errs.ErrValueTooLarge)
//
// Callers that need to distinguish failure kinds use errors.Is against the
// sentinels below rather than matching on message text.
package errs

import "errors"

var (
	// ErrValueTooLarge is returned when an input value exceeds the
	// representable range of the codec being used (e.g. a value ≥ 2^28 in
	// Simple16, a value ≥ 2^32 in a PFor block, or a value wider than the
	// width passed to bitpacking.EncodeWidth).
	ErrValueTooLarge = errors.New("ircodecs: value exceeds codec's representable range")

	// ErrNonMonotonic is returned when a codec that requires an ordered
	// input receives an out-of-order value: EliasFanoEncoder rejects a value
	// smaller than its predecessor, GapsEncoder one that is not strictly
	// larger.
	ErrNonMonotonic = errors.New("ircodecs: input sequence is not non-decreasing")

	// ErrTruncatedStream is returned when decode runs out of input before a
	// value or block header is complete.
	ErrTruncatedStream = errors.New("ircodecs: truncated stream")

	// ErrCorruptStream is returned when decode reads a selector, width, or
	// header field outside its valid range, or when an integrity check
	// (e.g. a PFor block checksum) fails.
	ErrCorruptStream = errors.New("ircodecs: corrupt stream")

	// ErrCountMismatch is returned when the caller-supplied decode count
	// disagrees with what the encoded stream can produce.
	ErrCountMismatch = errors.New("ircodecs: requested count disagrees with stream")

	// ErrBufferTooSmall is returned by the bitio primitives when asked to
	// write past the end of a caller-supplied buffer. bitio never
	// reallocates; growing the buffer is the caller's (or BitByteArray's)
	// responsibility.
	ErrBufferTooSmall = errors.New("ircodecs: buffer too small for bit write")
)
