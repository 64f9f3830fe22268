// Package unary implements unary coding: a positive integer n is written as
// (n-1) one-bits followed by a terminating zero-bit, so n=1 encodes as the
// single bit "0".
//
// This convention — (n-1) ones then a zero, rather than n zeros then a one —
// was pinned down by direct inspection of the reference implementation;
// both conventions appear in the unary-coding literature and are not
// interchangeable.
package unary

import (
	"fmt"
	"math/bits"

	"github.com/gustingonzalez/ircodecs-go/bitio"
	"github.com/gustingonzalez/ircodecs-go/errs"
)

// EncodeInto appends the unary encoding of n (n >= 1) onto buf.
func EncodeInto(buf *bitio.BitByteArray, n uint64) error {
	if n == 0 {
		return fmt.Errorf("unary: value must be >= 1, got 0: %w", errs.ErrValueTooLarge)
	}

	for i := uint64(0); i < n-1; i++ {
		if err := buf.AppendBit(1); err != nil {
			return err
		}
	}

	return buf.AppendBit(0)
}

// Encode encodes a single value n and returns its byte representation along
// with the padding (unused trailing bits in the final byte).
func Encode(n uint64) ([]byte, int, error) {
	buf := bitio.NewBitByteArray()
	if err := EncodeInto(buf, n); err != nil {
		return nil, 0, err
	}

	return buf.Bytes(), buf.Padding(), nil
}

// EncodeAll encodes every value in values in order into a single bit
// buffer and returns the resulting bytes and padding.
func EncodeAll(values []uint64) ([]byte, int, error) {
	buf := bitio.NewBitByteArray()
	for _, v := range values {
		if err := EncodeInto(buf, v); err != nil {
			return nil, 0, err
		}
	}

	return buf.Bytes(), buf.Padding(), nil
}

// Decode reads count unary-encoded numbers from source starting at bit
// offset offsetBits and returns them.
//
// When optimized is false, bits are consumed one at a time (the plain
// decoder). When optimized is true, bits are read one at a time only up to
// the next byte boundary; after that, whole 0xFF bytes are consumed at
// once and the terminator is located within its byte by counting leading
// one-bits. Both paths agree on every input (verified in unary_test.go).
func Decode(source []byte, count int, optimized bool, offsetBits int) ([]uint64, error) {
	values := make([]uint64, 0, count)
	offset := offsetBits

	for len(values) < count {
		n, newOffset, err := DecodeOne(source, optimized, offset)
		if err != nil {
			return nil, err
		}

		values = append(values, n)
		offset = newOffset
	}

	return values, nil
}

// DecodeOne reads a single unary-encoded value starting at bit offset
// offsetBits and returns the value together with the bit offset
// immediately following its terminating zero bit. GammaEncoder composes
// with this directly so it knows exactly where the low-bits payload that
// follows a gamma code's unary prefix begins.
func DecodeOne(source []byte, optimized bool, offsetBits int) (uint64, int, error) {
	if optimized {
		return decodeOneOptimized(source, offsetBits)
	}

	return decodeOnePlain(source, offsetBits)
}

// decodeOnePlain reads one unary value bit by bit.
func decodeOnePlain(source []byte, offset int) (uint64, int, error) {
	ones := uint64(0)
	pos := offset

	for {
		bit, err := readBit(source, pos)
		if err != nil {
			return 0, 0, err
		}
		pos++
		if bit == 0 {
			return ones + 1, pos, nil
		}
		ones++
	}
}

// decodeOneOptimized reads one unary value, consuming whole bytes of
// all-one-bits at a time instead of bit by bit.
//
// It first walks bit-by-bit up to the next byte boundary (so the fast path
// below only ever has to reason about byte-aligned runs), then consumes
// whole 0xFF bytes as 8 ones each, and finally locates the terminating zero
// bit within the first non-0xFF byte via bits.LeadingZeros8.
func decodeOneOptimized(source []byte, offset int) (uint64, int, error) {
	ones := uint64(0)
	pos := offset

	// Bit-by-bit until byte-aligned or the terminator is found.
	for pos%8 != 0 {
		bit, err := readBit(source, pos)
		if err != nil {
			return 0, 0, err
		}
		pos++
		if bit == 0 {
			return ones + 1, pos, nil
		}
		ones++
	}

	// Byte-aligned fast path.
	for {
		byteIdx := pos / 8
		if byteIdx >= len(source) {
			return 0, 0, fmt.Errorf("unary: stream ended mid-value at bit %d: %w", pos, errs.ErrTruncatedStream)
		}

		b := source[byteIdx]
		if b == 0xFF {
			ones += 8
			pos += 8

			continue
		}

		// bits.LeadingZeros8(^b) counts the leading run of 1-bits in b,
		// which is exactly how many ones precede the terminating zero
		// since pos is byte-aligned here.
		leadingOnes := bits.LeadingZeros8(^b)
		ones += uint64(leadingOnes)
		pos += leadingOnes + 1

		return ones + 1, pos, nil
	}
}

func readBit(source []byte, pos int) (int, error) {
	v, err := bitio.ReadBits(source, pos, 1)
	if err != nil {
		return 0, fmt.Errorf("unary: stream ended mid-value at bit %d: %w", pos, errs.ErrTruncatedStream)
	}

	return int(v), nil
}
