// Package gamma implements Elias gamma coding: a value n >= 1 is written as
// unary(⌊log2 n⌋ + 1) followed by the ⌊log2 n⌋ low bits of n. n = 1 encodes
// as the single unary-encoded value 1, i.e. a lone "0" bit.
package gamma

import (
	"fmt"

	"github.com/gustingonzalez/ircodecs-go/bitio"
	"github.com/gustingonzalez/ircodecs-go/errs"
	"github.com/gustingonzalez/ircodecs-go/unary"
)

// EncodeInto appends the gamma encoding of n (n >= 1) onto buf.
func EncodeInto(buf *bitio.BitByteArray, n uint64) error {
	if n == 0 {
		return fmt.Errorf("gamma: value must be >= 1, got 0: %w", errs.ErrValueTooLarge)
	}

	l := bitio.BitsLen(n) - 1
	if err := unary.EncodeInto(buf, uint64(l+1)); err != nil {
		return err
	}
	if l == 0 {
		return nil
	}

	low := n &^ (uint64(1) << uint(l)) // clear the leading 1 bit

	return buf.AppendBits(low, l)
}

// Encode encodes a single value n and returns its byte representation along
// with the padding.
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

// Decode reads count gamma-encoded numbers from source starting at bit
// offset offsetBits and returns them.
func Decode(source []byte, count int, offsetBits int) ([]uint64, error) {
	values := make([]uint64, 0, count)
	offset := offsetBits

	for len(values) < count {
		u, newOffset, err := unary.DecodeOne(source, true, offset)
		if err != nil {
			return nil, err
		}
		l := int(u) - 1
		offset = newOffset

		if l == 0 {
			values = append(values, 1)

			continue
		}

		low, err := bitio.ReadBits(source, offset, l)
		if err != nil {
			return nil, fmt.Errorf("gamma: reading %d low bits at offset %d: %w", l, offset, errs.ErrTruncatedStream)
		}
		offset += l

		values = append(values, (uint64(1)<<uint(l))|low)
	}

	return values, nil
}
