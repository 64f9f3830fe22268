// Package bitpacking implements fixed-width bit packing: every value in a
// list is packed into exactly width = bits(max(list)) bits, MSB-first
// within each byte.
//
// Width is not self-describing in the core wire format: the caller must
// carry it separately, or use EncodeSelfDescribing/DecodeSelfDescribing,
// which prefix a single width byte for self-describing use.
package bitpacking

import (
	"fmt"

	"github.com/gustingonzalez/ircodecs-go/bitio"
	"github.com/gustingonzalez/ircodecs-go/errs"
)

// Width returns the bit width required to pack every value in values:
// bits(max(values)). An empty list has width 0.
func Width(values []uint64) int {
	var max uint64
	for _, v := range values {
		if v > max {
			max = v
		}
	}

	return bitio.BitsLen(max)
}

// Encode packs every value in values at a fixed width equal to Width(values)
// and returns the packed bytes and padding (the number of unused trailing
// bits in the final byte).
func Encode(values []uint64) ([]byte, int, error) {
	width := Width(values)

	return EncodeWidth(values, width)
}

// EncodeWidth packs every value in values at the given fixed width. It
// returns errs.ErrValueTooLarge if any value does not fit in width bits.
func EncodeWidth(values []uint64, width int) ([]byte, int, error) {
	if width < 0 || width > 64 {
		return nil, 0, fmt.Errorf("bitpacking: width %d out of range [0, 64]", width)
	}

	n := len(values)
	packedLen := bitio.PackedLength(n, width)
	buf := make([]byte, packedLen)

	for i, v := range values {
		if width < 64 && v >= uint64(1)<<uint(width) {
			return nil, 0, fmt.Errorf("bitpacking: value %d does not fit in %d bits: %w", v, width, errs.ErrValueTooLarge)
		}
		if err := bitio.WriteBits(buf, i*width, v, width); err != nil {
			return nil, 0, err
		}
	}

	padding := (8 - (n*width)%8) % 8

	return buf, padding, nil
}

// Decode reads count values, each exactly width bits wide, MSB-first, from
// data.
func Decode(data []byte, count int, width int) ([]uint64, error) {
	if width == 0 {
		return make([]uint64, count), nil
	}
	if width < 0 || width > 64 {
		return nil, fmt.Errorf("bitpacking: width %d out of range [0, 64]", width)
	}

	needed := bitio.PackedLength(count, width)
	if len(data) < needed {
		return nil, fmt.Errorf("bitpacking: need %d bytes for %d values at width %d, have %d: %w",
			needed, count, width, len(data), errs.ErrTruncatedStream)
	}

	values := make([]uint64, count)
	for i := 0; i < count; i++ {
		v, err := bitio.ReadBits(data, i*width, width)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}

	return values, nil
}

// EncodeSelfDescribing packs values the same way as Encode but prefixes the
// output with a single byte holding the chosen width (0-64, so a byte is
// always sufficient), letting DecodeSelfDescribing recover it without an
// out-of-band channel.
func EncodeSelfDescribing(values []uint64) ([]byte, int, error) {
	width := Width(values)
	packed, padding, err := EncodeWidth(values, width)
	if err != nil {
		return nil, 0, err
	}

	out := make([]byte, 0, len(packed)+1)
	out = append(out, byte(width))
	out = append(out, packed...)

	return out, padding, nil
}

// DecodeSelfDescribing is the inverse of EncodeSelfDescribing: it reads the
// width prefix byte, then decodes count values.
func DecodeSelfDescribing(data []byte, count int) ([]uint64, error) {
	if len(data) < 1 {
		return nil, fmt.Errorf("bitpacking: missing width prefix byte: %w", errs.ErrTruncatedStream)
	}
	width := int(data[0])

	return Decode(data[1:], count, width)
}
