// Package simple16 implements the Simple16 codec: each 32-bit word holds a
// 4-bit selector in its top bits followed by a fixed number of equal-width
// payload slots packed into the remaining 28 bits. Encode greedily chooses,
// for every group of upcoming values, the selector packing the most values
// per word whose width still fits them all.
package simple16

import (
	"fmt"

	"github.com/gustingonzalez/ircodecs-go/endian"
	"github.com/gustingonzalez/ircodecs-go/errs"
)

var wireEndian = endian.GetBigEndianEngine()

// fits reports whether every value in values[:n] fits in width bits, where
// n = min(len(values), limit).
func fits(values []uint64, limit, width int) bool {
	n := limit
	if len(values) < n {
		n = len(values)
	}

	max := uint64(1) << uint(width)
	for i := 0; i < n; i++ {
		if values[i] >= max {
			return false
		}
	}

	return true
}

// chooseSelector returns the index of the first (smallest) selector in
// table whose width accommodates every real value among the next
// table[sel].count values of remaining.
func chooseSelector(remaining []uint64) (int, error) {
	for sel, cfg := range table {
		if fits(remaining, cfg.count, cfg.width) {
			return sel, nil
		}
	}

	return 0, fmt.Errorf("simple16: value %d exceeds the 28-bit payload limit: %w", remaining[0], errs.ErrValueTooLarge)
}

// packWord packs up to cfg.count values from remaining (missing slots, past
// the end of remaining, are zero-filled) under selector sel.
func packWord(sel int, remaining []uint64) uint32 {
	cfg := table[sel]
	word := uint32(sel) << 28

	for j := 0; j < cfg.count; j++ {
		var v uint64
		if j < len(remaining) {
			v = remaining[j]
		}

		shift := uint(28 - (j+1)*cfg.width)
		word |= uint32(v) << shift
	}

	return word
}

// Encode packs values into a sequence of Simple16 words, each holding up to
// 28 values. It returns errs.ErrValueTooLarge if any value exceeds 2^28-1,
// since no selector (not even the single-slot 28-bit one) can represent it.
func Encode(values []uint64) ([]uint32, error) {
	words := make([]uint32, 0, (len(values)/7)+1)

	for i := 0; i < len(values); {
		sel, err := chooseSelector(values[i:])
		if err != nil {
			return nil, err
		}

		words = append(words, packWord(sel, values[i:]))
		i += table[sel].count
	}

	return words, nil
}

// Decode unpacks count values from words. Words are consumed in order;
// slots beyond count in the final word (zero-padding left by Encode) are
// discarded.
func Decode(words []uint32, count int) ([]uint64, error) {
	values := make([]uint64, 0, count)

	for _, word := range words {
		if len(values) >= count {
			break
		}

		sel := int(word >> 28)
		cfg := table[sel]
		mask := uint32(1)<<uint(cfg.width) - 1

		for j := 0; j < cfg.count && len(values) < count; j++ {
			shift := uint(28 - (j+1)*cfg.width)
			values = append(values, uint64((word>>shift)&mask))
		}
	}

	if len(values) < count {
		return nil, fmt.Errorf("simple16: %d words decoded only %d of %d requested values: %w",
			len(words), len(values), count, errs.ErrTruncatedStream)
	}

	return values, nil
}

// WordsToBytes serializes words to big-endian bytes, matching the wire byte
// order every other codec in this module uses.
func WordsToBytes(words []uint32) []byte {
	out := make([]byte, 4*len(words))
	for i, w := range words {
		wireEndian.PutUint32(out[i*4:], w)
	}

	return out
}

// BytesToWords is the inverse of WordsToBytes. data's length must be a
// multiple of 4.
func BytesToWords(data []byte) ([]uint32, error) {
	if len(data)%4 != 0 {
		return nil, fmt.Errorf("simple16: %d bytes is not a multiple of 4: %w", len(data), errs.ErrTruncatedStream)
	}

	words := make([]uint32, len(data)/4)
	for i := range words {
		words[i] = wireEndian.Uint32(data[i*4:])
	}

	return words, nil
}
