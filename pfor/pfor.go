// Package pfor implements PForDelta-family codecs (NewPFD and OptPFD):
// fixed-size blocks of values are bit-packed at a per-block width b that
// fits the bulk of the block, with outliers recorded as exceptions rather
// than forcing every value in the block to the width of its largest member.
//
// Each block header carries an XXHash64 checksum of its packed region;
// Decode returns errs.ErrCorruptStream if the packed bytes don't match.
package pfor

import (
	"fmt"
	"sort"

	"github.com/cespare/xxhash/v2"
	"github.com/gustingonzalez/ircodecs-go/endian"
	"github.com/gustingonzalez/ircodecs-go/errs"
	"github.com/gustingonzalez/ircodecs-go/internal/pool"
	"github.com/gustingonzalez/ircodecs-go/simple16"
)

var wireEndian = endian.GetBigEndianEngine()

// BlockSize is the default block size used by Encode: a power of two.
const BlockSize = 128

// headerLen is the fixed-size portion of a block header: b (1 byte),
// number of exceptions (4 bytes), packed word count (4 bytes), exception
// index word count (4 bytes), exception high-bits word count (4 bytes),
// checksum (8 bytes). All multi-byte fields are big-endian.
const headerLen = 1 + 4 + 4 + 4 + 4 + 8

// Variant selects how a block's bit width b is chosen.
type Variant int

const (
	// NewPFD fixes b by the 90th-percentile rule: the smallest b such
	// that at least 90% of the block's values fit in b bits.
	NewPFD Variant = iota
	// OptPFD explores every candidate b from 0 to 32 and picks the one
	// minimizing total encoded bits (packed region plus exceptions).
	OptPFD
)

// percentileWidth returns the bit width of the value at the 90th-percentile
// position (index ⌊9n/10⌋) of values sorted by width.
func percentileWidth(values []uint64) int {
	widths := make([]int, len(values))
	for i, v := range values {
		widths[i] = bitsLen(v)
	}
	sort.Ints(widths)

	idx := (len(widths) * 9) / 10
	if idx >= len(widths) {
		idx = len(widths) - 1
	}

	return widths[idx]
}

// bitsLen returns the number of bits needed to represent v (0 needs 0 bits).
func bitsLen(v uint64) int {
	n := 0
	for v > 0 {
		n++
		v >>= 1
	}

	return n
}

// costForWidth estimates the total packed bit cost of a block at width b:
// block-size*b bits for the packed region, plus an exception for every
// value that doesn't fit.
func costForWidth(values []uint64, b int) int {
	cost := len(values) * b
	if b >= 64 {
		return cost
	}

	limit := uint64(1) << uint(b)
	for _, v := range values {
		if v >= limit {
			cost += 32 // rough fixed cost per exception slot
		}
	}

	return cost
}

// chooseWidth picks b according to variant.
func chooseWidth(values []uint64, variant Variant) int {
	if variant == NewPFD {
		return percentileWidth(values)
	}

	best := percentileWidth(values)
	bestCost := costForWidth(values, best)
	for b := 0; b <= 32; b++ {
		if c := costForWidth(values, b); c < bestCost {
			bestCost = c
			best = b
		}
	}

	return best
}

// packBits packs values into ⌈len(values)*b/32⌉ big-endian 32-bit words,
// MSB-first, truncating each value to its low b bits (exceptions carry
// their high bits separately).
func packBits(values []uint64, b int) []uint32 {
	if b == 0 {
		return nil
	}

	totalBits := len(values) * b
	words := make([]uint32, (totalBits+31)/32)

	bitPos := 0
	mask := uint64(1)<<uint(b) - 1
	for _, v := range values {
		low := v & mask
		writeBitsBE(words, bitPos, low, b)
		bitPos += b
	}

	return words
}

// writeBitsBE writes the low width bits of value into words starting at
// bitPos, MSB-first within each 32-bit word.
func writeBitsBE(words []uint32, bitPos int, value uint64, width int) {
	for i := width - 1; i >= 0; i-- {
		bit := (value >> uint(i)) & 1
		wordIdx := bitPos / 32
		bitIdx := 31 - (bitPos % 32)
		if bit != 0 {
			words[wordIdx] |= uint32(1) << uint(bitIdx)
		}
		bitPos++
	}
}

// readBitsBE reads width bits starting at bitPos from words, MSB-first.
func readBitsBE(words []uint32, bitPos int, width int) uint64 {
	var v uint64
	for i := 0; i < width; i++ {
		wordIdx := bitPos / 32
		bitIdx := 31 - (bitPos % 32)
		bit := (words[wordIdx] >> uint(bitIdx)) & 1
		v = (v << 1) | uint64(bit)
		bitPos++
	}

	return v
}

// encodeBlock encodes one block (already padded to BlockSize with zeros by
// the caller, which tracks the true count separately) and appends its
// bytes to out.
func encodeBlock(out []byte, values []uint64, variant Variant) ([]byte, error) {
	b := chooseWidth(values, variant)

	var indices, highBits []uint64
	limit := uint64(0)
	if b < 64 {
		limit = uint64(1) << uint(b)
	}

	packedValues := make([]uint64, len(values))
	for i, v := range values {
		if b < 64 && v >= limit {
			packedValues[i] = v & (limit - 1)
			indices = append(indices, uint64(i))
			highBits = append(highBits, v>>uint(b))
		} else {
			packedValues[i] = v
		}
	}

	packed := packBits(packedValues, b)
	packedBytes := simple16.WordsToBytes(packed)

	idxWords, err := simple16.Encode(indices)
	if err != nil {
		return nil, fmt.Errorf("pfor: encoding exception indices: %w", err)
	}
	idxBytes := simple16.WordsToBytes(idxWords)

	highWords, err := simple16.Encode(highBits)
	if err != nil {
		return nil, fmt.Errorf("pfor: encoding exception high bits: %w", err)
	}
	highBytes := simple16.WordsToBytes(highWords)

	checksum := xxhash.Sum64(packedBytes)

	header := make([]byte, headerLen)
	header[0] = byte(b)
	wireEndian.PutUint32(header[1:5], uint32(len(indices)))
	wireEndian.PutUint32(header[5:9], uint32(len(packed)))
	wireEndian.PutUint32(header[9:13], uint32(len(idxWords)))
	wireEndian.PutUint32(header[13:17], uint32(len(highWords)))
	wireEndian.PutUint64(header[17:25], checksum)

	out = append(out, header...)
	out = append(out, packedBytes...)
	out = append(out, idxBytes...)
	out = append(out, highBytes...)

	return out, nil
}

// Encode splits values into BlockSize-value blocks (the last padded with
// zeros) and encodes each independently. The caller must supply count =
// len(values) to Decode, since the final block may be padded.
func Encode(values []uint64, variant Variant) ([]byte, error) {
	for _, v := range values {
		if v >= 1<<32 {
			return nil, fmt.Errorf("pfor: value %d exceeds 32 bits: %w", v, errs.ErrValueTooLarge)
		}
	}

	var out []byte

	for i := 0; i < len(values); i += BlockSize {
		end := i + BlockSize
		if end > len(values) {
			end = len(values)
		}

		block := values[i:end]
		if len(block) < BlockSize {
			padded := make([]uint64, BlockSize)
			copy(padded, block)
			block = padded
		}

		var err error
		out, err = encodeBlock(out, block, variant)
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}

// decodeBlock reads one block from data starting at offset and returns the
// BlockSize decoded values along with the offset past the block.
func decodeBlock(data []byte, offset int) ([]uint64, int, error) {
	if len(data)-offset < headerLen {
		return nil, 0, fmt.Errorf("pfor: truncated block header at offset %d: %w", offset, errs.ErrTruncatedStream)
	}

	header := data[offset : offset+headerLen]
	b := int(header[0])
	numExceptions := int(wireEndian.Uint32(header[1:5]))
	packedWordCount := int(wireEndian.Uint32(header[5:9]))
	idxWordCount := int(wireEndian.Uint32(header[9:13]))
	highWordCount := int(wireEndian.Uint32(header[13:17]))
	wantChecksum := wireEndian.Uint64(header[17:25])
	pos := offset + headerLen

	packedByteLen := packedWordCount * 4
	if len(data)-pos < packedByteLen {
		return nil, 0, fmt.Errorf("pfor: truncated packed region at offset %d: %w", pos, errs.ErrTruncatedStream)
	}
	packedBytes := data[pos : pos+packedByteLen]
	pos += packedByteLen

	if xxhash.Sum64(packedBytes) != wantChecksum {
		return nil, 0, fmt.Errorf("pfor: packed region checksum mismatch at offset %d: %w", offset, errs.ErrCorruptStream)
	}

	// packedWords is scratch: every bit it holds is read out into values
	// below before this block returns, so it's pooled rather than
	// allocated fresh per block decoded.
	packedWords, releasePacked := pool.GetUint32Slice(packedWordCount)
	for i := range packedWords {
		packedWords[i] = wireEndian.Uint32(packedBytes[i*4:])
	}

	values := make([]uint64, BlockSize)
	if b > 0 {
		for i := 0; i < BlockSize; i++ {
			values[i] = readBitsBE(packedWords, i*b, b)
		}
	}
	releasePacked()

	idxByteLen := idxWordCount * 4
	if len(data)-pos < idxByteLen {
		return nil, 0, fmt.Errorf("pfor: truncated exception indices at offset %d: %w", pos, errs.ErrTruncatedStream)
	}
	idxWords, err := simple16.BytesToWords(data[pos : pos+idxByteLen])
	if err != nil {
		return nil, 0, err
	}
	pos += idxByteLen

	indices, err := simple16.Decode(idxWords, numExceptions)
	if err != nil {
		return nil, 0, err
	}

	highByteLen := highWordCount * 4
	if len(data)-pos < highByteLen {
		return nil, 0, fmt.Errorf("pfor: truncated exception high bits at offset %d: %w", pos, errs.ErrTruncatedStream)
	}
	highWords, err := simple16.BytesToWords(data[pos : pos+highByteLen])
	if err != nil {
		return nil, 0, err
	}
	pos += highByteLen

	highBits, err := simple16.Decode(highWords, numExceptions)
	if err != nil {
		return nil, 0, err
	}

	for k, idx := range indices {
		values[idx] = values[idx] | (highBits[k] << uint(b))
	}

	return values, pos, nil
}

// Decode reads blocks from data until count values have been produced,
// discarding the zero padding Encode appended to the final block.
func Decode(data []byte, count int) ([]uint64, error) {
	values := make([]uint64, 0, count)
	offset := 0

	for len(values) < count {
		block, next, err := decodeBlock(data, offset)
		if err != nil {
			return nil, err
		}
		offset = next

		take := len(block)
		if remaining := count - len(values); remaining < take {
			take = remaining
		}
		values = append(values, block[:take]...)
	}

	return values, nil
}
