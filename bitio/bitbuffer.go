package bitio

import (
	"iter"

	"github.com/gustingonzalez/ircodecs-go/internal/pool"
)

// BitByteArray is a growable, bit-addressable byte buffer.
//
// It is the bit sink used by UnaryEncoder, GammaEncoder, and
// EliasFanoEncoder's EF path: each of those codecs appends a variable
// number of bits per value and needs the result byte-aligned only at the
// very end.
//
// Internal state:
//   - buf: backing bytes, grown on demand via the internal byte-buffer pool
//   - bitLen: total number of meaningful bits written so far
//
// Invariant: bits at position ≥ bitLen within the backing bytes are always
// 0 — appends extend the buffer and then write into the newly extended
// region, they never leave stale bits behind.
type BitByteArray struct {
	buf    *pool.ByteBuffer
	bitLen int
}

// NewBitByteArray creates an empty BitByteArray ready to accept bits.
func NewBitByteArray() *BitByteArray {
	return &BitByteArray{buf: pool.GetByteBuffer()}
}

// BitLength returns the exact number of meaningful bits written.
func (a *BitByteArray) BitLength() int {
	return a.bitLen
}

// Padding returns the number of unused trailing bits in the final byte:
// (8 - bitLen mod 8) mod 8.
func (a *BitByteArray) Padding() int {
	return (8 - a.bitLen%8) % 8
}

// Bytes returns the backing byte slice. The final byte, if partially
// filled, has its unused low bits set to 0.
func (a *BitByteArray) Bytes() []byte {
	return a.buf.Bytes()
}

// growForBits ensures the backing buffer has enough bytes to hold the next
// extra bits beyond the current bit length.
func (a *BitByteArray) growForBits(extra int) {
	needed := PackedLength(a.bitLen+extra, 1)
	if have := a.buf.Len(); have < needed {
		a.buf.Grow(needed - have)
		a.buf.SetLength(needed)
		// A pooled buffer may hold bytes from an earlier user past its old
		// length; zero them so no stale bit lands past bitLen.
		clear(a.buf.Bytes()[have:needed])
	}
}

// AppendBits writes the k low bits of value onto the end of the buffer,
// most-significant-bit-first, and advances the bit cursor by k.
func (a *BitByteArray) AppendBits(value uint64, k int) error {
	if k <= 0 {
		return nil
	}

	a.growForBits(k)
	if err := WriteBits(a.buf.Bytes(), a.bitLen, value, k); err != nil {
		return err
	}
	a.bitLen += k

	return nil
}

// AppendBit appends a single bit (0 or nonzero treated as 1).
func (a *BitByteArray) AppendBit(b int) error {
	v := uint64(0)
	if b != 0 {
		v = 1
	}

	return a.AppendBits(v, 1)
}

// Append concatenates another bit source onto the end of this buffer.
//
// other is the backing bytes of a second bit buffer and padding is the
// number of unused trailing bits in other's last byte, i.e. exactly what
// BitByteArray.Padding returns for that buffer. The source's meaningful bit
// length is therefore len(other)*8 - padding, and Append advances this
// buffer's cursor by exactly that many bits regardless of byte alignment:
// concatenation shifts bit-by-bit rather than byte-copying, so the result
// is identical whether or not this buffer ends on a byte boundary.
func (a *BitByteArray) Append(other []byte, padding int) error {
	otherBits := len(other)*8 - padding
	if otherBits <= 0 {
		return nil
	}

	// Byte-aligned fast path: no bit shifting needed.
	if a.bitLen%8 == 0 {
		a.growForBits(otherBits)
		start := a.bitLen / 8
		copy(a.buf.Bytes()[start:], other)
		a.bitLen += otherBits

		return nil
	}

	// Slow path: read up to 32 bits at a time from other and append; ReadBits
	// handles the final partial byte by only ever being asked for exactly
	// otherBits total.
	remaining := otherBits
	pos := 0
	for remaining > 0 {
		chunk := 32
		if remaining < chunk {
			chunk = remaining
		}
		v, err := ReadBits(other, pos, chunk)
		if err != nil {
			return err
		}
		if err := a.AppendBits(v, chunk); err != nil {
			return err
		}
		pos += chunk
		remaining -= chunk
	}

	return nil
}

// IterBits returns a finite, restartable iterator over the buffer's
// meaningful bits in MSB-first order. Each call to IterBits walks the
// buffer from the start; it does not consume or mutate the buffer.
func (a *BitByteArray) IterBits() iter.Seq[int] {
	return func(yield func(int) bool) {
		data := a.buf.Bytes()
		for i := 0; i < a.bitLen; i++ {
			byteIdx := i / 8
			shift := uint(7 - i%8)
			bit := int((data[byteIdx] >> shift) & 1)
			if !yield(bit) {
				return
			}
		}
	}
}
