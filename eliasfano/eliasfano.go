// Package eliasfano implements chunk-local Elias-Fano ("EF Local"): a
// monotone chunk C is rewritten as a leading offset x plus a derived
// non-decreasing residual sequence F, which is then encoded either as a
// dense bitmap or as classic Elias-Fano depending on how dense F is within
// its own universe.
package eliasfano

import (
	"fmt"
	"math/bits"

	"github.com/gustingonzalez/ircodecs-go/bitio"
	"github.com/gustingonzalez/ircodecs-go/errs"
	"github.com/gustingonzalez/ircodecs-go/vbyte"
)

// Discriminator byte preceding an encoded F: which of the two payload
// shapes follows. Written as a full byte (not a single bit) so it stays
// byte-aligned and decodeF can read it with a plain slice index.
const (
	pathDense byte = 0
	pathEF    byte = 1
)

func checkNonDecreasing(c []uint64) error {
	for i := 1; i < len(c); i++ {
		if c[i] < c[i-1] {
			return fmt.Errorf("eliasfano: value %d at index %d is less than previous value %d: %w",
				c[i], i, c[i-1], errs.ErrNonMonotonic)
		}
	}

	return nil
}

// Encode encodes a non-decreasing chunk c. It returns errs.ErrNonMonotonic
// if c is not non-decreasing.
func Encode(c []uint64) ([]byte, int, error) {
	if err := checkNonDecreasing(c); err != nil {
		return nil, 0, err
	}
	if len(c) == 0 {
		return nil, 0, nil
	}
	if len(c) == 1 {
		return vbyte.Encode(c[0]), 0, nil
	}

	y := c[0]
	var x uint64
	f := make([]uint64, len(c))

	if y == 0 {
		x = 0
		copy(f, c)
	} else {
		z := min(c[1], y) - 1
		x = y - z
		f[0] = z
		for i := 1; i < len(c); i++ {
			f[i] = c[i] - y - 1
		}
	}

	buf := bitio.NewBitByteArray()
	if err := buf.Append(vbyte.Encode(x), 0); err != nil {
		return nil, 0, err
	}
	if err := buf.Append(vbyte.Encode(uint64(len(f))), 0); err != nil {
		return nil, 0, err
	}
	if err := encodeF(buf, f); err != nil {
		return nil, 0, err
	}

	return buf.Bytes(), buf.Padding(), nil
}

// Decode decodes count values from an Elias-Fano-encoded chunk.
func Decode(data []byte, count int) ([]uint64, error) {
	if count == 0 {
		return nil, nil
	}
	if count == 1 {
		v, _, err := vbyte.DecodeNumber(data, 0)
		if err != nil {
			return nil, err
		}

		return []uint64{v}, nil
	}

	offset := 0
	x, offset, err := vbyte.DecodeNumber(data, offset)
	if err != nil {
		return nil, fmt.Errorf("eliasfano: reading x: %w", err)
	}

	nF, offset, err := vbyte.DecodeNumber(data, offset)
	if err != nil {
		return nil, fmt.Errorf("eliasfano: reading n_F: %w", err)
	}
	if int(nF) != count {
		return nil, fmt.Errorf("eliasfano: stream encodes %d values, caller requested %d: %w",
			nF, count, errs.ErrCountMismatch)
	}

	f, _, err := decodeF(data, offset, int(nF))
	if err != nil {
		return nil, err
	}

	c := make([]uint64, len(f))

	// x == 0 identifies the y == 0 degenerate branch: F is C verbatim. In
	// the general branch x >= 1 always, since x = y - min(c2, y) + 1 and
	// y >= 1 there, so the two branches never collide.
	if x == 0 {
		copy(c, f)

		return c, nil
	}

	f1 := x + f[0]
	c[0] = f1
	for i := 1; i < len(f); i++ {
		c[i] = f[i] + f1 + 1
	}

	return c, nil
}

// encodeF appends the discriminator and payload for F onto buf.
func encodeF(buf *bitio.BitByteArray, f []uint64) error {
	var u uint64
	for _, v := range f {
		if v > u {
			u = v
		}
	}

	n := uint64(len(f))
	dense := u == 0 || n > u/4

	if dense {
		if err := buf.AppendBits(uint64(pathDense), 8); err != nil {
			return err
		}
		if err := buf.Append(vbyte.Encode(u), 0); err != nil {
			return err
		}

		set := make(map[uint64]bool, len(f))
		for _, v := range f {
			set[v] = true
		}
		for p := uint64(0); p <= u; p++ {
			bit := 0
			if set[p] {
				bit = 1
			}
			if err := buf.AppendBit(bit); err != nil {
				return err
			}
		}

		return nil
	}

	if err := buf.AppendBits(uint64(pathEF), 8); err != nil {
		return err
	}
	if err := buf.Append(vbyte.Encode(u), 0); err != nil {
		return err
	}

	l := lowBitWidth(u, n)
	mask := uint64(1)<<uint(l) - 1

	for _, v := range f {
		if err := buf.AppendBits(v&mask, l); err != nil {
			return err
		}
	}

	bucket := uint64(0)
	for _, v := range f {
		target := v >> uint(l)
		for bucket < target {
			if err := buf.AppendBit(0); err != nil {
				return err
			}
			bucket++
		}
		if err := buf.AppendBit(1); err != nil {
			return err
		}
	}

	return nil
}

// lowBitWidth computes l = max(0, ⌊log2(u/n)⌋).
func lowBitWidth(u, n uint64) int {
	if n == 0 {
		return 0
	}

	ratio := u / n
	if ratio == 0 {
		return 0
	}

	return bits.Len64(ratio) - 1
}

// decodeF reads the discriminator and payload for n F-values starting at
// bit offset, returning F and the bit offset immediately past its payload.
func decodeF(data []byte, offset int, n int) ([]uint64, int, error) {
	if offset%8 != 0 || offset/8 >= len(data) {
		return nil, 0, fmt.Errorf("eliasfano: truncated stream reading F discriminator at bit %d: %w", offset, errs.ErrTruncatedStream)
	}
	disc := data[offset/8]
	offset += 8

	u, offset, err := vbyte.DecodeNumber(data, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("eliasfano: reading u: %w", err)
	}

	switch disc {
	case pathDense:
		return decodeDense(data, offset, u, n)
	case pathEF:
		return decodeEF(data, offset, u, n)
	default:
		return nil, 0, fmt.Errorf("eliasfano: unknown F discriminator %d: %w", disc, errs.ErrCorruptStream)
	}
}

func decodeDense(data []byte, offset int, u uint64, n int) ([]uint64, int, error) {
	f := make([]uint64, 0, n)

	for p := uint64(0); p <= u; p++ {
		bit, err := bitio.ReadBits(data, offset, 1)
		if err != nil {
			return nil, 0, fmt.Errorf("eliasfano: reading dense bitmap bit %d: %w", p, err)
		}
		offset++

		if bit == 1 {
			f = append(f, p)
		}
	}

	if len(f) != n {
		return nil, 0, fmt.Errorf("eliasfano: dense bitmap has %d set bits, expected %d: %w", len(f), n, errs.ErrCorruptStream)
	}

	return f, offset, nil
}

func decodeEF(data []byte, offset int, u uint64, n int) ([]uint64, int, error) {
	l := lowBitWidth(u, uint64(n))

	low := make([]uint64, n)
	for i := range low {
		v, err := bitio.ReadBits(data, offset, l)
		if err != nil {
			return nil, 0, fmt.Errorf("eliasfano: reading low bits %d: %w", i, err)
		}
		offset += l
		low[i] = v
	}

	f := make([]uint64, n)
	bucket := uint64(0)
	for i := range f {
		for {
			bit, err := bitio.ReadBits(data, offset, 1)
			if err != nil {
				return nil, 0, fmt.Errorf("eliasfano: reading upper vector past bit %d: %w", offset, err)
			}
			offset++

			if bit == 1 {
				break
			}
			bucket++
		}

		f[i] = (bucket << uint(l)) | low[i]
	}

	return f, offset, nil
}
