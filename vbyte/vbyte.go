// Package vbyte implements Variable Byte (VByte) encoding: each value is
// split into 7-bit groups, least-significant group first, one group per
// byte. The high bit of each byte is a continuation flag — 1 means another
// byte follows, 0 marks the last byte of the value.
//
// VByte is the only codec in this module with random access to a single
// value: DecodeNumber reads one value starting at an arbitrary byte-aligned
// offset without needing to decode the whole stream.
package vbyte

import (
	"fmt"

	"github.com/gustingonzalez/ircodecs-go/errs"
	"github.com/gustingonzalez/ircodecs-go/internal/pool"
)

const continuationBit = 0x80
const payloadMask = 0x7f

// Encode encodes a single value as a VByte byte sequence. A value of 0
// encodes as a single zero byte.
func Encode(v uint64) []byte {
	var out []byte
	for {
		b := byte(v & payloadMask)
		v >>= 7
		if v != 0 {
			out = append(out, b|continuationBit)

			continue
		}
		out = append(out, b)

		break
	}

	return out
}

// EncodeAll encodes every value in values and concatenates the results into
// a single byte stream, in order.
func EncodeAll(values []uint64) []byte {
	buf := pool.GetByteBuffer()
	defer pool.PutByteBuffer(buf)

	for _, v := range values {
		enc := Encode(v)
		buf.Grow(len(enc))
		buf.B = append(buf.B, enc...)
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out
}

// Decode decodes every value from data, consuming all bytes. It returns
// errs.ErrTruncatedStream if the stream ends with a byte whose continuation
// bit is still set.
func Decode(data []byte) ([]uint64, error) {
	var values []uint64

	offset := 0
	for offset < len(data)*8 {
		v, newOffset, err := DecodeNumber(data, offset)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
		offset = newOffset
	}

	return values, nil
}

// DecodeNumber reads a single VByte-encoded number starting at byte
// ⌊bitOffset/8⌋ and returns the decoded value along with the bit offset
// immediately after the terminating byte (always a multiple of 8).
//
// DecodeNumber returns errs.ErrTruncatedStream if the stream ends before a
// terminating byte (continuation bit clear) is found.
func DecodeNumber(data []byte, bitOffset int) (uint64, int, error) {
	byteIdx := bitOffset / 8

	var value uint64
	shift := uint(0)
	for {
		if byteIdx >= len(data) {
			return 0, 0, fmt.Errorf("vbyte: stream ended mid-value at byte %d: %w", byteIdx, errs.ErrTruncatedStream)
		}

		b := data[byteIdx]
		value |= uint64(b&payloadMask) << shift
		byteIdx++

		if b&continuationBit == 0 {
			break
		}
		shift += 7
	}

	return value, byteIdx * 8, nil
}
