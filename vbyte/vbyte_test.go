package vbyte

import (
	"errors"
	"testing"

	"github.com/gustingonzalez/ircodecs-go/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode_ZeroByteCount(t *testing.T) {
	assert.Equal(t, 1, len(Encode(0)))
	assert.Equal(t, []byte{0x00}, Encode(0))
}

func TestEncode_KnownValues(t *testing.T) {
	// 128 -> continuation byte carrying the low 7 bits (0), then 1.
	assert.Equal(t, []byte{0x80, 0x01}, Encode(128))
	// 200 = 0b11001000 -> low 7 bits 0b1001000=0x48 with continuation, then 1.
	assert.Equal(t, []byte{0xC8, 0x01}, Encode(200))
	assert.Equal(t, []byte{0x01}, Encode(1))
}

func TestEncodeAll_SmallValues(t *testing.T) {
	values := []uint64{0, 1, 3, 7, 15, 31, 63, 127}
	want := []byte{0x00, 0x01, 0x03, 0x07, 0x0F, 0x1F, 0x3F, 0x7F}

	assert.Equal(t, want, EncodeAll(values))
}

func TestDecode_RoundTrip(t *testing.T) {
	values := []uint64{200, 128, 1, 0, 1 << 40, 16383, 16384}

	encoded := EncodeAll(values)
	decoded, err := Decode(encoded)
	require.NoError(t, err)
	assert.Equal(t, values, decoded)
}

func TestDecode_Empty(t *testing.T) {
	decoded, err := Decode(nil)
	require.NoError(t, err)
	assert.Nil(t, decoded)
}

func TestDecode_TruncatedStream(t *testing.T) {
	// continuation bit set but nothing follows
	_, err := Decode([]byte{0x81})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrTruncatedStream))
}

func TestDecodeNumber_AtOffset(t *testing.T) {
	encoded := EncodeAll([]uint64{5, 300, 9000})

	v1, off1, err := DecodeNumber(encoded, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), v1)

	v2, off2, err := DecodeNumber(encoded, off1)
	require.NoError(t, err)
	assert.Equal(t, uint64(300), v2)

	v3, off3, err := DecodeNumber(encoded, off2)
	require.NoError(t, err)
	assert.Equal(t, uint64(9000), v3)
	assert.Equal(t, len(encoded)*8, off3)
}

func TestEncodeDecode_BitsLenBoundary(t *testing.T) {
	for _, v := range []uint64{0, 1, 127, 128, 16383, 16384, 1 << 63, ^uint64(0)} {
		encoded := Encode(v)
		decoded, _, err := DecodeNumber(encoded, 0)
		require.NoError(t, err)
		assert.Equal(t, v, decoded)
	}
}
