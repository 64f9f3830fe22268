package bitpacking

import (
	"errors"
	"testing"

	"github.com/gustingonzalez/ircodecs-go/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode_SeedScenario(t *testing.T) {
	values := make([]uint64, 128)
	for i := range values {
		values[i] = uint64(i + 1)
	}

	encoded, padding, err := Encode(values)
	require.NoError(t, err)
	assert.Equal(t, 8, Width(values))  // bits(128) = 8
	assert.Equal(t, 128, len(encoded)) // ceil(128*8/8)
	assert.Equal(t, 0, padding)

	decoded, err := Decode(encoded, 128, 8)
	require.NoError(t, err)
	assert.Equal(t, values, decoded)
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	tests := [][]uint64{
		{0},
		{0, 0, 0},
		{1, 2, 3, 4, 5},
		{1000000, 2000000, 1},
		{255, 255, 255, 255},
	}

	for _, values := range tests {
		encoded, padding, err := Encode(values)
		require.NoError(t, err)
		assert.Equal(t, (8-padding)%8 >= 0, true)

		decoded, err := Decode(encoded, len(values), Width(values))
		require.NoError(t, err)
		assert.Equal(t, values, decoded)
	}
}

func TestEncodeWidth_ValueTooLarge(t *testing.T) {
	_, _, err := EncodeWidth([]uint64{1, 2, 300}, 8)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrValueTooLarge))
}

func TestDecode_TruncatedStream(t *testing.T) {
	_, err := Decode([]byte{0x00}, 10, 7)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrTruncatedStream))
}

func TestSelfDescribing_RoundTrip(t *testing.T) {
	values := []uint64{5, 10, 20, 40, 80}

	encoded, _, err := EncodeSelfDescribing(values)
	require.NoError(t, err)

	decoded, err := DecodeSelfDescribing(encoded, len(values))
	require.NoError(t, err)
	assert.Equal(t, values, decoded)
}

func TestWidth_Empty(t *testing.T) {
	assert.Equal(t, 0, Width(nil))
}

func TestDecode_ZeroWidth(t *testing.T) {
	decoded, err := Decode(nil, 5, 0)
	require.NoError(t, err)
	assert.Equal(t, []uint64{0, 0, 0, 0, 0}, decoded)
}
