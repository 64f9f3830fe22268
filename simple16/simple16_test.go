package simple16

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

	words, err := Encode(values)
	require.NoError(t, err)
	require.Len(t, words, 5) // ceil(128/28)

	for i, w := range words[:4] {
		assert.Equalf(t, uint32(0), w>>28, "word %d should use selector 0", i)
	}

	decoded, err := Decode(words, 128)
	require.NoError(t, err)
	assert.Equal(t, values, decoded)
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	tests := [][]uint64{
		{0},
		{0, 0, 0},
		{1, 2, 3, 4, 5},
		{255, 255, 255, 255},
		{1 << 20, 1 << 10, 3},
		{1<<28 - 1},
	}

	for _, values := range tests {
		words, err := Encode(values)
		require.NoError(t, err)

		decoded, err := Decode(words, len(values))
		require.NoError(t, err)
		assert.Equal(t, values, decoded)
	}
}

func TestEncode_PicksSmallestFittingSelector(t *testing.T) {
	// 28 values that all fit in 1 bit must use selector 0 alone.
	values := make([]uint64, 28)
	for i := range values {
		values[i] = uint64(i % 2)
	}

	words, err := Encode(values)
	require.NoError(t, err)
	require.Len(t, words, 1)
	assert.Equal(t, uint32(0), words[0]>>28)
}

func TestEncode_ValueTooLarge(t *testing.T) {
	_, err := Encode([]uint64{1 << 28})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrValueTooLarge))
}

func TestDecode_TruncatedStream(t *testing.T) {
	words, err := Encode([]uint64{1, 2, 3})
	require.NoError(t, err)

	_, err = Decode(words, 100)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrTruncatedStream))
}

func TestWordsToBytes_RoundTrip(t *testing.T) {
	words, err := Encode([]uint64{5, 10, 20, 40, 80, 160})
	require.NoError(t, err)

	data := WordsToBytes(words)
	assert.Equal(t, 4*len(words), len(data))

	back, err := BytesToWords(data)
	require.NoError(t, err)
	assert.Equal(t, words, back)
}

func TestBytesToWords_NotMultipleOfFour(t *testing.T) {
	_, err := BytesToWords([]byte{0x00, 0x01, 0x02})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrTruncatedStream))
}

func TestEncode_MixedWidthsUsesWiderSelectorForOutlier(t *testing.T) {
	// A single large value alongside small ones must force a selector
	// wide enough to hold it, not selector 0.
	values := []uint64{1, 2, 3, 1 << 20}

	words, err := Encode(values)
	require.NoError(t, err)

	decoded, err := Decode(words, len(values))
	require.NoError(t, err)
	assert.Equal(t, values, decoded)
}
