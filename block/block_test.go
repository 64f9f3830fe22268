package block

import (
	"testing"

	"github.com/gustingonzalez/ircodecs-go/errs"
	"github.com/gustingonzalez/ircodecs-go/format"
	"github.com/gustingonzalez/ircodecs-go/vbyte"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapUnwrap_RoundTrip(t *testing.T) {
	values := []uint64{5, 10, 20, 40, 80, 160, 320, 640}
	payload := vbyte.EncodeAll(values)

	for _, compression := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		wrapped, err := Wrap(payload, format.CodecVByte, compression)
		require.NoError(t, err)

		codecType, unwrapped, err := Unwrap(wrapped)
		require.NoError(t, err)
		assert.Equal(t, format.CodecVByte, codecType)
		assert.Equal(t, payload, unwrapped)

		decoded, err := vbyte.Decode(unwrapped)
		require.NoError(t, err)
		assert.Equal(t, values, decoded)
	}
}

func TestUnwrap_MissingTag(t *testing.T) {
	_, _, err := Unwrap(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrTruncatedStream)
}

func TestUnwrap_UnknownTag(t *testing.T) {
	_, _, err := Unwrap([]byte{0x05, 0xFF, 0x01, 0x02})
	require.Error(t, err)
}
