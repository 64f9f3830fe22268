package compress

import "github.com/klauspost/compress/s2"

// S2Compressor compresses block output with S2, snappy's faster,
// better-compressing successor.
//
// Balances compression speed and ratio: a reasonable default when the
// caller has no strong preference either way.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates an S2 compressor with S2's default settings.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress compresses data with S2.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress decompresses S2-compressed data.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Decode(nil, data)
}
