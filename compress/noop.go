package compress

// NoOpCompressor passes data through unchanged.
//
// Useful as a baseline when benchmarking the other codecs, or when a block
// is already compressed upstream (e.g. by the storage layer) and a second
// compression pass would only cost CPU for no size reduction.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a pass-through compressor.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns data unmodified. The returned slice aliases data; callers
// must not mutate data afterward if they still hold the result.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data unmodified, mirroring Compress.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
