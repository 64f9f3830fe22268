package compress

import (
	"fmt"

	"github.com/gustingonzalez/ircodecs-go/format"
)

// Compressor compresses an already bit/byte-encoded block.
//
// Compression is always a layer outside a codec's own wire format: callers
// compress and decompress the opaque bytes a codec produced, never mix
// compression into a codec's encode/decode path.
type Compressor interface {
	// Compress compresses data and returns the compressed result.
	//
	// Memory management:
	//   - Returned slice is owned by the caller; it is newly allocated,
	//     except that NoOpCompressor returns data itself
	//   - Input slice is not modified
	//   - Internal buffers may be reused for efficiency
	Compress(data []byte) ([]byte, error)
}

// Decompressor is the inverse of Compressor.
//
// Thread Safety: Decompressor implementations must be safe for concurrent
// use or document their thread safety requirements clearly.
type Decompressor interface {
	// Decompress decompresses data and returns the original result.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// CompressionStats carries timing and size information about one
// compress/decompress pass, useful when choosing an algorithm per block.
type CompressionStats struct {
	// Algorithm identifies the compression algorithm used.
	Algorithm format.CompressionType

	// OriginalSize is the size of input data before compression.
	OriginalSize int64

	// CompressedSize is the size of data after compression.
	CompressedSize int64

	// CompressionTimeNs is the time taken to compress the data.
	CompressionTimeNs int64

	// DecompressionTimeNs is the time taken to decompress the data (if
	// applicable).
	DecompressionTimeNs int64
}

// CompressionRatio returns compressed size / original size. Values below
// 1.0 indicate the compression shrank the block.
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns space saved as a percentage (0-100).
func (s CompressionStats) SpaceSavings() float64 {
	return (1.0 - s.CompressionRatio()) * 100.0
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// CreateCodec returns a Codec for the given compression type. target names
// the caller's use, for error messages only.
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	codec, ok := builtinCodecs[compressionType]
	if !ok {
		return nil, fmt.Errorf("compress: invalid %s compression: %s", target, compressionType)
	}

	return codec, nil
}

// GetCodec retrieves a built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("compress: unsupported compression type: %s", compressionType)
}
