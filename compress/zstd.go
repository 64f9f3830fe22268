package compress

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// ZstdCompressor compresses block output with Zstandard.
//
// Best suited for scenarios where compression ratio matters more than
// compression speed: cold storage of archived posting lists, or network
// transfer where bandwidth is the bottleneck.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}

// zstdDecoderPool pools zstd decoders for reuse. klauspost/compress/zstd is
// explicitly designed for decoder reuse: "The decoder has been designed to
// operate without allocations after a warmup."
var zstdDecoderPool = sync.Pool{
	New: func() any {
		decoder, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderLowmem(false),
		)
		if err != nil {
			panic(fmt.Sprintf("compress: failed to create zstd decoder for pool: %v", err))
		}

		return decoder
	},
}

// zstdEncoderPool pools zstd encoders for reuse.
var zstdEncoderPool = sync.Pool{
	New: func() any {
		encoder, err := zstd.NewWriter(nil,
			zstd.WithEncoderLevel(zstd.SpeedDefault),
			zstd.WithEncoderCRC(false),
		)
		if err != nil {
			panic(fmt.Sprintf("compress: failed to create zstd encoder for pool: %v", err))
		}

		return encoder
	},
}

// Compress compresses data using a pooled Zstd encoder.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	encoder := zstdEncoderPool.Get().(*zstd.Encoder)
	defer zstdEncoderPool.Put(encoder)

	return encoder.EncodeAll(data, nil), nil
}

// Decompress decompresses Zstd-compressed data using a pooled decoder.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	decoder := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(decoder)

	decompressed, err := decoder.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("compress: zstd decompression failed: %w", err)
	}

	return decompressed, nil
}
