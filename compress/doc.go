// Package compress provides compression codecs for already-encoded block
// output.
//
// # Overview
//
// A block package wraps the byte output of any of the posting-list codecs
// (VByte, BitPacking, Unary/Gamma, Simple16, PFor, EF Local) with an
// optional outer compression pass:
//
//  1. **Encoding**: one of the codecs in this module exploits patterns
//     specific to posting lists (gaps, small integers, dense universes).
//  2. **Compression**: a general-purpose algorithm further reduces the
//     already-encoded bytes, useful when many blocks share structure (for
//     example, repeated small gaps across postings for common terms).
//
// This package implements the second stage, supporting four algorithms:
//   - None: no compression (fastest, largest)
//   - Zstd: best compression ratio, moderate speed
//   - S2: balanced compression and speed
//   - LZ4: fast decompression, moderate compression ratio
//
// # Architecture
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// # Algorithm selection
//
// | Workload               | Recommended | Reason                          |
// |------------------------|-------------|----------------------------------|
// | Storage-constrained    | Zstd        | Best compression ratio           |
// | Query-heavy            | LZ4         | Fastest decompression            |
// | Balanced ingestion     | S2          | Good speed and compression       |
// | CPU-constrained        | None        | No compression overhead          |
//
// # Thread safety
//
// All codec implementations are safe for concurrent use across goroutines:
// Zstd and LZ4 pool their encoders/decoders internally, while NoOp and S2
// keep no state.
//
// # Error handling
//
// Decompress returns an error if the input was
// corrupted or compressed with a different algorithm than the one the
// codec expects. Compress failures are rare — out-of-memory is the only
// realistic cause.
package compress
