// Package ircodecs provides a library of integer-sequence compression
// codecs for inverted-index and posting-list workloads: sequences of
// document IDs, term frequencies, or position offsets that are usually
// non-decreasing and compress well once that structure is exploited.
//
// # Core Features
//
//   - Seven posting-list codecs: Unary, Elias-Gamma, VByte, fixed-width
//     Bit Packing, Simple16, PForDelta (NewPFD/OptPFD), and chunk-local
//     Elias-Fano (EFLocal)
//   - A shared MSB-first bit-level buffer (bitio) used by every bit-level
//     codec
//   - A delta-gap helper (gaps) for transforming a non-decreasing sequence
//     into small, codec-friendly gaps and back
//   - Optional outer block compression (Zstd, S2, LZ4) layered on top of
//     any codec's output via the block package
//   - 64-bit xxHash block checksums for PFor, catching corrupted streams
//     before they're decoded into garbage
//
// # Basic Usage
//
// Encoding and decoding a posting list with VByte:
//
//	import "github.com/gustingonzalez/ircodecs-go/vbyte"
//
//	docIDs := []uint64{5, 10, 20, 40, 80, 160}
//	encoded := vbyte.EncodeAll(docIDs)
//
//	decoded, err := vbyte.Decode(encoded)
//
// Gap-encoding a sorted posting list before handing it to a bit-level
// codec such as Gamma or PFor:
//
//	import (
//	    "github.com/gustingonzalez/ircodecs-go/gaps"
//	    "github.com/gustingonzalez/ircodecs-go/gamma"
//	)
//
//	gapValues, err := gaps.ToGaps(docIDs)
//	encoded, _, err := gamma.EncodeAll(gapValues)
//	...
//	decodedGaps, err := gamma.Decode(encoded, len(docIDs), 0)
//	docIDs = gaps.FromGaps(decodedGaps)
//
// Wrapping an already-encoded block with outer compression:
//
//	import (
//	    "github.com/gustingonzalez/ircodecs-go/block"
//	    "github.com/gustingonzalez/ircodecs-go/format"
//	)
//
//	wrapped, err := block.Wrap(encoded, format.CodecGamma, format.CompressionZstd)
//	...
//	codecType, raw, err := block.Unwrap(wrapped)
//
// # Package Structure
//
// There is no blanket encoder/decoder type: each codec package exposes its
// own Encode/Decode (and, for Unary, Gamma and VByte, EncodeAll) functions operating on
// []uint64, since the right codec for a given posting list depends on its
// value distribution and is a choice callers make explicitly rather than
// one this package infers for them. The format package defines the small
// enumerations (CodecType, CompressionType) used to tag a block with the
// combination that produced it; neither enumeration is carried inside a
// codec's own wire format.
package ircodecs
