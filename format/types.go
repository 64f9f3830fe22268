// Package format defines the small enumerations shared across codec and
// compression packages: which of the seven codecs produced a block, and
// which outer compression (if any) was applied to it.
//
// Neither enumeration is carried inside a codec's own wire format — a
// codec's width or block layout, for instance, is caller policy, not
// self-describing — they exist for callers that want to tag a block with
// the codec/compression combination used to produce it.
package format

type (
	// CodecType identifies which of the seven posting-list codecs produced
	// a block.
	CodecType uint8

	// CompressionType identifies the outer compression (if any) applied to
	// an already-encoded block by the block package.
	CompressionType uint8
)

const (
	CodecUnary      CodecType = 0x1 // CodecUnary represents Unary coding.
	CodecGamma      CodecType = 0x2 // CodecGamma represents Elias gamma coding.
	CodecVByte      CodecType = 0x3 // CodecVByte represents Variable Byte coding.
	CodecBitPacking CodecType = 0x4 // CodecBitPacking represents fixed-width bit packing.
	CodecSimple16   CodecType = 0x5 // CodecSimple16 represents Simple16 word packing.
	CodecPFor       CodecType = 0x6 // CodecPFor represents NewPFD/OptPFD patched frame-of-reference.
	CodecEFLocal    CodecType = 0x7 // CodecEFLocal represents chunk-local Elias-Fano.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (c CodecType) String() string {
	switch c {
	case CodecUnary:
		return "Unary"
	case CodecGamma:
		return "Gamma"
	case CodecVByte:
		return "VByte"
	case CodecBitPacking:
		return "BitPacking"
	case CodecSimple16:
		return "Simple16"
	case CodecPFor:
		return "PFor"
	case CodecEFLocal:
		return "EFLocal"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
