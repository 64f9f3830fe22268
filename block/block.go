// Package block wraps the byte output of any codec in this module with a
// header identifying which codec produced it and an optional outer
// compression pass: a higher layer chunks a posting list, encodes each
// chunk with one of the codecs, and may then compress the resulting bytes
// if several chunks share structure.
package block

import (
	"fmt"

	"github.com/gustingonzalez/ircodecs-go/compress"
	"github.com/gustingonzalez/ircodecs-go/errs"
	"github.com/gustingonzalez/ircodecs-go/format"
)

// Wrap compresses codec output using the given compression type and
// prepends a 2-byte header (codec type, then compression type) so Unwrap
// can recover both the decompressor and which codec produced the payload
// without the caller tracking either out of band.
func Wrap(data []byte, codecType format.CodecType, compression format.CompressionType) ([]byte, error) {
	codec, err := compress.CreateCodec(compression, "block")
	if err != nil {
		return nil, err
	}

	compressed, err := codec.Compress(data)
	if err != nil {
		return nil, fmt.Errorf("block: compressing payload: %w", err)
	}

	out := make([]byte, 0, len(compressed)+2)
	out = append(out, byte(codecType), byte(compression))
	out = append(out, compressed...)

	return out, nil
}

// Unwrap is the inverse of Wrap: it reads the codec/compression header and
// returns the codec type and decompressed codec output.
func Unwrap(data []byte) (format.CodecType, []byte, error) {
	if len(data) < 2 {
		return 0, nil, fmt.Errorf("block: missing codec/compression header bytes: %w", errs.ErrTruncatedStream)
	}

	codecType := format.CodecType(data[0])
	compression := format.CompressionType(data[1])

	codec, err := compress.GetCodec(compression)
	if err != nil {
		return 0, nil, fmt.Errorf("block: %w", err)
	}

	decompressed, err := codec.Decompress(data[2:])
	if err != nil {
		return 0, nil, fmt.Errorf("block: decompressing payload: %w", err)
	}

	return codecType, decompressed, nil
}
