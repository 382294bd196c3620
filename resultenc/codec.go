package resultenc

import (
	"fmt"

	"github.com/probviz/distlab/format"
)

// Compressor compresses a serialized payload.
//
// Returned slices are newly allocated and owned by the caller; the input is
// never modified.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses Compressor. The input must have been produced by the
// matching algorithm; corrupted or mismatched data yields an error.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions of one compression algorithm.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec returns the codec for the given compression type.
func CreateCodec(compression format.CompressionType) (Codec, error) {
	switch compression {
	case format.CompressionNone:
		return NewNoOpCodec(), nil
	case format.CompressionZstd:
		return NewZstdCodec(), nil
	case format.CompressionS2:
		return NewS2Codec(), nil
	case format.CompressionLZ4:
		return NewLZ4Codec(), nil
	default:
		return nil, fmt.Errorf("invalid compression type: %v", compression)
	}
}
