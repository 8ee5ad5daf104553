package compress

import (
	"errors"
	"fmt"

	"github.com/arloliu/seqcodec/format"
)

// MaxPayloadSize bounds the decompressed size of a payload. Decompressors
// refuse input that would expand beyond it.
const MaxPayloadSize = 128 * 1024 * 1024

// ErrPayloadTooLarge is returned when a payload would decompress beyond
// MaxPayloadSize.
var ErrPayloadTooLarge = errors.New("compress: payload exceeds maximum size")

// Compressor compresses a finished integer-column payload.
//
// Compression runs after the codec pipeline has produced its bytes; it never
// sees individual values.
type Compressor interface {
	// Compress returns the compressed form of data. The input is not modified.
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor.
type Decompressor interface {
	// Decompress returns the original payload, or an error when data is
	// corrupted or was produced by a different algorithm.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions. Built-in codecs are stateless values and
// safe for concurrent use.
type Codec interface {
	Compressor
	Decompressor
}

// CompressionStats describes one compression of a payload.
type CompressionStats struct {
	// Algorithm identifies the compression algorithm used.
	Algorithm format.CompressionType

	// OriginalSize is the payload size before compression.
	OriginalSize int64

	// CompressedSize is the payload size after compression.
	CompressedSize int64
}

// CompressionRatio returns compressed size / original size, or 0 for an empty payload.
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space saved by compression as a percentage.
func (s CompressionStats) SpaceSavings() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return (1.0 - s.CompressionRatio()) * 100.0
}

// CreateCodec creates a new Codec for compressionType. target names the
// payload in error messages.
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("invalid %s compression: %s", target, compressionType)
	}
}
