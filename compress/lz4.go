package compress

import (
	"errors"
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// lz4CompressorPool reuses lz4.Compressor hash tables across calls.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Compressor uses LZ4 block compression.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates an LZ4 codec.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses data as a single LZ4 block. An empty payload stays empty.
//
// The destination is sized with CompressBlockBound, so incompressible input is
// still emitted as a literal block rather than reported as 0 bytes.
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// Decompress decompresses an LZ4 block.
//
// Block format does not record the original size, so the output buffer starts
// at four times the input and doubles on ErrInvalidSourceShortBuffer, up to
// MaxPayloadSize.
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	for bufSize := len(data) * 4; ; bufSize *= 2 {
		bufSize = min(bufSize, MaxPayloadSize)
		buf := make([]byte, bufSize)
		n, err := lz4.UncompressBlock(data, buf)
		if err != nil {
			if !errors.Is(err, lz4.ErrInvalidSourceShortBuffer) {
				return nil, fmt.Errorf("lz4 decompression failed: %w", err)
			}
			if bufSize == MaxPayloadSize {
				return nil, fmt.Errorf("lz4 block: %w", ErrPayloadTooLarge)
			}

			continue
		}

		return buf[:n], nil
	}
}
