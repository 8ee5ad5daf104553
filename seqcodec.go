// Package seqcodec provides compact, streaming encodings for sequences of
// unsigned integers such as timestamps, counters and identifiers.
//
// Values flow through a stack of stages that share one small contract
// (put a value, report the encoded size, close). The bottom stage turns
// values into bytes; transforms above it rewrite the value stream:
//
//   - Base128 (varint): 7 payload bits per byte, little-endian groups
//   - Delta: stores the difference to the previous value of a non-decreasing sequence
//   - RLE: stores (run length, value) pairs for repeated values
//
// Stacking Delta over RLE over Base128 reduces a regular timestamp column of
// any length to a handful of bytes.
//
// # Basic Usage
//
//	timestamps := []uint64{1700000000, 1700000001, 1700000002, 1700000003}
//
//	data, _ := seqcodec.EncodeDeltaRLE(timestamps)
//	decoded, _ := seqcodec.DecodeDeltaRLE(data, len(timestamps))
//
// # Package Structure
//
// The functions in this package are uint64 shortcuts. For other widths,
// custom stacks or payload compression use the encoding and pipeline
// packages directly.
package seqcodec

import (
	"github.com/arloliu/seqcodec/format"
	"github.com/arloliu/seqcodec/internal/hash"
	"github.com/arloliu/seqcodec/pipeline"
)

// EncodeVarint encodes values as consecutive base-128 varints.
func EncodeVarint(values []uint64) ([]byte, error) {
	return pipeline.Encode(values, pipeline.WithEncoding(format.TypeVarint))
}

// DecodeVarint decodes count varints from data.
func DecodeVarint(data []byte, count int) ([]uint64, error) {
	return pipeline.Decode[uint64](data, count, pipeline.WithEncoding(format.TypeVarint))
}

// EncodeDelta delta-encodes a non-decreasing sequence.
//
// It returns an error wrapping encoding.ErrNonMonotonic when a value is
// smaller than its predecessor.
func EncodeDelta(values []uint64) ([]byte, error) {
	return pipeline.Encode(values, pipeline.WithEncoding(format.TypeDelta))
}

// DecodeDelta decodes count values produced by EncodeDelta.
func DecodeDelta(data []byte, count int) ([]uint64, error) {
	return pipeline.Decode[uint64](data, count, pipeline.WithEncoding(format.TypeDelta))
}

// EncodeRLE run-length encodes values.
func EncodeRLE(values []uint64) ([]byte, error) {
	return pipeline.Encode(values, pipeline.WithEncoding(format.TypeRLE))
}

// DecodeRLE decodes count values produced by EncodeRLE.
func DecodeRLE(data []byte, count int) ([]uint64, error) {
	return pipeline.Decode[uint64](data, count, pipeline.WithEncoding(format.TypeRLE))
}

// EncodeDeltaRLE delta-encodes a non-decreasing sequence and run-length
// encodes the deltas. This is the best fit for regularly spaced timestamps.
func EncodeDeltaRLE(values []uint64) ([]byte, error) {
	return pipeline.Encode(values, pipeline.WithEncoding(format.TypeDeltaRLE))
}

// DecodeDeltaRLE decodes count values produced by EncodeDeltaRLE.
func DecodeDeltaRLE(data []byte, count int) ([]uint64, error) {
	return pipeline.Decode[uint64](data, count, pipeline.WithEncoding(format.TypeDeltaRLE))
}

// ColumnID returns the 64-bit identifier of a column name (xxHash64).
func ColumnID(name string) uint64 {
	return hash.ColumnID(name)
}
