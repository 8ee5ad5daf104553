// Package pipeline assembles the encoding stages into ready-to-use column
// codecs.
//
// A pipeline is chosen with a format.EncodingType:
//
//	TypeRaw       fixed-width values in the configured byte order
//	TypeVarint    base-128 varints
//	TypeDelta     delta transform over varints
//	TypeRLE       run-length transform over varints
//	TypeDeltaRLE  delta transform over run-length over varints
//
// The encoded bytes are then compressed with the selected format.CompressionType.
// The payload carries no header, so the reader must be built with the same
// options as the writer:
//
//	payload, err := pipeline.Encode(timestamps,
//		pipeline.WithEncoding(format.TypeDeltaRLE),
//		pipeline.WithCompression(format.CompressionZstd),
//	)
//	...
//	values, err := pipeline.Decode[uint64](payload, len(timestamps),
//		pipeline.WithEncoding(format.TypeDeltaRLE),
//		pipeline.WithCompression(format.CompressionZstd),
//	)
package pipeline
