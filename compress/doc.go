// Package compress provides general-purpose compression for finished
// integer-column payloads.
//
// Compression is the optional second stage of a seqcodec pipeline:
//
//  1. Encoding: the delta, run-length and varint layers in the encoding
//     package exploit the structure of the integer sequence.
//  2. Compression: a byte-level codec from this package squeezes whatever
//     redundancy is left in the encoded payload.
//
// # Supported Algorithms
//
//	| Type                   | Codec           | Notes                               |
//	|------------------------|-----------------|-------------------------------------|
//	| format.CompressionNone | NoOpCompressor  | pass-through, zero cost             |
//	| format.CompressionZstd | ZstdCompressor  | best ratio, moderate speed          |
//	| format.CompressionS2   | S2Compressor    | balanced speed and ratio            |
//	| format.CompressionLZ4  | LZ4Compressor   | fastest decompression               |
//
// Delta-then-RLE payloads of regular timestamps are often only a few bytes
// long, and general-purpose compression adds framing overhead to them. Use
// CompressionNone for such columns; Zstd pays off on long varint columns with
// repeated multi-byte patterns.
//
// # Usage
//
//	codec, err := compress.CreateCodec(format.CompressionZstd, "timestamp")
//	if err != nil {
//	    return err
//	}
//	compressed, err := codec.Compress(payload)
//	...
//	original, err := codec.Decompress(compressed)
//
// # Build Tags
//
// Zstd is implemented with github.com/klauspost/compress/zstd by default.
// Building with cgo enabled and the gozstd tag switches to the libzstd binding
// github.com/valyala/gozstd; both produce standard Zstandard frames.
//
// # Thread Safety
//
// All built-in codecs are stateless values backed by sync.Pool resources and
// are safe for concurrent use.
package compress
