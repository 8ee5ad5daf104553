package compress

import (
	"testing"

	"github.com/arloliu/seqcodec/format"
)

func BenchmarkCodecs_Compress(b *testing.B) {
	payload := varintPayload(8192)

	for _, typ := range allCompressionTypes {
		codec, _ := CreateCodec(typ, "bench")
		b.Run(typ.String(), func(b *testing.B) {
			b.SetBytes(int64(len(payload)))
			b.ReportAllocs()
			for b.Loop() {
				_, _ = codec.Compress(payload)
			}
		})
	}
}

func BenchmarkCodecs_Decompress(b *testing.B) {
	payload := varintPayload(8192)

	for _, typ := range allCompressionTypes {
		codec, _ := CreateCodec(typ, "bench")
		compressed, _ := codec.Compress(payload)
		b.Run(typ.String(), func(b *testing.B) {
			b.SetBytes(int64(len(payload)))
			b.ReportAllocs()
			for b.Loop() {
				_, _ = codec.Decompress(compressed)
			}
		})
	}
}

func BenchmarkZstd_Parallel(b *testing.B) {
	payload := varintPayload(8192)
	codec, _ := CreateCodec(format.CompressionZstd, "bench")

	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_, _ = codec.Compress(payload)
		}
	})
}
