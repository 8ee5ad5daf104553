package compress

// ZstdCompressor uses Zstandard frames. It gives the best ratio of the
// built-in codecs and suits cold or archived columns.
//
// The implementation is pure Go (klauspost/compress) unless the module is
// built with cgo and the gozstd tag, which switches to the libzstd binding.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a Zstd codec.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
