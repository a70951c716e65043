package compress

// ZstdCompressor provides Zstandard compression for UR payloads.
//
// Zstd gives the best ratio of the built-in codecs and suits payloads
// large enough to fragment into many parts, where every saved fragment is
// one less QR frame to capture. Two implementations back the type: the
// cgo-accelerated gozstd when cgo is available, and the pure-Go
// klauspost/compress encoder otherwise. The formats are interchangeable.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstandard compressor.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
