package compress

// ZstdCompressor offers the best compression ratio of the built-in codecs,
// suited to archived snapshots and bandwidth-limited transfers.
//
// Two implementations back it: the pure-Go klauspost/compress encoder, and a
// cgo build using valyala/gozstd when cgo is available.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd codec with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
