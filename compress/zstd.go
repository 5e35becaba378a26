package compress

// ZstdCodec compresses cached assets with Zstandard. Best ratio of the
// storage codecs; use it for caches that persist across extraction runs.
//
// Two implementations exist behind build tags: cgo builds use
// valyala/gozstd, pure-Go builds use klauspost/compress/zstd. The wire
// format is standard zstd either way, so caches written by one build are
// readable by the other.
type ZstdCodec struct{}

var _ Codec = (*ZstdCodec)(nil)

// NewZstdCodec creates a new Zstandard codec with default settings.
func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}
