// Package compress provides the storage codecs used to hold decoded assets
// at rest.
//
// The PX codec (package px) is what the game uses on disk; once a payload
// is decoded, the extraction pipeline keeps it around — deduplicated in the
// asset cache, or staged for atlas packing — and recompresses it with a
// general-purpose algorithm chosen by workload:
//
//   - None: no recompression (CPU-bound runs, already-tiny payloads)
//   - Zstd: best ratio, for large caches kept across runs
//   - S2: balanced speed and ratio, the default
//   - LZ4: fastest decompression, for caches read many times per run
//
// The package defines three interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// Codecs are obtained from GetCodec with a format.StorageType. All built-in
// codecs are stateless values, safe for concurrent use; the zstd codec has
// a cgo implementation (valyala/gozstd) and a pure-Go one
// (klauspost/compress/zstd) selected by build tag.
//
// None of these codecs ever substitutes for the PX codec: a payload headed
// back into a container always goes through package px.
package compress
