// Package skypx mines binary assets from the DS game's ROM containers.
//
// The core of the library is the PX codec (package px): the bit-packed
// compression the game uses for sprite, portrait and tileset data. PX
// streams are framed on disk by one of two sibling containers — "AT4PX"
// for sprites and "PKDPX" for general data — which carry the control-flag
// table and the decompressed size the decoder needs (package container).
//
// # Basic Usage
//
// Decoding a container extracted from a ROM:
//
//	data, err := skypx.Decompress(containerBytes)
//	if errors.Is(err, errs.ErrShortStream) {
//	    // padded container: data holds what was decodable
//	    log.Printf("short stream: %v", err)
//	} else if err != nil {
//	    return err
//	}
//
// Re-encoding data into a container:
//
//	containerBytes, err := skypx.Compress(data, format.KindSprite)
//	if errors.Is(err, errs.ErrSizeOverflow) {
//	    // store the data uncompressed instead
//	}
//
// Routing unknown blobs:
//
//	if kind, ok := skypx.Sniff(blob); ok {
//	    data, err := skypx.Decompress(blob)
//	    ...
//	}
//
// # Package Structure
//
// This package provides thin wrappers over the px and container packages
// for the common whole-container round trip. Pipelines that need encoder
// statistics, strict length validation or a custom search limit use those
// packages directly; package cache stores decoded payloads deduplicated by
// content ID.
//
// Per-asset errors are returned, never panicked; an extraction pipeline is
// expected to log and skip a bad container rather than abort the run.
package skypx

import (
	"github.com/lunarbit/skypx/container"
	"github.com/lunarbit/skypx/format"
	"github.com/lunarbit/skypx/internal/hash"
	"github.com/lunarbit/skypx/px"
)

// Decompress unwraps a container and decodes its PX payload.
//
// Streams that end before the declared decompressed size return the
// partial payload together with errs.ErrShortStream; see px.Decoder for
// the rationale and for strict mode.
func Decompress(containerBytes []byte) ([]byte, error) {
	h, payload, err := container.Unwrap(containerBytes)
	if err != nil {
		return nil, err
	}

	return px.Decompress(payload, h.Flags, int(h.DecompressedSize))
}

// Compress encodes data with the PX codec and frames it as a container of
// the given kind. Fails with errs.ErrSizeOverflow when the framed
// container would not fit the 16-bit length field.
func Compress(data []byte, kind format.ContainerKind) ([]byte, error) {
	flags, payload, err := px.Compress(data)
	if err != nil {
		return nil, err
	}

	return container.Wrap(kind, flags, payload, len(data))
}

// Sniff identifies the container kind from the leading magic tag.
func Sniff(data []byte) (format.ContainerKind, bool) {
	return container.Sniff(data)
}

// AssetID computes the 64-bit content ID of a decoded payload, the key
// used by package cache.
func AssetID(data []byte) uint64 {
	return hash.ID(data)
}
