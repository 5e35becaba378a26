// Package hash computes content identifiers for mined assets.
//
// Decoded payloads from one ROM are frequently byte-identical (the games
// reuse portraits and tiles across scenes), so the extraction pipeline
// addresses them by a 64-bit xxHash of their content rather than by path.
package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 content ID of a decoded payload.
func ID(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// IDString computes the xxHash64 content ID of a string, for callers that
// key assets by name.
func IDString(name string) uint64 {
	return xxhash.Sum64String(name)
}
