// Package errs defines the sentinel errors shared across skypx packages.
//
// Errors fall into three groups matching the container/codec boundary:
// header errors (a container that cannot be opened), decode errors (a
// payload that cannot be reconstructed), and encode errors (data that
// cannot be represented in the on-disk format).
//
// ErrShortStream is special: the decoder returns it together with the
// bytes it did decode. Containers extracted from real ROMs are sometimes
// padded short of the declared decompressed size, so callers typically
// log it as a warning rather than discarding the asset.
package errs

import "errors"

// Header errors. Fatal for the container; callers skip the asset.
var (
	ErrBadMagic        = errors.New("unrecognized container magic")
	ErrTruncatedHeader = errors.New("container shorter than fixed header")
	ErrHeaderLength    = errors.New("container length field exceeds available data")
)

// Decode errors.
var (
	// ErrTruncatedInput indicates the compressed stream ended inside an
	// operation (a literal, pattern or back-reference operand is missing).
	ErrTruncatedInput = errors.New("compressed stream truncated mid-operation")

	// ErrInvalidBackReference indicates a back-reference that points at
	// bytes which have not been produced yet, typically a corrupt stream
	// or a wrong control-flag table.
	ErrInvalidBackReference = errors.New("back-reference outside decoded history")

	// ErrShortStream indicates the stream was exhausted before the declared
	// decompressed size was reached. Partial output is still returned.
	ErrShortStream = errors.New("stream ended before expected length")
)

// Encode errors.
var (
	// ErrSizeOverflow indicates the compressed output would not fit the
	// 16-bit container length field. Callers fall back to storing the
	// data uncompressed or split it.
	ErrSizeOverflow = errors.New("compressed size exceeds 16-bit length field")

	// ErrLengthOverflow indicates a decompressed size too large for the
	// container kind's size field.
	ErrLengthOverflow = errors.New("decompressed size exceeds container size field")

	ErrInvalidKind = errors.New("invalid container kind")
)

// Cache errors.
var (
	ErrHashCollision = errors.New("asset ID collision detected")
	ErrUnknownAsset  = errors.New("asset ID not present in cache")
)
