// Package px implements the PX compression codec used by the game's sprite,
// portrait and tileset containers.
//
// PX is a byte-oriented LZSS variant. The stream is a sequence of control
// bytes, each classifying up to eight following operations, most significant
// bit first: a set bit is a literal byte, a clear bit introduces a one-byte
// nibble-pattern expansion or a two-byte back-reference. Which of the two a
// clear-bit byte means is decided by its high nibble: nine of the sixteen
// nibble values act as pattern selectors and are persisted per container as
// the control-flag table; the remaining values carry back-reference length
// deltas.
//
// A nibble pattern expands one byte into two output bytes (four nibbles)
// derived from the payload nibble by the fixed table in expandPattern. A
// back-reference copies 3..18 bytes from up to 4096 bytes back in the
// already-produced output, reading cyclically when the run is longer than
// its offset.
//
// The encoder is greedy and single-pass. It does not reproduce the byte
// streams of the original tooling; it only guarantees that Decompress
// recovers its input byte-for-byte.
//
// Compress and Decompress calls are independent and stateless across
// invocations; distinct Encoder/Decoder instances may run concurrently.
package px

// PX stream constants.
const (
	// WindowSize is the sliding window: back-references reach at most
	// 4096 bytes into the produced output.
	WindowSize = 4096
	// MinMatch and MaxMatch bound back-reference lengths; the length is
	// stored as a 4-bit delta from MinMatch.
	MinMatch = 3
	MaxMatch = 18
	// MaxCompressedSize is the hard output bound imposed by the 16-bit
	// container length field.
	MaxCompressedSize = 65535

	// NumControlFlags is the number of nibble values reserved as pattern
	// selectors; the remaining 16 - 9 = 7 values encode length deltas.
	NumControlFlags = 9

	flagBits      = 8 // operations classified per control byte
	maxLengthSet  = 7 // distinct length-delta nibbles per stream
	patternOutput = 2 // bytes produced by one nibble-pattern operation
)

// ControlFlags is the ordered table of nine nibble values that identify
// nibble-pattern operations in one stream. The position of a value in the
// table selects the expansion rule (see expandPattern); the table is
// persisted in the container header and is required for decoding.
type ControlFlags [NumControlFlags]byte

// indexOf returns the table position of the given nibble, or -1 if the
// nibble is not a control flag (and therefore starts a back-reference).
func (f ControlFlags) indexOf(nibble byte) int {
	for i, v := range f {
		if v == nibble {
			return i
		}
	}

	return -1
}

// Contains reports whether the nibble is one of the control flags.
func (f ControlFlags) Contains(nibble byte) bool {
	return f.indexOf(nibble) >= 0
}

// Stats describes one Compress call.
type Stats struct {
	// OriginalSize is the input size in bytes.
	OriginalSize int
	// CompressedSize is the emitted stream size in bytes, control bytes
	// included.
	CompressedSize int

	// Operation counts for the emitted stream.
	Literals       int
	Patterns       int
	BackReferences int
}

// Ratio returns compressed size over original size. Values below 1.0
// indicate the stream is smaller than the input.
func (s Stats) Ratio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}
