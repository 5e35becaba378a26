package px

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lunarbit/skypx/errs"
)

func TestEncoder_Empty(t *testing.T) {
	flags, stream, err := Compress(nil)
	require.NoError(t, err)
	require.Empty(t, stream)
	require.Equal(t, ControlFlags{1, 2, 3, 4, 5, 6, 7, 8, 9}, flags)
}

func TestEncoder_AllLiterals(t *testing.T) {
	// No repeats and no pair with three matching nibbles: eight literals
	// under a single all-ones control byte.
	data := []byte{0x17, 0x28, 0x39, 0x4A, 0x5B, 0x6C, 0x7D, 0x8E}

	flags, stream, err := Compress(data)
	require.NoError(t, err)
	require.Equal(t, append([]byte{0xFF}, data...), stream)

	got, err := Decompress(stream, flags, len(data))
	require.NoError(t, err)
	require.Equal(t, data, got)
}

func TestEncoder_NibblePattern(t *testing.T) {
	// 0x33 0x33 collapses to one index-0 pattern byte. With no
	// back-references the flag table stays at its seeded default, so the
	// emitted byte is flags[0]<<4 | payload.
	flags, stream, err := Compress([]byte{0x33, 0x33})
	require.NoError(t, err)
	require.Equal(t, ControlFlags{1, 2, 3, 4, 5, 6, 7, 8, 9}, flags)
	require.Equal(t, []byte{0x00, 0x13}, stream)
}

func TestEncoder_BackReference(t *testing.T) {
	// One literal then a 9-byte run copy: delta 6 joins the length set,
	// the offset is stored as WindowSize-1 = 0xFFF.
	data := bytes.Repeat([]byte{0x41}, 10)

	flags, stream, err := Compress(data)
	require.NoError(t, err)
	require.Equal(t, []byte{0x80, 0x41, 0x6F, 0xFF}, stream)
	require.False(t, flags.Contains(6))

	got, err := Decompress(stream, flags, len(data))
	require.NoError(t, err)
	require.Equal(t, data, got)
}

func TestEncoder_Stats(t *testing.T) {
	enc, err := NewEncoder()
	require.NoError(t, err)

	_, _, err = enc.Compress(bytes.Repeat([]byte{0x41}, 10))
	require.NoError(t, err)

	stats := enc.Stats()
	require.Equal(t, 10, stats.OriginalSize)
	require.Equal(t, 4, stats.CompressedSize)
	require.Equal(t, 1, stats.Literals)
	require.Equal(t, 0, stats.Patterns)
	require.Equal(t, 1, stats.BackReferences)
	require.InDelta(t, 0.4, stats.Ratio(), 1e-9)
}

func TestEncoder_SearchLimitValidation(t *testing.T) {
	_, err := NewEncoder(WithSearchLimit(-1))
	require.Error(t, err)

	_, err = NewEncoder(WithSearchLimit(WindowSize + 1))
	require.Error(t, err)
}

func TestEncoder_LiteralsOnlyMode(t *testing.T) {
	enc, err := NewEncoder(WithSearchLimit(0))
	require.NoError(t, err)

	data := bytes.Repeat([]byte{0xAB}, 8)
	flags, stream, err := enc.Compress(data)
	require.NoError(t, err)
	require.Equal(t, 0, enc.Stats().BackReferences)

	got, err := Decompress(stream, flags, len(data))
	require.NoError(t, err)
	require.Equal(t, data, got)
}

func TestEncoder_SizeOverflow(t *testing.T) {
	// Incompressible input large enough that literals plus control bytes
	// exceed the 16-bit limit. A small search limit keeps the match scan
	// cheap without changing the outcome.
	rng := rand.New(rand.NewSource(42))
	data := make([]byte, 70000)
	rng.Read(data)

	enc, err := NewEncoder(WithSearchLimit(16))
	require.NoError(t, err)

	_, _, err = enc.Compress(data)
	require.ErrorIs(t, err, errs.ErrSizeOverflow)
}
