package dedupe

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lunarbit/skypx/errs"
)

func TestTracker_NewAndDuplicate(t *testing.T) {
	tr := NewTracker()
	payload := bytes.Repeat([]byte{0xAB}, 64)

	dup, err := tr.Track(1, payload)
	require.NoError(t, err)
	require.False(t, dup)

	dup, err = tr.Track(1, payload)
	require.NoError(t, err)
	require.True(t, dup)

	require.Equal(t, 1, tr.Count())
	require.Equal(t, 1, tr.Duplicates())
}

func TestTracker_CollisionDetected(t *testing.T) {
	tr := NewTracker()

	_, err := tr.Track(42, []byte("first payload body"))
	require.NoError(t, err)

	// Same ID, different content.
	_, err = tr.Track(42, []byte("a very different one"))
	require.ErrorIs(t, err, errs.ErrHashCollision)
}

func TestTracker_ShortPayloads(t *testing.T) {
	tr := NewTracker()

	dup, err := tr.Track(7, []byte{0x01})
	require.NoError(t, err)
	require.False(t, dup)

	dup, err = tr.Track(7, []byte{0x01})
	require.NoError(t, err)
	require.True(t, dup)

	_, err = tr.Track(7, []byte{0x02})
	require.ErrorIs(t, err, errs.ErrHashCollision)
}

func TestTracker_Reset(t *testing.T) {
	tr := NewTracker()

	_, err := tr.Track(1, []byte("payload"))
	require.NoError(t, err)
	_, err = tr.Track(1, []byte("payload"))
	require.NoError(t, err)

	tr.Reset()
	require.Equal(t, 0, tr.Count())
	require.Equal(t, 0, tr.Duplicates())

	dup, err := tr.Track(1, []byte("other"))
	require.NoError(t, err)
	require.False(t, dup)
}
