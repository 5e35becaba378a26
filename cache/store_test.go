package cache

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lunarbit/skypx/errs"
	"github.com/lunarbit/skypx/format"
)

func TestStore_PutGet(t *testing.T) {
	store, err := NewStore()
	require.NoError(t, err)
	require.Equal(t, format.StorageS2, store.Storage())

	payload := bytes.Repeat([]byte{0x5A, 0xA5}, 512)

	id, dup, err := store.Put(payload)
	require.NoError(t, err)
	require.False(t, dup)

	got, err := store.Get(id)
	require.NoError(t, err)
	require.Equal(t, payload, got)
	require.Equal(t, 1, store.Len())
}

func TestStore_Deduplicates(t *testing.T) {
	store, err := NewStore()
	require.NoError(t, err)

	payload := bytes.Repeat([]byte{0x42}, 256)

	first, dup, err := store.Put(payload)
	require.NoError(t, err)
	require.False(t, dup)

	second, dup, err := store.Put(append([]byte(nil), payload...))
	require.NoError(t, err)
	require.True(t, dup)
	require.Equal(t, first, second)

	require.Equal(t, 1, store.Len())
	require.Equal(t, 1, store.Duplicates())
}

func TestStore_AllStorageTypes(t *testing.T) {
	payload := bytes.Repeat([]byte("sprite row data "), 64)

	for _, st := range []format.StorageType{
		format.StorageNone,
		format.StorageZstd,
		format.StorageS2,
		format.StorageLZ4,
	} {
		t.Run(st.String(), func(t *testing.T) {
			store, err := NewStore(WithStorage(st))
			require.NoError(t, err)
			require.Equal(t, st, store.Storage())

			id, _, err := store.Put(payload)
			require.NoError(t, err)

			got, err := store.Get(id)
			require.NoError(t, err)
			require.Equal(t, payload, got)
		})
	}
}

func TestStore_UnknownAsset(t *testing.T) {
	store, err := NewStore()
	require.NoError(t, err)

	_, err = store.Get(0xDEADBEEF)
	require.ErrorIs(t, err, errs.ErrUnknownAsset)
}

func TestStore_CallerSliceNotRetained(t *testing.T) {
	store, err := NewStore(WithStorage(format.StorageNone))
	require.NoError(t, err)

	payload := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	id, _, err := store.Put(payload)
	require.NoError(t, err)

	payload[0] = 0xFF

	got, err := store.Get(id)
	require.NoError(t, err)
	require.Equal(t, byte(1), got[0])
}

func TestStore_Reset(t *testing.T) {
	store, err := NewStore()
	require.NoError(t, err)

	_, _, err = store.Put([]byte("asset"))
	require.NoError(t, err)

	store.Reset()
	require.Equal(t, 0, store.Len())
	require.Equal(t, 0, store.Duplicates())
}

func TestStore_ConcurrentPut(t *testing.T) {
	store, err := NewStore()
	require.NoError(t, err)

	payloads := make([][]byte, 16)
	for i := range payloads {
		payloads[i] = bytes.Repeat([]byte{byte(i)}, 128)
	}

	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, p := range payloads {
				if _, _, err := store.Put(p); err != nil {
					t.Error(err)
				}
			}
		}()
	}
	wg.Wait()

	require.Equal(t, len(payloads), store.Len())
	require.Equal(t, 3*len(payloads), store.Duplicates())
}
