package compress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lunarbit/skypx/format"
)

var storageTypes = []format.StorageType{
	format.StorageNone,
	format.StorageZstd,
	format.StorageS2,
	format.StorageLZ4,
}

func samplePayload() []byte {
	// Decoded tile data: long runs with a sprinkle of structure.
	var data []byte
	for i := 0; i < 128; i++ {
		data = append(data, bytes.Repeat([]byte{byte(i)}, 16)...)
		data = append(data, 0x00, 0x11, 0x22, 0x33)
	}

	return data
}

func TestCodecs_RoundTrip(t *testing.T) {
	payload := samplePayload()

	for _, st := range storageTypes {
		t.Run(st.String(), func(t *testing.T) {
			codec, err := GetCodec(st)
			require.NoError(t, err)

			compressed, err := codec.Compress(payload)
			require.NoError(t, err)

			got, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Equal(t, payload, got)
		})
	}
}

func TestCodecs_EmptyInput(t *testing.T) {
	for _, st := range storageTypes {
		t.Run(st.String(), func(t *testing.T) {
			codec, err := GetCodec(st)
			require.NoError(t, err)

			compressed, err := codec.Compress(nil)
			require.NoError(t, err)

			got, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Empty(t, got)
		})
	}
}

func TestNoOpCodec_SharesInput(t *testing.T) {
	codec := NewNoOpCodec()
	payload := []byte{1, 2, 3}

	compressed, err := codec.Compress(payload)
	require.NoError(t, err)
	require.Equal(t, &payload[0], &compressed[0])
}

func TestCreateCodec(t *testing.T) {
	for _, st := range storageTypes {
		codec, err := CreateCodec(st, "test")
		require.NoError(t, err)
		require.NotNil(t, codec)
	}

	_, err := CreateCodec(format.StorageType(0x7F), "test")
	require.Error(t, err)
	require.Contains(t, err.Error(), "test")
}

func TestGetCodec_Unknown(t *testing.T) {
	_, err := GetCodec(format.StorageType(0x7F))
	require.Error(t, err)
}
