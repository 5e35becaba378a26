package compress

import (
	"fmt"

	"github.com/lunarbit/skypx/format"
)

// Compressor compresses a decoded asset payload for storage.
//
// Memory contract: the returned slice is newly allocated and owned by the
// caller (except for the no-op codec, which returns its input); the input
// slice is never modified.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor recovers a decoded asset payload from storage.
//
// The input must have been produced by the matching Compressor; corrupted
// or mismatched data returns an error.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions. All built-in codecs implement it.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec creates a Codec for the given storage type. target names the
// consumer in error messages.
func CreateCodec(storageType format.StorageType, target string) (Codec, error) {
	switch storageType {
	case format.StorageNone:
		return NewNoOpCodec(), nil
	case format.StorageZstd:
		return NewZstdCodec(), nil
	case format.StorageS2:
		return NewS2Codec(), nil
	case format.StorageLZ4:
		return NewLZ4Codec(), nil
	default:
		return nil, fmt.Errorf("invalid %s storage type: %s", target, storageType)
	}
}

var builtinCodecs = map[format.StorageType]Codec{
	format.StorageNone: NewNoOpCodec(),
	format.StorageZstd: NewZstdCodec(),
	format.StorageS2:   NewS2Codec(),
	format.StorageLZ4:  NewLZ4Codec(),
}

// GetCodec retrieves the shared built-in Codec for the storage type.
func GetCodec(storageType format.StorageType) (Codec, error) {
	if codec, ok := builtinCodecs[storageType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported storage type: %s", storageType)
}
