package format

type (
	ContainerKind uint8
	StorageType   uint8
)

const (
	// KindSprite represents the "AT4PX" sprite container (16-bit decompressed size).
	KindSprite ContainerKind = 0x1
	// KindGeneral represents the "PKDPX" general container (32-bit decompressed size).
	KindGeneral ContainerKind = 0x2

	StorageNone StorageType = 0x1 // StorageNone stores cached assets uncompressed.
	StorageZstd StorageType = 0x2 // StorageZstd stores cached assets with Zstandard.
	StorageS2   StorageType = 0x3 // StorageS2 stores cached assets with S2.
	StorageLZ4  StorageType = 0x4 // StorageLZ4 stores cached assets with LZ4.
)

// Magic returns the 5-byte ASCII tag that opens a container of this kind.
func (k ContainerKind) Magic() string {
	switch k {
	case KindSprite:
		return "AT4PX"
	case KindGeneral:
		return "PKDPX"
	default:
		return ""
	}
}

// HeaderSize returns the fixed header size in bytes for this container kind.
// The sprite header carries a 16-bit decompressed size, the general header a
// 32-bit one; everything else is identical.
func (k ContainerKind) HeaderSize() int {
	switch k {
	case KindSprite:
		return 18
	case KindGeneral:
		return 20
	default:
		return 0
	}
}

// IsValid reports whether the kind is one of the known container kinds.
func (k ContainerKind) IsValid() bool {
	return k == KindSprite || k == KindGeneral
}

func (k ContainerKind) String() string {
	switch k {
	case KindSprite:
		return "Sprite"
	case KindGeneral:
		return "General"
	default:
		return "Unknown"
	}
}

func (s StorageType) String() string {
	switch s {
	case StorageNone:
		return "None"
	case StorageZstd:
		return "Zstd"
	case StorageS2:
		return "S2"
	case StorageLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
