// Package container reads and writes the two on-disk framings that wrap PX
// streams: the "AT4PX" sprite container and the "PKDPX" general container.
//
// Both carry the same fields in the same order; they differ only in the
// magic tag and the width of the decompressed-size field:
//
//	offset  size  field
//	0       5     magic, ASCII
//	5       2     container length, u16 LE, header included
//	7       9     control-flag table
//	16      2|4   decompressed size, u16 LE (sprite) or u32 LE (general)
//
// The codec itself never forks on the container kind; this package is the
// only place the two layouts diverge.
package container

import (
	"fmt"
	"math"

	"github.com/lunarbit/skypx/endian"
	"github.com/lunarbit/skypx/errs"
	"github.com/lunarbit/skypx/format"
	"github.com/lunarbit/skypx/px"
)

// MagicLen is the length of the ASCII magic tag.
const MagicLen = 5

// Header is the parsed fixed header of one container.
type Header struct {
	// Kind selects the layout (and magic) of the container.
	Kind format.ContainerKind
	// ContainerLength is the total container size in bytes, header
	// included. Any bytes past it belong to the surrounding archive.
	ContainerLength uint16
	// Flags is the control-flag table required to decode the payload.
	Flags px.ControlFlags
	// DecompressedSize is the declared size of the decoded payload.
	DecompressedSize uint32
}

// PayloadSize returns the compressed payload size implied by the header.
func (h *Header) PayloadSize() int {
	return int(h.ContainerLength) - h.Kind.HeaderSize()
}

// Bytes serializes the header into its on-disk layout.
func (h *Header) Bytes() []byte {
	engine := endian.GetLittleEndianEngine()

	b := make([]byte, 0, h.Kind.HeaderSize())
	b = append(b, h.Kind.Magic()...)
	b = engine.AppendUint16(b, h.ContainerLength)
	b = append(b, h.Flags[:]...)
	if h.Kind == format.KindSprite {
		b = engine.AppendUint16(b, uint16(h.DecompressedSize))
	} else {
		b = engine.AppendUint32(b, h.DecompressedSize)
	}

	return b
}

// Sniff identifies the container kind from the magic tag. It reports
// ok = false for buffers too short to hold a magic or with an unknown tag.
func Sniff(data []byte) (format.ContainerKind, bool) {
	if len(data) < MagicLen {
		return 0, false
	}

	switch string(data[:MagicLen]) {
	case format.KindSprite.Magic():
		return format.KindSprite, true
	case format.KindGeneral.Magic():
		return format.KindGeneral, true
	default:
		return 0, false
	}
}

// ParseHeader parses and validates the fixed header at the start of data.
// data may extend past the container; the length field decides where the
// container ends.
func ParseHeader(data []byte) (*Header, error) {
	if len(data) < MagicLen {
		return nil, fmt.Errorf("%w: %d bytes", errs.ErrTruncatedHeader, len(data))
	}

	kind, ok := Sniff(data)
	if !ok {
		return nil, fmt.Errorf("%w: % x", errs.ErrBadMagic, data[:MagicLen])
	}

	headerSize := kind.HeaderSize()
	if len(data) < headerSize {
		return nil, fmt.Errorf("%w: %d of %d header bytes", errs.ErrTruncatedHeader, len(data), headerSize)
	}

	engine := endian.GetLittleEndianEngine()

	h := &Header{Kind: kind}
	h.ContainerLength = engine.Uint16(data[5:7])
	copy(h.Flags[:], data[7:16])
	if kind == format.KindSprite {
		h.DecompressedSize = uint32(engine.Uint16(data[16:18]))
	} else {
		h.DecompressedSize = engine.Uint32(data[16:20])
	}

	if int(h.ContainerLength) < headerSize || int(h.ContainerLength) > len(data) {
		return nil, fmt.Errorf("%w: container length %d, buffer %d", errs.ErrHeaderLength, h.ContainerLength, len(data))
	}

	return h, nil
}

// Unwrap parses the header and returns it with the compressed payload
// slice. The payload aliases data; callers that outlive data must copy.
func Unwrap(data []byte) (*Header, []byte, error) {
	h, err := ParseHeader(data)
	if err != nil {
		return nil, nil, err
	}

	return h, data[h.Kind.HeaderSize():h.ContainerLength], nil
}

// Wrap frames a compressed payload into a container of the given kind.
// decompressedLen is the size the payload decodes back to; it must fit the
// kind's size field. The framed container must fit the 16-bit length
// field, header included.
func Wrap(kind format.ContainerKind, flags px.ControlFlags, payload []byte, decompressedLen int) ([]byte, error) {
	if !kind.IsValid() {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidKind, kind)
	}
	if decompressedLen < 0 {
		return nil, fmt.Errorf("%w: negative length %d", errs.ErrLengthOverflow, decompressedLen)
	}

	if kind == format.KindSprite && decompressedLen > math.MaxUint16 {
		return nil, fmt.Errorf("%w: %d exceeds %d", errs.ErrLengthOverflow, decompressedLen, math.MaxUint16)
	}
	if int64(decompressedLen) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d exceeds %d", errs.ErrLengthOverflow, decompressedLen, int64(math.MaxUint32))
	}

	total := kind.HeaderSize() + len(payload)
	if total > px.MaxCompressedSize {
		return nil, fmt.Errorf("%w: framed container is %d bytes", errs.ErrSizeOverflow, total)
	}

	h := &Header{
		Kind:             kind,
		ContainerLength:  uint16(total),
		Flags:            flags,
		DecompressedSize: uint32(decompressedLen),
	}

	out := make([]byte, 0, total)
	out = append(out, h.Bytes()...)
	out = append(out, payload...)

	return out, nil
}
