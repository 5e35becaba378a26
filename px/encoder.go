package px

import (
	"fmt"

	"github.com/lunarbit/skypx/errs"
	"github.com/lunarbit/skypx/internal/options"
	"github.com/lunarbit/skypx/internal/pool"
)

type opKind uint8

const (
	opLiteral opKind = iota
	opPattern
	opBackRef
)

// operation is one encoder decision. Operations are buffered for the whole
// pass because the control-flag table is only final once every length delta
// has been admitted; the byte stream is serialized afterward.
type operation struct {
	kind      opKind
	lit       byte   // literal byte
	flagIndex uint8  // pattern table index 0..8
	payload   byte   // pattern payload nibble
	length    uint8  // back-reference length 3..18
	offset    uint16 // back-reference offset 1..4096
}

// EncoderOption configures an Encoder.
type EncoderOption = options.Option[*Encoder]

// WithSearchLimit caps how far back the match finder searches, between 1
// and WindowSize. A limit of 0 disables back-references entirely (patterns
// and literals only). Smaller limits trade ratio for speed.
func WithSearchLimit(limit int) EncoderOption {
	return options.New(func(e *Encoder) error {
		if limit < 0 || limit > WindowSize {
			return fmt.Errorf("search limit %d outside 0..%d", limit, WindowSize)
		}
		e.searchLimit = limit

		return nil
	})
}

// Encoder compresses raw payloads into PX streams.
//
// An Encoder carries only configuration and the statistics of its last
// Compress call; all per-call scratch state is owned by the call itself.
// Use one Encoder per goroutine.
type Encoder struct {
	searchLimit int
	stats       Stats
}

// NewEncoder creates an Encoder. By default the match finder searches the
// full WindowSize window.
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	e := &Encoder{searchLimit: WindowSize}
	if err := options.Apply(e, opts...); err != nil {
		return nil, err
	}

	return e, nil
}

// Stats returns the statistics of the last Compress call.
func (e *Encoder) Stats() Stats {
	return e.stats
}

// Compress encodes data into a PX stream and the control-flag table
// required to decode it. An empty input yields an empty stream.
//
// The pass is greedy: at each position the encoder prefers a
// back-reference, then a nibble pattern, then a literal. Returns
// errs.ErrSizeOverflow when the stream would not fit the 16-bit container
// length field.
func (e *Encoder) Compress(data []byte) (ControlFlags, []byte, error) {
	alloc := newFlagAllocator()
	ops := make([]operation, 0, len(data)/2+1)

	i := 0
	for i < len(data) {
		if e.searchLimit > 0 {
			if off, matched, ok := findLongestMatch(data, i, e.searchLimit); ok {
				// The usable delta may be clamped down once the length
				// set is full; advance by the emitted length, not the
				// found one.
				matched = alloc.reserve(matched-MinMatch) + MinMatch
				ops = append(ops, operation{
					kind:   opBackRef,
					length: uint8(matched),
					offset: uint16(off),
				})
				i += matched

				continue
			}
		}

		if i+1 < len(data) {
			if idx, payload, ok := patternFor(data[i], data[i+1]); ok {
				ops = append(ops, operation{
					kind:      opPattern,
					flagIndex: uint8(idx),
					payload:   payload,
				})
				i += patternOutput

				continue
			}
		}

		ops = append(ops, operation{kind: opLiteral, lit: data[i]})
		i++
	}

	flags := alloc.controlFlags()

	stream, stats, err := serializeOps(ops, flags)
	if err != nil {
		return ControlFlags{}, nil, err
	}

	stats.OriginalSize = len(data)
	e.stats = stats

	return flags, stream, nil
}

// serializeOps packs the operation stream into control-byte groups of
// eight: bit i (most significant first) marks operation i as a literal.
func serializeOps(ops []operation, flags ControlFlags) ([]byte, Stats, error) {
	var stats Stats

	size := (len(ops) + flagBits - 1) / flagBits
	for _, op := range ops {
		switch op.kind {
		case opLiteral:
			stats.Literals++
			size++
		case opPattern:
			stats.Patterns++
			size++
		case opBackRef:
			stats.BackReferences++
			size += 2
		}
	}

	if size > MaxCompressedSize {
		return nil, Stats{}, fmt.Errorf("%w: %d bytes", errs.ErrSizeOverflow, size)
	}
	stats.CompressedSize = size

	buf := pool.GetAssetBuffer()
	defer pool.PutAssetBuffer(buf)
	buf.Grow(size)

	for group := 0; group < len(ops); group += flagBits {
		end := group + flagBits
		if end > len(ops) {
			end = len(ops)
		}

		var ctrl byte
		for j := group; j < end; j++ {
			if ops[j].kind == opLiteral {
				ctrl |= 1 << (flagBits - 1 - (j - group))
			}
		}
		buf.MustWriteByte(ctrl)

		for j := group; j < end; j++ {
			op := ops[j]
			switch op.kind {
			case opLiteral:
				buf.MustWriteByte(op.lit)
			case opPattern:
				buf.MustWriteByte(flags[op.flagIndex]<<4 | op.payload)
			case opBackRef:
				// Offset is stored as WindowSize-offset: high four bits
				// in the low nibble of the first byte, the rest in the
				// second byte. The first byte's high nibble is the
				// length delta.
				v := WindowSize - int(op.offset)
				buf.MustWriteByte(byte(int(op.length)-MinMatch)<<4 | byte(v>>8))
				buf.MustWriteByte(byte(v))
			}
		}
	}

	return buf.CopyBytes(), stats, nil
}

// Compress encodes data with a default Encoder. See Encoder.Compress.
func Compress(data []byte) (ControlFlags, []byte, error) {
	enc, err := NewEncoder()
	if err != nil {
		return ControlFlags{}, nil, err
	}

	return enc.Compress(data)
}
