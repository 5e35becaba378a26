package px

import (
	"fmt"

	"github.com/lunarbit/skypx/errs"
	"github.com/lunarbit/skypx/internal/options"
)

// NoExpectedLen tells Decompress that the decompressed size is unknown;
// decoding then runs until the compressed stream is exhausted.
const NoExpectedLen = -1

// DecoderOption configures a Decoder.
type DecoderOption = options.Option[*Decoder]

// WithStrictLength makes a stream that ends before the expected
// decompressed length a hard failure instead of a warning. Containers
// extracted from real ROMs are sometimes padded short, so the default is
// lenient; enable strict mode when validating freshly encoded data.
func WithStrictLength() DecoderOption {
	return options.NoError(func(d *Decoder) {
		d.strict = true
	})
}

// Decoder reconstructs raw payloads from PX streams.
//
// Decompress is a pure function of its inputs; a Decoder carries only
// configuration and is safe for concurrent use.
type Decoder struct {
	strict bool
}

// NewDecoder creates a Decoder. The default is lenient about streams that
// end before the expected length; see WithStrictLength.
func NewDecoder(opts ...DecoderOption) (*Decoder, error) {
	d := &Decoder{}
	if err := options.Apply(d, opts...); err != nil {
		return nil, err
	}

	return d, nil
}

// Decompress decodes a PX stream using the control-flag table persisted
// with it. expectedLen is the decompressed size from the container header,
// or NoExpectedLen when unknown; decoding stops once that many bytes are
// produced, ignoring any trailing padding in the stream.
//
// When the stream is exhausted before expectedLen, the bytes decoded so
// far are returned together with errs.ErrShortStream; callers check with
// errors.Is and decide whether to keep the partial payload. In strict mode
// the partial payload is dropped instead.
//
// Corrupt streams fail with errs.ErrTruncatedInput or
// errs.ErrInvalidBackReference.
func (d *Decoder) Decompress(compressed []byte, flags ControlFlags, expectedLen int) ([]byte, error) {
	capHint := expectedLen
	if capHint < 0 {
		capHint = len(compressed) * patternOutput
	}
	out := make([]byte, 0, capHint)

	pos := 0
decode:
	for pos < len(compressed) {
		if expectedLen >= 0 && len(out) >= expectedLen {
			break
		}

		ctrl := compressed[pos]
		pos++

		for bit := flagBits - 1; bit >= 0; bit-- {
			if expectedLen >= 0 && len(out) >= expectedLen {
				break decode
			}
			// Exhaustion at an operation boundary is a normal stop;
			// only a missing operand below is corruption.
			if pos >= len(compressed) {
				break decode
			}

			if ctrl&(1<<bit) != 0 {
				out = append(out, compressed[pos])
				pos++

				continue
			}

			b := compressed[pos]
			pos++
			hi, lo := b>>4, b&0x0F

			if idx := flags.indexOf(hi); idx >= 0 {
				b0, b1 := expandPattern(idx, lo)
				out = append(out, b0, b1)

				continue
			}

			if pos >= len(compressed) {
				return nil, fmt.Errorf("%w: back-reference missing second byte at input offset %d", errs.ErrTruncatedInput, pos-1)
			}
			b2 := compressed[pos]
			pos++

			offset := WindowSize - (int(lo)<<8 | int(b2))
			length := int(hi) + MinMatch
			if offset <= 0 || offset > len(out) {
				return nil, fmt.Errorf("%w: offset %d with %d bytes decoded", errs.ErrInvalidBackReference, offset, len(out))
			}

			// The run may be longer than its offset; read cyclically so
			// each appended byte replays the short history window.
			base := len(out) - offset
			for k := 0; k < length; k++ {
				out = append(out, out[base+k%offset])
			}
		}
	}

	if expectedLen >= 0 {
		if len(out) > expectedLen {
			// A trailing pattern or back-reference may overshoot by a
			// few bytes; the declared size wins.
			out = out[:expectedLen]
		}
		if len(out) < expectedLen {
			err := fmt.Errorf("%w: decoded %d of %d bytes", errs.ErrShortStream, len(out), expectedLen)
			if d.strict {
				return nil, err
			}

			return out, err
		}
	}

	return out, nil
}

// Decompress decodes a PX stream with a default (lenient) Decoder. See
// Decoder.Decompress.
func Decompress(compressed []byte, flags ControlFlags, expectedLen int) ([]byte, error) {
	dec, err := NewDecoder()
	if err != nil {
		return nil, err
	}

	return dec.Decompress(compressed, flags, expectedLen)
}
