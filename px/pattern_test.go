package px

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExpandPattern_KnownValues(t *testing.T) {
	tests := []struct {
		name      string
		flagIndex int
		low       byte
		b0, b1    byte
	}{
		{"all equal", 0, 0x3, 0x33, 0x33},
		{"all incremented", 1, 0x3, 0x44, 0x44},
		{"all decremented", 5, 0x3, 0x22, 0x22},
		{"nibble 1 decremented", 2, 0x3, 0x32, 0x33},
		{"nibble 2 decremented", 3, 0x3, 0x33, 0x23},
		{"nibble 3 decremented", 4, 0x3, 0x33, 0x32},
		{"nibble 1 incremented", 6, 0x3, 0x34, 0x33},
		{"nibble 2 incremented", 7, 0x3, 0x33, 0x43},
		{"nibble 3 incremented", 8, 0x3, 0x33, 0x34},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b0, b1 := expandPattern(tt.flagIndex, tt.low)
			require.Equal(t, tt.b0, b0)
			require.Equal(t, tt.b1, b1)
		})
	}
}

func TestExpandPattern_Wraparound(t *testing.T) {
	// Increment wraps 0xF to 0x0, decrement wraps 0x0 to 0xF.
	b0, b1 := expandPattern(1, 0xF)
	require.Equal(t, byte(0x00), b0)
	require.Equal(t, byte(0x00), b1)

	b0, b1 = expandPattern(5, 0x0)
	require.Equal(t, byte(0xFF), b0)
	require.Equal(t, byte(0xFF), b1)

	b0, b1 = expandPattern(6, 0xF)
	require.Equal(t, byte(0xF0), b0)
	require.Equal(t, byte(0xFF), b1)
}

func TestPatternFor_InverseOfExpand(t *testing.T) {
	// Every expandable pair must be recognized by patternFor, and the
	// recognized (index, payload) must expand back to the same pair. The
	// index itself need not match: uniform pairs from indexes 1 and 5
	// canonicalize to index 0.
	for flagIndex := 0; flagIndex < NumControlFlags; flagIndex++ {
		for low := byte(0); low < 16; low++ {
			b0, b1 := expandPattern(flagIndex, low)

			idx, payload, ok := patternFor(b0, b1)
			require.True(t, ok, "expand(%d, %#x) = (%#x, %#x) not recognized", flagIndex, low, b0, b1)

			r0, r1 := expandPattern(idx, payload)
			require.Equal(t, b0, r0)
			require.Equal(t, b1, r1)
		}
	}
}

func TestPatternFor_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		b0, b1 byte
	}{
		{"four distinct nibbles", 0x12, 0x34},
		{"two and two", 0x33, 0x44},
		{"odd nibble differs by two", 0x35, 0x33},
		{"odd nibble at position 0", 0x43, 0x33},
		{"two nibbles differ", 0x34, 0x43},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, ok := patternFor(tt.b0, tt.b1)
			require.False(t, ok)
		})
	}
}
