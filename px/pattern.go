package px

// expandPattern reconstructs the two output bytes of a nibble-pattern
// operation. flagIndex is the control-flag table position (0..8), low the
// payload nibble. Four nibbles n0..n3 are derived and packed as
// (n0<<4|n1, n2<<4|n3):
//
//	index 0:     all four equal the payload
//	index 1:     all four equal payload+1
//	index 5:     all four equal payload-1
//	index 2..4:  all equal payload, except n[index-1] = payload-1
//	index 6..8:  all equal payload, except n[index-5] = payload+1
//
// Arithmetic wraps modulo 16. The function is pure; no input is invalid.
func expandPattern(flagIndex int, low byte) (byte, byte) {
	low &= 0x0F

	var n [4]byte
	switch {
	case flagIndex == 0:
		n[0], n[1], n[2], n[3] = low, low, low, low
	case flagIndex == 1:
		v := (low + 1) & 0x0F
		n[0], n[1], n[2], n[3] = v, v, v, v
	case flagIndex == 5:
		v := (low + 15) & 0x0F
		n[0], n[1], n[2], n[3] = v, v, v, v
	case flagIndex >= 2 && flagIndex <= 4:
		n[0], n[1], n[2], n[3] = low, low, low, low
		n[flagIndex-1] = (low + 15) & 0x0F
	default: // 6..8
		n[0], n[1], n[2], n[3] = low, low, low, low
		n[flagIndex-5] = (low + 1) & 0x0F
	}

	return n[0]<<4 | n[1], n[2]<<4 | n[3]
}

// patternFor is the encoder-side inverse of expandPattern: it reports
// whether the byte pair (b0, b1) is representable as a single nibble
// pattern, and if so under which table index and payload nibble.
//
// A pair qualifies when its four nibbles are all equal (index 0), or when
// exactly three share one value and the fourth differs from it by one
// modulo 16. The differing nibble can only sit at positions 1..3; the
// index-1 and index-5 rules (all four shifted) are never chosen because
// index 0 already covers every uniform pair.
func patternFor(b0, b1 byte) (flagIndex int, payload byte, ok bool) {
	n := [4]byte{b0 >> 4, b0 & 0x0F, b1 >> 4, b1 & 0x0F}

	if n[0] == n[1] && n[1] == n[2] && n[2] == n[3] {
		return 0, n[0], true
	}

	// Find the odd nibble out. With four nibbles and a required 3:1
	// split, the majority value is whichever value appears in at least
	// two of the first three positions.
	major := n[0]
	if n[1] == n[2] {
		major = n[1]
	}

	odd := -1
	for i, v := range n {
		if v == major {
			continue
		}
		if odd >= 0 {
			return 0, 0, false // more than one nibble differs
		}
		odd = i
	}

	// odd == 0 has no table rule; odd < 0 is unreachable here because the
	// uniform case returned above.
	if odd <= 0 {
		return 0, 0, false
	}

	switch n[odd] {
	case (major + 15) & 0x0F:
		return odd + 1, major, true // decremented nibble: index 2..4
	case (major + 1) & 0x0F:
		return odd + 5, major, true // incremented nibble: index 6..8
	default:
		return 0, 0, false
	}
}
