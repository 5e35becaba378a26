package px

// findLongestMatch searches the sliding window behind data[pos] for the
// longest run equal to the bytes at data[pos:]. limit caps how far back
// the search reaches (at most WindowSize).
//
// The scan walks candidate start positions left to right, verifies the
// 3-byte prefix, then extends byte-by-byte up to MaxMatch; the first
// longest match wins and a MaxMatch hit stops the scan early. A match may
// extend past pos: the source then overlaps the bytes being produced,
// which the decoder replays as a cyclic copy.
//
// Returns ok = false when no match reaches MinMatch.
func findLongestMatch(data []byte, pos int, limit int) (offset, length int, ok bool) {
	remaining := len(data) - pos
	if remaining < MinMatch {
		return 0, 0, false
	}

	maxLen := remaining
	if maxLen > MaxMatch {
		maxLen = MaxMatch
	}

	if limit <= 0 || limit > WindowSize {
		limit = WindowSize
	}
	start := pos - limit
	if start < 0 {
		start = 0
	}

	bestLen := 0
	bestOff := 0
	for s := start; s < pos; s++ {
		if data[s] != data[pos] || data[s+1] != data[pos+1] || data[s+2] != data[pos+2] {
			continue
		}

		n := MinMatch
		for n < maxLen && data[s+n] == data[pos+n] {
			n++
		}

		if n > bestLen {
			bestLen = n
			bestOff = pos - s
			if bestLen == maxLen {
				break
			}
		}
	}

	if bestLen < MinMatch {
		return 0, 0, false
	}

	return bestOff, bestLen, true
}
