package px

// flagAllocator partitions the sixteen nibble values of one encode pass
// into a length set (back-reference length deltas, at most 7) and the
// control-flag table (the remaining 9, pattern selectors).
//
// The set is seeded with deltas 0 and 15 so the minimum (3) and maximum
// (18) match lengths are always representable. Further deltas are admitted
// on demand until the set is full; after that, reserve substitutes the
// largest already-admitted delta that does not exceed the requested one.
// Substituting down shortens the emitted match, which only costs ratio,
// never correctness.
//
// One allocator is owned by a single Compress call; it is never shared.
type flagAllocator struct {
	inLengthSet [16]bool
	size        int
}

func newFlagAllocator() *flagAllocator {
	a := &flagAllocator{}
	a.inLengthSet[0] = true
	a.inLengthSet[15] = true
	a.size = 2

	return a
}

// reserve returns a usable length delta for the requested one, admitting
// it into the length set when there is room. The result never exceeds the
// request; delta 0 is always available as the floor.
func (a *flagAllocator) reserve(delta int) int {
	if a.inLengthSet[delta] {
		return delta
	}

	if a.size < maxLengthSet {
		a.inLengthSet[delta] = true
		a.size++

		return delta
	}

	for d := delta - 1; d > 0; d-- {
		if a.inLengthSet[d] {
			return d
		}
	}

	return 0
}

// controlFlags returns the final flag table: the nine smallest nibble
// values outside the length set, ascending. When fewer than seven deltas
// were admitted, the leftover nibbles belong to neither side; the encoder
// never emits them, and the decoder falls through to the back-reference
// path for values outside this table.
func (a *flagAllocator) controlFlags() ControlFlags {
	var flags ControlFlags

	n := 0
	for v := 0; v < 16 && n < NumControlFlags; v++ {
		if !a.inLengthSet[v] {
			flags[n] = byte(v)
			n++
		}
	}

	return flags
}
