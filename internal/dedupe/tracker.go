// Package dedupe tracks content IDs of decoded assets and distinguishes
// genuine duplicates from xxHash collisions.
package dedupe

import (
	"github.com/lunarbit/skypx/errs"
)

// fingerprint is a cheap stand-in for full content comparison: payload
// length plus the first and last eight bytes. Two distinct payloads that
// collide on the 64-bit ID and on all three fields are treated as a
// collision error rather than silently deduplicated.
type fingerprint struct {
	length int
	head   [8]byte
	tail   [8]byte
}

func fingerprintOf(data []byte) fingerprint {
	fp := fingerprint{length: len(data)}
	copy(fp.head[:], data)
	if n := len(data); n >= 8 {
		copy(fp.tail[:], data[n-8:])
	} else {
		copy(fp.tail[:], data)
	}

	return fp
}

// Tracker records asset IDs seen during one extraction run.
// It is not safe for concurrent use; callers hold their own lock.
type Tracker struct {
	seen       map[uint64]fingerprint
	duplicates int
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{
		seen: make(map[uint64]fingerprint),
	}
}

// Track records an asset ID with its payload.
//
// Returns:
//   - duplicate = true if the same content was tracked before
//   - errs.ErrHashCollision if the ID was seen with different content
func (t *Tracker) Track(id uint64, data []byte) (bool, error) {
	fp := fingerprintOf(data)

	if existing, ok := t.seen[id]; ok {
		if existing != fp {
			return false, errs.ErrHashCollision
		}

		t.duplicates++

		return true, nil
	}

	t.seen[id] = fp

	return false, nil
}

// Count returns the number of distinct assets tracked.
func (t *Tracker) Count() int {
	return len(t.seen)
}

// Duplicates returns how many Track calls matched already-tracked content.
func (t *Tracker) Duplicates() int {
	return t.duplicates
}

// Reset clears all tracked assets, retaining map capacity for reuse.
func (t *Tracker) Reset() {
	for k := range t.seen {
		delete(t.seen, k)
	}
	t.duplicates = 0
}
