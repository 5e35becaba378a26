// Package cache implements a content-addressed store for decoded asset
// payloads.
//
// A ROM's sprite and portrait archives reuse the same graphics in many
// places, so one extraction run decodes the same bytes over and over. The
// store addresses payloads by their 64-bit content ID, keeps exactly one
// copy of each, and holds that copy recompressed with a storage codec from
// package compress.
package cache

import (
	"fmt"
	"sync"

	"github.com/lunarbit/skypx/compress"
	"github.com/lunarbit/skypx/errs"
	"github.com/lunarbit/skypx/format"
	"github.com/lunarbit/skypx/internal/dedupe"
	"github.com/lunarbit/skypx/internal/hash"
	"github.com/lunarbit/skypx/internal/options"
	"github.com/lunarbit/skypx/internal/pool"
)

// StoreOption configures a Store.
type StoreOption = options.Option[*Store]

// WithStorage selects the storage codec for payloads at rest. The default
// is S2.
func WithStorage(storageType format.StorageType) StoreOption {
	return options.New(func(s *Store) error {
		codec, err := compress.CreateCodec(storageType, "asset cache")
		if err != nil {
			return err
		}
		s.storage = storageType
		s.codec = codec

		return nil
	})
}

// Store is a content-addressed asset cache. Safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	codec   compress.Codec
	storage format.StorageType
	tracker *dedupe.Tracker
	entries map[uint64][]byte
}

// NewStore creates an empty Store with S2 storage unless overridden.
func NewStore(opts ...StoreOption) (*Store, error) {
	s := &Store{
		tracker: dedupe.NewTracker(),
		entries: make(map[uint64][]byte),
	}

	if err := options.Apply(s, append([]StoreOption{WithStorage(format.StorageS2)}, opts...)...); err != nil {
		return nil, err
	}

	return s, nil
}

// Storage returns the storage type payloads are held under.
func (s *Store) Storage() format.StorageType {
	return s.storage
}

// Put stores a decoded payload and returns its content ID. duplicate
// reports that identical content was already stored (the payload is not
// stored again). A content-ID collision between distinct payloads fails
// with errs.ErrHashCollision.
func (s *Store) Put(data []byte) (id uint64, duplicate bool, err error) {
	id = hash.ID(data)

	s.mu.Lock()
	defer s.mu.Unlock()

	duplicate, err = s.tracker.Track(id, data)
	if err != nil {
		return 0, false, fmt.Errorf("cache put: %w", err)
	}
	if duplicate {
		return id, true, nil
	}

	// Stage through a pooled buffer so Put keeps no reference to the
	// caller's slice.
	buf := pool.GetAssetBuffer()
	buf.MustWrite(data)
	stored, err := s.codec.Compress(buf.Bytes())
	if err != nil {
		pool.PutAssetBuffer(buf)
		return 0, false, fmt.Errorf("cache put: %w", err)
	}

	// The no-op codec returns its input, which aliases the pooled buffer;
	// everything else allocates and the buffer can go back to the pool.
	if s.storage == format.StorageNone {
		stored = buf.CopyBytes()
	}
	pool.PutAssetBuffer(buf)

	s.entries[id] = stored

	return id, false, nil
}

// Get returns the decoded payload for a content ID, or
// errs.ErrUnknownAsset if nothing was stored under it.
func (s *Store) Get(id uint64) ([]byte, error) {
	s.mu.RLock()
	stored, ok := s.entries[id]
	s.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %016x", errs.ErrUnknownAsset, id)
	}

	data, err := s.codec.Decompress(stored)
	if err != nil {
		return nil, fmt.Errorf("cache get %016x: %w", id, err)
	}

	return data, nil
}

// Len returns the number of distinct payloads stored.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.entries)
}

// Duplicates returns how many Put calls were deduplicated.
func (s *Store) Duplicates() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.tracker.Duplicates()
}

// Reset drops all stored payloads and dedupe state, retaining capacity.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for k := range s.entries {
		delete(s.entries, k)
	}
	s.tracker.Reset()
}
