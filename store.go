package main

import (
	"context"
	"errors"
	"sync"
)

// Store is the persistence gateway: an opaque key-value blob store. The
// workspace owns all interpretation of the blobs; adapters only move bytes.
type Store interface {
	// Load returns the blob saved under key, or errNoBlob if none exists.
	Load(ctx context.Context, key string) ([]byte, error)
	// Save overwrites the blob under key.
	Save(ctx context.Context, key string, blob []byte) error
	// Close releases the underlying resources.
	Close() error
}

// errNoBlob signals an absent key, which is a normal first-boot condition.
var errNoBlob = errors.New("no blob for key")

// Blob store keys, one per domain collection.
const (
	keySheets     = "sheets"
	keySchedules  = "schedules"
	keyMembers    = "members"
	keyNotes      = "notes"
	keySettings   = "settings"
	keyShortlinks = "shortlinks"
)

// memoryStore keeps blobs in a map. Used by tests and STORE_DRIVER=memory.
type memoryStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

func newMemoryStore() *memoryStore {
	return &memoryStore{blobs: make(map[string][]byte)}
}

func (s *memoryStore) Load(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	blob, ok := s.blobs[key]
	if !ok {
		return nil, errNoBlob
	}
	out := make([]byte, len(blob))
	copy(out, blob)
	return out, nil
}

func (s *memoryStore) Save(_ context.Context, key string, blob []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(blob))
	copy(stored, blob)
	s.blobs[key] = stored
	return nil
}

func (s *memoryStore) Close() error {
	return nil
}
