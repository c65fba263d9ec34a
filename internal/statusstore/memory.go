package statusstore

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryStore backs the status cache with an in-process map. go-cache
// checks expiry on read, so an entry past its TTL is absent even before
// the background janitor evicts it.
type MemoryStore struct {
	cache *gocache.Cache
}

// NewMemoryStore creates an in-process status store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		cache: gocache.New(DefaultTTL, time.Minute),
	}
}

// Set idempotently (re)writes the entry and resets its expiry window
func (s *MemoryStore) Set(ctx context.Context, documentID, status string, ttl time.Duration) error {
	s.cache.Set(key(documentID), status, ttl)
	return nil
}

// Get returns the current status if present and not expired
func (s *MemoryStore) Get(ctx context.Context, documentID string) (string, bool, error) {
	v, found := s.cache.Get(key(documentID))
	if !found {
		return "", false, nil
	}
	status, ok := v.(string)
	if !ok {
		return "", false, nil
	}
	return status, true, nil
}

// Health always succeeds for the in-process backend
func (s *MemoryStore) Health(ctx context.Context) error {
	return nil
}
