package statusstore

import (
	"context"
	"time"

	"loansign/internal/common/errors"
	"loansign/internal/redis"
)

// RedisStore backs the status cache with Redis; expiry is enforced by the
// server, so entries are shared across instances and never outlive the TTL.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a Redis-backed status store
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Set idempotently (re)writes the entry and resets its expiry window
func (s *RedisStore) Set(ctx context.Context, documentID, status string, ttl time.Duration) error {
	if err := s.client.Set(ctx, key(documentID), status, ttl); err != nil {
		return errors.StoreUnavailableError("failed to write status entry", err).
			WithContext("document_id", documentID)
	}
	return nil
}

// Get returns the current status if present and not expired
func (s *RedisStore) Get(ctx context.Context, documentID string) (string, bool, error) {
	status, found, err := s.client.Get(ctx, key(documentID))
	if err != nil {
		return "", false, errors.StoreUnavailableError("failed to read status entry", err).
			WithContext("document_id", documentID)
	}
	return status, found, nil
}

// Health pings the backend
func (s *RedisStore) Health(ctx context.Context) error {
	if err := s.client.Health(ctx); err != nil {
		return errors.StoreUnavailableError("redis ping failed", err)
	}
	return nil
}
