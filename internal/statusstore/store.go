// Package statusstore is the time-bounded cache correlating signing
// completion webhooks with client-side status polling. Entries map a
// provider document id to a status string and expire after a fixed TTL;
// the cache is not the system of record for signing status, the provider is.
package statusstore

import (
	"context"
	"time"
)

// StatusCompleted is the only status value the webhook pipeline writes
const StatusCompleted = "completed"

// DefaultTTL is the lifetime of a completion entry, reset on every Set
const DefaultTTL = 10 * time.Minute

// keyPrefix namespaces cache keys so a shared backend cannot collide with
// other data keyed by raw document ids.
const keyPrefix = "signstatus:"

// Store is the capability set the webhook handler (sole writer) and the
// status poll endpoint (sole reader) share. Implementations provide their
// own synchronization; callers never lock around Store operations.
//
// Get must not return expired entries even if the backend has not yet
// evicted them, and must report backend failures as errors so the read
// path can fail safe.
type Store interface {
	Set(ctx context.Context, documentID, status string, ttl time.Duration) error
	Get(ctx context.Context, documentID string) (string, bool, error)
	Health(ctx context.Context) error
}

func key(documentID string) string {
	return keyPrefix + documentID
}
