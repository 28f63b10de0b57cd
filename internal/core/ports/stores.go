package ports

import (
	"context"
	"time"
)

// SessionStore persists the upstream bearer token for each open session.
// Keys expire with the session TTL; a logout deletes the key explicitly.
type SessionStore interface {
	Put(ctx context.Context, sessionID, userID, upstreamToken string, ttl time.Duration) error
	// Get returns the stored user id and token, or ("", "", nil) when the
	// session does not exist or has expired.
	Get(ctx context.Context, sessionID string) (userID, upstreamToken string, err error)
	Delete(ctx context.Context, sessionID string) error
}

// InflightStore guards against duplicate submissions: only one orchestration
// per key may run at a time. Acquire returns false when a run is already in
// flight for the key.
type InflightStore interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}
