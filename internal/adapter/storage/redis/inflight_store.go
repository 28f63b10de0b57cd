package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// InflightStore implements ports.InflightStore using Redis SET NX. The TTL
// is a safety valve: a crashed orchestration releases its slot when the key
// expires.
type InflightStore struct {
	client *goredis.Client
	prefix string
}

// NewInflightStore creates a new Redis-backed in-flight guard.
func NewInflightStore(client *goredis.Client) *InflightStore {
	return &InflightStore{
		client: client,
		prefix: "inflight:",
	}
}

// Acquire atomically claims the key. Returns false when a run is already in
// flight for the key.
func (s *InflightStore) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	result, err := s.client.SetArgs(ctx, s.prefix+key, 1, goredis.SetArgs{
		Mode: "NX",
		TTL:  ttl,
	}).Result()
	if err != nil {
		if err == goredis.Nil {
			// Key already exists, another run holds the slot.
			return false, nil
		}
		return false, fmt.Errorf("redis inflight acquire: %w", err)
	}
	return result == "OK", nil
}

// Release frees the slot once the orchestration finishes.
func (s *InflightStore) Release(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		return fmt.Errorf("redis inflight release: %w", err)
	}
	return nil
}
