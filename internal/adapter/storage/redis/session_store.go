package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// SessionStore implements ports.SessionStore on Redis. Each session is one
// JSON value under session:<id>, expiring with the session TTL.
type SessionStore struct {
	client *goredis.Client
	prefix string
}

// NewSessionStore creates a new Redis-backed session store.
func NewSessionStore(client *goredis.Client) *SessionStore {
	return &SessionStore{
		client: client,
		prefix: "session:",
	}
}

type sessionRecord struct {
	UserID        string `json:"user_id"`
	UpstreamToken string `json:"upstream_token"`
}

// Put stores the session with the given TTL.
func (s *SessionStore) Put(ctx context.Context, sessionID, userID, upstreamToken string, ttl time.Duration) error {
	payload, err := json.Marshal(sessionRecord{UserID: userID, UpstreamToken: upstreamToken})
	if err != nil {
		return fmt.Errorf("marshaling session: %w", err)
	}
	if err := s.client.Set(ctx, s.prefix+sessionID, payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis session put: %w", err)
	}
	return nil
}

// Get loads the session. A missing or expired session returns ("", "", nil).
func (s *SessionStore) Get(ctx context.Context, sessionID string) (string, string, error) {
	data, err := s.client.Get(ctx, s.prefix+sessionID).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return "", "", nil
		}
		return "", "", fmt.Errorf("redis session get: %w", err)
	}
	var rec sessionRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return "", "", fmt.Errorf("unmarshaling session: %w", err)
	}
	return rec.UserID, rec.UpstreamToken, nil
}

// Delete removes the session.
func (s *SessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, s.prefix+sessionID).Err(); err != nil {
		return fmt.Errorf("redis session delete: %w", err)
	}
	return nil
}
