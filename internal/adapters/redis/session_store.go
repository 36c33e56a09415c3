// Package redis provides a Redis-backed session store. Sessions are stored
// as JSON values with a TTL matching the session expiry, so the store never
// accumulates stale records and sessions survive app restarts.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	domainauth "github.com/libreshelf/library-ui/internal/domain/auth"
)

// notFoundError is returned when a session does not exist or has expired.
type notFoundError struct{}

func (notFoundError) Error() string { return "session not found" }

// ErrNotFound reports a missing or expired session. Callers treat it as an
// absent session, not a failure.
var ErrNotFound error = notFoundError{}

const defaultKeyPrefix = "session:"

// SessionStore persists sessions in Redis.
type SessionStore struct {
	client redis.UniversalClient
	prefix string
}

// NewSessionStore creates a session store on the given client.
func NewSessionStore(client redis.UniversalClient) *SessionStore {
	return &SessionStore{client: client, prefix: defaultKeyPrefix}
}

func (s *SessionStore) key(id string) string {
	return s.prefix + id
}

// Save writes the session with a TTL derived from its expiry. Saving an
// already expired session is an error; saving without an ID is an error.
func (s *SessionStore) Save(ctx context.Context, sess domainauth.Session) error {
	if sess.ID == "" {
		return errors.New("session ID cannot be empty")
	}

	ttl := time.Until(sess.ExpiresAt)
	if ttl <= 0 {
		return errors.New("session is expired")
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	if err := s.client.Set(ctx, s.key(sess.ID), data, ttl).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Get retrieves a session by ID. Missing, unparseable, or expired entries
// all surface as ErrNotFound; corrupt and expired entries are deleted on the
// way out.
func (s *SessionStore) Get(ctx context.Context, id string) (domainauth.Session, error) {
	if id == "" {
		return domainauth.Session{}, ErrNotFound
	}

	data, err := s.client.Get(ctx, s.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domainauth.Session{}, ErrNotFound
	}
	if err != nil {
		return domainauth.Session{}, fmt.Errorf("get session: %w", err)
	}

	var sess domainauth.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		// A record we cannot read is as good as no record. Drop it so the
		// next lookup is a clean miss.
		_ = s.client.Del(ctx, s.key(id)).Err()
		return domainauth.Session{}, ErrNotFound
	}

	// Redis TTL should have removed this already; check anyway in case of
	// clock skew between writer and reader.
	if sess.IsExpired() {
		_ = s.client.Del(ctx, s.key(id)).Err()
		return domainauth.Session{}, ErrNotFound
	}

	return sess, nil
}

// Delete removes a session. Deleting a missing session or an empty ID is a
// no-op.
func (s *SessionStore) Delete(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	if err := s.client.Del(ctx, s.key(id)).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
