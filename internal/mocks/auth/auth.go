// Package auth provides hand-written test doubles for the auth ports. The
// session store is a real in-memory implementation; the authenticator is a
// configurable fake.
package auth

import (
	"context"
	"sync"

	domainauth "github.com/libreshelf/library-ui/internal/domain/auth"
	"github.com/libreshelf/library-ui/internal/ports"
)

// notFoundError mirrors the redis adapter's not-found sentinel so callers can
// treat the doubles interchangeably with the real store.
type notFoundError struct{}

func (notFoundError) Error() string { return "session not found" }

// ErrNotFound reports a missing session.
var ErrNotFound error = notFoundError{}

// MemorySessionStore is a map-backed SessionStore safe for concurrent use.
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]domainauth.Session
}

var _ ports.SessionStore = (*MemorySessionStore)(nil)

// NewMemorySessionStore creates an empty in-memory store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]domainauth.Session)}
}

// Save stores the session keyed by its ID.
func (s *MemorySessionStore) Save(_ context.Context, sess domainauth.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess
	return nil
}

// Get returns the session or ErrNotFound. Expired sessions behave as absent,
// matching the redis adapter.
func (s *MemorySessionStore) Get(_ context.Context, id string) (domainauth.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok || sess.IsExpired() {
		delete(s.sessions, id)
		return domainauth.Session{}, ErrNotFound
	}
	return sess, nil
}

// Delete removes the session; missing IDs are a no-op.
func (s *MemorySessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

// Len reports the number of stored sessions (test assertions).
func (s *MemorySessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// MockAuthenticator is a configurable Authenticator double. Without an
// override it accepts everything as a plain USER with a deterministic
// credential.
type MockAuthenticator struct {
	// AuthenticateFunc overrides the default behavior when set.
	AuthenticateFunc func(ctx context.Context, username, password string) (domainauth.Identity, error)
}

var _ ports.Authenticator = (*MockAuthenticator)(nil)

// Authenticate runs the override or the permissive default.
func (m *MockAuthenticator) Authenticate(ctx context.Context, username, password string) (domainauth.Identity, error) {
	if m.AuthenticateFunc != nil {
		return m.AuthenticateFunc(ctx, username, password)
	}
	return domainauth.Identity{
		User:       domainauth.User{ID: 1, Username: username},
		Role:       domainauth.RoleUser,
		Credential: "cred-" + username,
	}, nil
}
