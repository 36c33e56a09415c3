package ports

// Package ports defines interfaces (hexagonal ports) for auth and backend
// access. Implementations live in internal/adapters and internal/backend;
// orchestration in internal/service.

import (
	"context"

	domainauth "github.com/libreshelf/library-ui/internal/domain/auth"
)

// Authenticator verifies a username/password pair and returns the
// authenticated identity, including the opaque credential the backend expects
// on subsequent requests.
type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) (domainauth.Identity, error)
}

// SessionStore persists and retrieves user sessions.
type SessionStore interface {
	Save(ctx context.Context, sess domainauth.Session) error
	Get(ctx context.Context, id string) (domainauth.Session, error)
	Delete(ctx context.Context, id string) error
}
