// Package devauth provides a development-only authenticator that mints a
// configured identity without contacting the library backend. Enabled via
// AUTH_MODE=mock; never use it in production.
package devauth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"

	domainauth "github.com/libreshelf/library-ui/internal/domain/auth"
)

// Config describes the identity every login resolves to.
type Config struct {
	UserID   int
	Username string
	Role     string
}

// Authenticator accepts any username/password and returns the configured
// identity with a random throwaway credential.
type Authenticator struct {
	user domainauth.User
	role domainauth.Role
}

// New validates the config and builds the authenticator.
func New(cfg Config) (*Authenticator, error) {
	if cfg.UserID <= 0 {
		return nil, errors.New("dev auth: user id is required")
	}
	if cfg.Username == "" {
		return nil, errors.New("dev auth: username is required")
	}
	role, err := domainauth.ParseRole(cfg.Role)
	if err != nil {
		return nil, fmt.Errorf("dev auth: %w", err)
	}
	return &Authenticator{
		user: domainauth.User{ID: cfg.UserID, Username: cfg.Username},
		role: role,
	}, nil
}

// Authenticate ignores the submitted credentials and returns the configured
// identity. The credential is random so sessions remain distinguishable.
func (a *Authenticator) Authenticate(_ context.Context, _, _ string) (domainauth.Identity, error) {
	cred, err := randomString(32)
	if err != nil {
		return domainauth.Identity{}, fmt.Errorf("dev auth: generate credential: %w", err)
	}
	return domainauth.Identity{
		User:       a.user,
		Role:       a.role,
		Credential: "dev-" + cred,
	}, nil
}

func randomString(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
