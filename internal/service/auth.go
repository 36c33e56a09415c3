// Package service holds the application services sitting between the HTTP
// layer and the adapters: session management, catalog access, and the
// borrowing transaction lifecycle. Services enforce role rules; handlers only
// render.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	domainauth "github.com/libreshelf/library-ui/internal/domain/auth"
	"github.com/libreshelf/library-ui/internal/ports"
)

// ErrForbidden is returned when the session's role does not permit the
// requested operation.
var ErrForbidden = errors.New("forbidden")

// errSessionExpired marks a session that exists in the store but has passed
// its expiry between TTL sweeps.
var errSessionExpired = errors.New("session expired")

// AuthServiceOptions configures the auth service.
type AuthServiceOptions struct {
	Authenticator ports.Authenticator
	Sessions      ports.SessionStore
	SessionTTL    time.Duration
	Logger        *slog.Logger
}

// AuthService owns the login/logout flow and is the only writer of session
// state.
type AuthService struct {
	authenticator ports.Authenticator
	sessions      ports.SessionStore
	sessionTTL    time.Duration
	logger        *slog.Logger
}

// NewAuthService builds the auth service.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	ttl := opts.SessionTTL
	if ttl <= 0 {
		ttl = 8 * time.Hour
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthService{
		authenticator: opts.Authenticator,
		sessions:      opts.Sessions,
		sessionTTL:    ttl,
		logger:        logger.With("component", "auth_service"),
	}
}

// Login authenticates the credentials and persists a fresh session. The
// credential, user, and role are written as one record.
func (s *AuthService) Login(ctx context.Context, username, password string) (domainauth.Session, error) {
	identity, err := s.authenticator.Authenticate(ctx, username, password)
	if err != nil {
		return domainauth.Session{}, fmt.Errorf("authenticate: %w", err)
	}

	sess := domainauth.Session{
		ID:         uuid.New().String(),
		User:       identity.User,
		Role:       identity.Role,
		Credential: identity.Credential,
		ExpiresAt:  time.Now().Add(s.sessionTTL),
	}

	if err := s.sessions.Save(ctx, sess); err != nil {
		return domainauth.Session{}, fmt.Errorf("save session: %w", err)
	}

	s.logger.Info("user logged in", "user_id", sess.User.ID, "role", sess.Role)
	return sess, nil
}

// GetSession resolves a session by ID, cleaning up entries that expired
// between store TTL sweeps.
func (s *AuthService) GetSession(ctx context.Context, id string) (domainauth.Session, error) {
	sess, err := s.sessions.Get(ctx, id)
	if err != nil {
		return domainauth.Session{}, err
	}
	if sess.IsExpired() {
		if delErr := s.sessions.Delete(ctx, id); delErr != nil {
			return domainauth.Session{}, errors.Join(errSessionExpired, delErr)
		}
		return domainauth.Session{}, errSessionExpired
	}
	return sess, nil
}

// Logout discards the session. An empty ID is a no-op so logout is always
// safe to call.
func (s *AuthService) Logout(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
