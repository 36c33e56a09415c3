package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/libreshelf/library-ui/internal/domain/auth"
	mockauth "github.com/libreshelf/library-ui/internal/mocks/auth"
)

func newAuthService(authenticator *mockauth.MockAuthenticator, store *mockauth.MemorySessionStore) *AuthService {
	return NewAuthService(AuthServiceOptions{
		Authenticator: authenticator,
		Sessions:      store,
		SessionTTL:    time.Hour,
	})
}

func TestAuthService_Login_PersistsSession(t *testing.T) {
	store := mockauth.NewMemorySessionStore()
	authenticator := &mockauth.MockAuthenticator{
		AuthenticateFunc: func(_ context.Context, username, _ string) (domainauth.Identity, error) {
			return domainauth.Identity{
				User:       domainauth.User{ID: 11, Username: username},
				Role:       domainauth.RoleAdmin,
				Credential: "tok-11",
			}, nil
		},
	}
	svc := newAuthService(authenticator, store)

	sess, err := svc.Login(context.Background(), "admin", "pw")
	require.NoError(t, err)
	assert.NotEmpty(t, sess.ID)
	assert.Equal(t, 11, sess.User.ID)
	assert.Equal(t, domainauth.RoleAdmin, sess.Role)
	assert.Equal(t, "tok-11", sess.Credential)
	assert.WithinDuration(t, time.Now().Add(time.Hour), sess.ExpiresAt, 5*time.Second)

	// Login and a fresh lookup round-trip through the store.
	got, err := svc.GetSession(context.Background(), sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess.User, got.User)
	assert.Equal(t, sess.Role, got.Role)
	assert.Equal(t, sess.Credential, got.Credential)
}

func TestAuthService_Login_FailureLeavesNoSession(t *testing.T) {
	store := mockauth.NewMemorySessionStore()
	authErr := errors.New("authentication failed")
	svc := newAuthService(&mockauth.MockAuthenticator{
		AuthenticateFunc: func(context.Context, string, string) (domainauth.Identity, error) {
			return domainauth.Identity{}, authErr
		},
	}, store)

	_, err := svc.Login(context.Background(), "alice", "wrong")
	assert.ErrorIs(t, err, authErr)
	assert.Zero(t, store.Len())
}

func TestAuthService_GetSession_ExpiredIsCleanedUp(t *testing.T) {
	store := mockauth.NewMemorySessionStore()
	svc := newAuthService(&mockauth.MockAuthenticator{}, store)

	require.NoError(t, store.Save(context.Background(), domainauth.Session{
		ID:        "stale",
		ExpiresAt: time.Now().Add(-time.Minute),
	}))

	_, err := svc.GetSession(context.Background(), "stale")
	assert.Error(t, err)
	assert.Zero(t, store.Len())
}

func TestAuthService_Logout(t *testing.T) {
	store := mockauth.NewMemorySessionStore()
	svc := newAuthService(&mockauth.MockAuthenticator{}, store)

	sess, err := svc.Login(context.Background(), "bob", "pw")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), sess.ID))
	_, err = svc.GetSession(context.Background(), sess.ID)
	assert.Error(t, err)

	// Logging out twice, or with no session, is fine.
	assert.NoError(t, svc.Logout(context.Background(), sess.ID))
	assert.NoError(t, svc.Logout(context.Background(), ""))
}
