package redis

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/libreshelf/library-ui/internal/domain/auth"
	"github.com/libreshelf/library-ui/internal/testutil"
)

func setupTestStore(t *testing.T) (*SessionStore, goredis.UniversalClient) {
	t.Helper()
	client := testutil.SetupTestRedis(t)
	return NewSessionStore(client), client
}

func testSession(id string) domainauth.Session {
	return domainauth.Session{
		ID:         id,
		User:       domainauth.User{ID: 7, Username: "alice"},
		Role:       domainauth.RoleUser,
		Credential: "token-abc",
		ExpiresAt:  time.Now().Add(time.Hour),
	}
}

func TestSessionStore_SaveAndGet(t *testing.T) {
	store, _ := setupTestStore(t)
	ctx := context.Background()

	sess := testSession("sess-1")
	require.NoError(t, store.Save(ctx, sess))

	got, err := store.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, sess.ID, got.ID)
	assert.Equal(t, sess.User, got.User)
	assert.Equal(t, sess.Role, got.Role)
	assert.Equal(t, sess.Credential, got.Credential)
	assert.WithinDuration(t, sess.ExpiresAt, got.ExpiresAt, time.Second)
}

func TestSessionStore_Save_Validation(t *testing.T) {
	store, _ := setupTestStore(t)
	ctx := context.Background()

	sess := testSession("")
	assert.ErrorContains(t, store.Save(ctx, sess), "session ID cannot be empty")

	sess = testSession("sess-expired")
	sess.ExpiresAt = time.Now().Add(-time.Minute)
	assert.ErrorContains(t, store.Save(ctx, sess), "session is expired")
}

func TestSessionStore_Get_Missing(t *testing.T) {
	store, _ := setupTestStore(t)

	_, err := store.Get(context.Background(), "no-such-session")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.Get(context.Background(), "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionStore_Get_CorruptRecordBehavesAsMissing(t *testing.T) {
	store, client := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "session:corrupt", "{not json", time.Minute).Err())

	_, err := store.Get(ctx, "corrupt")
	assert.ErrorIs(t, err, ErrNotFound)

	// The corrupt record is cleaned up, not left to fail again.
	exists, err := client.Exists(ctx, "session:corrupt").Result()
	require.NoError(t, err)
	assert.Zero(t, exists)
}

func TestSessionStore_Get_ExpiredRecordBehavesAsMissing(t *testing.T) {
	store, client := setupTestStore(t)
	ctx := context.Background()

	// Write an expired session directly, bypassing Save's guard, to simulate
	// clock skew where the redis TTL has not fired yet.
	sess := testSession("sess-skew")
	sess.ExpiresAt = time.Now().Add(-time.Minute)
	data, err := json.Marshal(sess)
	require.NoError(t, err)
	require.NoError(t, client.Set(ctx, "session:sess-skew", data, time.Minute).Err())

	_, err = store.Get(ctx, "sess-skew")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionStore_Delete(t *testing.T) {
	store, _ := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testSession("sess-del")))
	require.NoError(t, store.Delete(ctx, "sess-del"))

	_, err := store.Get(ctx, "sess-del")
	assert.ErrorIs(t, err, ErrNotFound)

	// Idempotent: deleting again, or deleting nothing, succeeds.
	assert.NoError(t, store.Delete(ctx, "sess-del"))
	assert.NoError(t, store.Delete(ctx, ""))
}
