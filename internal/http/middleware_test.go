package httpx

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/libreshelf/library-ui/internal/domain/auth"
)

// stubAuth resolves sessions from a fixed map. Login is not used by the
// guards.
type stubAuth struct {
	sessions map[string]domainauth.Session
}

func (s *stubAuth) Login(context.Context, string, string) (domainauth.Session, error) {
	return domainauth.Session{}, errors.New("not implemented")
}

func (s *stubAuth) GetSession(_ context.Context, id string) (domainauth.Session, error) {
	sess, ok := s.sessions[id]
	if !ok {
		return domainauth.Session{}, errors.New("session not found")
	}
	return sess, nil
}

func (s *stubAuth) Logout(_ context.Context, id string) error {
	delete(s.sessions, id)
	return nil
}

func userStubAuth(role domainauth.Role) *stubAuth {
	return &stubAuth{sessions: map[string]domainauth.Session{
		"sid-1": {
			ID:         "sid-1",
			User:       domainauth.User{ID: 7, Username: "alice"},
			Role:       role,
			Credential: "token-abc",
			ExpiresAt:  time.Now().Add(time.Hour),
		},
	}}
}

func okHandler() (http.Handler, *bool) {
	called := false
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}), &called
}

func TestSafeRedirectPath(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "relative path", in: "/transactions", want: "/transactions"},
		{name: "path with query", in: "/books?page=2", want: "/books?page=2"},
		{name: "empty", in: "", want: ""},
		{name: "absolute url", in: "https://evil.example/phish", want: ""},
		{name: "protocol relative", in: "//evil.example", want: ""},
		{name: "no leading slash", in: "books", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, safeRedirectPath(tt.in))
		})
	}
}

func TestRequireAuthBrowser(t *testing.T) {
	t.Run("browser without session redirects to login with destination", func(t *testing.T) {
		next, called := okHandler()
		guard := RequireAuthBrowser(userStubAuth(domainauth.RoleUser))

		r := httptest.NewRequest(http.MethodGet, "/transactions", nil)
		r.Header.Set("Accept", "text/html")
		w := httptest.NewRecorder()
		guard(next).ServeHTTP(w, r)

		require.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/auth/login?redirect_uri=%2Ftransactions", w.Header().Get("Location"))
		assert.False(t, *called)
	})

	t.Run("api caller without session gets 401", func(t *testing.T) {
		next, called := okHandler()
		guard := RequireAuthBrowser(userStubAuth(domainauth.RoleUser))

		r := httptest.NewRequest(http.MethodGet, "/transactions", nil)
		w := httptest.NewRecorder()
		guard(next).ServeHTTP(w, r)

		require.Equal(t, http.StatusUnauthorized, w.Code)
		assert.False(t, *called)
	})

	t.Run("expired cookie value redirects like no session", func(t *testing.T) {
		next, called := okHandler()
		guard := RequireAuthBrowser(userStubAuth(domainauth.RoleUser))

		r := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
		r.Header.Set("Accept", "text/html")
		r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "sid-gone"})
		w := httptest.NewRecorder()
		guard(next).ServeHTTP(w, r)

		require.Equal(t, http.StatusSeeOther, w.Code)
		assert.False(t, *called)
	})

	t.Run("valid session lands in the request context", func(t *testing.T) {
		var got domainauth.Session
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, ok := SessionFromRequest(r)
			require.True(t, ok)
			got = sess
			w.WriteHeader(http.StatusOK)
		})
		guard := RequireAuthBrowser(userStubAuth(domainauth.RoleUser))

		r := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
		r.Header.Set("Accept", "text/html")
		r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "sid-1"})
		w := httptest.NewRecorder()
		guard(next).ServeHTTP(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "alice", got.User.Username)
		assert.Equal(t, "token-abc", got.Credential)
	})
}

func TestRequireAuth(t *testing.T) {
	t.Run("missing session", func(t *testing.T) {
		next, called := okHandler()
		guard := RequireAuth(userStubAuth(domainauth.RoleUser))

		r := httptest.NewRequest(http.MethodGet, "/api/books", nil)
		w := httptest.NewRecorder()
		guard(next).ServeHTTP(w, r)

		require.Equal(t, http.StatusUnauthorized, w.Code)
		assert.False(t, *called)
	})

	t.Run("valid session", func(t *testing.T) {
		next, called := okHandler()
		guard := RequireAuth(userStubAuth(domainauth.RoleUser))

		r := httptest.NewRequest(http.MethodGet, "/api/books", nil)
		r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "sid-1"})
		w := httptest.NewRecorder()
		guard(next).ServeHTTP(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		assert.True(t, *called)
	})
}

func TestRequireRoleBrowser(t *testing.T) {
	withSession := func(r *http.Request, role domainauth.Role) *http.Request {
		sess := domainauth.Session{
			ID:        "sid-1",
			User:      domainauth.User{ID: 7, Username: "alice"},
			Role:      role,
			ExpiresAt: time.Now().Add(time.Hour),
		}
		return r.WithContext(WithSession(r.Context(), sess))
	}

	t.Run("insufficient role is denied", func(t *testing.T) {
		next, called := okHandler()
		guard := RequireRoleBrowser(domainauth.RoleAdmin, nil)

		r := withSession(httptest.NewRequest(http.MethodGet, "/users", nil), domainauth.RoleUser)
		w := httptest.NewRecorder()
		guard(next).ServeHTTP(w, r)

		require.Equal(t, http.StatusForbidden, w.Code)
		assert.False(t, *called)
	})

	t.Run("admin passes", func(t *testing.T) {
		next, called := okHandler()
		guard := RequireRoleBrowser(domainauth.RoleAdmin, nil)

		r := withSession(httptest.NewRequest(http.MethodGet, "/users", nil), domainauth.RoleAdmin)
		w := httptest.NewRecorder()
		guard(next).ServeHTTP(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		assert.True(t, *called)
	})

	t.Run("no resolved session redirects to login", func(t *testing.T) {
		next, called := okHandler()
		guard := RequireRoleBrowser(domainauth.RoleAdmin, nil)

		r := httptest.NewRequest(http.MethodGet, "/users", nil)
		w := httptest.NewRecorder()
		guard(next).ServeHTTP(w, r)

		require.Equal(t, http.StatusSeeOther, w.Code)
		assert.False(t, *called)
	})
}

func TestHasRequiredRole(t *testing.T) {
	assert.True(t, hasRequiredRole(domainauth.RoleAdmin, domainauth.RoleUser))
	assert.True(t, hasRequiredRole(domainauth.RoleUser, domainauth.RoleUser))
	assert.False(t, hasRequiredRole(domainauth.RoleUser, domainauth.RoleAdmin))
	assert.False(t, hasRequiredRole(domainauth.RoleGuest, domainauth.RoleUser))
}
