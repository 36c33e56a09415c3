// Package httpx is the HTTP layer: middleware, route table, and handlers for
// the login flow and the server-rendered screens. Handlers render; the
// services decide.
package httpx

import (
	"context"
	"net/http"

	domainauth "github.com/libreshelf/library-ui/internal/domain/auth"
)

// sessionKey is the unexported context key for the resolved session.
type sessionKey struct{}

// WithSession returns a context carrying the session.
func WithSession(ctx context.Context, sess domainauth.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, sess)
}

// SessionFromContext extracts the session placed by the auth middleware.
func SessionFromContext(ctx context.Context) (domainauth.Session, bool) {
	sess, ok := ctx.Value(sessionKey{}).(domainauth.Session)
	return sess, ok
}

// SessionFromRequest is SessionFromContext for handlers holding a request.
func SessionFromRequest(r *http.Request) (domainauth.Session, bool) {
	return SessionFromContext(r.Context())
}
