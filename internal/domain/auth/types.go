// Package auth holds the core authentication domain types shared by the
// session store, services, and HTTP layer. The types are pure values with no
// transport or storage concerns.
package auth

import (
	"fmt"
	"time"
)

// Role is the application role attached to a session. Wire values come from
// the backend login response and are validated on the way in.
type Role string

const (
	// RoleAdmin manages the catalog, approves returns, and administers users.
	RoleAdmin Role = "ADMIN"
	// RoleUser borrows books and requests returns on their own transactions.
	RoleUser Role = "USER"
	// RoleGuest is the unauthenticated default; it never appears on the wire.
	RoleGuest Role = "GUEST"
)

// ParseRole validates a role string received from the backend.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleUser:
		return Role(s), nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

// IsAdmin reports whether the role grants administrative capabilities.
func (r Role) IsAdmin() bool { return r == RoleAdmin }

// User identifies an authenticated account as the backend knows it.
// Transactions reference users by this integer ID.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}

// Identity is the result of a successful authentication: who the user is,
// what they may do, and the opaque credential the backend expects on
// subsequent requests.
type Identity struct {
	User       User
	Role       Role
	Credential string
}

// Session is the server-side session record. The credential, user, and role
// are stored together and cleared together; the HTTP layer only ever sees the
// whole record.
type Session struct {
	ID         string    `json:"id"`
	User       User      `json:"user"`
	Role       Role      `json:"role"`
	Credential string    `json:"credential"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// IsExpired reports whether the session has passed its expiry.
func (s Session) IsExpired() bool {
	return !s.ExpiresAt.IsZero() && time.Now().After(s.ExpiresAt)
}
