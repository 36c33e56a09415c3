package config

import (
	"fmt"
	"time"
)

// AuthMode selects how users authenticate.
type AuthMode string

const (
	// AuthModePassword authenticates against the library backend's login
	// endpoint with username and password.
	AuthModePassword AuthMode = "password"
	// AuthModeMock signs everyone in as a configured development identity
	// without contacting the backend.
	AuthModeMock AuthMode = "mock"
)

// UnmarshalText implements encoding.TextUnmarshaler so env parsing rejects
// unknown modes at startup rather than at first login.
func (m *AuthMode) UnmarshalText(text []byte) error {
	switch AuthMode(text) {
	case AuthModePassword, AuthModeMock:
		*m = AuthMode(text)
		return nil
	default:
		return fmt.Errorf("invalid auth mode %q (valid: password, mock)", string(text))
	}
}

// AuthConfig holds authentication and session settings.
type AuthConfig struct {
	// Mode selects the authenticator. AUTH_MODE=password|mock.
	Mode AuthMode `env:"AUTH_MODE" envDefault:"password"`

	// SessionTTL is how long a session stays valid after login.
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"8h"`

	// DevAuth configures the mock identity used when Mode is mock.
	DevAuth DevAuthConfig `envPrefix:"DEV_AUTH_"`
}

// Sanitize applies guardrails to auth settings.
func (c *AuthConfig) Sanitize() {
	if c.SessionTTL <= 0 {
		c.SessionTTL = 8 * time.Hour
	}
}

// DevAuthConfig is the identity minted by the mock authenticator.
// Only consulted when AUTH_MODE=mock.
type DevAuthConfig struct {
	// UserID is the integer id transactions will be attributed to.
	UserID int `env:"USER_ID" envDefault:"1"`
	// Username is the display name shown in the UI.
	Username string `env:"USERNAME" envDefault:"dev"`
	// Role is the application role, ADMIN or USER.
	Role string `env:"ROLE" envDefault:"ADMIN"`
}
