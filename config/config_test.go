package config

import (
	"testing"
	"time"

	env "github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMode_UnmarshalText(t *testing.T) {
	tests := []struct {
		input     string
		expected  AuthMode
		expectErr bool
	}{
		{input: "password", expected: AuthModePassword},
		{input: "mock", expected: AuthModeMock},
		{input: "oauth", expectErr: true},
		{input: "Password", expectErr: true},
		{input: "", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var m AuthMode
			err := m.UnmarshalText([]byte(tt.input))
			if tt.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, m)
		})
	}
}

func TestAppConfig_ParseEnv(t *testing.T) {
	t.Setenv("AUTH_MODE", "mock")
	t.Setenv("SESSION_TTL", "1h30m")
	t.Setenv("DEV_AUTH_USER_ID", "42")
	t.Setenv("DEV_AUTH_USERNAME", "alice")
	t.Setenv("DEV_AUTH_ROLE", "USER")
	t.Setenv("BACKEND_BASE_URL", "http://backend:8085/api/")
	t.Setenv("BACKEND_TIMEOUT", "5s")
	t.Setenv("REDIS_URI", "redis:6379")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("HTTP_ADDR", ":9090")

	var cfg AppConfig
	require.NoError(t, env.Parse(&cfg))
	cfg.Sanitize()

	assert.Equal(t, AuthModeMock, cfg.Auth.Mode)
	assert.Equal(t, 90*time.Minute, cfg.Auth.SessionTTL)
	assert.Equal(t, 42, cfg.Auth.DevAuth.UserID)
	assert.Equal(t, "alice", cfg.Auth.DevAuth.Username)
	assert.Equal(t, "USER", cfg.Auth.DevAuth.Role)
	// Trailing slash is trimmed so path joins stay predictable.
	assert.Equal(t, "http://backend:8085/api", cfg.Backend.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, "redis:6379", cfg.Redis.URI)
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.Equal(t, ":9090", cfg.HTTP.Addr)
}

func TestAppConfig_Defaults(t *testing.T) {
	var cfg AppConfig
	require.NoError(t, env.Parse(&cfg))
	cfg.Sanitize()

	assert.Equal(t, AuthModePassword, cfg.Auth.Mode)
	assert.Equal(t, 8*time.Hour, cfg.Auth.SessionTTL)
	assert.Equal(t, "http://localhost:8085/api", cfg.Backend.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, "localhost:6379", cfg.Redis.URI)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.False(t, cfg.IsDev)
}

func TestAppConfig_ParseEnv_InvalidAuthMode(t *testing.T) {
	t.Setenv("AUTH_MODE", "saml")

	var cfg AppConfig
	require.Error(t, env.Parse(&cfg))
}

func TestSanitize_Guardrails(t *testing.T) {
	cfg := AppConfig{
		Auth:    AuthConfig{SessionTTL: -time.Minute},
		Backend: BackendConfig{BaseURL: "  http://b/api/ ", Timeout: 0},
	}
	cfg.Sanitize()

	assert.Equal(t, 8*time.Hour, cfg.Auth.SessionTTL)
	assert.Equal(t, "http://b/api", cfg.Backend.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
}

func TestDetectDevMode_NodeEnvFallback(t *testing.T) {
	t.Setenv("NODE_ENV", "development")

	var cfg AppConfig
	cfg.Sanitize()

	assert.True(t, cfg.IsDev)
}
