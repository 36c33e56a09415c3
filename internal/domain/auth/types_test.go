package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  Role
		expectErr bool
	}{
		{name: "admin", input: "ADMIN", expected: RoleAdmin},
		{name: "user", input: "USER", expected: RoleUser},
		{name: "guest is not a wire role", input: "GUEST", expectErr: true},
		{name: "lowercase rejected", input: "admin", expectErr: true},
		{name: "empty rejected", input: "", expectErr: true},
		{name: "unknown rejected", input: "SUPERVISOR", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRole(tt.input)
			if tt.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSession_IsExpired(t *testing.T) {
	assert.False(t, Session{ExpiresAt: time.Now().Add(time.Hour)}.IsExpired())
	assert.True(t, Session{ExpiresAt: time.Now().Add(-time.Second)}.IsExpired())
	// Zero expiry means no expiry was set; treat as not expired.
	assert.False(t, Session{}.IsExpired())
}

func TestRole_IsAdmin(t *testing.T) {
	assert.True(t, RoleAdmin.IsAdmin())
	assert.False(t, RoleUser.IsAdmin())
	assert.False(t, RoleGuest.IsAdmin())
}
