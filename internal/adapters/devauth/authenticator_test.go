package devauth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/libreshelf/library-ui/internal/domain/auth"
)

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name   string
		cfg    Config
		errMsg string
	}{
		{name: "missing user id", cfg: Config{Username: "dev", Role: "ADMIN"}, errMsg: "user id is required"},
		{name: "missing username", cfg: Config{UserID: 1, Role: "ADMIN"}, errMsg: "username is required"},
		{name: "bad role", cfg: Config{UserID: 1, Username: "dev", Role: "ROOT"}, errMsg: "unknown role"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.cfg)
			assert.ErrorContains(t, err, tt.errMsg)
		})
	}
}

func TestAuthenticate_ReturnsConfiguredIdentity(t *testing.T) {
	a, err := New(Config{UserID: 9, Username: "dev", Role: "USER"})
	require.NoError(t, err)

	id, err := a.Authenticate(context.Background(), "whoever", "whatever")
	require.NoError(t, err)
	assert.Equal(t, domainauth.User{ID: 9, Username: "dev"}, id.User)
	assert.Equal(t, domainauth.RoleUser, id.Role)
	assert.NotEmpty(t, id.Credential)

	// Each login gets its own credential.
	id2, err := a.Authenticate(context.Background(), "whoever", "whatever")
	require.NoError(t, err)
	assert.NotEqual(t, id.Credential, id2.Credential)
}
