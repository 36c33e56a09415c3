package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/libreshelf/library-ui/config"
	"github.com/libreshelf/library-ui/internal/adapters/devauth"
	redisadapter "github.com/libreshelf/library-ui/internal/adapters/redis"
	"github.com/libreshelf/library-ui/internal/backend"
	"github.com/libreshelf/library-ui/internal/ports"
	"github.com/libreshelf/library-ui/internal/service"
)

// AuthDeps contains everything needed to build the auth service.
type AuthDeps struct {
	Auth        config.AuthConfig
	Backend     *backend.Client
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// BuildAuthService creates the auth service for the configured auth mode.
// Sessions are always kept in redis so logins survive restarts of this
// process.
func BuildAuthService(deps AuthDeps) (*service.AuthService, error) {
	if deps.RedisClient == nil {
		return nil, fmt.Errorf("auth service requires a redis client")
	}

	authenticator, err := buildAuthenticator(deps)
	if err != nil {
		return nil, err
	}

	return service.NewAuthService(service.AuthServiceOptions{
		Authenticator: authenticator,
		Sessions:      redisadapter.NewSessionStore(deps.RedisClient),
		SessionTTL:    deps.Auth.SessionTTL,
		Logger:        deps.Logger,
	}), nil
}

//nolint:ireturn // the mode decides which authenticator backs the port.
func buildAuthenticator(deps AuthDeps) (ports.Authenticator, error) {
	switch deps.Auth.Mode {
	case config.AuthModeMock:
		authenticator, err := devauth.New(devauth.Config{
			UserID:   deps.Auth.DevAuth.UserID,
			Username: deps.Auth.DevAuth.Username,
			Role:     deps.Auth.DevAuth.Role,
		})
		if err != nil {
			return nil, fmt.Errorf("build dev authenticator: %w", err)
		}
		if deps.Logger != nil {
			deps.Logger.Warn("mock auth enabled; every login resolves to the configured dev identity",
				"username", deps.Auth.DevAuth.Username,
				"role", deps.Auth.DevAuth.Role)
		}
		return authenticator, nil

	case config.AuthModePassword:
		if deps.Backend == nil {
			return nil, fmt.Errorf("password auth requires a backend client")
		}
		return backend.NewPasswordAuthenticator(deps.Backend), nil

	default:
		return nil, fmt.Errorf("unknown auth mode %q", deps.Auth.Mode)
	}
}
