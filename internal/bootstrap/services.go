package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	libraryui "github.com/libreshelf/library-ui"
	"github.com/libreshelf/library-ui/config"
	"github.com/libreshelf/library-ui/internal/backend"
	httpx "github.com/libreshelf/library-ui/internal/http"
	"github.com/libreshelf/library-ui/internal/service"
)

// ServiceContainer holds all application services plus the renderer they
// share.
type ServiceContainer struct {
	Auth         *service.AuthService
	Books        *service.BookService
	Transactions *service.TransactionService
	Users        *service.UserService
	Renderer     *httpx.TemplateRenderer
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config      *config.AppConfig
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// NewServices wires the backend client and builds every application service.
func NewServices(deps *ServiceDeps) (ServiceContainer, error) {
	if deps == nil || deps.Config == nil {
		return ServiceContainer{}, fmt.Errorf("service deps are required")
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	client, err := backend.NewClient(backend.Options{
		BaseURL: deps.Config.Backend.BaseURL,
		Timeout: deps.Config.Backend.Timeout,
		Logger:  logger,
	})
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("build backend client: %w", err)
	}

	authService, err := BuildAuthService(AuthDeps{
		Auth:        deps.Config.Auth,
		Backend:     client,
		RedisClient: deps.RedisClient,
		Logger:      logger,
	})
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("build auth service: %w", err)
	}

	renderer, err := httpx.NewTemplateRenderer(libraryui.TemplateFS, logger)
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("build template renderer: %w", err)
	}

	return ServiceContainer{
		Auth:  authService,
		Books: service.NewBookService(client),
		Transactions: service.NewTransactionService(service.TransactionServiceOptions{
			API:    client,
			Logger: logger,
		}),
		Users:    service.NewUserService(client),
		Renderer: renderer,
	}, nil
}
