package httpx

import (
	"log/slog"
	"net/http"

	domainauth "github.com/libreshelf/library-ui/internal/domain/auth"
)

// RouterServices carries everything the route table needs.
type RouterServices struct {
	Auth         AuthServiceInterface
	Books        BooksService
	Transactions TransactionsService
	Users        UsersService
	Renderer     *TemplateRenderer
	CookieDomain string
	Logger       *slog.Logger
}

// NewRouter builds the full route table. Every screen sits behind the
// browser auth guard, which re-resolves the session on each request; user
// administration adds the admin role guard on top.
func NewRouter(s RouterServices) http.Handler {
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}

	authH := NewAuthHandlers(AuthHandlersOptions{
		Auth:         s.Auth,
		Renderer:     s.Renderer,
		CookieDomain: s.CookieDomain,
		Logger:       logger,
	})
	ui := NewUIHandlers(UIHandlersOptions{
		Books:        s.Books,
		Transactions: s.Transactions,
		Users:        s.Users,
		Renderer:     s.Renderer,
		Logger:       logger,
	})

	guard := RequireAuthBrowser(s.Auth)
	adminGuard := func(h http.Handler) http.Handler {
		return guard(RequireRoleBrowser(domainauth.RoleAdmin, s.Renderer)(h))
	}
	apiGuard := RequireAuth(s.Auth)

	mux := http.NewServeMux()

	// Public surface.
	mux.HandleFunc("GET /healthz", healthHandler)
	mux.HandleFunc("HEAD /healthz", healthHandler)
	mux.HandleFunc("GET /auth/login", authH.LoginPage)
	mux.HandleFunc("POST /auth/login", authH.Login)
	mux.HandleFunc("POST /auth/logout", authH.Logout)
	mux.HandleFunc("GET /auth/status", authH.Status)

	// Screens.
	mux.Handle("/", guard(http.HandlerFunc(ui.Home)))
	mux.Handle("GET /dashboard", guard(http.HandlerFunc(ui.Dashboard)))

	mux.Handle("GET /books", guard(http.HandlerFunc(ui.BookList)))
	mux.Handle("GET /books/new", guard(http.HandlerFunc(ui.BookNewForm)))
	mux.Handle("POST /books", guard(http.HandlerFunc(ui.BookCreate)))
	mux.Handle("GET /books/{id}/edit", guard(http.HandlerFunc(ui.BookEditForm)))
	mux.Handle("POST /books/{id}", guard(http.HandlerFunc(ui.BookUpdate)))
	mux.Handle("POST /books/{id}/delete", guard(http.HandlerFunc(ui.BookDelete)))

	mux.Handle("GET /transactions", guard(http.HandlerFunc(ui.TransactionList)))
	mux.Handle("GET /transactions/new", guard(http.HandlerFunc(ui.TransactionNewForm)))
	mux.Handle("POST /transactions", guard(http.HandlerFunc(ui.TransactionCreate)))
	mux.Handle("POST /transactions/{id}/return", guard(http.HandlerFunc(ui.TransactionRequestReturn)))
	mux.Handle("POST /transactions/{id}/approve", guard(http.HandlerFunc(ui.TransactionApproveReturn)))
	mux.Handle("GET /transactions/{id}/edit", guard(http.HandlerFunc(ui.TransactionEditForm)))
	mux.Handle("POST /transactions/{id}", guard(http.HandlerFunc(ui.TransactionUpdate)))
	mux.Handle("POST /transactions/{id}/delete", guard(http.HandlerFunc(ui.TransactionDelete)))

	// Admin-only user administration.
	mux.Handle("GET /users", adminGuard(http.HandlerFunc(ui.UserList)))
	mux.Handle("GET /users/new", adminGuard(http.HandlerFunc(ui.UserNewForm)))
	mux.Handle("POST /users", adminGuard(http.HandlerFunc(ui.UserCreate)))
	mux.Handle("GET /users/{id}/edit", adminGuard(http.HandlerFunc(ui.UserEditForm)))
	mux.Handle("POST /users/{id}", adminGuard(http.HandlerFunc(ui.UserUpdate)))
	mux.Handle("POST /users/{id}/delete", adminGuard(http.HandlerFunc(ui.UserDelete)))

	// JSON API.
	mux.Handle("GET /api/books", apiGuard(http.HandlerFunc(ui.BooksAPI)))
	mux.Handle("GET /api/transactions", apiGuard(http.HandlerFunc(ui.TransactionsAPI)))

	csrf := CSRFProtection(CSRFConfig{CookieDomain: s.CookieDomain})
	return BrowserDetection(csrf(mux))
}
