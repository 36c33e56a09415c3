package httpx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/libreshelf/library-ui/internal/backend"
	domainauth "github.com/libreshelf/library-ui/internal/domain/auth"
	"github.com/libreshelf/library-ui/internal/domain/model"
	"github.com/libreshelf/library-ui/internal/ports"
	"github.com/libreshelf/library-ui/internal/service"
)

// The UI handlers depend on narrow, per-service interfaces so tests can
// substitute fakes without touching the concrete services.

// BooksService is what the book screens need.
type BooksService interface {
	List(ctx context.Context, sess domainauth.Session) ([]model.Book, error)
	Get(ctx context.Context, sess domainauth.Session, id int) (model.Book, error)
	Create(ctx context.Context, sess domainauth.Session, book model.Book) (model.Book, error)
	Update(ctx context.Context, sess domainauth.Session, book model.Book) (model.Book, error)
	Delete(ctx context.Context, sess domainauth.Session, id int) error
}

// TransactionsService is what the transaction screens need.
type TransactionsService interface {
	List(ctx context.Context, sess domainauth.Session) ([]model.Transaction, error)
	Get(ctx context.Context, sess domainauth.Session, id int) (model.Transaction, error)
	Borrow(ctx context.Context, sess domainauth.Session, bookID int, borrowDate, returnDate model.Date) (model.Transaction, error)
	RequestReturn(ctx context.Context, sess domainauth.Session, id int) (model.Transaction, error)
	ApproveReturn(ctx context.Context, sess domainauth.Session, id int) (model.Transaction, error)
	Update(ctx context.Context, sess domainauth.Session, txn model.Transaction) (model.Transaction, error)
	Delete(ctx context.Context, sess domainauth.Session, id int) error
}

// UsersService is what the user administration screens need.
type UsersService interface {
	List(ctx context.Context, sess domainauth.Session) ([]ports.BackendUser, error)
	Get(ctx context.Context, sess domainauth.Session, id int) (ports.BackendUser, error)
	Create(ctx context.Context, sess domainauth.Session, user ports.BackendUser) (ports.BackendUser, error)
	Update(ctx context.Context, sess domainauth.Session, user ports.BackendUser) (ports.BackendUser, error)
	Delete(ctx context.Context, sess domainauth.Session, id int) error
}

// Compile-time checks that the concrete services satisfy the handler
// interfaces.
var (
	_ BooksService        = (*service.BookService)(nil)
	_ TransactionsService = (*service.TransactionService)(nil)
	_ UsersService        = (*service.UserService)(nil)
)

// UIHandlersOptions wires the UI handlers.
type UIHandlersOptions struct {
	Books        BooksService
	Transactions TransactionsService
	Users        UsersService
	Renderer     *TemplateRenderer
	Logger       *slog.Logger
}

// UIHandlers renders the server-side screens.
type UIHandlers struct {
	books        BooksService
	transactions TransactionsService
	users        UsersService
	renderer     *TemplateRenderer
	logger       *slog.Logger
}

// NewUIHandlers builds the screen handlers.
func NewUIHandlers(opts UIHandlersOptions) *UIHandlers {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &UIHandlers{
		books:        opts.Books,
		transactions: opts.Transactions,
		users:        opts.Users,
		renderer:     opts.Renderer,
		logger:       logger.With("component", "ui"),
	}
}

// requireSession pulls the guard-resolved session; missing means the route
// was wired without the auth middleware.
func (h *UIHandlers) requireSession(w http.ResponseWriter, r *http.Request) (domainauth.Session, bool) {
	sess, ok := SessionFromRequest(r)
	if !ok {
		redirectToLogin(w, r)
	}
	return sess, ok
}

// parseIDParam reads a positive integer path parameter.
func parseIDParam(r *http.Request, name string) (int, error) {
	id, err := strconv.Atoi(r.PathValue(name))
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}

// serviceErrorMessage maps a service failure to a page alert. Backend
// failures never crash a screen; they render as an alert over whatever can
// still be shown.
func serviceErrorMessage(err error) string {
	var apiErr *backend.APIError
	switch {
	case errors.Is(err, service.ErrTransactionNotFound):
		return "Transaction not found."
	case errors.Is(err, service.ErrInvalidTransition):
		return "That status change is not allowed."
	case errors.Is(err, service.ErrForbidden):
		return "You do not have permission to do that."
	case errors.As(err, &apiErr):
		return "The library service rejected the request."
	default:
		return "The library service is unavailable. Please try again."
	}
}

// renderNotFound renders the error page for bad ids and missing records.
func (h *UIHandlers) renderNotFound(w http.ResponseWriter, r *http.Request) {
	data := NewTemplateData(r, PageMeta{Title: "Not found", PageTitle: "Not found"}).
		WithError("The page or record you asked for does not exist.").
		Build()
	h.renderer.RenderError(w, http.StatusNotFound, data)
}
