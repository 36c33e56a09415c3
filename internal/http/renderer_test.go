package httpx

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	libraryui "github.com/libreshelf/library-ui"
	domainauth "github.com/libreshelf/library-ui/internal/domain/auth"
	"github.com/libreshelf/library-ui/internal/domain/model"
	"github.com/libreshelf/library-ui/internal/ports"
)

func newTestRenderer(t *testing.T) *TemplateRenderer {
	t.Helper()
	renderer, err := NewTemplateRenderer(libraryui.TemplateFS, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	return renderer
}

func adminRequest() *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	sess := domainauth.Session{
		ID:        "sid-1",
		User:      domainauth.User{ID: 1, Username: "admin"},
		Role:      domainauth.RoleAdmin,
		ExpiresAt: time.Now().Add(time.Hour),
	}
	return r.WithContext(WithSession(r.Context(), sess))
}

// TestRenderAllPages executes every page template with the data shape its
// handler supplies, so a renamed field breaks here instead of at runtime.
func TestRenderAllPages(t *testing.T) {
	renderer := newTestRenderer(t)
	r := adminRequest()

	book := model.Book{ID: 3, Title: "Dune", Author: "Frank Herbert", Publisher: "Chilton", PublicationYear: 1965}
	txn := model.Transaction{
		ID:         11,
		Book:       model.BookRef{ID: 3, Title: "Dune"},
		User:       model.UserRef{ID: 7, Username: "alice"},
		BorrowDate: model.NewDate(2026, time.August, 1),
		ReturnDate: model.NewDate(2026, time.August, 15),
		Status:     model.StatusPending,
	}

	tests := []struct {
		page string
		data TemplateData
		want string
	}{
		{
			page: PageLogin,
			data: NewTemplateData(r, PageMeta{Title: "Sign in", PageTitle: "Sign in", CurrentPage: PageLogin}).
				With("Username", "").With("RedirectURI", "/books").Build(),
			want: "Sign in",
		},
		{
			page: PageDashboard,
			data: NewTemplateData(r, PageMeta{Title: "Dashboard", PageTitle: "Welcome, admin", CurrentPage: PageDashboard}).Build(),
			want: "Welcome, admin",
		},
		{
			page: PageBooks,
			data: NewTemplateData(r, PageMeta{Title: "Books", PageTitle: "Books", CurrentPage: PageBooks}).
				With("Books", []model.Book{book}).With("CanBorrow", false).Build(),
			want: "Dune",
		},
		{
			page: PageBookForm,
			data: NewTemplateData(r, PageMeta{Title: "Edit book", PageTitle: "Edit book", CurrentPage: PageBooks}).
				With("Mode", string(FormModeEdit)).With("Form", bookFormData(book)).Build(),
			want: "Frank Herbert",
		},
		{
			page: PageTransactions,
			data: NewTemplateData(r, PageMeta{Title: "Transactions", PageTitle: "Borrowing transactions", CurrentPage: PageTransactions}).
				With("Transactions", []transactionRow{{Transaction: txn, CanApproveReturn: true, CanEdit: true, CanDelete: true}}).Build(),
			want: "Approve return",
		},
		{
			page: PageTransactionForm,
			data: NewTemplateData(r, PageMeta{Title: "Borrow a book", PageTitle: "Borrow a book", CurrentPage: PageTransactions}).
				With("Mode", string(FormModeCreate)).
				With("Books", []model.Book{book}).
				With("Form", map[string]any{"BookID": 3, "BorrowDate": "2026-08-01", "ReturnDate": "2026-08-15"}).
				Build(),
			want: "Borrow",
		},
		{
			page: PageTransactionForm,
			data: NewTemplateData(r, PageMeta{Title: "Edit transaction", PageTitle: "Edit transaction", CurrentPage: PageTransactions}).
				With("Mode", string(FormModeEdit)).
				With("Statuses", []model.TransactionStatus{model.StatusBorrowed, model.StatusPending, model.StatusReturned}).
				With("Form", transactionFormData(txn)).
				Build(),
			want: "Save changes",
		},
		{
			page: PageUsers,
			data: NewTemplateData(r, PageMeta{Title: "Users", PageTitle: "Users", CurrentPage: PageUsers}).
				With("Users", []ports.BackendUser{{ID: 7, Username: "alice", Role: domainauth.RoleUser}}).Build(),
			want: "alice",
		},
		{
			page: PageUserForm,
			data: NewTemplateData(r, PageMeta{Title: "Add user", PageTitle: "Add user", CurrentPage: PageUsers}).
				With("Mode", string(FormModeCreate)).
				With("Roles", []domainauth.Role{domainauth.RoleAdmin, domainauth.RoleUser}).
				With("Form", userFormData(ports.BackendUser{})).
				Build(),
			want: "Add user",
		},
	}

	for _, tt := range tests {
		t.Run(tt.page+"/"+tt.want, func(t *testing.T) {
			w := httptest.NewRecorder()
			renderer.RenderPage(w, http.StatusOK, tt.page, tt.data)

			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			assert.Contains(t, w.Body.String(), tt.want)
		})
	}
}

func TestRenderErrorPage(t *testing.T) {
	renderer := newTestRenderer(t)

	data := NewTemplateData(adminRequest(), PageMeta{Title: "Not found", PageTitle: "Not found"}).
		WithError("Transaction not found.").Build()
	w := httptest.NewRecorder()
	renderer.RenderError(w, http.StatusNotFound, data)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Transaction not found.")
}

func TestRenderUnknownTemplateIs500(t *testing.T) {
	renderer := newTestRenderer(t)

	w := httptest.NewRecorder()
	renderer.RenderPage(w, http.StatusOK, "nope", TemplateData{})

	require.Equal(t, http.StatusInternalServerError, w.Code)
}
