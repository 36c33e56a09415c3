package ports

import (
	"context"

	"github.com/libreshelf/library-ui/internal/domain/auth"
	"github.com/libreshelf/library-ui/internal/domain/model"
)

// The backend ports all take the session credential explicitly. The HTTP
// client attaches it as a bearer token; an empty credential sends the request
// unauthenticated.

// BookAPI exposes the backend's book catalog.
type BookAPI interface {
	ListBooks(ctx context.Context, credential string) ([]model.Book, error)
	GetBook(ctx context.Context, credential string, id int) (model.Book, error)
	CreateBook(ctx context.Context, credential string, book model.Book) (model.Book, error)
	UpdateBook(ctx context.Context, credential string, book model.Book) (model.Book, error)
	DeleteBook(ctx context.Context, credential string, id int) error
}

// TransactionAPI exposes the backend's borrowing transactions.
type TransactionAPI interface {
	ListTransactions(ctx context.Context, credential string) ([]model.Transaction, error)
	GetTransaction(ctx context.Context, credential string, id int) (model.Transaction, error)
	CreateTransaction(ctx context.Context, credential string, txn model.Transaction) (model.Transaction, error)
	UpdateTransaction(ctx context.Context, credential string, txn model.Transaction) (model.Transaction, error)
	DeleteTransaction(ctx context.Context, credential string, id int) error
}

// UserAPI exposes the backend's user accounts (admin screens only).
type UserAPI interface {
	ListUsers(ctx context.Context, credential string) ([]BackendUser, error)
	GetUser(ctx context.Context, credential string, id int) (BackendUser, error)
	CreateUser(ctx context.Context, credential string, user BackendUser) (BackendUser, error)
	UpdateUser(ctx context.Context, credential string, user BackendUser) (BackendUser, error)
	DeleteUser(ctx context.Context, credential string, id int) error
}

// BackendUser is a user account as the backend stores it. Password is only
// ever sent, never returned.
type BackendUser struct {
	ID       int       `json:"id"`
	Username string    `json:"username"`
	Password string    `json:"password,omitempty"`
	Role     auth.Role `json:"role"`
}
