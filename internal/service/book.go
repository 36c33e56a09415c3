package service

import (
	"context"
	"fmt"

	domainauth "github.com/libreshelf/library-ui/internal/domain/auth"
	"github.com/libreshelf/library-ui/internal/domain/model"
	"github.com/libreshelf/library-ui/internal/ports"
)

// BookService exposes the catalog to the UI. Reads are open to any
// authenticated session; writes are admin-only.
type BookService struct {
	api ports.BookAPI
}

// NewBookService builds the book service.
func NewBookService(api ports.BookAPI) *BookService {
	return &BookService{api: api}
}

// List returns the full catalog.
func (s *BookService) List(ctx context.Context, sess domainauth.Session) ([]model.Book, error) {
	return s.api.ListBooks(ctx, sess.Credential)
}

// Get returns one book.
func (s *BookService) Get(ctx context.Context, sess domainauth.Session, id int) (model.Book, error) {
	return s.api.GetBook(ctx, sess.Credential, id)
}

// Create adds a book to the catalog. Admin only.
func (s *BookService) Create(ctx context.Context, sess domainauth.Session, book model.Book) (model.Book, error) {
	if !sess.Role.IsAdmin() {
		return model.Book{}, fmt.Errorf("create book: %w", ErrForbidden)
	}
	return s.api.CreateBook(ctx, sess.Credential, book)
}

// Update replaces a book. Admin only.
func (s *BookService) Update(ctx context.Context, sess domainauth.Session, book model.Book) (model.Book, error) {
	if !sess.Role.IsAdmin() {
		return model.Book{}, fmt.Errorf("update book: %w", ErrForbidden)
	}
	return s.api.UpdateBook(ctx, sess.Credential, book)
}

// Delete removes a book. Admin only.
func (s *BookService) Delete(ctx context.Context, sess domainauth.Session, id int) error {
	if !sess.Role.IsAdmin() {
		return fmt.Errorf("delete book: %w", ErrForbidden)
	}
	return s.api.DeleteBook(ctx, sess.Credential, id)
}
