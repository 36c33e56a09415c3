package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/libreshelf/library-ui/internal/domain/model"
	"github.com/libreshelf/library-ui/internal/ports"
)

var _ ports.BookAPI = (*Client)(nil)

// ListBooks fetches the full catalog.
func (c *Client) ListBooks(ctx context.Context, credential string) ([]model.Book, error) {
	books, err := doJSON[[]model.Book](c, ctx, http.MethodGet, "/books", credential, nil)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return books, nil
}

// GetBook fetches one book by id.
func (c *Client) GetBook(ctx context.Context, credential string, id int) (model.Book, error) {
	book, err := doJSON[model.Book](c, ctx, http.MethodGet, fmt.Sprintf("/books/%d", id), credential, nil)
	if err != nil {
		return model.Book{}, fmt.Errorf("get book %d: %w", id, err)
	}
	return book, nil
}

// CreateBook adds a catalog entry.
func (c *Client) CreateBook(ctx context.Context, credential string, book model.Book) (model.Book, error) {
	created, err := doJSON[model.Book](c, ctx, http.MethodPost, "/books", credential, book)
	if err != nil {
		return model.Book{}, fmt.Errorf("create book: %w", err)
	}
	return created, nil
}

// UpdateBook replaces a catalog entry.
func (c *Client) UpdateBook(ctx context.Context, credential string, book model.Book) (model.Book, error) {
	updated, err := doJSON[model.Book](c, ctx, http.MethodPut, fmt.Sprintf("/books/%d", book.ID), credential, book)
	if err != nil {
		return model.Book{}, fmt.Errorf("update book %d: %w", book.ID, err)
	}
	return updated, nil
}

// DeleteBook removes a catalog entry.
func (c *Client) DeleteBook(ctx context.Context, credential string, id int) error {
	if _, err := c.doRequest(ctx, http.MethodDelete, fmt.Sprintf("/books/%d", id), credential, nil); err != nil {
		return fmt.Errorf("delete book %d: %w", id, err)
	}
	return nil
}
