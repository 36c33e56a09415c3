package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/libreshelf/library-ui/internal/domain/model"
	"github.com/libreshelf/library-ui/internal/ports"
)

const transactionsPath = "/borrowing-transactions"

var _ ports.TransactionAPI = (*Client)(nil)

// ListTransactions fetches all transactions visible to the credential. The
// backend does not filter by role; callers do.
func (c *Client) ListTransactions(ctx context.Context, credential string) ([]model.Transaction, error) {
	txns, err := doJSON[[]model.Transaction](c, ctx, http.MethodGet, transactionsPath, credential, nil)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return txns, nil
}

// GetTransaction fetches one transaction by id.
func (c *Client) GetTransaction(ctx context.Context, credential string, id int) (model.Transaction, error) {
	txn, err := doJSON[model.Transaction](c, ctx, http.MethodGet, fmt.Sprintf("%s/%d", transactionsPath, id), credential, nil)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("get transaction %d: %w", id, err)
	}
	return txn, nil
}

// CreateTransaction records a new borrowing. The body carries book and user
// by reference only; the backend resolves titles and usernames.
func (c *Client) CreateTransaction(ctx context.Context, credential string, txn model.Transaction) (model.Transaction, error) {
	created, err := doJSON[model.Transaction](c, ctx, http.MethodPost, transactionsPath, credential, txn)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("create transaction: %w", err)
	}
	return created, nil
}

// UpdateTransaction replaces a transaction wholesale. Status transitions are
// expressed as full-record PUTs.
func (c *Client) UpdateTransaction(ctx context.Context, credential string, txn model.Transaction) (model.Transaction, error) {
	updated, err := doJSON[model.Transaction](c, ctx, http.MethodPut, fmt.Sprintf("%s/%d", transactionsPath, txn.ID), credential, txn)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("update transaction %d: %w", txn.ID, err)
	}
	return updated, nil
}

// DeleteTransaction removes a transaction.
func (c *Client) DeleteTransaction(ctx context.Context, credential string, id int) error {
	if _, err := c.doRequest(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", transactionsPath, id), credential, nil); err != nil {
		return fmt.Errorf("delete transaction %d: %w", id, err)
	}
	return nil
}
