package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	domainauth "github.com/libreshelf/library-ui/internal/domain/auth"
	"github.com/libreshelf/library-ui/internal/domain/model"
	"github.com/libreshelf/library-ui/internal/ports"
)

// ErrTransactionNotFound is returned when a transaction id is not in the
// session's visible set. Acting on a stale or foreign id fails with this
// before anything is sent to the backend.
var ErrTransactionNotFound = errors.New("transaction not found")

// ErrInvalidTransition is returned when the lifecycle table forbids the
// requested status change for this role.
var ErrInvalidTransition = errors.New("invalid status transition")

// TransactionServiceOptions configures the transaction service.
type TransactionServiceOptions struct {
	API    ports.TransactionAPI
	Logger *slog.Logger
}

// TransactionService enforces the borrowing lifecycle: who sees which
// transactions and which status moves each role may make. The backend stays
// authoritative; this layer refuses disallowed requests before they leave
// the process.
type TransactionService struct {
	api    ports.TransactionAPI
	logger *slog.Logger
}

// NewTransactionService builds the transaction service.
func NewTransactionService(opts TransactionServiceOptions) *TransactionService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &TransactionService{
		api:    opts.API,
		logger: logger.With("component", "transaction_service"),
	}
}

// List returns the transactions visible to the session: everything for an
// admin, own transactions only for a user. The backend returns the full set;
// filtering happens here.
func (s *TransactionService) List(ctx context.Context, sess domainauth.Session) ([]model.Transaction, error) {
	all, err := s.api.ListTransactions(ctx, sess.Credential)
	if err != nil {
		return nil, err
	}
	if sess.Role.IsAdmin() {
		return all, nil
	}

	own := make([]model.Transaction, 0, len(all))
	for _, txn := range all {
		if txn.User.ID == sess.User.ID {
			own = append(own, txn)
		}
	}
	return own, nil
}

// Get returns one transaction from the session's visible set.
func (s *TransactionService) Get(ctx context.Context, sess domainauth.Session, id int) (model.Transaction, error) {
	return s.findVisible(ctx, sess, id)
}

// Borrow creates a new Borrowed transaction for the session's own user.
// Only the USER role borrows; admins manage, they do not borrow.
func (s *TransactionService) Borrow(ctx context.Context, sess domainauth.Session, bookID int, borrowDate, returnDate model.Date) (model.Transaction, error) {
	if sess.Role != domainauth.RoleUser {
		return model.Transaction{}, fmt.Errorf("borrow: %w", ErrForbidden)
	}

	txn := model.Transaction{
		Book:       model.BookRef{ID: bookID},
		User:       model.UserRef{ID: sess.User.ID},
		BorrowDate: borrowDate,
		ReturnDate: returnDate,
		Status:     model.StatusBorrowed,
	}

	created, err := s.api.CreateTransaction(ctx, sess.Credential, txn)
	if err != nil {
		return model.Transaction{}, err
	}
	s.logger.Info("book borrowed", "transaction_id", created.ID, "book_id", bookID, "user_id", sess.User.ID)
	return created, nil
}

// RequestReturn moves one of the session user's Borrowed transactions to
// Pending.
func (s *TransactionService) RequestReturn(ctx context.Context, sess domainauth.Session, id int) (model.Transaction, error) {
	return s.transition(ctx, sess, id, model.StatusPending)
}

// ApproveReturn moves a Pending transaction to Returned. Admin only, via the
// transition table.
func (s *TransactionService) ApproveReturn(ctx context.Context, sess domainauth.Session, id int) (model.Transaction, error) {
	return s.transition(ctx, sess, id, model.StatusReturned)
}

// transition applies one lifecycle move. The id must resolve within the
// session's visible set and the move must be permitted by the transition
// table; otherwise nothing is sent to the backend.
func (s *TransactionService) transition(ctx context.Context, sess domainauth.Session, id int, to model.TransactionStatus) (model.Transaction, error) {
	txn, err := s.findVisible(ctx, sess, id)
	if err != nil {
		return model.Transaction{}, err
	}

	isOwner := txn.User.ID == sess.User.ID
	if !model.CanTransition(sess.Role, txn.Status, to, isOwner) {
		return model.Transaction{}, fmt.Errorf("%s to %s: %w", txn.Status, to, ErrInvalidTransition)
	}

	txn.Status = to
	updated, err := s.api.UpdateTransaction(ctx, sess.Credential, txn)
	if err != nil {
		return model.Transaction{}, err
	}
	s.logger.Info("transaction status changed", "transaction_id", id, "status", to, "user_id", sess.User.ID)
	return updated, nil
}

// Update replaces a transaction wholesale, including its status. This is the
// admin escape hatch behind the edit form and is deliberately not guarded by
// the transition table.
func (s *TransactionService) Update(ctx context.Context, sess domainauth.Session, txn model.Transaction) (model.Transaction, error) {
	if !sess.Role.IsAdmin() {
		return model.Transaction{}, fmt.Errorf("update transaction: %w", ErrForbidden)
	}
	if _, err := s.findVisible(ctx, sess, txn.ID); err != nil {
		return model.Transaction{}, err
	}
	updated, err := s.api.UpdateTransaction(ctx, sess.Credential, txn)
	if err != nil {
		return model.Transaction{}, err
	}
	s.logger.Info("transaction edited", "transaction_id", txn.ID, "status", txn.Status)
	return updated, nil
}

// Delete removes a transaction in any state. Admin only.
func (s *TransactionService) Delete(ctx context.Context, sess domainauth.Session, id int) error {
	if !sess.Role.IsAdmin() {
		return fmt.Errorf("delete transaction: %w", ErrForbidden)
	}
	if _, err := s.findVisible(ctx, sess, id); err != nil {
		return err
	}
	if err := s.api.DeleteTransaction(ctx, sess.Credential, id); err != nil {
		return err
	}
	s.logger.Info("transaction deleted", "transaction_id", id)
	return nil
}

// findVisible resolves an id against the session's visible transactions. A
// user never learns whether a foreign id exists: both cases are not found.
func (s *TransactionService) findVisible(ctx context.Context, sess domainauth.Session, id int) (model.Transaction, error) {
	visible, err := s.List(ctx, sess)
	if err != nil {
		return model.Transaction{}, err
	}
	for _, txn := range visible {
		if txn.ID == id {
			return txn, nil
		}
	}
	return model.Transaction{}, ErrTransactionNotFound
}
