package model

import (
	"fmt"

	"github.com/libreshelf/library-ui/internal/domain/auth"
)

// TransactionStatus is the lifecycle state of a borrowing transaction.
type TransactionStatus string

const (
	// StatusBorrowed is the initial state: the book is out with the borrower.
	StatusBorrowed TransactionStatus = "Borrowed"
	// StatusPending means the borrower has requested a return and an admin
	// has yet to confirm receipt.
	StatusPending TransactionStatus = "Pending"
	// StatusReturned is terminal: an admin confirmed the book came back.
	StatusReturned TransactionStatus = "Returned"
)

// ParseTransactionStatus validates a status string from the backend or a form.
func ParseTransactionStatus(s string) (TransactionStatus, error) {
	switch TransactionStatus(s) {
	case StatusBorrowed, StatusPending, StatusReturned:
		return TransactionStatus(s), nil
	default:
		return "", fmt.Errorf("unknown transaction status %q", s)
	}
}

// Transaction records one borrowing of one book by one user.
type Transaction struct {
	ID         int               `json:"id"`
	Book       BookRef           `json:"book"`
	User       UserRef           `json:"user"`
	BorrowDate Date              `json:"borrowDate"`
	ReturnDate Date              `json:"returnDate"`
	Status     TransactionStatus `json:"status"`
}

// transitionRule keys the transition table: who may move a transaction from
// one status to the next, and whether ownership of the transaction matters.
type transitionRule struct {
	from TransactionStatus
	to   TransactionStatus
}

type transitionPolicy struct {
	role      auth.Role
	ownerOnly bool
}

// transitions is the single source of truth for lifecycle moves. Admin edits
// through the edit form bypass it deliberately; everything else consults it
// before any mutation is sent.
var transitions = map[transitionRule]transitionPolicy{
	{StatusBorrowed, StatusPending}: {role: auth.RoleUser, ownerOnly: true},
	{StatusPending, StatusReturned}: {role: auth.RoleAdmin},
}

// CanTransition reports whether role may move a transaction from one status
// to another. isOwner is whether the acting user is the transaction's
// borrower.
func CanTransition(role auth.Role, from, to TransactionStatus, isOwner bool) bool {
	policy, ok := transitions[transitionRule{from, to}]
	if !ok {
		return false
	}
	if policy.role != role {
		return false
	}
	if policy.ownerOnly && !isOwner {
		return false
	}
	return true
}

// TransactionAction is a user-visible action on a transaction row.
type TransactionAction string

const (
	// ActionRequestReturn moves Borrowed to Pending (owning user).
	ActionRequestReturn TransactionAction = "request-return"
	// ActionApproveReturn moves Pending to Returned (admin).
	ActionApproveReturn TransactionAction = "approve-return"
	// ActionEdit opens the admin edit form, which may set any status.
	ActionEdit TransactionAction = "edit"
	// ActionDelete removes the transaction regardless of status (admin).
	ActionDelete TransactionAction = "delete"
)

// AllowedActions returns the actions a role may take on a transaction in the
// given status. The HTTP layer renders exactly these controls, and the
// service layer refuses anything outside them.
func AllowedActions(role auth.Role, status TransactionStatus, isOwner bool) []TransactionAction {
	var actions []TransactionAction
	if CanTransition(role, status, StatusPending, isOwner) {
		actions = append(actions, ActionRequestReturn)
	}
	if CanTransition(role, status, StatusReturned, isOwner) {
		actions = append(actions, ActionApproveReturn)
	}
	if role.IsAdmin() {
		actions = append(actions, ActionEdit, ActionDelete)
	}
	return actions
}
