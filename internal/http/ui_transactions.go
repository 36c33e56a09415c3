package httpx

import (
	"net/http"
	"slices"

	domainauth "github.com/libreshelf/library-ui/internal/domain/auth"
	"github.com/libreshelf/library-ui/internal/domain/model"
)

// transactionRow pairs a transaction with the controls the current session
// may use on it. The capability function decides; the template only renders.
type transactionRow struct {
	model.Transaction
	CanRequestReturn bool
	CanApproveReturn bool
	CanEdit          bool
	CanDelete        bool
}

// TransactionList renders the transactions visible to the session.
func (h *UIHandlers) TransactionList(w http.ResponseWriter, r *http.Request) {
	h.renderTransactionList(w, r, "", http.StatusOK)
}

// TransactionRequestReturn moves one of the user's borrowed books to
// Pending.
func (h *UIHandlers) TransactionRequestReturn(w http.ResponseWriter, r *http.Request) {
	h.transitionTransaction(w, r, func(sess domainauth.Session, id int) error {
		_, err := h.transactions.RequestReturn(r.Context(), sess, id)
		return err
	})
}

// TransactionApproveReturn confirms a pending return.
func (h *UIHandlers) TransactionApproveReturn(w http.ResponseWriter, r *http.Request) {
	h.transitionTransaction(w, r, func(sess domainauth.Session, id int) error {
		_, err := h.transactions.ApproveReturn(r.Context(), sess, id)
		return err
	})
}

// TransactionDelete removes a transaction.
func (h *UIHandlers) TransactionDelete(w http.ResponseWriter, r *http.Request) {
	h.transitionTransaction(w, r, func(sess domainauth.Session, id int) error {
		return h.transactions.Delete(r.Context(), sess, id)
	})
}

func (h *UIHandlers) transitionTransaction(w http.ResponseWriter, r *http.Request, op func(sess domainauth.Session, id int) error) {
	sess, ok := h.requireSession(w, r)
	if !ok {
		return
	}
	id, err := parseIDParam(r, "id")
	if err != nil {
		h.renderNotFound(w, r)
		return
	}
	if err := op(sess, id); err != nil {
		h.logger.Warn("transaction action failed", "transaction_id", id, "error", err)
		h.renderTransactionList(w, r, serviceErrorMessage(err), http.StatusOK)
		return
	}
	http.Redirect(w, r, "/transactions", http.StatusSeeOther)
}

func (h *UIHandlers) renderTransactionList(w http.ResponseWriter, r *http.Request, errMsg string, status int) {
	sess, ok := h.requireSession(w, r)
	if !ok {
		return
	}

	txns, err := h.transactions.List(r.Context(), sess)
	if err != nil {
		h.logger.Error("list transactions", "error", err)
		if errMsg == "" {
			errMsg = serviceErrorMessage(err)
		}
		status = http.StatusBadGateway
	}

	rows := make([]transactionRow, 0, len(txns))
	for _, txn := range txns {
		actions := model.AllowedActions(sess.Role, txn.Status, txn.User.ID == sess.User.ID)
		rows = append(rows, transactionRow{
			Transaction:      txn,
			CanRequestReturn: slices.Contains(actions, model.ActionRequestReturn),
			CanApproveReturn: slices.Contains(actions, model.ActionApproveReturn),
			CanEdit:          slices.Contains(actions, model.ActionEdit),
			CanDelete:        slices.Contains(actions, model.ActionDelete),
		})
	}

	data := NewTemplateData(r, PageMeta{Title: "Transactions", PageTitle: "Borrowing transactions", CurrentPage: PageTransactions}).
		WithError(errMsg).
		With("Transactions", rows).
		Build()
	h.renderer.RenderPage(w, status, PageTransactions, data)
}
