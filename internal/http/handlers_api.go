package httpx

import (
	"net/http"
)

// The JSON API mirrors the screens for programmatic callers. It sits behind
// RequireAuth, so a missing session is a 401 here, never a redirect.

// BooksAPI returns the catalog as JSON.
func (h *UIHandlers) BooksAPI(w http.ResponseWriter, r *http.Request) {
	sess, ok := SessionFromRequest(r)
	if !ok {
		WriteError(w, ErrorParams{Code: http.StatusUnauthorized, ErrCode: "unauthorized"})
		return
	}
	books, err := h.books.List(r.Context(), sess)
	if err != nil {
		h.logger.Error("api list books", "error", err)
		WriteError(w, ErrorParams{Code: http.StatusBadGateway, ErrCode: "backend_unavailable"})
		return
	}
	WriteJSON(w, http.StatusOK, books)
}

// TransactionsAPI returns the session's visible transactions as JSON,
// role-filtered exactly like the screen.
func (h *UIHandlers) TransactionsAPI(w http.ResponseWriter, r *http.Request) {
	sess, ok := SessionFromRequest(r)
	if !ok {
		WriteError(w, ErrorParams{Code: http.StatusUnauthorized, ErrCode: "unauthorized"})
		return
	}
	txns, err := h.transactions.List(r.Context(), sess)
	if err != nil {
		h.logger.Error("api list transactions", "error", err)
		WriteError(w, ErrorParams{Code: http.StatusBadGateway, ErrCode: "backend_unavailable"})
		return
	}
	WriteJSON(w, http.StatusOK, txns)
}
