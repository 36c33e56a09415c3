package httpx

import (
	"net/http"

	domainauth "github.com/libreshelf/library-ui/internal/domain/auth"
)

// BookList renders the catalog. Admins get manage controls, users get a
// borrow button per book.
func (h *UIHandlers) BookList(w http.ResponseWriter, r *http.Request) {
	h.renderBookList(w, r, "", http.StatusOK)
}

// BookDelete removes a book and returns to the list. Failures render the
// list with an alert instead of a dead end.
func (h *UIHandlers) BookDelete(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.requireSession(w, r)
	if !ok {
		return
	}
	id, err := parseIDParam(r, "id")
	if err != nil {
		h.renderNotFound(w, r)
		return
	}
	if err := h.books.Delete(r.Context(), sess, id); err != nil {
		h.logger.Error("delete book", "book_id", id, "error", err)
		h.renderBookList(w, r, serviceErrorMessage(err), http.StatusBadGateway)
		return
	}
	http.Redirect(w, r, "/books", http.StatusSeeOther)
}

func (h *UIHandlers) renderBookList(w http.ResponseWriter, r *http.Request, errMsg string, status int) {
	sess, ok := h.requireSession(w, r)
	if !ok {
		return
	}

	books, err := h.books.List(r.Context(), sess)
	if err != nil {
		h.logger.Error("list books", "error", err)
		if errMsg == "" {
			errMsg = serviceErrorMessage(err)
		}
		status = http.StatusBadGateway
	}

	data := NewTemplateData(r, PageMeta{Title: "Books", PageTitle: "Books", CurrentPage: PageBooks}).
		WithError(errMsg).
		With("Books", books).
		With("CanBorrow", sess.Role == domainauth.RoleUser).
		Build()
	h.renderer.RenderPage(w, status, PageBooks, data)
}
