package httpx

import (
	"net/http"
	"strconv"

	"github.com/libreshelf/library-ui/internal/domain/model"
	"github.com/libreshelf/library-ui/internal/http/validation"
)

const defaultLoanDays = 14

// TransactionNewForm renders the borrow form. A book_id query parameter
// preselects the book (the borrow button on the catalog links here).
func (h *UIHandlers) TransactionNewForm(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.requireSession(w, r)
	if !ok {
		return
	}

	books, err := h.books.List(r.Context(), sess)
	if err != nil {
		h.logger.Error("list books for borrow form", "error", err)
	}

	selected, _ := strconv.Atoi(r.URL.Query().Get("book_id"))
	today := model.Today()

	data := NewTemplateData(r, PageMeta{Title: "Borrow a book", PageTitle: "Borrow a book", CurrentPage: PageTransactions}).
		With("Mode", string(FormModeCreate)).
		With("Books", books).
		With("Form", map[string]any{
			"BookID":     selected,
			"BorrowDate": today.String(),
			"ReturnDate": today.AddDays(defaultLoanDays).String(),
		}).
		Build()
	h.renderer.RenderPage(w, http.StatusOK, PageTransactionForm, data)
}

// TransactionCreate handles the borrow form POST.
func (h *UIHandlers) TransactionCreate(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.requireSession(w, r)
	if !ok {
		return
	}

	form, errs := parseBorrowForm(r)
	if len(errs) > 0 {
		h.renderBorrowFormError(w, r, form, "", errs, http.StatusUnprocessableEntity)
		return
	}

	if _, err := h.transactions.Borrow(r.Context(), sess, form.bookID, form.borrowDate, form.returnDate); err != nil {
		h.logger.Error("borrow failed", "book_id", form.bookID, "error", err)
		h.renderBorrowFormError(w, r, form, serviceErrorMessage(err), nil, http.StatusBadGateway)
		return
	}

	http.Redirect(w, r, "/transactions", http.StatusSeeOther)
}

// TransactionEditForm renders the admin edit form with the status override.
func (h *UIHandlers) TransactionEditForm(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.requireSession(w, r)
	if !ok {
		return
	}
	id, err := parseIDParam(r, "id")
	if err != nil {
		h.renderNotFound(w, r)
		return
	}

	txn, err := h.transactions.Get(r.Context(), sess, id)
	if err != nil {
		h.logger.Error("get transaction", "transaction_id", id, "error", err)
		h.renderNotFound(w, r)
		return
	}

	data := NewTemplateData(r, PageMeta{Title: "Edit transaction", PageTitle: "Edit transaction", CurrentPage: PageTransactions}).
		With("Mode", string(FormModeEdit)).
		With("Statuses", []model.TransactionStatus{model.StatusBorrowed, model.StatusPending, model.StatusReturned}).
		With("Form", transactionFormData(txn)).
		Build()
	h.renderer.RenderPage(w, http.StatusOK, PageTransactionForm, data)
}

// TransactionUpdate handles the admin edit POST. This path may set any
// status; it is the deliberate escape hatch around the lifecycle table.
func (h *UIHandlers) TransactionUpdate(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.requireSession(w, r)
	if !ok {
		return
	}
	id, err := parseIDParam(r, "id")
	if err != nil {
		h.renderNotFound(w, r)
		return
	}

	txn, errs := parseTransactionEditForm(r, id)
	if len(errs) > 0 {
		h.renderEditFormError(w, r, txn, "", errs, http.StatusUnprocessableEntity)
		return
	}

	if _, err := h.transactions.Update(r.Context(), sess, txn); err != nil {
		h.logger.Error("update transaction", "transaction_id", id, "error", err)
		h.renderEditFormError(w, r, txn, serviceErrorMessage(err), nil, http.StatusBadGateway)
		return
	}

	http.Redirect(w, r, "/transactions", http.StatusSeeOther)
}

type borrowForm struct {
	bookID     int
	borrowDate model.Date
	returnDate model.Date
}

func parseBorrowForm(r *http.Request) (borrowForm, map[string]string) {
	_ = r.ParseForm()
	bookIDRaw := r.PostFormValue("book_id")
	borrowRaw := r.PostFormValue("borrowDate")
	returnRaw := r.PostFormValue("returnDate")

	v := validation.New().
		Validate("book_id", bookIDRaw, validation.IntRange("Book", 1, 1<<31-1)).
		Validate("borrowDate", borrowRaw, validation.Date("Borrow date")).
		Validate("returnDate", returnRaw, validation.Date("Return date"))

	form := borrowForm{}
	form.bookID, _ = strconv.Atoi(bookIDRaw)
	form.borrowDate, _ = model.ParseDate(borrowRaw)
	form.returnDate, _ = model.ParseDate(returnRaw)

	errs := v.Errors()
	if errs == nil && form.returnDate.Before(form.borrowDate) {
		errs = map[string]string{"returnDate": "Return date must not be before the borrow date"}
	}
	return form, errs
}

func parseTransactionEditForm(r *http.Request, id int) (model.Transaction, map[string]string) {
	_ = r.ParseForm()
	bookIDRaw := r.PostFormValue("book_id")
	userIDRaw := r.PostFormValue("user_id")
	borrowRaw := r.PostFormValue("borrowDate")
	returnRaw := r.PostFormValue("returnDate")
	statusRaw := r.PostFormValue("status")

	errs := validation.New().
		Validate("book_id", bookIDRaw, validation.IntRange("Book", 1, 1<<31-1)).
		Validate("user_id", userIDRaw, validation.IntRange("Borrower", 1, 1<<31-1)).
		Validate("borrowDate", borrowRaw, validation.Date("Borrow date")).
		Validate("returnDate", returnRaw, validation.Date("Return date")).
		Validate("status", statusRaw, validation.OneOf("Status",
			string(model.StatusBorrowed), string(model.StatusPending), string(model.StatusReturned))).
		Errors()

	bookID, _ := strconv.Atoi(bookIDRaw)
	userID, _ := strconv.Atoi(userIDRaw)
	borrowDate, _ := model.ParseDate(borrowRaw)
	returnDate, _ := model.ParseDate(returnRaw)

	return model.Transaction{
		ID:         id,
		Book:       model.BookRef{ID: bookID},
		User:       model.UserRef{ID: userID},
		BorrowDate: borrowDate,
		ReturnDate: returnDate,
		Status:     model.TransactionStatus(statusRaw),
	}, errs
}

func transactionFormData(txn model.Transaction) map[string]any {
	return map[string]any{
		"ID":         txn.ID,
		"BookID":     txn.Book.ID,
		"BookTitle":  txn.Book.Title,
		"UserID":     txn.User.ID,
		"Username":   txn.User.Username,
		"BorrowDate": txn.BorrowDate.String(),
		"ReturnDate": txn.ReturnDate.String(),
		"Status":     string(txn.Status),
	}
}

func (h *UIHandlers) renderBorrowFormError(w http.ResponseWriter, r *http.Request, form borrowForm, errMsg string, fieldErrors map[string]string, status int) {
	sess, ok := h.requireSession(w, r)
	if !ok {
		return
	}
	books, err := h.books.List(r.Context(), sess)
	if err != nil {
		h.logger.Error("list books for borrow form", "error", err)
	}
	data := NewTemplateData(r, PageMeta{Title: "Borrow a book", PageTitle: "Borrow a book", CurrentPage: PageTransactions}).
		WithError(errMsg).
		WithFieldErrors(fieldErrors).
		With("Mode", string(FormModeCreate)).
		With("Books", books).
		With("Form", map[string]any{
			"BookID":     form.bookID,
			"BorrowDate": form.borrowDate.String(),
			"ReturnDate": form.returnDate.String(),
		}).
		Build()
	h.renderer.RenderPage(w, status, PageTransactionForm, data)
}

func (h *UIHandlers) renderEditFormError(w http.ResponseWriter, r *http.Request, txn model.Transaction, errMsg string, fieldErrors map[string]string, status int) {
	data := NewTemplateData(r, PageMeta{Title: "Edit transaction", PageTitle: "Edit transaction", CurrentPage: PageTransactions}).
		WithError(errMsg).
		WithFieldErrors(fieldErrors).
		With("Mode", string(FormModeEdit)).
		With("Statuses", []model.TransactionStatus{model.StatusBorrowed, model.StatusPending, model.StatusReturned}).
		With("Form", transactionFormData(txn)).
		Build()
	h.renderer.RenderPage(w, status, PageTransactionForm, data)
}
