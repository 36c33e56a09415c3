package httpx

import (
	"net/http"
	"strconv"

	"github.com/libreshelf/library-ui/internal/domain/model"
	"github.com/libreshelf/library-ui/internal/http/validation"
)

func bookFormMeta(mode FormMode) PageMeta {
	title := "Add book"
	if mode == FormModeEdit {
		title = "Edit book"
	}
	return PageMeta{Title: title, PageTitle: title, CurrentPage: PageBooks}
}

// BookNewForm renders the empty create form.
func (h *UIHandlers) BookNewForm(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireSession(w, r); !ok {
		return
	}
	data := NewTemplateData(r, bookFormMeta(FormModeCreate)).
		With("Mode", string(FormModeCreate)).
		With("Form", bookFormData(model.Book{})).
		Build()
	h.renderer.RenderPage(w, http.StatusOK, PageBookForm, data)
}

// BookEditForm renders the edit form prefilled from the backend.
func (h *UIHandlers) BookEditForm(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.requireSession(w, r)
	if !ok {
		return
	}
	id, err := parseIDParam(r, "id")
	if err != nil {
		h.renderNotFound(w, r)
		return
	}

	book, err := h.books.Get(r.Context(), sess, id)
	if err != nil {
		h.logger.Error("get book", "book_id", id, "error", err)
		h.renderNotFound(w, r)
		return
	}

	data := NewTemplateData(r, bookFormMeta(FormModeEdit)).
		With("Mode", string(FormModeEdit)).
		With("Form", bookFormData(book)).
		Build()
	h.renderer.RenderPage(w, http.StatusOK, PageBookForm, data)
}

// BookCreate handles the create form POST.
func (h *UIHandlers) BookCreate(w http.ResponseWriter, r *http.Request) {
	HandleForm(FormHandlerOpts[model.Book]{
		W:          w,
		R:          r,
		Mode:       FormModeCreate,
		Parser:     parseBookForm(0),
		Service:    h.books,
		Renderer:   h.renderer,
		Page:       PageBookForm,
		PageMeta:   bookFormMeta(FormModeCreate),
		SuccessURL: "/books",
		FormData:   bookFormData,
	})
}

// BookUpdate handles the edit form POST.
func (h *UIHandlers) BookUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		h.renderNotFound(w, r)
		return
	}
	HandleForm(FormHandlerOpts[model.Book]{
		W:          w,
		R:          r,
		Mode:       FormModeEdit,
		Parser:     parseBookForm(id),
		Service:    h.books,
		Renderer:   h.renderer,
		Page:       PageBookForm,
		PageMeta:   bookFormMeta(FormModeEdit),
		SuccessURL: "/books",
		FormData:   bookFormData,
	})
}

// parseBookForm validates the posted fields and builds the book. All checks
// run before anything is sent to the backend.
func parseBookForm(id int) func(r *http.Request) (model.Book, map[string]string) {
	return func(r *http.Request) (model.Book, map[string]string) {
		_ = r.ParseForm()
		title := r.PostFormValue("title")
		author := r.PostFormValue("author")
		publisher := r.PostFormValue("publisher")
		year := r.PostFormValue("publicationYear")

		errs := validation.New().
			Validate("title", title, validation.Required("Title", 255)).
			Validate("author", author, validation.Required("Author", 255)).
			Validate("publisher", publisher, validation.Required("Publisher", 255)).
			Validate("publicationYear", year, validation.IntRange("Publication year", 1, 9999)).
			Errors()

		yearN, _ := strconv.Atoi(year)
		return model.Book{
			ID:              id,
			Title:           title,
			Author:          author,
			Publisher:       publisher,
			PublicationYear: yearN,
		}, errs
	}
}

// bookFormData always carries every key the template reads.
func bookFormData(book model.Book) map[string]any {
	year := ""
	if book.PublicationYear != 0 {
		year = strconv.Itoa(book.PublicationYear)
	}
	return map[string]any{
		"ID":              book.ID,
		"Title":           book.Title,
		"Author":          book.Author,
		"Publisher":       book.Publisher,
		"PublicationYear": year,
	}
}
