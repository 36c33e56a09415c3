package httpx

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
)

// TemplateRenderer renders the embedded page templates. Pages are rendered
// into a buffer first so a template error can still become a clean 500
// instead of a half-written body.
type TemplateRenderer struct {
	tmpl   *template.Template
	logger *slog.Logger
}

// NewTemplateRenderer parses every template under web/templates in fsys.
func NewTemplateRenderer(fsys fs.FS, logger *slog.Logger) (*TemplateRenderer, error) {
	if logger == nil {
		logger = slog.Default()
	}
	tmpl, err := template.New("").ParseFS(fsys,
		"web/templates/*.tmpl",
		"web/templates/pages/*.tmpl",
	)
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &TemplateRenderer{tmpl: tmpl, logger: logger.With("component", "renderer")}, nil
}

// RenderPage renders the named page ("books" executes "books-page") with the
// given status.
func (tr *TemplateRenderer) RenderPage(w http.ResponseWriter, status int, page string, data any) {
	tr.render(w, status, page+"-page", data)
}

// RenderError renders the error page.
func (tr *TemplateRenderer) RenderError(w http.ResponseWriter, status int, data any) {
	tr.render(w, status, "error-page", data)
}

func (tr *TemplateRenderer) render(w http.ResponseWriter, status int, name string, data any) {
	var buf bytes.Buffer
	if err := tr.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		tr.logger.Error("render template", "template", name, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
