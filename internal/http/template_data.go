package httpx

import (
	"net/http"

	domainauth "github.com/libreshelf/library-ui/internal/domain/auth"
)

// PageMeta describes a screen for the layout: tab title, heading, and which
// nav entry to highlight.
type PageMeta struct {
	Title       string
	PageTitle   string
	CurrentPage string
}

// TemplateData is the map handed to templates.
type TemplateData map[string]any

// TemplateDataBuilder assembles TemplateData with the fields every page
// needs: meta, session identity, and the CSRF token.
type TemplateDataBuilder struct {
	data TemplateData
}

// NewTemplateData seeds the builder from the request: session user and role
// flags drive the nav, the CSRF token goes into every form.
func NewTemplateData(r *http.Request, meta PageMeta) *TemplateDataBuilder {
	data := TemplateData{
		"Meta":      meta,
		"CSRFToken": GetCSRFToken(r),
		"IsAdmin":   false,
		"LoggedIn":  false,
		// Templates dereference these unconditionally; empty values keep
		// first renders from tripping on missing keys.
		"FieldErrors": map[string]string{},
		"Form":        map[string]any{},
	}
	if sess, ok := SessionFromRequest(r); ok {
		data["LoggedIn"] = true
		data["User"] = sess.User
		data["Role"] = sess.Role
		data["IsAdmin"] = sess.Role == domainauth.RoleAdmin
	}
	return &TemplateDataBuilder{data: data}
}

// WithError sets the page-level error alert.
func (b *TemplateDataBuilder) WithError(msg string) *TemplateDataBuilder {
	if msg != "" {
		b.data["Error"] = msg
	}
	return b
}

// WithFieldErrors sets inline per-field validation errors.
func (b *TemplateDataBuilder) WithFieldErrors(errs map[string]string) *TemplateDataBuilder {
	if len(errs) > 0 {
		b.data["FieldErrors"] = errs
	}
	return b
}

// With sets an arbitrary key.
func (b *TemplateDataBuilder) With(key string, value any) *TemplateDataBuilder {
	b.data[key] = value
	return b
}

// Build returns the assembled data.
func (b *TemplateDataBuilder) Build() TemplateData {
	return b.data
}
