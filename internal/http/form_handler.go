package httpx

import (
	"context"
	"errors"
	"net/http"

	"github.com/libreshelf/library-ui/internal/backend"
	domainauth "github.com/libreshelf/library-ui/internal/domain/auth"
	"github.com/libreshelf/library-ui/internal/service"
)

// FormService is the create/update pair a form posts into.
type FormService[T any] interface {
	Create(ctx context.Context, sess domainauth.Session, item T) (T, error)
	Update(ctx context.Context, sess domainauth.Session, item T) (T, error)
}

// FormHandlerOpts wires one form submission through parse, validate, call,
// and render-or-redirect.
type FormHandlerOpts[T any] struct {
	W    http.ResponseWriter
	R    *http.Request
	Mode FormMode

	// Parser extracts the item and per-field errors from the posted form.
	Parser func(r *http.Request) (T, map[string]string)
	// Service receives the parsed item.
	Service FormService[T]
	// Renderer renders the form again on failure.
	Renderer *TemplateRenderer
	// Page names the form template.
	Page string
	// PageMeta describes the form screen.
	PageMeta PageMeta
	// SuccessURL is where a successful submission redirects.
	SuccessURL string
	// FormData repopulates the form fields when re-rendering after an error.
	FormData func(item T) map[string]any
	// ExtraData adds page-specific data (select options) to re-renders.
	ExtraData map[string]any
}

// HandleForm processes a create or edit form POST. Validation errors
// re-render the form with inline messages and the submitted values; service
// errors re-render with a page alert; success redirects.
func HandleForm[T any](opts FormHandlerOpts[T]) {
	sess, ok := SessionFromRequest(opts.R)
	if !ok {
		redirectToLogin(opts.W, opts.R)
		return
	}

	item, fieldErrors := opts.Parser(opts.R)
	if len(fieldErrors) > 0 {
		renderFormError(opts, item, "", fieldErrors, http.StatusUnprocessableEntity)
		return
	}

	var err error
	if opts.Mode == FormModeEdit {
		_, err = opts.Service.Update(opts.R.Context(), sess, item)
	} else {
		_, err = opts.Service.Create(opts.R.Context(), sess, item)
	}
	if err != nil {
		status, msg := formErrorMessage(err)
		renderFormError(opts, item, msg, nil, status)
		return
	}

	http.Redirect(opts.W, opts.R, opts.SuccessURL, http.StatusSeeOther)
}

// formErrorMessage maps service failures to a user-facing alert.
func formErrorMessage(err error) (int, string) {
	var apiErr *backend.APIError
	switch {
	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden, "You do not have permission to do that."
	case errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound:
		return http.StatusNotFound, "The record no longer exists."
	case errors.As(err, &apiErr) && apiErr.Status < http.StatusInternalServerError:
		return http.StatusBadGateway, "The library service rejected the request. Please check the form and try again."
	default:
		return http.StatusBadGateway, "The library service is unavailable. Please try again."
	}
}

func renderFormError[T any](opts FormHandlerOpts[T], item T, errMsg string, fieldErrors map[string]string, status int) {
	builder := NewTemplateData(opts.R, opts.PageMeta).
		WithError(errMsg).
		WithFieldErrors(fieldErrors).
		With("Mode", string(opts.Mode))
	if opts.FormData != nil {
		builder.With("Form", opts.FormData(item))
	}
	for k, v := range opts.ExtraData {
		builder.With(k, v)
	}
	opts.Renderer.RenderPage(opts.W, status, opts.Page, builder.Build())
}
