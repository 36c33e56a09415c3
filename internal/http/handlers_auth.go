package httpx

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/libreshelf/library-ui/internal/backend"
)

// AuthHandlers serves the login page and the session endpoints.
type AuthHandlers struct {
	auth         AuthServiceInterface
	renderer     *TemplateRenderer
	cookieDomain string
	logger       *slog.Logger
}

// AuthHandlersOptions wires the auth handlers.
type AuthHandlersOptions struct {
	Auth         AuthServiceInterface
	Renderer     *TemplateRenderer
	CookieDomain string
	Logger       *slog.Logger
}

// NewAuthHandlers builds the auth handlers.
func NewAuthHandlers(opts AuthHandlersOptions) *AuthHandlers {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthHandlers{
		auth:         opts.Auth,
		renderer:     opts.Renderer,
		cookieDomain: opts.CookieDomain,
		logger:       logger.With("component", "auth_handlers"),
	}
}

// LoginPage renders the login form. An already signed-in visitor goes
// straight to the dashboard.
func (h *AuthHandlers) LoginPage(w http.ResponseWriter, r *http.Request) {
	if _, err := getSessionFromRequest(r, h.auth); err == nil {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	h.renderLoginPage(w, r, "", "", http.StatusOK)
}

// Login handles the login form POST: authenticate, persist the session, set
// the cookie, and resume the originally requested destination.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderLoginPage(w, r, "Invalid form submission.", "", http.StatusBadRequest)
		return
	}

	username := strings.TrimSpace(r.PostFormValue("username"))
	password := r.PostFormValue("password")
	if username == "" || password == "" {
		h.renderLoginPage(w, r, "Username and password are required.", username, http.StatusUnprocessableEntity)
		return
	}

	sess, err := h.auth.Login(r.Context(), username, password)
	if err != nil {
		if errors.Is(err, backend.ErrAuthFailed) {
			h.renderLoginPage(w, r, "Invalid username or password.", username, http.StatusUnauthorized)
			return
		}
		h.logger.Error("login failed", "error", err)
		h.renderLoginPage(w, r, "Login is unavailable right now. Please try again.", username, http.StatusBadGateway)
		return
	}

	h.setSessionCookie(w, r, sess.ID, sess.ExpiresAt)

	redirect := safeRedirectPath(r.PostFormValue("redirect_uri"))
	if redirect == "" {
		redirect = "/dashboard"
	}
	http.Redirect(w, r, redirect, http.StatusSeeOther)
}

// Logout drops the session server-side and clears the cookie. Always lands
// on the login page, even when there was nothing to log out.
func (h *AuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(SessionCookieName); err == nil {
		if err := h.auth.Logout(r.Context(), cookie.Value); err != nil {
			h.logger.Error("logout failed", "error", err)
		}
	}
	h.clearSessionCookie(w, r)
	http.Redirect(w, r, "/auth/login", http.StatusSeeOther)
}

// Status reports the session state as JSON for client-side checks.
func (h *AuthHandlers) Status(w http.ResponseWriter, r *http.Request) {
	sess, err := getSessionFromRequest(r, h.auth)
	if err != nil {
		WriteJSON(w, http.StatusOK, map[string]any{"authenticated": false})
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{
		"authenticated": true,
		"user": map[string]any{
			"id":       sess.User.ID,
			"username": sess.User.Username,
			"role":     sess.Role,
		},
		"expires_at": sess.ExpiresAt,
	})
}

func (h *AuthHandlers) renderLoginPage(w http.ResponseWriter, r *http.Request, errMsg, username string, status int) {
	data := NewTemplateData(r, PageMeta{Title: "Sign in", PageTitle: "Sign in", CurrentPage: PageLogin}).
		WithError(errMsg).
		With("Username", username).
		With("RedirectURI", safeRedirectPath(loginRedirectParam(r))).
		Build()
	h.renderer.RenderPage(w, status, PageLogin, data)
}

// loginRedirectParam finds the destination to resume: the query parameter on
// GET, the hidden form field on POST.
func loginRedirectParam(r *http.Request) string {
	if v := r.PostFormValue("redirect_uri"); v != "" {
		return v
	}
	return r.URL.Query().Get("redirect_uri")
}

func (h *AuthHandlers) setSessionCookie(w http.ResponseWriter, r *http.Request, id string, expiresAt time.Time) {
	maxAge := int(time.Until(expiresAt).Seconds())
	if maxAge < 0 {
		maxAge = 0
	}
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    id,
		Path:     "/",
		Domain:   h.cookieDomain,
		HttpOnly: true,
		Secure:   isRequestSecure(r),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   maxAge,
	})
}

func (h *AuthHandlers) clearSessionCookie(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		Domain:   h.cookieDomain,
		HttpOnly: true,
		Secure:   isRequestSecure(r),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
	})
}
