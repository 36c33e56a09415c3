package httpx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	domainauth "github.com/libreshelf/library-ui/internal/domain/auth"
)

// AuthServiceInterface is what the middleware needs from the auth service.
type AuthServiceInterface interface {
	Login(ctx context.Context, username, password string) (domainauth.Session, error)
	GetSession(ctx context.Context, id string) (domainauth.Session, error)
	Logout(ctx context.Context, id string) error
}

// respWriter captures the status code for request logging.
type respWriter struct {
	http.ResponseWriter
	status int
}

func (w *respWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// Logging logs one line per request: method, path, status, duration.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := &respWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rw, r)
			logger.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", rw.status,
				"duration_ms", time.Since(start).Milliseconds(),
			)
		})
	}
}

// Recover converts panics into 500s so a single bad request cannot take the
// process down.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("panic recovered", "panic", rec, "path", r.URL.Path)
					http.Error(w, "internal server error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// browserKey flags requests that expect an HTML response.
type browserKey struct{}

// BrowserDetection classifies the request as browser or API so that guards
// downstream can choose between a redirect and a JSON 401. API paths are
// never browser requests regardless of Accept.
func BrowserDetection(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), browserKey{}, isBrowserRequest(r))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func isBrowserRequest(r *http.Request) bool {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		return false
	}
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}

// wantsHTML reads the BrowserDetection flag, falling back to direct
// inspection when the middleware is not in the chain (tests).
func wantsHTML(r *http.Request) bool {
	if v, ok := r.Context().Value(browserKey{}).(bool); ok {
		return v
	}
	return isBrowserRequest(r)
}

// roleLevels orders roles for the role guard. Higher covers lower.
var roleLevels = map[domainauth.Role]int{
	domainauth.RoleGuest: 0,
	domainauth.RoleUser:  1,
	domainauth.RoleAdmin: 2,
}

func hasRequiredRole(have, want domainauth.Role) bool {
	return roleLevels[have] >= roleLevels[want]
}

// getSessionFromRequest resolves the session cookie against the store. Any
// failure is an absent session.
func getSessionFromRequest(r *http.Request, auth AuthServiceInterface) (domainauth.Session, error) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return domainauth.Session{}, errors.New("no session cookie")
	}
	return auth.GetSession(r.Context(), cookie.Value)
}

// RequireAuth guards JSON endpoints: a valid session lands in the context, or
// the request ends with 401.
func RequireAuth(auth AuthServiceInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, err := getSessionFromRequest(r, auth)
			if err != nil {
				WriteError(w, ErrorParams{Code: http.StatusUnauthorized, ErrCode: "unauthorized", Err: errors.New("authentication required")})
				return
			}
			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), sess)))
		})
	}
}

// RequireAuthBrowser guards screens. The session is resolved freshly on every
// request; an absent or expired one sends browsers to the login page with the
// original destination preserved, and API callers get a JSON 401.
func RequireAuthBrowser(auth AuthServiceInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, err := getSessionFromRequest(r, auth)
			if err != nil {
				if wantsHTML(r) {
					redirectToLogin(w, r)
					return
				}
				WriteError(w, ErrorParams{Code: http.StatusUnauthorized, ErrCode: "unauthorized", Err: errors.New("authentication required")})
				return
			}
			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), sess)))
		})
	}
}

// RequireRoleBrowser layers a role check on top of an already resolved
// session. Insufficient role renders an access-denied page rather than a
// login redirect: the user is known, just not allowed.
func RequireRoleBrowser(role domainauth.Role, renderer *TemplateRenderer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, ok := SessionFromRequest(r)
			if !ok {
				redirectToLogin(w, r)
				return
			}
			if !hasRequiredRole(sess.Role, role) {
				showAccessDenied(w, r, renderer)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// redirectToLogin sends the browser to the login page, carrying the original
// destination so login can resume it.
func redirectToLogin(w http.ResponseWriter, r *http.Request) {
	target := "/auth/login"
	if path := safeRedirectPath(r.URL.RequestURI()); path != "" && path != "/" {
		target += "?redirect_uri=" + url.QueryEscape(path)
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// safeRedirectPath keeps redirects on-site: only relative paths survive,
// anything else collapses to empty.
func safeRedirectPath(path string) string {
	if path == "" || !strings.HasPrefix(path, "/") || strings.HasPrefix(path, "//") {
		return ""
	}
	return path
}

func showAccessDenied(w http.ResponseWriter, r *http.Request, renderer *TemplateRenderer) {
	if !wantsHTML(r) || renderer == nil {
		WriteError(w, ErrorParams{Code: http.StatusForbidden, ErrCode: "forbidden", Err: errors.New("insufficient role")})
		return
	}
	data := NewTemplateData(r, PageMeta{Title: "Access denied", PageTitle: "Access denied"}).
		WithError("You do not have permission to view this page.").
		Build()
	renderer.RenderError(w, http.StatusForbidden, data)
}
