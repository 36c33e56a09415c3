package config

// HTTPConfig holds HTTP server settings.
type HTTPConfig struct {
	// Addr is the listen address, host:port. Empty defaults to :8080 at
	// server start.
	Addr string `env:"HTTP_ADDR" envDefault:":8080"`

	// BaseURL is the externally visible base URL of this app, used when an
	// absolute self-URL is needed.
	BaseURL string `env:"APP_BASE_URL" envDefault:"http://localhost:8080"`

	// CookieDomain scopes the session and CSRF cookies. Empty means
	// host-only cookies.
	CookieDomain string `env:"COOKIE_DOMAIN"`
}

// Sanitize applies guardrails to HTTP settings.
func (c *HTTPConfig) Sanitize() {
	if c.Addr == "" {
		c.Addr = ":8080"
	}
}
