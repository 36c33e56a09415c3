package config

import (
	"strings"
	"time"
)

// BackendConfig points the UI at the library backend REST API.
type BackendConfig struct {
	// BaseURL is the backend API root, e.g. http://localhost:8085/api.
	// Resource paths (/login, /books, ...) are appended to it.
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:8085/api"`

	// Timeout bounds each backend request end to end.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"30s"`
}

// Sanitize applies guardrails to backend settings.
func (c *BackendConfig) Sanitize() {
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if c.Timeout <= 0 {
		c.Timeout = 30 * time.Second
	}
}
