// Package libraryui embeds the web assets so the binary ships self-contained.
package libraryui

import "embed"

// TemplateFS holds the HTML templates rendered by the HTTP layer.
//
//go:embed all:web/templates
var TemplateFS embed.FS
