// Package templates embeds the server-rendered pages of the portal.
package templates

import (
	"embed"
	"html/template"
)

//go:embed *.tmpl
var files embed.FS

// Load parses every page. Pages are addressed by file name, e.g. "form.tmpl".
func Load() (*template.Template, error) {
	return template.ParseFS(files, "*.tmpl")
}
