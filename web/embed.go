// Package web embeds the document templates.
package web

import "embed"

// Templates embeds the HTML templates rendered to PDF.
//
//go:embed templates/**/*.html
var Templates embed.FS
