// Package web provides embedded static assets for the public site. The
// stylesheet is embedded so the binary serves /static/ without needing any
// files next to it at runtime.
package web

import "embed"

// StaticFS embeds the web/static/ directory tree.
//
//go:embed all:static
var StaticFS embed.FS
