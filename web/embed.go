package web

import "embed"

// StaticFS embeds the browser client (page, styles, scripts).
//
//go:embed static
var StaticFS embed.FS
