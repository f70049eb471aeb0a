// Package web embeds the static order page served under /app/.
package web

import "embed"

//go:embed index.html
var FS embed.FS
