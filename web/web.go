// Package web embeds the static single-page client served by the API binary.
package web

import "embed"

// FS holds the client assets.
//
//go:embed index.html app.js styles.css
var FS embed.FS
