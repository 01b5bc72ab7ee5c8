package static

import "embed"

// FS contains static pages served by the HTTP server.
//
//go:embed card.html
var FS embed.FS
