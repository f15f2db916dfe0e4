package web

import "embed"

// FallbackFS embeds the entry document served when no front-end build is
// deployed next to the binary.
//go:embed index.html
var FallbackFS embed.FS
