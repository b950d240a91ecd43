// Package static embeds the browser assets served under /static.
package static

import "embed"

// FS holds the assets under the "assets" directory.
//
//go:embed assets
var FS embed.FS

// Root is the directory inside FS that maps to /static.
const Root = "assets"
