package assets

import "embed"

// FS holds the static client served at the site root.
//
//go:embed public
var FS embed.FS
