package studioweb

import "embed"

// EmbeddedAssets contains files shipped inside the binary: the site
// stylesheet under embedded/public and the legal pages under embedded/legal.
//
//go:embed embedded/public/* embedded/legal/*.md
var EmbeddedAssets embed.FS
