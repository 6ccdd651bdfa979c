// Package content embeds the educational lesson files so the server
// binary ships with its content and needs no files on disk.
package content

import "embed"

//go:embed lessons/*.md
var FS embed.FS
