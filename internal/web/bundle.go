package web

import (
	"embed"
	"io/fs"
)

//go:embed static
var staticFiles embed.FS

// Bundle returns the static asset bundle the binary ships with. It is the
// default origin for the offline asset cache; paths match assets.Manifest.
func Bundle() fs.FS {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
