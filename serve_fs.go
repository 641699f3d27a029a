//go:build !tinygo

package theremin

import (
	"io/fs"
	"net/http"
)

// ServeFS serves a thing's embedded web UI
func (t *Thing) ServeFS(fsys fs.FS, w http.ResponseWriter, r *http.Request) {
	http.FileServer(http.FS(fsys)).ServeHTTP(w, r)
}
