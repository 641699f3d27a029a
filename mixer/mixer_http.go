//go:build !tinygo

package mixer

import (
	"embed"
	"net/http"
)

//go:embed index.html
var fs embed.FS

func (m *Mixer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	m.ServeFS(fs, w, r)
}
