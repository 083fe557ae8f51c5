package static

import (
	"net/http"
	"path"
	"strings"
)

const cacheControl = "public, max-age=3600"

// Handler serves embedded assets below prefix with explicit content types.
func Handler(prefix string) http.Handler {
	files := http.StripPrefix(prefix, http.FileServerFS(FS))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch strings.ToLower(path.Ext(r.URL.Path)) {
		case ".css":
			w.Header().Set("Content-Type", "text/css; charset=utf-8")
		case ".svg":
			w.Header().Set("Content-Type", "image/svg+xml")
		}
		w.Header().Set("Cache-Control", cacheControl)
		files.ServeHTTP(w, r)
	})
}
