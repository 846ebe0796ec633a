package server

import (
	"net/http"
	"os"
	"path/filepath"
)

// SPAHandler serves files from a static directory and falls back to the
// single entry page for any path that does not match a file, so client-side
// routes resolve after a hard refresh.
type SPAHandler struct {
	staticDir string
	indexFile string
}

func NewSPAHandler(staticDir string) *SPAHandler {
	return &SPAHandler{
		staticDir: staticDir,
		indexFile: "index.html",
	}
}

func (h *SPAHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Clean first so ".." can never reach outside the static directory
	rel := filepath.Clean("/" + r.URL.Path)
	path := filepath.Join(h.staticDir, rel)

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		rel = "/" + h.indexFile
		path = filepath.Join(h.staticDir, h.indexFile)
	}

	// ServeFile refuses raw paths containing "..", so hand it the clean one
	r.URL.Path = rel
	http.ServeFile(w, r, path)
}
