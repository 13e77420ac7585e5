package httputil

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

const apiPrefix = "/api/"

// SPAHandler serves the built frontend from dir. Paths that do not name a
// file get index.html so client-side routes survive a reload. Unmatched
// /api/ paths get a JSON 404 instead.
type SPAHandler struct {
	dir string
}

func NewSPAHandler(dir string) *SPAHandler {
	return &SPAHandler{dir: dir}
}

func (h *SPAHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == "/api" || strings.HasPrefix(r.URL.Path, apiPrefix) {
		WriteRouteError(w, r, http.StatusNotFound)
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		WriteRouteError(w, r, http.StatusMethodNotAllowed)
		return
	}
	if h.dir == "" {
		http.NotFound(w, r)
		return
	}

	name := filepath.Join(h.dir, filepath.FromSlash(path.Clean("/"+r.URL.Path)))
	if info, err := os.Stat(name); err == nil && !info.IsDir() {
		http.ServeFile(w, r, name)
		return
	}

	index := filepath.Join(h.dir, "index.html")
	if _, err := os.Stat(index); err != nil {
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, index)
}
