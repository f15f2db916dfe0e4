package main

import (
	"net/http"
	"os"
	"path"
	"path/filepath"

	"github.com/farxc/cesla-billing/web"
)

// handleStatic serves front-end assets and falls back to the entry document
// for every other path.
func (app *application) handleStatic(w http.ResponseWriter, r *http.Request) {
	dir := app.config.staticDir

	if dir != "" {
		name := filepath.Join(dir, filepath.FromSlash(path.Clean("/"+r.URL.Path)))
		if info, err := os.Stat(name); err == nil && !info.IsDir() {
			http.ServeFile(w, r, name)
			return
		}

		index := filepath.Join(dir, "index.html")
		if _, err := os.Stat(index); err == nil {
			http.ServeFile(w, r, index)
			return
		}
	}

	http.ServeFileFS(w, r, web.FallbackFS, "index.html")
}
