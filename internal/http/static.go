package http

import (
	"embed"
	"io"
	"io/fs"
	"net/http"
)

//go:embed static
var staticFiles embed.FS

// StaticHandler serves the embedded landing page assets.
func StaticHandler() http.Handler {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		// The static directory is embedded at build time; a failure here is
		// a packaging bug.
		panic(err)
	}

	fileServer := http.FileServer(http.FS(sub))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// FileServer answers index.html requests with a redirect back to
		// the directory. The root redirect targets /static/index.html, so
		// that path has to produce the page itself.
		switch r.URL.Path {
		case "", "/", "index.html", "/index.html":
			// http.ServeFileFS requires Go 1.22; serve the embedded file
			// through ServeContent for compatibility with Go 1.21.
			f, err := sub.Open("index.html")
			if err != nil {
				http.NotFound(w, r)
				return
			}
			defer f.Close()
			info, err := f.Stat()
			if err != nil {
				http.NotFound(w, r)
				return
			}
			http.ServeContent(w, r, "index.html", info.ModTime(), f.(io.ReadSeeker))
		default:
			fileServer.ServeHTTP(w, r)
		}
	})
}
