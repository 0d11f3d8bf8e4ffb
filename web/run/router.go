package webapp

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/nowakemc/reporting-project/web"
)

func router(webapp *WebApp) http.Handler {
	r := chi.NewRouter()

	r.Get("/", webapp.overview())
	r.Get("/folders", webapp.folders())
	r.Get("/folders/export", webapp.exportReport())
	r.Get("/api/sunburst", webapp.sunburst())

	// Serve embedded assets
	assetsFS, _ := fs.Sub(web.Assets, "assets")
	fileServer := http.FileServer(http.FS(assetsFS))
	r.Handle("/assets/*", http.StripPrefix("/assets/", fileServer))

	r.NotFound(webapp.notFoundHandler())

	return r
}
