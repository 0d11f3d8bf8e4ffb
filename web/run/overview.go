package webapp

import (
	"log"
	"net/http"
)

func (webapp *WebApp) overview() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		catalog, err := webapp.openCatalog()
		if err != nil {
			log.Printf("Unable to open catalog: %v\n", err)
			webapp.renderError(w, http.StatusInternalServerError, "")
			return
		}
		defer catalog.Close()

		stats, err := catalog.GetCatalogStats()
		if err != nil {
			log.Printf("Unable to get catalog stats: %v\n", err)
			webapp.renderError(w, http.StatusInternalServerError, "")
			return
		}

		data := webapp.newTplData()
		data["Title"] = "Overview"
		data["Stats"] = stats

		err = webapp.TemplateCache["overview.html"].Execute(w, data)
		if err != nil {
			log.Printf("Template error: %v\n", err)
			webapp.renderError(w, http.StatusInternalServerError, "")
		}
	}
}
