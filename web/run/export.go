package webapp

import (
	"fmt"
	"log"
	"net/http"

	"github.com/nowakemc/reporting-project/app"
)

func (webapp *WebApp) exportReport() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		format := r.URL.Query().Get("format")
		if format == "" {
			format = "csv"
		}
		if format != "csv" && format != "json" {
			webapp.renderError(w, http.StatusBadRequest, fmt.Sprintf("Unsupported export format %q.", format))
			return
		}

		defaults := webapp.reportDefaults()
		depth := queryInt(r, "depth", defaults.DefaultDepth)
		levels := queryInt(r, "levels", defaults.MaxLevels)

		catalog, err := webapp.openCatalog()
		if err != nil {
			log.Printf("Unable to open catalog: %v\n", err)
			webapp.renderError(w, http.StatusInternalServerError, "")
			return
		}
		defer catalog.Close()

		report, err := catalog.FolderReport(app.ReportOptions{Depth: depth, MaxLevels: levels})
		if err != nil {
			log.Printf("Unable to build folder report: %v", err)
			webapp.renderError(w, http.StatusInternalServerError, "")
			return
		}

		filename := app.ExportFilename(format)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

		switch format {
		case "csv":
			w.Header().Set("Content-Type", "text/csv")
			err = app.WriteReportCSV(w, report.Rows)
		case "json":
			w.Header().Set("Content-Type", "application/json")
			err = app.WriteReportJSON(w, report.Rows)
		}
		if err != nil {
			log.Printf("Export write error: %v", err)
		}
	}
}
