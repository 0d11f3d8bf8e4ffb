package webapp

import (
	"encoding/json"
	"html/template"
	"log"
	"net/http"
	"strings"

	"github.com/nowakemc/reporting-project/app"
)

type Breadcrumb struct {
	Part string
	Path string
}

func (webapp *WebApp) folders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defaults := webapp.reportDefaults()

		depth := queryInt(r, "depth", defaults.DefaultDepth)
		levels := queryInt(r, "levels", defaults.MaxLevels)
		top := queryInt(r, "top", defaults.TopFolders)
		folderPath := r.URL.Query().Get("path")

		catalog, err := webapp.openCatalog()
		if err != nil {
			log.Printf("Unable to open catalog: %v\n", err)
			webapp.renderError(w, http.StatusInternalServerError, "")
			return
		}
		defer catalog.Close()

		opts := app.ReportOptions{Depth: depth, MaxLevels: levels, Top: top}
		if folderPath != "" {
			opts.Filter = &app.DocumentFilter{PathPrefix: folderPath}
		}

		report, err := catalog.FolderReport(opts)
		if err != nil {
			log.Printf("Unable to build folder report for path %q: %v", folderPath, err)
			webapp.renderError(w, http.StatusInternalServerError, "")
			return
		}

		payload, err := json.Marshal(app.BuildSunburst(report.Aggregates, false))
		if err != nil {
			log.Printf("Unable to marshal sunburst payload: %v", err)
			webapp.renderError(w, http.StatusInternalServerError, "")
			return
		}

		var breadcrumbs []Breadcrumb
		var pathParts []string
		if folderPath != "" {
			pathParts = strings.Split(folderPath, "/")
		}

		for i, part := range pathParts {
			if part == "" {
				continue
			}
			breadcrumbs = append(breadcrumbs, Breadcrumb{
				Part: part,
				Path: strings.Join(pathParts[:i+1], "/"),
			})
		}

		data := webapp.newTplData()
		data["Title"] = "Folder Report"
		data["Report"] = report
		data["Depth"] = depth
		data["Levels"] = levels
		data["Top"] = top
		data["Path"] = folderPath
		data["Breadcrumbs"] = breadcrumbs
		data["Sunburst"] = template.JS(payload)

		err = webapp.TemplateCache["folders.html"].Execute(w, data)
		if err != nil {
			log.Printf("Template error: %v", err)
			webapp.renderError(w, http.StatusInternalServerError, "")
		}
	}
}

func (webapp *WebApp) sunburst() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defaults := webapp.reportDefaults()

		depth := queryInt(r, "depth", defaults.DefaultDepth)
		byCount := r.URL.Query().Get("metric") == "count"

		catalog, err := webapp.openCatalog()
		if err != nil {
			log.Printf("Unable to open catalog: %v\n", err)
			http.Error(w, "catalog unavailable", http.StatusInternalServerError)
			return
		}
		defer catalog.Close()

		report, err := catalog.FolderReport(app.ReportOptions{Depth: depth})
		if err != nil {
			log.Printf("Unable to build folder report: %v", err)
			http.Error(w, "report failed", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(app.BuildSunburst(report.Aggregates, byCount)); err != nil {
			log.Printf("Unable to encode sunburst payload: %v", err)
		}
	}
}
