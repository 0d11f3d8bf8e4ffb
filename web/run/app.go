package webapp

import (
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"os"
	"path"
	"strings"

	"github.com/nowakemc/reporting-project/app"
	"github.com/nowakemc/reporting-project/models"
	"github.com/nowakemc/reporting-project/web"
)

type WebApp struct {
	Router        http.Handler
	TemplateCache map[string]*template.Template
	AppConfig     *models.AppConfig
	ConfigPath    string
}

func (webapp *WebApp) ReloadConfiguration() {
	configPath := webapp.ConfigPath
	if configPath == "" {
		configPath = "config.yaml"
	}
	cfg, err := app.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	webapp.AppConfig = cfg
	log.Printf("Configuration loaded, catalog at %s\n", cfg.Catalog.DBPath)
}

func (webapp *WebApp) GetListenAddr() string {
	port := 8080
	if webapp.AppConfig != nil && webapp.AppConfig.Server.Port > 0 {
		port = webapp.AppConfig.Server.Port
	}
	return fmt.Sprintf(":%d", port)
}

func (webapp *WebApp) GetRouter() http.Handler {
	return router(webapp)
}

func (webapp *WebApp) InitTemplates() {
	webapp.TemplateCache = make(map[string]*template.Template)

	funcMap := template.FuncMap{
		"humanizeBytes": humanizeBytes,
		"split":         strings.Split,
		"add":           func(a, b int) int { return a + b },
		"sub":           func(a, b int) int { return a - b },
		"seq": func(n int) []int {
			out := make([]int, n)
			for i := range out {
				out[i] = i + 1
			}
			return out
		},
		"avgInt": func(f float64) int64 { return int64(f) },
		"percent": func(part, total int64) int64 {
			if total == 0 {
				return 0
			}
			return (part * 100) / total
		},
	}

	pages, err := fs.Glob(web.Templates, "templates/*.html")
	if err != nil {
		log.Fatalf("failed to glob templates: %v", err)
	}

	for _, page := range pages {
		name := path.Base(page)
		if name == "layout.html" {
			continue
		}

		var ts *template.Template
		var err error

		// Error template is standalone (no layout)
		if name == "error.html" {
			ts, err = template.New(name).Funcs(funcMap).ParseFS(web.Templates, page)
		} else {
			ts, err = template.New(name).Funcs(funcMap).ParseFS(web.Templates, page, "templates/layout.html")
		}

		if err != nil {
			log.Fatalf("failed to parse template %s: %v", name, err)
		}
		webapp.TemplateCache[name] = ts
	}
}

func (webapp *WebApp) openCatalog() (*app.Catalog, error) {
	dbPath := "data/catalog.db"
	if webapp.AppConfig != nil && webapp.AppConfig.Catalog.DBPath != "" {
		dbPath = webapp.AppConfig.Catalog.DBPath
	}
	return app.OpenCatalog(dbPath)
}

func (webapp *WebApp) reportDefaults() models.ReportConfig {
	defaults := models.ReportConfig{DefaultDepth: 0, MaxLevels: 5, TopFolders: 10}
	if webapp.AppConfig != nil {
		if webapp.AppConfig.Report.MaxLevels > 0 {
			defaults.MaxLevels = webapp.AppConfig.Report.MaxLevels
		}
		if webapp.AppConfig.Report.TopFolders > 0 {
			defaults.TopFolders = webapp.AppConfig.Report.TopFolders
		}
		if webapp.AppConfig.Report.DefaultDepth > 0 {
			defaults.DefaultDepth = webapp.AppConfig.Report.DefaultDepth
		}
	}
	return defaults
}
