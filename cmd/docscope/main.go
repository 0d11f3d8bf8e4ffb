package main

import (
	"flag"
	"log"

	"github.com/nowakemc/reporting-project/app"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	force := flag.Bool("force", false, "Re-import sources even if already imported")
	precompute := flag.Int("precompute", 0, "Precompute folder reports up to this depth after import")
	flag.Parse()

	if err := app.Run(*configPath, *force); err != nil {
		log.Fatalf("error: %v", err)
	}

	if *precompute > 0 {
		cfg, err := app.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("error: %v", err)
		}
		if err := app.PrecomputeFolderReports(cfg.Catalog.DBPath, *precompute); err != nil {
			log.Fatalf("precompute error: %v", err)
		}
	}
}
