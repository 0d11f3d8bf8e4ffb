package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/nowakemc/reporting-project/app"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	depth := flag.Int("depth", 0, "Folder depth to group at (0 = full depth)")
	levels := flag.Int("levels", 0, "Number of level columns (0 = auto)")
	top := flag.Int("top", 10, "Number of top folders to show")
	path := flag.String("path", "", "Restrict report to folders under this path")
	format := flag.String("format", "text", "Output format: text, csv or json")
	flag.Parse()

	if *format != "text" && *format != "csv" && *format != "json" {
		fmt.Fprintf(os.Stderr, "Error: unsupported format %q. Use text, csv or json\n", *format)
		os.Exit(1)
	}

	cfg, err := app.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	catalog, err := app.OpenCatalog(cfg.Catalog.DBPath)
	if err != nil {
		log.Fatalf("Failed to open catalog: %v", err)
	}
	defer catalog.Close()

	opts := app.ReportOptions{Depth: *depth, MaxLevels: *levels, Top: *top}
	if *path != "" {
		opts.Filter = &app.DocumentFilter{PathPrefix: *path}
	}

	report, err := catalog.FolderReport(opts)
	if err != nil {
		log.Fatalf("Report error: %v", err)
	}

	switch *format {
	case "csv":
		err = app.WriteReportCSV(os.Stdout, report.Rows)
	case "json":
		err = app.WriteReportJSON(os.Stdout, report.Rows)
	default:
		err = printText(report)
	}
	if err != nil {
		log.Fatalf("Output error: %v", err)
	}
}

func printText(report *app.Report) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)

	header := make([]string, 0, report.MaxLevels+3)
	for i := 1; i <= report.MaxLevels; i++ {
		header = append(header, fmt.Sprintf("Level %d", i))
	}
	header = append(header, "Files", "Total", "Avg")
	fmt.Fprintln(w, strings.Join(header, "\t"))

	for _, row := range report.Rows {
		cols := make([]string, 0, len(row.Levels)+3)
		cols = append(cols, row.Levels...)
		cols = append(cols,
			fmt.Sprintf("%d", row.FileCount),
			fmt.Sprintf("%d", row.TotalSize),
			fmt.Sprintf("%.2f", row.AvgSize),
		)
		fmt.Fprintln(w, strings.Join(cols, "\t"))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\n%d folders at depth %d\n", len(report.Aggregates), report.Depth)
	if len(report.TopBySize) > 0 {
		fmt.Println("\nTop folders by size:")
		for _, agg := range report.TopBySize {
			name := agg.FullPath
			if name == "" {
				name = "(no folder)"
			}
			fmt.Printf("  %s\t%d bytes\n", name, agg.TotalSize)
		}
	}
	return nil
}
