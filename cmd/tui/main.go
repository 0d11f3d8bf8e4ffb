package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"

	"github.com/nowakemc/reporting-project/app"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := app.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	catalog, err := app.OpenCatalog(cfg.Catalog.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open catalog: %v\n", err)
		os.Exit(1)
	}
	defer catalog.Close()

	fd := os.Stdout.Fd()
	width, _, err := term.GetSize(fd)
	if err != nil {
		width = 100 // fallback
	}

	filesCol := 10
	sizeCol := 12
	avgCol := 12
	folderCol := width - filesCol - sizeCol - avgCol - 8
	if folderCol < 20 {
		folderCol = 20
	}

	ti := textinput.New()
	ti.Placeholder = "Filter by folder path..."
	ti.Width = 50

	columns := []table.Column{
		{Title: "Folder", Width: folderCol},
		{Title: "Files", Width: filesCol},
		{Title: "Total", Width: sizeCol},
		{Title: "Avg", Width: avgCol},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows([]table.Row{}),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(styles)

	depth := 1
	if cfg.Report.DefaultDepth > 0 {
		depth = cfg.Report.DefaultDepth
	}

	m := model{
		textInput: ti,
		table:     t,
		catalog:   catalog,
		depth:     depth,
	}
	m.reload()

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error starting program: %v\n", err)
		os.Exit(1)
	}
}
