package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nowakemc/reporting-project/app"
	"github.com/nowakemc/reporting-project/models"
)

var (
	baseStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))
	inputStyle = lipgloss.NewStyle().
			Margin(1, 0, 1, 0)
	tableStyle = lipgloss.NewStyle().
			Margin(0, 0, 1, 0)
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
)

type model struct {
	textInput  textinput.Model
	table      table.Model
	catalog    *app.Catalog
	depth      int
	path       string
	aggregates []models.FolderAggregate
	err        error
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	var enter = key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("⏎", "apply/drill"),
	)
	var toggleFocus = key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "toggle focus"),
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, enter):
			if m.textInput.Focused() {
				m.path = strings.Trim(m.textInput.Value(), "/")
				m.reload()
				m.textInput.Blur()
				m.table.Focus()
				return m, nil
			}
			if m.table.Focused() && len(m.aggregates) > 0 {
				// Drill down into the selected folder
				selected := m.table.Cursor()
				if selected < len(m.aggregates) && m.aggregates[selected].FullPath != "" {
					m.path = m.aggregates[selected].FullPath
					m.depth++
					m.textInput.SetValue(m.path)
					m.reload()
				}
				return m, nil
			}
		case key.Matches(msg, toggleFocus):
			if m.textInput.Focused() {
				m.textInput.Blur()
				m.table.Focus()
			} else {
				m.table.Blur()
				m.textInput.Focus()
			}
			return m, nil
		case key.Matches(msg, key.NewBinding(key.WithKeys("backspace"))):
			if m.table.Focused() && m.path != "" {
				// Go up one level
				parts := app.SplitFolderPath(m.path)
				m.path = strings.Join(parts[:len(parts)-1], "/")
				if m.depth > 1 {
					m.depth--
				}
				m.textInput.SetValue(m.path)
				m.reload()
				return m, nil
			}
		case key.Matches(msg, key.NewBinding(key.WithKeys("+"))):
			if !m.textInput.Focused() {
				m.depth++
				m.reload()
				return m, nil
			}
		case key.Matches(msg, key.NewBinding(key.WithKeys("-"))):
			if !m.textInput.Focused() && m.depth > 1 {
				m.depth--
				m.reload()
				return m, nil
			}
		case key.Matches(msg, key.NewBinding(key.WithKeys("esc", "q"))):
			if !m.textInput.Focused() {
				return m, tea.Quit
			}
			if msg.String() == "esc" {
				return m, tea.Quit
			}
		}

		if m.textInput.Focused() {
			m.textInput, cmd = m.textInput.Update(msg)
			return m, cmd
		}
		if m.table.Focused() {
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}
		var tiCmd, tCmd tea.Cmd
		m.textInput, tiCmd = m.textInput.Update(msg)
		m.table, tCmd = m.table.Update(msg)
		return m, tea.Batch(tiCmd, tCmd)

	case tea.WindowSizeMsg:
		m.table.SetWidth(msg.Width)
		m.table.SetHeight(msg.Height - 9)
		return m, nil
	}

	return m, nil
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(inputStyle.Render(m.textInput.View()))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(fmt.Sprintf("Error: %v\n", m.err))
	} else {
		b.WriteString(tableStyle.Render(m.table.View()))
	}

	status := fmt.Sprintf("depth %d", m.depth)
	if m.path != "" {
		status += fmt.Sprintf(" | path %s", m.path)
	}
	status += fmt.Sprintf(" | %d folders", len(m.aggregates))
	b.WriteString(statusStyle.Render(status))

	b.WriteString("\nEnter: drill down | Backspace: up | +/-: depth | Tab: focus | Esc: quit\n")

	return baseStyle.Render(b.String())
}

// reload rebuilds the folder report for the current depth and path filter.
func (m *model) reload() {
	opts := app.ReportOptions{Depth: m.depth}
	if m.path != "" {
		opts.Filter = &app.DocumentFilter{PathPrefix: m.path}
	}

	report, err := m.catalog.FolderReport(opts)
	if err != nil {
		m.err = err
		return
	}

	m.err = nil
	m.aggregates = report.Aggregates
	m.updateTable()
}

func (m *model) updateTable() {
	rows := []table.Row{}
	for _, agg := range m.aggregates {
		name := agg.FullPath
		if name == "" {
			name = "(no folder)"
		}
		rows = append(rows, table.Row{
			name,
			fmt.Sprintf("%d", agg.FileCount),
			formatSize(agg.TotalSize),
			formatSize(int64(agg.AvgSize)),
		})
	}
	m.table.SetRows(rows)
	m.table.SetCursor(0)
}
