// Package tui provides an interactive browser over a saved batch report:
// a file table with a per-file drill-down into the flagged patterns.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bws82/biasclear/internal/model"
)

// KeyMap defines the browser key bindings.
type KeyMap struct {
	Open key.Binding
	Back key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open file"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#95E1D3")).MarginBottom(1)
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
	flagStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	passStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ECDC4"))
)

// Model is the bubbletea model for the report browser.
type Model struct {
	report   *model.BatchReport
	keys     KeyMap
	table    table.Model
	selected int
	detail   bool
	quitting bool
}

// New creates a browser over the given report.
func New(r *model.BatchReport) Model {
	columns := []table.Column{
		{Title: "File", Width: 42},
		{Title: "Score", Width: 8},
		{Title: "Flags", Width: 6},
		{Title: "Status", Width: 8},
	}

	rows := make([]table.Row, 0, len(r.Results))
	for _, result := range r.Results {
		status := "pass"
		if result.BiasDetected {
			status = "FLAGGED"
		}
		rows = append(rows, table.Row{
			result.File,
			fmt.Sprintf("%.2f", result.Score),
			fmt.Sprintf("%d", result.FlagCount),
			status,
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(minInt(len(rows)+1, 20)),
	)

	return Model{
		report: r,
		keys:   DefaultKeyMap(),
		table:  t,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Open):
			if !m.detail && len(m.report.Results) > 0 {
				m.selected = m.table.Cursor()
				m.detail = true
			}
			return m, nil
		case key.Matches(msg, m.keys.Back):
			m.detail = false
			return m, nil
		}
	}

	if m.detail {
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.detail {
		return m.detailView()
	}

	header := titleStyle.Render(fmt.Sprintf("BiasClear report: %d file(s), %d flagged, avg %.2f",
		m.report.ScoredFiles(), m.report.FlaggedFiles, m.report.AvgScore))
	help := helpStyle.Render("enter: open file · q: quit")
	return header + "\n" + m.table.View() + "\n" + help + "\n"
}

func (m Model) detailView() string {
	if m.selected < 0 || m.selected >= len(m.report.Results) {
		return helpStyle.Render("nothing selected") + "\n"
	}
	result := m.report.Results[m.selected]

	verdict := passStyle.Render("pass")
	if result.BiasDetected {
		verdict = flagStyle.Render("FLAGGED")
	}

	out := titleStyle.Render(result.File) + "\n"
	out += fmt.Sprintf("score %.2f · %s · threshold %d\n\n", result.Score, verdict, m.report.Threshold)

	if len(result.Matches) == 0 {
		out += "no patterns detected\n"
	}
	for _, match := range result.Matches {
		out += fmt.Sprintf("  %s  %s\n", flagStyle.Render(match.PatternName),
			helpStyle.Render(fmt.Sprintf("(%s, severity %.1f, confidence %.2f, bytes %d-%d)",
				match.Tier, match.Severity, match.Confidence, match.Span.Start, match.Span.End)))
	}

	out += "\n" + helpStyle.Render("esc: back · q: quit") + "\n"
	return out
}

// Run starts the interactive browser and blocks until the user quits.
func Run(r *model.BatchReport) error {
	p := tea.NewProgram(New(r), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run report browser: %w", err)
	}
	return nil
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
