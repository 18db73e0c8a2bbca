package tui

import (
	"fmt"
	"strings"

	"runright/internal/pace"
	"runright/internal/service"
	"runright/internal/store"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

const historyLimit = 20

// HistoryModel is the run history screen model
type HistoryModel struct {
	coach   *service.CoachService
	units   Units
	runs    []store.Run
	cursor  int
	loading bool
	err     error
	status  string
}

// NewHistoryModel creates a new history model
func NewHistoryModel(coach *service.CoachService, units Units) HistoryModel {
	return HistoryModel{
		coach: coach,
		units: units,
	}
}

// Init initializes the history screen
func (m HistoryModel) Init() tea.Cmd {
	return m.loadData
}

func (m HistoryModel) loadData() tea.Msg {
	runs, err := m.coach.History(historyLimit)
	return historyDataMsg{runs: runs, err: err}
}

type historyDataMsg struct {
	runs []store.Run
	err  error
}

type runDeletedMsg struct {
	run *store.Run
	err error
}

// Update handles messages
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case historyDataMsg:
		m.loading = false
		m.err = msg.err
		m.runs = msg.runs
		if m.cursor >= len(m.runs) {
			m.cursor = len(m.runs) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
	case runDeletedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.status = fmt.Sprintf("Deleted the %s run from %s.",
			m.units.FormatKm(msg.run.DistanceKm), humanize.Time(msg.run.Date))
		m.loading = true
		return m, m.loadData
	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			m.loading = true
			m.status = ""
			return m, m.loadData
		case "j", "down":
			if m.cursor < len(m.runs)-1 {
				m.cursor++
			}
		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
			}
		case "d":
			if m.cursor < len(m.runs) {
				id := m.runs[m.cursor].ID
				return m, func() tea.Msg {
					run, err := m.coach.DeleteRun(id)
					return runDeletedMsg{run: run, err: err}
				}
			}
		}
	}
	return m, nil
}

// View renders the history screen
func (m HistoryModel) View() string {
	if m.loading {
		return "\n  Loading history..."
	}

	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}

	title := cardTitleStyle.Render("Recent Runs")

	if len(m.runs) == 0 {
		empty := mutedStyle.Render("No runs yet. Press '3' to log your first one.")
		return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, empty))
	}

	header := tableHeaderStyle.Render(fmt.Sprintf("%-14s  %8s  %8s  %9s  %4s  %4s  %s",
		"When", "Dist", "Time", "Pace", "Eff", "Pain", "Notes"))

	rows := []string{header}
	for i, r := range m.runs {
		p := pace.FromKm(r.DistanceKm, r.DurationMinutes*60)

		painCol := "-"
		if r.PainLevel > 0 {
			painCol = fmt.Sprintf("%d", r.PainLevel)
			if len(r.PainAreas) > 0 {
				painCol += "*"
			}
		}

		line := fmt.Sprintf("%-14s  %8s  %8s  %9s  %3d/5  %4s  %s",
			humanize.Time(r.Date),
			m.units.FormatKm(r.DistanceKm),
			formatMinutes(r.DurationMinutes),
			p.Format(m.units.PaceMiles()),
			r.Difficulty,
			painCol,
			truncate(r.Notes, 24),
		)
		if i == m.cursor {
			rows = append(rows, tableSelectedStyle.Render(line))
		} else {
			rows = append(rows, tableRowStyle.Render(line))
		}
	}

	table := lipgloss.JoinVertical(lipgloss.Left, rows...)

	var footer []string
	if m.status != "" {
		footer = append(footer, successStyle.Render("  "+m.status))
	}
	footer = append(footer, statusStyle.Render(
		"j/k move, 'd' delete selected, 'r' refresh. * means pain areas were recorded."))

	return lipgloss.JoinVertical(lipgloss.Left,
		append([]string{cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, table))}, footer...)...,
	)
}

func formatMinutes(minutes float64) string {
	total := int(minutes * 60)
	h := total / 3600
	mn := (total % 3600) / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, mn, s)
	}
	return fmt.Sprintf("%d:%02d", mn, s)
}

func truncate(s string, max int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
