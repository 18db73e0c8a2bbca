package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpModel is the help screen model
type HelpModel struct {
	vp    viewport.Model
	ready bool
}

// NewHelpModel creates a new help model
func NewHelpModel() HelpModel {
	return HelpModel{}
}

// Init initializes the help screen
func (m HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		height := msg.Height - 6
		if height < 5 {
			height = 5
		}
		if !m.ready {
			m.vp = viewport.New(msg.Width, height)
			m.vp.SetContent(helpContent())
			m.ready = true
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = height
		}
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

// View renders the help screen
func (m HelpModel) View() string {
	if !m.ready {
		return helpContent()
	}
	return m.vp.View()
}

type keyHelp struct {
	key  string
	desc string
}

func helpContent() string {
	var sections []string

	sections = append(sections, cardTitleStyle.Render("Keyboard Shortcuts"))

	sections = append(sections, renderHelpSection("Navigation", []keyHelp{
		{"1", "Dashboard"},
		{"2", "Run history"},
		{"3 or l", "Log a run"},
		{"4 or c", "Daily check-in"},
		{"5 or p", "Training paces"},
		{"?", "Help (this screen)"},
		{"q", "Quit"},
		{"esc", "Back / close help"},
	}))

	sections = append(sections, renderHelpSection("Dashboard", []keyHelp{
		{"r", "Refresh data"},
		{"a", "Accept a suggested level change"},
		{"x", "Dismiss a suggested level change"},
	}))

	sections = append(sections, renderHelpSection("History", []keyHelp{
		{"j / down", "Move selection down"},
		{"k / up", "Move selection up"},
		{"d", "Delete the selected run"},
		{"r", "Refresh list"},
	}))

	sections = append(sections, renderHelpSection("Forms", []keyHelp{
		{"tab / down", "Next field"},
		{"shift+tab / up", "Previous field"},
		{"enter", "Next field, or save on the last one"},
		{"esc", "Cancel without saving"},
	}))

	sections = append(sections, renderConceptsHelp())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func renderHelpSection(title string, keys []keyHelp) string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(secondaryColor).Render(title))

	for _, k := range keys {
		lines = append(lines, "  "+RenderKeyHelp(k.key, k.desc))
	}

	return strings.Join(lines, "\n")
}

func renderConceptsHelp() string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(secondaryColor).Render("Concepts"))
	lines = append(lines, "")

	concepts := []struct {
		name string
		desc string
	}{
		{"Readiness", "0-100 score built from rest days, your last run, and today's check-in."},
		{"Today's Session", "What to run today: type, distance, and why."},
		{"Baseline Pace", "Distance-weighted average pace over your recent runs."},
		{"Pace Zones", "Easy/tempo/threshold/interval bands relative to your baseline."},
		{"Consistency", "Weeks with at least one run inside the progress window."},
	}

	for _, c := range concepts {
		lines = append(lines, "  "+helpKeyStyle.Render(c.name))
		lines = append(lines, "  "+mutedStyle.Render(c.desc))
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}
