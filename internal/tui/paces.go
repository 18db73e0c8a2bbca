package tui

import (
	"fmt"

	"runright/internal/service"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// PacesModel is the pace zones screen model
type PacesModel struct {
	coach   *service.CoachService
	units   Units
	insight *service.PaceInsight
	loading bool
	err     error
}

// NewPacesModel creates a new paces model
func NewPacesModel(coach *service.CoachService, units Units) PacesModel {
	return PacesModel{
		coach: coach,
		units: units,
	}
}

// Init initializes the paces screen
func (m PacesModel) Init() tea.Cmd {
	return m.loadData
}

func (m PacesModel) loadData() tea.Msg {
	insight, err := m.coach.PaceInsight()
	return paceDataMsg{insight: insight, err: err}
}

type paceDataMsg struct {
	insight *service.PaceInsight
	err     error
}

// Update handles messages
func (m PacesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case paceDataMsg:
		m.loading = false
		m.err = msg.err
		m.insight = msg.insight
	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			m.loading = true
			return m, m.loadData
		}
	}
	return m, nil
}

// View renders the paces screen
func (m PacesModel) View() string {
	if m.loading {
		return "\n  Loading paces..."
	}

	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}

	title := cardTitleStyle.Render("Training Paces")

	if m.insight == nil || !m.insight.HasBaseline {
		empty := mutedStyle.Width(50).Render(
			"Not enough recent runs to build a baseline yet. " +
				"Log at least 3 runs in the last 8 weeks and your zones will show up here.")
		return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, empty))
	}

	useMiles := m.units.PaceMiles()
	zones := m.insight.Zones

	lines := []string{
		RenderMetric("Baseline", m.insight.Baseline.Format(useMiles)),
		"",
		RenderMetric("Easy", zones.Easy.Format(useMiles)),
		RenderMetric("Tempo", zones.Tempo.Format(useMiles)),
		RenderMetric("Threshold", zones.Threshold.Format(useMiles)),
		RenderMetric("Interval", zones.Interval.Format(useMiles)),
		"",
		mutedStyle.Width(52).Render(
			"Zones are relative to your own recent average, not a universal table. " +
				"They shift as your baseline does."),
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	card := cardStyle.Width(58).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))

	help := statusStyle.Render("Press 'r' to refresh")
	return lipgloss.JoinVertical(lipgloss.Left, card, help)
}
