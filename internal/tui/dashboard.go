package tui

import (
	"fmt"

	"runright/internal/service"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

// DashboardModel is the dashboard screen model
type DashboardModel struct {
	coach   *service.CoachService
	units   Units
	data    *service.DashboardData
	loading bool
	err     error
	status  string
}

// NewDashboardModel creates a new dashboard model
func NewDashboardModel(coach *service.CoachService, units Units) DashboardModel {
	return DashboardModel{
		coach:   coach,
		units:   units,
		loading: true,
	}
}

// Init initializes the dashboard
func (m DashboardModel) Init() tea.Cmd {
	return m.loadData
}

func (m DashboardModel) loadData() tea.Msg {
	data, err := m.coach.Dashboard()
	if err != nil {
		return dashboardDataMsg{err: err}
	}
	return dashboardDataMsg{data: data}
}

type dashboardDataMsg struct {
	data *service.DashboardData
	err  error
}

type upgradeActionMsg struct {
	accepted bool
	err      error
}

// Update handles messages
func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardDataMsg:
		m.loading = false
		m.err = msg.err
		m.data = msg.data
	case upgradeActionMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		if msg.accepted {
			m.status = "Level updated. Your targets will adjust from here."
		} else {
			m.status = "Suggestion dismissed."
		}
		m.loading = true
		return m, m.loadData
	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			m.loading = true
			m.status = ""
			return m, m.loadData
		case "a":
			if m.data != nil && m.data.UpgradePending {
				return m, m.acceptUpgrade
			}
		case "x":
			if m.data != nil && m.data.UpgradePending {
				return m, m.dismissUpgrade
			}
		}
	}
	return m, nil
}

func (m DashboardModel) acceptUpgrade() tea.Msg {
	return upgradeActionMsg{accepted: true, err: m.coach.AcceptUpgrade()}
}

func (m DashboardModel) dismissUpgrade() tea.Msg {
	return upgradeActionMsg{accepted: false, err: m.coach.DismissUpgrade()}
}

// View renders the dashboard
func (m DashboardModel) View() string {
	if m.loading {
		return "\n  Loading dashboard..."
	}

	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}

	if m.data == nil {
		return "\n  No data available."
	}

	var sections []string

	if m.data.UpgradePending {
		sections = append(sections, m.renderUpgradePrompt())
	}

	// Top row: today's session and this week side by side
	sessionCard := m.renderSessionCard()
	weekCard := m.renderWeekCard()
	topRow := lipgloss.JoinHorizontal(lipgloss.Top, sessionCard, "  ", weekCard)
	sections = append(sections, topRow)

	sections = append(sections, m.renderProgressCard())

	if hasAnyDistance(m.data.WeeklyDistances) {
		sections = append(sections, m.renderChart())
	}

	if m.status != "" {
		sections = append(sections, successStyle.Render("  "+m.status))
	}

	help := statusStyle.Render("Press 'r' to refresh, '3' to log a run, '4' for today's check-in")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m DashboardModel) renderSessionCard() string {
	title := cardTitleStyle.Render("Today's Session")
	rec := m.data.Recommendation

	lines := []string{
		RenderMetric("Session", rec.Type.DisplayName()),
	}
	if rec.HasDistance {
		lines = append(lines, RenderMetric("Distance", m.units.FormatKm(rec.DistanceKm)))
	}
	if m.data.HasReadiness {
		lines = append(lines,
			RenderMetric("Readiness", fmt.Sprintf("%.0f / 100", m.data.Readiness)),
			RenderProgressBar(m.data.Readiness/100, 30),
		)
	}
	lines = append(lines, "", mutedStyle.Width(46).Render(rec.Explanation))

	for _, w := range rec.Warnings {
		lines = append(lines, warningStyle.Width(46).Render("! "+w))
	}

	if !m.data.HasCheckIn {
		lines = append(lines, "", mutedStyle.Render("No check-in today. Press '4' to add one."))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(52).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (m DashboardModel) renderWeekCard() string {
	title := cardTitleStyle.Render("This Week")
	week := m.data.Weekly

	lines := []string{
		RenderMetric("Runs", fmt.Sprintf("%d", week.RunCount)),
		RenderMetric("Distance", m.units.FormatKm(week.TotalDistanceKm)),
		RenderMetric("Avg Distance", m.units.FormatKm(week.AvgDistanceKm)),
	}
	if week.RunCount > 0 {
		lines = append(lines, RenderMetric("Avg Difficulty", fmt.Sprintf("%.1f / 5", week.AvgDifficulty)))
	}
	lines = append(lines, RenderMetric("Total Runs", fmt.Sprintf("%d", m.data.RunCount)))

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(34).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (m DashboardModel) renderProgressCard() string {
	title := cardTitleStyle.Render("Level Progress")
	level := m.data.Level

	lines := []string{
		RenderMetric("Level", m.data.Profile.ExperienceLevel.DisplayName()),
		RenderMetric("Consistency", fmt.Sprintf("%d of %d weeks", level.CompletedWeeks, level.RequiredWeeks)),
		RenderProgressBar(level.Fraction(), 40),
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (m DashboardModel) renderChart() string {
	title := cardTitleStyle.Render(fmt.Sprintf("Weekly Distance (%s)", m.units.DistanceLabel()))

	values := make([]float64, len(m.data.WeeklyDistances))
	for i, km := range m.data.WeeklyDistances {
		values[i] = m.units.DisplayKm(km)
	}

	graph := asciigraph.Plot(values,
		asciigraph.Height(6),
		asciigraph.Width(60),
		asciigraph.Precision(1),
	)

	span := ""
	if n := len(m.data.WeekLabels); n > 0 {
		span = mutedStyle.Render(fmt.Sprintf("Weeks of %s through %s", m.data.WeekLabels[0], m.data.WeekLabels[n-1]))
	}

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, graph, span))
}

func (m DashboardModel) renderUpgradePrompt() string {
	title := cardTitleStyle.Render("Ready for the Next Level?")

	body := fmt.Sprintf(
		"Your distances have grown a lot since you started. Move up to %s?",
		m.data.UpgradeTarget.DisplayName(),
	)
	keys := RenderKeyHelp("a", "accept") + "   " + RenderKeyHelp("x", "not yet")

	content := lipgloss.JoinVertical(lipgloss.Left, mutedStyle.Width(56).Render(body), "", keys)
	return cardStyle.BorderForeground(secondaryColor).Render(
		lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func hasAnyDistance(distances []float64) bool {
	for _, d := range distances {
		if d > 0 {
			return true
		}
	}
	return false
}
