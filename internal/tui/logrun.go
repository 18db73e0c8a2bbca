package tui

import (
	"fmt"

	"runright/internal/service"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Log-run form field indices
const (
	lrDistance = iota
	lrDuration
	lrDifficulty
	lrPain
	lrAreas
	lrNotes
	lrFieldCount
)

// LogRunModel is the run entry form model
type LogRunModel struct {
	coach    *service.CoachService
	units    Units
	inputs   []textinput.Model
	focused  int
	editing  bool
	feedback *service.RunFeedback
	errMsg   string
}

// NewLogRunModel creates a new log-run model
func NewLogRunModel(coach *service.CoachService, units Units) LogRunModel {
	inputs := make([]textinput.Model, lrFieldCount)
	inputs[lrDistance] = newFormInput("e.g. 5.2", 6)
	inputs[lrDuration] = newFormInput("minutes or mm:ss", 8)
	inputs[lrDifficulty] = newFormInput("1-5, blank to skip", 1)
	inputs[lrPain] = newFormInput("0-10", 2)
	inputs[lrAreas] = newFormInput("e.g. Knees, Shins", 0)
	inputs[lrNotes] = newFormInput("optional", 0)

	inputs[lrDistance].Focus()

	return LogRunModel{
		coach:   coach,
		units:   units,
		inputs:  inputs,
		editing: true,
	}
}

// Init initializes the log-run form
func (m LogRunModel) Init() tea.Cmd {
	return textinput.Blink
}

type runSavedMsg struct {
	feedback *service.RunFeedback
	err      error
}

// Update handles messages
func (m LogRunModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case runSavedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			m.editing = true
			return m, nil
		}
		m.feedback = msg.feedback
		m.editing = false
		return m, nil

	case tea.KeyMsg:
		if m.feedback != nil {
			switch msg.String() {
			case "enter", "esc":
				return m, func() tea.Msg { return runFlowDoneMsg{} }
			}
			return m, nil
		}

		switch msg.String() {
		case "esc":
			m.editing = false
			return m, func() tea.Msg { return runFlowDoneMsg{} }
		case "tab", "down":
			m.focusRunField((m.focused + 1) % lrFieldCount)
			return m, nil
		case "shift+tab", "up":
			m.focusRunField((m.focused + lrFieldCount - 1) % lrFieldCount)
			return m, nil
		case "enter":
			if m.focused < lrFieldCount-1 {
				m.focusRunField(m.focused + 1)
				return m, nil
			}
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

func (m *LogRunModel) focusRunField(i int) {
	m.inputs[m.focused].Blur()
	m.focused = i
	m.inputs[m.focused].Focus()
}

func (m LogRunModel) submit() (tea.Model, tea.Cmd) {
	distance, err := service.ParseDistanceKm(m.inputs[lrDistance].Value())
	if err != nil {
		m.errMsg = err.Error()
		return m, nil
	}
	distanceKm := m.units.ToKm(distance)

	duration, err := service.ParseDurationMinutes(m.inputs[lrDuration].Value())
	if err != nil {
		m.errMsg = err.Error()
		return m, nil
	}

	difficulty, err := parseRatingField("difficulty", m.inputs[lrDifficulty].Value(), 0)
	if err != nil {
		m.errMsg = err.Error()
		return m, nil
	}
	pain, err := parseRatingField("pain level", m.inputs[lrPain].Value(), 0)
	if err != nil {
		m.errMsg = err.Error()
		return m, nil
	}

	in := service.RunInput{
		DistanceKm:      distanceKm,
		DurationMinutes: duration,
		Difficulty:      difficulty,
		PainLevel:       pain,
		PainAreas:       service.ParsePainAreas(m.inputs[lrAreas].Value()),
		Notes:           m.inputs[lrNotes].Value(),
	}

	m.errMsg = ""
	return m, func() tea.Msg {
		feedback, err := m.coach.LogRun(in)
		return runSavedMsg{feedback: feedback, err: err}
	}
}

// View renders the log-run form or the post-save pace feedback
func (m LogRunModel) View() string {
	if m.feedback != nil {
		return m.renderFeedback()
	}

	title := cardTitleStyle.Render("Log a Run")

	labels := []string{
		fmt.Sprintf("Distance (%s)", m.units.DistanceLabel()),
		"Duration",
		"How hard did it feel? (1-5)",
		"Any pain? (0-10)",
		"Pain areas (comma separated, optional)",
		"Notes",
	}

	var lines []string
	for i, input := range m.inputs {
		style := mutedStyle
		if i == m.focused {
			style = helpKeyStyle
		}
		lines = append(lines, style.Render(labels[i]), input.View(), "")
	}

	if m.errMsg != "" {
		lines = append(lines, errorStyle.Render(m.errMsg), "")
	}

	lines = append(lines, statusStyle.Render("tab/enter next field, enter on last saves, esc cancels"))

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(56).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (m LogRunModel) renderFeedback() string {
	title := cardTitleStyle.Render("Run Saved")
	fb := m.feedback

	var lines []string
	if fb.Pace.Valid() {
		lines = append(lines, RenderMetric("Pace", fb.Pace.Format(m.units.PaceMiles())))
	}
	if fb.HasBaseline {
		lines = append(lines,
			RenderMetric("vs. Your Usual", fb.Category.DisplayName()),
			"",
			mutedStyle.Width(50).Render(fb.Description),
			"",
			successStyle.Render(fb.Encouragement),
		)
	} else {
		lines = append(lines, "", mutedStyle.Width(50).Render(fb.Description))
	}

	lines = append(lines, "", statusStyle.Render("Press enter to go back to the dashboard"))

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(56).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}
