package tui

import (
	"fmt"
	"strconv"
	"strings"

	"runright/internal/service"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Check-in form field indices
const (
	ciSoreness = iota
	ciSleep
	ciPain
	ciAreas
	ciFieldCount
)

// CheckInModel is the daily check-in form model
type CheckInModel struct {
	coach   *service.CoachService
	inputs  []textinput.Model
	focused int
	editing bool
	saved   bool
	errMsg  string
}

// NewCheckInModel creates a new check-in model
func NewCheckInModel(coach *service.CoachService) CheckInModel {
	inputs := make([]textinput.Model, ciFieldCount)
	inputs[ciSoreness] = newFormInput("0-10", 2)
	inputs[ciSleep] = newFormInput("1-5", 1)
	inputs[ciPain] = newFormInput("0-10", 2)
	inputs[ciAreas] = newFormInput("e.g. Knees, Shins", 0)

	inputs[ciSoreness].Focus()

	return CheckInModel{
		coach:   coach,
		inputs:  inputs,
		editing: true,
	}
}

func newFormInput(placeholder string, charLimit int) textinput.Model {
	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = placeholder
	input.CharLimit = charLimit
	input.Cursor.SetMode(cursor.CursorBlink)
	return input
}

// Init initializes the check-in form
func (m CheckInModel) Init() tea.Cmd {
	return textinput.Blink
}

type checkInSavedMsg struct {
	err error
}

// Update handles messages
func (m CheckInModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case checkInSavedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			m.editing = true
			return m, nil
		}
		m.saved = true
		m.editing = false
		return m, nil

	case tea.KeyMsg:
		if m.saved {
			switch msg.String() {
			case "enter", "esc":
				return m, func() tea.Msg { return checkInDoneMsg{} }
			}
			return m, nil
		}

		switch msg.String() {
		case "esc":
			m.editing = false
			return m, func() tea.Msg { return checkInDoneMsg{} }
		case "tab", "down":
			m.focusField((m.focused + 1) % ciFieldCount)
			return m, nil
		case "shift+tab", "up":
			m.focusField((m.focused + ciFieldCount - 1) % ciFieldCount)
			return m, nil
		case "enter":
			if m.focused < ciFieldCount-1 {
				m.focusField(m.focused + 1)
				return m, nil
			}
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

func (m *CheckInModel) focusField(i int) {
	m.inputs[m.focused].Blur()
	m.focused = i
	m.inputs[m.focused].Focus()
}

func (m CheckInModel) submit() (tea.Model, tea.Cmd) {
	soreness, err := parseRatingField("soreness", m.inputs[ciSoreness].Value(), 0)
	if err != nil {
		m.errMsg = err.Error()
		return m, nil
	}
	sleep, err := parseRatingField("sleep quality", m.inputs[ciSleep].Value(), 3)
	if err != nil {
		m.errMsg = err.Error()
		return m, nil
	}
	pain, err := parseRatingField("pain level", m.inputs[ciPain].Value(), 0)
	if err != nil {
		m.errMsg = err.Error()
		return m, nil
	}
	areas := service.ParsePainAreas(m.inputs[ciAreas].Value())

	m.errMsg = ""
	return m, func() tea.Msg {
		return checkInSavedMsg{err: m.coach.SaveCheckIn(soreness, sleep, pain, areas)}
	}
}

// parseRatingField parses an integer rating, using a default for blanks.
func parseRatingField(name, s string, blank int) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return blank, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s must be a whole number, got %q", name, s)
	}
	return v, nil
}

// View renders the check-in form
func (m CheckInModel) View() string {
	if m.saved {
		title := cardTitleStyle.Render("Check-In Saved")
		body := successStyle.Render("Today's check-in is in. Your recommendation now reflects it.")
		hint := statusStyle.Render("Press enter to go back to the dashboard")
		return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, body, hint))
	}

	title := cardTitleStyle.Render("Daily Check-In")

	labels := []string{
		"Muscle soreness (0-10)",
		"Sleep quality (1-5)",
		"Pain right now (0-10)",
		"Pain areas (comma separated, optional)",
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
