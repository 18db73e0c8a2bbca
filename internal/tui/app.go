package tui

import (
	"runright/internal/service"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Screen identifiers
type Screen int

const (
	ScreenDashboard Screen = iota
	ScreenHistory
	ScreenLogRun
	ScreenCheckIn
	ScreenPaces
	ScreenHelp
)

// App is the root Bubble Tea model
type App struct {
	screen     Screen
	prevScreen Screen

	// Screen models
	dashboard DashboardModel
	history   HistoryModel
	logRun    LogRunModel
	checkIn   CheckInModel
	paces     PacesModel
	help      HelpModel

	coach *service.CoachService
	units Units

	// Window dimensions
	width  int
	height int
}

// NewApp creates a new App with all dependencies
func NewApp(coach *service.CoachService, units Units) *App {
	return &App{
		screen:    ScreenDashboard,
		coach:     coach,
		units:     units,
		dashboard: NewDashboardModel(coach, units),
		history:   NewHistoryModel(coach, units),
		logRun:    NewLogRunModel(coach, units),
		checkIn:   NewCheckInModel(coach),
		paces:     NewPacesModel(coach, units),
		help:      NewHelpModel(),
	}
}

// Init initializes the app
func (a *App) Init() tea.Cmd {
	return a.dashboard.Init()
}

// editing reports whether the active screen is capturing text input, in
// which case global navigation keys must not fire.
func (a *App) editing() bool {
	switch a.screen {
	case ScreenLogRun:
		return a.logRun.editing
	case ScreenCheckIn:
		return a.checkIn.editing
	}
	return false
}

// Update handles messages
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !a.editing() {
			switch msg.String() {
			case "q", "ctrl+c":
				return a, tea.Quit
			case "1":
				a.screen = ScreenDashboard
				a.dashboard = NewDashboardModel(a.coach, a.units)
				return a, a.dashboard.Init()
			case "2":
				a.screen = ScreenHistory
				return a, a.history.Init()
			case "3", "l":
				if a.screen != ScreenLogRun {
					a.screen = ScreenLogRun
					a.logRun = NewLogRunModel(a.coach, a.units)
					return a, a.logRun.Init()
				}
			case "4", "c":
				if a.screen != ScreenCheckIn {
					a.screen = ScreenCheckIn
					a.checkIn = NewCheckInModel(a.coach)
					return a, a.checkIn.Init()
				}
			case "5", "p":
				a.screen = ScreenPaces
				return a, a.paces.Init()
			case "?":
				a.prevScreen = a.screen
				a.screen = ScreenHelp
				return a, nil
			case "esc":
				if a.screen == ScreenHelp {
					a.screen = a.prevScreen
					return a, nil
				}
			}
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

	case runFlowDoneMsg, checkInDoneMsg:
		// Back to a fresh dashboard after logging or checking in
		a.screen = ScreenDashboard
		a.dashboard = NewDashboardModel(a.coach, a.units)
		return a, a.dashboard.Init()
	}

	// Delegate to current screen
	var cmd tea.Cmd
	switch a.screen {
	case ScreenDashboard:
		var m tea.Model
		m, cmd = a.dashboard.Update(msg)
		a.dashboard = m.(DashboardModel)
	case ScreenHistory:
		var m tea.Model
		m, cmd = a.history.Update(msg)
		a.history = m.(HistoryModel)
	case ScreenLogRun:
		var m tea.Model
		m, cmd = a.logRun.Update(msg)
		a.logRun = m.(LogRunModel)
	case ScreenCheckIn:
		var m tea.Model
		m, cmd = a.checkIn.Update(msg)
		a.checkIn = m.(CheckInModel)
	case ScreenPaces:
		var m tea.Model
		m, cmd = a.paces.Update(msg)
		a.paces = m.(PacesModel)
	case ScreenHelp:
		var m tea.Model
		m, cmd = a.help.Update(msg)
		a.help = m.(HelpModel)
	}

	return a, cmd
}

// View renders the app
func (a *App) View() string {
	header := a.renderHeader()
	nav := a.renderNav()

	var content string
	switch a.screen {
	case ScreenDashboard:
		content = a.dashboard.View()
	case ScreenHistory:
		content = a.history.View()
	case ScreenLogRun:
		content = a.logRun.View()
	case ScreenCheckIn:
		content = a.checkIn.View()
	case ScreenPaces:
		content = a.paces.View()
	case ScreenHelp:
		content = a.help.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, nav, content)
}

func (a *App) renderHeader() string {
	return headerStyle.Render("RunRight Training Coach")
}

func (a *App) renderNav() string {
	items := []struct {
		key    string
		label  string
		screen Screen
	}{
		{"1", "Dashboard", ScreenDashboard},
		{"2", "History", ScreenHistory},
		{"3", "Log Run", ScreenLogRun},
		{"4", "Check-In", ScreenCheckIn},
		{"5", "Paces", ScreenPaces},
		{"?", "Help", ScreenHelp},
	}

	var nav string
	for i, item := range items {
		if i > 0 {
			nav += "  "
		}

		label := "[" + item.key + "] " + item.label
		if a.screen == item.screen {
			nav += navActiveStyle.Render(label)
		} else {
			nav += navInactiveStyle.Render(label)
		}
	}

	nav += "  " + navInactiveStyle.Render("[q] Quit")

	return navStyle.Render(nav)
}

// runFlowDoneMsg is sent when the log-run flow finishes
type runFlowDoneMsg struct{}

// checkInDoneMsg is sent when the check-in flow finishes
type checkInDoneMsg struct{}
