package monitor

import tea "github.com/charmbracelet/bubbletea"

// Key bindings as constants for consistency.
const (
	KeyQuit          = "q"
	KeyQuitAlt       = "ctrl+c"
	KeyRefresh       = "r"
	KeyToggleSummary = "f2"
	KeyToggleAlt     = "t"
	KeyCycleTheme    = "f3"
	KeyCycleThemeAlt = "c"
	KeyToggleHelp    = "?"
	KeyCollapse      = "esc"
)

// HandleKeyMsg processes keyboard input and returns updated model state and command.
// Returns true if the key was handled, false otherwise. Unhandled keys
// (arrows, PgUp/PgDn) scroll the viewport.
func (m *Model) HandleKeyMsg(msg tea.KeyMsg) (bool, tea.Cmd) {
	key := msg.String()

	// Help toggle takes priority
	if key == KeyToggleHelp {
		m.showHelp = !m.showHelp
		return true, nil
	}

	if m.showHelp && key == KeyCollapse {
		m.showHelp = false
		return true, nil
	}

	switch key {
	case KeyQuit, KeyQuitAlt:
		m.quitting = true
		return true, tea.Quit

	case KeyRefresh:
		return true, m.refresh()

	case KeyToggleSummary, KeyToggleAlt:
		m.summary = !m.summary
		if m.viewportReady {
			m.viewport.GotoTop()
		}
		return true, m.refresh()

	case KeyCycleTheme, KeyCycleThemeAlt:
		m.styles = NewStyles(m.themes.Next())
		m.updateViewportContent()
		return true, nil
	}

	return false, nil
}
