package monitor

import tea "github.com/charmbracelet/bubbletea"

// Key bindings as constants for consistency.
const (
	KeyQuit        = "q"
	KeyQuitAlt     = "ctrl+c"
	KeyRefresh     = "r"
	KeyPause       = "p"
	KeyPauseAlt    = " "
	KeyScrollUp    = "up"
	KeyScrollUpK   = "k"
	KeyScrollDown  = "down"
	KeyScrollDownJ = "j"
	KeyScrollTop   = "home"
	KeyScrollEnd   = "end"
	KeyClose       = "esc"
	KeyToggleHelp  = "?"
)

// HandleKeyMsg processes keyboard input and returns updated model state and command.
// Returns true if the key was handled, false otherwise.
func (m *Model) HandleKeyMsg(msg tea.KeyMsg) (bool, tea.Cmd) {
	key := msg.String()

	// Help toggle takes priority
	if key == KeyToggleHelp {
		m.showHelp = !m.showHelp
		return true, nil
	}

	// If help is showing, Esc closes it
	if m.showHelp && key == KeyClose {
		m.showHelp = false
		return true, nil
	}

	switch key {
	case KeyQuit, KeyQuitAlt:
		m.quitting = true
		return true, tea.Quit

	case KeyRefresh:
		// Manual refresh works even while paused, but not while a
		// capture is already in flight.
		if m.capturing {
			return true, nil
		}
		m.capturing = true
		return true, m.captureCmd()

	case KeyPause, KeyPauseAlt:
		m.paused = !m.paused
		return true, nil

	case KeyScrollUp, KeyScrollUpK:
		if m.viewportReady {
			m.viewport.ScrollUp(1)
		}
		return true, nil

	case KeyScrollDown, KeyScrollDownJ:
		if m.viewportReady {
			m.viewport.ScrollDown(1)
		}
		return true, nil

	case KeyScrollTop:
		if m.viewportReady {
			m.viewport.GotoTop()
		}
		return true, nil

	case KeyScrollEnd:
		if m.viewportReady {
			m.viewport.GotoBottom()
		}
		return true, nil
	}

	return false, nil
}
