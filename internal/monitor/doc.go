// Package monitor implements a real-time TUI dashboard for hardware sensor
// readings.
//
// The dashboard displays CPU temperatures, fan speeds, storage temperatures,
// and other temperature channels parsed from the lm-sensors `sensors` command,
// with color-coded values and rolling sparkline graphs.
//
// # Architecture
//
// The package uses the Bubble Tea framework, which follows The Elm Architecture
// (Model-Update-View pattern):
//
//   - Model: Holds application state (histories, channel colors, scroll position)
//   - Update: Processes messages (keystrokes, tick events, new snapshots)
//   - View: Renders the current state to a string for display
//
// # Message Flow
//
// The dashboard operates on a tick-based refresh cycle:
//
//  1. tickMsg fires at the configured interval (default 1s)
//  2. captureCmd() runs the sensors command and parses its output
//  3. snapshotMsg arrives with the parsed snapshot, which is ingested into
//     the history store
//  4. View() re-renders the dashboard with new data
//
// A failed capture produces a captureErrMsg instead: the history store is
// left untouched and a notice is shown in the header until the next
// successful capture.
//
// The Update loop is the only writer to the history store, so reads for
// rendering never race an ingest.
//
// # Panels and Channel Colors
//
// Each category renders as one panel listing its channels. Channels keep a
// stable accent color for their graphs; colors are reassigned only when the
// category's current key set changes between snapshots, so a channel's
// graph does not shift hue on every refresh.
//
// # Keyboard Shortcuts
//
// Navigation and control is handled via keybindings defined in keybindings.go:
//
//	q, Ctrl+C   - Quit
//	r           - Force refresh
//	p, Space    - Pause / resume sampling
//	j/k, ↑/↓    - Scroll
//	?           - Toggle help overlay
//	Esc         - Close help
package monitor
