package monitor

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rileyhilliard/senso/internal/history"
	"github.com/rileyhilliard/senso/internal/logger"
	"github.com/rileyhilliard/senso/internal/sensors"
)

// Model is the Bubble Tea model for the sensor dashboard.
type Model struct {
	source   sensors.Source
	store    *history.Store
	interval time.Duration
	timeout  time.Duration // per-capture timeout

	width      int
	height     int
	lastUpdate time.Time
	paused     bool
	quitting   bool
	showHelp   bool

	// capturing is true while a capture command is in flight. Ticks and
	// manual refreshes skip issuing another capture until the outcome
	// message lands, so a slow source never has overlapping captures.
	capturing bool

	// notice is the last capture failure, shown in the header until the
	// next successful capture.
	notice string

	// channelColors assigns each channel a stable accent color. Rebuilt
	// per category only when that category's current key set changes.
	channelColors map[sensors.Category]map[string]lipgloss.Color
	drawnKeys     map[sensors.Category][]string

	viewport      viewport.Model
	viewportReady bool
}

// tickMsg signals a periodic refresh.
type tickMsg time.Time

// snapshotMsg carries a successfully captured and parsed snapshot.
type snapshotMsg struct {
	snap *sensors.Snapshot
	time time.Time
}

// captureErrMsg carries a failed capture. Histories are left untouched.
type captureErrMsg struct {
	err error
}

// NewModel creates a dashboard model reading from the given source.
// timeout bounds each capture (0 uses the refresh interval, minimum 2s).
func NewModel(source sensors.Source, store *history.Store, interval, timeout time.Duration) Model {
	if interval <= 0 {
		interval = time.Second
	}
	if timeout <= 0 {
		timeout = interval
		if timeout < 2*time.Second {
			timeout = 2 * time.Second
		}
	}

	channelColors := make(map[sensors.Category]map[string]lipgloss.Color)
	drawnKeys := make(map[sensors.Category][]string)
	for _, cat := range sensors.Categories() {
		channelColors[cat] = make(map[string]lipgloss.Color)
	}

	return Model{
		source:        source,
		store:         store,
		interval:      interval,
		timeout:       timeout,
		capturing:     true, // Init issues the first capture

		channelColors: channelColors,
		drawnKeys:     drawnKeys,
	}
}

// Init starts the tick timer and triggers an initial capture.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.tickCmd(),
		m.captureCmd(),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		handled, cmd := m.HandleKeyMsg(msg)
		if handled {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// Reserve space for header and footer
		headerHeight := 2
		footerHeight := 2
		viewportHeight := m.height - headerHeight - footerHeight
		if viewportHeight < 1 {
			viewportHeight = 1
		}

		if !m.viewportReady {
			m.viewport = viewport.New(m.width, viewportHeight)
			m.viewport.YPosition = headerHeight
			m.viewportReady = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = viewportHeight
		}
		m.refreshViewportContent()

	case tickMsg:
		if m.paused || m.capturing {
			return m, m.tickCmd()
		}
		m.capturing = true
		return m, tea.Batch(m.tickCmd(), m.captureCmd())

	case snapshotMsg:
		m.capturing = false
		m.lastUpdate = msg.time
		m.notice = ""
		m.store.Ingest(msg.snap)
		m.reconcileColors()
		m.refreshViewportContent()

	case captureErrMsg:
		// Non-fatal: keep showing the last good data. lastUpdate stays at
		// the last successful capture. The header notice carries the
		// message; logging stays off the terminal unless debug is on.
		m.capturing = false
		m.notice = noticeLine(msg.err)
		logger.Default().Debug("sensor capture failed: %v", msg.err)
		m.refreshViewportContent()
	}

	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showHelp {
		return m.renderHelpOverlay()
	}
	return m.renderDashboard()
}

// Paused reports whether sampling is currently paused.
func (m Model) Paused() bool {
	return m.paused
}

// Notice returns the current capture failure message, if any.
func (m Model) Notice() string {
	return m.notice
}

// tickCmd returns a command that sends a tick after the refresh interval.
func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// captureCmd returns a command that captures and parses one snapshot.
func (m Model) captureCmd() tea.Cmd {
	source := m.source
	timeout := m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		raw, err := source.Capture(ctx)
		if err != nil {
			return captureErrMsg{err: err}
		}
		return snapshotMsg{snap: sensors.Parse(raw), time: time.Now()}
	}
}

// SecondsSinceUpdate returns how many seconds have passed since the last update.
func (m Model) SecondsSinceUpdate() int {
	if m.lastUpdate.IsZero() {
		return 0
	}
	return int(time.Since(m.lastUpdate).Seconds())
}

// reconcileColors reassigns channel colors for categories whose current
// key set changed in the last ingest. Unchanged categories keep their
// assignments so graphs don't shift hue between refreshes.
func (m *Model) reconcileColors() {
	for _, cat := range sensors.Categories() {
		keys := m.store.Keys(cat)
		if sameKeys(m.drawnKeys[cat], keys) {
			continue
		}

		assigned := make(map[string]lipgloss.Color, len(keys))
		for i, key := range keys {
			assigned[key] = ChannelColor(i)
		}
		m.channelColors[cat] = assigned

		drawn := make([]string, len(keys))
		copy(drawn, keys)
		m.drawnKeys[cat] = drawn
	}
}

// colorFor returns the assigned color for a channel, falling back to the
// first palette color for channels absent from the current snapshot.
func (m Model) colorFor(cat sensors.Category, key string) lipgloss.Color {
	if color, ok := m.channelColors[cat][key]; ok {
		return color
	}
	return ChannelColor(0)
}

// noticeLine condenses an error to a single header-friendly line.
// Structured errors render multi-line with a leading failure symbol; the
// header only has room for the first line.
func noticeLine(err error) string {
	line := err.Error()
	if idx := strings.IndexByte(line, '\n'); idx >= 0 {
		line = line[:idx]
	}
	return strings.TrimSpace(strings.TrimPrefix(line, "✗"))
}

// sameKeys reports whether two sorted key slices are identical.
func sameKeys(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// refreshViewportContent re-renders the panel body into the viewport.
func (m *Model) refreshViewportContent() {
	if !m.viewportReady {
		return
	}
	m.viewport.SetContent(m.renderPanels())
}
