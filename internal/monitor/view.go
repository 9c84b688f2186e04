package monitor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rileyhilliard/senso/internal/sensors"
)

// Sparkline and bar widths inside panel rows.
const (
	graphWidth  = 30
	barWidth    = 20
	labelWidth  = 26
	panelMinCol = 60
)

// renderDashboard renders the complete dashboard view.
func (m Model) renderDashboard() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	if m.viewportReady {
		b.WriteString(m.viewport.View())
	} else {
		b.WriteString(m.renderPanels())
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

// renderHeader renders the dashboard header with source and update info.
func (m Model) renderHeader() string {
	var updateText string
	switch s := m.SecondsSinceUpdate(); s {
	case 0:
		updateText = "just now"
	case 1:
		updateText = "1s ago"
	default:
		updateText = fmt.Sprintf("%ds ago", s)
	}

	title := lipgloss.NewStyle().
		Foreground(ColorAccent).
		Bold(true).
		Render("senso")

	stats := lipgloss.NewStyle().
		Foreground(ColorTextSecondary).
		Render(fmt.Sprintf(" | %s | every %s | last update %s", m.source.Describe(), m.interval, updateText))

	header := title + stats
	if m.paused {
		header += PausedStyle.Render(" | PAUSED")
	}
	if m.notice != "" {
		header += NoticeStyle.Render(" | " + m.notice)
	}

	return HeaderStyle.Render(header)
}

// renderPanels renders one section per category that has channels.
func (m Model) renderPanels() string {
	width := m.panelWidth()

	var panels []string
	for _, cat := range sensors.Categories() {
		keys := m.store.SeenKeys(cat)
		if len(keys) == 0 {
			continue
		}
		panels = append(panels, m.renderPanel(cat, keys, width))
	}

	if len(panels) == 0 {
		return LabelStyle.Render("Waiting for sensor data...")
	}

	return strings.Join(panels, "\n")
}

// panelWidth determines panel width from the terminal width.
func (m Model) panelWidth() int {
	if m.width == 0 {
		return 100
	}
	width := m.width - 2
	if width < panelMinCol {
		width = panelMinCol
	}
	return width
}

// renderPanel renders one category section with a row per channel.
func (m Model) renderPanel(cat sensors.Category, keys []string, width int) string {
	var lines []string
	lines = append(lines, SectionHeader(cat.String(), cat.Unit(), width))

	for _, key := range keys {
		var row string
		if cat == sensors.FanSpeed {
			row = m.renderFanRow(key)
		} else {
			row = m.renderTempRow(cat, key)
		}
		lines = append(lines, SectionContentLine(row, width))
	}

	lines = append(lines, SectionFooter(width))
	return strings.Join(lines, "\n")
}

// renderTempRow renders a temperature channel: name, sparkline, current
// value, and min/peak over the retained history.
func (m Model) renderTempRow(cat sensors.Category, key string) string {
	series := m.store.Series(cat)[key]
	spark := RenderScaledSparkline(series, graphWidth, m.colorFor(cat, key))

	var value string
	if latest, ok := m.store.Latest(cat, key); ok {
		value = TempStyle(latest).Render(fmt.Sprintf("%6.1f°C", latest))
	} else {
		value = LabelStyle.Render("     --")
	}

	var stats string
	if min, peak, avg, ok := m.store.Stats(cat, key); ok {
		stats = LabelStyle.Render(fmt.Sprintf("  min %.1f  avg %.1f  peak %.1f", min, avg, peak))
	}

	return LabelStyle.Render(padRight(key, labelWidth)) + " " + spark + " " + value + stats
}

// renderFanRow renders a fan channel: name, gradient load bar, RPM,
// learned capacity, and load percentage.
func (m Model) renderFanRow(key string) string {
	capacity := m.store.FanCapacity(key)

	var bar, value string
	if rpm, ok := m.store.Latest(sensors.FanSpeed, key); ok {
		percent := m.store.PercentOf(key, rpm)
		bar = RenderGradientBar(barWidth, percent)
		value = ValueStyle.Render(fmt.Sprintf("%5.0f RPM", rpm)) +
			LabelStyle.Render(fmt.Sprintf(" / %d max ", capacity)) +
			lipgloss.NewStyle().Foreground(FanColor(percent)).Render(fmt.Sprintf("%5.1f%%", percent))
	} else {
		bar = RenderGradientBar(barWidth, 0)
		value = LabelStyle.Render("   -- RPM")
	}

	return LabelStyle.Render(padRight(key, labelWidth)) + " " + bar + " " + value
}

// renderFooter renders the keyboard help footer.
func (m Model) renderFooter() string {
	hints := []string{
		"q quit",
		"p pause",
		"r refresh",
		"↑↓ scroll",
		"? help",
	}

	return FooterStyle.Render(strings.Join(hints, " | "))
}

// padRight pads or truncates a string to the given display width.
func padRight(s string, width int) string {
	runes := []rune(s)
	if len(runes) > width {
		return string(runes[:width-1]) + "…"
	}
	return s + strings.Repeat(" ", width-len(runes))
}
