package monitor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Dashboard color palette
const (
	// Background colors
	ColorDarkBg    = lipgloss.Color("#0A0A0F") // Deep void
	ColorSurfaceBg = lipgloss.Color("#12121A") // Dark surface
	ColorBorder    = lipgloss.Color("#2A2A4A") // Glass border (purple tint)

	// Semantic colors for readings - neon style
	ColorHealthy  = lipgloss.Color("#39FF14") // Neon green
	ColorWarning  = lipgloss.Color("#FFAA00") // Electric amber
	ColorCritical = lipgloss.Color("#FF0055") // Hot red-pink

	// Text colors
	ColorTextPrimary   = lipgloss.Color("#FFFFFF") // Pure white
	ColorTextSecondary = lipgloss.Color("#B4B4D0") // Lavender gray
	ColorTextMuted     = lipgloss.Color("#6B6B8D") // Purple-gray

	// Accent colors
	ColorAccent    = lipgloss.Color("#FF2E97") // Neon pink
	ColorAccentDim = lipgloss.Color("#BF40FF") // Neon purple
)

// channelPalette are the accent colors cycled across channels within a
// panel, so adjacent graphs stay visually distinct.
var channelPalette = []lipgloss.Color{
	lipgloss.Color("#00FFFF"), // Neon cyan
	lipgloss.Color("#FF2E97"), // Neon pink
	lipgloss.Color("#39FF14"), // Neon green
	lipgloss.Color("#FFAA00"), // Electric amber
	lipgloss.Color("#BF40FF"), // Neon purple
	lipgloss.Color("#00AAFF"), // Electric blue
}

// Temperature thresholds in °C for value coloring.
const (
	TempWarningThreshold  = 70.0
	TempCriticalThreshold = 90.0
)

// Fan load thresholds in percent of rated capacity.
const (
	FanWarningThreshold  = 70.0
	FanCriticalThreshold = 90.0
)

// Base styles for the dashboard
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary).
			Background(ColorSurfaceBg).
			Bold(true).
			Padding(0, 1)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Padding(0, 1)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary)

	NoticeStyle = lipgloss.NewStyle().
			Foreground(ColorCritical)

	PausedStyle = lipgloss.NewStyle().
			Foreground(ColorWarning).
			Bold(true)
)

// TempColor returns the color for a temperature reading in °C.
func TempColor(celsius float64) lipgloss.Color {
	switch {
	case celsius >= TempCriticalThreshold:
		return ColorCritical
	case celsius >= TempWarningThreshold:
		return ColorWarning
	default:
		return ColorHealthy
	}
}

// FanColor returns the color for a fan load percentage.
func FanColor(percent float64) lipgloss.Color {
	switch {
	case percent >= FanCriticalThreshold:
		return ColorCritical
	case percent >= FanWarningThreshold:
		return ColorWarning
	default:
		return ColorHealthy
	}
}

// TempStyle returns a style with the appropriate foreground for a temperature.
func TempStyle(celsius float64) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(TempColor(celsius))
}

// ChannelColor returns the palette color for a channel's position within
// its panel.
func ChannelColor(index int) lipgloss.Color {
	if index < 0 {
		index = 0
	}
	return channelPalette[index%len(channelPalette)]
}

// SectionHeader renders a section header with the title on the left and unit on the right.
// Format: ╭─ Title ────────────────────────────────────── Unit ╮
func SectionHeader(title, unit string, width int) string {
	if width < 10 {
		width = 10
	}

	// Left: "╭─ " + title + " ", right: " " + unit + " ╮", measured
	// ANSI-aware via lipgloss.Width.
	leftWidth := 3 + lipgloss.Width(title) + 1
	rightWidth := 1 + lipgloss.Width(unit) + 2

	fillWidth := width - leftWidth - rightWidth
	if fillWidth < 1 {
		fillWidth = 1
	}

	middle := strings.Repeat("─", fillWidth)

	borderStyle := lipgloss.NewStyle().Foreground(ColorBorder)
	titleStyle := lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)
	unitStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#00FFFF")).Bold(true)

	return borderStyle.Render("╭─ ") +
		titleStyle.Render(title) +
		borderStyle.Render(" "+middle+" ") +
		unitStyle.Render(unit) +
		borderStyle.Render(" ╮")
}

// SectionFooter renders the bottom border of a section.
// Format: ╰────────────────────────────────────────────────────╯
func SectionFooter(width int) string {
	if width < 2 {
		width = 2
	}

	middle := strings.Repeat("─", width-2)

	borderStyle := lipgloss.NewStyle().Foreground(ColorBorder)
	return borderStyle.Render("╰" + middle + "╯")
}

// SectionContentLine renders a content line with left and right borders, properly padded to width.
// Format: │ content                                              │
func SectionContentLine(content string, width int) string {
	if width < 4 {
		width = 4
	}

	borderStyle := lipgloss.NewStyle().Foreground(ColorBorder)

	contentWidth := lipgloss.Width(content)

	// Inner width excludes "│ " on the left and " │" on the right.
	innerWidth := width - 4

	padding := innerWidth - contentWidth
	if padding < 0 {
		padding = 0
	}

	return borderStyle.Render("│") + " " + content + strings.Repeat(" ", padding) + " " + borderStyle.Render("│")
}
