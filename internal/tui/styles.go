// Package tui renders emission results for terminals: styled static views
// for CLI output and an interactive Bubble Tea dashboard.
package tui

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	ColorHeader  = lipgloss.Color("39")  // blue
	ColorOK      = lipgloss.Color("42")  // green
	ColorWarning = lipgloss.Color("214") // orange
	ColorError   = lipgloss.Color("196") // red
	ColorMuted   = lipgloss.Color("245") // gray
	ColorBorder  = lipgloss.Color("240")
)

// Shared styles.
var (
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorHeader)
	LabelStyle  = lipgloss.NewStyle().Foreground(ColorMuted)
	ValueStyle  = lipgloss.NewStyle().Bold(true)
	OKStyle     = lipgloss.NewStyle().Foreground(ColorOK).Bold(true)
	WarnStyle   = lipgloss.NewStyle().Foreground(ColorWarning).Bold(true)
	InfoStyle   = lipgloss.NewStyle().Foreground(ColorMuted).Italic(true)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)
)

// Icons.
const (
	IconLeaf    = "🌱"
	IconWarning = "⚠"
	IconCheck   = "✓"
)
