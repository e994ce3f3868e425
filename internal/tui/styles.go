package tui

import (
	"github.com/charmbracelet/lipgloss"

	"langmap/internal/palette"
)

// Styles
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#7C3AED")
	errorFg   = lipgloss.Color("#F87171")
	borderCol = lipgloss.Color("#243141")

	appStyle     = lipgloss.NewStyle().Foreground(baseFg)
	boxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
	titleStyle   = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	headingStyle = lipgloss.NewStyle().Foreground(baseFg).Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(baseDimFg)
	errorStyle   = lipgloss.NewStyle().Foreground(errorFg).Bold(true)
	cursorStyle  = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
)

func swatch(c palette.Color) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(string(c))).Render("■")
}
