package tui

import "charm.land/lipgloss/v2"

var (
	ColorMatrix   = lipgloss.Color("#00AA00") // Matrix green
	ColorDarkGray = lipgloss.Color("#2a2a2a") // Dark gray
	ColorDim      = lipgloss.Color("#6c6c6c")
	ColorWarn     = lipgloss.Color("#d7875f")
	ColorBorder   = ColorDarkGray
)

// Styles groups the lipgloss styles used by the manuscript view.
type Styles struct {
	Cursor     lipgloss.Style
	Border     lipgloss.Style
	StatusText lipgloss.Style
	StatusWarn lipgloss.Style
}

// DefaultStyles returns the built-in palette.
func DefaultStyles() Styles {
	return Styles{
		Cursor:     lipgloss.NewStyle().Reverse(true).Foreground(ColorMatrix),
		Border:     lipgloss.NewStyle().Foreground(ColorBorder),
		StatusText: lipgloss.NewStyle().Foreground(ColorDim),
		StatusWarn: lipgloss.NewStyle().Foreground(ColorWarn),
	}
}
