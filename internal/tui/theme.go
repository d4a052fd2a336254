package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme colors assistant output. A plain Theme passes text through untouched.
type Theme struct {
	plain   bool
	success lipgloss.Style
	failure lipgloss.Style
	warning lipgloss.Style
	label   lipgloss.Style
	name    lipgloss.Style
	value   lipgloss.Style
	command lipgloss.Style
}

// DefaultTheme returns the colored theme: names green, phones and dates
// yellow, errors red.
func DefaultTheme() Theme {
	return Theme{
		success: lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "2", Dark: "10"}),
		failure: lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "1", Dark: "9"}),
		warning: lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "3", Dark: "11"}),
		label:   lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "252"}),
		name:    lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "2", Dark: "10"}).Bold(true),
		value:   lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "3", Dark: "11"}),
		command: lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "4", Dark: "12"}),
	}
}

// PlainTheme returns a theme that applies no styling.
func PlainTheme() Theme {
	return Theme{plain: true}
}

// paint renders a single line with s. Multi-line text must be painted line
// by line; lipgloss pads multi-line blocks to a common width.
func (t Theme) paint(s lipgloss.Style, text string) string {
	if t.plain || text == "" {
		return text
	}
	return s.Render(text)
}
