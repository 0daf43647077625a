// Package style provides a functional API for composing and applying lipgloss-based terminal styles.
package style

import (
	"github.com/charmbracelet/lipgloss"
)

// New returns an empty lipgloss.Style used as a foundation for visual composition.
func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Fg returns a rendering function that applies the specified foreground color to a string.
func Fg(c lipgloss.Color) func(string) string {
	return func(s string) string { return New().Foreground(c).Render(s) }
}

// Standard text transformation helpers.
var (
	Faint  = func(s string) string { return New().Faint(true).Render(s) }
	Bold   = func(s string) string { return New().Bold(true).Render(s) }
	Italic = func(s string) string { return New().Italic(true).Render(s) }
)

// Box renders body inside a rounded border tinted with c.
func Box(c lipgloss.Color, title, body string) string {
	box := New().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(c).
		Padding(0, 1)

	return box.Render(lipgloss.JoinVertical(lipgloss.Left,
		New().Bold(true).Foreground(c).Render(title),
		New().Foreground(Text).Render(body),
	))
}
