package style

import "github.com/charmbracelet/lipgloss"

// Semantic colors for report boxes and banners.
var (
	Text         = lipgloss.Color("#cdd6f4")
	AccentColor  = lipgloss.Color("#cba6f7")
	SuccessColor = lipgloss.Color("#a6e3a1")
	WarningColor = lipgloss.Color("#f9e2af")
)
