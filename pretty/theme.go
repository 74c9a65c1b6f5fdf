package pretty

import "github.com/charmbracelet/lipgloss"

// Theme is the color palette for lipgloss rendered output. Each color
// adapts to light and dark terminal backgrounds.
type Theme struct {
	Primary   lipgloss.AdaptiveColor
	Text      lipgloss.AdaptiveColor
	TextMuted lipgloss.AdaptiveColor
	Border    lipgloss.AdaptiveColor
}

func DefaultTheme() Theme {
	return Theme{
		Primary:   lipgloss.AdaptiveColor{Dark: "#82aaff", Light: "#2e7de9"},
		Text:      lipgloss.AdaptiveColor{Dark: "#bfc7d5", Light: "#4c505e"},
		TextMuted: lipgloss.AdaptiveColor{Dark: "#697098", Light: "#8990a3"},
		Border:    lipgloss.AdaptiveColor{Dark: "#5c6370", Light: "#c4c8da"},
	}
}
