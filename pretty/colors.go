package pretty

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ColorMode represents the level of color support available in the terminal
type ColorMode int

const (
	// ColorModeNone indicates no color support (NO_COLOR set or dumb terminal)
	ColorModeNone ColorMode = iota
	// ColorModeBasic indicates 16 basic ANSI colors
	ColorModeBasic
	// ColorMode256 indicates 256-color palette support
	ColorMode256
	// ColorModeTrueColor indicates 24-bit RGB (16.7 million colors) support
	ColorModeTrueColor
)

var (
	detectedColorMode ColorMode
	colorModeDetected bool
)

// DetectColorMode checks environment variables to determine terminal color capabilities.
// Checks in order: NO_COLOR, COLORTERM, TERM.
func DetectColorMode() ColorMode {
	if colorModeDetected {
		return detectedColorMode
	}
	detectedColorMode = detectColorMode()
	colorModeDetected = true
	return detectedColorMode
}

func detectColorMode() ColorMode {
	if os.Getenv("NO_COLOR") != "" {
		return ColorModeNone
	}
	colorterm := os.Getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return ColorModeTrueColor
	}
	term := os.Getenv("TERM")
	if term == "" || term == "dumb" {
		return ColorModeNone
	}
	if strings.Contains(term, "256color") {
		return ColorMode256
	}
	return ColorModeBasic
}

// TreeStyles holds lipgloss styles used when package outlines are rendered
// as trees. Every style is plain when colors are off.
type TreeStyles struct {
	Root       lipgloss.Style
	Item       lipgloss.Style
	Enumerator lipgloss.Style
	Repeat     lipgloss.Style
}

func NewTreeStyles() TreeStyles {
	plain := TreeStyles{
		Root:       lipgloss.NewStyle(),
		Item:       lipgloss.NewStyle(),
		Enumerator: lipgloss.NewStyle(),
		Repeat:     lipgloss.NewStyle(),
	}
	if Colorless || Disabled || DetectColorMode() == ColorModeNone {
		return plain
	}
	theme := DefaultTheme()
	return TreeStyles{
		Root:       lipgloss.NewStyle().Bold(true).Foreground(theme.Primary),
		Item:       lipgloss.NewStyle().Foreground(theme.Text),
		Enumerator: lipgloss.NewStyle().Foreground(theme.Border).MarginRight(1),
		Repeat:     lipgloss.NewStyle().Italic(true).Foreground(theme.TextMuted),
	}
}
