package pretty

import (
	"testing"

	"github.com/joshyorko/transitive-sbom/hamlet"
)

func TestDetectColorMode(t *testing.T) {
	defer func() {
		colorModeDetected = false
	}()

	tests := []struct {
		name      string
		noColor   string
		colorterm string
		term      string
		expected  ColorMode
	}{
		{name: "NO_COLOR set disables colors", noColor: "1", term: "xterm", expected: ColorModeNone},
		{name: "COLORTERM=truecolor enables TrueColor", colorterm: "truecolor", term: "xterm-256color", expected: ColorModeTrueColor},
		{name: "COLORTERM=24bit enables TrueColor", colorterm: "24bit", term: "xterm-256color", expected: ColorModeTrueColor},
		{name: "TERM=xterm-256color enables 256 colors", term: "xterm-256color", expected: ColorMode256},
		{name: "TERM=dumb disables colors", term: "dumb", expected: ColorModeNone},
		{name: "Empty TERM disables colors", term: "", expected: ColorModeNone},
		{name: "TERM=xterm enables basic colors", term: "xterm", expected: ColorModeBasic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			must, _ := hamlet.Specifications(t)
			colorModeDetected = false
			t.Setenv("NO_COLOR", tt.noColor)
			t.Setenv("COLORTERM", tt.colorterm)
			t.Setenv("TERM", tt.term)

			must.Equal(tt.expected, DetectColorMode())
		})
	}
}

func TestTreeStylesArePlainWhenColorless(t *testing.T) {
	must, _ := hamlet.Specifications(t)
	original := Colorless
	defer func() { Colorless = original }()

	Colorless = true
	styles := NewTreeStyles()
	must.Equal("libfoo", styles.Root.Render("libfoo"))
	must.Equal("libbar", styles.Item.Render("libbar"))
}
