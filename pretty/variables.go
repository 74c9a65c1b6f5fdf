package pretty

import (
	"os"

	"github.com/joshyorko/transitive-sbom/common"
	"github.com/mattn/go-isatty"
)

var (
	Colorless   bool
	Iconic      bool
	Disabled    bool
	Interactive bool
	White       string
	Grey        string
	Red         string
	Green       string
	Yellow      string
	Cyan        string
	Reset       string
	Sparkles    string
	Bold        string
	Faint       string
)

func Setup() {
	stdin := isatty.IsTerminal(os.Stdin.Fd())
	stdout := isatty.IsTerminal(os.Stdout.Fd())
	stderr := isatty.IsTerminal(os.Stderr.Fd())

	if os.Getenv("NO_COLOR") != "" {
		Colorless = true
	}

	if os.Getenv("TERM") == "" {
		Colorless = true
	}

	Interactive = stdin && stdout && stderr
	Iconic = Interactive

	visualOutput := stdout && !Colorless

	common.Trace("Interactive mode enabled: %v; colors enabled: %v; icons enabled: %v", Interactive, visualOutput && !Disabled, Iconic)
	if visualOutput && !Disabled {
		White = csi("97m")
		Grey = csi("90m")
		Red = csi("91m")
		Green = csi("92m")
		Yellow = csi("93m")
		Cyan = csi("96m")
		Reset = csi("0m")
		Bold = csi("1m")
		Faint = csi("2m")
	}
	if Iconic && !Colorless {
		Sparkles = "✨ "
	}
}

func csi(value string) string {
	return "\x1b[" + value
}

// Header outputs a header text in Bold with a newline.
func Header(text string) {
	common.Stdout("%s%s%s\n", Bold, text, Reset)
}
