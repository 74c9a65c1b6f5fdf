package pretty

import (
	"os"
	"strings"

	"github.com/joshyorko/transitive-sbom/common"
	"golang.org/x/term"
)

// TerminalWidth returns the terminal width in columns
// Uses golang.org/x/term.GetSize() with fallback to 80 columns if detection fails
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		common.Trace("Failed to get terminal width, using fallback: %v", err)
		return 80
	}
	common.Trace("Terminal width detected: %d", width)
	return width
}

// Rule outputs a horizontal separator spanning the terminal.
func Rule() {
	common.Stdout("%s%s%s\n", Faint, strings.Repeat("-", TerminalWidth()), Reset)
}
