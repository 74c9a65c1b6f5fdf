package pretty

import (
	"fmt"

	"github.com/joshyorko/transitive-sbom/common"
)

func Ok() error {
	common.Log("%sOK.%s", Green, Reset)
	return nil
}

func Note(format string, rest ...interface{}) {
	niceform := fmt.Sprintf("%s%sNote: %s%s", Cyan, Bold, format, Reset)
	common.Log(niceform, rest...)
}

func Warning(format string, rest ...interface{}) {
	niceform := fmt.Sprintf("%sWarning: %s%s", Yellow, format, Reset)
	common.Log(niceform, rest...)
}

func Highlight(format string, rest ...interface{}) {
	niceform := fmt.Sprintf("%s%s%s", Sparkles, format, Reset)
	common.Log(niceform, rest...)
}

// Exit stops the program through the exit protection in main; callers never
// return from it.
func Exit(code int, format string, rest ...interface{}) {
	var message string
	if len(format) > 0 {
		message = fmt.Sprintf(format, rest...)
		message = fmt.Sprintf("%s%s%s%s", Red, Bold, message, Reset)
	}
	panic(common.ExitCode{
		Code:    code,
		Message: message,
	})
}

func Guard(truth bool, code int, format string, rest ...interface{}) {
	if !truth {
		Exit(code, format, rest...)
	}
}
