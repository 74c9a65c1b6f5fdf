package common

import "fmt"

type ExitCode struct {
	Code    int
	Message string
}

func (it ExitCode) ShowMessage() {
	if len(it.Message) > 0 {
		printout(Stderr, it.Message)
	}
}

func (it ExitCode) Error() string {
	return fmt.Sprintf("exit code %d: %s", it.Code, it.Message)
}
