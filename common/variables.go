package common

import (
	"io"
	"os"
	"time"
)

type Verbosity int

const (
	Undefined Verbosity = 0
	Silently  Verbosity = 1
	Normal    Verbosity = 2
	Debugging Verbosity = 3
	Tracing   Verbosity = 4
)

const (
	EnvPrefix = `TRANSITIVE_SBOM`
)

var (
	LogLinenumbers bool
	LogHides       []string
	When           int64
	ProgressMark   time.Time
	verbosity      Verbosity

	Stdoutput io.Writer = os.Stdout
	Stderr    io.Writer = os.Stderr
)

func init() {
	ProgressMark = time.Now()
	When = ProgressMark.Unix()
	verbosity = Normal
}

func Silent() bool {
	return verbosity == Silently
}

func DebugFlag() bool {
	return verbosity >= Debugging
}

func TraceFlag() bool {
	return verbosity >= Tracing
}

func DefineVerbosity(silent, debug, trace bool) {
	override := os.Getenv("TRANSITIVE_SBOM_VERBOSITY")
	switch {
	case silent || override == "silent":
		verbosity = Silently
	case trace || override == "trace":
		verbosity = Tracing
	case debug || override == "debug":
		verbosity = Debugging
	default:
		verbosity = Normal
	}
}
