// Package logger configures the logging backend shared by the
// statistics packages. Rollup internals log at DEBUG, soft query
// failures at WARNING; the recording path itself never logs.
package logger

import (
	"os"

	"github.com/op/go-logging"
	"github.com/urfave/cli/v2"
)

// LogLevelFlag selects the verbosity of a command.
var LogLevelFlag = cli.StringFlag{
	Name:    "log",
	Aliases: []string{"l"},
	Usage:   "Level of the logging of the app action (\"critical\", \"error\", \"warning\", \"notice\", \"info\", \"debug\"; default: INFO)",
	Value:   "info",
}

// defaultLogFormat defines the format used for log output.
const defaultLogFormat = "%{time:2006/01/02 15:04:05} %{color}%{level:-8s} %{shortpkg}/%{shortfunc}%{color:reset}: %{message}"

// NewLogger provides a stdout logger for the given module at the given
// level. Unknown level names fall back to INFO.
func NewLogger(level string, module string) *logging.Logger {
	backend := logging.NewLogBackend(os.Stdout, "", 0)

	fm := logging.MustStringFormatter(defaultLogFormat)
	fmtBackend := logging.NewBackendFormatter(backend, fm)

	lvl, err := logging.LogLevel(level)
	if err != nil {
		lvl = logging.INFO
	}
	lvlBackend := logging.AddModuleLevel(fmtBackend)
	lvlBackend.SetLevel(lvl, "")

	logging.SetBackend(lvlBackend)
	return logging.MustGetLogger(module)
}
