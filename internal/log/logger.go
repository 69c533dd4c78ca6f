// Package log routes named, leveled loggers to a single sink.
// Everything goes to stderr unless redirected, so shader diagnostics and
// init failures land where a developer launching the window will see them.
package log

import (
	"io"
	"os"

	"github.com/op/go-logging"
)

type Level int

// The levels that can be passed to SetLevel and Enabled.
const (
	Debug Level = iota
	Info
	Notice
	Warning
	Error
)

var levels = map[Level]logging.Level{
	Debug:   logging.DEBUG,
	Info:    logging.INFO,
	Notice:  logging.NOTICE,
	Warning: logging.WARNING,
	Error:   logging.ERROR,
}

// Plain text: stderr is often captured and searched for diagnostic markers
var format = logging.MustStringFormatter(
	`[%{time:15:04:05.000}] [%{module}] [%{level:.4s}] %{message}`,
)

var (
	leveledBackend logging.LeveledBackend
	current        = Notice
)

// Logger is the subset of the go-logging API used by the application.
type Logger interface {
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})

	Info(v ...interface{})
	Infof(format string, v ...interface{})

	Notice(v ...interface{})
	Noticef(format string, v ...interface{})

	Warning(v ...interface{})
	Warningf(format string, v ...interface{})

	Error(v ...interface{})
	Errorf(format string, v ...interface{})
}

// New returns a logger tagged with module name.
func New(name string) Logger {
	return logging.MustGetLogger(name)
}

// SetSink redirects all loggers to sink, keeping the current level.
func SetSink(sink io.Writer) {
	backend := logging.NewBackendFormatter(logging.NewLogBackend(sink, "", 0), format)
	leveledBackend = logging.AddModuleLevel(backend)
	logging.SetBackend(leveledBackend)
	SetLevel(current)
}

// SetLevel sets the verbosity for all loggers. Unknown levels are ignored.
func SetLevel(level Level) {
	l, ok := levels[level]
	if !ok {
		return
	}
	current = level
	leveledBackend.SetLevel(l, "")
}

// Enabled reports whether messages at level are written.
// Use it to skip building expensive debug output.
func Enabled(level Level) bool {
	l, ok := levels[level]
	return ok && leveledBackend.IsEnabledFor(l, "")
}

func init() {
	SetSink(os.Stderr)
}
