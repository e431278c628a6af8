// Package logger provides the leveled logger used by the huffzip command.
package logger

import (
	"io"
	"log"
)

// Logger writes leveled, printf-style log messages.
type Logger interface {
	// Infof logs an informational message.  Quiet loggers drop it.
	Infof(format string, v ...interface{})

	// Errorf logs an error message.  It is never dropped.
	Errorf(format string, v ...interface{})
}

type stdLogger struct {
	l     *log.Logger
	quiet bool
}

// New returns a Logger writing to w.  If quiet is true, Infof messages are
// dropped.
func New(w io.Writer, prefix string, quiet bool) Logger {
	return &stdLogger{l: log.New(w, prefix, 0), quiet: quiet}
}

func (l *stdLogger) Infof(format string, v ...interface{}) {
	if l.quiet {
		return
	}
	l.l.Printf("[INFO] "+format, v...)
}

func (l *stdLogger) Errorf(format string, v ...interface{}) {
	l.l.Printf("[ERROR] "+format, v...)
}
