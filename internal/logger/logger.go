// Package logger provides leveled logging for the zoo frontends.
package logger

import (
	"io"
	"log"
	"os"
)

// Logger writes prefixed lines per level.
type Logger struct {
	infoLogger  *log.Logger
	warnLogger  *log.Logger
	errorLogger *log.Logger
	debugLogger *log.Logger
	debug       bool
}

// New creates a logger writing info and warnings to stdout and errors to
// stderr.
func New(debug bool) *Logger {
	return NewWithWriters(os.Stdout, os.Stderr, debug)
}

// NewWithWriters creates a logger on explicit writers. Terminal frontends
// pass a file or io.Discard so output does not tear the screen.
func NewWithWriters(out, errOut io.Writer, debug bool) *Logger {
	flags := log.Ldate | log.Ltime | log.Lshortfile
	return &Logger{
		infoLogger:  log.New(out, "[ZOO-INFO] ", flags),
		warnLogger:  log.New(out, "[ZOO-WARN] ", flags),
		errorLogger: log.New(errOut, "[ZOO-ERROR] ", flags),
		debugLogger: log.New(out, "[ZOO-DEBUG] ", flags),
		debug:       debug,
	}
}

// Info logs informational messages.
func (l *Logger) Info(format string, args ...any) {
	l.infoLogger.Printf(format, args...)
}

// Warn logs warning messages.
func (l *Logger) Warn(format string, args ...any) {
	l.warnLogger.Printf(format, args...)
}

// Error logs error messages.
func (l *Logger) Error(format string, args ...any) {
	l.errorLogger.Printf(format, args...)
}

// Debug logs only when debug output is enabled.
func (l *Logger) Debug(format string, args ...any) {
	if !l.debug {
		return
	}
	l.debugLogger.Printf(format, args...)
}

// Event logs an interaction event such as a tap or a reset.
func (l *Logger) Event(kind, actor, details string) {
	l.Debug("[EVENT:%s] Actor:%s | %s", kind, actor, details)
}
