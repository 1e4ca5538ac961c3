package generator

import (
	"fmt"
	"io"
	"os"
)

// Logger is an interface for logging.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
}

// defaultLogger writes leveled lines to an io.Writer.
// Debug lines are only written when verbose is set.
type defaultLogger struct {
	out     io.Writer
	verbose bool
}

// NewLogger returns the default Logger writing to out (stdout when nil).
func NewLogger(out io.Writer, verbose bool) Logger {
	if out == nil {
		out = os.Stdout
	}
	return &defaultLogger{out: out, verbose: verbose}
}

func (l *defaultLogger) Debug(msg string, args ...interface{}) {
	if !l.verbose {
		return
	}
	l.write("DEBUG", msg, args...)
}

func (l *defaultLogger) Info(msg string, args ...interface{}) {
	l.write("INFO", msg, args...)
}

func (l *defaultLogger) Warn(msg string, args ...interface{}) {
	l.write("WARN", msg, args...)
}

func (l *defaultLogger) Error(msg string, args ...interface{}) {
	l.write("ERROR", msg, args...)
}

func (l *defaultLogger) write(level, msg string, args ...interface{}) {
	fmt.Fprintf(l.out, "["+level+"] "+msg+"\n", args...)
}

// nopLogger discards everything.
type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
