// Package diag reports non-fatal conversion diagnostics.
//
// Fatal conditions are returned as errors; everything that only degrades the
// result (duplicate cells, an empty document) goes through a Logger so the
// caller decides where it ends up.
package diag

import (
	"fmt"
	"io"
)

// Logger writes warning lines to an output writer.
// A nil *Logger discards everything.
type Logger struct {
	writer io.Writer
	count  int
}

// New creates a logger writing to w. A nil writer discards output.
func New(w io.Writer) *Logger {
	if w == nil {
		w = io.Discard
	}
	return &Logger{writer: w}
}

// Discard returns a logger that drops every message.
func Discard() *Logger {
	return New(io.Discard)
}

// SetOutput changes the output writer
func (l *Logger) SetOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	l.writer = w
}

// Warnf writes a single "Warning: " prefixed line.
func (l *Logger) Warnf(format string, args ...any) {
	if l == nil {
		return
	}
	l.count++
	// Write errors are ignored.
	_, _ = fmt.Fprintf(l.writer, "Warning: "+format+"\n", args...)
}

// Count reports how many warnings have been emitted.
func (l *Logger) Count() int {
	if l == nil {
		return 0
	}
	return l.count
}
