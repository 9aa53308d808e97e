// Package logger provides the verbosity-gated, line-oriented logger that the
// scanner, the file handler, and the CLI write their diagnostics through.
//
// A Logger is an ordinary value passed by pointer. There is no package level
// instance: every caller decides where lines go and how much detail it wants.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

// Verbosity thresholds. A message is emitted when its level is less than or
// equal to the logger's verbosity.
const (
	LevelSilent  = 0 // nothing at all
	LevelError   = 1 // failures
	LevelNormal  = 2 // one summary line per file
	LevelChange  = 3 // one line per replacement
	LevelDetail  = 5 // file I/O and encoding dispatch
	LevelSection = 6 // VERSIONINFO block discovery
	LevelTrace   = 7 // every keyword the scanner recognises

	// MinVerbosity and MaxVerbosity bound the accepted verbosity range.
	MinVerbosity = LevelSilent
	MaxVerbosity = 9

	// DefaultVerbosity shows replacements but not scanner internals.
	DefaultVerbosity = LevelChange
)

// levelKey is the attribute carrying the numeric verbosity level of a line.
const levelKey = "v"

// Logger writes one line per message to an underlying slog handler.
type Logger struct {
	verbosity int
	sl        *slog.Logger
}

// New returns a Logger writing text lines to w. Time stamps are omitted so the
// output reads like a console transcript.
func New(w io.Writer, verbosity int) *Logger {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelDebug,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	})
	return &Logger{verbosity: verbosity, sl: slog.New(h)}
}

// NewWithHandler wraps an existing slog handler.
func NewWithHandler(h slog.Handler, verbosity int) *Logger {
	return &Logger{verbosity: verbosity, sl: slog.New(h)}
}

// Discard returns a Logger that drops every message.
func Discard() *Logger {
	return &Logger{verbosity: LevelSilent, sl: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// Verbosity returns the configured verbosity.
func (l *Logger) Verbosity() int {
	if l == nil {
		return LevelSilent
	}
	return l.verbosity
}

// WithVerbosity returns a copy of l with a different verbosity. The
// underlying handler is shared.
func (l *Logger) WithVerbosity(verbosity int) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{verbosity: verbosity, sl: l.sl}
}

// Enabled reports whether a message at level would be written.
func (l *Logger) Enabled(level int) bool {
	return l != nil && level > LevelSilent && level <= l.verbosity
}

// Logf formats and writes a message at the given verbosity level.
func (l *Logger) Logf(level int, format string, args ...any) {
	if !l.Enabled(level) {
		return
	}
	msg := fmt.Sprintf(format, args...)
	l.sl.Log(context.Background(), slogLevel(level), msg, slog.Int(levelKey, level))
}

// Errorf logs a failure at LevelError and returns it as an error wrapping err.
// A nil err produces a plain error carrying the message.
func (l *Logger) Errorf(err error, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	l.Logf(LevelError, "%s", msg)
	if err == nil {
		return fmt.Errorf("%s", msg)
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// slogLevel maps a verbosity level onto the closest slog level so the text
// handler prints a meaningful level name.
func slogLevel(level int) slog.Level {
	switch {
	case level <= LevelError:
		return slog.LevelError
	case level <= LevelChange:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}
