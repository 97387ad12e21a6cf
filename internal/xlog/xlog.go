// Package xlog is a thin wrapper around zerolog that preserves the
// named, purpose-tagged logging calls the algorithm packages make
// (Circuit, Algorithm, Decision, Backtrack, Implication, Frontier)
// while getting structured, levelled output and indentation-as-a-field
// instead of hand-built strings.
package xlog

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger wraps a zerolog.Logger and tracks a recursion depth that is
// attached to every record as the "depth" field, mirroring the
// indentation the algorithm packages use to make nested decision
// traces readable.
type Logger struct {
	zl    zerolog.Logger
	depth int
}

// New builds a Logger writing to w at the given level. A nil w writes
// to os.Stderr in zerolog's default JSON form; pass os.Stdout with
// NewConsole for human-readable trace output.
func New(w io.Writer, level zerolog.Level) *Logger {
	if w == nil {
		w = os.Stderr
	}
	zl := zerolog.New(w).Level(level).With().Timestamp().Logger()
	return &Logger{zl: zl}
}

// NewConsole builds a Logger with zerolog's human-friendly console
// writer, the form used for --verbose trace output on the command line.
func NewConsole(w io.Writer, level zerolog.Level) *Logger {
	if w == nil {
		w = os.Stdout
	}
	cw := zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05.000"}
	zl := zerolog.New(cw).Level(level).With().Timestamp().Logger()
	return &Logger{zl: zl}
}

// Discard returns a Logger that drops every record; the zero value for
// engines run without a caller-supplied Logger.
func Discard() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

func (l *Logger) event(tag, format string, args ...interface{}) *zerolog.Event {
	return l.zl.Debug().Str("tag", tag).Int("depth", l.depth)
}

// Indent increases the traced recursion depth by one.
func (l *Logger) Indent() { l.depth++ }

// Outdent decreases the traced recursion depth by one, floored at zero.
func (l *Logger) Outdent() {
	if l.depth > 0 {
		l.depth--
	}
}

// Circuit logs circuit-construction and simulation-state events.
func (l *Logger) Circuit(format string, args ...interface{}) {
	l.event("circuit", format, args...).Msgf(format, args...)
}

// Algorithm logs top-level PODEM search events.
func (l *Logger) Algorithm(format string, args ...interface{}) {
	l.event("algorithm", format, args...).Msgf(format, args...)
}

// Decision logs a decision-tree branch (objective chosen, value assigned).
func (l *Logger) Decision(format string, args ...interface{}) {
	l.event("decision", format, args...).Msgf(format, args...)
}

// Backtrack logs a reverted decision.
func (l *Logger) Backtrack(format string, args ...interface{}) {
	l.event("backtrack", format, args...).Msgf(format, args...)
}

// Implication logs a single imply-and-check step.
func (l *Logger) Implication(format string, args ...interface{}) {
	l.zl.Trace().Str("tag", "implication").Int("depth", l.depth).Msgf(format, args...)
}

// Frontier logs D-frontier recomputation.
func (l *Logger) Frontier(format string, args ...interface{}) {
	l.zl.Trace().Str("tag", "frontier").Int("depth", l.depth).Msgf(format, args...)
}

// Error logs a non-fatal error observed during a run.
func (l *Logger) Error(format string, args ...interface{}) {
	l.zl.Error().Int("depth", l.depth).Msgf(format, args...)
}
