// Package logger provides a thin wrapper around zerolog.Logger used by the
// fieldcheck command.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods are
// available directly on *Logger.
package logger

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/rs/zerolog"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// NewLogger returns a JSON *Logger writing to w at the given level.
// Every entry carries a "role" field, a timestamp and the calling
// function's name in "func".
func NewLogger(role string, w io.Writer, level zerolog.Level) *Logger {
	zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	logger := zerolog.New(w).Level(level).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// NewFileLogger is like NewLogger but appends to the file at path.
// The path "-" writes to stderr. The returned close function releases the
// file and is safe to call when writing to stderr.
func NewFileLogger(role, path string, level zerolog.Level) (*Logger, func() error, error) {
	if path == "-" || path == "" {
		return NewLogger(role, os.Stderr, level), func() error { return nil }, nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return NewLogger(role, f, level), f.Close, nil
}

// Nop returns a *Logger that discards all log output.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}
