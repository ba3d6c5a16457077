package invsqrt

import (
	"log/slog"
	"os"
)

var logger = NewLogger(false)

// NewLogger returns a text logger on stderr; debug lowers the level to Debug.
func NewLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// SetLogger replaces the package logger. A nil logger is ignored.
func SetLogger(l *slog.Logger) {
	if l != nil {
		logger = l
	}
}

// Logger returns the package logger.
func Logger() *slog.Logger { return logger }

func DebugLog(msg string, args ...any) {
	if Debug {
		logger.Debug(msg, args...)
	}
}
