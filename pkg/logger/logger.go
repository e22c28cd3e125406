// Package logger provides the slog-backed logger used by the CLI and
// the rule loaders. The translation engine itself never logs.
package logger

import (
	"log/slog"
	"os"
)

// Logger wraps a slog.Logger writing text records to stderr.
type Logger struct {
	logger *slog.Logger
}

// New creates a logger at Info level.
func New() *Logger {
	return NewWithLevel(slog.LevelInfo)
}

// NewWithLevel creates a logger at the given level.
func NewWithLevel(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		logger: slog.New(handler),
	}
}

// Error logs an error message
func (l *Logger) Error(msg string, args ...any) {
	l.logger.Error(msg, args...)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, args ...any) {
	l.logger.Warn(msg, args...)
}

// Info logs an info message
func (l *Logger) Info(msg string, args ...any) {
	l.logger.Info(msg, args...)
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, args ...any) {
	l.logger.Debug(msg, args...)
}

// GetSlogLogger returns the underlying slog logger
func (l *Logger) GetSlogLogger() *slog.Logger {
	return l.logger
}
