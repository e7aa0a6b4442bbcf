// Package logging provides structured logging for tur with consistent
// formatting and context support. Records go to stderr as text and,
// optionally, to a log file as JSON; both outputs share one level.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	slogmulti "github.com/samber/slog-multi"
)

// Level represents a log level.
type Level = slog.Level

const (
	// LevelDebug is for verbose debugging information.
	LevelDebug = slog.LevelDebug
	// LevelInfo is for general informational messages.
	LevelInfo = slog.LevelInfo
	// LevelWarn is for recoverable errors and warnings.
	LevelWarn = slog.LevelWarn
	// LevelError is for significant errors that may impact functionality.
	LevelError = slog.LevelError
)

// ParseLevel parses debug, info, warn or error.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", s)
	}
}

// Logger provides structured logging with context.
type Logger struct {
	*slog.Logger
}

var (
	mu      sync.Mutex
	level   = new(slog.LevelVar)
	file    io.WriteCloser
	stderr  io.Writer = os.Stderr
	current           = build()
)

func init() {
	level.Set(LevelWarn)
}

// build assembles the fan-out handler from the current outputs.
func build() *Logger {
	opts := &slog.HandlerOptions{Level: level}
	handlers := []slog.Handler{slog.NewTextHandler(stderr, opts)}
	if file != nil {
		handlers = append(handlers, slog.NewJSONHandler(file, opts))
	}
	return &Logger{Logger: slog.New(slogmulti.Fanout(handlers...))}
}

// SetLevel sets the minimum log level.
func SetLevel(l Level) {
	level.Set(l)
}

// SetOutput replaces the text output, stderr by default.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	stderr = w
	current = build()
}

// OpenFile additionally writes JSON records to path. An empty path closes
// any open log file.
func OpenFile(path string) error {
	mu.Lock()
	defer mu.Unlock()
	var closeErr error
	if file != nil {
		if err := file.Close(); err != nil {
			closeErr = fmt.Errorf("failed to close log file: %w", err)
		}
		file = nil
	}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			current = build()
			return errors.Join(closeErr, fmt.Errorf("failed to open log file: %w", err))
		}
		file = f
	}
	current = build()
	return closeErr
}

// Close closes the log file, if any.
func Close() error {
	return OpenFile("")
}

func logger() *Logger {
	mu.Lock()
	defer mu.Unlock()
	return current
}

// With returns a new Logger with additional context.
func (l *Logger) With(key string, value any) *Logger {
	return &Logger{Logger: l.Logger.With(key, value)}
}

// With returns a new Logger with additional context from the default logger.
func With(key string, value any) *Logger {
	return logger().With(key, value)
}

// Debug logs at debug level using the default logger.
func Debug(msg string, keyVals ...any) {
	logger().Debug(msg, keyVals...)
}

// Info logs at info level using the default logger.
func Info(msg string, keyVals ...any) {
	logger().Info(msg, keyVals...)
}

// Warn logs at warn level using the default logger.
func Warn(msg string, keyVals ...any) {
	logger().Warn(msg, keyVals...)
}

// Error logs at error level using the default logger.
func Error(msg string, keyVals ...any) {
	logger().Error(msg, keyVals...)
}
