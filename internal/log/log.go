// Package log provides leveled, component-scoped logging for chord.
//
// The terminal is owned by the renderer while the editor runs, so log
// output goes to a file or any other io.Writer, never to the screen.
package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Level represents the severity level of a log message.
type Level int

const (
	// LevelDebug is for detailed debugging information.
	LevelDebug Level = iota
	// LevelInfo is for general informational messages.
	LevelInfo
	// LevelWarn is for warning messages.
	LevelWarn
	// LevelError is for error messages.
	LevelError
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel parses a level name. Unknown names yield LevelInfo.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

func (l Level) slog() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// DefaultFile is the log path used when none is configured.
func DefaultFile() string {
	return filepath.Join(os.TempDir(), "chord.log")
}

// Config configures a logger.
type Config struct {
	// Level is the minimum level written.
	Level Level
	// Output receives the log records. When nil, File is opened.
	Output io.Writer
	// File is appended to when Output is nil. Defaults to DefaultFile().
	File string
}

// Logger writes structured records tagged with the session id.
type Logger struct {
	slog   *slog.Logger
	closer io.Closer
}

// New creates a logger from cfg.
func New(cfg Config) (*Logger, error) {
	out := cfg.Output
	var closer io.Closer
	if out == nil {
		path := cfg.File
		if path == "" {
			path = DefaultFile()
		}
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600) //nolint:gosec // user-chosen log path
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		out, closer = f, f
	}

	h := slog.NewTextHandler(out, &slog.HandlerOptions{Level: cfg.Level.slog()})
	return &Logger{
		slog:   slog.New(h).With("session", uuid.NewString()),
		closer: closer,
	}, nil
}

// Null returns a logger that discards everything.
func Null() *Logger {
	return &Logger{slog: slog.New(slog.DiscardHandler)}
}

// Enabled reports whether records at level would be written.
func (l *Logger) Enabled(level Level) bool {
	return l.slog.Enabled(context.Background(), level.slog())
}

// WithComponent returns a logger whose records carry component=name.
func (l *Logger) WithComponent(name string) *Logger {
	return l.WithField("component", name)
}

// WithField returns a logger with one extra attribute.
func (l *Logger) WithField(key string, value any) *Logger {
	return l.derive(l.slog.With(key, value))
}

func (l *Logger) derive(s *slog.Logger) *Logger {
	return &Logger{slog: s}
}

// Debug logs at debug level. args are slog key/value pairs.
func (l *Logger) Debug(msg string, args ...any) { l.slog.Debug(msg, args...) }

// Info logs at info level.
func (l *Logger) Info(msg string, args ...any) { l.slog.Info(msg, args...) }

// Warn logs at warn level.
func (l *Logger) Warn(msg string, args ...any) { l.slog.Warn(msg, args...) }

// Error logs at error level.
func (l *Logger) Error(msg string, args ...any) { l.slog.Error(msg, args...) }

// Close releases the log file opened by New, if any.
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}
