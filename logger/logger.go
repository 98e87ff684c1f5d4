// Package logger is the library's leveled JSON logger. It stays silent
// until the host application calls Setup or SetOutput, so importing the
// settings packages never produces output on its own. Only the sourcing
// side (dotenv and YAML loading) logs; accessor error paths never do.
package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
)

var (
	mu  sync.RWMutex
	log = slog.New(slog.NewJSONHandler(io.Discard, nil))
)

// Setup directs library logging to a daily-rotated JSON log file under
// dir, keeping seven days of history behind a stable symlink.
func Setup(dir string, level slog.Level) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	writer, err := rotatelogs.New(
		filepath.Join(dir, "settings.%Y-%m-%d.log"),
		rotatelogs.WithLinkName(filepath.Join(dir, "settings.log")),
		rotatelogs.WithMaxAge(7*24*time.Hour),
		rotatelogs.WithRotationTime(24*time.Hour),
	)
	if err != nil {
		return err
	}

	SetOutput(writer, level)
	return nil
}

// SetOutput points library logging at an arbitrary writer.
func SetOutput(w io.Writer, level slog.Level) {
	mu.Lock()
	defer mu.Unlock()
	log = slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// Disable routes library logging back to the discard handler.
func Disable() {
	SetOutput(io.Discard, slog.LevelInfo)
}

func current() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}

// Debug logs at debug level with alternating key/value args.
func Debug(msg string, args ...any) {
	current().Debug(msg, args...)
}

// Info logs at info level with alternating key/value args.
func Info(msg string, args ...any) {
	current().Info(msg, args...)
}

// Warn logs at warn level with alternating key/value args.
func Warn(msg string, args ...any) {
	current().Warn(msg, args...)
}

// Error logs at error level with alternating key/value args.
func Error(msg string, args ...any) {
	current().Error(msg, args...)
}
