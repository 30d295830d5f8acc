// Package logging configures the process-wide slog logger.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
)

var (
	logPath string
	logFile *os.File

	setupOnce sync.Once
	output    io.Writer
	toFile    bool

	loggerOnce sync.Once
	logger     *slog.Logger
	levelVar   = &slog.LevelVar{}
)

// SetLogPath sets the log file, including filename. Parent directories are
// created on first use. Must be called before Get.
func SetLogPath(path string) {
	logPath = path
}

func setup() {
	setupOnce.Do(func() {
		output = os.Stdout
		if logPath == "" {
			return
		}
		if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
			return
		}
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
		if err != nil {
			// Can't open log file, fall back to console-only
			return
		}
		logFile = f
		toFile = true
		output = io.MultiWriter(os.Stdout, logFile)
	})
}

// Get returns the shared logger and installs it as slog's default.
// Interactive terminals get text records, everything else JSON.
func Get() *slog.Logger {
	loggerOnce.Do(func() {
		setup()

		opts := &slog.HandlerOptions{Level: levelVar}
		var handler slog.Handler
		if !toFile && isTerminal(os.Stdout) {
			handler = slog.NewTextHandler(output, opts)
		} else {
			handler = slog.NewJSONHandler(output, opts)
		}
		logger = slog.New(handler)
		slog.SetDefault(logger)
	})
	return logger
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// ParseLevel maps a config string to a level; unknown strings mean info.
func ParseLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func SetLevel(level slog.Level) {
	levelVar.Set(level)
}

func SetRawLevel(raw string) {
	levelVar.Set(ParseLevel(raw))
}

func Close() {
	if logFile != nil {
		logFile.Close()
	}
}
