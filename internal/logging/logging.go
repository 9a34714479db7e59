package logging

import (
	"io"
	"log/slog"
	"os"
)

// Logger receives the diagnostic output of vlsm-ctl. It is separate from
// the rendered plan, which goes to the App's writer.
var Logger *slog.Logger

func init() {
	Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
}

// Setup replaces Logger. Verbose mode shows every allocation step at debug
// level; otherwise only warnings and errors reach w (stderr when nil).
func Setup(verbose bool, jsonOutput bool, w io.Writer) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	if w == nil {
		w = os.Stderr
	}

	if jsonOutput {
		Logger = slog.New(slog.NewJSONHandler(w, opts))
	} else {
		Logger = slog.New(slog.NewTextHandler(w, opts))
	}
}

// Debug traces allocator progress.
func Debug(msg string, args ...any) {
	Logger.Debug(msg, args...)
}

// Warn reports a side effect that failed without failing the command,
// such as an unwritable history file.
func Warn(msg string, args ...any) {
	Logger.Warn(msg, args...)
}

// Error reports a request the allocator rejected.
func Error(msg string, args ...any) {
	Logger.Error(msg, args...)
}
