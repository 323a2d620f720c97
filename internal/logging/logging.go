// Package logging - slog setup for the partition binaries.
//
// Output goes through a tint handler. Colour is enabled only when the target
// is a terminal and the caller did not ask for plain output.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// TimeFormat is the timestamp layout of every log line.
const TimeFormat = "15:04:05"

// ErrBadLevel indicates an unknown level name.
var ErrBadLevel = errors.New("logging: unknown level")

// ParseLevel maps debug, info, warn and error (case-insensitive) to slog levels.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadLevel, name)
	}
}

// New returns a logger writing to w at the given level.
func New(w io.Writer, level slog.Level, noColor bool) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: TimeFormat,
		NoColor:    noColor || !IsTerminal(w),
	}))
}

// NewNamed is New with the level given by name, as found in configuration.
func NewNamed(w io.Writer, levelName string, noColor bool) (*slog.Logger, error) {
	level, err := ParseLevel(levelName)
	if err != nil {
		return nil, err
	}

	return New(w, level, noColor), nil
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
