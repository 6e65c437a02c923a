package slogx

import (
	"context"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"io"
	"log/slog"
	"strings"
	"time"
)

// IsTerminal reports whether w is a file descriptor attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// NewTerminalHandler creates a human-readable [slog.Handler] that writes to w.
// Output is colorized only if w is a terminal.
func NewTerminalHandler(w io.Writer, level slog.Leveler) slog.Handler {
	return tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    !IsTerminal(w),
	})
}

// ParseLevel interprets a level name like "debug" or "WARN", returning defaultLevel if the name isn't recognized.
func ParseLevel(name string, defaultLevel slog.Level) slog.Level {
	name = strings.TrimSpace(name)
	if len(name) == 0 {
		return defaultLevel
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return defaultLevel
	}
	return level
}

var _ slog.Handler = discardHandler{}

type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (h discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h discardHandler) WithGroup(string) slog.Handler           { return h }

// Discard returns a [slog.Logger] that drops everything.
func Discard() *slog.Logger {
	return slog.New(discardHandler{})
}
