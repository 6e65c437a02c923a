// Package slogx provides [slog.Handler] setup shared by command line programs.
package slogx
