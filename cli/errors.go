package cli

import (
	"errors"
	"fmt"
	"github.com/saylorsolutions/clif/schema"
)

var (
	ErrDuplicateCommand = errors.New("duplicate command")
	ErrInvalidCommand   = errors.New("invalid command")
	ErrArgMap           = errors.New("failed to map argument(s)")
)

// ReservedCommandNameError is returned from [Builder.Build] when a [Command] is named "help" or "version".
// Those are handled by [Builder.EnableHelp] and [Builder.Version].
type ReservedCommandNameError struct {
	Name string
}

func (e *ReservedCommandNameError) Error() string {
	hint := "EnableHelp"
	if e.Name == schema.VersionOption {
		hint = "Version"
	}
	return fmt.Sprintf("command name %q is reserved, use %s instead", e.Name, hint)
}

// UsageError signals that a [Command] was invoked incorrectly.
// When an [Action] returns one, the [Program] prints it followed by the command's help.
type UsageError struct {
	wrapped error
}

// NewUsageError creates a [UsageError] with [fmt.Errorf], so the "%w" verb may be used.
func NewUsageError(format string, args ...any) error {
	return &UsageError{wrapped: fmt.Errorf(format, args...)}
}

func (e *UsageError) Error() string {
	if e.wrapped == nil {
		return "usage error"
	}
	return fmt.Sprintf("usage error: %v", e.wrapped)
}

// Is matches any *UsageError, so errors.Is(err, &UsageError{}) finds one anywhere in a chain.
func (e *UsageError) Is(target error) bool {
	_, ok := target.(*UsageError)
	return ok
}

func (e *UsageError) Unwrap() error {
	return e.wrapped
}
