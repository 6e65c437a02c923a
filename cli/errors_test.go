package cli

import (
	"errors"
	"github.com/saylorsolutions/clif/argv"
	"github.com/stretchr/testify/assert"
	"os"
	"testing"
)

func TestUsageError(t *testing.T) {
	errCause := errors.New("cause")
	tests := map[string]struct {
		err      error
		message  string
		hasCause bool
	}{
		"Bare": {
			err:     &UsageError{},
			message: "usage error",
		},
		"Message": {
			err:     NewUsageError("missing %s", "file"),
			message: "usage error: missing file",
		},
		"Wrapping": {
			err:      NewUsageError("bad input: %w", errCause),
			message:  "usage error: bad input: cause",
			hasCause: true,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.message, tc.err.Error())
			assert.ErrorIs(t, tc.err, &UsageError{})
			assert.Equal(t, tc.hasCause, errors.Is(tc.err, errCause))

			var target *UsageError
			assert.ErrorAs(t, tc.err, &target)
		})
	}
}

func TestReservedCommandNameError_Error(t *testing.T) {
	err := error(&ReservedCommandNameError{Name: "help"})
	assert.Equal(t, `command name "help" is reserved, use EnableHelp instead`, err.Error())
	assert.False(t, errors.Is(err, ErrInvalidCommand))
}

func ExampleNewUsageError() {
	prog, err := New("parent").
		Command(Command{
			Name:        "command",
			Description: "test command",
			Action: func(_ *argv.Result, _ *Printer) error {
				return NewUsageError("test usage error")
			},
		}).
		Build()
	if err != nil {
		panic(err)
	}
	// Done for testing purposes
	prog.Printer().Redirect(os.Stdout)
	// Error not handled for brevity
	_, _ = prog.Exec([]string{"command"})

	// Output:
	// usage error: test usage error
	//
	// parent command
	// test command
	//
	// USAGE:
	// parent command [FLAGS] [ARGS...]
}
