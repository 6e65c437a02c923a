package argv

import (
	"errors"
	"fmt"
)

var (
	// ErrParse is matched by every error returned from [Scan], [Validate], and [Parse].
	ErrParse = errors.New("failed to parse arguments")
)

// BooleanOptionValueError is returned when a boolean flag is given a value with the "--flag=value" form.
type BooleanOptionValueError struct {
	Flag string
}

func (e *BooleanOptionValueError) Error() string {
	return fmt.Sprintf("option %q does not accept parameters", e.Flag)
}

func (e *BooleanOptionValueError) Is(err error) bool {
	_, ok := err.(*BooleanOptionValueError)
	return ok || err == ErrParse
}

// MissingParameterError is returned when a string or number flag has no value, or is immediately followed by another flag.
type MissingParameterError struct {
	Flag string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("option %q requires a parameter", e.Flag)
}

func (e *MissingParameterError) Is(err error) bool {
	_, ok := err.(*MissingParameterError)
	return ok || err == ErrParse
}

// InvalidNumberError is returned when the parameter of a number flag is not an integer.
// Flag is "$NAME" when the value came from an environment variable.
type InvalidNumberError struct {
	Flag  string
	Value string
	Err   error
}

func (e *InvalidNumberError) Error() string {
	return fmt.Sprintf("option %q parameter must be a number: %q", e.Flag, e.Value)
}

func (e *InvalidNumberError) Is(err error) bool {
	_, ok := err.(*InvalidNumberError)
	return ok || err == ErrParse
}

func (e *InvalidNumberError) Unwrap() error {
	return e.Err
}

// InvalidBooleanError is returned when an environment variable backing a boolean option can't be interpreted as true or false.
type InvalidBooleanError struct {
	Flag  string
	Value string
}

func (e *InvalidBooleanError) Error() string {
	return fmt.Sprintf("option %q value must be a boolean: %q", e.Flag, e.Value)
}

func (e *InvalidBooleanError) Is(err error) bool {
	_, ok := err.(*InvalidBooleanError)
	return ok || err == ErrParse
}

// RequiredOptionMissingError is returned when an option marked as required is absent after parsing.
type RequiredOptionMissingError struct {
	Name string
}

func (e *RequiredOptionMissingError) Error() string {
	return fmt.Sprintf("required option %q missing", e.Name)
}

func (e *RequiredOptionMissingError) Is(err error) bool {
	_, ok := err.(*RequiredOptionMissingError)
	return ok || err == ErrParse
}

// UnknownOptionError is returned in strict mode when a flag doesn't match any option.
// Flag is the first unknown flag encountered.
type UnknownOptionError struct {
	Flag string
}

func (e *UnknownOptionError) Error() string {
	return fmt.Sprintf("unknown option %q", e.Flag)
}

func (e *UnknownOptionError) Is(err error) bool {
	_, ok := err.(*UnknownOptionError)
	return ok || err == ErrParse
}
