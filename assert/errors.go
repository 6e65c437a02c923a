package assert

import (
	"fmt"
	"strings"
)

// Collector gathers errors from validation that can fail in more than one place.
// It's an error itself, joining the messages of everything collected with a separator, and works with [errors.Is] and [errors.As].
//
// A Collector is not safe for concurrent use.
type Collector struct {
	errs []error
	sep  string
}

// CollectErrors creates a new Collector, optionally with a separator that differs from the default of "\n".
func CollectErrors(sep ...string) *Collector {
	c := &Collector{sep: "\n"}
	if len(sep) > 0 {
		c.sep = sep[0]
	}
	return c
}

// Add records err, ignoring nil.
// An error that joins others, like another Collector or the result of [errors.Join], is flattened so each is reported on its own.
func (c *Collector) Add(err error) *Collector {
	switch e := err.(type) {
	case nil:
	case interface{ Unwrap() []error }:
		for _, inner := range e.Unwrap() {
			c.Add(inner)
		}
	default:
		c.errs = append(c.errs, err)
	}
	return c
}

// Addf records an error created with [fmt.Errorf], so the "%w" verb may be used.
func (c *Collector) Addf(format string, args ...any) *Collector {
	return c.Add(fmt.Errorf(format, args...))
}

func (c *Collector) Len() int {
	return len(c.errs)
}

// Result returns nil if nothing was collected, and the Collector otherwise.
// Always return this rather than the Collector, since an empty Collector is still a non-nil error.
func (c *Collector) Result() error {
	if len(c.errs) == 0 {
		return nil
	}
	return c
}

func (c *Collector) Error() string {
	msgs := make([]string, len(c.errs))
	for i, err := range c.errs {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, c.sep)
}

func (c *Collector) Unwrap() []error {
	return c.errs
}
