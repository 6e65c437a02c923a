package cli

import (
	"fmt"
	"github.com/saylorsolutions/clif/argv"
	"slices"
)

// MapArgs binds the leading positional arguments in res to targets, in order.
// Extra positionals are ignored, and targets past the last positional are left unchanged.
//
// Having fewer than minArgs positionals is reported as a [UsageError] wrapping [ErrArgMap], so returning it from an [Action] shows the command's help.
// Too few or nil targets is a programming mistake, and only wraps [ErrArgMap].
func MapArgs(res *argv.Result, minArgs int, targets ...*string) error {
	var positionals []string
	if res != nil {
		positionals = res.Positionals
	}
	switch {
	case len(targets) < minArgs:
		return fmt.Errorf("%w: %d target(s) can't hold %d required argument(s)", ErrArgMap, len(targets), minArgs)
	case slices.Contains(targets, nil):
		return fmt.Errorf("%w: nil target at index %d", ErrArgMap, slices.Index(targets, nil))
	case len(positionals) < minArgs:
		return &UsageError{wrapped: fmt.Errorf("%w: expected at least %d argument(s), got %d", ErrArgMap, minArgs, len(positionals))}
	}
	for i := 0; i < len(targets) && i < len(positionals); i++ {
		*targets[i] = positionals[i]
	}
	return nil
}
