package cli

import (
	"github.com/saylorsolutions/clif/argv"
	"github.com/saylorsolutions/clif/schema"
)

// Action is the function executed by a [Command] once its arguments are parsed.
// Positionals, option values, and unknown flags are all available in res.
type Action = func(res *argv.Result, out *Printer) error

// Command is a named unit of work in a [Program].
// A Command without a Name is the default command, which handles arguments that don't start with a command name.
type Command struct {
	Name        string
	Description string      // Description is a short, one line explanation shown in command listings and help.
	Usage       string      // Usage is shown after the command path in help, like "[FLAGS] FILE...".
	Aliases     []string    // Aliases are alternate names that select this Command.
	Options     *schema.Map // Options may be nil if the Command takes none.
	Action      Action      // Action defaults to printing this Command's help.
}

// IsDefault reports whether this is the unnamed default command.
func (c Command) IsDefault() bool {
	return len(c.Name) == 0
}

type registered struct {
	Command
	descriptors []schema.Descriptor
}
