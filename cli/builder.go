package cli

import (
	"fmt"
	"github.com/saylorsolutions/clif/assert"
	"github.com/saylorsolutions/clif/env"
	"github.com/saylorsolutions/clif/schema"
	"github.com/saylorsolutions/clif/slogx"
	"github.com/saylorsolutions/clif/structures/set"
	"log/slog"
	"slices"
	"strings"
	"sync/atomic"
	"unicode"
)

var reservedNames = set.New(schema.HelpOption, schema.VersionOption)

// Builder is used to register commands and settings before producing an immutable [Program].
type Builder struct {
	prog     Program
	commands []Command
}

// New starts building a [Program] that is invoked as name.
func New(name string) *Builder {
	return &Builder{
		prog: Program{name: name},
	}
}

// Describe sets the program description shown in help.
func (b *Builder) Describe(description string) *Builder {
	b.prog.description = description
	return b
}

// Usage sets the program usage line shown in help, like "[COMMAND] [FLAGS]".
func (b *Builder) Usage(usage string) *Builder {
	b.prog.usage = usage
	return b
}

// Version sets the version string printed when the default command is given "--version" or "-v".
func (b *Builder) Version(version string) *Builder {
	b.prog.version = version
	return b
}

// EnableHelp makes "--help" and "-h" print help instead of running an [Action].
// Named commands also accept the help flag once this is enabled.
func (b *Builder) EnableHelp() *Builder {
	b.prog.help = true
	return b
}

// Strict makes unknown flags fail parsing.
func (b *Builder) Strict() *Builder {
	b.prog.strict = true
	return b
}

// Env sets where option values are looked up when an option declares [schema.Meta.Env].
// This defaults to [env.OS].
func (b *Builder) Env(lookup env.Lookup) *Builder {
	b.prog.env = lookup
	return b
}

// Logger sets the logger used to report dispatch decisions at debug level.
// Nothing is logged by default.
func (b *Builder) Logger(logger *slog.Logger) *Builder {
	b.prog.logger = logger
	return b
}

// Printer sets the [Printer] used for all user-visible output.
func (b *Builder) Printer(printer *Printer) *Builder {
	b.prog.printer = printer
	return b
}

// Renderer replaces the default [TextRenderer] used for help output.
func (b *Builder) Renderer(renderer Renderer) *Builder {
	b.prog.renderer = renderer
	return b
}

// Before registers a [PreExec] function.
// Passing a nil [PreExec] function to this method will panic.
func (b *Builder) Before(fn PreExec) *Builder {
	if fn == nil {
		panic("nil pre-exec function")
	}
	b.prog.before = append(b.prog.before, fn)
	return b
}

// Command registers a [Command].
// Problems with the [Command] are reported by [Builder.Build].
func (b *Builder) Command(cmd Command) *Builder {
	b.commands = append(b.commands, cmd)
	return b
}

func checkCommandName(name string) error {
	switch {
	case len(name) == 0:
		return fmt.Errorf("%w: empty name", ErrInvalidCommand)
	case reservedNames.Has(name):
		return &ReservedCommandNameError{Name: name}
	case strings.HasPrefix(name, "-"):
		return fmt.Errorf("%w: name %q must not start with '-'", ErrInvalidCommand, name)
	case strings.ContainsFunc(name, unicode.IsSpace):
		return fmt.Errorf("%w: name %q must not contain whitespace", ErrInvalidCommand, name)
	}
	return nil
}

// Build validates everything registered and returns the resulting [Program].
// All problems found are reported together.
// Changes made to the [Builder] or registered option maps afterward don't affect the returned [Program].
func (b *Builder) Build() (*Program, error) {
	var (
		errs  = assert.CollectErrors()
		names = set.New[string]()
		prog  = b.prog
	)
	prog.before = slices.Clone(b.prog.before)
	prog.byName = map[string]*registered{}
	prog.interactive = new(atomic.Bool)
	if prog.env == nil {
		prog.env = env.OS()
	}
	if prog.logger == nil {
		prog.logger = slogx.Discard()
	}
	if prog.printer == nil {
		prog.printer = NewPrinter()
	}

	for _, cmd := range b.commands {
		reg := &registered{Command: cmd}
		reg.Aliases = slices.Clone(cmd.Aliases)
		if cmd.IsDefault() {
			if prog.fallback != nil {
				errs.Addf("%w: more than one default command", ErrDuplicateCommand)
				continue
			}
			reg.descriptors = schema.ResolveBase(cmd.Options)
			prog.fallback = reg
		} else {
			var failed bool
			for _, key := range append([]string{cmd.Name}, cmd.Aliases...) {
				if err := checkCommandName(key); err != nil {
					errs.Add(err)
					failed = true
					continue
				}
				if !names.Claim(key) {
					errs.Addf("%w: %q", ErrDuplicateCommand, key)
					failed = true
				}
			}
			if failed {
				continue
			}
			if prog.help {
				reg.descriptors = schema.ResolveHelp(cmd.Options)
			} else {
				reg.descriptors = schema.Resolve(cmd.Options)
			}
			prog.commands = append(prog.commands, reg)
			prog.byName[cmd.Name] = reg
			for _, alias := range reg.Aliases {
				prog.byName[alias] = reg
			}
		}
		if err := schema.Validate(reg.descriptors); err != nil {
			label := cmd.Name
			if cmd.IsDefault() {
				label = "default"
			}
			errs.Addf("command %q: %w", label, err)
		}
		if reg.Action == nil {
			reg.Action = prog.helpAction(reg)
		}
	}
	if err := errs.Result(); err != nil {
		return nil, err
	}
	return &prog, nil
}
