package cli

import (
	"errors"
	"github.com/saylorsolutions/clif/argv"
	"github.com/saylorsolutions/clif/env"
	"github.com/saylorsolutions/clif/schema"
	"github.com/saylorsolutions/clif/slogx"
	"log/slog"
	"sync/atomic"
)

// Outcome describes what [Program.Exec] did.
type Outcome int

const (
	NoOp          Outcome = iota // NoOp means nothing was executed or shown.
	HelpShown                    // HelpShown means help was printed instead of running an [Action].
	VersionShown                 // VersionShown means the version was printed instead of running an [Action].
	ActionInvoked                // ActionInvoked means a [Command]'s [Action] was called.
)

func (o Outcome) String() string {
	switch o {
	case NoOp:
		return "no-op"
	case HelpShown:
		return "help"
	case VersionShown:
		return "version"
	case ActionInvoked:
		return "action"
	default:
		return "unknown"
	}
}

// Program is a complete, immutable command line interface produced by [Builder.Build].
// It's safe to call [Program.Exec] any number of times.
// A Program should only be created with [Builder.Build], a zero Program has no commands and prints nothing.
type Program struct {
	name        string
	description string
	usage       string
	version     string
	help        bool
	strict      bool
	env         env.Lookup
	logger      *slog.Logger
	printer     *Printer
	renderer    Renderer
	before      []PreExec
	commands    []*registered
	byName      map[string]*registered
	fallback    *registered
	interactive *atomic.Bool
}

func (p *Program) Name() string {
	return p.name
}

func (p *Program) Version() string {
	return p.version
}

// Printer returns the [Printer] used for user-visible output.
func (p *Program) Printer() *Printer {
	return p.printer
}

// Commands returns the named commands in registration order.
func (p *Program) Commands() []Command {
	cmds := make([]Command, len(p.commands))
	for i, reg := range p.commands {
		cmds[i] = reg.Command
	}
	return cmds
}

// Exec dispatches args, which should not include the program name (os.Args[1:]).
//
// If the first argument names a [Command], then the rest are parsed with that command's options.
// Otherwise, all arguments are parsed for the default command, which also accepts "--help" and "--version".
// If there is no default command, then nothing happens.
//
// When help is enabled and requested, help is shown before options are validated, so a request for help always succeeds.
// When the default command is given "--version" and a version is set, it's printed instead of running the [Action].
//
// Any parsing error is returned before an [Action] or [PreExec] function runs.
func (p *Program) Exec(args []string) (Outcome, error) {
	logger := p.logger
	if logger == nil {
		logger = slogx.Discard()
	}
	log := logger.With("program", p.name)
	if len(args) > 0 {
		if reg, ok := p.byName[args[0]]; ok {
			return p.dispatch(log.With("command", reg.Name), reg, args[1:])
		}
	}
	if p.fallback != nil {
		return p.dispatch(log.With("command", ""), p.fallback, args)
	}
	if p.help && argv.Requests(args, schema.ResolveHelp(nil)[0]) {
		log.Debug("No default command, showing program help")
		return HelpShown, p.PrintHelp()
	}
	log.Debug("No command matched", "outcome", NoOp.String())
	return NoOp, nil
}

func (p *Program) dispatch(log *slog.Logger, reg *registered, args []string) (Outcome, error) {
	res, err := argv.Scan(args, reg.descriptors)
	if p.helpRequested(reg, res, args) {
		log.Debug("Help requested", "outcome", HelpShown.String())
		return HelpShown, p.printHelp(reg)
	}
	if err == nil {
		err = argv.Validate(res, reg.descriptors, argv.Config{Strict: p.strict, Env: p.env})
	}
	if err != nil {
		log.Debug("Failed to parse arguments", "error", err)
		return NoOp, err
	}
	if reg.IsDefault() && p.versionRequested(reg, res) {
		log.Debug("Version requested", "outcome", VersionShown.String())
		p.printer.Println(p.version)
		return VersionShown, nil
	}
	if err := p.runPreExec(reg.Command, res); err != nil {
		log.Debug("Pre-exec failed", "error", err)
		return NoOp, err
	}
	log.Debug("Invoking action", "positionals", len(res.Positionals), "options", res.Options.Len(), "unknown", len(res.Unknown))
	err = reg.Action(res, p.printer)
	if errors.Is(err, &UsageError{}) {
		p.printer.Println(err)
		p.printer.Println()
		_ = p.printHelp(reg)
	}
	return ActionInvoked, err
}

func boolOption(descriptors []schema.Descriptor, name string) (schema.Descriptor, bool) {
	d, ok := schema.Find(descriptors, name)
	if !ok || d.Kind() != schema.Boolean {
		return schema.Descriptor{}, false
	}
	return d, true
}

// helpRequested falls back to looking for the bare flag if scanning failed.
func (p *Program) helpRequested(reg *registered, res *argv.Result, args []string) bool {
	if !p.help {
		return false
	}
	d, ok := boolOption(reg.descriptors, schema.HelpOption)
	if !ok {
		return false
	}
	if res == nil {
		return argv.Requests(args, d)
	}
	return res.Bool(d.Name)
}

func (p *Program) versionRequested(reg *registered, res *argv.Result) bool {
	if len(p.version) == 0 {
		return false
	}
	d, ok := boolOption(reg.descriptors, schema.VersionOption)
	return ok && res.Bool(d.Name)
}

func (p *Program) helpAction(reg *registered) Action {
	return func(_ *argv.Result, _ *Printer) error {
		return p.printHelp(reg)
	}
}
