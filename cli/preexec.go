package cli

import "github.com/saylorsolutions/clif/argv"

// PreExec is a function that runs after arguments are parsed and right before a [Command]'s [Action].
// If an error is returned, then the [Action] will not be executed, and the error will be returned from [Program.Exec] instead.
//
// Pre-exec functions don't run when help or the version is shown instead.
type PreExec func(cmd Command, res *argv.Result) error

func (p *Program) runPreExec(cmd Command, res *argv.Result) error {
	for _, fn := range p.before {
		if err := fn(cmd, res); err != nil {
			return err
		}
	}
	return nil
}
