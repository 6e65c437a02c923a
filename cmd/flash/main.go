package main

import (
	"context"
	"errors"
	"fmt"
	"github.com/saylorsolutions/clif/argv"
	"github.com/saylorsolutions/clif/cli"
	"github.com/saylorsolutions/clif/env"
	"github.com/saylorsolutions/clif/schema"
	"github.com/saylorsolutions/clif/signalx"
	"github.com/saylorsolutions/clif/slogx"
	"io"
	"log/slog"
	"os"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signalx.NotifyExit(context.Background(), os.Interrupt)
	err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr, env.OS())
	stop()
	os.Exit(report(os.Stderr, err))
}

// report prints err unless the program has already shown it, and returns the exit code.
func report(stderr io.Writer, err error) int {
	if err == nil {
		return 0
	}
	if !errors.Is(err, &cli.UsageError{}) {
		_, _ = fmt.Fprintln(stderr, "error:", err)
	}
	return 1
}

// run builds the program and executes args, so it can be tested without exiting.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer, lookup env.Lookup) error {
	level := slogx.ParseLevel(lookup.Val("FLASH_LOG_LEVEL", ""), slog.LevelWarn)
	logger := slog.New(slogx.NewTerminalHandler(stderr, level))
	prog, err := newProgram(ctx, stdin, stdout, logger, lookup)
	if err != nil {
		return err
	}
	outcome, err := prog.Exec(args)
	logger.Debug("Finished", "outcome", outcome.String())
	return err
}

func newProgram(ctx context.Context, stdin io.Reader, stdout io.Writer, logger *slog.Logger, lookup env.Lookup) (*cli.Program, error) {
	var prog *cli.Program
	printer := cli.NewPrinter()
	printer.Redirect(stdout)

	b := cli.New("flash").
		Describe("Deploys apps to environments.").
		Version(version).
		EnableHelp().
		Env(lookup).
		Logger(logger).
		Printer(printer).
		Before(func(cmd cli.Command, res *argv.Result) error {
			if len(res.Unknown) > 0 {
				logger.Warn("Ignoring unknown flags", "command", cmd.Name, "flags", res.Unknown)
			}
			return nil
		})
	if lookup.Bool("FLASH_STRICT", false) {
		b.Strict()
	}

	b.Command(cli.Command{
		Name:        "deploy",
		Aliases:     []string{"d"},
		Description: "Deploys an app",
		Usage:       "[FLAGS] APP",
		Options: schema.NewMap().
			Set("env", schema.Str{Meta: schema.Meta{
				Alias:       "e",
				Required:    true,
				Description: "Target environment",
				Usage:       "NAME",
				Env:         "FLASH_ENV",
			}}).
			Set("replicas", schema.Num{Meta: schema.Meta{Alias: "r", Description: "Number of instances to run, defaults to $FLASH_REPLICAS or 1"}}).
			Set("dry-run", schema.Bool{Meta: schema.Meta{Description: "Only print what would be deployed"}}),
		Action: deploy(int(lookup.Int("FLASH_REPLICAS", 1))),
	})
	b.Command(cli.Command{
		Name:        "status",
		Description: "Shows the status of an app",
		Usage:       "[FLAGS] APP",
		Options: schema.NewMap().
			Set("env", schema.Str{Meta: schema.Meta{Alias: "e", Description: "Target environment", Usage: "NAME", Env: "FLASH_ENV"}}),
		Action: status,
	})
	b.Command(cli.Command{
		Options: schema.NewMap().
			Set("interactive", schema.Bool{Meta: schema.Meta{Alias: "i", Description: "Reads commands from STDIN"}}),
		Action: func(res *argv.Result, _ *cli.Printer) error {
			if res.Bool("interactive") {
				return prog.Interactive(ctx, stdin)
			}
			if len(res.Positionals) > 0 {
				return cli.NewUsageError("unknown command %q", res.Positionals[0])
			}
			return prog.PrintHelp()
		},
	})

	prog, err := b.Build()
	if err != nil {
		return nil, err
	}
	return prog, nil
}

func deploy(defaultReplicas int) cli.Action {
	return func(res *argv.Result, out *cli.Printer) error {
		var app string
		if err := cli.MapArgs(res, 1, &app); err != nil {
			return err
		}
		target, _ := res.Str("env")
		replicas, ok := res.Int("replicas")
		if !ok {
			replicas = defaultReplicas
		}
		if replicas < 1 {
			return cli.NewUsageError("replicas must be at least 1, got %d", replicas)
		}
		verb := "Deploying"
		if res.Bool("dry-run") {
			verb = "Would deploy"
		}
		out.Printf("%s %s to %s with %d replica(s)\n", verb, app, target, replicas)
		return nil
	}
}

func status(res *argv.Result, out *cli.Printer) error {
	var app string
	if err := cli.MapArgs(res, 1, &app); err != nil {
		return err
	}
	target, ok := res.Str("env")
	if !ok {
		target = "all environments"
	}
	out.Printf("%s in %s: no deployments recorded\n", app, target)
	return nil
}
