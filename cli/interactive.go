package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"github.com/google/shlex"
	"io"
	"slices"
	"strings"
)

const (
	UseCommand  = "$use"  // This is used in interactive mode to indicate that a set of arguments should be pushed to the invocation stack.
	BackCommand = "$back" // This is used in interactive mode to indicate that the last element on the invocation stack should be popped.
)

var (
	InteractiveQuitCommands = []string{"quit", "x"} // InteractiveQuitCommands is a slice of strings that should escape from interactive mode.

	ErrAlreadyInteractive = errors.New("already in interactive mode")
)

// SplitLine splits a shell-like command line into arguments, honoring quotes and escapes.
func SplitLine(line string) ([]string, error) {
	args, err := shlex.Split(line)
	if err != nil {
		return nil, fmt.Errorf("failed to split command line: %w", err)
	}
	return args, nil
}

// IsInteractive reports whether [Program.Interactive] is running.
func (p *Program) IsInteractive() bool {
	return p.interactive != nil && p.interactive.Load()
}

// ExecLine splits line with [SplitLine] and passes the result to [Program.Exec].
func (p *Program) ExecLine(line string) (Outcome, error) {
	args, err := SplitLine(line)
	if err != nil {
		return NoOp, err
	}
	return p.Exec(args)
}

// Interactive runs an interactive "shell" for the [Program], reading one command line at a time from in.
// Each line is executed in-process with [Program.ExecLine], and errors are printed rather than ending the loop.
//
// The loop ends when one of the [InteractiveQuitCommands] is entered, in is exhausted, or ctx is done.
// Only one session may run at a time, so calling this from within a session returns [ErrAlreadyInteractive].
func (p *Program) Interactive(ctx context.Context, in io.Reader) error {
	if !p.interactive.CompareAndSwap(false, true) {
		return ErrAlreadyInteractive
	}
	defer p.interactive.Store(false)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		commandStack [][]string
		lines        = make(chan string)
		readErr      = make(chan error, 1)
		out          = p.printer
	)
	prefixCommands := func() []string {
		if len(commandStack) == 0 {
			return nil
		}
		return commandStack[len(commandStack)-1]
	}
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				readErr <- ctx.Err()
				return
			}
		}
		readErr <- scanner.Err()
	}()

	out.Printf(`Running '%s' interactively. Enter %s to exit.
Use the %s command with one or more arguments to push them to the execution stack, and %s to pop and return.
`, p.name, strings.Join(InteractiveQuitCommands, " or "), UseCommand, BackCommand)
	for {
		if len(commandStack) > 0 {
			out.Printf("%s %s> ", p.name, strings.Join(prefixCommands(), " "))
		} else {
			out.Printf("%s> ", p.name)
		}
		var (
			line string
			ok   bool
		)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok = <-lines:
			if !ok {
				out.Println()
				return <-readErr
			}
		}

		line = strings.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		if slices.Contains(InteractiveQuitCommands, strings.ToLower(line)) {
			return nil
		}
		segments, err := SplitLine(line)
		if err != nil {
			out.Println("Error:", err)
			continue
		}
		if len(segments) == 0 {
			continue
		}
		switch segments[0] {
		case UseCommand:
			newStack := append(slices.Clone(prefixCommands()), segments[1:]...)
			out.Printf("Using '%s'\n", strings.Join(newStack, " "))
			commandStack = append(commandStack, newStack)
			continue
		case BackCommand:
			if len(commandStack) == 0 {
				out.Println("Already at root command")
				continue
			}
			commandStack = commandStack[:len(commandStack)-1]
			continue
		}
		args := append(slices.Clone(prefixCommands()), segments...)
		// Usage errors have already been printed along with help.
		if _, err := p.Exec(args); err != nil && !errors.Is(err, &UsageError{}) {
			out.Println("Error running command:", err)
		}
	}
}
