package cli

import (
	"context"
	"github.com/saylorsolutions/clif/argv"
	"github.com/saylorsolutions/clif/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"io"
	"strings"
	"testing"
)

func TestSplitLine(t *testing.T) {
	args, err := SplitLine(`deploy --env "prod east" -r 3`)
	require.NoError(t, err)
	assert.Equal(t, []string{"deploy", "--env", "prod east", "-r", "3"}, args)

	_, err = SplitLine(`deploy --env "prod`)
	assert.ErrorContains(t, err, "failed to split command line")
}

func TestProgram_ExecLine(t *testing.T) {
	tp := newTestProgram(t, nil)
	outcome, err := tp.prog.ExecLine(`deploy --env 'prod east'`)
	require.NoError(t, err)
	assert.Equal(t, ActionInvoked, outcome)
	envName, _ := tp.deploy.res.Str("env")
	assert.Equal(t, "prod east", envName)

	outcome, err = tp.prog.ExecLine(`deploy --env "prod`)
	assert.Error(t, err)
	assert.Equal(t, NoOp, outcome)
}

func TestProgram_Interactive(t *testing.T) {
	tp := newTestProgram(t, nil)
	input := strings.Join([]string{
		"deploy --env dev",
		"",
		"$use deploy",
		`--env "prod east"`,
		"$back",
		"$back",
		"deploy --replicas many",
		"QUIT",
		"deploy --env never",
	}, "\n")

	err := tp.prog.Interactive(context.Background(), strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 2, tp.deploy.calls)
	envName, _ := tp.deploy.res.Str("env")
	assert.Equal(t, "prod east", envName, "Arguments on the stack should prefix the entered line")

	out := tp.out.String()
	assert.Contains(t, out, "Running 'my-cli' interactively")
	assert.Contains(t, out, "Using 'deploy'")
	assert.Contains(t, out, "my-cli deploy> ")
	assert.Contains(t, out, "Already at root command")
	assert.Contains(t, out, "Error running command:", "Errors should be printed without ending the loop")
}

func TestProgram_Interactive_EOF(t *testing.T) {
	tp := newTestProgram(t, nil)
	err := tp.prog.Interactive(context.Background(), strings.NewReader("deploy -e dev"))
	assert.NoError(t, err)
	assert.Equal(t, 1, tp.deploy.calls)
}

func TestProgram_Interactive_Cancel(t *testing.T) {
	tp := newTestProgram(t, nil)
	pr, pw := io.Pipe()
	defer func() {
		_ = pw.Close()
	}()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := tp.prog.Interactive(ctx, pr)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, tp.deploy.calls)
}

func TestProgram_Interactive_Nested(t *testing.T) {
	var (
		prog   *Program
		deploy = new(recorder)
		nested []error
	)
	b := New("my-cli").
		Command(Command{
			Name:    "deploy",
			Options: schema.NewMap().Set("env", schema.Str{Meta: schema.Meta{Alias: "e"}}),
			Action:  deploy.action,
		}).
		Command(Command{
			Options: schema.NewMap().Set("interactive", schema.Bool{Meta: schema.Meta{Alias: "i"}}),
			Action: func(_ *argv.Result, _ *Printer) error {
				assert.True(t, prog.IsInteractive())
				err := prog.Interactive(context.Background(), strings.NewReader("deploy -e other\n"))
				nested = append(nested, err)
				return err
			},
		})
	prog, out := buildTest(t, b)

	input := "-i\ndeploy -e prod\nquit\n"
	require.NoError(t, prog.Interactive(context.Background(), strings.NewReader(input)))
	assert.False(t, prog.IsInteractive(), "The session should be released when it ends")

	require.Len(t, nested, 1)
	assert.ErrorIs(t, nested[0], ErrAlreadyInteractive)
	assert.Equal(t, 1, deploy.calls, "Lines should all go to the running session")
	envName, _ := deploy.res.Str("env")
	assert.Equal(t, "prod", envName)
	assert.Equal(t, 1, strings.Count(out.String(), "interactively"), "A second session should not start")
	assert.Contains(t, out.String(), "Error running command: already in interactive mode")

	require.NoError(t, prog.Interactive(context.Background(), strings.NewReader("deploy -e again\n")), "A new session can start after the last one ends")
	assert.Equal(t, 2, deploy.calls)
}

func TestProgram_Interactive_UsageError(t *testing.T) {
	prog, out := buildTest(t, New("my-cli").
		Command(Command{
			Name: "deploy",
			Action: func(_ *argv.Result, _ *Printer) error {
				return NewUsageError("missing app")
			},
		}))

	require.NoError(t, prog.Interactive(context.Background(), strings.NewReader("deploy\n")))
	assert.Equal(t, 1, strings.Count(out.String(), "missing app"), "Usage errors are printed once, along with help")
	assert.NotContains(t, out.String(), "Error running command:")
	assert.Contains(t, out.String(), "my-cli deploy [FLAGS] [ARGS...]")
}
