package main

import (
	"bytes"
	"context"
	"errors"
	"github.com/saylorsolutions/clif/argv"
	"github.com/saylorsolutions/clif/cli"
	"github.com/saylorsolutions/clif/env"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
)

func runTest(t *testing.T, vars map[string]string, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), args, strings.NewReader(stdin), &stdout, &stderr, env.Map(vars))
	return stdout.String(), stderr.String(), err
}

func TestRun_Deploy(t *testing.T) {
	tests := map[string]struct {
		args     []string
		vars     map[string]string
		expected string
	}{
		"Flags": {
			args:     []string{"deploy", "web", "-e", "prod", "-r", "3"},
			expected: "Deploying web to prod with 3 replica(s)\n",
		},
		"Alias and env": {
			args:     []string{"d", "web"},
			vars:     map[string]string{"FLASH_ENV": "staging"},
			expected: "Deploying web to staging with 1 replica(s)\n",
		},
		"Replicas from env": {
			args:     []string{"deploy", "web", "-e", "prod"},
			vars:     map[string]string{"FLASH_REPLICAS": "4"},
			expected: "Deploying web to prod with 4 replica(s)\n",
		},
		"Dry run": {
			args:     []string{"deploy", "--dry-run", "--env=dev", "web"},
			expected: "Would deploy web to dev with 1 replica(s)\n",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			out, _, err := runTest(t, tc.vars, "", tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, out)
		})
	}
}

func TestRun_Errors(t *testing.T) {
	_, _, err := runTest(t, nil, "", "deploy", "web")
	assert.ErrorIs(t, err, &argv.RequiredOptionMissingError{})

	_, _, err = runTest(t, nil, "", "deploy", "web", "-e", "prod", "-r", "many")
	assert.ErrorIs(t, err, argv.ErrParse)

	out, _, err := runTest(t, nil, "", "deploy", "-e", "prod")
	assert.ErrorIs(t, err, cli.ErrArgMap)
	assert.Contains(t, out, "flash deploy [FLAGS] APP", "Usage errors should print help")
}

func TestRun_Strict(t *testing.T) {
	_, stderr, err := runTest(t, nil, "", "status", "web", "--watch")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Ignoring unknown flags")

	_, _, err = runTest(t, map[string]string{"FLASH_STRICT": "true"}, "", "status", "web", "--watch")
	assert.ErrorIs(t, err, &argv.UnknownOptionError{})
}

func TestRun_Help(t *testing.T) {
	out, _, err := runTest(t, nil, "")
	require.NoError(t, err)
	assert.Contains(t, out, "Deploys apps to environments.")
	assert.Contains(t, out, "deploy, d")
	assert.Contains(t, out, "--interactive")

	out, _, err = runTest(t, nil, "", "status", "-h")
	require.NoError(t, err)
	assert.Contains(t, out, "flash status [FLAGS] APP")
	assert.Contains(t, out, "[$FLASH_ENV]")
}

func TestRun_Version(t *testing.T) {
	out, _, err := runTest(t, nil, "", "--version")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", out)
}

func TestRun_Interactive(t *testing.T) {
	out, _, err := runTest(t, nil, "$use deploy -e prod\nweb -r 2\nquit\n", "-i")
	require.NoError(t, err)
	assert.Contains(t, out, "Deploying web to prod with 2 replica(s)")
}

func TestRun_InteractiveNested(t *testing.T) {
	out, _, err := runTest(t, nil, "-i\ndeploy app --env prod\nquit\n", "-i")
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, "interactively"), "Only one interactive session should run")
	assert.Contains(t, out, "Error running command: already in interactive mode")
	assert.Contains(t, out, "Deploying app to prod with 1 replica(s)")
}

func TestReport(t *testing.T) {
	tests := map[string]struct {
		err      error
		code     int
		expected string
	}{
		"Success": {},
		"Error": {
			err:      errors.New("boom"),
			code:     1,
			expected: "error: boom\n",
		},
		"Usage error": {
			err:  cli.NewUsageError("missing app"),
			code: 1,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			var stderr bytes.Buffer
			assert.Equal(t, tc.code, report(&stderr, tc.err))
			assert.Equal(t, tc.expected, stderr.String())
		})
	}
}

func TestRun_UsageErrorShownOnce(t *testing.T) {
	var stderr bytes.Buffer
	out, _, err := runTest(t, nil, "", "deploy", "-e", "prod")
	require.Error(t, err)
	assert.Equal(t, 1, report(&stderr, err))
	assert.Empty(t, stderr.String(), "The program already printed the usage error")
	assert.Equal(t, 1, strings.Count(out, "usage error"))
}
