// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/lvsparse/session"
	"github.com/katalvlaran/lvsparse/textfmt"
	"github.com/stretchr/testify/require"
)

// A has ones down column 1; B is the identity.
const input = `3 3 3
1 1 1
2 1 1
3 1 1
1 1 1
2 2 1
3 3 1
`

// run executes the CLI with args and the given stdin, returning stdout and stderr.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

func TestEvalOperators(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"default add", []string{"eval"}, "1: (1, 2.0)\n2: (1, 1.0) (2, 1.0)\n3: (1, 1.0) (3, 1.0)\n"},
		{"sub", []string{"eval", "--op=sub"}, "1:\n2: (1, 1.0) (2, -1.0)\n3: (1, 1.0) (3, -1.0)\n"},
		{"mul", []string{"eval", "--op=*"}, "1: (1, 1.0)\n2: (1, 1.0)\n3: (1, 1.0)\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, _, err := run(t, input, tc.args...)
			require.NoError(t, err)
			require.Equal(t, tc.want, out)
		})
	}
}

func TestShowTransposeScale(t *testing.T) {
	out, _, err := run(t, input, "show")
	require.NoError(t, err)
	require.Equal(t, "A:\n1: (1, 1.0)\n2: (1, 1.0)\n3: (1, 1.0)\nB:\n1: (1, 1.0)\n2: (2, 1.0)\n3: (3, 1.0)\n", out)

	out, _, err = run(t, input, "transpose")
	require.NoError(t, err)
	require.Equal(t, "1: (1, 1.0) (2, 1.0) (3, 1.0)\n2:\n3:\n", out)

	out, _, err = run(t, input, "scale", "--k", "2")
	require.NoError(t, err)
	require.Equal(t, "1: (1, 2.0)\n2: (1, 2.0)\n3: (1, 2.0)\n", out)
}

func TestEvalFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.txt")
	require.NoError(t, os.WriteFile(path, []byte(input), 0o644))

	out, _, err := run(t, "", "eval", "--op", "mul", path)
	require.NoError(t, err)
	require.Equal(t, "1: (1, 1.0)\n2: (1, 1.0)\n3: (1, 1.0)\n", out)

	_, _, err = run(t, "", "eval", filepath.Join(t.TempDir(), "missing.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseErrorsAndLenient(t *testing.T) {
	bad := "3 1 0\n1 1 abc\n"

	_, _, err := run(t, bad, "eval")
	require.ErrorIs(t, err, textfmt.ErrMalformedEntry)
	require.Contains(t, err.Error(), "line 2")

	out, _, err := run(t, bad, "eval", "--lenient")
	require.NoError(t, err)
	require.Equal(t, "1: (1, NaN)\n2:\n3:\n", out)
}

func TestInvalidOperatorFlag(t *testing.T) {
	_, _, err := run(t, input, "eval", "--op", "/")
	require.ErrorIs(t, err, ErrInvalidConfig)
	require.ErrorIs(t, err, session.ErrUnknownOperator)
}

func TestConfigFileAndPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sparsecalc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("operator: \"-\"\nscale: 3\n"), 0o644))

	out, _, err := run(t, input, "eval", "--config", path)
	require.NoError(t, err)
	require.Equal(t, "1:\n2: (1, 1.0) (2, -1.0)\n3: (1, 1.0) (3, -1.0)\n", out)

	out, _, err = run(t, input, "scale", "--config", path)
	require.NoError(t, err)
	require.Equal(t, "1: (1, 3.0)\n2: (1, 3.0)\n3: (1, 3.0)\n", out)

	// flags win over the file
	out, _, err = run(t, input, "eval", "--config", path, "--op", "+")
	require.NoError(t, err)
	require.Equal(t, "1: (1, 2.0)\n2: (1, 1.0) (2, 1.0)\n3: (1, 1.0) (3, 1.0)\n", out)

	// environment sits between file and flags
	t.Setenv(envOperator, "mul")
	out, _, err = run(t, input, "eval", "--config", path)
	require.NoError(t, err)
	require.Equal(t, "1: (1, 1.0)\n2: (1, 1.0)\n3: (1, 1.0)\n", out)
}

func TestVerboseLogsToStderr(t *testing.T) {
	out, logs, err := run(t, input, "eval", "-v")
	require.NoError(t, err)
	require.NotEmpty(t, out)
	require.Contains(t, logs, "config resolved")
	require.Contains(t, logs, "input parsed")
	require.Contains(t, logs, "session updated")

	_, logs, err = run(t, input, "eval")
	require.NoError(t, err)
	require.Empty(t, logs)
}
