package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-algs4/algs/sort"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	color.NoColor = true

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(append([]string{}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestDefaultRun(t *testing.T) {
	out, _, err := execute(t)
	require.NoError(t, err)
	for _, alg := range sort.Algorithms() {
		assert.Contains(t, out, "== "+alg.String()+"\nA\nE\nE\nL\nM\nO\nP\nR\nS\nT\nX\n")
	}
}

func TestSingleAlgorithmCustomInput(t *testing.T) {
	out, _, err := execute(t, "shell", "-i", "bed bug dad yes zoo all bad yet", "-d")
	require.NoError(t, err)
	assert.Equal(t, "== shell\nzoo\nyet\nyes\ndad\nbug\nbed\nbad\nall\n", out)
}

func TestTraceGoesToStderr(t *testing.T) {
	out, errOut, err := execute(t, "mergebu", "--trace")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "== mergebu\n"))
	assert.Contains(t, errOut, "algorithm=mergebu")
	assert.Contains(t, errOut, "hi=10")
}

func TestList(t *testing.T) {
	out, _, err := execute(t, "--list")
	require.NoError(t, err)
	assert.Contains(t, out, "merge\tstable=true\n")
	assert.Contains(t, out, "shell\tstable=false\n")
}

func TestUnknownAlgorithm(t *testing.T) {
	_, _, err := execute(t, "bogo")
	assert.ErrorIs(t, err, sort.ErrUnknownAlgorithm)
}
