// Package main provides tests for the sqlmerge CLI.
package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sqlmerge/internal/cli"
)

func TestVersionCommand(t *testing.T) {
	t.Chdir(t.TempDir())
	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "sqlmerge")
}

func TestMinifyCommand(t *testing.T) {
	t.Chdir(t.TempDir())
	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetIn(strings.NewReader("SELECT  a ,\n  b FROM ( t )\n"))
	cmd.SetOut(buf)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"minify", "--output", "text"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "SELECT a, b FROM (t)\n", buf.String())
}
