package external

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sqlmerge/pkg/format"
)

// writeScript creates an executable shell script in a temp directory.
func writeScript(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts not supported on windows")
	}
	path := filepath.Join(t.TempDir(), "fake-formatter")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755)) //nolint:gosec // test script must be executable
	return path
}

func TestLookup(t *testing.T) {
	t.Run("missing binary", func(t *testing.T) {
		f, err := Lookup("sqlmerge-no-such-formatter")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnavailable)
		assert.Nil(t, f)
	})

	t.Run("explicit path", func(t *testing.T) {
		path := writeScript(t, "cat")
		f, err := Lookup(path)
		require.NoError(t, err)
		assert.Equal(t, path, f.Path)
	})
}

func TestCommandFormatter_Format(t *testing.T) {
	path := writeScript(t, "tr 'a-z' 'A-Z'")
	f := &CommandFormatter{Path: path}

	out, err := f.Format(context.Background(), "select a from t", format.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "SELECT A FROM T", out)
}

func TestCommandFormatter_PassesOptions(t *testing.T) {
	dir := t.TempDir()
	argsFile := filepath.Join(dir, "args")
	cfgFile := filepath.Join(dir, "config.json")
	path := writeScript(t, `echo "$@" > `+argsFile+`
cp "$2" `+cfgFile+`
cat`)
	f := &CommandFormatter{Path: path}

	opts := format.Options{Language: "postgresql", IndentWidth: 4, UseTabs: true, MaxLineWidth: 100, UppercaseKeywords: false}
	out, err := f.Format(context.Background(), "select 1", opts)
	require.NoError(t, err)
	assert.Equal(t, "select 1", out)

	args, err := os.ReadFile(argsFile)
	require.NoError(t, err)
	fields := strings.Fields(string(args))
	require.Len(t, fields, 4)
	assert.Equal(t, "--config", fields[0])
	assert.Equal(t, []string{"--language", "postgresql"}, fields[2:])

	data, err := os.ReadFile(cfgFile)
	require.NoError(t, err)
	var cfg map[string]any
	require.NoError(t, json.Unmarshal(data, &cfg))
	assert.Equal(t, map[string]any{
		"tabWidth":        float64(4),
		"useTabs":         true,
		"keywordCase":     "preserve",
		"expressionWidth": float64(100),
	}, cfg)

	_, err = os.Stat(fields[1])
	assert.True(t, os.IsNotExist(err), "config file should be removed")
}

func TestCommandFormatter_Failure(t *testing.T) {
	path := writeScript(t, "echo 'Parse error at line 1' >&2\nexit 3")
	f := &CommandFormatter{Path: path}

	_, err := f.Format(context.Background(), "select", format.DefaultOptions())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Parse error at line 1")
}

func TestCommandFormatter_Timeout(t *testing.T) {
	path := writeScript(t, "exec sleep 5")
	f := &CommandFormatter{Path: path}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := f.Format(ctx, "select 1", format.DefaultOptions())
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 3*time.Second)
}

func TestCommandFormatter_WithBeautifier(t *testing.T) {
	path := writeScript(t, "exit 1")
	b := &format.Beautifier{External: &CommandFormatter{Path: path}}

	out, external := b.Format(context.Background(), "select a from t")
	assert.False(t, external)
	assert.Equal(t, "SELECT a\nFROM t", out)
}
