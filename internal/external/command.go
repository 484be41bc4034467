// Package external runs a third-party SQL formatter as a subprocess.
package external

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	"github.com/leapstack-labs/sqlmerge/pkg/format"
)

// DefaultCommand is the CLI of the sql-formatter package.
const DefaultCommand = "sql-formatter"

// ErrUnavailable is returned by Lookup when the formatter binary cannot be
// found.
var ErrUnavailable = errors.New("external formatter unavailable")

// waitDelay bounds how long Format waits for output pipes after the process
// is killed.
const waitDelay = time.Second

// CommandFormatter formats SQL by piping it through a formatter command.
// Options are written to a temporary JSON file passed with --config.
type CommandFormatter struct {
	Path string
	Args []string // extra arguments placed before the generated ones
}

// Lookup resolves name on PATH. An empty name means DefaultCommand.
func Lookup(name string) (*CommandFormatter, error) {
	if name == "" {
		name = DefaultCommand
	}
	path, err := exec.LookPath(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnavailable, name, err)
	}
	return &CommandFormatter{Path: path}, nil
}

// config is the sql-formatter configuration file. ExpandCommaLists and
// BreakJoins have no counterpart and are not written.
type config struct {
	TabWidth        int    `json:"tabWidth"`
	UseTabs         bool   `json:"useTabs"`
	KeywordCase     string `json:"keywordCase"`
	ExpressionWidth int    `json:"expressionWidth,omitempty"`
}

func newConfig(opts format.Options) config {
	c := config{
		TabWidth:        opts.IndentWidth,
		UseTabs:         opts.UseTabs,
		KeywordCase:     "preserve",
		ExpressionWidth: opts.MaxLineWidth,
	}
	if opts.UppercaseKeywords {
		c.KeywordCase = "upper"
	}
	return c
}

// Format implements format.External.
func (c *CommandFormatter) Format(ctx context.Context, sql string, opts format.Options) (string, error) {
	cfgPath, err := writeConfig(opts)
	if err != nil {
		return "", err
	}
	defer os.Remove(cfgPath)

	args := append([]string{}, c.Args...)
	args = append(args, "--config", cfgPath)
	if opts.Language != "" {
		args = append(args, "--language", opts.Language)
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, c.Path, args...)
	cmd.Stdin = strings.NewReader(sql)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = waitDelay

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", fmt.Errorf("%s: %w", filepath.Base(c.Path), ctxErr)
		}
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("%s: %w: %s", filepath.Base(c.Path), err, msg)
		}
		return "", fmt.Errorf("%s: %w", filepath.Base(c.Path), err)
	}
	return stdout.String(), nil
}

func writeConfig(opts format.Options) (string, error) {
	data, err := json.Marshal(newConfig(opts))
	if err != nil {
		return "", fmt.Errorf("failed to encode formatter config: %w", err)
	}

	f, err := os.CreateTemp("", "sqlmerge-formatter-*.json")
	if err != nil {
		return "", fmt.Errorf("failed to create formatter config: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("failed to write formatter config: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("failed to write formatter config: %w", err)
	}
	return f.Name(), nil
}
