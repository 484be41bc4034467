package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/sqlmerge/internal/cli/config"
	"github.com/leapstack-labs/sqlmerge/internal/cli/output"
	"github.com/leapstack-labs/sqlmerge/internal/external"
	"github.com/leapstack-labs/sqlmerge/internal/params"
	"github.com/leapstack-labs/sqlmerge/pkg/format"
	"github.com/leapstack-labs/sqlmerge/pkg/merge"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext from the command's context.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := config.FromContext(cmd.Context())
	logger := config.GetLogger(cmd.Context())
	mode := output.Mode(cfg.OutputFormat)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// Beautifier builds the beautifier from config. The external formatter is
// used only when configured and found on PATH.
func (c *CommandContext) Beautifier() *format.Beautifier {
	f := c.Cfg.Formatter
	b := &format.Beautifier{
		Options: f.Options(),
		Timeout: f.Timeout,
		Logger:  c.Logger,
	}
	if !f.ExternalEnabled() {
		return b
	}

	ext, err := external.Lookup(f.External)
	if err != nil {
		c.Logger.Debug("external formatter not available, using local formatter", "error", err)
		return b
	}
	c.Logger.Debug("using external formatter", "path", ext.Path)
	b.External = ext
	return b
}

// readInput reads SQL from the file named by args[0], or from stdin when no
// argument or "-" is given. It returns the text and a display name. A single
// trailing newline is dropped.
func readInput(cmd *cobra.Command, args []string) (string, string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return trimNewline(string(data)), "stdin", nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	return trimNewline(string(data)), args[0], nil
}

func trimNewline(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}

// ParamsOptions are the flags selecting a parameter list.
type ParamsOptions struct {
	Params     string
	ParamsFile string
}

func (o *ParamsOptions) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.Params, "params", "p", "", "Parameters as a JSON array, e.g. '[\"a\", 1, null]'")
	cmd.Flags().StringVar(&o.ParamsFile, "params-file", "", "File containing a JSON array of parameters")
	cmd.MarkFlagsMutuallyExclusive("params", "params-file")
}

// values decodes the selected parameter list. No flag means no parameters.
func (o *ParamsOptions) values() ([]merge.Value, error) {
	text := o.Params
	if o.ParamsFile != "" {
		data, err := os.ReadFile(o.ParamsFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read params file: %w", err)
		}
		text = string(data)
	}
	return params.DecodeArray(text)
}
