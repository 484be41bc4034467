package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/sqlmerge/internal/cli/output"
	"github.com/leapstack-labs/sqlmerge/pkg/format"
	"github.com/leapstack-labs/sqlmerge/pkg/highlight"
)

// FormatOptions holds options for the format command.
type FormatOptions struct {
	Color bool
	Local bool
}

// NewFormatCommand creates the format command.
func NewFormatCommand() *cobra.Command {
	opts := &FormatOptions{}

	cmd := &cobra.Command{
		Use:   "format [file]",
		Short: "Beautify SQL",
		Long: `Beautify SQL for reading. The configured external formatter is used when it
is installed; otherwise, or when it fails, the built-in formatter upper-cases
keywords outside quoted regions and starts each major clause on its own line.

Formatting is cosmetic only and never changes the meaning of the SQL.`,
		Example: `  # Format a file
  sqlmerge format query.sql

  # Format with terminal colors
  sqlmerge format query.sql --color

  # Always use the built-in formatter
  sqlmerge format query.sql --local`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Color, "color", false, "Syntax-highlight the output (text mode)")
	cmd.Flags().BoolVar(&opts.Local, "local", false, "Skip the external formatter")

	return cmd
}

func runFormat(cmd *cobra.Command, args []string, opts *FormatOptions) error {
	cmdCtx := NewCommandContext(cmd)

	sql, name, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	var out string
	var external bool
	if opts.Local {
		out = format.Format(sql)
	} else {
		out, external = cmdCtx.Beautifier().Format(cmd.Context(), sql)
	}

	return renderSQL(cmdCtx, "Formatted SQL", name, out, external, opts.Color)
}

// renderSQL writes transformed SQL in the renderer's mode. color applies to
// text mode only.
func renderSQL(cmdCtx *CommandContext, title, name, sql string, external, color bool) error {
	r := cmdCtx.Renderer
	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(map[string]any{"input": name, "sql": sql, "external_formatter": external})
	case output.ModeMarkdown:
		r.Println(output.FormatHeader(1, fmt.Sprintf("%s: %s", title, name)))
		r.Println("")
		r.Println(output.FormatCodeBlock("sql", sql))
	default:
		if color {
			return highlight.Terminal(r.Writer(), sql+"\n", cmdCtx.Cfg.Highlight.Style)
		}
		// Text mode: just output the SQL directly
		r.Println(sql)
	}
	return nil
}
