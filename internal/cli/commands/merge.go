package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/sqlmerge/internal/cli/output"
	"github.com/leapstack-labs/sqlmerge/internal/pipeline"
	"github.com/leapstack-labs/sqlmerge/pkg/format"
)

// MergeOptions holds options for the merge command.
type MergeOptions struct {
	ParamsOptions
	Beautify bool
	Minify   bool
	Strict   bool
}

// NewMergeCommand creates the merge command.
func NewMergeCommand() *cobra.Command {
	opts := &MergeOptions{}

	cmd := &cobra.Command{
		Use:   "merge [file]",
		Short: "Substitute ? placeholders with escaped parameter values",
		Long: `Replace each ? placeholder outside quoted regions with the next parameter,
escaped as a SQL literal. Strings are single-quoted with embedded quotes doubled;
numbers, booleans and null are written as literals.

A placeholder/parameter count mismatch is reported as a warning and the
best-effort SQL is still printed. Use --strict to fail instead.

Reads SQL from the file argument, or from stdin when none or "-" is given.`,
		Example: `  # Merge a single parameter
  echo "SELECT * FROM t WHERE id = ?" | sqlmerge merge --params '["784"]'

  # Merge parameters from a file and beautify the result
  sqlmerge merge query.sql --params-file params.json --beautify

  # Fail on a count mismatch
  sqlmerge merge query.sql -p '[1, 2]' --strict`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMerge(cmd, args, opts)
		},
	}

	opts.register(cmd)
	cmd.Flags().BoolVar(&opts.Beautify, "beautify", false, "Beautify the merged SQL")
	cmd.Flags().BoolVar(&opts.Minify, "minify", false, "Minify the merged SQL")
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "Fail when placeholders and parameters do not match")
	cmd.MarkFlagsMutuallyExclusive("beautify", "minify")

	return cmd
}

func runMerge(cmd *cobra.Command, args []string, opts *MergeOptions) error {
	cmdCtx := NewCommandContext(cmd)

	sql, name, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	values, err := opts.values()
	if err != nil {
		return err
	}

	var b *format.Beautifier
	if opts.Beautify {
		b = cmdCtx.Beautifier()
	}

	out := pipeline.Run(cmd.Context(), sql, values, pipeline.Options{Beautify: opts.Beautify, Minify: opts.Minify}, b)
	cmdCtx.Logger.Debug("merged parameters",
		"input", name,
		"placeholders", out.Placeholders,
		"provided", out.Provided,
		"used", out.Used,
	)

	if !out.OK() && opts.Strict {
		return fmt.Errorf("merge failed: %w", out.Err)
	}
	return renderOutcome(cmdCtx.Renderer, name, out)
}

// renderOutcome writes a merge outcome in the renderer's mode.
func renderOutcome(r *output.Renderer, name string, out pipeline.Outcome) error {
	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(out)
	case output.ModeMarkdown:
		r.Println(output.FormatHeader(1, fmt.Sprintf("Merged SQL: %s", name)))
		r.Println("")
		r.Println(output.FormatCodeBlock("sql", out.SQL))
		r.Println("")
		r.Println(output.FormatKeyValue("Placeholders", fmt.Sprintf("%d", out.Placeholders)))
		r.Println(output.FormatKeyValue("Parameters", fmt.Sprintf("%d", out.Provided)))
		r.Println(output.FormatKeyValue("Used", fmt.Sprintf("%d", out.Used)))
		if !out.OK() {
			r.Println(output.FormatKeyValue("Error", out.Error))
		}
	default:
		// Text mode: just output the SQL directly
		r.Println(out.SQL)
		if !out.OK() {
			r.Warning(out.Error)
		}
	}
	return nil
}
