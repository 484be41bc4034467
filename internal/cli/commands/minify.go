package commands

import (
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/sqlmerge/pkg/format"
)

// NewMinifyCommand creates the minify command.
func NewMinifyCommand() *cobra.Command {
	var color bool

	cmd := &cobra.Command{
		Use:   "minify [file]",
		Short: "Collapse SQL whitespace onto one line",
		Long: `Minify SQL: whitespace outside quoted regions collapses to a single space,
with no space after "(" or before ")" and ",". Quoted regions are kept verbatim.`,
		Example: `  # Minify a file
  sqlmerge minify query.sql

  # Minify stdin
  cat query.sql | sqlmerge minify -o text`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx := NewCommandContext(cmd)
			sql, name, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			return renderSQL(cmdCtx, "Minified SQL", name, format.Minify(sql), false, color)
		},
	}

	cmd.Flags().BoolVar(&color, "color", false, "Syntax-highlight the output (text mode)")

	return cmd
}
