package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/sqlmerge/internal/cli/output"
	"github.com/leapstack-labs/sqlmerge/pkg/merge"
)

// NewCountCommand creates the count command.
func NewCountCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "count [file]",
		Short: "Count ? placeholders outside quoted regions",
		Long: `Count the ? placeholders that merge would substitute. Question marks inside
single-quoted, double-quoted or backtick-quoted regions are not placeholders.`,
		Example: `  # Count placeholders in a file
  sqlmerge count query.sql

  # Count from stdin as JSON
  echo "SELECT '?' FROM t WHERE x = ?" | sqlmerge count -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCount(cmd, args)
		},
	}
}

func runCount(cmd *cobra.Command, args []string) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	sql, name, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	n := merge.CountPlaceholders(sql)

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(map[string]any{"input": name, "placeholders": n})
	case output.ModeMarkdown:
		r.Println(output.FormatKeyValue("Placeholders", fmt.Sprintf("%d", n)))
	default:
		r.Println(n)
	}
	return nil
}
