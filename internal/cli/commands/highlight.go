package commands

import (
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/sqlmerge/internal/cli/output"
	"github.com/leapstack-labs/sqlmerge/pkg/highlight"
)

// HighlightOptions holds options for the highlight command.
type HighlightOptions struct {
	Page     bool
	Title    string
	Terminal bool
}

// NewHighlightCommand creates the highlight command.
func NewHighlightCommand() *cobra.Command {
	opts := &HighlightOptions{}

	cmd := &cobra.Command{
		Use:   "highlight [file]",
		Short: "Render SQL as highlighted HTML",
		Long: `Render SQL as HTML with span markup for keywords, numbers and quoted regions.
All text is HTML-escaped. Use --page for a standalone document with a stylesheet,
or --terminal for ANSI colors instead of HTML.`,
		Example: `  # HTML fragment
  sqlmerge highlight query.sql

  # Standalone page
  sqlmerge highlight query.sql --page --title "Orders query" > query.html

  # Terminal colors
  sqlmerge highlight query.sql --terminal`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHighlight(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Page, "page", false, "Emit a standalone HTML document")
	cmd.Flags().StringVar(&opts.Title, "title", "", "Document title for --page")
	cmd.Flags().BoolVar(&opts.Terminal, "terminal", false, "Emit ANSI terminal colors instead of HTML")
	cmd.MarkFlagsMutuallyExclusive("page", "terminal")

	return cmd
}

func runHighlight(cmd *cobra.Command, args []string, opts *HighlightOptions) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	sql, name, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(map[string]any{"input": name, "html": highlight.HTML(sql)})
	}

	switch {
	case opts.Terminal:
		return highlight.Terminal(r.Writer(), sql+"\n", cmdCtx.Cfg.Highlight.Style)
	case opts.Page:
		title := opts.Title
		if title == "" && name != "stdin" {
			title = name
		}
		r.Printf("%s", highlight.Page(sql, title))
	default:
		r.Println(highlight.HTML(sql))
	}
	return nil
}
