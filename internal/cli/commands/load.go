package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/sqlmerge/internal/params"
	"github.com/leapstack-labs/sqlmerge/internal/pipeline"
	"github.com/leapstack-labs/sqlmerge/pkg/format"
)

// LoadOptions holds options for the load command.
type LoadOptions struct {
	YAML     bool
	Beautify bool
	Minify   bool
	Strict   bool
}

// NewLoadCommand creates the load command.
func NewLoadCommand() *cobra.Command {
	opts := &LoadOptions{}

	cmd := &cobra.Command{
		Use:   "load [payload]",
		Short: "Merge a saved query payload",
		Long: `Load a payload holding a query and its parameters, then merge them.

The payload is an object with a string "sql" field and an array "values" field:

  {"sql": "SELECT * FROM t WHERE id = ?", "values": [784]}

Files ending in .yaml or .yml are read as YAML, anything else as JSON.
Use --yaml when piping a YAML payload on stdin.`,
		Example: `  # Merge a JSON payload
  sqlmerge load saved.json

  # Merge a YAML payload and beautify
  sqlmerge load saved.yaml --beautify`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLoad(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.YAML, "yaml", false, "Parse the payload as YAML")
	cmd.Flags().BoolVar(&opts.Beautify, "beautify", false, "Beautify the merged SQL")
	cmd.Flags().BoolVar(&opts.Minify, "minify", false, "Minify the merged SQL")
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "Fail when placeholders and parameters do not match")
	cmd.MarkFlagsMutuallyExclusive("beautify", "minify")

	return cmd
}

func runLoad(cmd *cobra.Command, args []string, opts *LoadOptions) error {
	cmdCtx := NewCommandContext(cmd)

	var data []byte
	var err error
	name := "stdin"
	kind := params.KindJSON
	if len(args) == 0 || args[0] == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		name = args[0]
		kind = params.KindFromPath(name)
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return fmt.Errorf("failed to read payload: %w", err)
	}
	if opts.YAML {
		kind = params.KindYAML
	}

	payload, err := params.DecodeLoad(data, kind)
	if err != nil {
		return err
	}
	cmdCtx.Logger.Debug("loaded payload", "input", name, "kind", kind, "values", len(payload.Values))

	var b *format.Beautifier
	if opts.Beautify {
		b = cmdCtx.Beautifier()
	}
	out := pipeline.Run(cmd.Context(), payload.SQL, payload.Values, pipeline.Options{Beautify: opts.Beautify, Minify: opts.Minify}, b)

	if !out.OK() && opts.Strict {
		return fmt.Errorf("merge failed: %w", out.Err)
	}
	return renderOutcome(cmdCtx.Renderer, name, out)
}
