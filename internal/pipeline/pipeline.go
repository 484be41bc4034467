// Package pipeline merges parameters into SQL and post-processes the result.
// It is shared by the CLI commands, watch mode and the HTTP API.
package pipeline

import (
	"context"

	"github.com/leapstack-labs/sqlmerge/pkg/format"
	"github.com/leapstack-labs/sqlmerge/pkg/merge"
)

// Options selects the post-processing applied to merged SQL. Minify wins
// when both are set.
type Options struct {
	Beautify bool
	Minify   bool
}

// Outcome is the result of Run.
type Outcome struct {
	SQL          string `json:"sql"`
	Placeholders int    `json:"placeholders"`
	Provided     int    `json:"provided"`
	Used         int    `json:"used"`
	Error        string `json:"error,omitempty"`
	External     bool   `json:"external_formatter,omitempty"`

	// Err is the parameter count mismatch, if any.
	Err error `json:"-"`
}

// OK reports whether placeholders and parameters matched.
func (o Outcome) OK() bool { return o.Err == nil }

// Run merges values into sql, then beautifies or minifies the merged text.
// A count mismatch is reported in the Outcome; the partially merged SQL is
// still post-processed. b may be nil.
func Run(ctx context.Context, sql string, values []merge.Value, opts Options, b *format.Beautifier) Outcome {
	res := merge.Merge(sql, values)

	out := Outcome{
		SQL:          res.SQL,
		Placeholders: res.Placeholders,
		Provided:     len(values),
		Used:         res.Used,
		Err:          res.Err,
	}
	if res.Err != nil {
		out.Error = res.Err.Error()
	}

	switch {
	case opts.Minify:
		out.SQL = format.Minify(out.SQL)
	case opts.Beautify:
		out.SQL, out.External = b.Format(ctx, out.SQL)
	}
	return out
}
