package format

import (
	"context"
	"log/slog"
	"strings"
	"time"
)

// DefaultTimeout bounds a call to an external formatter.
const DefaultTimeout = 5 * time.Second

// Options are formatting preferences for an external formatter. They are
// advisory and never affect the meaning of the SQL.
type Options struct {
	Language          string // dialect hint, e.g. "sql", "postgresql", "mysql"
	IndentWidth       int
	UseTabs           bool
	MaxLineWidth      int
	ExpandCommaLists  bool
	UppercaseKeywords bool
	BreakJoins        bool
}

// DefaultOptions returns the preferences used when none are configured.
func DefaultOptions() Options {
	return Options{
		Language:          "sql",
		IndentWidth:       2,
		MaxLineWidth:      80,
		ExpandCommaLists:  true,
		UppercaseKeywords: true,
		BreakJoins:        true,
	}
}

// External is a third-party formatter. Implementations must honor ctx
// cancellation.
type External interface {
	Format(ctx context.Context, sql string, opts Options) (string, error)
}

// ExternalFunc adapts a function to the External interface.
type ExternalFunc func(ctx context.Context, sql string, opts Options) (string, error)

// Format calls f.
func (f ExternalFunc) Format(ctx context.Context, sql string, opts Options) (string, error) {
	return f(ctx, sql, opts)
}

// Beautifier prefers an external formatter and falls back to Format.
// A nil External means no external formatter is available.
type Beautifier struct {
	External External
	Options  Options
	Timeout  time.Duration
	Logger   *slog.Logger
}

// Format beautifies sql. The second result reports whether the external
// formatter produced the text. External failures are logged at debug level
// and never returned.
func (b *Beautifier) Format(ctx context.Context, sql string) (string, bool) {
	if b == nil || b.External == nil {
		return Format(sql), false
	}

	timeout := b.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	out, err := b.External.Format(ctx, sql, b.Options)
	if err == nil && strings.TrimSpace(out) != "" {
		return strings.TrimRight(out, "\r\n"), true
	}

	logger := b.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if err != nil {
		logger.Debug("external formatter failed, using local formatter", "error", err)
	} else {
		logger.Debug("external formatter returned no output, using local formatter")
	}
	return Format(sql), false
}
