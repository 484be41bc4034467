// Package config provides configuration management for the sqlmerge CLI.
package config

import (
	"time"

	"github.com/leapstack-labs/sqlmerge/internal/external"
	"github.com/leapstack-labs/sqlmerge/pkg/format"
	"github.com/leapstack-labs/sqlmerge/pkg/highlight"
)

// Config holds all CLI configuration options.
type Config struct {
	Verbose      bool            `koanf:"verbose"`
	OutputFormat string          `koanf:"output"`
	LogFormat    string          `koanf:"log_format"`
	Formatter    FormatterConfig `koanf:"formatter"`
	Highlight    HighlightConfig `koanf:"highlight"`
	Server       ServerConfig    `koanf:"server"`
}

// FormatterConfig controls the beautifier.
type FormatterConfig struct {
	// External is the external formatter command name or path.
	// DisabledExternal turns the external formatter off.
	External          string        `koanf:"external"`
	Timeout           time.Duration `koanf:"timeout"`
	Language          string        `koanf:"language"`
	IndentWidth       int           `koanf:"indent_width"`
	UseTabs           bool          `koanf:"use_tabs"`
	MaxLineWidth      int           `koanf:"max_line_width"`
	ExpandCommaLists  bool          `koanf:"expand_comma_lists"`
	UppercaseKeywords bool          `koanf:"uppercase_keywords"`
	BreakJoins        bool          `koanf:"break_joins"`
}

// Options returns the formatting preferences passed to an external formatter.
func (f FormatterConfig) Options() format.Options {
	return format.Options{
		Language:          f.Language,
		IndentWidth:       f.IndentWidth,
		UseTabs:           f.UseTabs,
		MaxLineWidth:      f.MaxLineWidth,
		ExpandCommaLists:  f.ExpandCommaLists,
		UppercaseKeywords: f.UppercaseKeywords,
		BreakJoins:        f.BreakJoins,
	}
}

// ExternalEnabled reports whether an external formatter should be looked up.
func (f FormatterConfig) ExternalEnabled() bool {
	return f.External != "" && f.External != DisabledExternal
}

// HighlightConfig controls terminal highlighting.
type HighlightConfig struct {
	Style string `koanf:"style"`
}

// ServerConfig holds configuration for the HTTP API server.
type ServerConfig struct {
	Addr              string        `koanf:"addr"`
	ReadHeaderTimeout time.Duration `koanf:"read_header_timeout"`
	ShutdownTimeout   time.Duration `koanf:"shutdown_timeout"`
}

// Default configuration values.
const (
	DefaultOutput            = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	DefaultLogFormat         = "text"
	DefaultExternal          = external.DefaultCommand
	DisabledExternal         = "none"
	DefaultAddr              = "127.0.0.1:8787"
	DefaultReadHeaderTimeout = 10 * time.Second
	DefaultShutdownTimeout   = 5 * time.Second
	DefaultHighlightStyle    = highlight.DefaultStyle
)

// Default returns the configuration used when nothing is configured.
func Default() *Config {
	opts := format.DefaultOptions()
	return &Config{
		OutputFormat: DefaultOutput,
		LogFormat:    DefaultLogFormat,
		Formatter: FormatterConfig{
			External:          DefaultExternal,
			Timeout:           format.DefaultTimeout,
			Language:          opts.Language,
			IndentWidth:       opts.IndentWidth,
			UseTabs:           opts.UseTabs,
			MaxLineWidth:      opts.MaxLineWidth,
			ExpandCommaLists:  opts.ExpandCommaLists,
			UppercaseKeywords: opts.UppercaseKeywords,
			BreakJoins:        opts.BreakJoins,
		},
		Highlight: HighlightConfig{Style: DefaultHighlightStyle},
		Server: ServerConfig{
			Addr:              DefaultAddr,
			ReadHeaderTimeout: DefaultReadHeaderTimeout,
			ShutdownTimeout:   DefaultShutdownTimeout,
		},
	}
}
