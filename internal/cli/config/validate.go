package config

import (
	"errors"
	"fmt"
	"slices"
)

var (
	validOutputs    = []string{"auto", "text", "markdown", "json"}
	validLogFormats = []string{"text", "json"}
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	var errs []error

	if !slices.Contains(validOutputs, c.OutputFormat) {
		errs = append(errs, fmt.Errorf("invalid output %q, must be one of: auto, text, markdown, json", c.OutputFormat))
	}
	if !slices.Contains(validLogFormats, c.LogFormat) {
		errs = append(errs, fmt.Errorf("invalid log_format %q, must be one of: text, json", c.LogFormat))
	}

	f := c.Formatter
	if f.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("formatter.timeout must be positive, got %s", f.Timeout))
	}
	if f.IndentWidth < 0 {
		errs = append(errs, fmt.Errorf("formatter.indent_width must not be negative, got %d", f.IndentWidth))
	}
	if f.MaxLineWidth < 0 {
		errs = append(errs, fmt.Errorf("formatter.max_line_width must not be negative, got %d", f.MaxLineWidth))
	}

	if c.Server.Addr == "" {
		errs = append(errs, errors.New("server.addr is required"))
	}
	if c.Server.ReadHeaderTimeout <= 0 {
		errs = append(errs, fmt.Errorf("server.read_header_timeout must be positive, got %s", c.Server.ReadHeaderTimeout))
	}
	if c.Server.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Errorf("server.shutdown_timeout must be positive, got %s", c.Server.ShutdownTimeout))
	}

	return errors.Join(errs...)
}
