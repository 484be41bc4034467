package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/sqlmerge/internal/server"
)

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Long: `Start an HTTP server exposing the merge, count, format, minify, highlight
and load operations as JSON endpoints:

  GET  /healthz
  POST /api/count      {"sql": "..."}
  POST /api/merge      {"sql": "...", "params": [...], "beautify": false, "minify": false}
  POST /api/format     {"sql": "..."}
  POST /api/minify     {"sql": "..."}
  POST /api/highlight  {"sql": "..."}
  POST /api/load       load payload (JSON, or YAML with a yaml Content-Type)

Invalid parameters or payloads are answered with 400 and {"error": "..."}.
A placeholder/parameter count mismatch is not a request error: the result
carries the message in its "error" field.`,
		Example: `  # Start on the configured address
  sqlmerge serve

  # Start on a custom address
  sqlmerge serve --addr :8080`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx := NewCommandContext(cmd)
			cfg := cmdCtx.Cfg.Server
			if addr != "" {
				cfg.Addr = addr
			}

			srv := server.New(server.Config{
				Addr:              cfg.Addr,
				ReadHeaderTimeout: cfg.ReadHeaderTimeout,
				ShutdownTimeout:   cfg.ShutdownTimeout,
				Beautifier:        cmdCtx.Beautifier(),
				Logger:            cmdCtx.Logger,
			})

			cmdCtx.Renderer.Muted("Press Ctrl+C to stop")

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return serve(ctx, srv)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Address to listen on (default from config: 127.0.0.1:8787)")

	return cmd
}

// serve is replaced in tests.
var serve = func(ctx context.Context, srv *server.Server) error {
	return srv.Serve(ctx)
}
