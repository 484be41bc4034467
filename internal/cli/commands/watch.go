package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/sqlmerge/internal/pipeline"
	"github.com/leapstack-labs/sqlmerge/pkg/format"
)

// debounceDelay coalesces the burst of events an editor save produces.
const debounceDelay = 100 * time.Millisecond

// WatchOptions holds options for the watch command.
type WatchOptions struct {
	ParamsOptions
	Beautify bool
	Minify   bool
}

// NewWatchCommand creates the watch command.
func NewWatchCommand() *cobra.Command {
	opts := &WatchOptions{}

	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Re-merge a SQL file whenever it or its parameters change",
		Long: `Merge a SQL file, then watch it and the --params-file (if any) and print the
merged result again after every change. Runs until interrupted.`,
		Example: `  # Watch a query with a parameter file
  sqlmerge watch query.sql --params-file params.json --beautify`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runWatch(ctx, cmd, args[0], opts)
		},
	}

	opts.register(cmd)
	cmd.Flags().BoolVar(&opts.Beautify, "beautify", false, "Beautify the merged SQL")
	cmd.Flags().BoolVar(&opts.Minify, "minify", false, "Minify the merged SQL")
	cmd.MarkFlagsMutuallyExclusive("beautify", "minify")

	return cmd
}

func runWatch(ctx context.Context, cmd *cobra.Command, path string, opts *WatchOptions) error {
	cmdCtx := NewCommandContext(cmd)
	logger := cmdCtx.Logger

	var b *format.Beautifier
	if opts.Beautify {
		b = cmdCtx.Beautifier()
	}

	render := func() {
		sql, name, err := readInput(cmd, []string{path})
		if err != nil {
			cmdCtx.Renderer.Error(err.Error())
			return
		}
		values, err := opts.values()
		if err != nil {
			cmdCtx.Renderer.Error(err.Error())
			return
		}
		out := pipeline.Run(ctx, sql, values, pipeline.Options{Beautify: opts.Beautify, Minify: opts.Minify}, b)
		if err := renderOutcome(cmdCtx.Renderer, name, out); err != nil {
			logger.Error("failed to render result", "error", err)
		}
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Watch parent directories: editors often replace files on save.
	targets := map[string]bool{}
	for _, p := range []string{path, opts.ParamsFile} {
		if p == "" {
			continue
		}
		abs, err := filepath.Abs(p)
		if err != nil {
			return err
		}
		targets[abs] = true
		if err := watcher.Add(filepath.Dir(abs)); err != nil {
			return fmt.Errorf("failed to watch %s: %w", p, err)
		}
	}

	render()

	trigger := make(chan struct{}, 1)
	eg, egctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		// Debounce timer
		var debounceTimer *time.Timer
		defer func() {
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
		}()

		for {
			select {
			case <-egctx.Done():
				return nil

			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				abs, err := filepath.Abs(event.Name)
				if err != nil || !targets[abs] {
					continue
				}

				if debounceTimer != nil {
					debounceTimer.Stop()
				}
				debounceTimer = time.AfterFunc(debounceDelay, func() {
					logger.Debug("file changed, re-merging", "file", event.Name)
					select {
					case trigger <- struct{}{}:
					default:
					}
				})

			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				logger.Error("watcher error", "error", err)
			}
		}
	})

	eg.Go(func() error {
		for {
			select {
			case <-egctx.Done():
				return nil
			case <-trigger:
				render()
			}
		}
	})

	return eg.Wait()
}
