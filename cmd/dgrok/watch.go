package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"dgrok/internal/loader"
	"dgrok/internal/observ"
	"dgrok/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch [flags]",
	Short: "Re-parse the search paths whenever a source file changes",
	Long: `Watch parses every file under the configured search paths, then waits for
changes to files matching the configured masks and parses the whole set again.
Press Ctrl-C to stop.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().Duration("debounce", watcher.DefaultDebounce, "quiet period before a change triggers a parse")
	watchCmd.Flags().Int("threads", 0, "parser threads (0 = from config)")
	watchCmd.Flags().String("metrics-out", "", "rewrite Prometheus metrics to this textfile after every parse")
}

func runWatch(cmd *cobra.Command, _ []string) error {
	g, err := readGlobals(cmd)
	if err != nil {
		return err
	}
	debounce, err := cmd.Flags().GetDuration("debounce")
	if err != nil {
		return fmt.Errorf("failed to get debounce flag: %w", err)
	}
	threads, err := cmd.Flags().GetInt("threads")
	if err != nil {
		return fmt.Errorf("failed to get threads flag: %w", err)
	}
	metricsOut, err := cmd.Flags().GetString("metrics-out")
	if err != nil {
		return fmt.Errorf("failed to get metrics-out flag: %w", err)
	}

	opts, _, err := loadOptions(g)
	if err != nil {
		return err
	}
	if threads > 0 {
		opts.ParserThreadCount = threads
	}
	if len(opts.SearchPaths) == 0 {
		opts.SearchPaths = []string{"./**"}
	}
	masks, err := loader.CompileMasks(opts.FileMasks)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	metrics := observ.NewMetrics()
	out := cmd.ErrOrStderr()
	reparse := func(changed []string) {
		if len(changed) > 0 && !g.quiet {
			fmt.Fprintf(out, "%s: %d files changed\n", time.Now().Format(time.TimeOnly), len(changed))
		}
		files, err := collectFiles(opts, nil)
		if err != nil {
			slog.Error("failed to list files", "error", err)
			return
		}
		cb, err := batch{opts: opts, metrics: metrics, files: files}.run(ctx)
		if err != nil {
			if !errors.Is(err, context.Canceled) {
				slog.Error("parse failed", "error", err)
			}
			return
		}
		if err := reportErrors(out, g, parseFlags{errors: "pretty"}, cb); err != nil {
			slog.Error("failed to report errors", "error", err)
		}
		if !g.quiet {
			fmt.Fprintln(out, summary(cb))
		}
		if metricsOut != "" {
			if err := metrics.WriteTextfile(metricsOut); err != nil {
				slog.Error("failed to write metrics", "error", err)
			}
		}
	}

	reparse(nil)

	w, err := watcher.New(masks, debounce, reparse, slog.Default(), metrics)
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer w.Close()
	if err := w.Add(opts.SearchPaths); err != nil {
		return fmt.Errorf("failed to watch search paths: %w", err)
	}
	if !g.quiet {
		fmt.Fprintf(out, "watching %d search paths\n", len(opts.SearchPaths))
	}

	if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
