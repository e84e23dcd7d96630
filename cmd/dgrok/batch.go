package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"slices"

	"dgrok/internal/codebase"
	"dgrok/internal/config"
	"dgrok/internal/loader"
	"dgrok/internal/observ"
)

// batch is one parse run over a fixed file list.
type batch struct {
	opts    config.Options
	metrics *observ.Metrics
	files   []string
}

func (b batch) codeBase(sink codebase.ProgressSink) *codebase.CodeBase {
	cbOpts := []codebase.Option{
		codebase.WithLogger(slog.Default()),
		codebase.WithMetrics(b.metrics),
	}
	if sink != nil {
		cbOpts = append(cbOpts, codebase.WithSink(sink))
	}
	return codebase.New(b.opts.CreateDefines(), loader.DiskLoader{}, cbOpts...)
}

func (b batch) run(ctx context.Context) (*codebase.CodeBase, error) {
	cb := b.codeBase(nil)
	err := cb.ParseFiles(ctx, b.files, b.opts.ParserThreadCount)
	return cb, err
}

// collectFiles expands the command-line paths. Directories are searched with
// the configured masks; without arguments the configured search paths are
// used, or the working directory when there are none.
func collectFiles(opts config.Options, args []string) ([]string, error) {
	if len(args) == 0 {
		searchPaths := opts.SearchPaths
		if len(searchPaths) == 0 {
			searchPaths = []string{"."}
		}
		return loader.ListFiles(searchPaths, opts.FileMasks)
	}
	var files, searchPaths []string
	for _, arg := range args {
		dir, recursive := loader.SplitSearchPath(arg)
		st, err := os.Stat(dir)
		if err != nil {
			return nil, fmt.Errorf("failed to stat path: %w", err)
		}
		if st.IsDir() || recursive {
			searchPaths = append(searchPaths, arg)
			continue
		}
		files = append(files, arg)
	}
	if len(searchPaths) > 0 {
		found, err := loader.ListFiles(searchPaths, opts.FileMasks)
		if err != nil {
			return nil, err
		}
		files = append(files, found...)
	}
	slices.Sort(files)
	return slices.Compact(files), nil
}
