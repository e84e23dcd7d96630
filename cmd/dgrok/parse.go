package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"dgrok/internal/codebase"
	"dgrok/internal/config"
	"dgrok/internal/diagfmt"
	"dgrok/internal/loader"
	"dgrok/internal/observ"
	"dgrok/internal/parser"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] [file.pas|directory ...]",
	Short: "Parse Delphi sources and catalog their units and projects",
	Long: `Parse reads the given files, or every file matching the configured masks
under the configured search paths, and catalogs the units and projects it finds.
A directory argument is searched with the configured masks; append /** to
search it recursively. Files that fail to parse are reported and do not stop
the others.`,
	RunE: runParse,
}

func init() {
	parseCmd.Flags().String("rule", "", "parse a single file as this grammar rule (e.g. Expression)")
	parseCmd.Flags().String("format", "", "write syntax trees to stdout (tree|json|msgpack)")
	parseCmd.Flags().String("errors", "pretty", "error output format (pretty|json)")
	parseCmd.Flags().String("progress", "auto", "show batch progress (auto|on|off)")
	parseCmd.Flags().Int("threads", 0, "parser threads (0 = from config)")
	parseCmd.Flags().String("metrics-out", "", "write Prometheus metrics to this textfile")
	parseCmd.Flags().Int("max-errors", 0, "maximum number of errors to show in JSON (0 = all)")
	addProfileFlags(parseCmd)
}

type parseFlags struct {
	rule       string
	format     string
	errors     string
	progress   string
	threads    int
	metricsOut string
	maxErrors  int
}

func readParseFlags(cmd *cobra.Command) (parseFlags, error) {
	var (
		pf  parseFlags
		err error
	)
	flags := cmd.Flags()
	if pf.rule, err = flags.GetString("rule"); err != nil {
		return pf, fmt.Errorf("failed to get rule flag: %w", err)
	}
	if pf.format, err = flags.GetString("format"); err != nil {
		return pf, fmt.Errorf("failed to get format flag: %w", err)
	}
	if pf.errors, err = flags.GetString("errors"); err != nil {
		return pf, fmt.Errorf("failed to get errors flag: %w", err)
	}
	if pf.progress, err = flags.GetString("progress"); err != nil {
		return pf, fmt.Errorf("failed to get progress flag: %w", err)
	}
	if pf.threads, err = flags.GetInt("threads"); err != nil {
		return pf, fmt.Errorf("failed to get threads flag: %w", err)
	}
	if pf.metricsOut, err = flags.GetString("metrics-out"); err != nil {
		return pf, fmt.Errorf("failed to get metrics-out flag: %w", err)
	}
	if pf.maxErrors, err = flags.GetInt("max-errors"); err != nil {
		return pf, fmt.Errorf("failed to get max-errors flag: %w", err)
	}
	return pf, nil
}

func runParse(cmd *cobra.Command, args []string) error {
	g, err := readGlobals(cmd)
	if err != nil {
		return err
	}
	pf, err := readParseFlags(cmd)
	if err != nil {
		return err
	}
	if pf.errors != "pretty" && pf.errors != "json" {
		return fmt.Errorf("unknown errors format: %s", pf.errors)
	}
	var treeFormat diagfmt.TreeFormat
	if pf.format != "" {
		if treeFormat, err = diagfmt.ParseTreeFormat(pf.format); err != nil {
			return err
		}
	}
	withUI, err := progressEnabled(pf.progress, g.quiet, interactiveOutput)
	if err != nil {
		return err
	}

	opts, _, err := loadOptions(g)
	if err != nil {
		return err
	}
	session, err := setupProfiling(cmd)
	if err != nil {
		return err
	}
	defer func() {
		if err := session.Stop(); err != nil {
			slog.Error("failed to finish profiling", "error", err)
		}
	}()
	if pf.threads > 0 {
		opts.ParserThreadCount = pf.threads
	}

	if pf.rule != "" {
		if treeFormat == "" {
			treeFormat = diagfmt.TreeFormatTree
		}
		return runParseRule(cmd, g, opts, pf.rule, treeFormat, args)
	}

	timer := observ.NewTimer()
	done := timer.Track("discover")
	files, err := collectFiles(opts, args)
	if err != nil {
		return err
	}
	done(fmt.Sprintf("%d files", len(files)))
	if len(files) == 0 {
		return errors.New("no source files found")
	}

	metrics := observ.NewMetrics()
	b := batch{opts: opts, metrics: metrics, files: files}
	done = timer.Track("parse")
	var cb *codebase.CodeBase
	if withUI {
		cb, err = runBatchWithUI(cmd.Context(), "parsing", b)
	} else {
		cb, err = b.run(cmd.Context())
	}
	if err != nil {
		return err
	}
	done(fmt.Sprintf("%d threads", opts.ParserThreadCount))

	done = timer.Track("report")
	if treeFormat != "" {
		if err := writeTrees(cmd.OutOrStdout(), treeFormat, cb); err != nil {
			return err
		}
	}
	if err := reportErrors(cmd.ErrOrStderr(), g, pf, cb); err != nil {
		return err
	}
	if !g.quiet {
		fmt.Fprintln(cmd.ErrOrStderr(), summary(cb))
	}
	done("")

	if pf.metricsOut != "" {
		if err := metrics.WriteTextfile(pf.metricsOut); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
	}
	if g.timings {
		if err := timer.WriteSummary(cmd.ErrOrStderr()); err != nil {
			return err
		}
	}
	if n := cb.ErrorCount(); n > 0 {
		return fmt.Errorf("%d of %d files failed to parse", n, len(files))
	}
	return nil
}

// runParseRule parses one file as a single grammar rule, without cataloging.
func runParseRule(cmd *cobra.Command, g globalFlags, opts config.Options, ruleName string, format diagfmt.TreeFormat, args []string) error {
	if len(args) != 1 {
		return errors.New("--rule needs exactly one file")
	}
	rule, ok := parser.LookupRule(ruleName)
	if !ok {
		return fmt.Errorf("unknown rule %q", ruleName)
	}
	path := args[0]
	disk := loader.DiskLoader{}
	text, err := disk.Load(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	tree, err := parser.FromText(text, path, opts.CreateDefines(), disk).ParseRule(rule)
	if err != nil {
		prettyOpts := diagfmt.PrettyOpts{Color: g.useColor(os.Stderr), BaseDir: workDir(), Context: true}
		if perr := diagfmt.Pretty(cmd.ErrOrStderr(), path, err, prettyOpts); perr != nil {
			return perr
		}
		return fmt.Errorf("%s: %s failed to parse", path, rule)
	}
	return diagfmt.WriteTrees(cmd.OutOrStdout(), format, []diagfmt.FileTree{diagfmt.NewFileTree(path, rule.String(), tree)})
}

func writeTrees(w io.Writer, format diagfmt.TreeFormat, cb *codebase.CodeBase) error {
	parsed := cb.ParsedFiles()
	trees := make([]diagfmt.FileTree, 0, len(parsed))
	for _, pf := range parsed {
		trees = append(trees, diagfmt.NewFileTree(pf.FileName, pf.Name, pf.Content))
	}
	return diagfmt.WriteTrees(w, format, trees)
}

func reportErrors(w io.Writer, g globalFlags, pf parseFlags, cb *codebase.CodeBase) error {
	errs := cb.Errors()
	if pf.errors == "json" {
		return diagfmt.JSON(w, errs, diagfmt.JSONOpts{IncludePositions: true, BaseDir: workDir(), Max: pf.maxErrors})
	}
	if len(errs) == 0 {
		return nil
	}
	return diagfmt.PrettyAll(w, errs, diagfmt.PrettyOpts{
		Color:   g.useColor(os.Stderr),
		BaseDir: workDir(),
		Context: true,
	})
}

func summary(cb *codebase.CodeBase) string {
	return fmt.Sprintf("%d parsed (%d units, %d projects), %d errors in %.1f ms",
		cb.ParsedFileCount(), cb.UnitCount(), cb.ProjectCount(), cb.ErrorCount(),
		toMillis(cb.ParseDuration()))
}

func toMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

func workDir() string {
	wd, err := os.Getwd()
	if err != nil {
		return ""
	}
	return wd
}
