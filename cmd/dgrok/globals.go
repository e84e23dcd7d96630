package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"dgrok/internal/config"
)

type globalFlags struct {
	configPath string
	color      string
	quiet      bool
	verbose    bool
	timings    bool
}

func readGlobals(cmd *cobra.Command) (globalFlags, error) {
	flags := cmd.Root().PersistentFlags()
	var (
		g   globalFlags
		err error
	)
	if g.configPath, err = flags.GetString("config"); err != nil {
		return g, fmt.Errorf("failed to get config flag: %w", err)
	}
	if g.color, err = flags.GetString("color"); err != nil {
		return g, fmt.Errorf("failed to get color flag: %w", err)
	}
	g.color = strings.ToLower(strings.TrimSpace(g.color))
	if g.quiet, err = flags.GetBool("quiet"); err != nil {
		return g, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if g.verbose, err = flags.GetBool("verbose"); err != nil {
		return g, fmt.Errorf("failed to get verbose flag: %w", err)
	}
	if g.timings, err = flags.GetBool("timings"); err != nil {
		return g, fmt.Errorf("failed to get timings flag: %w", err)
	}
	return g, nil
}

// setupGlobals applies --color and installs the default logger.
func setupGlobals(cmd *cobra.Command, _ []string) error {
	g, err := readGlobals(cmd)
	if err != nil {
		return err
	}
	switch g.color {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	case "auto":
	default:
		return fmt.Errorf("invalid --color value %q (expected auto|on|off)", g.color)
	}

	level := slog.LevelWarn
	switch {
	case g.verbose:
		level = slog.LevelDebug
	case g.quiet:
		level = slog.LevelError
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
	return nil
}

func (g globalFlags) useColor(f *os.File) bool {
	switch g.color {
	case "on":
		return true
	case "off":
		return false
	default:
		return isTerminal(f)
	}
}

// loadOptions resolves --config, falling back to the nearest config file
// above the working directory.
func loadOptions(g globalFlags) (config.Options, string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return config.Options{}, "", err
	}
	opts, path, err := config.Resolve(g.configPath, wd)
	if err != nil {
		return opts, path, fmt.Errorf("failed to load config: %w", err)
	}
	return opts, path, nil
}
