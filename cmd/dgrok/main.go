package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"dgrok/internal/version"
)

var rootCmd = &cobra.Command{
	Use:               "dgrok",
	Short:             "Delphi source parser and code base inspector",
	Long:              `dgrok parses Delphi and Object Pascal sources, applies conditional compilation and catalogs the units and projects it finds`,
	SilenceUsage:      true,
	PersistentPreRunE: setupGlobals,
}

// main registers the subcommands and persistent flags and executes the root
// command. If command execution returns an error, the process exits with
// status code 1.
func main() {
	// Устанавливаем версию для автоматического флага --version
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("config", "", "path to dgrok.toml or dgrok.yaml (default: nearest one upwards)")
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("verbose", false, "log per-file details to stderr")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
