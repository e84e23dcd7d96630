package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"dgrok/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Create or inspect dgrok configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Write a default dgrok.toml (or dgrok.yaml)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

func init() {
	configInitCmd.Flags().String("format", "toml", "file format (toml|yaml)")
	configInitCmd.Flags().Bool("force", false, "overwrite an existing file")
	configShowCmd.Flags().String("format", "", "output format (toml|yaml; default: that of the file in use)")
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}

func readConfigFormat(cmd *cobra.Command) (config.Format, error) {
	value, err := cmd.Flags().GetString("format")
	if err != nil {
		return "", fmt.Errorf("failed to get format flag: %w", err)
	}
	switch config.Format(value) {
	case config.FormatTOML, config.FormatYAML, "":
		return config.Format(value), nil
	}
	return "", fmt.Errorf("unknown config format %q: %w", value, config.ErrUnknownFormat)
}

// runConfigInit writes the defaults into dir, refusing to replace an
// existing file unless --force is given.
func runConfigInit(cmd *cobra.Command, args []string) error {
	format, err := readConfigFormat(cmd)
	if err != nil {
		return err
	}
	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return fmt.Errorf("failed to get force flag: %w", err)
	}

	target := "."
	if len(args) == 1 {
		target = args[0]
	}
	if err := os.MkdirAll(target, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %q: %w", target, err)
	}

	name := "dgrok.toml"
	if format == config.FormatYAML {
		name = "dgrok.yaml"
	}
	path := filepath.Join(target, name)
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config already exists: %s", path)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	opts := config.Defaults()
	opts.SearchPaths = []string{"./**"}
	opts.DelphiVersionDefine = "VER150"
	data, err := config.Encode(opts, formatOrTOML(format))
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", path)
	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	g, err := readGlobals(cmd)
	if err != nil {
		return err
	}
	format, err := readConfigFormat(cmd)
	if err != nil {
		return err
	}
	opts, path, err := loadOptions(g)
	if err != nil {
		return err
	}
	if format == "" && path != "" {
		if format, err = config.FormatOf(path); err != nil {
			return err
		}
	}
	data, err := config.Encode(opts, formatOrTOML(format))
	if err != nil {
		return err
	}
	if !g.quiet {
		source := path
		if source == "" {
			source = "built-in defaults"
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "# from %s\n", source)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func formatOrTOML(f config.Format) config.Format {
	if f == "" {
		return config.FormatTOML
	}
	return f
}
