package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"dgrok/internal/diagfmt"
	"dgrok/internal/lexer"
	"dgrok/internal/loader"
	"dgrok/internal/preproc"
	"dgrok/internal/token"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.pas",
	Short: "Tokenize a Delphi source file",
	Long: `Tokenize breaks down a Delphi source file into its constituent tokens.
With --filtered the tokens are passed through conditional compilation first,
so comments and inactive regions are dropped and include files are expanded.`,
	Args: cobra.ExactArgs(1),
	RunE: runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	tokenizeCmd.Flags().Bool("filtered", false, "apply conditional compilation and includes")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	// Получаем флаги
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}
	filtered, err := cmd.Flags().GetBool("filtered")
	if err != nil {
		return fmt.Errorf("failed to get filtered flag: %w", err)
	}
	g, err := readGlobals(cmd)
	if err != nil {
		return err
	}

	disk := loader.DiskLoader{}
	text, err := disk.Load(filePath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", filePath, err)
	}

	var tokens []token.Token
	var scanErr error
	scanner := lexer.FromText(filePath, text)
	if filtered {
		opts, _, err := loadOptions(g)
		if err != nil {
			return err
		}
		tokens, scanErr = preproc.NewFilter(scanner, opts.CreateDefines(), disk).All()
	} else {
		tokens, scanErr = scanner.All()
	}

	// Выводим токены в выбранном формате, даже если сканирование оборвалось
	switch format {
	case "pretty":
		err = diagfmt.FormatTokensPretty(cmd.OutOrStdout(), tokens)
	case "json":
		err = diagfmt.FormatTokensJSON(cmd.OutOrStdout(), tokens)
	}
	if err != nil {
		return err
	}

	if scanErr != nil {
		opts := diagfmt.PrettyOpts{Color: g.useColor(os.Stderr), BaseDir: workDir(), Context: true}
		if err := diagfmt.Pretty(cmd.ErrOrStderr(), filePath, scanErr, opts); err != nil {
			return err
		}
		return errors.New("tokenization failed")
	}
	return nil
}
