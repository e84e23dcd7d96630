// Package config holds the settings of a dgrok run: where to look for
// files and which symbols and conditions the conditional filter starts
// with. Settings come from dgrok.toml or dgrok.yaml.
package config

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"dgrok/internal/preproc"
)

// DefaultFileMasks are the masks used when none are configured.
var DefaultFileMasks = []string{"*.pas", "*.dpr", "*.dpk", "*.pp"}

// Options is the decoded configuration file.
type Options struct {
	SearchPaths         []string `toml:"search_paths,omitempty" yaml:"search_paths,omitempty"`
	FileMasks           []string `toml:"file_masks,omitempty" yaml:"file_masks,omitempty"`
	CustomDefines       []string `toml:"custom_defines,omitempty" yaml:"custom_defines,omitempty"`
	DelphiVersionDefine string   `toml:"delphi_version_define,omitempty" yaml:"delphi_version_define,omitempty"`
	TrueIfConditions    []string `toml:"true_if_conditions,omitempty" yaml:"true_if_conditions,omitempty"`
	FalseIfConditions   []string `toml:"false_if_conditions,omitempty" yaml:"false_if_conditions,omitempty"`
	// Буквы A-Z; буква из On задаёт {$IFOPT X+}, из Off задаёт {$IFOPT X-}
	CompilerOptionsOn  string `toml:"compiler_options_on,omitempty" yaml:"compiler_options_on,omitempty"`
	CompilerOptionsOff string `toml:"compiler_options_off,omitempty" yaml:"compiler_options_off,omitempty"`
	ParserThreadCount  int    `toml:"parser_thread_count,omitempty" yaml:"parser_thread_count,omitempty"`
}

// Defaults returns the options of a run without a configuration file.
func Defaults() Options {
	return Options{
		FileMasks:         append([]string(nil), DefaultFileMasks...),
		ParserThreadCount: runtime.NumCPU(),
	}
}

// applyDefaults fills the keys a file left out.
func (o *Options) applyDefaults() {
	if len(o.FileMasks) == 0 {
		o.FileMasks = append([]string(nil), DefaultFileMasks...)
	}
	if o.ParserThreadCount == 0 {
		o.ParserThreadCount = runtime.NumCPU()
	}
}

var errBadOptionLetter = errors.New("compiler options must be letters A-Z")

// Validate checks the values decoding cannot.
func (o Options) Validate() error {
	for _, set := range []struct{ key, letters string }{
		{"compiler_options_on", o.CompilerOptionsOn},
		{"compiler_options_off", o.CompilerOptionsOff},
	} {
		for _, r := range set.letters {
			up := r &^ 0x20
			if up < 'A' || up > 'Z' {
				return fmt.Errorf("%s: %q: %w", set.key, r, errBadOptionLetter)
			}
		}
	}
	if o.ParserThreadCount < 0 {
		return fmt.Errorf("parser_thread_count: %d is negative", o.ParserThreadCount)
	}
	return nil
}

func hasOption(letters string, option byte) bool {
	return strings.IndexByte(strings.ToUpper(letters), option) >= 0
}

// CreateDefines builds the starting define table. Later steps override
// earlier ones: standard symbols, the 52 "IFOPT X+"/"IFOPT X-" pseudo
// directives, custom symbols, the version symbol, forced false
// conditions, forced true conditions.
func (o Options) CreateDefines() *preproc.Defines {
	d := preproc.StandardDefines()
	for option := byte('A'); option <= 'Z'; option++ {
		d.DefineDirective("IFOPT "+string(option)+"-", hasOption(o.CompilerOptionsOff, option))
		d.DefineDirective("IFOPT "+string(option)+"+", hasOption(o.CompilerOptionsOn, option))
	}
	for _, sym := range o.CustomDefines {
		if sym = strings.TrimSpace(sym); sym != "" {
			d.DefineSymbol(sym)
		}
	}
	d.DefineVersion(strings.TrimSpace(o.DelphiVersionDefine))
	for _, cond := range o.FalseIfConditions {
		if cond = strings.TrimSpace(cond); cond != "" {
			d.DefineDirectiveAsFalse(cond)
		}
	}
	for _, cond := range o.TrueIfConditions {
		if cond = strings.TrimSpace(cond); cond != "" {
			d.DefineDirectiveAsTrue(cond)
		}
	}
	return d
}
