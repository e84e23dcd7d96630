package preproc

import (
	"maps"
	"strconv"
	"strings"

	"dgrok/internal/names"
)

// Defines is the compiler-define state consulted by conditional directives.
//
// Symbols are matched case-insensitively. Besides plain symbols it holds a
// table of forced directives keyed by their normalised full text
// ("IFOPT R+", "IF COMPILERVERSION >= 20") and named numeric constants for
// $IF expressions.
type Defines struct {
	symbols    map[string]bool
	directives map[string]bool
	numbers    map[string]float64
}

// NewDefines returns an empty define table.
func NewDefines() *Defines {
	return &Defines{
		symbols:    make(map[string]bool),
		directives: make(map[string]bool),
		numbers:    make(map[string]float64),
	}
}

// StandardDefines returns the defines every Win32 Delphi compiler predefines.
func StandardDefines() *Defines {
	d := NewDefines()
	for _, sym := range []string{"CONDITIONALEXPRESSIONS", "CPU386", "MSWINDOWS", "WIN32"} {
		d.DefineSymbol(sym)
	}
	return d
}

// Clone returns an independent copy; the filter mutates its own snapshot.
func (d *Defines) Clone() *Defines {
	return &Defines{
		symbols:    maps.Clone(d.symbols),
		directives: maps.Clone(d.directives),
		numbers:    maps.Clone(d.numbers),
	}
}

// DefineSymbol makes $IFDEF sym true.
func (d *Defines) DefineSymbol(sym string) {
	d.symbols[names.Fold(sym)] = true
}

// UndefineSymbol makes $IFDEF sym false.
func (d *Defines) UndefineSymbol(sym string) {
	d.symbols[names.Fold(sym)] = false
}

// IsDefined reports whether sym is currently defined.
func (d *Defines) IsDefined(sym string) bool {
	return d.symbols[names.Fold(sym)]
}

// DefineVersion defines a VERnnn symbol and derives CompilerVersion and
// RTLVersion (nnn / 10) from it. Other symbols are simply defined.
func (d *Defines) DefineVersion(sym string) {
	if sym == "" {
		return
	}
	d.DefineSymbol(sym)
	upper := strings.ToUpper(sym)
	if !strings.HasPrefix(upper, "VER") {
		return
	}
	n, err := strconv.Atoi(upper[3:])
	if err != nil {
		return
	}
	v := float64(n) / 10
	d.SetNumber("CompilerVersion", v)
	d.SetNumber("RTLVersion", v)
}

// SetNumber sets a named numeric constant for $IF expressions.
func (d *Defines) SetNumber(name string, v float64) {
	d.numbers[names.Fold(name)] = v
}

// Number looks up a named numeric constant.
func (d *Defines) Number(name string) (float64, bool) {
	v, ok := d.numbers[names.Fold(name)]
	return v, ok
}

// DefineDirective forces the truth value of a full directive text such as
// "IFOPT R+" or "IF Declared(Foo)".
func (d *Defines) DefineDirective(text string, value bool) {
	d.directives[normalizeDirective(text)] = value
}

// DefineDirectiveAsTrue forces text to evaluate true.
func (d *Defines) DefineDirectiveAsTrue(text string) { d.DefineDirective(text, true) }

// DefineDirectiveAsFalse forces text to evaluate false.
func (d *Defines) DefineDirectiveAsFalse(text string) { d.DefineDirective(text, false) }

// LookupDirective returns a forced directive value.
func (d *Defines) LookupDirective(text string) (value, ok bool) {
	value, ok = d.directives[normalizeDirective(text)]
	return value, ok
}

// normalizeDirective collapses whitespace and folds case so that
// "IF  Defined(X)" and "if defined(x)" share a key.
func normalizeDirective(text string) string {
	return names.Fold(strings.Join(strings.Fields(text), " "))
}
