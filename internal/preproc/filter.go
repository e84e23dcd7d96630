// Package preproc implements conditional compilation for Delphi source.
//
// Filter sits between the scanner and the parser. It consumes compiler
// directives, keeps a stack of conditional frames, splices include files and
// yields only the tokens that reach the parser. Comments never pass through.
package preproc

import (
	"strings"

	"dgrok/internal/diag"
	"dgrok/internal/lexer"
	"dgrok/internal/source"
	"dgrok/internal/token"
)

// maxIncludeDepth bounds $I nesting; deeper chains are almost always cycles.
const maxIncludeDepth = 32

// IncludeLoader resolves and reads files named by $I / $INCLUDE.
type IncludeLoader interface {
	ExpandFileName(currentDir, fileName string) string
	Load(fileName string) (string, error)
}

// frame is one open $IF..$ENDIF region.
type frame struct {
	opener  token.Token
	matched bool // some branch of the chain was already taken
	active  bool // tokens in the current branch reach the parser
	outer   bool // enclosing region is active
	sawElse bool
}

// Filter yields the parser-visible tokens of one file.
type Filter struct {
	defines  *Defines
	loader   IncludeLoader
	scanners []*lexer.Scanner // include stack, current file on top
	frames   []frame
}

// NewFilter wraps sc. The filter mutates defines; pass a Clone when the
// caller's table must stay untouched. loader may be nil when include files
// are not expected.
func NewFilter(sc *lexer.Scanner, defines *Defines, loader IncludeLoader) *Filter {
	if defines == nil {
		defines = NewDefines()
	}
	return &Filter{defines: defines, loader: loader, scanners: []*lexer.Scanner{sc}}
}

// Defines returns the table the filter evaluates against.
func (f *Filter) Defines() *Defines { return f.defines }

// File returns the main file being filtered.
func (f *Filter) File() *source.File { return f.scanners[0].File() }

// Next returns the next parser-visible token, or nil at end of input.
func (f *Filter) Next() (*token.Token, error) {
	for {
		sc := f.scanners[len(f.scanners)-1]
		tok, err := sc.Next()
		if err != nil {
			return nil, err
		}
		if tok == nil {
			if len(f.scanners) > 1 {
				f.scanners = f.scanners[:len(f.scanners)-1]
				continue
			}
			if n := len(f.frames); n > 0 {
				open := f.frames[n-1].opener
				return nil, diag.New(diag.DirUnbalanced, open.Loc,
					"Missing $ENDIF for {$%s}", open.Parsed)
			}
			return nil, nil
		}
		if tok.Kind == token.CompilerDirective {
			if err := f.directive(*tok); err != nil {
				return nil, err
			}
			continue
		}
		if tok.Kind.IsComment() {
			continue
		}
		if f.active() {
			return tok, nil
		}
	}
}

// All collects the filtered stream.
func (f *Filter) All() ([]token.Token, error) {
	var out []token.Token
	for {
		tok, err := f.Next()
		if err != nil {
			return out, err
		}
		if tok == nil {
			return out, nil
		}
		out = append(out, *tok)
	}
}

func (f *Filter) active() bool {
	n := len(f.frames)
	return n == 0 || f.frames[n-1].active
}

// splitDirective разделяет "IFDEF FOO" на имя (в верхнем регистре) и аргумент.
func splitDirective(parsed string) (name, arg string) {
	i := 0
	for i < len(parsed) && isDirectiveNameByte(parsed[i]) {
		i++
	}
	return strings.ToUpper(parsed[:i]), strings.TrimSpace(parsed[i:])
}

func isDirectiveNameByte(b byte) bool {
	return b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9')
}

func (f *Filter) directive(tok token.Token) error {
	name, arg := splitDirective(tok.Parsed)
	switch name {
	case "IFDEF", "IFNDEF", "IFOPT", "IF":
		return f.push(tok, name, arg)
	case "ELSEIF":
		return f.elseIf(tok, arg)
	case "ELSE":
		return f.elseBranch(tok)
	case "ENDIF", "IFEND":
		if len(f.frames) == 0 {
			return diag.New(diag.DirUnbalanced, tok.Loc, "{$%s} without matching $IF", name)
		}
		f.frames = f.frames[:len(f.frames)-1]
		return nil
	}
	if !f.active() {
		return nil
	}
	switch name {
	case "DEFINE":
		if sym := firstWord(arg); sym != "" {
			f.defines.DefineSymbol(sym)
		}
	case "UNDEF":
		if sym := firstWord(arg); sym != "" {
			f.defines.UndefineSymbol(sym)
		}
	case "I", "INCLUDE":
		return f.include(tok, arg)
	}
	// прочие директивы ($R+, $WARNINGS OFF, $APPTYPE ...) игнорируются
	return nil
}

func (f *Filter) push(tok token.Token, name, arg string) error {
	outer := f.active()
	fr := frame{opener: tok, outer: outer}
	if outer {
		cond, err := f.condition(tok, name, arg)
		if err != nil {
			return err
		}
		fr.active, fr.matched = cond, cond
	}
	f.frames = append(f.frames, fr)
	return nil
}

func (f *Filter) elseIf(tok token.Token, arg string) error {
	fr, err := f.top(tok, "ELSEIF")
	if err != nil {
		return err
	}
	if fr.sawElse {
		return diag.New(diag.DirUnbalanced, tok.Loc, "{$ELSEIF} after {$ELSE}")
	}
	if !fr.outer || fr.matched {
		fr.active = false
		return nil
	}
	cond, err := f.condition(tok, "IF", arg)
	if err != nil {
		return err
	}
	fr.active, fr.matched = cond, cond
	return nil
}

func (f *Filter) elseBranch(tok token.Token) error {
	fr, err := f.top(tok, "ELSE")
	if err != nil {
		return err
	}
	if fr.sawElse {
		return diag.New(diag.DirUnbalanced, tok.Loc, "Duplicate {$ELSE}")
	}
	fr.sawElse = true
	fr.active = fr.outer && !fr.matched
	fr.matched = true
	return nil
}

func (f *Filter) top(tok token.Token, name string) (*frame, error) {
	if len(f.frames) == 0 {
		return nil, diag.New(diag.DirUnbalanced, tok.Loc, "{$%s} without matching $IF", name)
	}
	return &f.frames[len(f.frames)-1], nil
}

// condition evaluates the directive that opens or continues a frame.
func (f *Filter) condition(tok token.Token, name, arg string) (bool, error) {
	if forced, ok := f.defines.LookupDirective(name + " " + arg); ok {
		return forced, nil
	}
	switch name {
	case "IFDEF":
		return f.defines.IsDefined(firstWord(arg)), nil
	case "IFNDEF":
		return !f.defines.IsDefined(firstWord(arg)), nil
	case "IFOPT":
		// неизвестное состояние опции считаем ложным для обоих IFOPT X+ и IFOPT X-
		return false, nil
	}
	cond, err := evalCondition(f.defines, arg)
	if err != nil {
		return false, diag.New(diag.DirUnknownCondition, tok.Loc,
			"Cannot evaluate {$%s}: %v", tok.Parsed, err)
	}
	return cond, nil
}

func (f *Filter) include(tok token.Token, arg string) error {
	if arg == "" || arg == "+" || arg == "-" || strings.HasPrefix(arg, "%") {
		// {$I+}/{$I-} это проверка ввода-вывода, {$I %DATE%} вставка строки
		return nil
	}
	if f.loader == nil {
		return diag.New(diag.IOLoadFile, tok.Loc, "Cannot load include file '%s': no file loader", arg)
	}
	if len(f.scanners) > maxIncludeDepth {
		return diag.New(diag.DirIncludeDepth, tok.Loc, "Include files nested deeper than %d levels", maxIncludeDepth)
	}
	name := strings.Trim(arg, "'")
	current := f.scanners[len(f.scanners)-1].File().Path
	path := f.loader.ExpandFileName(dirName(current), name)
	text, err := f.loader.Load(path)
	if err != nil {
		return &diag.Error{
			Code: diag.IOLoadFile,
			Loc:  tok.Loc,
			Msg:  "Cannot load include file '" + name + "': " + err.Error(),
			Err:  err,
		}
	}
	f.scanners = append(f.scanners, lexer.FromText(path, text))
	return nil
}

func firstWord(s string) string {
	if fields := strings.Fields(s); len(fields) > 0 {
		return fields[0]
	}
	return ""
}

// dirName returns everything before the last '/' or '\'.
func dirName(p string) string {
	if i := strings.LastIndexAny(p, `/\`); i >= 0 {
		return p[:i]
	}
	return ""
}
