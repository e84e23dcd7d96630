package preproc_test

import (
	"errors"
	"io/fs"
	"strings"
	"testing"

	"dgrok/internal/diag"
	"dgrok/internal/lexer"
	"dgrok/internal/preproc"
)

type mapLoader map[string]string

func (m mapLoader) ExpandFileName(dir, name string) string {
	if dir == "" {
		return name
	}
	return dir + "/" + name
}

func (m mapLoader) Load(name string) (string, error) {
	text, ok := m[name]
	if !ok {
		return "", fs.ErrNotExist
	}
	return text, nil
}

// filterText прогоняет текст через фильтр и склеивает тексты токенов
func filterText(t *testing.T, input string, d *preproc.Defines, l preproc.IncludeLoader) string {
	t.Helper()
	out, err := run(input, d, l)
	if err != nil {
		t.Fatalf("filter %q: %v", input, err)
	}
	return out
}

func run(input string, d *preproc.Defines, l preproc.IncludeLoader) (string, error) {
	if d == nil {
		d = preproc.NewDefines()
	}
	f := preproc.NewFilter(lexer.FromText("main.pas", input), d, l)
	toks, err := f.All()
	texts := make([]string, len(toks))
	for i, tok := range toks {
		texts[i] = tok.Text
	}
	return strings.Join(texts, " "), err
}

func expectFiltered(t *testing.T, input, want string) {
	t.Helper()
	if got := filterText(t, input, nil, nil); got != want {
		t.Errorf("filter %q:\n got: %q\nwant: %q", input, got, want)
	}
}

func TestDropsComments(t *testing.T) {
	expectFiltered(t, "a // x\n{ y } (* z *) b", "a b")
}

func TestUnknownDirectivesIgnored(t *testing.T) {
	expectFiltered(t, "{$R+} a {$WARNINGS OFF} b {$APPTYPE CONSOLE}", "a b")
}

func TestDefineAndIfdef(t *testing.T) {
	expectFiltered(t, "{$DEFINE FOO}{$IFDEF FOO}a{$ENDIF}b", "a b")
	expectFiltered(t, "{$IFDEF FOO}a{$ENDIF}b", "b")
	expectFiltered(t, "{$IFNDEF FOO}a{$ENDIF}b", "a b")
	expectFiltered(t, "{$DEFINE foo}{$IFDEF FOO}a{$ENDIF}", "a")
	expectFiltered(t, "{$DEFINE FOO}{$UNDEF FOO}{$IFDEF FOO}a{$ENDIF}b", "b")
}

func TestElse(t *testing.T) {
	expectFiltered(t, "{$IFDEF FOO}a{$ELSE}b{$ENDIF}c", "b c")
	expectFiltered(t, "{$DEFINE FOO}{$IFDEF FOO}a{$ELSE}b{$ENDIF}c", "a c")
}

func TestNesting(t *testing.T) {
	src := "{$IFDEF A}1{$IFDEF B}2{$ELSE}3{$ENDIF}4{$ELSE}5{$IFDEF B}6{$ELSE}7{$ENDIF}{$ENDIF}"
	expectFiltered(t, src, "5 7")

	d := preproc.NewDefines()
	d.DefineSymbol("A")
	if got := filterText(t, src, d, nil); got != "1 3 4" {
		t.Fatalf("got %q", got)
	}
}

func TestInactiveRegionIgnoresDirectives(t *testing.T) {
	expectFiltered(t, "{$IFDEF X}{$DEFINE Y}{$IF garbage ((}{$ENDIF}{$ENDIF}{$IFDEF Y}a{$ENDIF}b", "b")
}

func TestIfExpressions(t *testing.T) {
	d := preproc.NewDefines()
	d.DefineSymbol("FOO")
	d.DefineVersion("VER180")
	cases := map[string]string{
		"{$IF Defined(FOO)}a{$IFEND}":                         "a",
		"{$IF not Defined(FOO)}a{$ELSE}b{$IFEND}":             "b",
		"{$IF Defined(FOO) and Defined(BAR)}a{$ENDIF}":        "",
		"{$IF Defined(FOO) or Defined(BAR)}a{$ENDIF}":         "a",
		"{$IF CompilerVersion >= 18}a{$ENDIF}":                "a",
		"{$IF RTLVersion < 18.5}a{$ENDIF}":                    "a",
		"{$IF Declared(Foo)}a{$ELSE}b{$ENDIF}":                "b",
		"{$IF (CompilerVersion > 20) or True}a{$ENDIF}":       "a",
		"{$IF False}a{$ELSEIF Defined(FOO)}b{$ELSE}c{$ENDIF}": "b",
		"{$IF True}a{$ELSEIF Defined(FOO)}b{$ELSE}c{$ENDIF}":  "a",
		"{$IF False}a{$ELSEIF False}b{$ELSE}c{$ENDIF}":        "c",
	}
	for src, want := range cases {
		if got := filterText(t, src, d.Clone(), nil); got != want {
			t.Errorf("filter %q = %q, want %q", src, got, want)
		}
	}
}

func TestForcedConditions(t *testing.T) {
	d := preproc.NewDefines()
	d.DefineDirectiveAsTrue("IF SizeOf(Pointer) = 4")
	d.DefineDirectiveAsFalse("IFDEF DEBUG")
	d.DefineSymbol("DEBUG")
	got := filterText(t, "{$IF  sizeof(pointer) = 4}a{$ENDIF}{$IFDEF DEBUG}b{$ENDIF}", d, nil)
	if got != "a" {
		t.Fatalf("got %q", got)
	}
}

func TestIfopt(t *testing.T) {
	d := preproc.NewDefines()
	d.DefineDirective("IFOPT R+", true)
	d.DefineDirective("IFOPT R-", false)
	got := filterText(t, "{$IFOPT R+}a{$ENDIF}{$IFOPT R-}b{$ENDIF}{$IFOPT Q+}c{$ENDIF}", d, nil)
	if got != "a" {
		t.Fatalf("got %q", got)
	}
}

func TestSnapshotIsolation(t *testing.T) {
	base := preproc.NewDefines()
	filterText(t, "{$DEFINE LOCAL}", base.Clone(), nil)
	if base.IsDefined("LOCAL") {
		t.Fatalf("a clone must not leak defines into the template")
	}
}

func TestInclude(t *testing.T) {
	l := mapLoader{
		"src/defs.inc":  "{$DEFINE FROM_INC} x",
		"src/outer.inc": "{$I 'defs.inc'} y",
	}
	f := preproc.NewFilter(lexer.FromText("src/main.pas",
		"a {$INCLUDE outer.inc} {$IFDEF FROM_INC}b{$ENDIF} {$I+} c"), preproc.NewDefines(), l)
	toks, err := f.All()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got []string
	for _, tok := range toks {
		got = append(got, tok.Text)
	}
	if strings.Join(got, " ") != "a x y b c" {
		t.Fatalf("got %q", got)
	}
	if toks[1].Loc.FileName() != "src/defs.inc" {
		t.Fatalf("included token located in %q", toks[1].Loc.FileName())
	}
}

func TestIncludeErrors(t *testing.T) {
	_, err := run("{$I missing.inc}", nil, mapLoader{})
	if diag.CodeOf(err) != diag.IOLoadFile || !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("got %v", err)
	}

	_, err = run("{$I self.inc}", nil, mapLoader{"self.inc": "{$I self.inc}"})
	if diag.CodeOf(err) != diag.DirIncludeDepth {
		t.Fatalf("got %v", err)
	}

	_, err = run("{$I x.inc}", nil, nil)
	if diag.CodeOf(err) != diag.IOLoadFile {
		t.Fatalf("got %v", err)
	}
}

func TestUnbalanced(t *testing.T) {
	cases := map[string]string{
		"{$IFDEF FOO} a":           "main.pas:1:1: Missing $ENDIF for {$IFDEF FOO}",
		"a {$ENDIF}":               "main.pas:1:3: {$ENDIF} without matching $IF",
		"{$ELSE}":                  "main.pas:1:1: {$ELSE} without matching $IF",
		"{$IFDEF A}{$ELSE}{$ELSE}": "main.pas:1:18: Duplicate {$ELSE}",
	}
	for src, want := range cases {
		_, err := run(src, nil, nil)
		if diag.CodeOf(err) != diag.DirUnbalanced || err.Error() != want {
			t.Errorf("%q: got %v", src, err)
		}
	}
}

func TestUnknownCondition(t *testing.T) {
	_, err := run("{$IF Foo > 3}a{$ENDIF}", nil, nil)
	if diag.CodeOf(err) != diag.DirUnknownCondition {
		t.Fatalf("got %v", err)
	}
}

func TestLexErrorSurfaces(t *testing.T) {
	_, err := run("a ?", nil, nil)
	if diag.CodeOf(err) != diag.LexUnrecognizedChar {
		t.Fatalf("got %v", err)
	}
}
