package lexer_test

import (
	"strings"
	"testing"

	"dgrok/internal/diag"
	"dgrok/internal/lexer"
	"dgrok/internal/token"
)

// scanAll собирает все токены; падает на ошибке лексера
func scanAll(t *testing.T, input string) []token.Token {
	t.Helper()
	toks, err := lexer.FromText("test.pas", input).All()
	if err != nil {
		t.Fatalf("scan %q: %v", input, err)
	}
	return toks
}

func describe(toks []token.Token) string {
	parts := make([]string, len(toks))
	for i, tok := range toks {
		parts[i] = tok.Describe()
	}
	return strings.Join(parts, ", ")
}

func expectTokens(t *testing.T, input string, want ...string) {
	t.Helper()
	got := describe(scanAll(t, input))
	if got != strings.Join(want, ", ") {
		t.Errorf("scan %q:\n got: %s\nwant: %s", input, got, strings.Join(want, ", "))
	}
}

func TestBlankSource(t *testing.T) {
	if toks := scanAll(t, ""); len(toks) != 0 {
		t.Fatalf("expected no tokens, got %s", describe(toks))
	}
	if toks := scanAll(t, " \t\r\n "); len(toks) != 0 {
		t.Fatalf("whitespace-only source must produce nothing, got %s", describe(toks))
	}
}

func TestWords(t *testing.T) {
	expectTokens(t, "Foo", "Identifier |Foo|")
	expectTokens(t, "_Foo1 x_2", "Identifier |_Foo1|", "Identifier |x_2|")
	expectTokens(t, "Begin", "BeginKeyword |Begin|")
	expectTokens(t, "ABSOLUTE", "AbsoluteSemikeyword |ABSOLUTE|")
	expectTokens(t, "Привет", "Identifier |Привет|")
}

func TestAmpersandIdentifier(t *testing.T) {
	toks := scanAll(t, "&Begin")
	if len(toks) != 1 || toks[0].Kind != token.Identifier {
		t.Fatalf("got %s", describe(toks))
	}
	if toks[0].Text != "&Begin" || toks[0].Parsed != "Begin" {
		t.Fatalf("text=%q parsed=%q", toks[0].Text, toks[0].Parsed)
	}
}

// mixedCase чередует регистр, начиная с верхнего: "begin" -> "BeGiN"
func mixedCase(w string) string {
	b := []byte(w)
	for i := range b {
		if i%2 == 0 {
			b[i] = strings.ToUpper(string(b[i]))[0]
		}
	}
	return string(b)
}

func TestEveryReservedWord(t *testing.T) {
	count := 0
	for i := 0; i < 256; i++ {
		k := token.Kind(i)
		if !k.IsKeyword() && !k.IsSemikeyword() {
			continue
		}
		count++
		w := k.Word()
		for _, spelling := range []string{w, strings.ToUpper(w), mixedCase(w)} {
			toks := scanAll(t, spelling)
			if len(toks) != 1 || toks[0].Kind != k || toks[0].Text != spelling {
				t.Errorf("scan %q: got %s, want %s", spelling, describe(toks), k)
			}
			toks = scanAll(t, "&"+spelling)
			if len(toks) != 1 || toks[0].Kind != token.Identifier || toks[0].Parsed != spelling {
				t.Errorf("scan %q: got %s, want Identifier", "&"+spelling, describe(toks))
			}
		}
	}
	if count == 0 {
		t.Fatal("no reserved words found")
	}
}

func TestOperators(t *testing.T) {
	expectTokens(t, ":= <= <> >= < = >",
		"ColonEquals |:=|", "LessOrEqual |<=|", "NotEqual |<>|", "GreaterOrEqual |>=|",
		"LessThan |<|", "EqualSign |=|", "GreaterThan |>|")
	expectTokens(t, "()*+,-./:;@[]^",
		"OpenParenthesis |(|", "CloseParenthesis |)|", "TimesSign |*|", "PlusSign |+|",
		"Comma |,|", "MinusSign |-|", "Dot |.|", "DivideBySign |/|", "Colon |:|",
		"Semicolon |;|", "AtSign |@|", "OpenBracket |[|", "CloseBracket |]|", "Caret |^|")
}

func TestNumbers(t *testing.T) {
	expectTokens(t, "42", "Number |42|")
	expectTokens(t, "4.5", "Number |4.5|")
	expectTokens(t, "1e10 1E-3 2.5e+7", "Number |1e10|", "Number |1E-3|", "Number |2.5e+7|")
	expectTokens(t, "$FF $0a", "Number |$FF|", "Number |$0a|")
}

func TestNumberBeforeRange(t *testing.T) {
	expectTokens(t, "24..42", "Number |24|", "DotDot |..|", "Number |42|")
	expectTokens(t, "A[1].B", "Identifier |A|", "OpenBracket |[|", "Number |1|",
		"CloseBracket |]|", "Dot |.|", "Identifier |B|")
}

func TestStringLiterals(t *testing.T) {
	cases := []struct {
		in, parsed string
	}{
		{"'abc'", "abc"},
		{"''", ""},
		{"'It''s'", "It's"},
		{"#13#10", "\r\n"},
		{"#$41'bc'", "Abc"},
		{"'a'#9'b'", "a\tb"},
		{`"'"`, "'"},
	}
	for _, c := range cases {
		toks := scanAll(t, c.in)
		if len(toks) != 1 || toks[0].Kind != token.StringLiteral {
			t.Errorf("%s: got %s", c.in, describe(toks))
			continue
		}
		if toks[0].Text != c.in || toks[0].Parsed != c.parsed {
			t.Errorf("%s: text=%q parsed=%q, want parsed %q", c.in, toks[0].Text, toks[0].Parsed, c.parsed)
		}
	}
}

func TestComments(t *testing.T) {
	expectTokens(t, "// foo\r\nBar", "SingleLineComment |// foo|", "Identifier |Bar|")
	expectTokens(t, "{ foo }", "CurlyBraceComment |{ foo }|")
	expectTokens(t, "(* foo *)", "ParenStarComment |(* foo *)|")
	expectTokens(t, "{(* x *)}", "CurlyBraceComment |{(* x *)}|")
}

func TestCompilerDirectives(t *testing.T) {
	cases := []struct {
		in, parsed string
	}{
		{"{$DEFINE FOO}", "DEFINE FOO"},
		{"{$IFDEF FOO  }", "IFDEF FOO"},
		{"(*$ENDIF*)", "ENDIF"},
		{"(*$I foo.inc \t*)", "I foo.inc"},
	}
	for _, c := range cases {
		toks := scanAll(t, c.in)
		if len(toks) != 1 || toks[0].Kind != token.CompilerDirective {
			t.Errorf("%s: got %s", c.in, describe(toks))
			continue
		}
		if toks[0].Parsed != c.parsed {
			t.Errorf("%s: parsed=%q, want %q", c.in, toks[0].Parsed, c.parsed)
		}
	}
}

func TestLocations(t *testing.T) {
	toks := scanAll(t, "unit\n  Foo;")
	if len(toks) != 3 {
		t.Fatalf("got %s", describe(toks))
	}
	if lc := toks[1].Loc.LineCol(); lc.Line != 2 || lc.Col != 3 {
		t.Fatalf("Foo at %+v", lc)
	}
	if toks[2].Loc.Offset != 10 {
		t.Fatalf("semicolon offset = %d", toks[2].Loc.Offset)
	}
}

func TestErrors(t *testing.T) {
	cases := []struct {
		in   string
		code diag.Code
		msg  string
	}{
		{"Foo ?", diag.LexUnrecognizedChar, "test.pas:1:5: Unrecognized character '?'"},
		{"'abc", diag.LexUnterminatedString, "test.pas:1:1: Unterminated string literal"},
		{"{ abc", diag.LexUnterminatedComment, "test.pas:1:1: Unterminated comment"},
		{"x {$IFDEF", diag.LexUnterminatedDirective, "test.pas:1:3: Unterminated compiler directive"},
	}
	for _, c := range cases {
		_, err := lexer.FromText("test.pas", c.in).All()
		if err == nil {
			t.Errorf("%q: expected error", c.in)
			continue
		}
		if diag.CodeOf(err) != c.code || err.Error() != c.msg {
			t.Errorf("%q: got %v (%s)", c.in, err, diag.CodeOf(err).ID())
		}
	}
}

func TestReset(t *testing.T) {
	sc := lexer.FromText("test.pas", "a b")
	first, _ := sc.All()
	sc.Reset()
	second, _ := sc.All()
	if describe(first) != describe(second) {
		t.Fatalf("reset changed the stream: %s vs %s", describe(first), describe(second))
	}
}
