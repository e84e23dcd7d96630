package parser_test

import (
	"testing"

	"dgrok/internal/ast"
	"dgrok/internal/diag"
	"dgrok/internal/parser"
	"dgrok/internal/preproc"
	"dgrok/internal/source"
)

func TestSyntaxErrorMessages(t *testing.T) {
	tests := []struct {
		rule parser.Rule
		text string
		want string
	}{
		{parser.RuleGoal, "foo", "Expected Goal but found Identifier |foo|"},
		{parser.RuleExpression, "1 2", "Expected end of input but found Number |2|"},
		{parser.RuleExpression, "", "Expected Expression but found end of input"},
		{parser.RuleIfStatement, "if X then", ""},
		{parser.RuleBlock, "begin A", "Expected EndKeyword but found end of input"},
		{parser.RuleIdent, "begin", "Expected Identifier but found BeginKeyword |begin|"},
		{parser.RuleUnit, "unit U; implementation end.", "Expected InterfaceKeyword but found ImplementationKeyword |implementation|"},
	}
	for _, tt := range tests {
		if tt.want == "" {
			mustParse(t, tt.rule, tt.text)
			continue
		}
		got := doesNotParse(t, tt.rule, tt.text)
		if got != tt.want {
			t.Errorf("%s %q: error = %q, want %q", tt.rule, tt.text, got, tt.want)
		}
	}
}

func TestSyntaxErrorCodeAndLocation(t *testing.T) {
	de := parseError(t, parser.RuleStatement, "if X the Y")
	if de.Code != diag.SynExpected {
		t.Fatalf("code = %v", de.Code)
	}
	if lc := de.Loc.LineCol(); lc != (source.LineCol{Line: 1, Col: 6}) {
		t.Fatalf("location = %d:%d, want 1:6", lc.Line, lc.Col)
	}
	if de.Msg != "Expected ThenKeyword but found Identifier |the|" {
		t.Fatalf("message = %q", de.Msg)
	}
	if got := de.Error(); got != "test.pas:1:6: "+de.Msg {
		t.Fatalf("Error() = %q", got)
	}
}

func TestEndOfInputLocation(t *testing.T) {
	de := parseError(t, parser.RuleBlock, "begin\n  Foo")
	if lc := de.Loc.LineCol(); lc != (source.LineCol{Line: 2, Col: 6}) {
		t.Fatalf("location = %d:%d, want 2:6", lc.Line, lc.Col)
	}
}

func TestLexErrorWins(t *testing.T) {
	de := parseError(t, parser.RuleExpression, "1 + ?")
	if de.Code != diag.LexUnrecognizedChar {
		t.Fatalf("code = %v, want lex error (%s)", de.Code, de.Msg)
	}
}

func TestDirectiveErrorWins(t *testing.T) {
	de := parseError(t, parser.RuleBlock, "begin {$IFDEF X} end")
	if de.Code != diag.DirUnbalanced {
		t.Fatalf("code = %v, want unbalanced directive (%s)", de.Code, de.Msg)
	}
}

func TestConditionalSelectsBranch(t *testing.T) {
	text := "{$IFDEF FOO} A {$ELSE} B {$ENDIF}"
	d := preproc.NewDefines()
	d.DefineSymbol("FOO")
	n, err := parser.FromText(text, "test.pas", d, nil).ParseRule(parser.RuleExpression)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tokenText(t, n) != "A" {
		t.Fatalf("got %s, want A", ast.Print(n))
	}
	parsesAs(t, parser.RuleExpression, text, "Identifier |B|")
}

func TestDefineInsideFileIsSeen(t *testing.T) {
	n := mustParse(t, parser.RuleExpression, "{$DEFINE BAR}{$IFNDEF BAR} X {$ELSE} Y {$ENDIF}")
	if tokenText(t, n) != "Y" {
		t.Fatalf("got %s, want Y", ast.Print(n))
	}
}

func TestLookupRule(t *testing.T) {
	r, ok := parser.LookupRule("statementlist")
	if !ok || r != parser.RuleStatementList {
		t.Fatalf("LookupRule = %v, %v", r, ok)
	}
	if _, ok := parser.LookupRule("NoSuchRule"); ok {
		t.Fatalf("unknown rule must not be found")
	}
	if parser.RuleGoal.String() != "Goal" || parser.RuleType.String() != "Type" {
		t.Fatalf("names: %s %s", parser.RuleGoal, parser.RuleType)
	}
	for _, name := range []string{"Goal", "Unit", "Program", "InterfaceSection", "ArrayType", "EnumeratedType", "Statement", "Expression"} {
		r, ok := parser.LookupRule(name)
		if !ok || r.String() != name {
			t.Errorf("LookupRule(%q) = %v, %v", name, r, ok)
		}
	}
}

func TestUnknownRule(t *testing.T) {
	p := parser.FromText("X", "test.pas", preproc.NewDefines(), nil)
	if _, err := p.ParseRule(parser.RuleInvalid); err == nil {
		t.Fatalf("invalid rule must fail")
	}
}

func TestParseIsGoal(t *testing.T) {
	p := parser.FromText("unit U; interface implementation end.", "u.pas", preproc.NewDefines(), nil)
	n, err := p.Parse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	as[*ast.UnitNode](t, n)
}
