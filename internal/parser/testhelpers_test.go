package parser_test

import (
	"errors"
	"strings"
	"testing"

	"dgrok/internal/ast"
	"dgrok/internal/diag"
	"dgrok/internal/parser"
	"dgrok/internal/preproc"
)

func parseRule(rule parser.Rule, text string) (ast.Node, error) {
	p := parser.FromText(text, "test.pas", preproc.NewDefines(), nil)
	return p.ParseRule(rule)
}

// mustParse parses text as rule and fails the test on error.
func mustParse(t *testing.T, rule parser.Rule, text string) ast.Node {
	t.Helper()
	n, err := parseRule(rule, text)
	if err != nil {
		t.Fatalf("%s %q: unexpected error: %v", rule, text, err)
	}
	return n
}

// parsesAs compares the printed tree with the expected lines.
func parsesAs(t *testing.T, rule parser.Rule, text string, lines ...string) {
	t.Helper()
	got := ast.Print(mustParse(t, rule, text))
	want := strings.Join(lines, "\n")
	if got != want {
		t.Fatalf("%s %q:\n got:\n%s\nwant:\n%s", rule, text, got, want)
	}
}

// parseError expects rule to fail on text and returns the diagnostic.
func parseError(t *testing.T, rule parser.Rule, text string) *diag.Error {
	t.Helper()
	n, err := parseRule(rule, text)
	if err == nil {
		t.Fatalf("%s %q: expected an error, got\n%s", rule, text, ast.Print(n))
	}
	var de *diag.Error
	if !errors.As(err, &de) {
		t.Fatalf("%s %q: error %v is %T, want *diag.Error", rule, text, err, err)
	}
	return de
}

// doesNotParse expects an error and returns its message without location.
func doesNotParse(t *testing.T, rule parser.Rule, text string) string {
	t.Helper()
	return parseError(t, rule, text).Msg
}

// as asserts the dynamic type of a node.
func as[T ast.Node](t *testing.T, n ast.Node) T {
	t.Helper()
	v, ok := n.(T)
	if !ok {
		t.Fatalf("node is %T, want %T", n, v)
	}
	return v
}

func tokenText(t *testing.T, n ast.Node) string {
	t.Helper()
	return as[*ast.Token](t, n).Text
}
