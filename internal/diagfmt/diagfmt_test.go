package diagfmt

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"dgrok/internal/ast"
	"dgrok/internal/codebase"
	"dgrok/internal/parser"
	"dgrok/internal/preproc"
)

func syntaxError(t *testing.T) error {
	t.Helper()
	p := parser.FromText("begin\n\tif X the Y\nend", "/home/user/project/src/test.pas", preproc.NewDefines(), nil)
	_, err := p.ParseRule(parser.RuleBlock)
	if err == nil {
		t.Fatalf("expected a syntax error")
	}
	return err
}

func TestPrettyWithContext(t *testing.T) {
	var buf bytes.Buffer
	opts := PrettyOpts{PathMode: PathModeRelative, BaseDir: "/home/user/project", Context: true}
	if err := Pretty(&buf, "ignored", syntaxError(t), opts); err != nil {
		t.Fatalf("pretty: %v", err)
	}
	want := strings.Join([]string{
		"src/test.pas:2:7: ERROR SYN2001: Expected ThenKeyword but found Identifier |the|",
		"2 |     if X the Y",
		"  |          ^",
		"",
	}, "\n")
	if buf.String() != want {
		t.Fatalf("output:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestPathModes(t *testing.T) {
	err := syntaxError(t)
	tests := []struct {
		name     string
		mode     PathMode
		contains string
	}{
		{"Absolute path", PathModeAbsolute, "/home/user/project/src/test.pas:2:7"},
		{"Relative path", PathModeRelative, "src/test.pas:2:7"},
		{"Basename only", PathModeBasename, "test.pas:2:7"},
		{"Auto outside base", PathModeAuto, "/home/user/project/src/test.pas"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			base := "/home/user/project"
			if tt.mode == PathModeAuto {
				base = "/elsewhere"
			}
			if err := Pretty(&buf, "", err, PrettyOpts{PathMode: tt.mode, BaseDir: base}); err != nil {
				t.Fatalf("pretty: %v", err)
			}
			if !strings.HasPrefix(buf.String(), tt.contains) {
				t.Errorf("Expected output to start with %q, got:\n%s", tt.contains, buf.String())
			}
		})
	}
}

func TestPrettyPlainError(t *testing.T) {
	var buf bytes.Buffer
	if err := Pretty(&buf, "Foo.pas", errors.New("Oops"), PrettyOpts{}); err != nil {
		t.Fatalf("pretty: %v", err)
	}
	if buf.String() != "Foo.pas: ERROR: Oops\n" {
		t.Fatalf("output = %q", buf.String())
	}
}

func TestPrettyColor(t *testing.T) {
	var buf bytes.Buffer
	if err := Pretty(&buf, "", syntaxError(t), PrettyOpts{Color: true}); err != nil {
		t.Fatalf("pretty: %v", err)
	}
	if !strings.Contains(buf.String(), "\x1b[") {
		t.Fatalf("expected ANSI escapes in %q", buf.String())
	}
}

func TestErrorsJSON(t *testing.T) {
	errs := []codebase.NamedContent[error]{
		{FileName: "/home/user/project/src/test.pas", Content: syntaxError(t)},
		{FileName: "Foo.pas", Content: errors.New("Oops")},
	}
	var buf bytes.Buffer
	if err := JSON(&buf, errs, JSONOpts{IncludePositions: true, Max: 5}); err != nil {
		t.Fatalf("json: %v", err)
	}
	var out ErrorsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v\n%s", err, buf.String())
	}
	if out.Count != 2 || len(out.Errors) != 2 {
		t.Fatalf("output = %+v", out)
	}
	first := out.Errors[0]
	if first.Code != "SYN2001" || first.Category != "parse" || first.Location == nil || first.Location.Line != 2 || first.Location.Col != 7 {
		t.Fatalf("first error = %+v", first)
	}
	if second := out.Errors[1]; second.Location != nil || second.Message != "Oops" || second.Code != "E0000" {
		t.Fatalf("second error = %+v", second)
	}

	if trimmed := BuildErrorsOutput(errs, JSONOpts{Max: 1}); len(trimmed.Errors) != 1 || trimmed.Count != 2 {
		t.Fatalf("Max not applied: %+v", trimmed)
	}
}

func parseUnit(t *testing.T) ast.Node {
	t.Helper()
	n, err := parser.FromText("unit U; interface implementation end.", "u.pas", preproc.NewDefines(), nil).Parse()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return n
}

func TestWriteTreesText(t *testing.T) {
	var buf bytes.Buffer
	trees := []FileTree{NewFileTree("u.pas", "U", parseUnit(t))}
	if err := WriteTrees(&buf, TreeFormatTree, trees); err != nil {
		t.Fatalf("write: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "== u.pas\nUnitNode\n  Unit: UnitKeyword |unit|\n") || !strings.HasSuffix(out, "  Dot: Dot |.|\n") {
		t.Fatalf("output:\n%s", out)
	}
}

func TestWriteTreesJSON(t *testing.T) {
	var buf bytes.Buffer
	trees := []FileTree{NewFileTree("u.pas", "U", parseUnit(t))}
	if err := WriteTrees(&buf, TreeFormatJSON, trees); err != nil {
		t.Fatalf("write: %v", err)
	}
	var out []FileTree
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out) != 1 || out[0].Tree.Kind != "UnitNode" || out[0].Tree.Children[0].Node.Text != "unit" {
		t.Fatalf("decoded = %+v", out)
	}
}

func TestWriteTreesMsgpack(t *testing.T) {
	var buf bytes.Buffer
	trees := []FileTree{
		NewFileTree("a.pas", "U", parseUnit(t)),
		NewFileTree("b.pas", "U", parseUnit(t)),
	}
	if err := WriteTrees(&buf, TreeFormatMsgpack, trees); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := ReadMsgpackTrees(&buf)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(got) != 2 || got[1].File != "b.pas" {
		t.Fatalf("decoded = %+v", got)
	}
	dot := got[0].Tree.Children[len(got[0].Tree.Children)-1]
	if dot.Name != "Dot" || dot.Node.Line != 1 || dot.Node.Col != 37 {
		t.Fatalf("last slot = %+v", dot)
	}
}

func TestParseTreeFormat(t *testing.T) {
	if f, err := ParseTreeFormat("JSON"); err != nil || f != TreeFormatJSON {
		t.Fatalf("ParseTreeFormat = %v, %v", f, err)
	}
	if _, err := ParseTreeFormat("xml"); err == nil {
		t.Fatalf("xml must be rejected")
	}
}
