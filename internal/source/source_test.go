package source

import "testing"

func TestToLineCol(t *testing.T) {
	f := NewFile("x.pas", "unit Foo;\ninterface\n\nend.")
	cases := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{1, 1}},
		{5, LineCol{1, 6}},
		{9, LineCol{1, 10}}, // '\n' belongs to its line
		{10, LineCol{2, 1}},
		{20, LineCol{3, 1}},
		{21, LineCol{4, 1}},
		{24, LineCol{4, 4}},
	}
	for _, c := range cases {
		if got := f.LineCol(c.off); got != c.want {
			t.Errorf("LineCol(%d) = %+v, want %+v", c.off, got, c.want)
		}
	}
}

func TestNewFileStripsBOM(t *testing.T) {
	f := NewFile("bom.pas", "\xEF\xBB\xBFunit")
	if f.Content != "unit" {
		t.Fatalf("content = %q", f.Content)
	}
	if f.Flags&FileHadBOM == 0 {
		t.Fatalf("expected FileHadBOM flag")
	}
}

func TestLine(t *testing.T) {
	f := NewFile("x.pas", "first\r\nsecond\nthird")
	want := []string{"", "first", "second", "third", ""}
	for i, w := range want {
		if got := f.Line(uint32(i)); got != w {
			t.Errorf("Line(%d) = %q, want %q", i, got, w)
		}
	}
}

func TestLocationString(t *testing.T) {
	f := NewFile("dir/Foo.pas", "a\nbc")
	if got := At(f, 3).String(); got != "dir/Foo.pas:2:2" {
		t.Fatalf("String() = %q", got)
	}
	if got := (Location{}).FileName(); got != "" {
		t.Fatalf("zero FileName = %q", got)
	}
}

func TestStemName(t *testing.T) {
	cases := map[string]string{
		`C:\Dir1\Foo.pas`:  "Foo",
		"/src/Bar.dpr":     "Bar",
		"Baz":              "Baz",
		"a.b/Qux.unit.pas": "Qux.unit",
		".hidden":          ".hidden",
	}
	for in, want := range cases {
		if got := StemName(in); got != want {
			t.Errorf("StemName(%q) = %q, want %q", in, got, want)
		}
	}
}
