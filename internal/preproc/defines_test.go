package preproc

import "testing"

func TestStandardDefines(t *testing.T) {
	d := StandardDefines()
	for _, sym := range []string{"MSWINDOWS", "win32", "ConditionalExpressions", "CPU386"} {
		if !d.IsDefined(sym) {
			t.Errorf("%s should be predefined", sym)
		}
	}
	if d.IsDefined("LINUX") {
		t.Errorf("LINUX must not be predefined")
	}
}

func TestDefineVersion(t *testing.T) {
	d := NewDefines()
	d.DefineVersion("VER185")
	if !d.IsDefined("ver185") {
		t.Fatalf("version symbol not defined")
	}
	if v, ok := d.Number("compilerversion"); !ok || v != 18.5 {
		t.Fatalf("CompilerVersion = %v, %v", v, ok)
	}

	d = NewDefines()
	d.DefineVersion("DELPHI7")
	if _, ok := d.Number("CompilerVersion"); ok {
		t.Fatalf("non-VER symbols must not set CompilerVersion")
	}
}

func TestDirectiveNormalisation(t *testing.T) {
	d := NewDefines()
	d.DefineDirectiveAsTrue("IF   Declared( Foo )")
	if v, ok := d.LookupDirective("if declared( foo )"); !ok || !v {
		t.Fatalf("lookup = %v, %v", v, ok)
	}
	if _, ok := d.LookupDirective("IF Declared(Foo)"); ok {
		t.Fatalf("differently tokenised text must not match")
	}
}

func TestSplitDirective(t *testing.T) {
	cases := []struct{ in, name, arg string }{
		{"IFDEF FOO", "IFDEF", "FOO"},
		{"i+", "I", "+"},
		{"include  'a b.inc'", "INCLUDE", "'a b.inc'"},
		{"ENDIF", "ENDIF", ""},
	}
	for _, c := range cases {
		name, arg := splitDirective(c.in)
		if name != c.name || arg != c.arg {
			t.Errorf("splitDirective(%q) = %q, %q", c.in, name, arg)
		}
	}
}
