package names

import "testing"

func TestFold(t *testing.T) {
	cases := []struct{ a, b string }{
		{"Foo", "FOO"},
		{"SysUtils", "sysutils"},
		{"Straße", "STRASSE"},
		{"Привет", "ПРИВЕТ"},
	}
	for _, c := range cases {
		if !Equal(c.a, c.b) {
			t.Errorf("Equal(%q, %q) = false", c.a, c.b)
		}
	}
	if Equal("Foo", "Bar") {
		t.Fatalf("distinct names compare equal")
	}
}

func TestCompare(t *testing.T) {
	if Compare("apple", "Banana") >= 0 {
		t.Fatalf("case must not affect ordering")
	}
	if Compare("B", "b") == 0 {
		t.Fatalf("ties are broken ordinally")
	}
}
