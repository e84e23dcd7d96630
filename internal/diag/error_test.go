package diag_test

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"dgrok/internal/diag"
	"dgrok/internal/source"
)

func TestErrorRendersLocation(t *testing.T) {
	f := source.NewFile("Foo.pas", "unit\n  ?")
	err := diag.New(diag.LexUnrecognizedChar, source.At(f, 7), "Unrecognized character '%c'", '?')
	if got := err.Error(); got != "Foo.pas:2:3: Unrecognized character '?'" {
		t.Fatalf("Error() = %q", got)
	}
}

func TestCodeOfThroughWrapping(t *testing.T) {
	inner := diag.New(diag.SynExpected, source.Location{}, "Expected Goal")
	outer := fmt.Errorf("parse: %w", inner)
	if diag.CodeOf(outer) != diag.SynExpected {
		t.Fatalf("CodeOf lost the code")
	}
	if diag.CodeOf(errors.New("plain")) != diag.UnknownCode {
		t.Fatalf("plain errors have no code")
	}
	if _, ok := diag.LocationOf(outer); ok {
		t.Fatalf("zero location must report !ok")
	}
}

func TestWrapKeepsCause(t *testing.T) {
	err := diag.Wrap(diag.IOLoadFile, source.Location{}, fs.ErrNotExist)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("Unwrap chain broken")
	}
	if err.Code.Category() != diag.CategoryIO {
		t.Fatalf("category = %v", err.Code.Category())
	}
}

func TestCodeIDs(t *testing.T) {
	cases := map[diag.Code]string{
		diag.LexUnrecognizedChar:  "LEX1001",
		diag.SynExpected:          "SYN2001",
		diag.DirUnbalanced:        "DIR3001",
		diag.IOLoadFile:           "IO4001",
		diag.CatDuplicateFileName: "CAT5001",
	}
	for c, want := range cases {
		if c.ID() != want {
			t.Errorf("%d.ID() = %q, want %q", c, c.ID(), want)
		}
	}
}
