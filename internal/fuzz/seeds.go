package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB, ограничение для тестового корпуса
)

var snippetSeeds = []string{
	"",
	"unit U; interface implementation end.",
	"program P; uses SysUtils, Foo in 'Foo.pas'; begin WriteLn('hi') end.",
	"library L; exports F index 1 name 'F'; begin end.",
	"package Pkg; requires rtl; contains A in 'A.pas'; end.",
	"unit U; interface type TFoo = class(TObject) private FX: Integer; public property X: Integer read FX write FX; end; implementation end.",
	"unit U; interface implementation procedure P; asm mov eax, 1 end; end.",
	"{$IFDEF DEBUG} unit A; {$ELSE} unit B; {$ENDIF} interface implementation end.",
	"{$IF CompilerVersion >= 15} unit A; {$IFEND} interface implementation end.",
	"unit U; interface const S = 'it''s' + #13#10; implementation end.",
	"begin case X of 1..2, 5: ; else end end",
	"begin try raise E.Create('x') except on E: Exception do ; end end",
}

func addCorpusSeeds(f *testing.F) {
	addTestdataSeeds(f)
	for _, s := range snippetSeeds {
		f.Add([]byte(s))
	}
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все исходники Delphi
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".pas", ".dpr", ".dpk", ".inc":
		default:
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
