package fuzztests

import (
	"testing"

	"dgrok/internal/lexer"
	"dgrok/internal/preproc"
)

const maxFuzzInput = 1 << 16 // 64 KiB

func clampInput(input []byte) string {
	if len(input) > maxFuzzInput {
		input = input[:maxFuzzInput]
	}
	return string(input)
}

func FuzzLexerTokens(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		text := clampInput(input)
		sc := lexer.FromText("fuzz.pas", text)
		prev := -1
		for {
			tok, err := sc.Next()
			if err != nil || tok == nil {
				break
			}
			// позиции токенов строго растут
			if int(tok.Loc.Offset) <= prev {
				t.Fatalf("token %v at %d after offset %d", tok.Kind, tok.Loc.Offset, prev)
			}
			prev = int(tok.Loc.Offset)
		}
	})
}

func FuzzFilterTokens(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(_ *testing.T, input []byte) {
		text := clampInput(input)
		filter := preproc.NewFilter(lexer.FromText("fuzz.pas", text), preproc.StandardDefines(), selfInclude)
		_, _ = filter.All()
	})
}
