package fuzztests

import (
	"testing"
	"time"

	"dgrok/internal/loader"
	"dgrok/internal/parser"
	"dgrok/internal/preproc"
)

// parseTimeout is the maximum time allowed for parsing a single input.
// If parsing takes longer, it indicates a potential infinite loop.
const parseTimeout = 5 * time.Second

// selfInclude resolves every include to a file that includes itself.
var selfInclude = loader.NewMemoryLoader(map[string]string{
	"loop.inc": "{$I loop.inc}",
})

func FuzzParserBuildsAST(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		text := clampInput(input)
		tree, err := parser.FromText(text, "fuzz.pas", preproc.StandardDefines(), selfInclude).Parse()
		if err == nil && tree == nil {
			t.Fatalf("nil tree without an error for %q", truncateForLog(input, 200))
		}
	})
}

// FuzzParserNoHang tests that the parser doesn't hang on any input.
func FuzzParserNoHang(f *testing.F) {
	addCorpusSeeds(f)

	// Add specific edge cases for error paths
	f.Add([]byte("unit U; interface implementation"))         // missing end
	f.Add([]byte("{$I loop.inc} unit U;"))                    // include recursion
	f.Add([]byte("{$IFDEF X} unit U;"))                       // unterminated IFDEF
	f.Add([]byte("unit U; interface type T = class"))         // unterminated class
	f.Add([]byte("begin ((((((((((((((( end"))                // deeply nested parens
	f.Add([]byte("unit U; interface implementation { end."))  // unterminated comment
	f.Add([]byte("program P; begin X := 'unterminated end.")) // unterminated string

	f.Fuzz(func(t *testing.T, input []byte) {
		text := clampInput(input)

		done := make(chan struct{})
		go func() {
			defer close(done)
			_, _ = parser.FromText(text, "fuzz.pas", preproc.StandardDefines(), selfInclude).Parse()
		}()

		select {
		case <-done:
		case <-time.After(parseTimeout):
			t.Fatalf("parser hang detected: parsing took longer than %v\ninput (%d bytes): %q",
				parseTimeout, len(input), truncateForLog(input, 200))
		}
	})
}

// truncateForLog truncates input for logging purposes
func truncateForLog(input []byte, maxLen int) []byte {
	if len(input) <= maxLen {
		return input
	}
	return append(input[:maxLen:maxLen], []byte("...")...)
}
