package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"dgrok/internal/token"
)

type TokenOutput struct {
	Kind   string `json:"kind"`
	Text   string `json:"text,omitempty"`
	Parsed string `json:"parsed,omitempty"`
	Offset uint32 `json:"offset"`
	Line   uint32 `json:"line"`
	Col    uint32 `json:"col"`
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, tokens []token.Token) error {
	for i, tok := range tokens {
		lc := tok.Loc.LineCol()
		if _, err := fmt.Fprintf(w, "%4d: %-24s %q at %d:%d", i+1, tok.Kind.String(), tok.Text, lc.Line, lc.Col); err != nil {
			return err
		}
		// у директив показываем нормализованный текст
		if tok.Parsed != "" && tok.Parsed != tok.Text {
			if _, err := fmt.Fprintf(w, " (%s)", tok.Parsed); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		lc := tok.Loc.LineCol()
		out := TokenOutput{
			Kind:   tok.Kind.String(),
			Text:   tok.Text,
			Offset: tok.Loc.Offset,
			Line:   lc.Line,
			Col:    lc.Col,
		}
		if tok.Parsed != tok.Text {
			out.Parsed = tok.Parsed
		}
		output = append(output, out)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
