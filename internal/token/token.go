// Package token defines the lexical vocabulary of Delphi source.
// Invariants:
//   - Token.Text is the exact source slice the token was scanned from.
//   - Token.Parsed is the decoded payload: the trimmed body of a compiler
//     directive, the value of a string literal, Text for everything else.
//   - Keyword and semikeyword lookup ignores case; the token keeps the
//     original spelling in Text.
package token

import (
	"fmt"

	"dgrok/internal/source"
)

// Token is one lexeme with its classification and position.
type Token struct {
	Kind   Kind
	Loc    source.Location
	Text   string
	Parsed string
}

// WithKind returns a copy of t reclassified as k.
func (t Token) WithKind(k Kind) Token {
	t.Kind = k
	return t
}

// End returns the offset just past the token.
func (t Token) End() uint32 {
	return t.Loc.Offset + uint32(len(t.Text)) // #nosec G115 -- token lies within the file
}

// Describe renders the token as "Kind |text|", the form used in messages and tree dumps.
func (t Token) Describe() string {
	return fmt.Sprintf("%s |%s|", t.Kind, t.Text)
}

func (t Token) String() string { return t.Describe() }
