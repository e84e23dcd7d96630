// Package lexer turns Delphi source text into tokens.
//
// The scanner skips whitespace and then tries a fixed list of recognizers;
// the first one that matches produces the token. Comments and compiler
// directives are returned as tokens; dropping them is the job of the
// conditional filter.
package lexer

import (
	"unicode"

	"dgrok/internal/diag"
	"dgrok/internal/source"
	"dgrok/internal/token"
)

// Scanner produces tokens from one file.
type Scanner struct {
	file   *source.File
	cursor Cursor
}

// New creates a scanner positioned at the start of file.
func New(file *source.File) *Scanner {
	return &Scanner{file: file, cursor: NewCursor(file)}
}

// FromText is a shortcut for scanning in-memory text.
func FromText(fileName, text string) *Scanner {
	return New(source.NewFile(fileName, text))
}

// File returns the file being scanned.
func (sc *Scanner) File() *source.File { return sc.file }

// Reset rewinds the scanner to the beginning of the file.
func (sc *Scanner) Reset() {
	sc.cursor.Reset(0)
}

// recognizer tries to scan one token at the cursor. It returns nil without
// moving the cursor when the input does not match.
type recognizer func(sc *Scanner) (*token.Token, error)

// порядок важен: первый сработавший распознаватель выигрывает
var recognizers = [...]recognizer{
	(*Scanner).scanBareWord,
	(*Scanner).scanEqualityOrAssignment,
	(*Scanner).scanNumber,
	(*Scanner).scanStringLiteral,
	(*Scanner).scanSingleLineComment,
	(*Scanner).scanCurlyBraceComment,
	(*Scanner).scanParenStarComment,
	(*Scanner).scanDotDot,
	(*Scanner).scanSingleCharacter,
	(*Scanner).scanHexNumber,
	(*Scanner).scanAmpersandIdentifier,
	(*Scanner).scanDoubleQuotedApostrophe,
}

// Next returns the next token, or nil at end of input.
func (sc *Scanner) Next() (*token.Token, error) {
	sc.skipWhitespace()
	if sc.cursor.EOF() {
		return nil, nil
	}
	for _, rec := range recognizers {
		tok, err := rec(sc)
		if err != nil {
			return nil, err
		}
		if tok != nil {
			return tok, nil
		}
	}
	r, _ := sc.peekRune()
	return nil, diag.New(diag.LexUnrecognizedChar, sc.cursor.Loc(sc.cursor.Mark()),
		"Unrecognized character '%c'", r)
}

// All scans to the end of input.
func (sc *Scanner) All() ([]token.Token, error) {
	var out []token.Token
	for {
		tok, err := sc.Next()
		if err != nil {
			return out, err
		}
		if tok == nil {
			return out, nil
		}
		out = append(out, *tok)
	}
}

func (sc *Scanner) skipWhitespace() {
	for {
		r, sz := sc.peekRune()
		if sz == 0 || !unicode.IsSpace(r) {
			return
		}
		sc.bumpRune()
	}
}

// emit builds a token spanning from the mark to the cursor.
func (sc *Scanner) emit(kind token.Kind, start Mark) *token.Token {
	text := sc.cursor.TextFrom(start)
	return &token.Token{Kind: kind, Loc: sc.cursor.Loc(start), Text: text, Parsed: text}
}
