package lexer

import (
	"strings"

	"dgrok/internal/diag"
	"dgrok/internal/token"
)

// scanSingleLineComment: // до '\r' или '\n' (сам перевод строки не входит).
func (sc *Scanner) scanSingleLineComment() (*token.Token, error) {
	if !sc.cursor.HasPrefix("//") {
		return nil, nil
	}
	start := sc.cursor.Mark()
	for !sc.cursor.EOF() {
		if b := sc.cursor.Peek(); b == '\r' || b == '\n' {
			break
		}
		sc.cursor.Bump()
	}
	return sc.emit(token.SingleLineComment, start), nil
}

func (sc *Scanner) scanCurlyBraceComment() (*token.Token, error) {
	return sc.scanBlockComment("{", "}", token.CurlyBraceComment)
}

func (sc *Scanner) scanParenStarComment() (*token.Token, error) {
	return sc.scanBlockComment("(*", "*)", token.ParenStarComment)
}

// scanBlockComment сканирует open...close; если сразу за open идёт '$',
// токен становится CompilerDirective с телом директивы в Parsed.
func (sc *Scanner) scanBlockComment(open, closer string, kind token.Kind) (*token.Token, error) {
	if !sc.cursor.HasPrefix(open) {
		return nil, nil
	}
	start := sc.cursor.Mark()
	sc.cursor.Off += uint32(len(open)) // #nosec G115 -- open is a short literal
	for !sc.cursor.HasPrefix(closer) {
		if sc.cursor.EOF() {
			return nil, sc.unterminatedComment(start, kind)
		}
		sc.cursor.Bump()
	}
	sc.cursor.Off += uint32(len(closer)) // #nosec G115 -- closer is a short literal

	tok := sc.emit(kind, start)
	body := tok.Text[len(open) : len(tok.Text)-len(closer)]
	if strings.HasPrefix(body, "$") {
		tok.Kind = token.CompilerDirective
		tok.Parsed = strings.TrimRight(body[1:], " \t\r\n")
	}
	return tok, nil
}

func (sc *Scanner) unterminatedComment(start Mark, kind token.Kind) error {
	code, msg := diag.LexUnterminatedComment, "Unterminated comment"
	sc.cursor.Reset(start)
	if kind == token.CurlyBraceComment && sc.cursor.PeekAt(1) == '$' ||
		kind == token.ParenStarComment && sc.cursor.PeekAt(2) == '$' {
		code, msg = diag.LexUnterminatedDirective, "Unterminated compiler directive"
	}
	return diag.New(code, sc.cursor.Loc(start), "%s", msg)
}
