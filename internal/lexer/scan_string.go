package lexer

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"dgrok/internal/diag"
	"dgrok/internal/token"
)

// scanStringLiteral склеивает подряд идущие 'quoted' сегменты и коды #13, #$0D.
// '' внутри кавычек это одиночный апостроф. Parsed содержит декодированное значение.
func (sc *Scanner) scanStringLiteral() (*token.Token, error) {
	if b := sc.cursor.Peek(); b != '\'' && b != '#' {
		return nil, nil
	}
	start := sc.cursor.Mark()
	var value strings.Builder
	for {
		switch sc.cursor.Peek() {
		case '\'':
			segStart := sc.cursor.Mark()
			sc.cursor.Bump()
			for {
				if sc.cursor.EOF() {
					return nil, diag.New(diag.LexUnterminatedString, sc.cursor.Loc(segStart),
						"Unterminated string literal")
				}
				b := sc.cursor.Bump()
				if b != '\'' {
					value.WriteByte(b)
					continue
				}
				if !sc.cursor.Eat('\'') {
					break
				}
				value.WriteByte('\'')
			}
		case '#':
			sc.cursor.Bump()
			codeStart := sc.cursor.Mark()
			base := 10
			if sc.cursor.Eat('$') {
				base = 16
			}
			digitsStart := sc.cursor.Mark()
			for {
				r, sz := sc.peekRune()
				if sz == 0 || !isIdentContinueRune(r) || r == '_' {
					break
				}
				sc.bumpRune()
			}
			digits := sc.cursor.TextFrom(digitsStart)
			if n, err := strconv.ParseUint(digits, base, 32); err == nil && utf8.ValidRune(rune(n)) {
				value.WriteRune(rune(n))
			} else {
				value.WriteString("#" + sc.cursor.TextFrom(codeStart))
			}
		default:
			tok := sc.emit(token.StringLiteral, start)
			tok.Parsed = value.String()
			return tok, nil
		}
	}
}

// scanDoubleQuotedApostrophe распознаёт "'" (три символа) как строковый литерал.
func (sc *Scanner) scanDoubleQuotedApostrophe() (*token.Token, error) {
	if !sc.cursor.HasPrefix(`"'"`) {
		return nil, nil
	}
	start := sc.cursor.Mark()
	sc.cursor.Off += 3
	tok := sc.emit(token.StringLiteral, start)
	tok.Parsed = "'"
	return tok, nil
}
