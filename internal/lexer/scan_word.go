package lexer

import (
	"dgrok/internal/token"
)

// scanBareWord сканирует [letter_][letter digit _]* и классифицирует слово
// через token.LookupWord (без учёта регистра).
func (sc *Scanner) scanBareWord() (*token.Token, error) {
	r, sz := sc.peekRune()
	if sz == 0 || !isIdentStartRune(r) {
		return nil, nil
	}
	start := sc.cursor.Mark()
	sc.scanWordTail()
	tok := sc.emit(token.Identifier, start)
	tok.Kind = token.LookupWord(tok.Text)
	return tok, nil
}

// scanAmpersandIdentifier: &word всегда идентификатор, даже если word ключевое слово.
func (sc *Scanner) scanAmpersandIdentifier() (*token.Token, error) {
	if sc.cursor.Peek() != '&' {
		return nil, nil
	}
	r, sz := sc.peekRuneAt(1)
	if sz == 0 || !isIdentStartRune(r) {
		return nil, nil
	}
	start := sc.cursor.Mark()
	sc.cursor.Bump() // '&'
	sc.scanWordTail()
	tok := sc.emit(token.Identifier, start)
	tok.Parsed = tok.Text[1:]
	return tok, nil
}

func (sc *Scanner) scanWordTail() {
	sc.bumpRune()
	for {
		r, sz := sc.peekRune()
		if sz == 0 || !isIdentContinueRune(r) {
			return
		}
		sc.bumpRune()
	}
}
