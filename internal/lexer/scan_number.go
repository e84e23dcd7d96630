package lexer

import (
	"dgrok/internal/token"
)

// Поддержка: 123, 1.5, 1e-3, 1.0E+10 и шестнадцатеричные $FF.
// Точка не съедается, если за ней нет цифры: "24..42" это Number DotDot Number,
// а "A[1].B" не превращается в вещественное "1.".
func (sc *Scanner) scanNumber() (*token.Token, error) {
	if !isDec(sc.cursor.Peek()) {
		return nil, nil
	}
	start := sc.cursor.Mark()
	sc.eatDigits()

	// дробная часть
	if sc.cursor.Peek() == '.' && isDec(sc.cursor.PeekAt(1)) {
		sc.cursor.Bump() // '.'
		sc.eatDigits()
	}

	// экспонента
	if b := sc.cursor.Peek(); b == 'e' || b == 'E' {
		next := sc.cursor.PeekAt(1)
		switch {
		case isDec(next):
			sc.cursor.Bump()
			sc.eatDigits()
		case (next == '+' || next == '-') && isDec(sc.cursor.PeekAt(2)):
			sc.cursor.Bump()
			sc.cursor.Bump()
			sc.eatDigits()
		}
	}
	return sc.emit(token.Number, start), nil
}

func (sc *Scanner) scanHexNumber() (*token.Token, error) {
	if sc.cursor.Peek() != '$' || !isHex(sc.cursor.PeekAt(1)) {
		return nil, nil
	}
	start := sc.cursor.Mark()
	sc.cursor.Bump() // '$'
	for isHex(sc.cursor.Peek()) {
		sc.cursor.Bump()
	}
	return sc.emit(token.Number, start), nil
}

func (sc *Scanner) eatDigits() {
	for isDec(sc.cursor.Peek()) {
		sc.cursor.Bump()
	}
}
