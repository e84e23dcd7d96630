package lexer

import (
	"dgrok/internal/token"
)

// scanEqualityOrAssignment: := <= <> >= < = >
func (sc *Scanner) scanEqualityOrAssignment() (*token.Token, error) {
	start := sc.cursor.Mark()
	var kind token.Kind
	switch {
	case sc.try2(':', '='):
		kind = token.ColonEquals
	case sc.try2('<', '='):
		kind = token.LessOrEqual
	case sc.try2('<', '>'):
		kind = token.NotEqual
	case sc.try2('>', '='):
		kind = token.GreaterOrEqual
	case sc.cursor.Eat('<'):
		kind = token.LessThan
	case sc.cursor.Eat('='):
		kind = token.EqualSign
	case sc.cursor.Eat('>'):
		kind = token.GreaterThan
	default:
		return nil, nil
	}
	return sc.emit(kind, start), nil
}

func (sc *Scanner) scanDotDot() (*token.Token, error) {
	start := sc.cursor.Mark()
	if !sc.try2('.', '.') {
		return nil, nil
	}
	return sc.emit(token.DotDot, start), nil
}

var singleChars = [256]token.Kind{
	'(': token.OpenParenthesis,
	')': token.CloseParenthesis,
	'*': token.TimesSign,
	'+': token.PlusSign,
	',': token.Comma,
	'-': token.MinusSign,
	'.': token.Dot,
	'/': token.DivideBySign,
	':': token.Colon,
	';': token.Semicolon,
	'@': token.AtSign,
	'[': token.OpenBracket,
	']': token.CloseBracket,
	'^': token.Caret,
}

func (sc *Scanner) scanSingleCharacter() (*token.Token, error) {
	kind := singleChars[sc.cursor.Peek()]
	if kind == token.Invalid {
		return nil, nil
	}
	start := sc.cursor.Mark()
	sc.cursor.Bump()
	return sc.emit(kind, start), nil
}
