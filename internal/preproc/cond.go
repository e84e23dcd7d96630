package preproc

import (
	"fmt"
	"strconv"
	"strings"

	"dgrok/internal/lexer"
	"dgrok/internal/names"
	"dgrok/internal/token"
)

// value is the result of a $IF sub-expression: either a boolean or a number.
type value struct {
	num   float64
	isNum bool
	b     bool
}

// condEval evaluates the expression of a $IF / $ELSEIF directive.
//
//	expr    = and { "or" and }
//	and     = not { "and" not }
//	not     = "not" not | rel
//	rel     = primary [ relop primary ]
//	primary = number | True | False | Defined(sym) | Declared(sym) | constant | "(" expr ")"
type condEval struct {
	defines *Defines
	toks    []token.Token
	pos     int
}

func evalCondition(d *Defines, expr string) (bool, error) {
	toks, err := lexer.FromText("", expr).All()
	if err != nil {
		return false, err
	}
	ev := &condEval{defines: d, toks: toks}
	v, err := ev.or()
	if err != nil {
		return false, err
	}
	if ev.pos < len(ev.toks) {
		return false, fmt.Errorf("unexpected %s", ev.toks[ev.pos].Describe())
	}
	if v.isNum {
		return v.num != 0, nil
	}
	return v.b, nil
}

func (ev *condEval) peek() token.Kind {
	if ev.pos >= len(ev.toks) {
		return token.Invalid
	}
	return ev.toks[ev.pos].Kind
}

func (ev *condEval) next() (token.Token, bool) {
	if ev.pos >= len(ev.toks) {
		return token.Token{}, false
	}
	ev.pos++
	return ev.toks[ev.pos-1], true
}

func (ev *condEval) expect(k token.Kind) error {
	tok, ok := ev.next()
	if !ok {
		return fmt.Errorf("expected %s but found end of expression", k)
	}
	if tok.Kind != k {
		return fmt.Errorf("expected %s but found %s", k, tok.Describe())
	}
	return nil
}

func (ev *condEval) or() (value, error) {
	left, err := ev.and()
	if err != nil {
		return value{}, err
	}
	for ev.peek() == token.OrKeyword {
		ev.pos++
		right, err := ev.and()
		if err != nil {
			return value{}, err
		}
		left = value{b: truth(left) || truth(right)}
	}
	return left, nil
}

func (ev *condEval) and() (value, error) {
	left, err := ev.not()
	if err != nil {
		return value{}, err
	}
	for ev.peek() == token.AndKeyword {
		ev.pos++
		right, err := ev.not()
		if err != nil {
			return value{}, err
		}
		left = value{b: truth(left) && truth(right)}
	}
	return left, nil
}

func (ev *condEval) not() (value, error) {
	if ev.peek() == token.NotKeyword {
		ev.pos++
		v, err := ev.not()
		if err != nil {
			return value{}, err
		}
		return value{b: !truth(v)}, nil
	}
	return ev.rel()
}

func (ev *condEval) rel() (value, error) {
	left, err := ev.primary()
	if err != nil {
		return value{}, err
	}
	op := ev.peek()
	switch op {
	case token.EqualSign, token.NotEqual, token.LessThan, token.LessOrEqual,
		token.GreaterThan, token.GreaterOrEqual:
	default:
		return left, nil
	}
	ev.pos++
	right, err := ev.primary()
	if err != nil {
		return value{}, err
	}
	if left.isNum != right.isNum {
		return value{}, fmt.Errorf("cannot compare a number with a boolean")
	}
	if !left.isNum {
		switch op {
		case token.EqualSign:
			return value{b: left.b == right.b}, nil
		case token.NotEqual:
			return value{b: left.b != right.b}, nil
		}
		return value{}, fmt.Errorf("%s is not defined for booleans", op)
	}
	a, b := left.num, right.num
	var r bool
	switch op {
	case token.EqualSign:
		r = a == b
	case token.NotEqual:
		r = a != b
	case token.LessThan:
		r = a < b
	case token.LessOrEqual:
		r = a <= b
	case token.GreaterThan:
		r = a > b
	case token.GreaterOrEqual:
		r = a >= b
	}
	return value{b: r}, nil
}

func (ev *condEval) primary() (value, error) {
	tok, ok := ev.next()
	if !ok {
		return value{}, fmt.Errorf("unexpected end of expression")
	}
	switch {
	case tok.Kind == token.Number:
		n, err := parseNumber(tok.Text)
		if err != nil {
			return value{}, err
		}
		return value{num: n, isNum: true}, nil
	case tok.Kind == token.MinusSign && ev.peek() == token.Number:
		v, err := ev.primary()
		v.num = -v.num
		return v, err
	case tok.Kind == token.OpenParenthesis:
		v, err := ev.or()
		if err != nil {
			return value{}, err
		}
		return v, ev.expect(token.CloseParenthesis)
	case token.IsIdent(tok.Kind):
		return ev.ident(tok.Text)
	}
	return value{}, fmt.Errorf("unexpected %s", tok.Describe())
}

func (ev *condEval) ident(name string) (value, error) {
	switch {
	case names.Equal(name, "True"):
		return value{b: true}, nil
	case names.Equal(name, "False"):
		return value{b: false}, nil
	case names.Equal(name, "Defined"), names.Equal(name, "Declared"):
		if err := ev.expect(token.OpenParenthesis); err != nil {
			return value{}, err
		}
		sym, ok := ev.next()
		if !ok || !sym.Kind.IsWord() {
			return value{}, fmt.Errorf("%s expects a symbol name", name)
		}
		if err := ev.expect(token.CloseParenthesis); err != nil {
			return value{}, err
		}
		if names.Equal(name, "Defined") {
			return value{b: ev.defines.IsDefined(sym.Text)}, nil
		}
		// Declared(X) нельзя вычислить без семантики: только через принудительную таблицу
		forced, _ := ev.defines.LookupDirective("IF Declared(" + sym.Text + ")")
		return value{b: forced}, nil
	}
	if n, ok := ev.defines.Number(name); ok {
		return value{num: n, isNum: true}, nil
	}
	return value{}, fmt.Errorf("unknown identifier %q", name)
}

func truth(v value) bool {
	if v.isNum {
		return v.num != 0
	}
	return v.b
}

func parseNumber(text string) (float64, error) {
	if strings.HasPrefix(text, "$") {
		n, err := strconv.ParseUint(text[1:], 16, 64)
		return float64(n), err
	}
	return strconv.ParseFloat(text, 64)
}
