package parser

import (
	"dgrok/internal/ast"
	"dgrok/internal/token"
)

// ParseIdent accepts an identifier or a semikeyword used as one; the
// result is always tagged Identifier.
func (p *Parser) ParseIdent() (*ast.Token, error) {
	if p.atIdent() {
		return p.advanceAs(token.Identifier), nil
	}
	return nil, p.fail("Identifier")
}

// ParseExtendedIdent also accepts reserved words, as allowed after a dot.
func (p *Parser) ParseExtendedIdent() (*ast.Token, error) {
	if p.fill(0) && p.toks[p.pos].Kind.IsWord() {
		return p.advanceAs(token.Identifier), nil
	}
	return nil, p.fail("Identifier")
}

// ParseQualifiedIdent parses Ident {'.' ExtendedIdent}.
func (p *Parser) ParseQualifiedIdent() (ast.Node, error) {
	first, err := p.ParseIdent()
	if err != nil {
		return nil, err
	}
	var left ast.Node = first
	for p.at(token.Dot) {
		dot := p.advance()
		right, err := p.ParseExtendedIdent()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOperationNode{Left: left, Operator: dot, Right: right}
	}
	return left, nil
}

// ParseLabelId accepts an identifier or a number.
func (p *Parser) ParseLabelId() (*ast.Token, error) {
	if p.at(token.Number) {
		return p.advance(), nil
	}
	if p.atIdent() {
		return p.advanceAs(token.Identifier), nil
	}
	return nil, p.fail("LabelId")
}

// ParseIdentList parses a comma-separated list of identifiers.
func (p *Parser) ParseIdentList() (*ast.ListNode[*ast.DelimitedItemNode[*ast.Token]], error) {
	return delimitedList(p, token.Comma, p.ParseIdent)
}

// ParseQualifiedIdentList parses a comma-separated list of qualified names.
func (p *Parser) ParseQualifiedIdentList() (*ast.ListNode[*ast.DelimitedItemNode[ast.Node]], error) {
	return delimitedList(p, token.Comma, p.ParseQualifiedIdent)
}

// ParseExpression parses a full expression including relational operators.
func (p *Parser) ParseExpression() (ast.Node, error) {
	return p.parseBinary(precRelational)
}

// ParseSimpleExpression stops before relational operators, so "=" can
// follow it as a delimiter.
func (p *Parser) ParseSimpleExpression() (ast.Node, error) {
	return p.parseBinary(precAdditive)
}

// ParseTerm parses multiplicative operations.
func (p *Parser) ParseTerm() (ast.Node, error) {
	return p.parseBinary(precMultiplicative)
}

// parseBinary: левоассоциативный разбор по уровням приоритета
func (p *Parser) parseBinary(minPrec int) (ast.Node, error) {
	left, err := p.ParseFactor()
	if err != nil {
		return nil, err
	}
	for {
		prec := binaryPrec(p.peek(0))
		if prec == precNone || prec < minPrec {
			return left, nil
		}
		op := p.advance()
		right, err := p.parseBinary(prec + 1)
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOperationNode{Left: left, Operator: op, Right: right}
	}
}

// ParseFactor parses an optional chain of unary operators and an atom.
func (p *Parser) ParseFactor() (ast.Node, error) {
	if p.atSet(token.UnaryOps) {
		op := p.advance()
		operand, err := p.ParseFactor()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOperationNode{Operator: op, Operand: operand}, nil
	}
	return p.ParseAtom()
}

// ParseAtom parses a particle followed by any number of member accesses,
// indexers, calls and dereferences.
func (p *Parser) ParseAtom() (ast.Node, error) {
	left, err := p.ParseParticle()
	if err != nil {
		return nil, err
	}
	return p.parsePostfix(left)
}

func (p *Parser) parsePostfix(left ast.Node) (ast.Node, error) {
	for {
		switch p.peek(0) {
		case token.Dot:
			dot := p.advance()
			right, err := p.ParseExtendedIdent()
			if err != nil {
				return nil, err
			}
			left = &ast.BinaryOperationNode{Left: left, Operator: dot, Right: right}
		case token.OpenBracket:
			open := p.advance()
			args, err := p.ParseExpressionList()
			if err != nil {
				return nil, err
			}
			closer, err := p.expect(token.CloseBracket)
			if err != nil {
				return nil, err
			}
			left = &ast.ParameterizedNode{Left: left, OpenDelimiter: open, ParameterList: args, CloseDelimiter: closer}
		case token.OpenParenthesis:
			open := p.advance()
			args := ast.NewList[*ast.DelimitedItemNode[ast.Node]](nil)
			if !p.at(token.CloseParenthesis) {
				var err error
				args, err = delimitedList(p, token.Comma, p.parseParameterExpression)
				if err != nil {
					return nil, err
				}
			}
			closer, err := p.expect(token.CloseParenthesis)
			if err != nil {
				return nil, err
			}
			left = &ast.ParameterizedNode{Left: left, OpenDelimiter: open, ParameterList: args, CloseDelimiter: closer}
		case token.Caret:
			left = &ast.PointerDereferenceNode{Operand: left, Caret: p.advance()}
		default:
			return left, nil
		}
	}
}

// parseParameterExpression parses a call argument, which may carry the
// Write/Str formatting suffix "value:width[:precision]".
func (p *Parser) parseParameterExpression() (ast.Node, error) {
	value, err := p.ParseExpression()
	if err != nil || !p.at(token.Colon) {
		return value, err
	}
	n := &ast.NumberFormatNode{Value: value, SizeColon: p.advance()}
	if n.Size, err = p.ParseExpression(); err != nil {
		return nil, err
	}
	if p.at(token.Colon) {
		n.PrecisionColon = p.advance()
		if n.Precision, err = p.ParseExpression(); err != nil {
			return nil, err
		}
	}
	return n, nil
}

// ParseParticle parses the innermost operand of an expression.
func (p *Parser) ParseParticle() (ast.Node, error) {
	switch p.peek(0) {
	case token.Number, token.StringLiteral, token.NilKeyword, token.StringKeyword, token.FileKeyword:
		return p.advance(), nil
	case token.OpenParenthesis:
		return p.ParseParenthesizedExpression()
	case token.OpenBracket:
		return p.ParseSetLiteral()
	case token.InheritedKeyword:
		inh := p.advance()
		if !p.atIdent() {
			return inh, nil
		}
		operand, err := p.ParseAtom()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOperationNode{Operator: inh, Operand: operand}, nil
	}
	if p.atIdent() {
		return p.advanceAs(token.Identifier), nil
	}
	return nil, p.fail("Expression")
}

// ParseParenthesizedExpression parses '(' Expression ')'.
func (p *Parser) ParseParenthesizedExpression() (*ast.ParenthesizedExpressionNode, error) {
	open, err := p.expect(token.OpenParenthesis)
	if err != nil {
		return nil, err
	}
	inner, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	closer, err := p.expect(token.CloseParenthesis)
	if err != nil {
		return nil, err
	}
	return &ast.ParenthesizedExpressionNode{OpenParenthesis: open, Expression: inner, CloseParenthesis: closer}, nil
}

// ParseSetLiteral parses '[' [ExpressionOrRange {',' ExpressionOrRange}] ']'.
func (p *Parser) ParseSetLiteral() (*ast.SetLiteralNode, error) {
	open, err := p.expect(token.OpenBracket)
	if err != nil {
		return nil, err
	}
	items := ast.NewList[*ast.DelimitedItemNode[ast.Node]](nil)
	if !p.at(token.CloseBracket) {
		if items, err = p.ParseExpressionOrRangeList(); err != nil {
			return nil, err
		}
	}
	closer, err := p.expect(token.CloseBracket)
	if err != nil {
		return nil, err
	}
	return &ast.SetLiteralNode{OpenBracket: open, ItemList: items, CloseBracket: closer}, nil
}

// ParseExpressionOrRange parses Expression ['..' Expression].
func (p *Parser) ParseExpressionOrRange() (ast.Node, error) {
	left, err := p.ParseExpression()
	if err != nil || !p.at(token.DotDot) {
		return left, err
	}
	op := p.advance()
	right, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.BinaryOperationNode{Left: left, Operator: op, Right: right}, nil
}

// ParseExpressionList parses a comma-separated list of expressions.
func (p *Parser) ParseExpressionList() (*ast.ListNode[*ast.DelimitedItemNode[ast.Node]], error) {
	return delimitedList(p, token.Comma, p.ParseExpression)
}

// ParseExpressionOrRangeList parses a comma-separated list of expressions
// and ranges.
func (p *Parser) ParseExpressionOrRangeList() (*ast.ListNode[*ast.DelimitedItemNode[ast.Node]], error) {
	return delimitedList(p, token.Comma, p.ParseExpressionOrRange)
}

// ParseAddOp, ParseMulOp, ParseRelOp and ParseUnaryOperator accept a
// single operator token.
func (p *Parser) ParseAddOp() (*ast.Token, error) { return p.expectSet(token.AddOps, "AddOp") }

func (p *Parser) ParseMulOp() (*ast.Token, error) { return p.expectSet(token.MulOps, "MulOp") }

func (p *Parser) ParseRelOp() (*ast.Token, error) { return p.expectSet(token.RelOps, "RelOp") }

func (p *Parser) ParseUnaryOperator() (*ast.Token, error) {
	return p.expectSet(token.UnaryOps, "UnaryOperator")
}
