package parser

import (
	"dgrok/internal/ast"
	"dgrok/internal/token"
)

// ParseType dispatches on the first token of a type. Anything not starting
// with a type keyword is a named type or a subrange "A..B".
func (p *Parser) ParseType() (ast.Node, error) {
	switch p.peek(0) {
	case token.OpenParenthesis:
		return asNode(p.ParseEnumeratedType())
	case token.ArrayKeyword:
		return asNode(p.ParseArrayType())
	case token.SetKeyword:
		return asNode(p.ParseSetType())
	case token.FileKeyword:
		return asNode(p.ParseFileType())
	case token.RecordKeyword:
		if p.peek(1) == token.HelperSemikeyword {
			return asNode(p.ParseRecordHelperType())
		}
		return asNode(p.ParseRecordType())
	case token.PackedKeyword:
		return asNode(p.ParsePackedType())
	case token.Caret:
		return asNode(p.ParsePointerType())
	case token.StringKeyword:
		return p.ParseStringType()
	case token.ProcedureKeyword, token.FunctionKeyword:
		return asNode(p.ParseProcedureType())
	case token.ReferenceSemikeyword:
		if p.peek(1) == token.ToKeyword {
			return asNode(p.ParseProcedureReferenceType())
		}
	case token.ClassKeyword:
		switch p.peek(1) {
		case token.OfKeyword:
			return asNode(p.ParseClassOfType())
		case token.HelperSemikeyword:
			return asNode(p.ParseClassHelperType())
		}
		return asNode(p.ParseClassType())
	case token.ObjectKeyword:
		return asNode(p.ParseClassType())
	case token.InterfaceKeyword, token.DispinterfaceKeyword:
		return asNode(p.ParseInterfaceType())
	}
	return p.parseTypeRange()
}

// parseTypeRange parses SimpleExpression ['..' SimpleExpression]; the
// relational level is skipped so that "X: Integer = 5" stops at '='.
func (p *Parser) parseTypeRange() (ast.Node, error) {
	left, err := p.ParseSimpleExpression()
	if err != nil || !p.at(token.DotDot) {
		return left, err
	}
	op := p.advance()
	right, err := p.ParseSimpleExpression()
	if err != nil {
		return nil, err
	}
	return &ast.BinaryOperationNode{Left: left, Operator: op, Right: right}, nil
}

func (p *Parser) ParseEnumeratedType() (*ast.EnumeratedTypeNode, error) {
	open, err := p.expect(token.OpenParenthesis)
	if err != nil {
		return nil, err
	}
	items, err := delimitedList(p, token.Comma, p.ParseEnumeratedTypeElement)
	if err != nil {
		return nil, err
	}
	closer, err := p.expect(token.CloseParenthesis)
	if err != nil {
		return nil, err
	}
	return &ast.EnumeratedTypeNode{OpenParenthesis: open, ItemList: items, CloseParenthesis: closer}, nil
}

// ParseEnumeratedTypeElement parses "Name [= Value]".
func (p *Parser) ParseEnumeratedTypeElement() (*ast.EnumeratedTypeElementNode, error) {
	name, err := p.ParseIdent()
	if err != nil {
		return nil, err
	}
	n := &ast.EnumeratedTypeElementNode{Name: name}
	if p.at(token.EqualSign) {
		n.EqualSign = p.advance()
		if n.Value, err = p.ParseExpression(); err != nil {
			return nil, err
		}
	}
	return n, nil
}

// ParseArrayType parses "array [Index, ...] of Type"; without brackets it
// is a dynamic array. "array of const" keeps the const keyword as the type.
func (p *Parser) ParseArrayType() (*ast.ArrayTypeNode, error) {
	arr, err := p.expect(token.ArrayKeyword)
	if err != nil {
		return nil, err
	}
	n := &ast.ArrayTypeNode{Array: arr}
	if p.at(token.OpenBracket) {
		n.OpenBracket = p.advance()
		if n.IndexList, err = delimitedList(p, token.Comma, p.ParseType); err != nil {
			return nil, err
		}
		if n.CloseBracket, err = p.expect(token.CloseBracket); err != nil {
			return nil, err
		}
	}
	if n.Of, err = p.expect(token.OfKeyword); err != nil {
		return nil, err
	}
	if p.at(token.ConstKeyword) {
		n.Type = p.advance()
	} else if n.Type, err = p.ParseType(); err != nil {
		return nil, err
	}
	return n, nil
}

func (p *Parser) ParseSetType() (*ast.SetOfNode, error) {
	set, err := p.expect(token.SetKeyword)
	if err != nil {
		return nil, err
	}
	of, err := p.expect(token.OfKeyword)
	if err != nil {
		return nil, err
	}
	elem, err := p.ParseType()
	if err != nil {
		return nil, err
	}
	return &ast.SetOfNode{Set: set, Of: of, Type: elem}, nil
}

// ParseFileType parses "file [of Type]".
func (p *Parser) ParseFileType() (*ast.FileTypeNode, error) {
	file, err := p.expect(token.FileKeyword)
	if err != nil {
		return nil, err
	}
	n := &ast.FileTypeNode{File: file}
	if p.at(token.OfKeyword) {
		n.Of = p.advance()
		if n.Type, err = p.ParseType(); err != nil {
			return nil, err
		}
	}
	return n, nil
}

func (p *Parser) ParsePackedType() (*ast.PackedTypeNode, error) {
	packed, err := p.expect(token.PackedKeyword)
	if err != nil {
		return nil, err
	}
	inner, err := p.ParseType()
	if err != nil {
		return nil, err
	}
	return &ast.PackedTypeNode{Packed: packed, Type: inner}, nil
}

// ParsePointerType parses "^Name" or "^string".
func (p *Parser) ParsePointerType() (*ast.PointerTypeNode, error) {
	caret, err := p.expect(token.Caret)
	if err != nil {
		return nil, err
	}
	target, err := p.ParseMethodReturnType()
	if err != nil {
		return nil, err
	}
	return &ast.PointerTypeNode{Caret: caret, Type: target}, nil
}

// ParseStringType parses "string" or "string[Length]".
func (p *Parser) ParseStringType() (ast.Node, error) {
	str, err := p.expect(token.StringKeyword)
	if err != nil {
		return nil, err
	}
	if !p.at(token.OpenBracket) {
		return str, nil
	}
	n := &ast.StringOfLengthNode{String: str, OpenBracket: p.advance()}
	if n.Length, err = p.ParseExpression(); err != nil {
		return nil, err
	}
	if n.CloseBracket, err = p.expect(token.CloseBracket); err != nil {
		return nil, err
	}
	return n, nil
}

// ParseProcedureType parses "procedure [(Params)] [: Type] [directives]
// [of object] [directives]".
func (p *Parser) ParseProcedureType() (*ast.ProcedureTypeNode, error) {
	kw, err := p.expect(token.ProcedureKeyword, token.FunctionKeyword)
	if err != nil {
		return nil, err
	}
	n := &ast.ProcedureTypeNode{MethodType: kw}
	if p.at(token.OpenParenthesis) {
		n.OpenParenthesis = p.advance()
		if n.ParameterList, err = p.parseParameterListUntilClose(); err != nil {
			return nil, err
		}
		if n.CloseParenthesis, err = p.expect(token.CloseParenthesis); err != nil {
			return nil, err
		}
	}
	if p.at(token.Colon) {
		n.Colon = p.advance()
		if n.ReturnType, err = p.ParseMethodReturnType(); err != nil {
			return nil, err
		}
	}
	if n.FirstDirectiveList, err = p.ParseDirectiveList(); err != nil {
		return nil, err
	}
	if p.at(token.OfKeyword) {
		n.Of = p.advance()
		if n.Object, err = p.expect(token.ObjectKeyword); err != nil {
			return nil, err
		}
	}
	if n.SecondDirectiveList, err = p.ParseDirectiveList(); err != nil {
		return nil, err
	}
	return n, nil
}

// ParseProcedureReferenceType parses "reference to procedure ...".
func (p *Parser) ParseProcedureReferenceType() (*ast.ProcedureReferenceNode, error) {
	ref, err := p.expect(token.ReferenceSemikeyword)
	if err != nil {
		return nil, err
	}
	to, err := p.expect(token.ToKeyword)
	if err != nil {
		return nil, err
	}
	proc, err := p.ParseProcedureType()
	if err != nil {
		return nil, err
	}
	return &ast.ProcedureReferenceNode{Reference: ref, To: to, ProcedureType: proc}, nil
}

func (p *Parser) ParseClassOfType() (*ast.ClassOfNode, error) {
	class, err := p.expect(token.ClassKeyword)
	if err != nil {
		return nil, err
	}
	of, err := p.expect(token.OfKeyword)
	if err != nil {
		return nil, err
	}
	target, err := p.ParseQualifiedIdent()
	if err != nil {
		return nil, err
	}
	return &ast.ClassOfNode{Class: class, Of: of, Type: target}, nil
}
