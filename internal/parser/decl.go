package parser

import (
	"dgrok/internal/ast"
	"dgrok/internal/token"
)

// ParsePortabilityDirectiveList collects platform, deprecated, library and
// experimental. The list is present even when empty.
func (p *Parser) ParsePortabilityDirectiveList() (*ast.ListNode[*ast.Token], error) {
	var items []*ast.Token
	for p.atSet(token.PortabilityDirectives) {
		items = append(items, p.advance())
	}
	return ast.NewList(items), nil
}

func (p *Parser) ParsePortabilityDirective() (*ast.Token, error) {
	return p.expectSet(token.PortabilityDirectives, "PortabilityDirective")
}

// ParseConstSection parses const or resourcestring followed by
// declarations. A declaration starts with an identifier followed by ':' or '='.
func (p *Parser) ParseConstSection() (*ast.ConstSectionNode, error) {
	kw, err := p.expect(token.ConstKeyword, token.ResourcestringKeyword)
	if err != nil {
		return nil, err
	}
	atDecl := func() bool { return p.atIdentThen(token.Colon, token.EqualSign) }
	list, err := repeated(atDecl, p.ParseConstantDecl)
	if err != nil {
		return nil, err
	}
	return &ast.ConstSectionNode{ConstKeyword: kw, ConstList: list}, nil
}

// ParseConstantDecl parses "Name [: Type] = Value [directives];".
func (p *Parser) ParseConstantDecl() (*ast.ConstantDeclNode, error) {
	name, err := p.ParseIdent()
	if err != nil {
		return nil, err
	}
	n := &ast.ConstantDeclNode{Name: name}
	if p.at(token.Colon) {
		n.Colon = p.advance()
		if n.Type, err = p.ParseType(); err != nil {
			return nil, err
		}
	}
	if n.EqualSign, err = p.expect(token.EqualSign); err != nil {
		return nil, err
	}
	if n.Type != nil {
		n.Value, err = p.ParseTypedConstant()
	} else {
		n.Value, err = p.ParseExpression()
	}
	if err != nil {
		return nil, err
	}
	if n.PortabilityDirectiveList, err = p.ParsePortabilityDirectiveList(); err != nil {
		return nil, err
	}
	if n.Semicolon, err = p.expect(token.Semicolon); err != nil {
		return nil, err
	}
	return n, nil
}

// ParseTypedConstant parses the value of a typed constant or initialized
// variable. A parenthesized value is a record constant when it starts with
// "Name:", an expression when it parses as one, and an array constant
// otherwise.
func (p *Parser) ParseTypedConstant() (ast.Node, error) {
	if !p.at(token.OpenParenthesis) {
		return p.ParseExpression()
	}
	if token.IsIdent(p.peek(1)) && p.peek(2) == token.Colon {
		return asNode(p.ParseRecordConstant())
	}
	m := p.mark()
	if expr, err := p.ParseExpression(); err == nil {
		return expr, nil
	}
	p.reset(m)
	return asNode(p.ParseArrayConstant())
}

func (p *Parser) ParseArrayConstant() (*ast.ArrayConstantNode, error) {
	open, err := p.expect(token.OpenParenthesis)
	if err != nil {
		return nil, err
	}
	items, err := delimitedList(p, token.Comma, p.ParseTypedConstant)
	if err != nil {
		return nil, err
	}
	closer, err := p.expect(token.CloseParenthesis)
	if err != nil {
		return nil, err
	}
	return &ast.ArrayConstantNode{OpenParenthesis: open, ItemList: items, CloseParenthesis: closer}, nil
}

// ParseRecordConstant parses "(Name: Value; ...)"; a trailing ';' before
// the closing parenthesis is allowed.
func (p *Parser) ParseRecordConstant() (*ast.RecordConstantNode, error) {
	open, err := p.expect(token.OpenParenthesis)
	if err != nil {
		return nil, err
	}
	var items []*ast.DelimitedItemNode[*ast.RecordFieldConstantNode]
	for {
		field, err := p.ParseRecordFieldConstant()
		if err != nil {
			return nil, err
		}
		d := &ast.DelimitedItemNode[*ast.RecordFieldConstantNode]{Item: field}
		items = append(items, d)
		if !p.at(token.Semicolon) {
			break
		}
		d.Delimiter = p.advance()
		if p.at(token.CloseParenthesis) {
			break
		}
	}
	closer, err := p.expect(token.CloseParenthesis)
	if err != nil {
		return nil, err
	}
	return &ast.RecordConstantNode{OpenParenthesis: open, ItemList: ast.NewList(items), CloseParenthesis: closer}, nil
}

func (p *Parser) ParseRecordFieldConstant() (*ast.RecordFieldConstantNode, error) {
	name, err := p.ParseIdent()
	if err != nil {
		return nil, err
	}
	colon, err := p.expect(token.Colon)
	if err != nil {
		return nil, err
	}
	value, err := p.ParseTypedConstant()
	if err != nil {
		return nil, err
	}
	return &ast.RecordFieldConstantNode{Name: name, Colon: colon, Value: value}, nil
}

// ParseTypeSection parses "type" followed by type declarations.
func (p *Parser) ParseTypeSection() (*ast.TypeSectionNode, error) {
	kw, err := p.expect(token.TypeKeyword)
	if err != nil {
		return nil, err
	}
	atDecl := func() bool { return p.atIdentThen(token.EqualSign) }
	list, err := repeated(atDecl, p.ParseTypeDecl)
	if err != nil {
		return nil, err
	}
	return &ast.TypeSectionNode{TypeKeyword: kw, TypeList: list}, nil
}

// ParseTypeDecl parses "Name = [type] Type [directives];" or a forward
// declaration "Name = class;".
func (p *Parser) ParseTypeDecl() (ast.Node, error) {
	name, err := p.ParseIdent()
	if err != nil {
		return nil, err
	}
	eq, err := p.expect(token.EqualSign)
	if err != nil {
		return nil, err
	}
	if p.at(token.ClassKeyword, token.InterfaceKeyword, token.DispinterfaceKeyword) && p.peek(1) == token.Semicolon {
		return &ast.TypeForwardDeclarationNode{Name: name, EqualSign: eq, Type: p.advance(), Semicolon: p.advance()}, nil
	}
	n := &ast.TypeDeclNode{Name: name, EqualSign: eq, TypeKeyword: p.optional(token.TypeKeyword)}
	if n.Type, err = p.ParseType(); err != nil {
		return nil, err
	}
	if n.PortabilityDirectiveList, err = p.ParsePortabilityDirectiveList(); err != nil {
		return nil, err
	}
	if n.Semicolon, err = p.expect(token.Semicolon); err != nil {
		return nil, err
	}
	return n, nil
}

// ParseVarSection parses var or threadvar followed by declarations.
func (p *Parser) ParseVarSection() (*ast.VarSectionNode, error) {
	kw, err := p.expect(token.VarKeyword, token.ThreadvarKeyword)
	if err != nil {
		return nil, err
	}
	atDecl := func() bool { return p.atIdentThen(token.Comma, token.Colon) }
	list, err := repeated(atDecl, p.ParseVarDecl)
	if err != nil {
		return nil, err
	}
	return &ast.VarSectionNode{VarKeyword: kw, VarList: list}, nil
}

// ParseVarDecl parses "A, B: Type [absolute Addr | = Value];".
func (p *Parser) ParseVarDecl() (*ast.VarDeclNode, error) {
	names, err := p.ParseIdentList()
	if err != nil {
		return nil, err
	}
	n := &ast.VarDeclNode{NameList: names}
	if n.Colon, err = p.expect(token.Colon); err != nil {
		return nil, err
	}
	if n.Type, err = p.ParseType(); err != nil {
		return nil, err
	}
	if n.FirstPortabilityDirectiveList, err = p.ParsePortabilityDirectiveList(); err != nil {
		return nil, err
	}
	switch {
	case p.at(token.AbsoluteSemikeyword):
		n.AbsoluteSemikeyword = p.advance()
		if n.AbsoluteAddress, err = p.ParseExpression(); err != nil {
			return nil, err
		}
	case p.at(token.EqualSign):
		n.EqualSign = p.advance()
		if n.Value, err = p.ParseTypedConstant(); err != nil {
			return nil, err
		}
	}
	if n.SecondPortabilityDirectiveList, err = p.ParsePortabilityDirectiveList(); err != nil {
		return nil, err
	}
	if n.Semicolon, err = p.expect(token.Semicolon); err != nil {
		return nil, err
	}
	return n, nil
}

func (p *Parser) ParseLabelDeclSection() (*ast.LabelDeclSectionNode, error) {
	kw, err := p.expect(token.LabelKeyword)
	if err != nil {
		return nil, err
	}
	labels, err := delimitedList(p, token.Comma, p.ParseLabelId)
	if err != nil {
		return nil, err
	}
	semi, err := p.expect(token.Semicolon)
	if err != nil {
		return nil, err
	}
	return &ast.LabelDeclSectionNode{LabelKeyword: kw, LabelList: labels, Semicolon: semi}, nil
}

func (p *Parser) ParseExportsStatement() (*ast.ExportsStatementNode, error) {
	kw, err := p.expect(token.ExportsKeyword)
	if err != nil {
		return nil, err
	}
	items, err := delimitedList(p, token.Comma, p.ParseExportsItem)
	if err != nil {
		return nil, err
	}
	semi, err := p.expect(token.Semicolon)
	if err != nil {
		return nil, err
	}
	return &ast.ExportsStatementNode{ExportsKeyword: kw, ItemList: items, Semicolon: semi}, nil
}

// ParseExportsItem parses "Name [(Params)] {name X | index Y}".
func (p *Parser) ParseExportsItem() (*ast.ExportsItemNode, error) {
	name, err := p.ParseQualifiedIdent()
	if err != nil {
		return nil, err
	}
	n := &ast.ExportsItemNode{Name: name}
	if p.at(token.OpenParenthesis) {
		n.OpenParenthesis = p.advance()
		if n.ParameterList, err = p.parseParameterListUntilClose(); err != nil {
			return nil, err
		}
		if n.CloseParenthesis, err = p.expect(token.CloseParenthesis); err != nil {
			return nil, err
		}
	}
	if n.SpecifierList, err = p.parseExportsSpecifiers(); err != nil {
		return nil, err
	}
	return n, nil
}

func (p *Parser) parseExportsSpecifiers() (*ast.ListNode[*ast.ExportsSpecifierNode], error) {
	atSpec := func() bool { return p.at(token.NameSemikeyword, token.IndexSemikeyword) }
	return repeated(atSpec, p.ParseExportsSpecifier)
}

func (p *Parser) ParseExportsSpecifier() (*ast.ExportsSpecifierNode, error) {
	kw, err := p.expect(token.NameSemikeyword, token.IndexSemikeyword)
	if err != nil {
		return nil, err
	}
	value, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.ExportsSpecifierNode{Keyword: kw, Value: value}, nil
}

// ParseAssemblyAttribute parses "[Scope: Value]" or "[Value]".
func (p *Parser) ParseAssemblyAttribute() (*ast.AttributeNode, error) {
	open, err := p.expect(token.OpenBracket)
	if err != nil {
		return nil, err
	}
	n := &ast.AttributeNode{OpenBracket: open}
	if p.atIdentThen(token.Colon) {
		n.Scope = p.advanceAs(token.Identifier)
		n.Colon = p.advance()
	}
	if n.Value, err = p.ParseExpression(); err != nil {
		return nil, err
	}
	if n.CloseBracket, err = p.expect(token.CloseBracket); err != nil {
		return nil, err
	}
	return n, nil
}

// ParseMethodImplementation parses a heading and its body. A forward or
// external heading has no body.
func (p *Parser) ParseMethodImplementation() (*ast.MethodImplementationNode, error) {
	heading, err := p.ParseMethodHeading()
	if err != nil {
		return nil, err
	}
	n := &ast.MethodImplementationNode{MethodHeading: heading}
	if hasBodylessDirective(heading) {
		return n, nil
	}
	if n.FancyBlock, err = p.ParseFancyBlock(); err != nil {
		return nil, err
	}
	if n.Semicolon, err = p.expect(token.Semicolon); err != nil {
		return nil, err
	}
	return n, nil
}

func hasBodylessDirective(h *ast.MethodHeadingNode) bool {
	for _, d := range h.DirectiveList.Items {
		switch d.Directive.Kind {
		case token.ForwardSemikeyword, token.ExternalSemikeyword:
			return true
		}
	}
	return false
}

// ParseFancyBlock parses local declarations followed by begin..end or asm.
func (p *Parser) ParseFancyBlock() (*ast.FancyBlockNode, error) {
	decls, err := repeated(p.atLocalDecl, p.parseLocalDecl)
	if err != nil {
		return nil, err
	}
	block, err := p.ParseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.FancyBlockNode{DeclList: decls, Block: block}, nil
}

func (p *Parser) atLocalDecl() bool {
	return p.at(token.LabelKeyword, token.ConstKeyword, token.ResourcestringKeyword, token.TypeKeyword,
		token.VarKeyword, token.ThreadvarKeyword, token.ClassKeyword) || p.atSet(token.MethodTypes)
}

func (p *Parser) parseLocalDecl() (ast.Node, error) {
	switch p.peek(0) {
	case token.LabelKeyword:
		return asNode(p.ParseLabelDeclSection())
	case token.ConstKeyword, token.ResourcestringKeyword:
		return asNode(p.ParseConstSection())
	case token.TypeKeyword:
		return asNode(p.ParseTypeSection())
	case token.VarKeyword, token.ThreadvarKeyword:
		return asNode(p.ParseVarSection())
	}
	return asNode(p.ParseMethodImplementation())
}

// ParseMethodHeading parses "[class] procedure Name [(Params)] [: Type]
// {directive} ;".
func (p *Parser) ParseMethodHeading() (*ast.MethodHeadingNode, error) {
	n, err := p.parseMethodHeadingStart()
	if err != nil {
		return nil, err
	}
	if err := p.finishMethodHeading(n); err != nil {
		return nil, err
	}
	return n, nil
}

func (p *Parser) parseMethodHeadingStart() (*ast.MethodHeadingNode, error) {
	n := &ast.MethodHeadingNode{Class: p.optional(token.ClassKeyword)}
	var err error
	if n.MethodType, err = p.expectSet(token.MethodTypes, "MethodType"); err != nil {
		return nil, err
	}
	if n.Name, err = p.ParseQualifiedIdent(); err != nil {
		return nil, err
	}
	return n, nil
}

func (p *Parser) finishMethodHeading(n *ast.MethodHeadingNode) error {
	var err error
	if p.at(token.OpenParenthesis) {
		n.OpenParenthesis = p.advance()
		if n.ParameterList, err = p.parseParameterListUntilClose(); err != nil {
			return err
		}
		if n.CloseParenthesis, err = p.expect(token.CloseParenthesis); err != nil {
			return err
		}
	}
	if p.at(token.Colon) {
		n.Colon = p.advance()
		if n.ReturnType, err = p.ParseMethodReturnType(); err != nil {
			return err
		}
	}
	if n.DirectiveList, err = p.ParseDirectiveList(); err != nil {
		return err
	}
	n.Semicolon, err = p.expect(token.Semicolon)
	return err
}

// parseMethodOrResolution parses a heading inside a class or interface
// body, where "procedure IFoo.Bar = Baz;" maps an interface method.
func (p *Parser) parseMethodOrResolution() (ast.Node, error) {
	n, err := p.parseMethodHeadingStart()
	if err != nil {
		return nil, err
	}
	if n.Class == nil && p.at(token.EqualSign) {
		r := &ast.MethodResolutionNode{MethodType: n.MethodType, InterfaceMethod: n.Name, EqualSign: p.advance()}
		if r.ImplementationMethod, err = p.ParseIdent(); err != nil {
			return nil, err
		}
		if r.Semicolon, err = p.expect(token.Semicolon); err != nil {
			return nil, err
		}
		return r, nil
	}
	if err := p.finishMethodHeading(n); err != nil {
		return nil, err
	}
	return n, nil
}

// ParseMethodReturnType accepts "string" or a qualified type name.
func (p *Parser) ParseMethodReturnType() (ast.Node, error) {
	if p.at(token.StringKeyword) {
		return p.advance(), nil
	}
	return p.ParseQualifiedIdent()
}

// atDirective reports a directive, with or without a leading ';'.
func (p *Parser) atDirective() bool {
	if p.at(token.Semicolon) {
		return token.Directives.Has(p.peek(1))
	}
	return p.atSet(token.Directives)
}

// ParseDirectiveList parses the directives of a heading or procedural type.
func (p *Parser) ParseDirectiveList() (*ast.ListNode[*ast.DirectiveNode], error) {
	return repeated(p.atDirective, p.ParseDirective)
}

// ParseDirective parses one directive with its optional leading ';' and
// argument: "external 'lib' name 'X'", "message WM_X", "dispid 3",
// "deprecated 'reason'".
func (p *Parser) ParseDirective() (*ast.DirectiveNode, error) {
	n := &ast.DirectiveNode{Semicolon: p.optional(token.Semicolon)}
	var err error
	if n.Directive, err = p.expectSet(token.Directives, "Directive"); err != nil {
		return nil, err
	}
	switch n.Directive.Kind {
	case token.ExternalSemikeyword:
		if !p.atEOF() && !p.at(token.Semicolon, token.NameSemikeyword, token.IndexSemikeyword) {
			if n.Value, err = p.ParseExpression(); err != nil {
				return nil, err
			}
		}
		if n.Data, err = p.parseExportsSpecifiers(); err != nil {
			return nil, err
		}
	case token.MessageSemikeyword, token.DispidSemikeyword:
		if n.Value, err = p.ParseExpression(); err != nil {
			return nil, err
		}
	case token.DeprecatedSemikeyword:
		if p.at(token.StringLiteral) {
			n.Value = p.advance()
		}
	}
	return n, nil
}

// ParseParameterList parses parameters separated by ';'.
func (p *Parser) ParseParameterList() (*ast.ListNode[*ast.DelimitedItemNode[*ast.ParameterNode]], error) {
	return delimitedList(p, token.Semicolon, p.ParseParameter)
}

func (p *Parser) parseParameterListUntilClose() (*ast.ListNode[*ast.DelimitedItemNode[*ast.ParameterNode]], error) {
	if p.at(token.CloseParenthesis, token.CloseBracket) {
		return ast.NewList[*ast.DelimitedItemNode[*ast.ParameterNode]](nil), nil
	}
	return p.ParseParameterList()
}

// ParseParameter parses "[var|const|out] A, B [: Type] [= Default]".
func (p *Parser) ParseParameter() (*ast.ParameterNode, error) {
	n := &ast.ParameterNode{Modifier: p.optionalSet(token.ParameterModifiers)}
	var err error
	if n.NameList, err = p.ParseIdentList(); err != nil {
		return nil, err
	}
	if p.at(token.Colon) {
		n.Colon = p.advance()
		if n.Type, err = p.ParseParameterType(); err != nil {
			return nil, err
		}
	}
	if p.at(token.EqualSign) {
		n.EqualSign = p.advance()
		if n.DefaultValue, err = p.ParseExpression(); err != nil {
			return nil, err
		}
	}
	return n, nil
}

// ParseParameterType accepts an open array, string, file or a type name.
func (p *Parser) ParseParameterType() (ast.Node, error) {
	switch p.peek(0) {
	case token.ArrayKeyword:
		return asNode(p.ParseOpenArray())
	case token.StringKeyword, token.FileKeyword:
		return p.advance(), nil
	}
	return p.ParseQualifiedIdent()
}

// ParseOpenArray parses "array of Type" and "array of const".
func (p *Parser) ParseOpenArray() (*ast.OpenArrayNode, error) {
	arr, err := p.expect(token.ArrayKeyword)
	if err != nil {
		return nil, err
	}
	of, err := p.expect(token.OfKeyword)
	if err != nil {
		return nil, err
	}
	var elem ast.Node
	if p.at(token.ConstKeyword) {
		elem = p.advance()
	} else if elem, err = p.ParseParameterType(); err != nil {
		return nil, err
	}
	return &ast.OpenArrayNode{Array: arr, Of: of, Type: elem}, nil
}
