package parser

import (
	"dgrok/internal/ast"
	"dgrok/internal/token"
)

// ParseClassType parses "class [abstract|sealed] [(Bases)] body end". The
// short form "class(TBase)" with no body is ended by the ';' that follows.
// Old-style "object" types share the node.
func (p *Parser) ParseClassType() (*ast.ClassTypeNode, error) {
	class, err := p.expect(token.ClassKeyword, token.ObjectKeyword)
	if err != nil {
		return nil, err
	}
	n := &ast.ClassTypeNode{Class: class, Disposition: p.optional(token.AbstractSemikeyword, token.SealedSemikeyword)}
	if p.at(token.OpenParenthesis) {
		n.OpenParenthesis = p.advance()
		if n.InheritanceList, err = p.ParseQualifiedIdentList(); err != nil {
			return nil, err
		}
		if n.CloseParenthesis, err = p.expect(token.CloseParenthesis); err != nil {
			return nil, err
		}
	}
	if p.at(token.Semicolon) {
		return n, nil
	}
	if n.ContentList, err = p.parseVisibilitySections(); err != nil {
		return nil, err
	}
	if n.End, err = p.expect(token.EndKeyword); err != nil {
		return nil, err
	}
	return n, nil
}

// ParseClassHelperType parses "class helper [(Base)] for Type body end".
func (p *Parser) ParseClassHelperType() (*ast.TypeHelperNode, error) {
	class, err := p.expect(token.ClassKeyword)
	if err != nil {
		return nil, err
	}
	return p.parseHelperRest(class)
}

// ParseRecordHelperType parses "record helper for Type body end".
func (p *Parser) ParseRecordHelperType() (*ast.TypeHelperNode, error) {
	record, err := p.expect(token.RecordKeyword)
	if err != nil {
		return nil, err
	}
	return p.parseHelperRest(record)
}

func (p *Parser) parseHelperRest(kw *ast.Token) (*ast.TypeHelperNode, error) {
	n := &ast.TypeHelperNode{TypeKeyword: kw}
	var err error
	if n.HelperSemikeyword, err = p.expect(token.HelperSemikeyword); err != nil {
		return nil, err
	}
	if p.at(token.OpenParenthesis) {
		n.OpenParenthesis = p.advance()
		if n.BaseHelperType, err = p.ParseQualifiedIdent(); err != nil {
			return nil, err
		}
		if n.CloseParenthesis, err = p.expect(token.CloseParenthesis); err != nil {
			return nil, err
		}
	}
	if n.ForKeyword, err = p.expect(token.ForKeyword); err != nil {
		return nil, err
	}
	if n.Type, err = p.ParseQualifiedIdent(); err != nil {
		return nil, err
	}
	if n.ContentList, err = p.parseVisibilitySections(); err != nil {
		return nil, err
	}
	if n.EndKeyword, err = p.expect(token.EndKeyword); err != nil {
		return nil, err
	}
	return n, nil
}

// ParseInterfaceType parses "interface [(Base)] [['{GUID}']] members end".
func (p *Parser) ParseInterfaceType() (*ast.InterfaceTypeNode, error) {
	kw, err := p.expect(token.InterfaceKeyword, token.DispinterfaceKeyword)
	if err != nil {
		return nil, err
	}
	n := &ast.InterfaceTypeNode{Interface: kw}
	if p.at(token.OpenParenthesis) {
		n.OpenParenthesis = p.advance()
		if n.BaseInterface, err = p.ParseQualifiedIdent(); err != nil {
			return nil, err
		}
		if n.CloseParenthesis, err = p.expect(token.CloseParenthesis); err != nil {
			return nil, err
		}
	}
	if p.at(token.OpenBracket) {
		n.OpenBracket = p.advance()
		if n.Guid, err = p.ParseExpression(); err != nil {
			return nil, err
		}
		if n.CloseBracket, err = p.expect(token.CloseBracket); err != nil {
			return nil, err
		}
	}
	if n.MethodAndPropertyList, err = repeated(p.atMethodOrProperty, p.ParseMethodOrProperty); err != nil {
		return nil, err
	}
	if n.End, err = p.expect(token.EndKeyword); err != nil {
		return nil, err
	}
	return n, nil
}

// ParseRecordType parses "record fields [case ...] end".
func (p *Parser) ParseRecordType() (*ast.RecordTypeNode, error) {
	record, err := p.expect(token.RecordKeyword)
	if err != nil {
		return nil, err
	}
	n := &ast.RecordTypeNode{Record: record}
	if n.ContentList, err = p.parseVisibilitySections(); err != nil {
		return nil, err
	}
	if p.at(token.CaseKeyword) {
		if n.VariantSection, err = p.ParseVariantSection(); err != nil {
			return nil, err
		}
	}
	if n.End, err = p.expect(token.EndKeyword); err != nil {
		return nil, err
	}
	return n, nil
}

// ParseVariantSection parses "case [Name:] Type of groups".
func (p *Parser) ParseVariantSection() (*ast.VariantSectionNode, error) {
	kw, err := p.expect(token.CaseKeyword)
	if err != nil {
		return nil, err
	}
	n := &ast.VariantSectionNode{Case: kw}
	if p.atIdentThen(token.Colon) {
		n.Name = p.advanceAs(token.Identifier)
		n.Colon = p.advance()
	}
	if n.Type, err = p.ParseQualifiedIdent(); err != nil {
		return nil, err
	}
	if n.Of, err = p.expect(token.OfKeyword); err != nil {
		return nil, err
	}
	atGroup := func() bool { return !p.atEOF() && !p.at(token.EndKeyword, token.CloseParenthesis) }
	if n.VariantGroupList, err = repeated(atGroup, p.ParseVariantGroup); err != nil {
		return nil, err
	}
	return n, nil
}

// ParseVariantGroup parses "values: (fields [case ...]) [;]".
func (p *Parser) ParseVariantGroup() (*ast.VariantGroupNode, error) {
	values, err := p.ParseExpressionList()
	if err != nil {
		return nil, err
	}
	n := &ast.VariantGroupNode{ValueList: values}
	if n.Colon, err = p.expect(token.Colon); err != nil {
		return nil, err
	}
	if n.OpenParenthesis, err = p.expect(token.OpenParenthesis); err != nil {
		return nil, err
	}
	atField := func() bool { return p.atIdentThen(token.Comma, token.Colon) }
	if n.FieldDeclList, err = repeated(atField, p.ParseFieldDecl); err != nil {
		return nil, err
	}
	if p.at(token.CaseKeyword) {
		if n.VariantSection, err = p.ParseVariantSection(); err != nil {
			return nil, err
		}
	}
	if n.CloseParenthesis, err = p.expect(token.CloseParenthesis); err != nil {
		return nil, err
	}
	n.Semicolon = p.optional(token.Semicolon)
	return n, nil
}

// ParseFieldDecl parses "A, B: Type [directives] [;]". The ';' may be
// omitted before end or a closing parenthesis.
func (p *Parser) ParseFieldDecl() (*ast.FieldDeclNode, error) {
	names, err := p.ParseIdentList()
	if err != nil {
		return nil, err
	}
	n := &ast.FieldDeclNode{NameList: names}
	if n.Colon, err = p.expect(token.Colon); err != nil {
		return nil, err
	}
	if n.Type, err = p.ParseType(); err != nil {
		return nil, err
	}
	if n.PortabilityDirectiveList, err = p.ParsePortabilityDirectiveList(); err != nil {
		return nil, err
	}
	n.Semicolon = p.optional(token.Semicolon)
	return n, nil
}

// ParseFieldSection parses "[class] var fields".
func (p *Parser) ParseFieldSection() (*ast.FieldSectionNode, error) {
	n := &ast.FieldSectionNode{Class: p.optional(token.ClassKeyword)}
	var err error
	if n.Var, err = p.expect(token.VarKeyword); err != nil {
		return nil, err
	}
	atField := func() bool { return p.atIdentThen(token.Comma, token.Colon) }
	if n.FieldList, err = repeated(atField, p.ParseFieldDecl); err != nil {
		return nil, err
	}
	return n, nil
}

// atVisibility reports the start of a visibility header; "strict" counts
// only before private or protected.
func (p *Parser) atVisibility() bool {
	if p.at(token.StrictSemikeyword) {
		return p.peek(1) == token.PrivateSemikeyword || p.peek(1) == token.ProtectedSemikeyword
	}
	return p.atSet(token.Visibilities)
}

// ParseVisibility parses "[strict] private" and friends.
func (p *Parser) ParseVisibility() (*ast.VisibilityNode, error) {
	n := &ast.VisibilityNode{Strict: p.optional(token.StrictSemikeyword)}
	var err error
	if n.Visibility, err = p.expect(token.PrivateSemikeyword, token.ProtectedSemikeyword,
		token.PublicSemikeyword, token.PublishedSemikeyword, token.AutomatedSemikeyword); err != nil {
		return nil, err
	}
	return n, nil
}

// parseVisibilitySections parses a class, record or helper body. Members
// before the first visibility header form a section with no visibility.
func (p *Parser) parseVisibilitySections() (*ast.ListNode[*ast.VisibilitySectionNode], error) {
	var sections []*ast.VisibilitySectionNode
	if p.atVisibilitySectionContent() {
		s, err := p.parseVisibilitySectionBody(nil)
		if err != nil {
			return nil, err
		}
		sections = append(sections, s)
	}
	for p.atVisibility() {
		s, err := p.ParseVisibilitySection()
		if err != nil {
			return nil, err
		}
		sections = append(sections, s)
	}
	return ast.NewList(sections), nil
}

// ParseVisibilitySection parses a visibility header and its members.
func (p *Parser) ParseVisibilitySection() (*ast.VisibilitySectionNode, error) {
	vis, err := p.ParseVisibility()
	if err != nil {
		return nil, err
	}
	return p.parseVisibilitySectionBody(vis)
}

func (p *Parser) parseVisibilitySectionBody(vis *ast.VisibilityNode) (*ast.VisibilitySectionNode, error) {
	contents, err := repeated(p.atVisibilitySectionContent, p.ParseVisibilitySectionContent)
	if err != nil {
		return nil, err
	}
	return &ast.VisibilitySectionNode{Visibility: vis, ContentList: contents}, nil
}

func (p *Parser) atVisibilitySectionContent() bool {
	if p.atVisibility() {
		return false
	}
	switch p.peek(0) {
	case token.ConstKeyword, token.ResourcestringKeyword, token.TypeKeyword, token.VarKeyword,
		token.ClassKeyword, token.OpenBracket:
		return true
	}
	return p.atMethodOrProperty() || p.atIdentThen(token.Comma, token.Colon)
}

// ParseVisibilitySectionContent parses one member: a nested section, a
// field, a method or a property.
func (p *Parser) ParseVisibilitySectionContent() (ast.Node, error) {
	switch p.peek(0) {
	case token.ConstKeyword, token.ResourcestringKeyword:
		return asNode(p.ParseConstSection())
	case token.TypeKeyword:
		return asNode(p.ParseTypeSection())
	case token.VarKeyword:
		return asNode(p.ParseFieldSection())
	case token.OpenBracket:
		return asNode(p.ParseAssemblyAttribute())
	case token.ClassKeyword:
		if p.peek(1) == token.VarKeyword {
			return asNode(p.ParseFieldSection())
		}
	}
	if p.atMethodOrProperty() {
		return p.ParseMethodOrProperty()
	}
	return asNode(p.ParseFieldDecl())
}

func (p *Parser) atMethodOrProperty() bool {
	if p.at(token.ClassKeyword) {
		k := p.peek(1)
		return k == token.PropertyKeyword || token.MethodTypes.Has(k)
	}
	return p.at(token.PropertyKeyword) || p.atSet(token.MethodTypes)
}

// ParseMethodOrProperty parses a method heading, a method resolution or a
// property declaration.
func (p *Parser) ParseMethodOrProperty() (ast.Node, error) {
	if p.at(token.PropertyKeyword) || (p.at(token.ClassKeyword) && p.peek(1) == token.PropertyKeyword) {
		return asNode(p.ParseProperty())
	}
	return p.parseMethodOrResolution()
}

// ParseProperty parses a property with its specifiers. "; default" after an
// array property and readonly, writeonly, dispid land in DirectiveList.
func (p *Parser) ParseProperty() (*ast.PropertyNode, error) {
	n := &ast.PropertyNode{Class: p.optional(token.ClassKeyword)}
	var err error
	if n.Property, err = p.expect(token.PropertyKeyword); err != nil {
		return nil, err
	}
	if n.Name, err = p.ParseIdent(); err != nil {
		return nil, err
	}
	if p.at(token.OpenBracket) {
		n.OpenBracket = p.advance()
		if n.ParameterList, err = p.parseParameterListUntilClose(); err != nil {
			return nil, err
		}
		if n.CloseBracket, err = p.expect(token.CloseBracket); err != nil {
			return nil, err
		}
	}
	if p.at(token.Colon) {
		n.Colon = p.advance()
		if n.Type, err = p.ParseMethodReturnType(); err != nil {
			return nil, err
		}
	}
	specifiers := []struct {
		kind  token.Kind
		kw    **ast.Token
		value *ast.Node
	}{
		{token.IndexSemikeyword, &n.Index, &n.IndexValue},
		{token.ReadSemikeyword, &n.Read, &n.ReadSpecifier},
		{token.WriteSemikeyword, &n.Write, &n.WriteSpecifier},
		{token.StoredSemikeyword, &n.Stored, &n.StoredSpecifier},
	}
	for _, s := range specifiers {
		if !p.at(s.kind) {
			continue
		}
		*s.kw = p.advance()
		if *s.value, err = p.ParseExpression(); err != nil {
			return nil, err
		}
	}
	switch p.peek(0) {
	case token.DefaultSemikeyword:
		n.Default = p.advance()
		if n.DefaultValue, err = p.ParseExpression(); err != nil {
			return nil, err
		}
	case token.NodefaultSemikeyword:
		n.Default = p.advance()
	}
	if p.at(token.ImplementsSemikeyword) {
		n.Implements = p.advance()
		if n.ImplementsSpecifier, err = p.ParseQualifiedIdentList(); err != nil {
			return nil, err
		}
	}
	if n.DirectiveList, err = repeated(p.atPropertyDirective, p.parsePropertyDirective); err != nil {
		return nil, err
	}
	if n.Semicolon, err = p.expect(token.Semicolon); err != nil {
		return nil, err
	}
	return n, nil
}

func (p *Parser) atPropertyDirective() bool {
	if p.at(token.Semicolon) {
		return p.peek(1) == token.DefaultSemikeyword && p.peek(2) == token.Semicolon
	}
	return p.at(token.ReadonlySemikeyword, token.WriteonlySemikeyword, token.DispidSemikeyword)
}

func (p *Parser) parsePropertyDirective() (*ast.DirectiveNode, error) {
	n := &ast.DirectiveNode{Semicolon: p.optional(token.Semicolon)}
	var err error
	if n.Directive, err = p.expect(token.DefaultSemikeyword, token.ReadonlySemikeyword,
		token.WriteonlySemikeyword, token.DispidSemikeyword); err != nil {
		return nil, err
	}
	if n.Directive.Kind == token.DispidSemikeyword {
		if n.Value, err = p.ParseExpression(); err != nil {
			return nil, err
		}
	}
	return n, nil
}
