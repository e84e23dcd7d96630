package parser

import (
	"dgrok/internal/ast"
	"dgrok/internal/token"
)

// ParseGoal parses a whole file: a unit, program, library or package.
func (p *Parser) ParseGoal() (ast.Node, error) {
	switch p.peek(0) {
	case token.UnitKeyword:
		return asNode(p.ParseUnit())
	case token.ProgramKeyword:
		return asNode(p.ParseProgram())
	case token.LibraryKeyword:
		return asNode(p.ParseLibrary())
	case token.PackageSemikeyword:
		return asNode(p.ParsePackage())
	}
	return nil, p.fail("Goal")
}

// ParseUnit parses "unit Name; interface ... implementation ... end.".
func (p *Parser) ParseUnit() (*ast.UnitNode, error) {
	kw, err := p.expect(token.UnitKeyword)
	if err != nil {
		return nil, err
	}
	n := &ast.UnitNode{Unit: kw}
	if n.UnitName, err = p.ParseQualifiedIdent(); err != nil {
		return nil, err
	}
	if n.PortabilityDirectives, err = p.ParsePortabilityDirectiveList(); err != nil {
		return nil, err
	}
	if n.Semicolon, err = p.expect(token.Semicolon); err != nil {
		return nil, err
	}
	if n.InterfaceSection, err = p.ParseInterfaceSection(); err != nil {
		return nil, err
	}
	if n.ImplementationSection, err = p.ParseImplementationSection(); err != nil {
		return nil, err
	}
	if n.InitSection, err = p.ParseInitSection(); err != nil {
		return nil, err
	}
	if n.Dot, err = p.expect(token.Dot); err != nil {
		return nil, err
	}
	return n, nil
}

// ParseProgram parses "program Name [(noise)]; [uses] decls block.".
func (p *Parser) ParseProgram() (*ast.ProgramNode, error) {
	kw, err := p.expect(token.ProgramKeyword)
	if err != nil {
		return nil, err
	}
	n := &ast.ProgramNode{Program: kw}
	if n.Name, err = p.ParseQualifiedIdent(); err != nil {
		return nil, err
	}
	if p.at(token.OpenParenthesis) {
		n.NoiseOpenParenthesis = p.advance()
		if n.NoiseContentList, err = p.ParseIdentList(); err != nil {
			return nil, err
		}
		if n.NoiseCloseParenthesis, err = p.expect(token.CloseParenthesis); err != nil {
			return nil, err
		}
	}
	if n.Semicolon, err = p.expect(token.Semicolon); err != nil {
		return nil, err
	}
	if p.at(token.UsesKeyword) {
		if n.UsesClause, err = p.ParseUsesClause(); err != nil {
			return nil, err
		}
	}
	if n.DeclarationList, err = repeated(p.atImplementationDecl, p.ParseImplementationDecl); err != nil {
		return nil, err
	}
	if n.InitSection, err = p.ParseInitSection(); err != nil {
		return nil, err
	}
	if n.Dot, err = p.expect(token.Dot); err != nil {
		return nil, err
	}
	return n, nil
}

// ParseLibrary parses "library Name; [uses] decls block.".
func (p *Parser) ParseLibrary() (*ast.LibraryNode, error) {
	kw, err := p.expect(token.LibraryKeyword)
	if err != nil {
		return nil, err
	}
	n := &ast.LibraryNode{Library: kw}
	if n.Name, err = p.ParseQualifiedIdent(); err != nil {
		return nil, err
	}
	if n.PortabilityDirectives, err = p.ParsePortabilityDirectiveList(); err != nil {
		return nil, err
	}
	if n.Semicolon, err = p.expect(token.Semicolon); err != nil {
		return nil, err
	}
	if p.at(token.UsesKeyword) {
		if n.UsesClause, err = p.ParseUsesClause(); err != nil {
			return nil, err
		}
	}
	if n.DeclarationList, err = repeated(p.atImplementationDecl, p.ParseImplementationDecl); err != nil {
		return nil, err
	}
	if n.InitSection, err = p.ParseInitSection(); err != nil {
		return nil, err
	}
	if n.Dot, err = p.expect(token.Dot); err != nil {
		return nil, err
	}
	return n, nil
}

// ParsePackage parses "package Name; [requires] [contains] end.".
func (p *Parser) ParsePackage() (*ast.PackageNode, error) {
	kw, err := p.expect(token.PackageSemikeyword)
	if err != nil {
		return nil, err
	}
	n := &ast.PackageNode{Package: kw}
	if n.Name, err = p.ParseQualifiedIdent(); err != nil {
		return nil, err
	}
	if n.Semicolon, err = p.expect(token.Semicolon); err != nil {
		return nil, err
	}
	if p.at(token.RequiresSemikeyword) {
		if n.RequiresClause, err = p.ParseRequiresClause(); err != nil {
			return nil, err
		}
	}
	if p.at(token.ContainsSemikeyword) {
		if n.ContainsClause, err = p.ParseContainsClause(); err != nil {
			return nil, err
		}
	}
	if n.End, err = p.expect(token.EndKeyword); err != nil {
		return nil, err
	}
	if n.Dot, err = p.expect(token.Dot); err != nil {
		return nil, err
	}
	return n, nil
}

func (p *Parser) ParseRequiresClause() (*ast.RequiresClauseNode, error) {
	kw, err := p.expect(token.RequiresSemikeyword)
	if err != nil {
		return nil, err
	}
	list, err := p.ParseQualifiedIdentList()
	if err != nil {
		return nil, err
	}
	semi, err := p.expect(token.Semicolon)
	if err != nil {
		return nil, err
	}
	return &ast.RequiresClauseNode{Requires: kw, PackageList: list, Semicolon: semi}, nil
}

// ParseContainsClause parses "contains A in 'a.pas', B;".
func (p *Parser) ParseContainsClause() (*ast.UsesClauseNode, error) {
	return p.parseUnitListClause(token.ContainsSemikeyword)
}

// ParseUsesClause parses "uses A, B in 'b.pas';".
func (p *Parser) ParseUsesClause() (*ast.UsesClauseNode, error) {
	return p.parseUnitListClause(token.UsesKeyword)
}

func (p *Parser) parseUnitListClause(head token.Kind) (*ast.UsesClauseNode, error) {
	kw, err := p.expect(head)
	if err != nil {
		return nil, err
	}
	units, err := delimitedList(p, token.Comma, p.ParseUsedUnit)
	if err != nil {
		return nil, err
	}
	semi, err := p.expect(token.Semicolon)
	if err != nil {
		return nil, err
	}
	return &ast.UsesClauseNode{Uses: kw, UnitList: units, Semicolon: semi}, nil
}

// ParseUsedUnit parses "Name [in 'file']".
func (p *Parser) ParseUsedUnit() (*ast.UsedUnitNode, error) {
	name, err := p.ParseQualifiedIdent()
	if err != nil {
		return nil, err
	}
	n := &ast.UsedUnitNode{Name: name}
	if p.at(token.InKeyword) {
		n.In = p.advance()
		if n.FileName, err = p.expect(token.StringLiteral); err != nil {
			return nil, err
		}
	}
	return n, nil
}

// ParseInterfaceSection parses "interface [uses] decls".
func (p *Parser) ParseInterfaceSection() (*ast.UnitSectionNode, error) {
	return p.parseUnitSection(token.InterfaceKeyword, p.atInterfaceDecl, p.ParseInterfaceDecl)
}

// ParseImplementationSection parses "implementation [uses] decls".
func (p *Parser) ParseImplementationSection() (*ast.UnitSectionNode, error) {
	return p.parseUnitSection(token.ImplementationKeyword, p.atImplementationDecl, p.ParseImplementationDecl)
}

func (p *Parser) parseUnitSection(head token.Kind, atDecl func() bool, decl func() (ast.Node, error)) (*ast.UnitSectionNode, error) {
	kw, err := p.expect(head)
	if err != nil {
		return nil, err
	}
	n := &ast.UnitSectionNode{HeaderKeyword: kw}
	if p.at(token.UsesKeyword) {
		if n.UsesClause, err = p.ParseUsesClause(); err != nil {
			return nil, err
		}
	}
	if n.Contents, err = repeated(atDecl, decl); err != nil {
		return nil, err
	}
	return n, nil
}

func (p *Parser) atInterfaceDecl() bool {
	return p.at(token.ConstKeyword, token.ResourcestringKeyword, token.TypeKeyword, token.VarKeyword,
		token.ThreadvarKeyword, token.ProcedureKeyword, token.FunctionKeyword, token.ExportsKeyword,
		token.OpenBracket)
}

// ParseInterfaceDecl parses one declaration of an interface section;
// routines there are headings only.
func (p *Parser) ParseInterfaceDecl() (ast.Node, error) {
	switch p.peek(0) {
	case token.ConstKeyword, token.ResourcestringKeyword:
		return asNode(p.ParseConstSection())
	case token.TypeKeyword:
		return asNode(p.ParseTypeSection())
	case token.VarKeyword, token.ThreadvarKeyword:
		return asNode(p.ParseVarSection())
	case token.ProcedureKeyword, token.FunctionKeyword:
		return asNode(p.ParseMethodHeading())
	case token.ExportsKeyword:
		return asNode(p.ParseExportsStatement())
	case token.OpenBracket:
		return asNode(p.ParseAssemblyAttribute())
	}
	return nil, p.fail("InterfaceDecl")
}

func (p *Parser) atImplementationDecl() bool {
	return p.atLocalDecl() || p.at(token.ExportsKeyword, token.OpenBracket)
}

// ParseImplementationDecl parses one declaration of an implementation
// section, program or library.
func (p *Parser) ParseImplementationDecl() (ast.Node, error) {
	switch p.peek(0) {
	case token.ExportsKeyword:
		return asNode(p.ParseExportsStatement())
	case token.OpenBracket:
		return asNode(p.ParseAssemblyAttribute())
	}
	if !p.atLocalDecl() {
		return nil, p.fail("ImplementationDecl")
	}
	return p.parseLocalDecl()
}

// ParseInitSection parses the tail of a file: "end", "begin ... end" or
// "initialization ... [finalization ...] end".
func (p *Parser) ParseInitSection() (*ast.InitSectionNode, error) {
	n := &ast.InitSectionNode{}
	var err error
	switch p.peek(0) {
	case token.EndKeyword:
	case token.BeginKeyword:
		n.InitializationHeader = p.advance()
		if n.InitializationStatements, err = p.ParseStatementList(); err != nil {
			return nil, err
		}
	case token.InitializationKeyword:
		n.InitializationHeader = p.advance()
		if n.InitializationStatements, err = p.ParseStatementList(); err != nil {
			return nil, err
		}
		if p.at(token.FinalizationKeyword) {
			n.FinalizationHeader = p.advance()
			if n.FinalizationStatements, err = p.ParseStatementList(); err != nil {
				return nil, err
			}
		}
	default:
		return nil, p.fail("InitSection")
	}
	if n.End, err = p.expect(token.EndKeyword); err != nil {
		return nil, err
	}
	return n, nil
}
