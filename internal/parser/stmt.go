package parser

import (
	"dgrok/internal/ast"
	"dgrok/internal/token"
)

type statementList = ast.ListNode[*ast.DelimitedItemNode[ast.Node]]

// statementListEnd also stops the initialization part of a unit.
var statementListEnd = token.StatementTerminators.Union(token.NewSet(token.FinalizationKeyword))

// atStatementEnd reports a token that cannot start a statement: a list
// terminator, a semicolon or end of input.
func (p *Parser) atStatementEnd() bool {
	return p.atEOF() || p.at(token.Semicolon) || p.atSet(statementListEnd)
}

// ParseStatementList parses statements separated by ';'. Empty statements
// are kept as items without a statement; the list stops at end, until,
// finally, except, else or finalization.
func (p *Parser) ParseStatementList() (*statementList, error) {
	var items []*ast.DelimitedItemNode[ast.Node]
	for !p.atEOF() && !p.atSet(statementListEnd) {
		d := &ast.DelimitedItemNode[ast.Node]{}
		if !p.at(token.Semicolon) {
			stmt, err := p.ParseStatement()
			if err != nil {
				return nil, err
			}
			d.Item = stmt
		}
		items = append(items, d)
		if !p.at(token.Semicolon) {
			break
		}
		d.Delimiter = p.advance()
	}
	return ast.NewList(items), nil
}

// optionalStatement parses a statement unless the next token cannot start
// one, as in "if X then else Y".
func (p *Parser) optionalStatement() (ast.Node, error) {
	if p.atStatementEnd() {
		return nil, nil
	}
	return p.ParseStatement()
}

// ParseStatement parses a statement with an optional label.
func (p *Parser) ParseStatement() (ast.Node, error) {
	if (p.atIdent() || p.at(token.Number)) && p.peek(1) == token.Colon {
		label, err := p.ParseLabelId()
		if err != nil {
			return nil, err
		}
		colon := p.advance()
		stmt, err := p.optionalStatement()
		if err != nil {
			return nil, err
		}
		return &ast.LabeledStatementNode{LabelId: label, Colon: colon, Statement: stmt}, nil
	}
	return p.ParseSimpleStatement()
}

// ParseSimpleStatement parses an unlabeled statement.
func (p *Parser) ParseSimpleStatement() (ast.Node, error) {
	switch p.peek(0) {
	case token.BeginKeyword, token.AsmKeyword:
		return p.ParseBlock()
	case token.IfKeyword:
		return asNode(p.ParseIfStatement())
	case token.CaseKeyword:
		return asNode(p.ParseCaseStatement())
	case token.RepeatKeyword:
		return asNode(p.ParseRepeatStatement())
	case token.WhileKeyword:
		return asNode(p.ParseWhileStatement())
	case token.ForKeyword:
		return p.ParseForStatement()
	case token.WithKeyword:
		return asNode(p.ParseWithStatement())
	case token.TryKeyword:
		return p.ParseTryStatement()
	case token.RaiseKeyword:
		return asNode(p.ParseRaiseStatement())
	case token.GotoKeyword:
		return asNode(p.ParseGotoStatement())
	}
	return p.ParseExpressionOrAssignment()
}

// ParseExpressionOrAssignment parses an expression statement or "X := Y".
func (p *Parser) ParseExpressionOrAssignment() (ast.Node, error) {
	left, err := p.ParseExpression()
	if err != nil || !p.at(token.ColonEquals) {
		return left, err
	}
	op := p.advance()
	right, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.BinaryOperationNode{Left: left, Operator: op, Right: right}, nil
}

// ParseBlock parses begin..end or an asm block.
func (p *Parser) ParseBlock() (ast.Node, error) {
	if p.at(token.AsmKeyword) {
		return asNode(p.ParseAssemblerStatement())
	}
	begin, err := p.expect(token.BeginKeyword)
	if err != nil {
		return nil, err
	}
	stmts, err := p.ParseStatementList()
	if err != nil {
		return nil, err
	}
	end, err := p.expect(token.EndKeyword)
	if err != nil {
		return nil, err
	}
	return &ast.BlockNode{BeginKeyword: begin, StatementList: stmts, EndKeyword: end}, nil
}

// ParseAssemblerStatement skips the body of an asm block; only its
// delimiters are kept.
func (p *Parser) ParseAssemblerStatement() (*ast.AssemblerStatementNode, error) {
	asm, err := p.expect(token.AsmKeyword)
	if err != nil {
		return nil, err
	}
	for !p.atEOF() && !p.at(token.EndKeyword) {
		p.advance()
	}
	end, err := p.expect(token.EndKeyword)
	if err != nil {
		return nil, err
	}
	return &ast.AssemblerStatementNode{AsmKeyword: asm, EndKeyword: end}, nil
}

func (p *Parser) ParseIfStatement() (*ast.IfStatementNode, error) {
	kw, err := p.expect(token.IfKeyword)
	if err != nil {
		return nil, err
	}
	n := &ast.IfStatementNode{If: kw}
	if n.Condition, err = p.ParseExpression(); err != nil {
		return nil, err
	}
	if n.Then, err = p.expect(token.ThenKeyword); err != nil {
		return nil, err
	}
	if n.ThenStatement, err = p.optionalStatement(); err != nil {
		return nil, err
	}
	if p.at(token.ElseKeyword) {
		n.Else = p.advance()
		if n.ElseStatement, err = p.optionalStatement(); err != nil {
			return nil, err
		}
	}
	return n, nil
}

func (p *Parser) ParseCaseStatement() (*ast.CaseStatementNode, error) {
	kw, err := p.expect(token.CaseKeyword)
	if err != nil {
		return nil, err
	}
	n := &ast.CaseStatementNode{Case: kw}
	if n.Expression, err = p.ParseExpression(); err != nil {
		return nil, err
	}
	if n.Of, err = p.expect(token.OfKeyword); err != nil {
		return nil, err
	}
	notEnd := func() bool { return !p.atEOF() && !p.at(token.ElseKeyword, token.EndKeyword) }
	if n.SelectorList, err = repeated(notEnd, p.ParseCaseSelector); err != nil {
		return nil, err
	}
	if p.at(token.ElseKeyword) {
		n.Else = p.advance()
		if n.ElseStatements, err = p.ParseStatementList(); err != nil {
			return nil, err
		}
	}
	if n.End, err = p.expect(token.EndKeyword); err != nil {
		return nil, err
	}
	return n, nil
}

// ParseCaseSelector parses "values: statement [;]".
func (p *Parser) ParseCaseSelector() (*ast.CaseSelectorNode, error) {
	values, err := p.ParseExpressionOrRangeList()
	if err != nil {
		return nil, err
	}
	n := &ast.CaseSelectorNode{ValueList: values}
	if n.Colon, err = p.expect(token.Colon); err != nil {
		return nil, err
	}
	if n.Statement, err = p.optionalStatement(); err != nil {
		return nil, err
	}
	n.Semicolon = p.optional(token.Semicolon)
	if n.Semicolon == nil && !p.at(token.ElseKeyword, token.EndKeyword) {
		return nil, p.fail("Semicolon")
	}
	return n, nil
}

func (p *Parser) ParseRepeatStatement() (*ast.RepeatStatementNode, error) {
	kw, err := p.expect(token.RepeatKeyword)
	if err != nil {
		return nil, err
	}
	n := &ast.RepeatStatementNode{Repeat: kw}
	if n.StatementList, err = p.ParseStatementList(); err != nil {
		return nil, err
	}
	if n.Until, err = p.expect(token.UntilKeyword); err != nil {
		return nil, err
	}
	if n.Condition, err = p.ParseExpression(); err != nil {
		return nil, err
	}
	return n, nil
}

func (p *Parser) ParseWhileStatement() (*ast.WhileStatementNode, error) {
	kw, err := p.expect(token.WhileKeyword)
	if err != nil {
		return nil, err
	}
	n := &ast.WhileStatementNode{While: kw}
	if n.Condition, err = p.ParseExpression(); err != nil {
		return nil, err
	}
	if n.Do, err = p.expect(token.DoKeyword); err != nil {
		return nil, err
	}
	if n.Statement, err = p.optionalStatement(); err != nil {
		return nil, err
	}
	return n, nil
}

// ParseForStatement parses both the counting and the for..in form.
func (p *Parser) ParseForStatement() (ast.Node, error) {
	forKw, err := p.expect(token.ForKeyword)
	if err != nil {
		return nil, err
	}
	loopVar, err := p.ParseIdent()
	if err != nil {
		return nil, err
	}
	if p.at(token.InKeyword) {
		n := &ast.ForInStatementNode{For: forKw, LoopVariable: loopVar, In: p.advance()}
		if n.Expression, err = p.ParseExpression(); err != nil {
			return nil, err
		}
		if n.Do, err = p.expect(token.DoKeyword); err != nil {
			return nil, err
		}
		if n.Statement, err = p.optionalStatement(); err != nil {
			return nil, err
		}
		return n, nil
	}
	n := &ast.ForStatementNode{For: forKw, LoopVariable: loopVar}
	if n.ColonEquals, err = p.expect(token.ColonEquals); err != nil {
		return nil, err
	}
	if n.StartingValue, err = p.ParseExpression(); err != nil {
		return nil, err
	}
	if n.Direction, err = p.expect(token.ToKeyword, token.DowntoKeyword); err != nil {
		return nil, err
	}
	if n.EndingValue, err = p.ParseExpression(); err != nil {
		return nil, err
	}
	if n.Do, err = p.expect(token.DoKeyword); err != nil {
		return nil, err
	}
	if n.Statement, err = p.optionalStatement(); err != nil {
		return nil, err
	}
	return n, nil
}

func (p *Parser) ParseWithStatement() (*ast.WithStatementNode, error) {
	kw, err := p.expect(token.WithKeyword)
	if err != nil {
		return nil, err
	}
	n := &ast.WithStatementNode{With: kw}
	if n.ExpressionList, err = p.ParseExpressionList(); err != nil {
		return nil, err
	}
	if n.Do, err = p.expect(token.DoKeyword); err != nil {
		return nil, err
	}
	if n.Statement, err = p.optionalStatement(); err != nil {
		return nil, err
	}
	return n, nil
}

// ParseTryStatement parses try..finally and try..except. An except part
// either holds "on" handlers (with an optional else) or plain statements.
func (p *Parser) ParseTryStatement() (ast.Node, error) {
	try, err := p.expect(token.TryKeyword)
	if err != nil {
		return nil, err
	}
	body, err := p.ParseStatementList()
	if err != nil {
		return nil, err
	}
	if p.at(token.FinallyKeyword) {
		n := &ast.TryFinallyNode{Try: try, TryStatements: body, Finally: p.advance()}
		if n.FinallyStatements, err = p.ParseStatementList(); err != nil {
			return nil, err
		}
		if n.End, err = p.expect(token.EndKeyword); err != nil {
			return nil, err
		}
		return n, nil
	}
	except, err := p.expect(token.FinallyKeyword, token.ExceptKeyword)
	if err != nil {
		return nil, err
	}
	n := &ast.TryExceptNode{Try: try, TryStatements: body, Except: except}
	if p.at(token.OnSemikeyword) {
		atOn := func() bool { return p.at(token.OnSemikeyword) }
		if n.ExceptionItemList, err = repeated(atOn, p.ParseExceptionItem); err != nil {
			return nil, err
		}
		if p.at(token.ElseKeyword) {
			n.Else = p.advance()
			if n.ElseStatements, err = p.ParseStatementList(); err != nil {
				return nil, err
			}
		}
	} else {
		n.ExceptionItemList = ast.NewList[*ast.ExceptionItemNode](nil)
		if n.ExceptStatements, err = p.ParseStatementList(); err != nil {
			return nil, err
		}
	}
	if n.End, err = p.expect(token.EndKeyword); err != nil {
		return nil, err
	}
	return n, nil
}

// ParseExceptionItem parses "on [Name:] Type do Statement [;]".
func (p *Parser) ParseExceptionItem() (*ast.ExceptionItemNode, error) {
	on, err := p.expect(token.OnSemikeyword)
	if err != nil {
		return nil, err
	}
	n := &ast.ExceptionItemNode{On: on}
	if p.atIdentThen(token.Colon) {
		n.Name = p.advanceAs(token.Identifier)
		n.Colon = p.advance()
	}
	if n.Type, err = p.ParseQualifiedIdent(); err != nil {
		return nil, err
	}
	if n.Do, err = p.expect(token.DoKeyword); err != nil {
		return nil, err
	}
	if n.Statement, err = p.optionalStatement(); err != nil {
		return nil, err
	}
	n.Semicolon = p.optional(token.Semicolon)
	return n, nil
}

// ParseRaiseStatement parses "raise [Exception] [at Address]".
func (p *Parser) ParseRaiseStatement() (*ast.RaiseStatementNode, error) {
	kw, err := p.expect(token.RaiseKeyword)
	if err != nil {
		return nil, err
	}
	n := &ast.RaiseStatementNode{Raise: kw}
	if !p.atStatementEnd() && !p.at(token.AtSemikeyword) {
		if n.Exception, err = p.ParseExpression(); err != nil {
			return nil, err
		}
	}
	if p.at(token.AtSemikeyword) {
		n.At = p.advance()
		if n.Address, err = p.ParseExpression(); err != nil {
			return nil, err
		}
	}
	return n, nil
}

func (p *Parser) ParseGotoStatement() (*ast.GotoStatementNode, error) {
	kw, err := p.expect(token.GotoKeyword)
	if err != nil {
		return nil, err
	}
	n := &ast.GotoStatementNode{Goto: kw}
	if n.LabelId, err = p.ParseLabelId(); err != nil {
		return nil, err
	}
	return n, nil
}
