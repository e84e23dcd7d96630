// Package parser is a recursive-descent parser for Delphi source.
//
// The parser pulls tokens lazily from a TokenSource (normally the
// conditional filter) into a buffer, so rules can look ahead a few tokens
// and, where the grammar is ambiguous, rewind to a mark and try another
// alternative. There is no error recovery: the first error aborts the parse.
// When the token source itself fails (a lex, directive or include error),
// that failure is kept and reported in place of any syntax error raised at
// the point where the stream stopped.
package parser

import (
	"strings"

	"dgrok/internal/ast"
	"dgrok/internal/diag"
	"dgrok/internal/lexer"
	"dgrok/internal/preproc"
	"dgrok/internal/source"
	"dgrok/internal/token"
)

// TokenSource yields parser-visible tokens; nil means end of input.
type TokenSource interface {
	Next() (*token.Token, error)
}

// Parser хранит состояние разбора одного файла
type Parser struct {
	src    TokenSource
	file   *source.File // для позиции "end of input", может быть nil
	toks   []token.Token
	pos    int
	done   bool  // источник исчерпан или упал
	srcErr error // первая ошибка источника
}

// New creates a parser over src.
func New(src TokenSource) *Parser {
	p := &Parser{src: src}
	if f, ok := src.(interface{ File() *source.File }); ok {
		p.file = f.File()
	}
	return p
}

// FromText builds the scanner and filter for text and returns a parser
// over them. defines is used as given and is mutated by $DEFINE / $UNDEF;
// pass a clone when the table is shared. loader may be nil.
func FromText(text, fileName string, defines *preproc.Defines, loader preproc.IncludeLoader) *Parser {
	sc := lexer.FromText(fileName, text)
	return New(preproc.NewFilter(sc, defines, loader))
}

// fill makes sure the token at pos+n is buffered. It reports false when the
// stream ends (or fails) first.
func (p *Parser) fill(n int) bool {
	for len(p.toks) <= p.pos+n {
		if p.done {
			return false
		}
		tok, err := p.src.Next()
		if err != nil {
			p.srcErr = err
			p.done = true
			return false
		}
		if tok == nil {
			p.done = true
			return false
		}
		p.toks = append(p.toks, *tok)
	}
	return true
}

// peek returns the kind of the token n positions ahead; Invalid at end.
func (p *Parser) peek(n int) token.Kind {
	if !p.fill(n) {
		return token.Invalid
	}
	return p.toks[p.pos+n].Kind
}

func (p *Parser) at(kinds ...token.Kind) bool {
	k := p.peek(0)
	for _, want := range kinds {
		if k == want {
			return true
		}
	}
	return false
}

func (p *Parser) atSet(s token.Set) bool {
	return p.fill(0) && s.Has(p.toks[p.pos].Kind)
}

func (p *Parser) atIdent() bool {
	return p.fill(0) && token.IsIdent(p.toks[p.pos].Kind)
}

// atEOF reports whether every token has been consumed.
func (p *Parser) atEOF() bool { return !p.fill(0) }

// atIdentThen reports an identifier followed by one of kinds.
func (p *Parser) atIdentThen(kinds ...token.Kind) bool {
	if !p.atIdent() {
		return false
	}
	next := p.peek(1)
	for _, k := range kinds {
		if next == k {
			return true
		}
	}
	return false
}

func (p *Parser) mark() int { return p.pos }

func (p *Parser) reset(m int) { p.pos = m }

// advance consumes the current token; the caller has checked it exists.
func (p *Parser) advance() *ast.Token {
	t := p.toks[p.pos]
	p.pos++
	return ast.NewToken(t)
}

// advanceAs consumes the current token reclassified as k.
func (p *Parser) advanceAs(k token.Kind) *ast.Token {
	t := p.toks[p.pos]
	p.pos++
	return ast.NewToken(t.WithKind(k))
}

// optional consumes the current token if it is one of kinds.
func (p *Parser) optional(kinds ...token.Kind) *ast.Token {
	if p.at(kinds...) {
		return p.advance()
	}
	return nil
}

func (p *Parser) optionalSet(s token.Set) *ast.Token {
	if p.atSet(s) {
		return p.advance()
	}
	return nil
}

// expect consumes a token of one of kinds or fails naming them.
func (p *Parser) expect(kinds ...token.Kind) (*ast.Token, error) {
	if p.at(kinds...) {
		return p.advance(), nil
	}
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return nil, p.fail(strings.Join(names, " or "))
}

func (p *Parser) expectSet(s token.Set, what string) (*ast.Token, error) {
	if p.atSet(s) {
		return p.advance(), nil
	}
	return nil, p.fail(what)
}

// fail builds the "Expected X but found Y" error at the current token. When
// the stream stopped because the source failed, the source error wins.
func (p *Parser) fail(what string) error {
	if p.fill(0) {
		tok := p.toks[p.pos]
		return diag.New(diag.SynExpected, tok.Loc, "Expected %s but found %s", what, tok.Describe())
	}
	if p.srcErr != nil {
		return p.srcErr
	}
	return diag.New(diag.SynExpected, p.endLoc(), "Expected %s but found end of input", what)
}

func (p *Parser) endLoc() source.Location {
	if n := len(p.toks); n > 0 {
		last := p.toks[n-1]
		return source.At(last.Loc.File, last.End())
	}
	if p.file != nil {
		return source.At(p.file, p.file.Len())
	}
	return source.Location{}
}

// requireEOF checks that a rule consumed all input.
func (p *Parser) requireEOF() error {
	if p.atEOF() {
		return p.srcErr
	}
	return p.fail("end of input")
}

// delimitedList parses item {delim item}.
func delimitedList[T ast.Node](p *Parser, delim token.Kind, item func() (T, error)) (*ast.ListNode[*ast.DelimitedItemNode[T]], error) {
	var items []*ast.DelimitedItemNode[T]
	for {
		it, err := item()
		if err != nil {
			return nil, err
		}
		d := &ast.DelimitedItemNode[T]{Item: it}
		items = append(items, d)
		if !p.at(delim) {
			return ast.NewList(items), nil
		}
		d.Delimiter = p.advance()
	}
}

// repeated parses items while cond holds.
func repeated[T ast.Node](cond func() bool, item func() (T, error)) (*ast.ListNode[T], error) {
	var items []T
	for cond() {
		it, err := item()
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return ast.NewList(items), nil
}

// asNode widens a typed rule result, keeping a failed result nil.
func asNode[T ast.Node](n T, err error) (ast.Node, error) {
	if err != nil {
		return nil, err
	}
	return n, nil
}
