package zon

import (
	uerrors "github.com/pixelacme/uniparse/errors"
	iparser "github.com/pixelacme/uniparse/internal/parser"
	"github.com/pixelacme/uniparse/lexer"
	"github.com/pixelacme/uniparse/token"
	"github.com/pixelacme/uniparse/tree"
)

// Name is the grammar name used in error messages.
const Name = "zon"

// AT introduces a quoted field name, as in .@"zig-clap".
const AT token.Type = "@"

var rules = lexer.Rules{
	Quotes:       `"`,
	Punct:        ".{}=,@",
	LineComments: true,
	IdentStart:   lexer.IsWord,
	IdentPart:    lexer.IsWord,
}

// Parser parses ZON documents.
type Parser struct {
	// MaxDepth bounds struct nesting. Zero means the package default.
	MaxDepth int
}

// Parse parses src with the default settings.
func Parse(src []byte) (*tree.Tree, error) {
	return Parser{}.Parse(src)
}

// Parse parses src into a Tree. The leading '.' of the top-level literal is
// optional.
func (p Parser) Parse(src []byte) (*tree.Tree, error) {
	ps := &parser{iparser.New(lexer.New(src, rules), iparser.Options{MaxDepth: p.MaxDepth})}

	if ps.CurTokenIs(token.DOT) && ps.PeekTokenIs(token.LBRACE) {
		ps.NextToken()
	}
	if !ps.CurTokenIs(token.LBRACE) {
		return nil, ps.Unexpected("'.{'")
	}
	line := ps.CurToken.Line
	v, err := ps.parseLiteral("")
	if err != nil {
		return nil, err
	}
	root, ok := v.(*tree.Block)
	if !ok {
		return nil, ps.unsupported("list as the top-level value", line)
	}
	if !ps.CurTokenIs(token.EOF) {
		return nil, ps.Unexpected("end of input")
	}
	return &tree.Tree{Root: root}, nil
}

type parser struct {
	*iparser.Parser
}

// parseLiteral reads `{ ... }`. The first token of the body decides between
// a struct and a list of strings.
func (p *parser) parseLiteral(name string) (tree.Node, error) {
	if err := p.Enter(); err != nil {
		return nil, err
	}
	defer p.Leave()

	p.NextToken() // consume '{'
	switch p.CurToken.Type {
	case token.RBRACE:
		p.NextToken()
		return tree.NewBlock(name), nil
	case token.STRING:
		return p.parseList()
	case token.DOT:
		if p.PeekTokenIs(token.IDENT) || p.PeekTokenIs(AT) {
			return p.parseStruct(name)
		}
		if p.PeekTokenIs(token.LBRACE) {
			return nil, p.unsupported("anonymous struct in a list", p.CurToken.Line)
		}
		p.NextToken()
		return nil, p.Unexpected("a field name")
	case token.LBRACE:
		return nil, p.unsupported("anonymous struct in a list", p.CurToken.Line)
	case token.IDENT, token.BOOL:
		return nil, p.unsupported("list of non-string values", p.CurToken.Line)
	}
	return nil, p.Unexpected("'.', a string or '}'")
}

func (p *parser) parseStruct(name string) (tree.Node, error) {
	b := tree.NewBlock(name)
	for !p.CurTokenIs(token.RBRACE) {
		if err := p.Expect(token.DOT, "'.' or '}'"); err != nil {
			return nil, err
		}
		key, err := p.parseFieldName()
		if err != nil {
			return nil, err
		}
		if err := p.Expect(token.ASSIGN, "'='"); err != nil {
			return nil, err
		}
		v, err := p.parseValue(key)
		if err != nil {
			return nil, err
		}
		b.Set(key, v)

		if p.CurTokenIs(token.COMMA) {
			p.NextToken()
		} else if !p.CurTokenIs(token.RBRACE) {
			return nil, p.Unexpected("',' or '}'")
		}
	}
	p.NextToken() // consume '}'
	return b, nil
}

func (p *parser) parseFieldName() (string, error) {
	switch p.CurToken.Type {
	case token.IDENT:
		name := p.CurToken.Literal
		p.NextToken()
		return name, nil
	case AT:
		p.NextToken()
		if !p.CurTokenIs(token.STRING) {
			return "", p.Unexpected("a quoted field name")
		}
		name := p.CurToken.Literal
		p.NextToken()
		return name, nil
	}
	return "", p.Unexpected("a field name")
}

func (p *parser) parseValue(key string) (tree.Node, error) {
	tok := p.CurToken
	switch tok.Type {
	case token.STRING:
		p.NextToken()
		return tree.String(tok.Literal), nil
	case token.BOOL:
		p.NextToken()
		return tree.Bool(tok.Literal == "true"), nil
	case token.IDENT:
		p.NextToken()
		return tree.Assignment(tok.Literal), nil
	case token.LBRACE:
		return p.parseLiteral(key)
	case token.DOT:
		switch p.PeekToken.Type {
		case token.LBRACE:
			p.NextToken()
			return p.parseLiteral(key)
		case token.IDENT:
			p.NextToken()
			name := p.CurToken.Literal
			p.NextToken()
			return tree.Assignment("." + name), nil
		}
		p.NextToken()
		return nil, p.Unexpected("'{' or an enum name")
	}
	return nil, p.Unexpected("a value")
}

func (p *parser) parseList() (tree.Node, error) {
	items := tree.Array{}
	for !p.CurTokenIs(token.RBRACE) {
		switch p.CurToken.Type {
		case token.STRING:
			items = append(items, p.CurToken.Literal)
		case token.IDENT, token.BOOL, token.DOT, token.LBRACE:
			return nil, p.unsupported("non-string list element", p.CurToken.Line)
		default:
			return nil, p.Unexpected("a string or '}'")
		}
		p.NextToken()
		if p.CurTokenIs(token.COMMA) {
			p.NextToken()
		} else if !p.CurTokenIs(token.RBRACE) {
			return nil, p.Unexpected("',' or '}'")
		}
	}
	p.NextToken() // consume '}'
	return items, nil
}

func (p *parser) unsupported(construct string, line int) error {
	return &uerrors.UnsupportedConstructError{Grammar: Name, Construct: construct, Line: line}
}
