// Package parser provides the token cursor shared by the grammar parsers.
//
// The contract for every production built on it is that it is entered with
// CurToken being the first token of the construct, and returns with CurToken
// pointing to the token after the construct.
package parser

import (
	"fmt"
	"slices"

	uerrors "github.com/pixelacme/uniparse/errors"
	"github.com/pixelacme/uniparse/lexer"
	"github.com/pixelacme/uniparse/token"
)

// DefaultMaxDepth is the nesting limit used when Options.MaxDepth is zero.
const DefaultMaxDepth = 1000

// Options configures a Parser.
type Options struct {
	// KeepComments stops NextToken from skipping COMMENT tokens.
	KeepComments bool
	// MaxDepth bounds Enter. Zero means DefaultMaxDepth.
	MaxDepth int
}

// Parser holds the state of the recursive-descent cursor.
type Parser struct {
	l *lexer.Lexer

	CurToken  token.Token
	PeekToken token.Token

	keepComments bool
	depth        int
	maxDepth     int
}

// New creates a new parser reading from l.
func New(l *lexer.Lexer, opts Options) *Parser {
	p := &Parser{l: l, keepComments: opts.KeepComments, maxDepth: opts.MaxDepth}
	if p.maxDepth <= 0 {
		p.maxDepth = DefaultMaxDepth
	}

	// Read two tokens, so CurToken and PeekToken are both set.
	p.NextToken()
	p.NextToken()

	return p
}

// NextToken advances the cursor by one token.
func (p *Parser) NextToken() {
	p.CurToken = p.PeekToken
	p.PeekToken = p.l.NextToken()
	if p.keepComments {
		return
	}
	for p.PeekToken.Type == token.COMMENT {
		p.PeekToken = p.l.NextToken()
	}
	if p.CurToken.Type == token.COMMENT {
		p.NextToken()
	}
}

// CurTokenIs reports whether the current token has type t.
func (p *Parser) CurTokenIs(t token.Type) bool {
	return p.CurToken.Type == t
}

// PeekTokenIs reports whether the next token has type t.
func (p *Parser) PeekTokenIs(t token.Type) bool {
	return p.PeekToken.Type == t
}

// Skip advances past any run of tokens whose type is one of types.
func (p *Parser) Skip(types ...token.Type) {
	for slices.Contains(types, p.CurToken.Type) {
		p.NextToken()
	}
}

// Expect consumes the current token if it has type t, and otherwise returns
// the error for an unexpected token. expected describes t for the message.
func (p *Parser) Expect(t token.Type, expected string) error {
	if !p.CurTokenIs(t) {
		return p.Unexpected(expected)
	}
	p.NextToken()
	return nil
}

// Unexpected returns the error for the current token given what the grammar
// expected at this point. A malformed token is reported as a lexical error.
func (p *Parser) Unexpected(expected string) error {
	if p.CurTokenIs(token.ILLEGAL) {
		return &uerrors.LexError{Line: p.CurToken.Line, Message: p.CurToken.Literal}
	}
	return &uerrors.ParseError{
		Line:     p.CurToken.Line,
		Expected: expected,
		Found:    p.CurToken.Describe(),
	}
}

// Enter records one more level of nesting and fails once the limit is
// exceeded. Every successful Enter is paired with a Leave.
func (p *Parser) Enter() error {
	if p.depth >= p.maxDepth {
		return &uerrors.ParseError{
			Line:     p.CurToken.Line,
			Expected: fmt.Sprintf("at most %d levels of nesting", p.maxDepth),
			Found:    "deeper nesting",
		}
	}
	p.depth++
	return nil
}

// Leave undoes one Enter.
func (p *Parser) Leave() {
	p.depth--
}

// Raw returns the source text between two byte offsets.
func (p *Parser) Raw(start, end int) string {
	return p.l.Slice(start, end)
}
