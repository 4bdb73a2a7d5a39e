package gomod

import (
	"slices"
	"strings"
	"unicode"

	uerrors "github.com/pixelacme/uniparse/errors"
	iparser "github.com/pixelacme/uniparse/internal/parser"
	"github.com/pixelacme/uniparse/lexer"
	"github.com/pixelacme/uniparse/token"
	"github.com/pixelacme/uniparse/tree"
)

// Name is the grammar name used in error messages.
const Name = "gomod"

// Root keys and directive names.
const (
	Module    = "module"
	Go        = "go"
	Toolchain = "toolchain"
	Require   = "require"
)

// Named arguments of an indirect requirement.
const (
	VersionArg  = "version"
	IndirectArg = "indirect"
)

var unsupportedDirectives = []string{"replace", "exclude", "retract", "godebug", "tool", "ignore"}

var rules = lexer.Rules{
	Quotes:       `"`,
	Punct:        "()",
	LineComments: true,
	KeepComments: true,
	Newlines:     true,
	IdentStart:   isArgRune,
	IdentPart:    isArgRune,
}

func isArgRune(r rune) bool {
	return r > ' ' && !unicode.IsSpace(r) && !strings.ContainsRune(`()"`, r)
}

// Parser parses go.mod files.
type Parser struct {
	// MaxDepth is accepted for symmetry with the other grammars; manifests
	// nest at most one level.
	MaxDepth int
}

// Parse parses src with the default settings.
func Parse(src []byte) (*tree.Tree, error) {
	return Parser{}.Parse(src)
}

// Parse parses src into a Tree. A manifest without a module or go directive
// fails with a ParseError naming the missing field.
func (p Parser) Parse(src []byte) (*tree.Tree, error) {
	ps := &parser{
		Parser: iparser.New(lexer.New(src, rules), iparser.Options{KeepComments: true, MaxDepth: p.MaxDepth}),
		root:   tree.NewBlock(""),
	}
	if err := ps.parseFile(); err != nil {
		return nil, err
	}
	for _, field := range []string{Module, Go} {
		if !ps.root.Has(field) {
			return nil, uerrors.MissingField(field)
		}
	}
	return &tree.Tree{Root: ps.root}, nil
}

type parser struct {
	*iparser.Parser
	root *tree.Block
}

func (p *parser) parseFile() error {
	for !p.CurTokenIs(token.EOF) {
		switch p.CurToken.Type {
		case token.NEWLINE, token.COMMENT:
			p.NextToken()
		case token.IDENT:
			if err := p.parseDirective(); err != nil {
				return err
			}
		default:
			return p.Unexpected("a directive")
		}
	}
	return nil
}

func (p *parser) parseDirective() error {
	verb := p.CurToken
	switch verb.Literal {
	case Module, Go, Toolchain:
		p.NextToken()
		arg, err := p.parseArg("an argument to " + verb.Literal)
		if err != nil {
			return err
		}
		if err := p.endLine(); err != nil {
			return err
		}
		p.root.Set(verb.Literal, tree.String(arg))
		return nil
	case Require:
		p.NextToken()
		return p.parseRequire()
	}
	if slices.Contains(unsupportedDirectives, verb.Literal) {
		return &uerrors.UnsupportedConstructError{
			Grammar:   Name,
			Construct: verb.Literal + " directive",
			Line:      verb.Line,
		}
	}
	return p.Unexpected("a directive")
}

func (p *parser) parseRequire() error {
	req := p.requireBlock()
	if !p.CurTokenIs(token.LPAREN) {
		return p.parseRequirement(req)
	}

	p.NextToken() // consume '('
	for {
		switch p.CurToken.Type {
		case token.NEWLINE, token.COMMENT:
			p.NextToken()
		case token.RPAREN:
			p.NextToken()
			return p.endLine()
		case token.EOF:
			return p.Unexpected("')'")
		default:
			if err := p.parseRequirement(req); err != nil {
				return err
			}
		}
	}
}

func (p *parser) requireBlock() *tree.Block {
	if n, ok := p.root.Get(Require); ok {
		if b, ok := n.(*tree.Block); ok {
			return b
		}
	}
	b := tree.NewBlock(Require)
	p.root.Set(Require, b)
	return b
}

// parseRequirement reads `path version [// indirect]` up to the end of line.
func (p *parser) parseRequirement(req *tree.Block) error {
	path, err := p.parseArg("a module path")
	if err != nil {
		return err
	}
	version, err := p.parseArg("a version")
	if err != nil {
		return err
	}

	var v tree.Node = tree.String(version)
	if p.CurTokenIs(token.COMMENT) && isIndirect(p.CurToken.Literal) {
		args := tree.NewMultiArgs()
		args.Set(VersionArg, tree.String(version))
		args.Set(IndirectArg, tree.Bool(true))
		v = args
		p.NextToken()
	}
	if err := p.endLine(); err != nil {
		return err
	}
	req.Set(path, v)
	return nil
}

// isIndirect reports whether a trailing comment marks an indirect
// requirement: "indirect" alone or followed by "; other notes".
func isIndirect(comment string) bool {
	return comment == "indirect" || strings.HasPrefix(comment, "indirect;")
}

func (p *parser) parseArg(expected string) (string, error) {
	switch p.CurToken.Type {
	case token.IDENT, token.BOOL, token.STRING:
		arg := p.CurToken.Literal
		if strings.Contains(arg, "\n") {
			return "", &uerrors.LexError{Line: p.CurToken.Line, Message: "newline in string"}
		}
		p.NextToken()
		return arg, nil
	}
	return "", p.Unexpected(expected)
}

// endLine consumes an optional trailing comment and the line break.
func (p *parser) endLine() error {
	if p.CurTokenIs(token.COMMENT) {
		p.NextToken()
	}
	switch p.CurToken.Type {
	case token.NEWLINE:
		p.NextToken()
		return nil
	case token.EOF:
		return nil
	}
	return p.Unexpected("end of line")
}
