package gradle

import (
	uerrors "github.com/pixelacme/uniparse/errors"
	iparser "github.com/pixelacme/uniparse/internal/parser"
	"github.com/pixelacme/uniparse/lexer"
	"github.com/pixelacme/uniparse/token"
	"github.com/pixelacme/uniparse/tree"
)

// Name is the grammar name used in error messages.
const Name = "gradle"

var rules = lexer.Rules{
	Quotes:        `'"`,
	Punct:         "{}()[]=,+-*/%<>!?:;&|.",
	LineComments:  true,
	BlockComments: true,
	KeepComments:  true,
	IdentStart:    lexer.IsWord,
	IdentPart:     isIdentPart,
}

func isIdentPart(r rune) bool {
	return lexer.IsWord(r) || r == '.' || r == '-'
}

// Parser parses build scripts.
type Parser struct {
	// MaxDepth bounds block nesting. Zero means the package default.
	MaxDepth int
}

// Parse parses src with the default settings.
func Parse(src []byte) (*tree.Tree, error) {
	return Parser{}.Parse(src)
}

// Parse parses src into a Tree. On failure no tree is returned.
func (p Parser) Parse(src []byte) (*tree.Tree, error) {
	ps := &parser{iparser.New(lexer.New(src, rules), iparser.Options{MaxDepth: p.MaxDepth})}
	root := tree.NewBlock("")
	if err := ps.parseEntries(root, token.EOF); err != nil {
		return nil, err
	}
	return &tree.Tree{Root: root}, nil
}

type parser struct {
	*iparser.Parser
}

// parseEntries fills b until end, which is left as the current token.
func (p *parser) parseEntries(b *tree.Block, end token.Type) error {
	for !p.CurTokenIs(end) {
		if !p.CurTokenIs(token.IDENT) {
			if end == token.RBRACE {
				return p.Unexpected("an identifier or '}'")
			}
			return p.Unexpected("an identifier")
		}
		key := p.CurToken.Literal
		keyLine := p.CurToken.Line
		p.NextToken()

		v, err := p.parseValue(key, keyLine)
		if err != nil {
			return err
		}
		b.Set(key, v)

		if p.CurTokenIs(token.COMMA) {
			p.NextToken()
		}
	}
	return nil
}

func (p *parser) parseValue(key string, keyLine int) (tree.Node, error) {
	switch p.CurToken.Type {
	case token.LBRACE:
		return p.parseBlock(key)
	case token.ASSIGN:
		return p.parseAssignment()
	case token.LPAREN:
		return p.parseCall()
	case token.LBRACK:
		return p.parseArray()
	case token.STRING:
		return p.parseStringOrMultiArgs()
	case token.BOOL:
		v := tree.Bool(p.CurToken.Literal == "true")
		p.NextToken()
		return v, nil
	}
	if p.CurToken.Line != keyLine && !p.CurTokenIs(token.ILLEGAL) {
		return nil, &uerrors.ParseError{
			Line:     keyLine,
			Expected: "a value after " + quoteKey(key),
			Found:    "end of line",
		}
	}
	return nil, p.Unexpected("'{', '=', '(', '[', a string or a boolean")
}

func (p *parser) parseBlock(name string) (tree.Node, error) {
	if err := p.Enter(); err != nil {
		return nil, err
	}
	defer p.Leave()

	p.NextToken() // consume '{'
	b := tree.NewBlock(name)
	if err := p.parseEntries(b, token.RBRACE); err != nil {
		return nil, err
	}
	p.NextToken() // consume '}'
	return b, nil
}

// parseAssignment keeps the right-hand side as source text. The expression
// ends at the first comma, closing brace or line break outside brackets.
func (p *parser) parseAssignment() (tree.Node, error) {
	p.NextToken() // consume '='
	switch p.CurToken.Type {
	case token.EOF, token.COMMA, token.RBRACE:
		return nil, p.Unexpected("an expression")
	}

	start, end := p.CurToken.Offset, p.CurToken.End
	line := p.CurToken.Line
	depth := 0
	for {
		tok := p.CurToken
		if tok.Type == token.ILLEGAL {
			return nil, p.Unexpected("an expression")
		}
		if depth == 0 && (tok.Line != line || tok.Type == token.COMMA || tok.Type == token.RBRACE || tok.Type == token.EOF) {
			break
		}
		switch tok.Type {
		case token.EOF:
			return nil, p.Unexpected("a closing bracket")
		case token.LPAREN, token.LBRACK, token.LBRACE:
			depth++
		case token.RPAREN, token.RBRACK, token.RBRACE:
			if depth == 0 {
				return nil, p.Unexpected("an expression")
			}
			depth--
		}
		end = tok.End
		line = tok.Line
		p.NextToken()
	}
	return tree.Assignment(p.Raw(start, end)), nil
}

func (p *parser) parseCall() (tree.Node, error) {
	p.NextToken() // consume '('
	args := tree.Call{}
	for !p.CurTokenIs(token.RPAREN) {
		switch p.CurToken.Type {
		case token.STRING:
			args = append(args, tree.String(p.CurToken.Literal))
		case token.BOOL:
			args = append(args, tree.Bool(p.CurToken.Literal == "true"))
		default:
			return nil, p.Unexpected("a string, a boolean or ')'")
		}
		p.NextToken()
		if p.CurTokenIs(token.COMMA) {
			p.NextToken()
		} else if !p.CurTokenIs(token.RPAREN) {
			return nil, p.Unexpected("',' or ')'")
		}
	}
	p.NextToken() // consume ')'
	return args, nil
}

func (p *parser) parseArray() (tree.Node, error) {
	p.NextToken() // consume '['
	items := tree.Array{}
	for !p.CurTokenIs(token.RBRACK) {
		if !p.CurTokenIs(token.STRING) {
			return nil, p.Unexpected("a string or ']'")
		}
		items = append(items, p.CurToken.Literal)
		p.NextToken()
		if p.CurTokenIs(token.COMMA) {
			p.NextToken()
		} else if !p.CurTokenIs(token.RBRACK) {
			return nil, p.Unexpected("',' or ']'")
		}
	}
	p.NextToken() // consume ']'
	return items, nil
}

// parseStringOrMultiArgs reads `'v'` or `'v' name value ...` where every
// name/value pair sits on the line of the leading string.
func (p *parser) parseStringOrMultiArgs() (tree.Node, error) {
	value := p.CurToken.Literal
	line := p.CurToken.Line
	p.NextToken()
	if !p.CurTokenIs(token.IDENT) || p.CurToken.Line != line {
		return tree.String(value), nil
	}

	args := tree.NewMultiArgs()
	args.Set("value", tree.String(value))
	for p.CurTokenIs(token.IDENT) && p.CurToken.Line == line {
		name := p.CurToken.Literal
		if name == "value" {
			return nil, p.Unexpected("an argument name other than 'value'")
		}
		p.NextToken()
		switch p.CurToken.Type {
		case token.STRING:
			args.Set(name, tree.String(p.CurToken.Literal))
		case token.BOOL:
			args.Set(name, tree.Bool(p.CurToken.Literal == "true"))
		default:
			return nil, p.Unexpected("a string or a boolean after " + quoteKey(name))
		}
		p.NextToken()
	}
	return args, nil
}

func quoteKey(key string) string {
	return "'" + key + "'"
}
