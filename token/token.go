// Package token defines the lexical units shared by every grammar.
package token

import "fmt"

// Type is the type of a token.
type Type string

// Token represents a lexical token.
type Token struct {
	Type    Type
	Literal string
	Line    int
	Column  int
	Offset  int // byte offset of the first character
	End     int // byte offset just past the last character
}

const (
	// Special tokens
	ILLEGAL Type = "ILLEGAL" // A malformed token; Literal holds the reason
	EOF     Type = "EOF"     // End of input

	// Literals
	IDENT  Type = "IDENT"  // plugins, github.com/foo/bar, 1.21
	STRING Type = "STRING" // 'groovy', "0.1.0"
	BOOL   Type = "BOOL"   // true, false

	// Delimiters
	LBRACE Type = "{"
	RBRACE Type = "}"
	LPAREN Type = "("
	RPAREN Type = ")"
	LBRACK Type = "["
	RBRACK Type = "]"
	ASSIGN Type = "="
	COMMA  Type = ","
	DOT    Type = "."

	// Trivia that some grammars keep
	COMMENT Type = "COMMENT" // // a comment
	NEWLINE Type = "NEWLINE" // \n
)

var keywords = map[string]Type{
	"true":  BOOL,
	"false": BOOL,
}

// LookupIdent checks the keywords table for an identifier.
// If the identifier is a keyword, it returns the keyword's token type.
// Otherwise, it returns IDENT.
func LookupIdent(ident string) Type {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}

// Describe renders a token for "expected X, found Y" messages.
func (t Token) Describe() string {
	switch t.Type {
	case EOF:
		return "end of input"
	case NEWLINE:
		return "end of line"
	case IDENT, BOOL:
		return fmt.Sprintf("%s %q", t.Type, t.Literal)
	case STRING:
		return fmt.Sprintf("string %q", t.Literal)
	case COMMENT:
		return "comment"
	case ILLEGAL:
		return t.Literal
	default:
		return fmt.Sprintf("'%s'", t.Type)
	}
}
