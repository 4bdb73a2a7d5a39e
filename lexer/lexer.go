// Package lexer turns source text into a stream of tokens. A single rune-cursor
// implementation serves every grammar; the differences between grammars live in
// a Rules table.
package lexer

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pixelacme/uniparse/token"
)

const (
	eof     rune = -1
	invalid rune = -2
)

// Rules is the per-grammar lexical table.
type Rules struct {
	// Quotes lists the runes that open a string literal. A string is closed
	// by the same rune that opened it.
	Quotes string
	// Punct lists the single-rune punctuation tokens.
	Punct string
	// LineComments enables // comments, BlockComments enables /* */ comments.
	LineComments  bool
	BlockComments bool
	// KeepComments emits COMMENT tokens instead of discarding them.
	KeepComments bool
	// Newlines emits NEWLINE tokens instead of treating line breaks as whitespace.
	Newlines bool
	// IdentStart and IdentPart classify identifier runes.
	IdentStart func(rune) bool
	IdentPart  func(rune) bool
}

// Lexer holds the state for tokenizing one source text.
type Lexer struct {
	input        []byte
	rules        Rules
	position     int
	readPosition int
	ch           rune
	line         int
	column       int
}

// New creates and returns a new Lexer.
func New(input []byte, rules Rules) *Lexer {
	l := &Lexer{input: input, rules: rules, line: 1, column: 1}
	l.readChar()
	return l
}

// NextToken scans the input and returns the next token. Malformed input is
// reported as an ILLEGAL token whose Literal describes the problem; the lexer
// never panics.
func (l *Lexer) NextToken() token.Token { //nolint:gocyclo
	for {
		l.skipWhitespace()
		tok := token.Token{Line: l.line, Column: l.column, Offset: l.position}
		switch {
		case l.ch == eof:
			tok.Type = token.EOF
			tok.End = l.position
			return tok
		case l.ch == '\n':
			tok.Type = token.NEWLINE
			tok.Literal = "\n"
			l.advance()
		case l.rules.LineComments && l.ch == '/' && l.peekChar() == '/':
			tok.Literal = l.readLineComment()
			if !l.rules.KeepComments {
				continue
			}
			tok.Type = token.COMMENT
		case l.rules.BlockComments && l.ch == '/' && l.peekChar() == '*':
			lit, ok := l.readBlockComment()
			if !ok {
				tok.Type = token.ILLEGAL
				tok.Literal = "unterminated block comment"
				break
			}
			if !l.rules.KeepComments {
				continue
			}
			tok.Type = token.COMMENT
			tok.Literal = lit
		case strings.ContainsRune(l.rules.Quotes, l.ch):
			lit, ok := l.readString()
			if !ok {
				tok.Type = token.ILLEGAL
				tok.Literal = "unterminated string"
				break
			}
			tok.Type = token.STRING
			tok.Literal = lit
		case strings.ContainsRune(l.rules.Punct, l.ch):
			tok.Type = token.Type(l.ch)
			tok.Literal = string(l.ch)
			l.advance()
		case l.rules.IdentStart != nil && l.rules.IdentStart(l.ch):
			tok.Literal = l.readIdentifier()
			tok.Type = token.LookupIdent(tok.Literal)
		case l.ch == invalid:
			tok.Type = token.ILLEGAL
			tok.Literal = "invalid utf-8"
			l.advance()
		default:
			tok.Type = token.ILLEGAL
			tok.Literal = fmt.Sprintf("unexpected character %q", l.ch)
			l.advance()
		}
		tok.End = l.position
		return tok
	}
}

// Slice returns the raw source between two byte offsets.
func (l *Lexer) Slice(start, end int) string {
	if start < 0 || end > len(l.input) || start > end {
		return ""
	}
	return string(l.input[start:end])
}

func (l *Lexer) readChar() {
	l.position = l.readPosition
	if l.readPosition >= len(l.input) {
		l.ch = eof
		return
	}
	r, size := utf8.DecodeRune(l.input[l.readPosition:])
	if r == utf8.RuneError && size == 1 {
		r = invalid
	}
	l.ch = r
	l.readPosition += size
}

func (l *Lexer) advance() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}
	l.readChar()
	l.column++
}

func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return eof
	}
	r, _ := utf8.DecodeRune(l.input[l.readPosition:])
	return r
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\f' || (l.ch == '\n' && !l.rules.Newlines) {
		l.advance()
	}
}

func (l *Lexer) atComment() bool {
	if l.ch != '/' {
		return false
	}
	next := l.peekChar()
	return (l.rules.LineComments && next == '/') || (l.rules.BlockComments && next == '*')
}

func (l *Lexer) readLineComment() string {
	l.advance() // consume first '/'
	l.advance() // consume second '/'
	start := l.position
	for l.ch != '\n' && l.ch != eof {
		l.advance()
	}
	return strings.TrimSpace(string(l.input[start:l.position]))
}

func (l *Lexer) readBlockComment() (string, bool) {
	l.advance() // consume '/'
	l.advance() // consume '*'
	start := l.position
	for {
		if l.ch == eof {
			return "", false
		}
		if l.ch == '*' && l.peekChar() == '/' {
			lit := string(l.input[start:l.position])
			l.advance()
			l.advance()
			return strings.TrimSpace(lit), true
		}
		l.advance()
	}
}

// readString reads a literal verbatim up to the matching delimiter. No escape
// sequences are recognized.
func (l *Lexer) readString() (string, bool) {
	quote := l.ch
	l.advance() // consume opening quote
	start := l.position
	for l.ch != quote {
		if l.ch == eof {
			return "", false
		}
		l.advance()
	}
	lit := string(l.input[start:l.position])
	l.advance() // consume closing quote
	return lit, true
}

func (l *Lexer) readIdentifier() string {
	start := l.position
	l.advance()
	for l.rules.IdentPart(l.ch) && !l.atComment() {
		l.advance()
	}
	return string(l.input[start:l.position])
}

// IsLetter reports whether ch is a letter or an underscore.
func IsLetter(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch)
}

// IsDigit reports whether ch is an ASCII digit.
func IsDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

// IsWord reports whether ch is a letter, a digit or an underscore.
func IsWord(ch rune) bool {
	return IsLetter(ch) || IsDigit(ch)
}
