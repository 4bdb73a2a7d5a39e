package zon

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	uerrors "github.com/pixelacme/uniparse/errors"
	"github.com/pixelacme/uniparse/internal/formatter"
	"github.com/pixelacme/uniparse/lexer"
	"github.com/pixelacme/uniparse/token"
	"github.com/pixelacme/uniparse/tree"
)

// DefaultIndent is the number of spaces per nesting level.
const DefaultIndent = 4

// Printer renders trees as ZON documents.
type Printer struct {
	// Indent is the number of spaces per nesting level. Zero means
	// DefaultIndent.
	Indent int
}

// Render renders t with the default settings.
func Render(t *tree.Tree) (string, error) {
	return Printer{}.Render(t)
}

// Render returns t as source text.
func (p Printer) Render(t *tree.Tree) (string, error) {
	var buf bytes.Buffer
	if err := p.Fprint(&buf, t); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Fprint writes t to w as a top-level struct literal with one field or list
// element per line. Every field and element is followed by a comma.
func (p Printer) Fprint(w io.Writer, t *tree.Tree) error {
	indent := p.Indent
	if indent <= 0 {
		indent = DefaultIndent
	}
	f := formatter.New(w, formatter.Spaces(indent))
	root := tree.NewBlock("")
	if t != nil && t.Root != nil {
		root = t.Root
	}
	f.WriteString(".")
	writeValue(f, root)
	f.Newline()
	return f.Err()
}

// writeValue writes v starting at the current column. Multi-line values end
// without a trailing newline.
func writeValue(f *formatter.Formatter, v tree.Node) {
	switch n := v.(type) {
	case tree.String:
		f.WriteString(quote(f, string(n)))
	case tree.Bool:
		f.WriteString(fmt.Sprint(bool(n)))
	case tree.Assignment:
		raw := strings.TrimSpace(string(n))
		if raw == "" {
			f.Fail(unsupported("empty assignment"))
			return
		}
		f.WriteString(raw)
	case *tree.Block:
		if n.Len() == 0 {
			f.WriteString("{}")
			return
		}
		f.WriteString("{\n")
		f.Indent()
		for key, child := range n.All() {
			f.WriteIndent()
			f.WriteString("." + fieldName(f, key) + " = ")
			if isLiteral(child) {
				f.WriteString(".")
			}
			writeValue(f, child)
			f.WriteString(",\n")
		}
		f.Dedent()
		f.WriteIndent()
		f.WriteString("}")
	case tree.Array:
		if len(n) == 0 {
			f.WriteString("{}")
			return
		}
		f.WriteString("{\n")
		f.Indent()
		for _, item := range n {
			f.Line(quote(f, item), ",")
		}
		f.Dedent()
		f.WriteIndent()
		f.WriteString("}")
	default:
		f.Fail(unsupported(kindOf(v) + " value"))
	}
}

func isLiteral(n tree.Node) bool {
	switch n.(type) {
	case *tree.Block, tree.Array:
		return true
	}
	return false
}

// fieldName returns key as written after the leading '.', quoting it with
// @"..." when it is not a plain identifier.
func fieldName(f *formatter.Formatter, key string) string {
	if isIdentifier(key) {
		return key
	}
	return "@" + quote(f, key)
}

func isIdentifier(s string) bool {
	if s == "" || token.LookupIdent(s) != token.IDENT {
		return false
	}
	for i, r := range s {
		if i == 0 && lexer.IsDigit(r) {
			return false
		}
		if !lexer.IsWord(r) {
			return false
		}
	}
	return true
}

// quote delimits s with double quotes. Strings are verbatim, so s must not
// contain a double quote.
func quote(f *formatter.Formatter, s string) string {
	if strings.Contains(s, `"`) {
		f.Fail(unsupported(fmt.Sprintf("string %q contains a double quote", s)))
		return ""
	}
	return `"` + s + `"`
}

func kindOf(n tree.Node) string {
	if n == nil {
		return "nil"
	}
	return n.Kind().String()
}

func unsupported(construct string) error {
	return &uerrors.UnsupportedConstructError{Grammar: Name, Construct: construct}
}
