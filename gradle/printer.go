package gradle

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

// Printer renders trees as build scripts.
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

// Fprint writes t to w, one entry per line.
func (p Printer) Fprint(w io.Writer, t *tree.Tree) error {
	indent := p.Indent
	if indent <= 0 {
		indent = DefaultIndent
	}
	f := formatter.New(w, formatter.Spaces(indent))
	if t != nil && t.Root != nil {
		writeEntries(f, t.Root)
	}
	return f.Err()
}

func writeEntries(f *formatter.Formatter, b *tree.Block) {
	for key, v := range b.All() {
		if f.Err() != nil {
			return
		}
		if !isIdentifier(key) {
			f.Fail(unsupported(fmt.Sprintf("key %q is not an identifier", key)))
			return
		}
		writeEntry(f, key, v)
	}
}

func writeEntry(f *formatter.Formatter, key string, v tree.Node) {
	switch n := v.(type) {
	case tree.String:
		f.Line(key, " ", quote(f, string(n)))
	case tree.Bool:
		f.Line(key, " ", fmt.Sprint(bool(n)))
	case *tree.Block:
		f.Line(key, " {")
		f.Indent()
		writeEntries(f, n)
		f.Dedent()
		f.Line("}")
	case tree.Assignment:
		raw := strings.TrimSpace(string(n))
		if raw == "" {
			f.Fail(unsupported(fmt.Sprintf("empty assignment to %q", key)))
			return
		}
		f.Line(key, " = ", raw)
	case tree.Call:
		args := make([]string, 0, len(n))
		for _, arg := range n {
			s, ok := scalar(f, arg)
			if !ok {
				f.Fail(unsupported(fmt.Sprintf("%s argument in call %q", kindOf(arg), key)))
				return
			}
			args = append(args, s)
		}
		f.Line(key, "(", strings.Join(args, ", "), ")")
	case tree.Array:
		items := make([]string, len(n))
		for i, s := range n {
			items[i] = quote(f, s)
		}
		f.Line(key, " [", strings.Join(items, ", "), "]")
	case *tree.MultiArgs:
		writeMultiArgs(f, key, n)
	default:
		f.Fail(unsupported(fmt.Sprintf("%s value for %q", kindOf(v), key)))
	}
}

func writeMultiArgs(f *formatter.Formatter, key string, m *tree.MultiArgs) {
	value, ok := m.Get("value")
	s, isString := value.(tree.String)
	if !ok || !isString {
		f.Fail(unsupported(fmt.Sprintf("named arguments of %q without a string \"value\"", key)))
		return
	}
	if m.Len() < 2 {
		f.Fail(unsupported(fmt.Sprintf("named arguments of %q with nothing besides \"value\"", key)))
		return
	}
	parts := []string{key, " ", quote(f, string(s))}
	for name, arg := range m.All() {
		if name == "value" {
			continue
		}
		text, ok := scalar(f, arg)
		if !ok || !isIdentifier(name) {
			f.Fail(unsupported(fmt.Sprintf("named argument %q of %q", name, key)))
			return
		}
		parts = append(parts, " ", name, " ", text)
	}
	f.Line(parts...)
}

func scalar(f *formatter.Formatter, n tree.Node) (string, bool) {
	switch v := n.(type) {
	case tree.String:
		return quote(f, string(v)), true
	case tree.Bool:
		return fmt.Sprint(bool(v)), true
	default:
		return "", false
	}
}

// quote delimits s with single quotes, or double quotes when s contains a
// single quote. Strings are verbatim, so text holding both cannot be written.
func quote(f *formatter.Formatter, s string) string {
	switch {
	case !strings.Contains(s, "'"):
		return "'" + s + "'"
	case !strings.Contains(s, `"`):
		return `"` + s + `"`
	default:
		f.Fail(unsupported(fmt.Sprintf("string %q contains both quote characters", s)))
		return ""
	}
}

func isIdentifier(s string) bool {
	if s == "" || token.LookupIdent(s) != token.IDENT {
		return false
	}
	for i, r := range s {
		if i == 0 && !lexer.IsWord(r) {
			return false
		}
		if !isIdentPart(r) {
			return false
		}
	}
	return true
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
