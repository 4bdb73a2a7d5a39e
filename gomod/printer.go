package gomod

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	uerrors "github.com/pixelacme/uniparse/errors"
	"github.com/pixelacme/uniparse/internal/formatter"
	"github.com/pixelacme/uniparse/tree"
)

// Printer renders trees as go.mod files.
type Printer struct {
	// Indent is the number of spaces before each requirement inside a
	// require block. Zero means a tab.
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

// Fprint writes t to w, one directive per paragraph in insertion order.
func (p Printer) Fprint(w io.Writer, t *tree.Tree) error {
	if t == nil || t.Root == nil {
		return uerrors.MissingField(Module)
	}
	for _, field := range []string{Module, Go} {
		if !t.Root.Has(field) {
			return uerrors.MissingField(field)
		}
	}

	indent := "\t"
	if p.Indent > 0 {
		indent = formatter.Spaces(p.Indent)
	}
	f := formatter.New(w, indent)
	first := true
	for key, v := range t.Root.All() {
		if f.Err() != nil {
			break
		}
		if !first {
			f.Newline()
		}
		first = false
		switch key {
		case Module, Go, Toolchain:
			s, ok := v.(tree.String)
			if !ok {
				f.Fail(unsupported(fmt.Sprintf("%s value for the %s directive", kindOf(v), key)))
				break
			}
			f.Line(key, " ", arg(f, string(s)))
		case Require:
			b, ok := v.(*tree.Block)
			if !ok {
				f.Fail(unsupported(fmt.Sprintf("%s value for the require directive", kindOf(v))))
				break
			}
			writeRequire(f, b)
		default:
			f.Fail(unsupported(fmt.Sprintf("%q directive", key)))
		}
	}
	return f.Err()
}

func writeRequire(f *formatter.Formatter, b *tree.Block) {
	if b.Len() == 0 {
		f.Line(Require, " ()")
		return
	}
	f.Line(Require, " (")
	f.Indent()
	for path, v := range b.All() {
		version, indirect, ok := requirement(v)
		if !ok {
			f.Fail(unsupported(fmt.Sprintf("%s requirement for %q", kindOf(v), path)))
			return
		}
		line := arg(f, path) + " " + arg(f, version)
		if indirect {
			line += " // indirect"
		}
		f.Line(line)
	}
	f.Dedent()
	f.Line(")")
}

func requirement(v tree.Node) (version string, indirect, ok bool) {
	switch n := v.(type) {
	case tree.String:
		return string(n), false, true
	case *tree.MultiArgs:
		vv, found := n.Get(VersionArg)
		s, isString := vv.(tree.String)
		if !found || !isString {
			return "", false, false
		}
		if iv, found := n.Get(IndirectArg); found {
			b, isBool := iv.(tree.Bool)
			if !isBool {
				return "", false, false
			}
			indirect = bool(b)
		}
		return string(s), indirect, true
	}
	return "", false, false
}

// arg returns s as a directive argument, quoting it when it would not lex
// back as a single bare word.
func arg(f *formatter.Formatter, s string) string {
	bare := s != "" && !strings.Contains(s, "//")
	for _, r := range s {
		if !isArgRune(r) {
			bare = false
			break
		}
	}
	if bare {
		return s
	}
	if strings.ContainsAny(s, "\"\n") {
		f.Fail(unsupported(fmt.Sprintf("argument %q cannot be quoted", s)))
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
