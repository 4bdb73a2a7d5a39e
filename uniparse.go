package uniparse

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pixelacme/uniparse/gomod"
	"github.com/pixelacme/uniparse/gradle"
	"github.com/pixelacme/uniparse/tree"
	"github.com/pixelacme/uniparse/zon"
)

// Grammar identifies one of the supported surface syntaxes.
type Grammar int

const (
	// Gradle is the block DSL of Gradle build scripts.
	Gradle Grammar = iota + 1
	// Zon is Zig object notation, as used by build.zig.zon.
	Zon
	// GoMod is the go.mod module manifest.
	GoMod
)

// grammarDef is one row of the dispatch table.
type grammarDef struct {
	name     string
	suffixes []string
	names    []string
	parse    func(src []byte, o *options) (*tree.Tree, error)
	print    func(w io.Writer, t *tree.Tree, o *options) error
}

var grammars = map[Grammar]grammarDef{
	Gradle: {
		name:     "gradle",
		suffixes: []string{".gradle", ".gradle.kts"},
		parse: func(src []byte, o *options) (*tree.Tree, error) {
			return gradle.Parser{MaxDepth: o.maxDepth}.Parse(src)
		},
		print: func(w io.Writer, t *tree.Tree, o *options) error {
			return gradle.Printer{Indent: o.indent}.Fprint(w, t)
		},
	},
	Zon: {
		name:     "zon",
		suffixes: []string{".zon"},
		parse: func(src []byte, o *options) (*tree.Tree, error) {
			return zon.Parser{MaxDepth: o.maxDepth}.Parse(src)
		},
		print: func(w io.Writer, t *tree.Tree, o *options) error {
			return zon.Printer{Indent: o.indent}.Fprint(w, t)
		},
	},
	GoMod: {
		name:     "gomod",
		suffixes: []string{".mod"},
		names:    []string{"go.mod"},
		parse: func(src []byte, o *options) (*tree.Tree, error) {
			return gomod.Parser{MaxDepth: o.maxDepth}.Parse(src)
		},
		print: func(w io.Writer, t *tree.Tree, o *options) error {
			return gomod.Printer{Indent: o.indent}.Fprint(w, t)
		},
	},
}

// Grammars returns every supported grammar.
func Grammars() []Grammar {
	return []Grammar{Gradle, Zon, GoMod}
}

func (g Grammar) String() string {
	if def, ok := grammars[g]; ok {
		return def.name
	}
	return fmt.Sprintf("Grammar(%d)", int(g))
}

// ParseGrammar returns the grammar with the given name.
func ParseGrammar(name string) (Grammar, error) {
	for _, g := range Grammars() {
		if strings.EqualFold(name, grammars[g].name) {
			return g, nil
		}
	}
	return 0, &UnknownGrammarError{Name: name}
}

// DetectGrammar picks a grammar from a file name.
func DetectGrammar(filename string) (Grammar, error) {
	base := filepath.Base(filename)
	for _, g := range Grammars() {
		def := grammars[g]
		if slices.Contains(def.names, base) {
			return g, nil
		}
		for _, suffix := range def.suffixes {
			if strings.HasSuffix(base, suffix) {
				return g, nil
			}
		}
	}
	return 0, &UnknownGrammarError{File: filename}
}

func lookup(g Grammar) (grammarDef, error) {
	def, ok := grammars[g]
	if !ok {
		return grammarDef{}, &UnknownGrammarError{Name: g.String()}
	}
	return def, nil
}

// Parse parses src written in grammar g.
func Parse(g Grammar, src []byte, opts ...Option) (*tree.Tree, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}
	def, err := lookup(g)
	if err != nil {
		return nil, err
	}
	return def.parse(src, o)
}

// Render returns t as grammar g source text.
func Render(g Grammar, t *tree.Tree, opts ...Option) (string, error) {
	var buf bytes.Buffer
	if err := Fprint(&buf, g, t, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Fprint writes t to w as grammar g source text.
func Fprint(w io.Writer, g Grammar, t *tree.Tree, opts ...Option) error {
	o, err := newOptions(opts)
	if err != nil {
		return err
	}
	def, err := lookup(g)
	if err != nil {
		return err
	}
	return def.print(w, t, o)
}
