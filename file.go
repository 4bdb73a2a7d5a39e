package uniparse

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pixelacme/uniparse/tree"
)

// ParseFile reads and parses the file at path. The grammar is the one
// selected with WithGrammar, or else the one detected from the file name.
func ParseFile(path string, opts ...Option) (*tree.Tree, Grammar, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, 0, err
	}
	g := o.grammar
	if g == 0 {
		if g, err = DetectGrammar(path); err != nil {
			return nil, 0, err
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("uniparse: %w", err)
	}
	t, err := grammars[g].parse(data, o)
	if err != nil {
		return nil, g, fmt.Errorf("%s: %w", path, err)
	}
	return t, g, nil
}

// WriteFile renders t in grammar g and writes it to path. Nothing is written
// when rendering fails.
func WriteFile(path string, g Grammar, t *tree.Tree, opts ...Option) error {
	var buf bytes.Buffer
	if err := Fprint(&buf, g, t, opts...); err != nil {
		return err
	}
	perm := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}
	if err := os.WriteFile(path, buf.Bytes(), perm); err != nil {
		return fmt.Errorf("uniparse: %w", err)
	}
	return nil
}
