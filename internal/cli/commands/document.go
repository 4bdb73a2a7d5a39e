// Package commands implements the uniparse subcommands.
package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pixelacme/uniparse"
	"github.com/pixelacme/uniparse/internal/cli/config"
	"github.com/pixelacme/uniparse/tree"
	"github.com/spf13/cobra"
)

// document is a parsed file together with the options it was read with.
type document struct {
	path    string
	grammar uniparse.Grammar
	tree    *tree.Tree
	opts    []uniparse.Option
}

func openDocument(cmd *cobra.Command, path string) (*document, error) {
	cfg := config.FromContext(cmd.Context())
	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	t, g, err := uniparse.ParseFile(path, opts...)
	if err != nil {
		return nil, err
	}
	config.GetLogger(cmd.Context()).Debug("parsed file", "path", path, "grammar", g.String())
	return &document{path: path, grammar: g, tree: t, opts: opts}, nil
}

// save writes the document back to its file, or to the command output when
// inPlace is false.
func (d *document) save(cmd *cobra.Command, inPlace bool) error {
	if !inPlace {
		return uniparse.Fprint(cmd.OutOrStdout(), d.grammar, d.tree, d.opts...)
	}
	if err := uniparse.WriteFile(d.path, d.grammar, d.tree, d.opts...); err != nil {
		return err
	}
	config.GetLogger(cmd.Context()).Debug("wrote file", "path", d.path)
	return nil
}

func (d *document) render() (string, error) {
	return uniparse.Render(d.grammar, d.tree, d.opts...)
}

func joinPath(path []string) string {
	if len(path) == 0 {
		return "(root)"
	}
	return strings.Join(path, ".")
}

// printNode writes scalars as plain text and containers as indented JSON.
func printNode(w io.Writer, n tree.Node) error {
	var out string
	switch x := n.(type) {
	case tree.String:
		out = string(x)
	case tree.Bool:
		out = fmt.Sprint(bool(x))
	case tree.Assignment:
		out = string(x)
	default:
		var v any = tree.Interface(n)
		switch n.(type) {
		case *tree.Block, *tree.MultiArgs:
			v = n
		}
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		out = string(data)
	}
	_, err := fmt.Fprintln(w, out)
	return err
}
