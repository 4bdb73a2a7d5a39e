// Package testutil holds helpers shared by the tests of several packages.
package testutil

import (
	"github.com/google/go-cmp/cmp"
	"github.com/pixelacme/uniparse/tree"
)

// Entry is one key/value pair of an ordered node, as seen by cmp.
type Entry struct {
	Key   string
	Value tree.Node
}

// BlockView is the cmp-visible shape of a *tree.Block.
type BlockView struct {
	Name    string
	Entries []Entry
}

// TreeOpts makes cmp.Diff compare Block and MultiArgs by name, key order and
// values.
var TreeOpts = cmp.Options{
	cmp.Transformer("Block", func(b *tree.Block) *BlockView {
		if b == nil {
			return nil
		}
		v := &BlockView{Name: b.Name}
		for k, n := range b.All() {
			v.Entries = append(v.Entries, Entry{Key: k, Value: n})
		}
		return v
	}),
	cmp.Transformer("MultiArgs", func(m *tree.MultiArgs) []Entry {
		if m == nil {
			return nil
		}
		var out []Entry
		for k, n := range m.All() {
			out = append(out, Entry{Key: k, Value: n})
		}
		return out
	}),
}

// Block builds a Block from alternating key/value arguments.
func Block(name string, kv ...any) *tree.Block {
	b := tree.NewBlock(name)
	for i := 0; i+1 < len(kv); i += 2 {
		n, _ := kv[i+1].(tree.Node)
		b.Set(kv[i].(string), n)
	}
	return b
}

// MultiArgs builds a MultiArgs from alternating key/value arguments.
func MultiArgs(kv ...any) *tree.MultiArgs {
	m := tree.NewMultiArgs()
	for i := 0; i+1 < len(kv); i += 2 {
		n, _ := kv[i+1].(tree.Node)
		m.Set(kv[i].(string), n)
	}
	return m
}
