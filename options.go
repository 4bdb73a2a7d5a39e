package uniparse

import "fmt"

const defaultMaxDepth = 1000

// Option configures parsing and printing.
type Option func(*options) error

type options struct {
	indent   int
	maxDepth int
	grammar  Grammar
}

func newOptions(opts []Option) (*options, error) {
	o := &options{maxDepth: defaultMaxDepth}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// MaxDepth returns an Option that sets the maximum nesting depth accepted
// by the parser. This helps prevent stack overflows on hostile input.
//
// The depth n must be a positive integer.
func MaxDepth(n int) Option {
	return func(o *options) error {
		if n <= 0 {
			return fmt.Errorf("uniparse: max depth must be a positive integer")
		}
		o.maxDepth = n
		return nil
	}
}

// Indent returns an Option that sets the number of spaces per nesting level
// when printing. Zero selects the grammar's own default.
func Indent(n int) Option {
	return func(o *options) error {
		if n < 0 {
			return fmt.Errorf("uniparse: indent must not be negative")
		}
		o.indent = n
		return nil
	}
}

// WithGrammar returns an Option that selects the grammar where it is not
// given explicitly or detected from a file name.
func WithGrammar(g Grammar) Option {
	return func(o *options) error {
		if _, err := lookup(g); err != nil {
			return err
		}
		o.grammar = g
		return nil
	}
}
