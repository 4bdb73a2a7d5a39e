package uniparse

import (
	"io"

	"github.com/pixelacme/uniparse/tree"
)

// Encoder writes trees to an output stream.
type Encoder struct {
	w    io.Writer
	opts []Option
}

// NewEncoder returns a new encoder that writes to w. The grammar must be
// selected with WithGrammar.
func NewEncoder(w io.Writer, opts ...Option) *Encoder {
	return &Encoder{w: w, opts: opts}
}

// Encode writes t to the stream.
func (e *Encoder) Encode(t *tree.Tree) error {
	o, err := newOptions(e.opts)
	if err != nil {
		return err
	}
	if o.grammar == 0 {
		return ErrNoGrammar
	}
	return grammars[o.grammar].print(e.w, t, o)
}
