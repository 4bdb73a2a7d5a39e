package uniparse

import (
	"fmt"
	"io"
	"reflect"

	"github.com/go-viper/mapstructure/v2"
	"github.com/pixelacme/uniparse/tree"
)

// TagName is the struct tag read by DecodeNode and Unmarshal.
const TagName = "uniparse"

// Decoder reads and parses documents from an input stream.
type Decoder struct {
	r    io.Reader
	opts []Option
}

// NewDecoder returns a new decoder that reads from r. The grammar must be
// selected with WithGrammar.
//
// The decoder reads the whole of r before parsing. It is the caller's
// responsibility to call Close on r if required.
func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	return &Decoder{r: r, opts: opts}
}

// Tree reads the input and parses it into a Tree.
func (d *Decoder) Tree() (*tree.Tree, error) {
	if d.r == nil {
		return nil, fmt.Errorf("uniparse: Decode(nil reader)")
	}
	o, err := newOptions(d.opts)
	if err != nil {
		return nil, err
	}
	if o.grammar == 0 {
		return nil, ErrNoGrammar
	}
	data, err := io.ReadAll(d.r)
	if err != nil {
		return nil, err
	}
	return grammars[o.grammar].parse(data, o)
}

// Decode reads the input, parses it and stores the root block in the value
// pointed to by v. See DecodeNode for the projection rules.
func (d *Decoder) Decode(v any) error {
	t, err := d.Tree()
	if err != nil {
		return err
	}
	return DecodeNode(t.Root, v)
}

// Unmarshal parses data in the grammar selected with WithGrammar and stores
// the root block in the value pointed to by v.
func Unmarshal(data []byte, v any, opts ...Option) error {
	o, err := newOptions(opts)
	if err != nil {
		return err
	}
	if o.grammar == 0 {
		return ErrNoGrammar
	}
	t, err := grammars[o.grammar].parse(data, o)
	if err != nil {
		return err
	}
	return DecodeNode(t.Root, v)
}

// DecodeNode projects n onto the value pointed to by v.
//
// Blocks and named arguments decode like maps, into structs or maps. Struct
// fields are matched by their `uniparse:"name"` tag, or by name ignoring case.
// Calls and arrays decode into slices, and assignments decode as their text
// with surrounding quotes removed. Input is weakly typed, so the string
// "true" decodes into a bool and "17" into an int.
func DecodeNode(n tree.Node, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return &DecodeError{Type: reflect.TypeOf(v), Err: fmt.Errorf("non-pointer or nil target")}
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           v,
		TagName:          TagName,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return &DecodeError{Type: rv.Type(), Err: err}
	}
	if err := dec.Decode(tree.Interface(n)); err != nil {
		return &DecodeError{Type: rv.Type(), Err: err}
	}
	return nil
}
