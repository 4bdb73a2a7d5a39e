package tree

import (
	"bytes"
	"encoding/json"
)

// Interface converts n into plain Go values for schema-aware consumers.
// Block and MultiArgs become map[string]any, Call and Array become []any,
// and an Assignment becomes its text with surrounding quotes removed.
func Interface(n Node) any {
	switch x := n.(type) {
	case String:
		return string(x)
	case Bool:
		return bool(x)
	case Assignment:
		return x.Text()
	case Array:
		out := make([]any, len(x))
		for i, s := range x {
			out[i] = s
		}
		return out
	case Call:
		out := make([]any, len(x))
		for i, arg := range x {
			out[i] = Interface(arg)
		}
		return out
	case *Block:
		return entriesInterface(&x.ordered)
	case *MultiArgs:
		return entriesInterface(&x.ordered)
	default:
		return nil
	}
}

func entriesInterface(o *ordered) map[string]any {
	m := make(map[string]any, o.Len())
	for k, v := range o.All() {
		m[k] = Interface(v)
	}
	return m
}

// MarshalJSON encodes the block as a JSON object with keys in insertion order.
func (b *Block) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := writeEntriesJSON(&buf, &b.ordered); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalJSON encodes the arguments as a JSON object with keys in insertion
// order.
func (m *MultiArgs) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := writeEntriesJSON(&buf, &m.ordered); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeEntriesJSON(buf *bytes.Buffer, o *ordered) error {
	buf.WriteByte('{')
	i := 0
	for k, v := range o.All() {
		if i > 0 {
			buf.WriteByte(',')
		}
		i++
		key, err := json.Marshal(k)
		if err != nil {
			return err
		}
		buf.Write(key)
		buf.WriteByte(':')
		if err := writeJSON(buf, v); err != nil {
			return err
		}
	}
	buf.WriteByte('}')
	return nil
}

func writeJSON(buf *bytes.Buffer, n Node) error {
	switch x := n.(type) {
	case *Block:
		return writeEntriesJSON(buf, &x.ordered)
	case *MultiArgs:
		return writeEntriesJSON(buf, &x.ordered)
	case Call:
		buf.WriteByte('[')
		for i, arg := range x {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, arg); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil
	default:
		data, err := json.Marshal(Interface(n))
		if err != nil {
			return err
		}
		buf.Write(data)
		return nil
	}
}
