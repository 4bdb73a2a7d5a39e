package tree

import (
	"iter"
	"slices"
)

// ordered is a string-keyed map that remembers insertion order. The zero
// value is ready to use.
type ordered struct {
	keys   []string
	values map[string]Node
}

// Get returns the entry stored under key.
func (o *ordered) Get(key string) (Node, bool) {
	n, ok := o.values[key]
	return n, ok
}

// Has reports whether key is present.
func (o *ordered) Has(key string) bool {
	_, ok := o.values[key]
	return ok
}

// Set stores n under key. A new key is appended; an existing key keeps its
// position and has its value replaced.
func (o *ordered) Set(key string, n Node) {
	if o.values == nil {
		o.values = make(map[string]Node)
	}
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = n
}

// Delete removes key and returns its prior value.
func (o *ordered) Delete(key string) (Node, bool) {
	n, ok := o.values[key]
	if !ok {
		return nil, false
	}
	delete(o.values, key)
	if i := slices.Index(o.keys, key); i >= 0 {
		o.keys = slices.Delete(o.keys, i, i+1)
	}
	return n, true
}

// Keys returns the keys in insertion order.
func (o *ordered) Keys() []string {
	return slices.Clone(o.keys)
}

// Len returns the number of entries.
func (o *ordered) Len() int {
	return len(o.keys)
}

// All iterates over the entries in insertion order.
func (o *ordered) All() iter.Seq2[string, Node] {
	return func(yield func(string, Node) bool) {
		for _, k := range o.keys {
			if !yield(k, o.values[k]) {
				return
			}
		}
	}
}
