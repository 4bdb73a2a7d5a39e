package tree

import "slices"

// Equal reports whether a and b are structurally equal: same variants, same
// values, and for Block and MultiArgs the same keys in the same order.
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch x := a.(type) {
	case String:
		y, ok := b.(String)
		return ok && x == y
	case Bool:
		y, ok := b.(Bool)
		return ok && x == y
	case Assignment:
		y, ok := b.(Assignment)
		return ok && x == y
	case Array:
		y, ok := b.(Array)
		return ok && slices.Equal(x, y)
	case Call:
		y, ok := b.(Call)
		return ok && slices.EqualFunc(x, y, Equal)
	case *Block:
		y, ok := b.(*Block)
		return ok && x.Name == y.Name && equalEntries(&x.ordered, &y.ordered)
	case *MultiArgs:
		y, ok := b.(*MultiArgs)
		return ok && equalEntries(&x.ordered, &y.ordered)
	default:
		return false
	}
}

func equalEntries(a, b *ordered) bool {
	if !slices.Equal(a.keys, b.keys) {
		return false
	}
	for _, k := range a.keys {
		if !Equal(a.values[k], b.values[k]) {
			return false
		}
	}
	return true
}

// Equal reports whether two trees have structurally equal roots.
func (t *Tree) Equal(other *Tree) bool {
	if t == nil || other == nil {
		return t == other
	}
	return Equal(t.Root, other.Root)
}

// Clone returns a deep copy of n.
func Clone(n Node) Node {
	switch x := n.(type) {
	case Array:
		if x == nil {
			return x
		}
		return slices.Clone(x)
	case Call:
		if x == nil {
			return x
		}
		out := make(Call, len(x))
		for i, arg := range x {
			out[i] = Clone(arg)
		}
		return out
	case *Block:
		if x == nil {
			return x
		}
		out := NewBlock(x.Name)
		for k, v := range x.All() {
			out.Set(k, Clone(v))
		}
		return out
	case *MultiArgs:
		if x == nil {
			return x
		}
		out := NewMultiArgs()
		for k, v := range x.All() {
			out.Set(k, Clone(v))
		}
		return out
	default:
		return n
	}
}

// Clone returns a deep copy of t.
func (t *Tree) Clone() *Tree {
	if t == nil || t.Root == nil {
		return New()
	}
	return &Tree{Root: Clone(t.Root).(*Block)}
}
