package tree

import "slices"

// Tree is a parsed document.
type Tree struct {
	Root *Block
}

// New returns a Tree with an empty root block.
func New() *Tree {
	return &Tree{Root: NewBlock("")}
}

// Get returns a copy of the node at path. An empty path selects the root.
// Get reports false when a segment is absent or when the walk reaches a
// value that is not a Block before the path is exhausted.
func (t *Tree) Get(path []string) (Node, bool) {
	n, ok := t.lookup(path)
	if !ok {
		return nil, false
	}
	return Clone(n), true
}

// Contains reports whether Get(path) would succeed.
func (t *Tree) Contains(path []string) bool {
	_, ok := t.lookup(path)
	return ok
}

// Set stores a copy of n at path, replacing any prior value. Every segment
// but the last must already resolve to a Block. A Block value takes the name
// of the final segment.
func (t *Tree) Set(path []string, n Node) error {
	if n == nil {
		return &PathError{Op: "set", Path: slices.Clone(path), Index: -1, Err: ErrNilNode}
	}
	parent, err := t.parent("set", path)
	if err != nil {
		return err
	}
	key := path[len(path)-1]
	n = Clone(n)
	if b, ok := n.(*Block); ok {
		b.Name = key
	}
	parent.Set(key, n)
	return nil
}

// Remove deletes the node at path and returns it.
func (t *Tree) Remove(path []string) (Node, error) {
	parent, err := t.parent("remove", path)
	if err != nil {
		return nil, err
	}
	key := path[len(path)-1]
	n, ok := parent.Delete(key)
	if !ok {
		return nil, &PathError{Op: "remove", Path: slices.Clone(path), Index: len(path) - 1, Err: ErrNotFound}
	}
	return n, nil
}

func (t *Tree) lookup(path []string) (Node, bool) {
	if t == nil || t.Root == nil {
		return nil, false
	}
	var cur Node = t.Root
	for _, seg := range path {
		b, ok := cur.(*Block)
		if !ok {
			return nil, false
		}
		if cur, ok = b.Get(seg); !ok {
			return nil, false
		}
	}
	return cur, true
}

// parent resolves every segment of path but the last to the Block that owns
// the final key. Nothing is modified.
func (t *Tree) parent(op string, path []string) (*Block, error) {
	if len(path) == 0 {
		return nil, &PathError{Op: op, Path: []string{}, Index: -1, Err: ErrEmptyPath}
	}
	if t.Root == nil {
		t.Root = NewBlock("")
	}
	cur := t.Root
	for i, seg := range path[:len(path)-1] {
		n, ok := cur.Get(seg)
		if !ok {
			return nil, &PathError{Op: op, Path: slices.Clone(path), Index: i, Err: ErrMissingIntermediate}
		}
		b, ok := n.(*Block)
		if !ok {
			return nil, &PathError{Op: op, Path: slices.Clone(path), Index: i, Err: ErrNotABlock}
		}
		cur = b
	}
	return cur, nil
}
