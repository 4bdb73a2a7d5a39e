// Package tree holds the typed document model shared by every grammar.
//
// A parsed document is a [Tree] whose root is an unnamed [Block]. Each Block
// maps keys to child [Node] values and remembers the order in which keys were
// inserted, so a printer enumerates entries in source order. Node is a closed
// union: the only implementations are [String], [Bool], [*Block],
// [Assignment], [Call], [*MultiArgs] and [Array]. Consumers switch on the
// concrete type, or on [Node.Kind].
//
// Nested values are addressed by a path, an ordered list of keys. Each key
// selects an entry of the current Block:
//
//	t.Get([]string{"plugins", "id"})
//	t.Set([]string{"plugins", "extra"}, tree.Bool(true))
//	t.Remove([]string{"plugins", "id"})
//
// Set and Remove never create intermediate blocks. They report failures as a
// [*PathError] wrapping one of [ErrMissingIntermediate], [ErrNotABlock],
// [ErrNotFound] or [ErrEmptyPath], and a failed call leaves the tree exactly
// as it was. Arrays are leaves: a path cannot index into one.
//
// Values handed out by Get and values stored by Set are deep copies, so the
// caller never holds an alias into the tree.
package tree
