// Package zon reads and writes Zig object notation, the format of
// build.zig.zon package manifests.
//
// A document is an anonymous struct literal. Fields become entries of a
// [tree.Block] and a literal holding only strings becomes a [tree.Array].
// Enum literals, numbers and other bare words are kept as [tree.Assignment]
// text.
package zon
