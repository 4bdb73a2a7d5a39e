// Package gomod reads and writes go.mod module manifests.
//
// The module, go and toolchain directives become string entries of the root
// block. Every require directive, in single-line or parenthesized form, is
// merged into one "require" block keyed by module path:
//
//	require (
//		github.com/spf13/cobra v1.10.2
//		golang.org/x/sys v0.39.0 // indirect
//	)
//
// A direct requirement maps to its version string. An indirect one maps to
// named arguments {"version": ..., "indirect": true}.
//
// The module and go directives are required. The replace, exclude, retract,
// godebug, tool and ignore directives are recognized but not supported; a
// manifest using them fails to parse, so a rewrite can never drop them.
package gomod
