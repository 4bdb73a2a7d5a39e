/*
Package uniparse parses small configuration languages into a typed tree,
gives structured read and write access to nested fields by path, and prints
the tree back in the original syntax.

Three grammars share one engine: Gradle build scripts, Zig object notation
(build.zig.zon) and go.mod manifests. Every grammar produces a *tree.Tree
whose nodes are drawn from the closed set in package tree, and every grammar
prints such a tree back. A parse, mutate, print cycle keeps values and entry
order but normalizes whitespace and drops comments.

Example of editing a build script:

	t, err := uniparse.Parse(uniparse.Gradle, []byte("plugins { id 'groovy' }"))
	if err != nil {
		// handle error
	}
	if err := t.Set([]string{"plugins", "extra"}, tree.Bool(true)); err != nil {
		// handle error
	}
	out, err := uniparse.Render(uniparse.Gradle, t)
	// out is "plugins {\n    id 'groovy'\n    extra true\n}\n"

Files can be read and written with the grammar detected from the file name:

	t, g, err := uniparse.ParseFile("go.mod")
	...
	err = uniparse.WriteFile("go.mod", g, t)

A parsed block can be projected onto a Go struct with DecodeNode, or with
Unmarshal straight from source. Fields are matched by the `uniparse` struct
tag:

	type Manifest struct {
		Module  string         `uniparse:"module"`
		Go      string         `uniparse:"go"`
		Require map[string]any `uniparse:"require"`
	}

	var m Manifest
	err := uniparse.Unmarshal(src, &m, uniparse.WithGrammar(uniparse.GoMod))

Parse errors are typed values from package errors (LexError, ParseError and
UnsupportedConstructError) and carry the line where parsing stopped. Path
errors are *tree.PathError values; a failed path operation leaves the tree
unchanged.
*/
package uniparse
