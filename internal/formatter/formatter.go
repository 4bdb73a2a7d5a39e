// Package formatter provides the indenting writer shared by the grammar
// printers.
package formatter

import (
	"fmt"
	"io"
	"strings"
)

// Formatter writes indented lines to an output stream. The first write error
// is kept and every later write becomes a no-op, so printers check Err once
// at the end.
type Formatter struct {
	w      io.Writer
	indent string
	depth  int
	err    error
}

// New returns a new formatter that writes to w, indenting each level with
// indent.
func New(w io.Writer, indent string) *Formatter {
	return &Formatter{w: w, indent: indent}
}

// Spaces returns an indent of n spaces.
func Spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

// Indent increases the nesting depth by one level.
func (f *Formatter) Indent() { f.depth++ }

// Dedent decreases the nesting depth by one level.
func (f *Formatter) Dedent() {
	if f.depth > 0 {
		f.depth--
	}
}

// Depth returns the current nesting depth.
func (f *Formatter) Depth() int { return f.depth }

// WriteIndent writes the indent for the current depth.
func (f *Formatter) WriteIndent() {
	if f.indent == "" {
		return
	}
	for i := 0; i < f.depth; i++ {
		f.WriteString(f.indent)
	}
}

// WriteString writes s unless an earlier write failed.
func (f *Formatter) WriteString(s string) {
	if f.err != nil {
		return
	}
	_, f.err = io.WriteString(f.w, s)
}

// Printf writes a formatted string.
func (f *Formatter) Printf(format string, args ...any) {
	f.WriteString(fmt.Sprintf(format, args...))
}

// Line writes the indent, the parts and a newline.
func (f *Formatter) Line(parts ...string) {
	f.WriteIndent()
	for _, p := range parts {
		f.WriteString(p)
	}
	f.WriteString("\n")
}

// Newline writes an empty line.
func (f *Formatter) Newline() {
	f.WriteString("\n")
}

// Fail records err as the formatter's error unless one is already set.
func (f *Formatter) Fail(err error) {
	if f.err == nil {
		f.err = err
	}
}

// Err returns the first error recorded by a write or by Fail.
func (f *Formatter) Err() error {
	return f.err
}
