// Package errors defines the error kinds reported while lexing, parsing and
// printing documents. Every kind carries enough context to be reported to a
// user without further decoration, and callers distinguish them with
// errors.As from the standard library.
package errors

import "fmt"

// LexError reports a malformed token.
type LexError struct {
	Line    int
	Message string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("uniparse: lexical error at line %d: %s", e.Line, e.Message)
}

// ParseError reports an unexpected token, or a required field that is
// absent. For a missing field, Field names it and Line is zero.
type ParseError struct {
	Line     int
	Expected string
	Found    string
	Field    string
}

func (e *ParseError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("uniparse: missing required field %q", e.Field)
	}
	return fmt.Sprintf("uniparse: parse error at line %d: expected %s, found %s", e.Line, e.Expected, e.Found)
}

// MissingField returns the ParseError for an absent required field.
func MissingField(name string) *ParseError {
	return &ParseError{Field: name, Expected: name}
}

// UnsupportedConstructError reports a grammar feature that is recognized but
// not handled, either while parsing (Line > 0) or while printing a value that
// has no surface form in the grammar (Line == 0).
type UnsupportedConstructError struct {
	Grammar   string
	Construct string
	Line      int
}

func (e *UnsupportedConstructError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("uniparse: %s: unsupported construct at line %d: %s", e.Grammar, e.Line, e.Construct)
	}
	return fmt.Sprintf("uniparse: %s: unsupported construct: %s", e.Grammar, e.Construct)
}
