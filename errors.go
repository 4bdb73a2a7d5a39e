package uniparse

import (
	"errors"
	"reflect"
)

// ErrNoGrammar is returned when an operation needs a grammar and none was
// given or detected.
var ErrNoGrammar = errors.New("uniparse: no grammar selected")

// UnknownGrammarError reports a grammar name or file name that matches no
// supported grammar.
type UnknownGrammarError struct {
	Name string
	File string
}

func (e *UnknownGrammarError) Error() string {
	if e.File != "" {
		return "uniparse: cannot detect grammar of " + e.File
	}
	return "uniparse: unknown grammar " + e.Name
}

// A DecodeError represents a failure to project a node onto a Go value.
type DecodeError struct {
	Type reflect.Type
	Err  error
}

func (e *DecodeError) Error() string {
	name := "nil"
	if e.Type != nil {
		name = e.Type.String()
	}
	return "uniparse: cannot decode into " + name + ": " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error { return e.Err }
