package tree

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyPath is returned by Set and Remove when the path has no segments.
	ErrEmptyPath = errors.New("empty path")
	// ErrMissingIntermediate is returned when a non-final segment is absent.
	ErrMissingIntermediate = errors.New("missing intermediate block")
	// ErrNotABlock is returned when a non-final segment resolves to a value
	// that is not a Block.
	ErrNotABlock = errors.New("not a block")
	// ErrNotFound is returned by Remove when the final segment is absent.
	ErrNotFound = errors.New("not found")
	// ErrNilNode is returned by Set when the value is nil.
	ErrNilNode = errors.New("nil node")
)

// PathError records a failed path operation and the segment where it stopped.
type PathError struct {
	Op    string
	Path  []string
	Index int
	Err   error
}

func (e *PathError) Error() string {
	p := strings.Join(e.Path, ".")
	if e.Index >= 0 && e.Index < len(e.Path) {
		return fmt.Sprintf("%s %s: segment %q: %v", e.Op, p, e.Path[e.Index], e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, p, e.Err)
}

func (e *PathError) Unwrap() error { return e.Err }
