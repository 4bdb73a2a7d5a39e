package tree

import "strings"

// Kind identifies the variant of a Node.
type Kind int

const (
	KindString Kind = iota + 1
	KindBool
	KindBlock
	KindAssignment
	KindCall
	KindMultiArgs
	KindArray
)

var kindNames = map[Kind]string{
	KindString:     "string",
	KindBool:       "bool",
	KindBlock:      "block",
	KindAssignment: "assignment",
	KindCall:       "call",
	KindMultiArgs:  "multiargs",
	KindArray:      "array",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Node is an element of a Tree.
type Node interface {
	Kind() Kind
	node()
}

// String is a string literal, without its delimiters.
type String string

// Bool is a boolean literal.
type Bool bool

// Assignment is a right-hand side kept as verbatim source text.
type Assignment string

// Call is a function-style invocation with positional arguments.
type Call []Node

// Array is a list literal of strings.
type Array []string

// Block is a named scope holding an insertion-ordered mapping of entries.
type Block struct {
	Name string
	ordered
}

// MultiArgs is a function-style invocation with named arguments, kept in
// insertion order.
type MultiArgs struct {
	ordered
}

// NewBlock returns an empty Block with the given name.
func NewBlock(name string) *Block {
	return &Block{Name: name}
}

// NewMultiArgs returns an empty MultiArgs.
func NewMultiArgs() *MultiArgs {
	return &MultiArgs{}
}

func (String) Kind() Kind     { return KindString }
func (Bool) Kind() Kind       { return KindBool }
func (*Block) Kind() Kind     { return KindBlock }
func (Assignment) Kind() Kind { return KindAssignment }
func (Call) Kind() Kind       { return KindCall }
func (*MultiArgs) Kind() Kind { return KindMultiArgs }
func (Array) Kind() Kind      { return KindArray }

func (String) node()     {}
func (Bool) node()       {}
func (*Block) node()     {}
func (Assignment) node() {}
func (Call) node()       {}
func (*MultiArgs) node() {}
func (Array) node()      {}

// Text returns the assignment with surrounding quotes removed when the whole
// expression is a single quoted literal.
func (a Assignment) Text() string {
	s := strings.TrimSpace(string(a))
	if len(s) >= 2 {
		q := s[0]
		inner := s[1 : len(s)-1]
		if (q == '\'' || q == '"') && s[len(s)-1] == q && strings.IndexByte(inner, q) < 0 {
			return inner
		}
	}
	return s
}
