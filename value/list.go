/*
File   : minipylang/value/list.go
Package: value
*/
package value

import (
	"strconv"
	"strings"
)

// List is MiniPyLang's ordered, mutable, heterogeneous sequence type.
// It is always handled through a *List pointer so that assigning one
// variable to another (`b = a`) aliases the same backing storage,
// per spec.md §3's aliasing invariant — mutating through any alias is
// visible through every other alias.
type List struct {
	Elements []Value
}

func NewList(elements []Value) *List {
	return &List{Elements: elements}
}

func (l *List) Type() Kind { return ListKind }

// String renders `[e1, e2, ...]`; String elements are double-quoted,
// every other element uses its own String().
func (l *List) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, e := range l.Elements {
		if i > 0 {
			b.WriteString(", ")
		}
		if s, ok := e.(*String); ok {
			b.WriteString(strconv.Quote(s.Val))
		} else {
			b.WriteString(e.String())
		}
	}
	b.WriteByte(']')
	return b.String()
}

func (l *List) Inspect() string {
	var b strings.Builder
	b.WriteString("List[")
	for i, e := range l.Elements {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(e.Inspect())
	}
	b.WriteByte(']')
	return b.String()
}

// NormalizeIndex applies spec.md's negative-index normalisation
// (i<0 => i+len) and reports whether the resulting index is in bounds
// for a sequence of the given length.
func NormalizeIndex(i, length int) (int, bool) {
	if i < 0 {
		i += length
	}
	if i < 0 || i >= length {
		return 0, false
	}
	return i, true
}
