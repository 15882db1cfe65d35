/*
File   : minipylang/value/value.go
Package: value

Package value defines MiniPyLang's closed tagged-value union: the
runtime representation every expression evaluates to. Every case
implements the Value interface, mirroring the teacher's
GetType/ToString/ToObject convention (renamed here to Type/String/Inspect
to match Go's fmt.Stringer idiom while keeping the same two-tier
"display form" vs "debug form" split).
*/
package value

import (
	"fmt"
	"strconv"
)

// Kind is the closed set of value cases in MiniPyLang (spec.md §3).
type Kind string

const (
	IntegerKind Kind = "int"
	FloatKind   Kind = "float"
	BooleanKind Kind = "bool"
	StringKind  Kind = "string"
	ListKind    Kind = "list"
	DictKind    Kind = "dict"
	NullKind    Kind = "null"
)

// Value is the interface every MiniPyLang runtime value implements.
type Value interface {
	// Type reports which case of the tagged union this value is.
	Type() Kind
	// String returns the canonical str()-rendering of the value
	// (spec.md §4.3's "Type coercion built-ins" table).
	String() string
	// Inspect returns a debug-oriented representation; print and str()
	// never use it.
	Inspect() string
}

// Integer is an arbitrary-width-enough (int64) signed integer.
type Integer struct{ Val int64 }

func (i *Integer) Type() Kind      { return IntegerKind }
func (i *Integer) String() string  { return fmt.Sprintf("%d", i.Val) }
func (i *Integer) Inspect() string { return fmt.Sprintf("Integer(%d)", i.Val) }

// Float is an IEEE-754 double.
type Float struct{ Val float64 }

func (f *Float) Type() Kind { return FloatKind }

// String renders a whole-valued float with a trailing ".0" (4.0 -> "4.0")
// and any other value in its shortest plain decimal form (2.5 -> "2.5").
func (f *Float) String() string {
	if f.Val == float64(int64(f.Val)) {
		return fmt.Sprintf("%d.0", int64(f.Val))
	}
	return strconv.FormatFloat(f.Val, 'f', -1, 64)
}
func (f *Float) Inspect() string { return fmt.Sprintf("Float(%s)", f.String()) }

// Boolean is a two-valued truth value.
type Boolean struct{ Val bool }

func (b *Boolean) Type() Kind { return BooleanKind }
func (b *Boolean) String() string {
	if b.Val {
		return "true"
	}
	return "false"
}
func (b *Boolean) Inspect() string { return fmt.Sprintf("Boolean(%s)", b.String()) }

// String is an immutable sequence of characters.
type String struct{ Val string }

func (s *String) Type() Kind      { return StringKind }
func (s *String) String() string  { return s.Val }
func (s *String) Inspect() string { return fmt.Sprintf("String(%q)", s.Val) }

// Null is the sentinel produced by statements; never directly
// constructible from MiniPyLang source (spec.md §3).
type Null struct{}

func (n *Null) Type() Kind      { return NullKind }
func (n *Null) String() string  { return "null" }
func (n *Null) Inspect() string { return "Null" }

// NullValue is the single shared Null instance; Null carries no state
// so every call site can share it instead of allocating.
var NullValue = &Null{}
