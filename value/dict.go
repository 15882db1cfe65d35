/*
File   : minipylang/value/dict.go
Package: value
*/
package value

import (
	"fmt"
	"strings"
)

// Dict is MiniPyLang's keyed map type: insertion-ordered, mutable, and
// restricted to String/Integer/Float/Boolean keys (spec.md §3). Like
// List it is always handled through a *Dict pointer for reference
// (aliasing) semantics.
type Dict struct {
	keys   []Value        // insertion-ordered original key values
	values []Value        // values[i] corresponds to keys[i]
	index  map[string]int // encoded key -> slot in keys/values
}

// NewDict creates an empty Dict ready for insertion.
func NewDict() *Dict {
	return &Dict{index: make(map[string]int)}
}

func (d *Dict) Type() Kind { return DictKind }

func (d *Dict) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, k := range d.keys {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(k.String())
		b.WriteString(": ")
		b.WriteString(d.values[i].String())
	}
	b.WriteByte('}')
	return b.String()
}

func (d *Dict) Inspect() string {
	var b strings.Builder
	b.WriteString("Dict{")
	for i, k := range d.keys {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(k.Inspect())
		b.WriteString(": ")
		b.WriteString(d.values[i].Inspect())
	}
	b.WriteByte('}')
	return b.String()
}

// EncodeKey canonicalises a hashable Value into the string used to
// index Dict.index. Integer and whole-valued Float keys share an
// encoding so that, consistent with spec.md §3 invariant (c) (numeric
// cases cross-compare by value), d[2] and d[2.0] address the same slot.
func EncodeKey(v Value) (string, error) {
	switch k := v.(type) {
	case *Integer:
		return fmt.Sprintf("i:%d", k.Val), nil
	case *Float:
		if k.Val == float64(int64(k.Val)) {
			return fmt.Sprintf("i:%d", int64(k.Val)), nil
		}
		return fmt.Sprintf("f:%v", k.Val), nil
	case *Boolean:
		return fmt.Sprintf("b:%t", k.Val), nil
	case *String:
		return fmt.Sprintf("s:%s", k.Val), nil
	default:
		return "", fmt.Errorf("unhashable key type: %s", v.Type())
	}
}

// Get looks up a key, returning its value and whether it was present.
func (d *Dict) Get(key Value) (Value, bool, error) {
	enc, err := EncodeKey(key)
	if err != nil {
		return nil, false, err
	}
	idx, ok := d.index[enc]
	if !ok {
		return nil, false, nil
	}
	return d.values[idx], true, nil
}

// Set inserts or overwrites a key, preserving insertion order of
// first-time keys (spec.md §3).
func (d *Dict) Set(key, val Value) error {
	enc, err := EncodeKey(key)
	if err != nil {
		return err
	}
	if idx, ok := d.index[enc]; ok {
		d.values[idx] = val
		return nil
	}
	d.index[enc] = len(d.keys)
	d.keys = append(d.keys, key)
	d.values = append(d.values, val)
	return nil
}

// Delete removes a key, returning the removed value and whether it was
// present. Deleting preserves the relative insertion order of the
// remaining keys.
func (d *Dict) Delete(key Value) (Value, bool, error) {
	enc, err := EncodeKey(key)
	if err != nil {
		return nil, false, err
	}
	idx, ok := d.index[enc]
	if !ok {
		return nil, false, nil
	}
	removed := d.values[idx]
	d.keys = append(d.keys[:idx], d.keys[idx+1:]...)
	d.values = append(d.values[:idx], d.values[idx+1:]...)
	delete(d.index, enc)
	for k, i := range d.index {
		if i > idx {
			d.index[k] = i - 1
		}
	}
	return removed, true, nil
}

// Keys returns the keys in insertion order.
func (d *Dict) Keys() []Value { return append([]Value(nil), d.keys...) }

// Values returns the values in insertion order, parallel to Keys().
func (d *Dict) Values() []Value { return append([]Value(nil), d.values...) }

// Len reports the number of key/value pairs.
func (d *Dict) Len() int { return len(d.keys) }
