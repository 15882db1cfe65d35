/*
File   : minipylang/value/ops.go
Package: value

Helpers shared by the interpreter's operator dispatch: truthiness,
structural equality, and numeric/lexicographic ordering. Kept here
rather than in eval so that both the interpreter and the printer/tests
can use the exact same semantics spec.md §3/§4.3 define.
*/
package value

// Truthy implements spec.md §4.3's truthiness rule: Boolean false,
// integer 0, float 0.0, empty string, empty list, empty dict are
// false; every other value is true.
func Truthy(v Value) bool {
	switch t := v.(type) {
	case *Boolean:
		return t.Val
	case *Integer:
		return t.Val != 0
	case *Float:
		return t.Val != 0
	case *String:
		return len(t.Val) > 0
	case *List:
		return len(t.Elements) > 0
	case *Dict:
		return t.Len() > 0
	case *Null:
		return false
	default:
		return true
	}
}

// numeric reports a Value's float64 numeric form, if it has one.
func numeric(v Value) (float64, bool) {
	switch t := v.(type) {
	case *Integer:
		return float64(t.Val), true
	case *Float:
		return t.Val, true
	}
	return 0, false
}

// Equal implements spec.md §3's structural equality: same case and
// structurally equal (lists elementwise in order; dicts as unordered
// key->value mappings with equal entries; Integer/Float cross-compare
// numerically).
func Equal(a, b Value) bool {
	if an, aok := numeric(a); aok {
		if bn, bok := numeric(b); bok {
			return an == bn
		}
		return false
	}

	switch at := a.(type) {
	case *Boolean:
		bt, ok := b.(*Boolean)
		return ok && at.Val == bt.Val
	case *String:
		bt, ok := b.(*String)
		return ok && at.Val == bt.Val
	case *Null:
		_, ok := b.(*Null)
		return ok
	case *List:
		bt, ok := b.(*List)
		if !ok || len(at.Elements) != len(bt.Elements) {
			return false
		}
		for i := range at.Elements {
			if !Equal(at.Elements[i], bt.Elements[i]) {
				return false
			}
		}
		return true
	case *Dict:
		bt, ok := b.(*Dict)
		if !ok || at.Len() != bt.Len() {
			return false
		}
		for i, k := range at.keys {
			bv, found, err := bt.Get(k)
			if err != nil || !found || !Equal(at.values[i], bv) {
				return false
			}
		}
		return true
	}
	return false
}

// Compare implements spec.md §4.3's ordering operators: numeric pairs
// compare by value, (String,String) compares lexicographically. The
// bool result is false when the pair is not orderable.
func Compare(a, b Value) (int, bool) {
	if an, aok := numeric(a); aok {
		if bn, bok := numeric(b); bok {
			switch {
			case an < bn:
				return -1, true
			case an > bn:
				return 1, true
			default:
				return 0, true
			}
		}
		return 0, false
	}
	as, aok := a.(*String)
	bs, bok := b.(*String)
	if aok && bok {
		switch {
		case as.Val < bs.Val:
			return -1, true
		case as.Val > bs.Val:
			return 1, true
		default:
			return 0, true
		}
	}
	return 0, false
}

// IsNumeric reports whether v is an Integer or a Float.
func IsNumeric(v Value) bool {
	_, ok := numeric(v)
	return ok
}
