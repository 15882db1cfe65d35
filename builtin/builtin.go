/*
File   : minipylang/builtin/builtin.go
Package: builtin

Package builtin implements MiniPyLang's built-in function surface
(type coercion: str/int/float/bool/len; aggregates: append/remove/
keys/values/has_key/del_key; and input). It is grounded on the
teacher's std.Builtin registry (eval/evaluator.go: Builtins map,
InvokeBuiltin), simplified to match the fixed, small builtin set this
language exposes — no user-registrable builtins, no method-call dot
syntax.
*/
package builtin

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/akashmaji946/minipylang/value"
)

// Runtime is the host capability a builtin needs beyond its arguments:
// input() reads a line from a buffered reader and writes its prompt to
// an output writer (spec.md §4.3's `input(prompt)` contract).
type Runtime struct {
	Out io.Writer
	In  *bufio.Reader
}

// Error is a builtin-call failure. The interpreter wraps it with a
// line number to build a RuntimeError.
type Error struct{ Message string }

func (e *Error) Error() string { return e.Message }

func errf(format string, a ...interface{}) error {
	return &Error{Message: fmt.Sprintf(format, a...)}
}

// Func is the signature every registered builtin implements.
type Func func(rt *Runtime, args []value.Value) (value.Value, error)

// Registry maps a builtin name to its implementation and the exact
// argument count it requires.
var Registry = map[string]struct {
	Arity int
	Fn    Func
}{
	"str":     {1, builtinStr},
	"int":     {1, builtinInt},
	"float":   {1, builtinFloat},
	"bool":    {1, builtinBool},
	"len":     {1, builtinLen},
	"append":  {2, builtinAppend},
	"remove":  {2, builtinRemove},
	"keys":    {1, builtinKeys},
	"values":  {1, builtinValues},
	"has_key": {2, builtinHasKey},
	"del_key": {2, builtinDelKey},
	"input":   {1, builtinInput},
}

// Lookup reports whether name is a registered builtin and, if so, its
// required argument count.
func Lookup(name string) (int, bool) {
	e, ok := Registry[name]
	return e.Arity, ok
}

// Call dispatches to a registered builtin, checking arity first.
func Call(rt *Runtime, name string, args []value.Value) (value.Value, error) {
	e, ok := Registry[name]
	if !ok {
		return nil, errf("unknown function: %s", name)
	}
	if len(args) != e.Arity {
		return nil, errf("%s expects %d argument(s), got %d", name, e.Arity, len(args))
	}
	return e.Fn(rt, args)
}

func builtinStr(_ *Runtime, args []value.Value) (value.Value, error) {
	return &value.String{Val: args[0].String()}, nil
}

func builtinInt(_ *Runtime, args []value.Value) (value.Value, error) {
	switch v := args[0].(type) {
	case *value.Integer:
		return &value.Integer{Val: v.Val}, nil
	case *value.Float:
		return &value.Integer{Val: int64(v.Val)}, nil
	case *value.Boolean:
		if v.Val {
			return &value.Integer{Val: 1}, nil
		}
		return &value.Integer{Val: 0}, nil
	case *value.String:
		n, err := strconv.ParseInt(strings.TrimSpace(v.Val), 10, 64)
		if err != nil {
			return nil, errf("invalid literal for int(): %q", v.Val)
		}
		return &value.Integer{Val: n}, nil
	case *value.List:
		return &value.Integer{Val: int64(len(v.Elements))}, nil
	case *value.Dict:
		return &value.Integer{Val: int64(v.Len())}, nil
	default:
		return nil, errf("int() not supported for %s", args[0].Type())
	}
}

func builtinFloat(_ *Runtime, args []value.Value) (value.Value, error) {
	switch v := args[0].(type) {
	case *value.Integer:
		return &value.Float{Val: float64(v.Val)}, nil
	case *value.Float:
		return &value.Float{Val: v.Val}, nil
	case *value.Boolean:
		if v.Val {
			return &value.Float{Val: 1}, nil
		}
		return &value.Float{Val: 0}, nil
	case *value.String:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.Val), 64)
		if err != nil {
			return nil, errf("invalid literal for float(): %q", v.Val)
		}
		return &value.Float{Val: f}, nil
	default:
		return nil, errf("float() not supported for %s", args[0].Type())
	}
}

func builtinBool(_ *Runtime, args []value.Value) (value.Value, error) {
	return &value.Boolean{Val: value.Truthy(args[0])}, nil
}

func builtinLen(_ *Runtime, args []value.Value) (value.Value, error) {
	switch v := args[0].(type) {
	case *value.String:
		return &value.Integer{Val: int64(utf8.RuneCountInString(v.Val))}, nil
	case *value.List:
		return &value.Integer{Val: int64(len(v.Elements))}, nil
	case *value.Dict:
		return &value.Integer{Val: int64(v.Len())}, nil
	default:
		return nil, errf("len() not supported for %s", args[0].Type())
	}
}

func builtinAppend(_ *Runtime, args []value.Value) (value.Value, error) {
	list, ok := args[0].(*value.List)
	if !ok {
		return nil, errf("append() first argument must be a List, got %s", args[0].Type())
	}
	list.Elements = append(list.Elements, args[1])
	return value.NullValue, nil
}

func builtinRemove(_ *Runtime, args []value.Value) (value.Value, error) {
	list, ok := args[0].(*value.List)
	if !ok {
		return nil, errf("remove() first argument must be a List, got %s", args[0].Type())
	}
	idxVal, ok := args[1].(*value.Integer)
	if !ok {
		return nil, errf("remove() index must be an Integer, got %s", args[1].Type())
	}
	idx, ok := value.NormalizeIndex(int(idxVal.Val), len(list.Elements))
	if !ok {
		return nil, errf("index out of range: %d", idxVal.Val)
	}
	removed := list.Elements[idx]
	list.Elements = append(list.Elements[:idx], list.Elements[idx+1:]...)
	return removed, nil
}

func builtinKeys(_ *Runtime, args []value.Value) (value.Value, error) {
	dict, ok := args[0].(*value.Dict)
	if !ok {
		return nil, errf("keys() argument must be a Dict, got %s", args[0].Type())
	}
	return value.NewList(dict.Keys()), nil
}

func builtinValues(_ *Runtime, args []value.Value) (value.Value, error) {
	dict, ok := args[0].(*value.Dict)
	if !ok {
		return nil, errf("values() argument must be a Dict, got %s", args[0].Type())
	}
	return value.NewList(dict.Values()), nil
}

func builtinHasKey(_ *Runtime, args []value.Value) (value.Value, error) {
	dict, ok := args[0].(*value.Dict)
	if !ok {
		return nil, errf("has_key() first argument must be a Dict, got %s", args[0].Type())
	}
	_, found, err := dict.Get(args[1])
	if err != nil {
		return nil, errf("%s", err)
	}
	return &value.Boolean{Val: found}, nil
}

func builtinDelKey(_ *Runtime, args []value.Value) (value.Value, error) {
	dict, ok := args[0].(*value.Dict)
	if !ok {
		return nil, errf("del_key() first argument must be a Dict, got %s", args[0].Type())
	}
	removed, found, err := dict.Delete(args[1])
	if err != nil {
		return nil, errf("%s", err)
	}
	if !found {
		return nil, errf("Key not found: %s", args[1].String())
	}
	return removed, nil
}

// builtinInput writes its prompt with no trailing newline, then reads
// one line from the runtime's input stream, stripping the newline
// (spec.md §4.3's `input(prompt)` contract).
func builtinInput(rt *Runtime, args []value.Value) (value.Value, error) {
	prompt, ok := args[0].(*value.String)
	if !ok {
		return nil, errf("input() prompt must be a String, got %s", args[0].Type())
	}
	if rt.Out != nil {
		fmt.Fprint(rt.Out, prompt.Val)
	}
	if rt.In == nil {
		return nil, errf("input() unavailable: no input stream")
	}
	line, err := rt.In.ReadString('\n')
	if err != nil && line == "" {
		return nil, errf("input() failed: %s", err)
	}
	line = strings.TrimRight(line, "\r\n")
	return &value.String{Val: line}, nil
}
