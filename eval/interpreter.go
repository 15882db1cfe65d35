/*
File   : minipylang/eval/interpreter.go
Package: eval

Package eval implements MiniPyLang's tree-walking evaluator, grounded
on the teacher's eval.Evaluator: a struct carrying the execution state
(environment, output writer, input reader) plus a central Eval
dispatcher (eval/evaluator_expressions.go: Eval's type switch). Unlike
the teacher, there is a single flat Environment (no scope chain to
push/pop for function calls) and runtime failures return the first
error immediately instead of producing an Error value that keeps
propagating through the tree.
*/
package eval

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/akashmaji946/minipylang/ast"
	"github.com/akashmaji946/minipylang/builtin"
	"github.com/akashmaji946/minipylang/env"
	"github.com/akashmaji946/minipylang/value"
)

// RuntimeError reports an evaluation failure pinned to a source line,
// per spec.md §4.3/§7: "undefined variable, type error in operator,
// division by zero, index out of range, missing dict key, wrong
// argument count/type to built-in, invalid conversion".
type RuntimeError struct {
	Line    int
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("Runtime error at line %d: %s", e.Line, e.Message)
}

// Interpreter walks a Program against a single global Environment,
// mirroring the teacher's Evaluator but trimmed to MiniPyLang's
// single-scope model.
type Interpreter struct {
	Env *env.Environment
	Out io.Writer
	In  *bufio.Reader
}

// New creates an Interpreter writing to stdout and reading from stdin.
func New() *Interpreter {
	return &Interpreter{
		Env: env.New(),
		Out: os.Stdout,
		In:  bufio.NewReader(os.Stdin),
	}
}

// Run executes every statement of prog in order, stopping at (and
// returning) the first RuntimeError.
func (it *Interpreter) Run(prog *ast.Program) error {
	for _, stmt := range prog.Statements {
		if err := it.exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (it *Interpreter) runtime() *builtin.Runtime {
	return &builtin.Runtime{Out: it.Out, In: it.In}
}

func (it *Interpreter) exec(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.Print:
		v, err := it.eval(s.Value)
		if err != nil {
			return err
		}
		fmt.Fprintln(it.Out, v.String())
		return nil

	case *ast.Assign:
		v, err := it.eval(s.Value)
		if err != nil {
			return err
		}
		return it.assign(s.Target, v)

	case *ast.If:
		cond, err := it.eval(s.Cond)
		if err != nil {
			return err
		}
		body := s.Else
		if value.Truthy(cond) {
			body = s.Then
		}
		for _, st := range body {
			if err := it.exec(st); err != nil {
				return err
			}
		}
		return nil

	case *ast.While:
		for {
			cond, err := it.eval(s.Cond)
			if err != nil {
				return err
			}
			if !value.Truthy(cond) {
				return nil
			}
			for _, st := range s.Body {
				if err := it.exec(st); err != nil {
					return err
				}
			}
		}

	case *ast.Del:
		return it.execDel(s)

	case *ast.ExprStmt:
		_, err := it.eval(s.Value)
		return err

	default:
		return &RuntimeError{Line: stmt.Line(), Message: fmt.Sprintf("unhandled statement %T", stmt)}
	}
}

// execDel implements `del name` / `del dict[key]` (spec.md §4.3).
func (it *Interpreter) execDel(s *ast.Del) error {
	switch t := s.Target.(type) {
	case *ast.VarRef:
		if !it.Env.Delete(t.Name) {
			return &RuntimeError{Line: s.Line(), Message: fmt.Sprintf("undefined variable: %s", t.Name)}
		}
		return nil
	case *ast.Index:
		container, err := it.eval(t.Target)
		if err != nil {
			return err
		}
		dict, ok := container.(*value.Dict)
		if !ok {
			return &RuntimeError{Line: s.Line(), Message: "del target must be a dict entry"}
		}
		key, err := it.eval(t.Index)
		if err != nil {
			return err
		}
		_, found, derr := dict.Delete(key)
		if derr != nil {
			return &RuntimeError{Line: s.Line(), Message: derr.Error()}
		}
		if !found {
			return &RuntimeError{Line: s.Line(), Message: fmt.Sprintf("Key not found: %s", key.String())}
		}
		return nil
	default:
		return &RuntimeError{Line: s.Line(), Message: "invalid del target"}
	}
}

// assign implements spec.md §4.3's assignment-target rule: a bare
// identifier binds in Environment; an Index target mutates the
// already-evaluated List/Dict in place.
func (it *Interpreter) assign(target ast.Expr, v value.Value) error {
	switch t := target.(type) {
	case *ast.VarRef:
		it.Env.Set(t.Name, v)
		return nil
	case *ast.Index:
		container, err := it.eval(t.Target)
		if err != nil {
			return err
		}
		idx, err := it.eval(t.Index)
		if err != nil {
			return err
		}
		switch c := container.(type) {
		case *value.List:
			i, ok := indexAsInt(idx)
			if !ok {
				return &RuntimeError{Line: target.Line(), Message: "list index must be an Integer"}
			}
			pos, ok := value.NormalizeIndex(i, len(c.Elements))
			if !ok {
				return &RuntimeError{Line: target.Line(), Message: fmt.Sprintf("index out of range: %d", i)}
			}
			c.Elements[pos] = v
			return nil
		case *value.Dict:
			if err := c.Set(idx, v); err != nil {
				return &RuntimeError{Line: target.Line(), Message: err.Error()}
			}
			return nil
		default:
			return &RuntimeError{Line: target.Line(), Message: fmt.Sprintf("cannot index into %s", container.Type())}
		}
	default:
		return &RuntimeError{Line: target.Line(), Message: "invalid assignment target"}
	}
}

func indexAsInt(v value.Value) (int, bool) {
	i, ok := v.(*value.Integer)
	if !ok {
		return 0, false
	}
	return int(i.Val), true
}
