/*
File   : minipylang/eval/expressions.go
Package: eval

eval is the central expression dispatcher, mirroring the teacher's
Eval() type switch (eval/evaluator_expressions.go) but over
MiniPyLang's much smaller AST.
*/
package eval

import (
	"fmt"

	"github.com/akashmaji946/minipylang/ast"
	"github.com/akashmaji946/minipylang/builtin"
	"github.com/akashmaji946/minipylang/lexer"
	"github.com/akashmaji946/minipylang/value"
)

func (it *Interpreter) eval(expr ast.Expr) (value.Value, error) {
	switch e := expr.(type) {
	case *ast.IntLit:
		return &value.Integer{Val: e.Value}, nil
	case *ast.FloatLit:
		return &value.Float{Val: e.Value}, nil
	case *ast.StringLit:
		return &value.String{Val: e.Value}, nil
	case *ast.BoolLit:
		return &value.Boolean{Val: e.Value}, nil
	case *ast.VarRef:
		v, ok := it.Env.Get(e.Name)
		if !ok {
			return nil, &RuntimeError{Line: e.Line(), Message: fmt.Sprintf("undefined variable: %s", e.Name)}
		}
		return v, nil
	case *ast.ListLit:
		elems := make([]value.Value, len(e.Elements))
		for i, el := range e.Elements {
			v, err := it.eval(el)
			if err != nil {
				return nil, err
			}
			elems[i] = v
		}
		return value.NewList(elems), nil
	case *ast.DictLit:
		dict := value.NewDict()
		for _, entry := range e.Entries {
			k, err := it.eval(entry.Key)
			if err != nil {
				return nil, err
			}
			v, err := it.eval(entry.Value)
			if err != nil {
				return nil, err
			}
			if err := dict.Set(k, v); err != nil {
				return nil, &RuntimeError{Line: e.Line(), Message: err.Error()}
			}
		}
		return dict, nil
	case *ast.Index:
		return it.evalIndex(e)
	case *ast.Unary:
		return it.evalUnary(e)
	case *ast.Binary:
		return it.evalBinary(e)
	case *ast.Call:
		return it.evalCall(e)
	default:
		return nil, &RuntimeError{Line: expr.Line(), Message: fmt.Sprintf("unhandled expression %T", expr)}
	}
}

// evalIndex implements spec.md §4.3's indexing rule for List, Dict,
// and the supplemented String case.
func (it *Interpreter) evalIndex(e *ast.Index) (value.Value, error) {
	container, err := it.eval(e.Target)
	if err != nil {
		return nil, err
	}
	idx, err := it.eval(e.Index)
	if err != nil {
		return nil, err
	}
	switch c := container.(type) {
	case *value.List:
		i, ok := indexAsInt(idx)
		if !ok {
			return nil, &RuntimeError{Line: e.Line(), Message: "list index must be an Integer"}
		}
		pos, ok := value.NormalizeIndex(i, len(c.Elements))
		if !ok {
			return nil, &RuntimeError{Line: e.Line(), Message: fmt.Sprintf("index out of range: %d", i)}
		}
		return c.Elements[pos], nil
	case *value.String:
		i, ok := indexAsInt(idx)
		if !ok {
			return nil, &RuntimeError{Line: e.Line(), Message: "string index must be an Integer"}
		}
		runes := []rune(c.Val)
		pos, ok := value.NormalizeIndex(i, len(runes))
		if !ok {
			return nil, &RuntimeError{Line: e.Line(), Message: fmt.Sprintf("index out of range: %d", i)}
		}
		return &value.String{Val: string(runes[pos])}, nil
	case *value.Dict:
		v, found, err := c.Get(idx)
		if err != nil {
			return nil, &RuntimeError{Line: e.Line(), Message: err.Error()}
		}
		if !found {
			return nil, &RuntimeError{Line: e.Line(), Message: fmt.Sprintf("Key not found: %s", idx.String())}
		}
		return v, nil
	default:
		return nil, &RuntimeError{Line: e.Line(), Message: fmt.Sprintf("cannot index into %s", container.Type())}
	}
}

// evalUnary implements `+`, `-`, `!`/`not` (spec.md §4.3's unary
// operator table).
func (it *Interpreter) evalUnary(e *ast.Unary) (value.Value, error) {
	operand, err := it.eval(e.Operand)
	if err != nil {
		return nil, err
	}
	switch e.Op {
	case lexer.NOT, lexer.BANG:
		return &value.Boolean{Val: !value.Truthy(operand)}, nil
	case lexer.PLUS:
		switch v := operand.(type) {
		case *value.Integer:
			return &value.Integer{Val: v.Val}, nil
		case *value.Float:
			return &value.Float{Val: v.Val}, nil
		}
		return nil, &RuntimeError{Line: e.Line(), Message: fmt.Sprintf("unary + not supported for %s", operand.Type())}
	case lexer.MINUS:
		switch v := operand.(type) {
		case *value.Integer:
			return &value.Integer{Val: -v.Val}, nil
		case *value.Float:
			return &value.Float{Val: -v.Val}, nil
		}
		return nil, &RuntimeError{Line: e.Line(), Message: fmt.Sprintf("unary - not supported for %s", operand.Type())}
	default:
		return nil, &RuntimeError{Line: e.Line(), Message: fmt.Sprintf("unknown unary operator %s", e.Op)}
	}
}

// evalBinary implements spec.md §4.3's full binary operator matrix,
// including short-circuit and/or and the resolved division semantics
// (Float if either operand is Float, or if Int/Int division is
// inexact; exact Int/Int division stays Int).
func (it *Interpreter) evalBinary(e *ast.Binary) (value.Value, error) {
	if e.Op == lexer.AND || e.Op == lexer.OR {
		return it.evalShortCircuit(e)
	}

	left, err := it.eval(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := it.eval(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Op {
	case lexer.PLUS:
		return evalAdd(e.Line(), left, right)
	case lexer.MINUS, lexer.STAR, lexer.SLASH:
		return evalArith(e.Line(), e.Op, left, right)
	case lexer.EQ:
		return &value.Boolean{Val: value.Equal(left, right)}, nil
	case lexer.NEQ:
		return &value.Boolean{Val: !value.Equal(left, right)}, nil
	case lexer.LT, lexer.LE, lexer.GT, lexer.GE:
		return evalComparison(e.Line(), e.Op, left, right)
	default:
		return nil, &RuntimeError{Line: e.Line(), Message: fmt.Sprintf("unknown binary operator %s", e.Op)}
	}
}

func (it *Interpreter) evalShortCircuit(e *ast.Binary) (value.Value, error) {
	left, err := it.eval(e.Left)
	if err != nil {
		return nil, err
	}
	leftTruthy := value.Truthy(left)
	if e.Op == lexer.AND && !leftTruthy {
		return &value.Boolean{Val: false}, nil
	}
	if e.Op == lexer.OR && leftTruthy {
		return &value.Boolean{Val: true}, nil
	}
	right, err := it.eval(e.Right)
	if err != nil {
		return nil, err
	}
	return &value.Boolean{Val: value.Truthy(right)}, nil
}

// evalAdd handles `+`'s extra overloads beyond plain arithmetic:
// String concatenation and List concatenation (spec.md §4.3).
func evalAdd(line int, left, right value.Value) (value.Value, error) {
	if value.IsNumeric(left) && value.IsNumeric(right) {
		return evalArith(line, lexer.PLUS, left, right)
	}
	if ls, ok := left.(*value.String); ok {
		if rs, ok := right.(*value.String); ok {
			return &value.String{Val: ls.Val + rs.Val}, nil
		}
	}
	if ll, ok := left.(*value.List); ok {
		if rl, ok := right.(*value.List); ok {
			combined := make([]value.Value, 0, len(ll.Elements)+len(rl.Elements))
			combined = append(combined, ll.Elements...)
			combined = append(combined, rl.Elements...)
			return value.NewList(combined), nil
		}
	}
	return nil, &RuntimeError{Line: line, Message: fmt.Sprintf("unsupported operand types for +: %s and %s", left.Type(), right.Type())}
}

// evalArith handles `-`, `*`, `/` and `+`'s numeric case. Division
// follows spec.md §4.3's resolution: Float if either operand is
// Float, else Int iff the division is exact, else Float.
func evalArith(line int, op lexer.TokenType, left, right value.Value) (value.Value, error) {
	li, lIsInt := left.(*value.Integer)
	ri, rIsInt := right.(*value.Integer)
	lf, lok := numericVal(left)
	rf, rok := numericVal(right)
	if !lok || !rok {
		return nil, &RuntimeError{Line: line, Message: fmt.Sprintf("unsupported operand types for %s: %s and %s", op, left.Type(), right.Type())}
	}

	bothInt := lIsInt && rIsInt

	switch op {
	case lexer.PLUS:
		if bothInt {
			return &value.Integer{Val: li.Val + ri.Val}, nil
		}
		return &value.Float{Val: lf + rf}, nil
	case lexer.MINUS:
		if bothInt {
			return &value.Integer{Val: li.Val - ri.Val}, nil
		}
		return &value.Float{Val: lf - rf}, nil
	case lexer.STAR:
		if bothInt {
			return &value.Integer{Val: li.Val * ri.Val}, nil
		}
		return &value.Float{Val: lf * rf}, nil
	case lexer.SLASH:
		if rf == 0 {
			return nil, &RuntimeError{Line: line, Message: "Division by zero"}
		}
		if bothInt && ri.Val != 0 && li.Val%ri.Val == 0 {
			return &value.Integer{Val: li.Val / ri.Val}, nil
		}
		return &value.Float{Val: lf / rf}, nil
	default:
		return nil, &RuntimeError{Line: line, Message: fmt.Sprintf("unknown arithmetic operator %s", op)}
	}
}

func evalComparison(line int, op lexer.TokenType, left, right value.Value) (value.Value, error) {
	cmp, ok := value.Compare(left, right)
	if !ok {
		return nil, &RuntimeError{Line: line, Message: fmt.Sprintf("unsupported operand types for %s: %s and %s", op, left.Type(), right.Type())}
	}
	var result bool
	switch op {
	case lexer.LT:
		result = cmp < 0
	case lexer.LE:
		result = cmp <= 0
	case lexer.GT:
		result = cmp > 0
	case lexer.GE:
		result = cmp >= 0
	}
	return &value.Boolean{Val: result}, nil
}

func numericVal(v value.Value) (float64, bool) {
	switch t := v.(type) {
	case *value.Integer:
		return float64(t.Val), true
	case *value.Float:
		return t.Val, true
	}
	return 0, false
}

// evalCall dispatches a Call node to the builtin registry (spec.md §3:
// "Calls ... denote built-in function invocation" — there are no
// user-defined functions in this language).
func (it *Interpreter) evalCall(e *ast.Call) (value.Value, error) {
	if _, ok := builtin.Lookup(e.Name); !ok {
		return nil, &RuntimeError{Line: e.Line(), Message: fmt.Sprintf("unknown function: %s", e.Name)}
	}
	args := make([]value.Value, len(e.Args))
	for i, a := range e.Args {
		v, err := it.eval(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	result, err := builtin.Call(it.runtime(), e.Name, args)
	if err != nil {
		return nil, &RuntimeError{Line: e.Line(), Message: err.Error()}
	}
	return result, nil
}
