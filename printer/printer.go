/*
File   : minipylang/printer/printer.go
Package: printer

Package printer implements an indentation-based AST dumper, grounded
on the teacher's main.PrintingVisitor (main/print_visitor.go): each
node writes one "<Kind> (<detail>)" line, then recurses into its
children at one indent level deeper. MiniPyLang's smaller AST
collapses the teacher's per-node-type Visit methods into a single type
switch, since there is no Visitor interface to satisfy here.
*/
package printer

import (
	"bytes"
	"fmt"

	"github.com/akashmaji946/minipylang/ast"
)

const indentSize = 2

// Printer accumulates a formatted AST dump into buf.
type Printer struct {
	indent int
	buf    bytes.Buffer
}

// New creates an empty Printer.
func New() *Printer { return &Printer{} }

// String returns the accumulated output.
func (p *Printer) String() string { return p.buf.String() }

func (p *Printer) writeIndent() {
	for i := 0; i < p.indent; i++ {
		p.buf.WriteByte(' ')
	}
}

func (p *Printer) line(kind string, detail string) {
	p.writeIndent()
	if detail == "" {
		fmt.Fprintf(&p.buf, "%s\n", kind)
	} else {
		fmt.Fprintf(&p.buf, "%s (%s)\n", kind, detail)
	}
}

func (p *Printer) nested(f func()) {
	p.indent += indentSize
	f()
	p.indent -= indentSize
}

// Dump renders a full program's AST as an indented tree and returns it.
func Dump(prog *ast.Program) string {
	p := New()
	p.line("Program", fmt.Sprintf("%d statement(s)", len(prog.Statements)))
	p.nested(func() {
		for _, s := range prog.Statements {
			p.visitStmt(s)
		}
	})
	return p.String()
}

func (p *Printer) visitStmt(s ast.Stmt) {
	switch n := s.(type) {
	case *ast.Print:
		p.line("Print", fmt.Sprintf("line %d", n.Line()))
		p.nested(func() { p.visitExpr(n.Value) })
	case *ast.Assign:
		p.line("Assign", fmt.Sprintf("line %d", n.Line()))
		p.nested(func() {
			p.visitExpr(n.Target)
			p.visitExpr(n.Value)
		})
	case *ast.If:
		p.line("If", fmt.Sprintf("line %d", n.Line()))
		p.nested(func() {
			p.visitExpr(n.Cond)
			p.line("Then", "")
			p.nested(func() {
				for _, st := range n.Then {
					p.visitStmt(st)
				}
			})
			if n.Else != nil {
				p.line("Else", "")
				p.nested(func() {
					for _, st := range n.Else {
						p.visitStmt(st)
					}
				})
			}
		})
	case *ast.While:
		p.line("While", fmt.Sprintf("line %d", n.Line()))
		p.nested(func() {
			p.visitExpr(n.Cond)
			for _, st := range n.Body {
				p.visitStmt(st)
			}
		})
	case *ast.Del:
		p.line("Del", fmt.Sprintf("line %d", n.Line()))
		p.nested(func() { p.visitExpr(n.Target) })
	case *ast.ExprStmt:
		p.line("ExprStmt", fmt.Sprintf("line %d", n.Line()))
		p.nested(func() { p.visitExpr(n.Value) })
	default:
		p.line("UnknownStmt", fmt.Sprintf("%T", s))
	}
}

func (p *Printer) visitExpr(e ast.Expr) {
	switch n := e.(type) {
	case *ast.IntLit:
		p.line("Int", fmt.Sprintf("%d", n.Value))
	case *ast.FloatLit:
		p.line("Float", fmt.Sprintf("%g", n.Value))
	case *ast.StringLit:
		p.line("String", fmt.Sprintf("%q", n.Value))
	case *ast.BoolLit:
		p.line("Bool", fmt.Sprintf("%t", n.Value))
	case *ast.VarRef:
		p.line("VarRef", n.Name)
	case *ast.ListLit:
		p.line("List", fmt.Sprintf("%d element(s)", len(n.Elements)))
		p.nested(func() {
			for _, el := range n.Elements {
				p.visitExpr(el)
			}
		})
	case *ast.DictLit:
		p.line("Dict", fmt.Sprintf("%d entr(y/ies)", len(n.Entries)))
		p.nested(func() {
			for _, entry := range n.Entries {
				p.visitExpr(entry.Key)
				p.visitExpr(entry.Value)
			}
		})
	case *ast.Index:
		p.line("Index", "")
		p.nested(func() {
			p.visitExpr(n.Target)
			p.visitExpr(n.Index)
		})
	case *ast.Unary:
		p.line("Unary", string(n.Op))
		p.nested(func() { p.visitExpr(n.Operand) })
	case *ast.Binary:
		p.line("Binary", string(n.Op))
		p.nested(func() {
			p.visitExpr(n.Left)
			p.visitExpr(n.Right)
		})
	case *ast.Call:
		p.line("Call", fmt.Sprintf("%s/%d", n.Name, len(n.Args)))
		p.nested(func() {
			for _, arg := range n.Args {
				p.visitExpr(arg)
			}
		})
	default:
		p.line("UnknownExpr", fmt.Sprintf("%T", e))
	}
}
