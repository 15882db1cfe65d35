package parser

import (
	"testing"

	"github.com/akashmaji946/minipylang/ast"
	"github.com/akashmaji946/minipylang/lexer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArithmeticPrecedence(t *testing.T) {
	prog, err := Parse("x = 1 + 2 * 3\n")
	require.NoError(t, err)
	require.Len(t, prog.Statements, 1)

	assign := prog.Statements[0].(*ast.Assign)
	bin := assign.Value.(*ast.Binary)
	assert.Equal(t, lexer.PLUS, bin.Op)
	assert.IsType(t, &ast.IntLit{}, bin.Left)
	mul := bin.Right.(*ast.Binary)
	assert.Equal(t, lexer.STAR, mul.Op)
}

func TestParseComparisonAndLogic(t *testing.T) {
	prog, err := Parse("x = 1 < 2 and not 3 == 4 or 5 >= 6\n")
	require.NoError(t, err)
	assign := prog.Statements[0].(*ast.Assign)
	// top level should be OR (lowest precedence)
	or := assign.Value.(*ast.Binary)
	assert.Equal(t, lexer.OR, or.Op)
	and := or.Left.(*ast.Binary)
	assert.Equal(t, lexer.AND, and.Op)
	assert.IsType(t, &ast.Unary{}, and.Right)
}

func TestParseIfElse(t *testing.T) {
	src := `if (x < 1) {
  print x
} else {
  print 2
}`
	prog, err := Parse(src)
	require.NoError(t, err)
	ifStmt := prog.Statements[0].(*ast.If)
	assert.Len(t, ifStmt.Then, 1)
	assert.Len(t, ifStmt.Else, 1)
}

func TestParseElseIfChain(t *testing.T) {
	src := `if (x == 1) {
  print 1
} else if (x == 2) {
  print 2
} else {
  print 3
}`
	prog, err := Parse(src)
	require.NoError(t, err)
	ifStmt := prog.Statements[0].(*ast.If)
	require.Len(t, ifStmt.Else, 1)
	assert.IsType(t, &ast.If{}, ifStmt.Else[0])
}

func TestParseWhileLoop(t *testing.T) {
	src := "while (x < 10) {\n  x = x + 1\n}"
	prog, err := Parse(src)
	require.NoError(t, err)
	w := prog.Statements[0].(*ast.While)
	assert.Len(t, w.Body, 1)
}

func TestParseListAndDictLiterals(t *testing.T) {
	prog, err := Parse(`xs = [1, 2, 3]
d = {"a": 1, "b": 2}`)
	require.NoError(t, err)
	list := prog.Statements[0].(*ast.Assign).Value.(*ast.ListLit)
	assert.Len(t, list.Elements, 3)
	dict := prog.Statements[1].(*ast.Assign).Value.(*ast.DictLit)
	assert.Len(t, dict.Entries, 2)
}

func TestParseIndexAssignment(t *testing.T) {
	prog, err := Parse("xs[0] = 5\n")
	require.NoError(t, err)
	assign := prog.Statements[0].(*ast.Assign)
	assert.IsType(t, &ast.Index{}, assign.Target)
}

func TestParseChainedIndex(t *testing.T) {
	prog, err := Parse("y = matrix[0][1]\n")
	require.NoError(t, err)
	idx := prog.Statements[0].(*ast.Assign).Value.(*ast.Index)
	assert.IsType(t, &ast.Index{}, idx.Target)
}

func TestParseCallExpression(t *testing.T) {
	prog, err := Parse("n = len(xs)\n")
	require.NoError(t, err)
	call := prog.Statements[0].(*ast.Assign).Value.(*ast.Call)
	assert.Equal(t, "len", call.Name)
	assert.Len(t, call.Args, 1)
}

func TestParseInputAsCall(t *testing.T) {
	prog, err := Parse(`name = input("who? ")`)
	require.NoError(t, err)
	call := prog.Statements[0].(*ast.Assign).Value.(*ast.Call)
	assert.Equal(t, "input", call.Name)
	assert.Len(t, call.Args, 1)
}

func TestParseDelStatement(t *testing.T) {
	prog, err := Parse("del x\n")
	require.NoError(t, err)
	del := prog.Statements[0].(*ast.Del)
	assert.IsType(t, &ast.VarRef{}, del.Target)
}

func TestParseDelDictKey(t *testing.T) {
	prog, err := Parse(`del d["k"]`)
	require.NoError(t, err)
	del := prog.Statements[0].(*ast.Del)
	assert.IsType(t, &ast.Index{}, del.Target)
}

func TestParseInvalidAssignmentTarget(t *testing.T) {
	_, err := Parse("1 = 2\n")
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
}

func TestParseMissingRParen(t *testing.T) {
	_, err := Parse("x = (1 + 2\n")
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Contains(t, pe.Message, ")")
}

func TestParseUnexpectedToken(t *testing.T) {
	_, err := Parse("x = +\n")
	require.Error(t, err)
}

func TestParseUnaryMinus(t *testing.T) {
	prog, err := Parse("x = -5\n")
	require.NoError(t, err)
	u := prog.Statements[0].(*ast.Assign).Value.(*ast.Unary)
	assert.Equal(t, lexer.MINUS, u.Op)
}
