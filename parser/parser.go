/*
File   : minipylang/parser/parser.go
Package: parser

Package parser implements MiniPyLang's recursive-descent, precedence-
climbing parser (spec.md §4.2). Unlike the teacher's Pratt parser
(UnaryFuncs/BinaryFuncs maps keyed by token type), MiniPyLang's
precedence table is small and fixed, so each level gets its own
function, ordered lowest to highest:

	or < and < not < ==/!= < </<=/>/>= < +/- < * / < unary < postfix < atom

The parser keeps the teacher's two-token lookahead (cur/peek),
advance/expectAndAdvance naming, and its "collect a message, stop" error
style simplified to spec.md's single-fatal-error policy: the first
syntax error aborts the parse immediately instead of attempting
recovery.
*/
package parser

import (
	"fmt"

	"github.com/akashmaji946/minipylang/ast"
	"github.com/akashmaji946/minipylang/lexer"
)

// ParseError reports a syntax error pinned to a source line, per
// spec.md §4.2's "Parse error at line L: expected X, got Y" format.
type ParseError struct {
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("Parse error at line %d: %s", e.Line, e.Message)
}

// Parser turns a token stream into a Program. It is single-use: create
// one with New per parse.
type Parser struct {
	lex  *lexer.Lexer
	cur  lexer.Token
	peek lexer.Token
}

// New creates a Parser over src, priming the two-token lookahead.
func New(src string) (*Parser, error) {
	p := &Parser{lex: lexer.New(src)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Parser) advance() error {
	p.cur = p.peek
	tok, err := p.lex.NextToken()
	if err != nil {
		return err
	}
	p.peek = tok
	return nil
}

func (p *Parser) curIs(tt lexer.TokenType) bool  { return p.cur.Type == tt }
func (p *Parser) peekIs(tt lexer.TokenType) bool { return p.peek.Type == tt }

// expect asserts the current token's type, returning a ParseError
// with a message in the "expected X, got Y" shape if it doesn't match.
func (p *Parser) expect(tt lexer.TokenType) error {
	if p.cur.Type != tt {
		return &ParseError{Line: p.cur.Line, Message: fmt.Sprintf("expected %s, got %s", tt, p.cur.Type)}
	}
	return nil
}

// expectAndAdvance requires the current token to match tt, then
// advances past it.
func (p *Parser) expectAndAdvance(tt lexer.TokenType) error {
	if err := p.expect(tt); err != nil {
		return err
	}
	return p.advance()
}

// Parse runs the parser to completion, returning the full Program or
// the first syntax/lexical error encountered.
func Parse(src string) (*ast.Program, error) {
	p, err := New(src)
	if err != nil {
		return nil, err
	}
	return p.parseProgram()
}

func (p *Parser) parseProgram() (*ast.Program, error) {
	prog := &ast.Program{}
	for !p.curIs(lexer.EOF) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		prog.Statements = append(prog.Statements, stmt)
	}
	return prog, nil
}

// parseBlock parses a `{ stmt* }` block used by if/while bodies
// (spec.md §4.2: blocks are brace-delimited, no implicit single-
// statement bodies).
func (p *Parser) parseBlock() ([]ast.Stmt, error) {
	if err := p.expectAndAdvance(lexer.LBRACE); err != nil {
		return nil, err
	}
	var stmts []ast.Stmt
	for !p.curIs(lexer.RBRACE) {
		if p.curIs(lexer.EOF) {
			return nil, &ParseError{Line: p.cur.Line, Message: "expected }, got EOF"}
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return stmts, p.advance()
}

func (p *Parser) parseStatement() (ast.Stmt, error) {
	switch p.cur.Type {
	case lexer.IF:
		return p.parseIf()
	case lexer.WHILE:
		return p.parseWhile()
	case lexer.PRINT:
		return p.parsePrint()
	case lexer.DEL:
		return p.parseDel()
	default:
		return p.parseExprOrAssignStatement()
	}
}

// parseIf implements `if (cond) { ... } [else { ... }]`, with dangling-
// else naturally resolved by attaching a trailing `else` to the
// nearest enclosing `if` since blocks are always brace-delimited.
func (p *Parser) parseIf() (ast.Stmt, error) {
	line := p.cur.Line
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.expectAndAdvance(lexer.LPAREN); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expectAndAdvance(lexer.RPAREN); err != nil {
		return nil, err
	}
	then, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	var els []ast.Stmt
	if p.curIs(lexer.ELSE) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.curIs(lexer.IF) {
			elseIf, err := p.parseIf()
			if err != nil {
				return nil, err
			}
			els = []ast.Stmt{elseIf}
		} else {
			els, err = p.parseBlock()
			if err != nil {
				return nil, err
			}
		}
	}
	return ast.NewIf(line, cond, then, els), nil
}

func (p *Parser) parseWhile() (ast.Stmt, error) {
	line := p.cur.Line
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.expectAndAdvance(lexer.LPAREN); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expectAndAdvance(lexer.RPAREN); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return ast.NewWhile(line, cond, body), nil
}

func (p *Parser) parsePrint() (ast.Stmt, error) {
	line := p.cur.Line
	if err := p.advance(); err != nil {
		return nil, err
	}
	val, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.consumeOptionalSemi(); err != nil {
		return nil, err
	}
	return ast.NewPrint(line, val), nil
}

// parseDel implements `del name` or `del dict[key]` (spec.md §4.2/§4.3:
// del removes a variable binding or a dict entry).
func (p *Parser) parseDel() (ast.Stmt, error) {
	line := p.cur.Line
	if err := p.advance(); err != nil {
		return nil, err
	}
	target, err := p.parsePostfix()
	if err != nil {
		return nil, err
	}
	switch target.(type) {
	case *ast.VarRef, *ast.Index:
	default:
		return nil, &ParseError{Line: line, Message: "del target must be a name or dict[key]"}
	}
	if err := p.consumeOptionalSemi(); err != nil {
		return nil, err
	}
	return ast.NewDel(line, target), nil
}

// parseExprOrAssignStatement disambiguates `name = expr` (assignment)
// and `target[idx] = expr` from a bare expression statement: parse one
// expression, then check whether `=` follows (spec.md §4.2).
func (p *Parser) parseExprOrAssignStatement() (ast.Stmt, error) {
	line := p.cur.Line
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.curIs(lexer.ASSIGN) {
		switch expr.(type) {
		case *ast.VarRef, *ast.Index:
		default:
			return nil, &ParseError{Line: line, Message: "invalid assignment target"}
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		val, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.consumeOptionalSemi(); err != nil {
			return nil, err
		}
		return ast.NewAssign(line, expr, val), nil
	}
	if err := p.consumeOptionalSemi(); err != nil {
		return nil, err
	}
	return ast.NewExprStmt(line, expr), nil
}

// consumeOptionalSemi swallows a trailing `;` if present; MiniPyLang
// statements are newline/brace delimited, so semicolons are never
// required (spec.md keeps SEMI only as an accepted separator).
func (p *Parser) consumeOptionalSemi() error {
	if p.curIs(lexer.SEMI) {
		return p.advance()
	}
	return nil
}

// ---- Expression parsing: precedence climbing ----

func (p *Parser) parseExpr() (ast.Expr, error) { return p.parseOr() }

func (p *Parser) parseOr() (ast.Expr, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.curIs(lexer.OR) {
		line := p.cur.Line
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinary(line, lexer.OR, left, right)
	}
	return left, nil
}

func (p *Parser) parseAnd() (ast.Expr, error) {
	left, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	for p.curIs(lexer.AND) {
		line := p.cur.Line
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinary(line, lexer.AND, left, right)
	}
	return left, nil
}

// parseNot handles the unary `not` keyword, which binds looser than
// the comparison operators per spec.md §4.2's precedence table.
func (p *Parser) parseNot() (ast.Expr, error) {
	if p.curIs(lexer.NOT) {
		line := p.cur.Line
		if err := p.advance(); err != nil {
			return nil, err
		}
		operand, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		return ast.NewUnary(line, lexer.NOT, operand), nil
	}
	return p.parseEquality()
}

func (p *Parser) parseEquality() (ast.Expr, error) {
	left, err := p.parseRelational()
	if err != nil {
		return nil, err
	}
	for p.curIs(lexer.EQ) || p.curIs(lexer.NEQ) {
		op, line := p.cur.Type, p.cur.Line
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseRelational()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinary(line, op, left, right)
	}
	return left, nil
}

func (p *Parser) parseRelational() (ast.Expr, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	for p.curIs(lexer.LT) || p.curIs(lexer.LE) || p.curIs(lexer.GT) || p.curIs(lexer.GE) {
		op, line := p.cur.Type, p.cur.Line
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinary(line, op, left, right)
	}
	return left, nil
}

func (p *Parser) parseAdditive() (ast.Expr, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for p.curIs(lexer.PLUS) || p.curIs(lexer.MINUS) {
		op, line := p.cur.Type, p.cur.Line
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinary(line, op, left, right)
	}
	return left, nil
}

func (p *Parser) parseMultiplicative() (ast.Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.curIs(lexer.STAR) || p.curIs(lexer.SLASH) {
		op, line := p.cur.Type, p.cur.Line
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinary(line, op, left, right)
	}
	return left, nil
}

func (p *Parser) parseUnary() (ast.Expr, error) {
	if p.curIs(lexer.MINUS) || p.curIs(lexer.PLUS) || p.curIs(lexer.BANG) {
		op, line := p.cur.Type, p.cur.Line
		if err := p.advance(); err != nil {
			return nil, err
		}
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return ast.NewUnary(line, op, operand), nil
	}
	return p.parsePostfix()
}

// parsePostfix handles chained subscripts after an atom, e.g.
// `matrix[0][1]` (spec.md §4.2's postfix index/call level).
func (p *Parser) parsePostfix() (ast.Expr, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for p.curIs(lexer.LBRACKET) {
		line := p.cur.Line
		if err := p.advance(); err != nil {
			return nil, err
		}
		idx, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expectAndAdvance(lexer.RBRACKET); err != nil {
			return nil, err
		}
		expr = ast.NewIndex(line, expr, idx)
	}
	return expr, nil
}

func (p *Parser) parsePrimary() (ast.Expr, error) {
	tok := p.cur
	switch tok.Type {
	case lexer.INT:
		if err := p.advance(); err != nil {
			return nil, err
		}
		var n int64
		if _, err := fmt.Sscanf(tok.Literal, "%d", &n); err != nil {
			return nil, &ParseError{Line: tok.Line, Message: fmt.Sprintf("invalid integer literal %q", tok.Literal)}
		}
		return ast.NewIntLit(tok.Line, n), nil
	case lexer.FLOAT:
		if err := p.advance(); err != nil {
			return nil, err
		}
		var f float64
		if _, err := fmt.Sscanf(tok.Literal, "%g", &f); err != nil {
			return nil, &ParseError{Line: tok.Line, Message: fmt.Sprintf("invalid float literal %q", tok.Literal)}
		}
		return ast.NewFloatLit(tok.Line, f), nil
	case lexer.STRING:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return ast.NewStringLit(tok.Line, tok.Literal), nil
	case lexer.TRUE, lexer.FALSE:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return ast.NewBoolLit(tok.Line, tok.Type == lexer.TRUE), nil
	case lexer.IDENT:
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.curIs(lexer.LPAREN) {
			return p.parseCallArgs(tok.Line, tok.Literal)
		}
		return ast.NewVarRef(tok.Line, tok.Literal), nil
	case lexer.INPUT:
		// `input` is lexically a keyword but syntactically just another
		// built-in call (spec.md §3's "input(...) is a call expression").
		if err := p.advance(); err != nil {
			return nil, err
		}
		return p.parseCallArgs(tok.Line, "input")
	case lexer.LPAREN:
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expectAndAdvance(lexer.RPAREN); err != nil {
			return nil, err
		}
		return inner, nil
	case lexer.LBRACKET:
		return p.parseListLit()
	case lexer.LBRACE:
		return p.parseDictLit()
	default:
		return nil, &ParseError{Line: tok.Line, Message: fmt.Sprintf("unexpected token %s", tok.Type)}
	}
}

// parseCallArgs parses `(arg, arg, ...)` after a name already consumed
// (spec.md §4.2: "Calls: name(arg, ..., arg)").
func (p *Parser) parseCallArgs(line int, name string) (ast.Expr, error) {
	if err := p.expectAndAdvance(lexer.LPAREN); err != nil {
		return nil, err
	}
	var args []ast.Expr
	for !p.curIs(lexer.RPAREN) {
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.curIs(lexer.COMMA) {
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		break
	}
	if err := p.expectAndAdvance(lexer.RPAREN); err != nil {
		return nil, err
	}
	return ast.NewCall(line, name, args), nil
}

func (p *Parser) parseListLit() (ast.Expr, error) {
	line := p.cur.Line
	if err := p.advance(); err != nil {
		return nil, err
	}
	var elems []ast.Expr
	for !p.curIs(lexer.RBRACKET) {
		el, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		elems = append(elems, el)
		if p.curIs(lexer.COMMA) {
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		break
	}
	if err := p.expectAndAdvance(lexer.RBRACKET); err != nil {
		return nil, err
	}
	return ast.NewListLit(line, elems), nil
}

func (p *Parser) parseDictLit() (ast.Expr, error) {
	line := p.cur.Line
	if err := p.advance(); err != nil {
		return nil, err
	}
	var entries []ast.DictEntry
	for !p.curIs(lexer.RBRACE) {
		key, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expectAndAdvance(lexer.COLON); err != nil {
			return nil, err
		}
		val, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		entries = append(entries, ast.DictEntry{Key: key, Value: val})
		if p.curIs(lexer.COMMA) {
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		break
	}
	if err := p.expectAndAdvance(lexer.RBRACE); err != nil {
		return nil, err
	}
	return ast.NewDictLit(line, entries), nil
}
