/*
File   : minipylang/lexer/lexer_test.go
Package: lexer
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tokenCase struct {
	Input    string
	Expected []Token
}

func TestTokenize_OperatorsAndPunctuation(t *testing.T) {
	tests := []tokenCase{
		{
			Input: `123 + 2 - 12`,
			Expected: []Token{
				{Type: INT, Literal: "123", Line: 1},
				{Type: PLUS, Literal: "+", Line: 1},
				{Type: INT, Literal: "2", Line: 1},
				{Type: MINUS, Literal: "-", Line: 1},
				{Type: INT, Literal: "12", Line: 1},
			},
		},
		{
			Input: `{ } [ ] ( ) , : ;`,
			Expected: []Token{
				{Type: LBRACE, Literal: "{", Line: 1},
				{Type: RBRACE, Literal: "}", Line: 1},
				{Type: LBRACKET, Literal: "[", Line: 1},
				{Type: RBRACKET, Literal: "]", Line: 1},
				{Type: LPAREN, Literal: "(", Line: 1},
				{Type: RPAREN, Literal: ")", Line: 1},
				{Type: COMMA, Literal: ",", Line: 1},
				{Type: COLON, Literal: ":", Line: 1},
				{Type: SEMI, Literal: ";", Line: 1},
			},
		},
		{
			// longest-match: == != <= >= must win over = < > !
			Input: `== != <= >= = < > !`,
			Expected: []Token{
				{Type: EQ, Literal: "==", Line: 1},
				{Type: NEQ, Literal: "!=", Line: 1},
				{Type: LE, Literal: "<=", Line: 1},
				{Type: GE, Literal: ">=", Line: 1},
				{Type: ASSIGN, Literal: "=", Line: 1},
				{Type: LT, Literal: "<", Line: 1},
				{Type: GT, Literal: ">", Line: 1},
				{Type: BANG, Literal: "!", Line: 1},
			},
		},
	}

	for _, tc := range tests {
		got, err := Tokenize(tc.Input)
		require.NoError(t, err)
		assert.Equal(t, tc.Expected, got)
	}
}

func TestTokenize_KeywordsAndIdentifiers(t *testing.T) {
	got, err := Tokenize(`if else while print input and or not del true false x _y9`)
	require.NoError(t, err)
	expectedTypes := []TokenType{IF, ELSE, WHILE, PRINT, INPUT, AND, OR, NOT, DEL, TRUE, FALSE, IDENT, IDENT}
	require.Len(t, got, len(expectedTypes))
	for i, tt := range expectedTypes {
		assert.Equal(t, tt, got[i].Type, "token %d", i)
	}
}

func TestTokenize_NumberLiterals(t *testing.T) {
	got, err := Tokenize(`123 3.14 0.5 42.0`)
	require.NoError(t, err)
	require.Len(t, got, 4)
	assert.Equal(t, INT, got[0].Type)
	assert.Equal(t, FLOAT, got[1].Type)
	assert.Equal(t, FLOAT, got[2].Type)
	assert.Equal(t, FLOAT, got[3].Type)
	assert.Equal(t, "123", got[0].Literal)
	assert.Equal(t, "3.14", got[1].Literal)
}

func TestTokenize_StringLiterals(t *testing.T) {
	got, err := Tokenize(`"hello" "with \"quotes\"" "a\\b"`)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, `hello`, got[0].Literal)
	assert.Equal(t, `with "quotes"`, got[1].Literal)
	assert.Equal(t, `a\b`, got[2].Literal)
}

func TestTokenize_CommentsAndWhitespaceIgnored(t *testing.T) {
	got, err := Tokenize("x = 1 # this is a comment\ny = 2")
	require.NoError(t, err)
	var literals []string
	for _, tok := range got {
		literals = append(literals, tok.Literal)
	}
	assert.Equal(t, []string{"x", "=", "1", "y", "=", "2"}, literals)
}

func TestTokenize_LineTracking(t *testing.T) {
	got, err := Tokenize("x = 1\ny = 2\nz = 3")
	require.NoError(t, err)
	require.Len(t, got, 9)
	assert.Equal(t, 1, got[0].Line)
	assert.Equal(t, 2, got[3].Line)
	assert.Equal(t, 3, got[6].Line)
}

func TestTokenize_UnterminatedString(t *testing.T) {
	_, err := Tokenize(`"unterminated`)
	require.Error(t, err)
	var lexErr *LexError
	require.ErrorAs(t, err, &lexErr)
}

func TestTokenize_UnexpectedCharacter(t *testing.T) {
	_, err := Tokenize("x = 1 @ 2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unexpected character '@'")
}
