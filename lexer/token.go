package lexer

import (
	"fmt"
)

// Token represents a lexical unit of a function call: its operator name or
// one of its raw operands.
type Token struct {
	tt     TokenType
	lexeme string

	col int
}

// NewToken creates a lexical unit
func NewToken(tt TokenType, lexeme string, col int) *Token {
	return &Token{
		tt:     tt,
		lexeme: lexeme,
		col:    col,
	}
}

// Type returns the type of the lexical unit
func (t Token) Type() TokenType {
	return t.tt
}

// Col returns the 1-based column where the lexical unit starts, relative to
// the tokenized expression.
func (t Token) Col() int {
	return t.col
}

// Text returns the raw text of the lexical unit
func (t Token) Text() string {
	return t.lexeme
}

// Is returns true if the token matches the given type
func (t Token) Is(tt TokenType) bool {
	return t.tt == tt
}

func (t Token) String() string {
	return fmt.Sprintf("(:%v %q [%d])", t.tt, t.lexeme, t.col)
}
