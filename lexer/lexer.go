package lexer

import (
	"github.com/pkg/errors"
)

const eof = rune(-1)

type lexState func(*Lexer) lexState

// New initializes a Lexer for a function call expression of the form
// "name(operand,operand,...)".
func New(expr string) *Lexer {
	return &Lexer{
		in:     []rune(expr),
		tokens: make([]Token, 0, 4),
		buf:    []rune{},
	}
}

// Lexer splits a function call into its operator name and its top-level
// operands. Operands are kept verbatim (minus spaces), nested calls included.
type Lexer struct {
	in []rune

	tokens  []Token
	lastErr error

	buf []rune

	start  int
	offset int
	end    int
	depth  int
}

// Tokens returns the tokens collected by Scan. The first one is always the
// operator name.
func (lx *Lexer) Tokens() []Token {
	return lx.tokens
}

// Scan reads the whole expression.
func (lx *Lexer) Scan() error {
	for state := lexDefaultState; state != nil; {
		state = state(lx)
	}
	return lx.lastErr
}

func (lx *Lexer) emit(tt TokenType) {
	lx.tokens = append(lx.tokens, Token{
		tt:     tt,
		lexeme: string(lx.buf),

		col: lx.start + 1,
	})

	lx.buf = lx.buf[0:0]
}

func (lx *Lexer) peek() rune {
	if lx.offset >= len(lx.in) {
		return eof
	}
	return lx.in[lx.offset]
}

func (lx *Lexer) skip(fn func(rune) bool) {
	for lx.offset < len(lx.in) && fn(lx.in[lx.offset]) {
		lx.offset++
	}
}

func lexDefaultState(lx *Lexer) lexState {
	lx.skip(isWhitespace)

	if !isWord(lx.peek()) {
		return lexStateError(ErrMalformedExpression, lx.offset)
	}
	return lexWord
}

func lexWord(lx *Lexer) lexState {
	lx.start = lx.offset
	for isWord(lx.peek()) {
		lx.buf = append(lx.buf, lx.in[lx.offset])
		lx.offset++
	}
	lx.emit(TokenWord)
	return lexOpenExpression
}

func lexOpenExpression(lx *Lexer) lexState {
	lx.skip(isWhitespace)

	if !isOpenExpression(lx.peek()) {
		return lexStateError(ErrMalformedExpression, lx.offset)
	}
	lx.offset++

	// the operand region ends right before the last closing parenthesis,
	// nothing but whitespace may follow it
	lx.end = len(lx.in)
	for lx.end > lx.offset && isWhitespace(lx.in[lx.end-1]) {
		lx.end--
	}
	if lx.end == lx.offset || !isCloseExpression(lx.in[lx.end-1]) {
		return lexStateError(ErrMalformedExpression, lx.end)
	}
	lx.end--

	lx.start = lx.offset
	return lexOperand
}

func lexOperand(lx *Lexer) lexState {
	for ; lx.offset < lx.end; lx.offset++ {
		r := lx.in[lx.offset]

		switch {
		case isSpace(r):
			continue

		case isOpenExpression(r):
			lx.depth++

		case isCloseExpression(r):
			lx.depth--
			if lx.depth < 0 {
				return lexStateError(ErrUnbalancedParentheses, lx.offset)
			}

		case isSeparator(r):
			if lx.depth == 0 {
				lx.emit(TokenOperand)
				lx.start = lx.offset + 1
				continue
			}
		}

		lx.buf = append(lx.buf, r)
	}

	if lx.depth != 0 {
		return lexStateError(ErrUnbalancedParentheses, lx.end)
	}

	lx.emit(TokenOperand)
	return nil
}

func lexStateError(err error, offset int) lexState {
	return func(lx *Lexer) lexState {
		lx.lastErr = errors.Wrapf(err, "column %d", offset+1)
		return nil
	}
}

// Tokenize splits a function call expression into its operator name followed
// by its operands, or returns an error if the expression does not have the
// shape of a call.
func Tokenize(expr string) ([]Token, error) {
	lx := New(expr)
	if err := lx.Scan(); err != nil {
		return nil, err
	}
	return lx.Tokens(), nil
}
