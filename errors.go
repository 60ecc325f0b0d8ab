package calc

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/xiam/calc/ast"
	"github.com/xiam/calc/lexer"
	"github.com/xiam/calc/parser"
)

var (
	ErrNullInput       = errors.New("null equation")
	ErrEmptyInput      = errors.New("empty equation")
	ErrUnknownVariable = errors.New("unknown variable")
)

var (
	ErrDivisionByZero = errors.New("division by zero")
	ErrOverflow       = errors.New("integer overflow")
)

var (
	ErrMalformedExpression   = lexer.ErrMalformedExpression
	ErrUnbalancedParentheses = lexer.ErrUnbalancedParentheses
	ErrUnknownOperator       = parser.ErrUnknownOperator
	ErrWrongOperandCount     = parser.ErrWrongOperandCount
	ErrInvalidBinding        = parser.ErrInvalidBinding
)

// ArithmeticError is an arithmetic fault raised while applying an operator,
// as opposed to an expression that is not valid.
type ArithmeticError struct {
	Op   ast.Operator
	X, Y int64
	Err  error
}

func (e *ArithmeticError) Error() string {
	return fmt.Sprintf("%v(%d,%d): %v", e.Op, e.X, e.Y, e.Err)
}

func (e *ArithmeticError) Unwrap() error {
	return e.Err
}

func (e *ArithmeticError) Cause() error {
	return e.Err
}

// IsArithmetic returns true if err was caused by an arithmetic fault, like a
// division by zero.
func IsArithmetic(err error) bool {
	var ae *ArithmeticError
	return errors.As(err, &ae)
}
