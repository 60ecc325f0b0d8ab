package calc

import (
	"math"

	"github.com/pkg/errors"

	"github.com/xiam/calc/ast"
)

// apply computes x op y with int64 wrap-around semantics. Division truncates
// toward zero.
func apply(op ast.Operator, x, y int64, checkOverflow bool) (int64, error) {
	var z int64
	var overflow bool

	switch op {
	case ast.OpAdd:
		z = x + y
		overflow = (x >= 0) == (y >= 0) && (z >= 0) != (x >= 0)
	case ast.OpSub:
		z = x - y
		overflow = (x >= 0) != (y >= 0) && (z >= 0) != (x >= 0)
	case ast.OpMult:
		z = x * y
		overflow = x != 0 && (z/x != y || (x == -1 && y == math.MinInt64))
	case ast.OpDiv:
		if y == 0 {
			return 0, &ArithmeticError{Op: op, X: x, Y: y, Err: ErrDivisionByZero}
		}
		z = x / y
		overflow = x == math.MinInt64 && y == -1
	default:
		return 0, errors.Wrapf(ErrUnknownOperator, "apply %v", op)
	}

	if overflow && checkOverflow {
		return 0, &ArithmeticError{Op: op, X: x, Y: y, Err: ErrOverflow}
	}
	return z, nil
}
