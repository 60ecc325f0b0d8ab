package calc

import (
	"github.com/pkg/errors"

	"github.com/xiam/calc/ast"
)

type evaluator struct {
	cfg *config
}

func (e *evaluator) eval(st *scope, node *ast.Node) (int64, error) {
	value, err := e.evalNode(st, node)
	if err != nil {
		e.cfg.logger.Debugf("%s: %v", node.Text(), err)
		return 0, err
	}
	return value, nil
}

func (e *evaluator) evalNode(st *scope, node *ast.Node) (int64, error) {
	switch node.Type() {
	case ast.NodeTypeInt:
		return node.Int(), nil

	case ast.NodeTypeSymbol:
		return st.Get(node.Symbol())

	case ast.NodeTypeCall:
		return e.evalCall(st, node)

	case ast.NodeTypeInvalid:
		return 0, node.Err()
	}

	panic("unreachable")
}

func (e *evaluator) evalCall(st *scope, node *ast.Node) (int64, error) {
	operands := node.List()

	switch op := node.Operator(); op {
	case ast.OpAdd, ast.OpSub, ast.OpMult, ast.OpDiv:
		x, err := e.eval(st, operands[0])
		if err != nil {
			return 0, err
		}
		y, err := e.eval(st, operands[1])
		if err != nil {
			return 0, err
		}
		return apply(op, x, y, e.cfg.checkOverflow)

	case ast.OpLet:
		// the value is evaluated before its own binding exists
		value, err := e.eval(st, operands[1])
		if err != nil {
			return 0, err
		}
		return e.eval(st.With(operands[0].Symbol(), value), operands[2])

	default:
		return 0, errors.Wrapf(ErrUnknownOperator, "call %v", op)
	}
}
