package lexer

import (
	"github.com/pkg/errors"
)

var (
	ErrMalformedExpression   = errors.New("malformed expression")
	ErrUnbalancedParentheses = errors.New("unbalanced parentheses")
)
