package parser

import (
	"github.com/pkg/errors"
)

var (
	ErrUnknownOperator   = errors.New("unknown operator")
	ErrWrongOperandCount = errors.New("wrong number of operands")
	ErrInvalidBinding    = errors.New("invalid binding name")
)
