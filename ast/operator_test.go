package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupOperator(t *testing.T) {
	testCases := []struct {
		Name  string
		Op    Operator
		Arity int
	}{
		{"add", OpAdd, 2},
		{"sub", OpSub, 2},
		{"mult", OpMult, 2},
		{"div", OpDiv, 2},
		{"let", OpLet, 3},
		{"sum", OpInvalid, 0},
		{"ADD", OpInvalid, 0},
		{"", OpInvalid, 0},
	}

	for i := range testCases {
		op := LookupOperator(testCases[i].Name)
		assert.Equal(t, testCases[i].Op, op, testCases[i].Name)
		assert.Equal(t, testCases[i].Arity, op.Arity(), testCases[i].Name)
	}
}

func TestOperatorString(t *testing.T) {
	assert.Equal(t, "mult", OpMult.String())
	assert.Equal(t, "invalid", Operator(42).String())
	assert.Equal(t, "call", NodeTypeCall.String())
	assert.Equal(t, "", NodeType(3).String())
}
