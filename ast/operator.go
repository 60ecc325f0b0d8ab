package ast

// Operator identifies one of the built-in functions.
type Operator uint8

// Operators
const (
	OpInvalid Operator = iota
	OpAdd
	OpSub
	OpMult
	OpDiv
	OpLet
)

var operatorNames = map[Operator]string{
	OpInvalid: "invalid",
	OpAdd:     "add",
	OpSub:     "sub",
	OpMult:    "mult",
	OpDiv:     "div",
	OpLet:     "let",
}

var operatorsByName = map[string]Operator{
	"add":  OpAdd,
	"sub":  OpSub,
	"mult": OpMult,
	"div":  OpDiv,
	"let":  OpLet,
}

// number of operands each operator takes
var operatorArity = map[Operator]int{
	OpAdd:  2,
	OpSub:  2,
	OpMult: 2,
	OpDiv:  2,
	OpLet:  3,
}

// LookupOperator returns the operator with the given name, or OpInvalid.
func LookupOperator(name string) Operator {
	if op, ok := operatorsByName[name]; ok {
		return op
	}
	return OpInvalid
}

// Arity returns the number of operands the operator takes.
func (op Operator) Arity() int {
	return operatorArity[op]
}

func (op Operator) String() string {
	if s, ok := operatorNames[op]; ok {
		return s
	}
	return operatorNames[OpInvalid]
}
