package parser

import (
	"strconv"

	"github.com/pkg/errors"

	"github.com/xiam/calc/ast"
	"github.com/xiam/calc/lexer"
)

// Parser turns a whitespace-free expression into an AST.
//
// Parsing does not stop at the first problem: a subexpression that cannot be
// parsed becomes an invalid node holding its error, and the error only
// surfaces when something evaluates that node. This keeps errors in the same
// order an evaluation would find them.
type Parser struct {
	expr string
	root *ast.Node
}

// New creates a parser for the given expression. Spaces must have been
// removed already, see lexer.StripSpaces.
func New(expr string) *Parser {
	return &Parser{expr: expr}
}

// Parse builds the tree and returns the first error found in it, in source
// order.
func (p *Parser) Parse() error {
	p.root = parseExpression(1, p.expr)
	return FirstError(p.root)
}

// Root returns the tree built by Parse.
func (p *Parser) Root() *ast.Node {
	return p.root
}

func parseExpression(col int, expr string) *ast.Node {
	switch {
	case lexer.IsInteger(expr):
		return parseInteger(col, expr)
	case lexer.IsLetter(expr):
		return ast.NewSymbol(col, expr)
	}
	return parseCall(col, expr)
}

func parseInteger(col int, expr string) *ast.Node {
	i64, err := strconv.ParseInt(expr, 10, 64)
	if err != nil {
		return ast.NewInvalid(col, expr, errors.Wrapf(lexer.ErrMalformedExpression, "literal %q out of range", expr))
	}
	return ast.NewInt(col, expr, i64)
}

func parseCall(col int, expr string) *ast.Node {
	tokens, err := lexer.Tokenize(expr)
	if err != nil {
		return ast.NewInvalid(col, expr, errors.WithMessagef(err, "tokenize %q", expr))
	}

	name, operands := tokens[0].Text(), tokens[1:]

	op := ast.LookupOperator(name)
	if op == ast.OpInvalid {
		return ast.NewInvalid(col, expr, errors.Wrapf(ErrUnknownOperator, "call %q", name))
	}
	if len(operands) != op.Arity() {
		return ast.NewInvalid(col, expr, errors.Wrapf(ErrWrongOperandCount, "call %v with %d, expecting %d", op, len(operands), op.Arity()))
	}

	node := ast.NewCall(col, expr, op)
	for i := range operands {
		operandCol := col + operands[i].Col() - 1
		text := operands[i].Text()

		var child *ast.Node
		if op == ast.OpLet && i == 0 {
			if !lexer.IsLetter(text) {
				return ast.NewInvalid(col, expr, errors.Wrapf(ErrInvalidBinding, "bind %q", text))
			}
			child = ast.NewSymbol(operandCol, text)
		} else {
			child = parseExpression(operandCol, text)
		}

		if err := node.Push(child); err != nil {
			return ast.NewInvalid(col, expr, err)
		}
	}

	return node
}

// FirstError returns the error of the first invalid node under root, in
// source order, or nil if the whole tree is valid.
func FirstError(root *ast.Node) error {
	var err error
	ast.Walk(root, func(n *ast.Node) bool {
		if n.Type() == ast.NodeTypeInvalid {
			err = n.Err()
			return false
		}
		return true
	})
	return err
}

// Build parses expr into a tree without reporting errors; invalid
// subexpressions are left in the tree as invalid nodes.
func Build(expr string) *ast.Node {
	return parseExpression(1, expr)
}

// Parse parses expr into a tree and returns the first error found in it.
func Parse(expr string) (*ast.Node, error) {
	p := New(expr)

	err := p.Parse()
	if err != nil {
		return nil, err
	}

	return p.root, nil
}
