package ast

import (
	"fmt"

	"github.com/pkg/errors"
)

// Node represents leaf of the AST
type Node struct {
	p *Node

	nt   NodeType
	col  int
	text string
	v    interface{}
}

type call struct {
	op       Operator
	children []*Node
}

func newNode(nt NodeType, col int, text string, v interface{}) *Node {
	return &Node{
		nt:   nt,
		col:  col,
		text: text,
		v:    v,
	}
}

// NewInt creates and returns a node of type "int"
func NewInt(col int, text string, v int64) *Node {
	return newNode(NodeTypeInt, col, text, v)
}

// NewSymbol creates and returns a node of type "symbol", a variable name
func NewSymbol(col int, text string) *Node {
	return newNode(NodeTypeSymbol, col, text, text)
}

// NewCall creates and returns a node of type "call" with no operands
func NewCall(col int, text string, op Operator) *Node {
	return newNode(NodeTypeCall, col, text, &call{op: op, children: []*Node{}})
}

// NewInvalid creates and returns a node that could not be parsed. The
// error is kept until something evaluates the node.
func NewInvalid(col int, text string, err error) *Node {
	return newNode(NodeTypeInvalid, col, text, err)
}

// PushInt appends a new integer to the node
func (n *Node) PushInt(col int, text string, v int64) (*Node, error) {
	node := NewInt(col, text, v)
	if err := n.Push(node); err != nil {
		return nil, err
	}
	return node, nil
}

// PushSymbol appends a new symbol to the node
func (n *Node) PushSymbol(col int, text string) (*Node, error) {
	node := NewSymbol(col, text)
	if err := n.Push(node); err != nil {
		return nil, err
	}
	return node, nil
}

// Type returns the type of the node
func (n Node) Type() NodeType {
	return n.nt
}

// Col returns the 1-based column of the node in the parsed expression
func (n Node) Col() int {
	return n.col
}

// Text returns the source text of the node
func (n Node) Text() string {
	return n.text
}

// Int returns the value of an "int" node
func (n Node) Int() int64 {
	return n.v.(int64)
}

// Symbol returns the variable name of a "symbol" node
func (n Node) Symbol() string {
	return n.v.(string)
}

// Operator returns the operator of a "call" node
func (n Node) Operator() Operator {
	if c, ok := n.v.(*call); ok {
		return c.op
	}
	return OpInvalid
}

// Err returns the error of an "invalid" node
func (n Node) Err() error {
	if err, ok := n.v.(error); ok {
		return err
	}
	return nil
}

// List returns all the children elements of the node
func (n *Node) List() []*Node {
	if c, ok := n.v.(*call); ok {
		return c.children
	}
	return nil
}

func (n Node) String() string {
	switch n.nt {
	case NodeTypeCall:
		return fmt.Sprintf("(%v %v)[%d]", n.nt, n.Operator(), len(n.List()))
	case NodeTypeInvalid:
		return fmt.Sprintf("(%v): %q %v", n.nt, n.text, n.Err())
	}
	return fmt.Sprintf("(%v): %v", n.nt, n.v)
}

// Push appends a child node to a parent node of type "call".
func (n *Node) Push(node *Node) error {
	if n.IsVector() {
		c := n.v.(*call)
		c.children = append(c.children, node)
		node.p = n
		return nil
	}
	return errors.New("nodes of type value can't accept children")
}

// IsValue returns true if the node is of type value
func (n *Node) IsValue() bool {
	return n.nt&nodeTypeValue > 0
}

// IsVector returns true if the node is of type vector
func (n *Node) IsVector() bool {
	return n.nt&nodeTypeVector > 0
}

func (n *Node) Parent() *Node {
	return n.p
}

// Walk visits n and its descendants in source order, stopping as soon as fn
// returns false.
func Walk(n *Node, fn func(*Node) bool) bool {
	if n == nil {
		return true
	}
	if !fn(n) {
		return false
	}
	for _, child := range n.List() {
		if !Walk(child, fn) {
			return false
		}
	}
	return true
}
