package ast

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Print displays a human-readable representation of a node
func Print(n *Node) {
	Fprint(os.Stdout, n)
}

// Fprint writes a human-readable representation of a node to w
func Fprint(w io.Writer, n *Node) {
	printLevel(w, n, 0)
}

func printLevel(w io.Writer, n *Node, level int) {
	if n == nil {
		fmt.Fprintf(w, ":nil\n")
		return
	}
	indent := strings.Repeat("    ", level)
	fmt.Fprintf(w, "%s(%s): ", indent, n.Type())
	switch n.Type() {

	case NodeTypeCall:
		fmt.Fprintf(w, "%v [%d]\n", n.Operator(), n.Col())
		list := n.List()
		for i := range list {
			printLevel(w, list[i], level+1)
		}

	case NodeTypeInt, NodeTypeSymbol:
		fmt.Fprintf(w, "%v [%d]\n", n.v, n.Col())

	case NodeTypeInvalid:
		fmt.Fprintf(w, "%q [%d] %v\n", n.Text(), n.Col(), n.Err())

	default:
		panic("unknown node type")
	}
}

// Encode transforms a node into its canonical text representation
func Encode(n *Node) []byte {
	if n == nil {
		return []byte{}
	}
	switch n.Type() {
	case NodeTypeCall:
		nodes := []string{}
		for i := range n.List() {
			nodes = append(nodes, string(Encode(n.List()[i])))
		}
		return []byte(fmt.Sprintf("%s(%s)", n.Operator(), strings.Join(nodes, ",")))

	case NodeTypeInt:
		return []byte(strconv.FormatInt(n.Int(), 10))

	case NodeTypeSymbol:
		return []byte(n.Symbol())

	case NodeTypeInvalid:
		return []byte(n.Text())

	default:
		panic("unknown node type")
	}
}
