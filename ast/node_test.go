package ast

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNode(t *testing.T) {
	node := NewInt(1, "25", 25)
	assert.True(t, node.IsValue())
	assert.False(t, node.IsVector())

	_, err := node.PushInt(1, "25", 25)
	assert.Error(t, err)
}

func TestNodeCall(t *testing.T) {
	call := NewCall(1, "add(a,2)", OpAdd)
	assert.True(t, call.IsVector())
	assert.Equal(t, OpAdd, call.Operator())

	a, err := call.PushSymbol(5, "a")
	require.NoError(t, err)
	assert.Equal(t, call, a.Parent())
	assert.Equal(t, "a", a.Symbol())

	_, err = call.PushInt(7, "2", 2)
	require.NoError(t, err)

	assert.Len(t, call.List(), 2)
	assert.Equal(t, "(call add)[2]", call.String())
	assert.Equal(t, "add(a,2)", string(Encode(call)))
}

func TestNodeInvalid(t *testing.T) {
	errBroken := errors.New("broken")

	node := NewInvalid(3, "sum(1,2)", errBroken)
	assert.False(t, node.IsValue())
	assert.False(t, node.IsVector())
	assert.Equal(t, errBroken, node.Err())
	assert.Equal(t, OpInvalid, node.Operator())
	assert.Nil(t, node.List())
	assert.Equal(t, "sum(1,2)", string(Encode(node)))

	assert.Nil(t, NewInt(1, "1", 1).Err())
}

func TestWalk(t *testing.T) {
	root := NewCall(1, "mult(add(1,2),x)", OpMult)
	inner := NewCall(6, "add(1,2)", OpAdd)
	require.NoError(t, root.Push(inner))
	_, _ = inner.PushInt(10, "1", 1)
	_, _ = inner.PushInt(12, "2", 2)
	_, _ = root.PushSymbol(15, "x")

	visited := []string{}
	complete := Walk(root, func(n *Node) bool {
		visited = append(visited, string(Encode(n)))
		return true
	})
	assert.True(t, complete)
	assert.Equal(t, []string{"mult(add(1,2),x)", "add(1,2)", "1", "2", "x"}, visited)

	visited = visited[:0]
	complete = Walk(root, func(n *Node) bool {
		visited = append(visited, string(Encode(n)))
		return n.Type() != NodeTypeInt
	})
	assert.False(t, complete)
	assert.Equal(t, []string{"mult(add(1,2),x)", "add(1,2)", "1"}, visited)
}

func TestFprint(t *testing.T) {
	root := NewCall(1, "let(a,5,zap(a))", OpLet)
	_, _ = root.PushSymbol(5, "a")
	_, _ = root.PushInt(7, "5", 5)
	_ = root.Push(NewInvalid(9, "zap(a)", errors.New("unknown operator")))

	var buf bytes.Buffer
	Fprint(&buf, root)

	expected := "(call): let [1]\n" +
		"    (symbol): a [5]\n" +
		"    (int): 5 [7]\n" +
		"    (invalid): \"zap(a)\" [9] unknown operator\n"
	assert.Equal(t, expected, buf.String())

	buf.Reset()
	Fprint(&buf, nil)
	assert.Equal(t, ":nil\n", buf.String())
}
