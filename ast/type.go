package ast

// NodeType represents the type of the AST node
type NodeType uint16

// Node types
const (
	nodeTypeValue  NodeType = 128
	nodeTypeVector NodeType = 256

	NodeTypeInvalid NodeType = 0

	NodeTypeInt    = nodeTypeValue | 1
	NodeTypeSymbol = nodeTypeValue | 4

	NodeTypeCall = nodeTypeVector | 4
)

func (nt NodeType) String() string {
	s, ok := nodeTypeName[nt]
	if ok {
		return s
	}
	return ""
}

var nodeTypeName = map[NodeType]string{
	NodeTypeInvalid: "invalid",
	NodeTypeInt:     "int",
	NodeTypeSymbol:  "symbol",
	NodeTypeCall:    "call",
}
