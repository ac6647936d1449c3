// Package ast defines the abstract syntax tree representation of Decaf code.
//
// Nodes are created by the parser through the New* constructors and form a
// strict tree: every node is owned by exactly one parent and is never shared
// or revisited after construction. Each node records the 1-indexed source
// line of its leading token so later compiler phases can report diagnostics.
package ast

// Node represents a portion of the syntax tree.
type Node interface {
	// Line returns the source line of the first token belonging to the node.
	Line() int

	// String returns a human friendly representation of the Node. This should
	// be similar to the original source code, but not necessarily identical.
	String() string
}

// Stmt represents a statement node. Statements cause side effects but
// do not evaluate to a value.
type Stmt interface {
	Node
	stmtNode()
}

// Expr represents an expression node. Expressions evaluate to a value
// and may be embedded within other expressions.
type Expr interface {
	Node
	exprNode()
}

// Type is a Decaf data type. Void is a legal declared type only in function
// return position; this layer does not enforce that.
type Type int

// Decaf types
const (
	Void Type = iota
	Int
	Bool
)

func (t Type) String() string {
	switch t {
	case Int:
		return "int"
	case Bool:
		return "bool"
	default:
		return "void"
	}
}
