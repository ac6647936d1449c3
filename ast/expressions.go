package ast

import "bytes"

// BinaryOperator identifies a binary operator.
type BinaryOperator int

// Binary operators
const (
	OpOr BinaryOperator = iota
	OpAnd
	OpEq
	OpNotEq
	OpLess
	OpLessEq
	OpGreater
	OpGreaterEq
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpMod
)

func (op BinaryOperator) String() string {
	switch op {
	case OpOr:
		return "||"
	case OpAnd:
		return "&&"
	case OpEq:
		return "=="
	case OpNotEq:
		return "!="
	case OpLess:
		return "<"
	case OpLessEq:
		return "<="
	case OpGreater:
		return ">"
	case OpGreaterEq:
		return ">="
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpMod:
		return "%"
	default:
		return "?"
	}
}

// UnaryOperator identifies a unary operator.
type UnaryOperator int

// Unary operators
const (
	OpNot UnaryOperator = iota
	OpNeg
)

func (op UnaryOperator) String() string {
	if op == OpNeg {
		return "-"
	}
	return "!"
}

// BinaryOp is a binary operation over two operand expressions.
type BinaryOp struct {
	op    BinaryOperator
	left  Expr
	right Expr
	line  int
}

// NewBinaryOp creates a new BinaryOp node.
func NewBinaryOp(op BinaryOperator, left Expr, right Expr, line int) *BinaryOp {
	return &BinaryOp{op: op, left: left, right: right, line: line}
}

func (e *BinaryOp) exprNode() {}

func (e *BinaryOp) Operator() BinaryOperator { return e.op }

func (e *BinaryOp) Left() Expr { return e.left }

func (e *BinaryOp) Right() Expr { return e.right }

func (e *BinaryOp) Line() int { return e.line }

func (e *BinaryOp) String() string {
	var out bytes.Buffer
	out.WriteString(e.left.String())
	out.WriteString(" ")
	out.WriteString(e.op.String())
	out.WriteString(" ")
	out.WriteString(e.right.String())
	return out.String()
}

// UnaryOp is a unary operation over a single operand expression.
type UnaryOp struct {
	op      UnaryOperator
	operand Expr
	line    int
}

// NewUnaryOp creates a new UnaryOp node.
func NewUnaryOp(op UnaryOperator, operand Expr, line int) *UnaryOp {
	return &UnaryOp{op: op, operand: operand, line: line}
}

func (e *UnaryOp) exprNode() {}

func (e *UnaryOp) Operator() UnaryOperator { return e.op }

func (e *UnaryOp) Operand() Expr { return e.operand }

func (e *UnaryOp) Line() int { return e.line }

func (e *UnaryOp) String() string {
	return e.op.String() + e.operand.String()
}

// Location is a reference to a named variable, with an optional index
// expression. The current grammar never produces an index; the field exists
// for later language subsets that add arrays.
type Location struct {
	name  string
	index Expr // nil unless indexed
	line  int
}

// NewLocation creates a new Location node. index may be nil.
func NewLocation(name string, index Expr, line int) *Location {
	return &Location{name: name, index: index, line: line}
}

func (e *Location) exprNode() {}

func (e *Location) Name() string { return e.name }

func (e *Location) Index() Expr { return e.index }

func (e *Location) Line() int { return e.line }

func (e *Location) String() string {
	if e.index != nil {
		return e.name + "[" + e.index.String() + "]"
	}
	return e.name
}
