package ast

import (
	"strconv"
)

// IntLit is an integer literal. Decimal and hexadecimal source literals both
// produce an IntLit; the base is not preserved.
type IntLit struct {
	value int64
	line  int
}

// NewIntLit creates a new IntLit node.
func NewIntLit(value int64, line int) *IntLit {
	return &IntLit{value: value, line: line}
}

func (l *IntLit) exprNode() {}

func (l *IntLit) Value() int64 { return l.value }

func (l *IntLit) Line() int { return l.line }

func (l *IntLit) String() string { return strconv.FormatInt(l.value, 10) }

// BoolLit is a boolean literal.
type BoolLit struct {
	value bool
	line  int
}

// NewBoolLit creates a new BoolLit node.
func NewBoolLit(value bool, line int) *BoolLit {
	return &BoolLit{value: value, line: line}
}

func (l *BoolLit) exprNode() {}

func (l *BoolLit) Value() bool { return l.value }

func (l *BoolLit) Line() int { return l.line }

func (l *BoolLit) String() string { return strconv.FormatBool(l.value) }

// StringLit is a string literal. The value has the surrounding quotes
// stripped but escape sequences are preserved as written.
type StringLit struct {
	value string
	line  int
}

// NewStringLit creates a new StringLit node.
func NewStringLit(value string, line int) *StringLit {
	return &StringLit{value: value, line: line}
}

func (l *StringLit) exprNode() {}

func (l *StringLit) Value() string { return l.value }

func (l *StringLit) Line() int { return l.line }

func (l *StringLit) String() string { return `"` + l.value + `"` }
