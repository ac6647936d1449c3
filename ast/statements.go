package ast

import "bytes"

// Block holds a sequence of local variable declarations followed by a
// sequence of statements. It is used for function bodies and conditional
// branches. Declarations always precede statements in the current grammar.
type Block struct {
	variables  []*VarDecl
	statements []Stmt
	line       int
}

// NewBlock creates a new Block node.
func NewBlock(variables []*VarDecl, statements []Stmt, line int) *Block {
	return &Block{variables: variables, statements: statements, line: line}
}

func (b *Block) stmtNode() {}

func (b *Block) Variables() []*VarDecl { return b.variables }

func (b *Block) Statements() []Stmt { return b.statements }

func (b *Block) Line() int { return b.line }

// EndsWithReturn reports whether the block's final statement is a return.
func (b *Block) EndsWithReturn() bool {
	count := len(b.statements)
	if count == 0 {
		return false
	}
	_, isReturn := b.statements[count-1].(*Return)
	return isReturn
}

func (b *Block) String() string {
	var out bytes.Buffer
	out.WriteString("{\n")
	for _, v := range b.variables {
		out.WriteString(v.String())
		out.WriteString("\n")
	}
	for _, s := range b.statements {
		out.WriteString(s.String())
		out.WriteString("\n")
	}
	out.WriteString("}")
	return out.String()
}

// Assignment is a statement that stores a value into a location.
type Assignment struct {
	target *Location
	value  Expr
	line   int
}

// NewAssignment creates a new Assignment node.
func NewAssignment(target *Location, value Expr, line int) *Assignment {
	return &Assignment{target: target, value: value, line: line}
}

func (a *Assignment) stmtNode() {}

func (a *Assignment) Target() *Location { return a.target }

func (a *Assignment) Value() Expr { return a.value }

func (a *Assignment) Line() int { return a.line }

func (a *Assignment) String() string {
	return a.target.String() + " = " + a.value.String() + ";"
}

// Conditional is an if statement with an optional else branch.
type Conditional struct {
	condition Expr
	ifBody    *Block
	elseBody  *Block // nil when there is no else branch
	line      int
}

// NewConditional creates a new Conditional node. elseBody may be nil.
func NewConditional(condition Expr, ifBody *Block, elseBody *Block, line int) *Conditional {
	return &Conditional{condition: condition, ifBody: ifBody, elseBody: elseBody, line: line}
}

func (c *Conditional) stmtNode() {}

func (c *Conditional) Condition() Expr { return c.condition }

func (c *Conditional) IfBody() *Block { return c.ifBody }

func (c *Conditional) ElseBody() *Block { return c.elseBody }

func (c *Conditional) Line() int { return c.line }

func (c *Conditional) String() string {
	var out bytes.Buffer
	out.WriteString("if (")
	out.WriteString(c.condition.String())
	out.WriteString(") ")
	out.WriteString(c.ifBody.String())
	if c.elseBody != nil {
		out.WriteString(" else ")
		out.WriteString(c.elseBody.String())
	}
	return out.String()
}

// Break is a break statement.
type Break struct {
	line int
}

// NewBreak creates a new Break node.
func NewBreak(line int) *Break {
	return &Break{line: line}
}

func (b *Break) stmtNode() {}

func (b *Break) Line() int { return b.line }

func (b *Break) String() string { return "break;" }

// Continue is a continue statement.
type Continue struct {
	line int
}

// NewContinue creates a new Continue node.
func NewContinue(line int) *Continue {
	return &Continue{line: line}
}

func (c *Continue) stmtNode() {}

func (c *Continue) Line() int { return c.line }

func (c *Continue) String() string { return "continue;" }

// Return is a return statement with an optional value.
type Return struct {
	value Expr // nil for a bare "return;"
	line  int
}

// NewReturn creates a new Return node. value may be nil.
func NewReturn(value Expr, line int) *Return {
	return &Return{value: value, line: line}
}

func (r *Return) stmtNode() {}

func (r *Return) Value() Expr { return r.value }

func (r *Return) Line() int { return r.line }

func (r *Return) String() string {
	if r.value == nil {
		return "return;"
	}
	return "return " + r.value.String() + ";"
}
