package ast

// Visitor defines the interface for AST traversal. If Visit returns nil,
// children of the node are not visited. Otherwise, the returned Visitor
// is used to visit children.
type Visitor interface {
	Visit(node Node) (w Visitor)
}

// Walk traverses an AST in depth-first order. It starts by calling
// v.Visit(node); if the returned visitor w is not nil, Walk is invoked
// recursively with visitor w for each of the non-nil children of node.
func Walk(v Visitor, node Node) {
	if v = v.Visit(node); v == nil {
		return
	}

	switch n := node.(type) {
	case *Program:
		for _, decl := range n.Variables() {
			Walk(v, decl)
		}
		for _, fn := range n.Functions() {
			Walk(v, fn)
		}

	case *FuncDecl:
		Walk(v, n.Body())

	case *Block:
		for _, decl := range n.Variables() {
			Walk(v, decl)
		}
		for _, stmt := range n.Statements() {
			Walk(v, stmt)
		}

	case *Assignment:
		Walk(v, n.Target())
		Walk(v, n.Value())

	case *Conditional:
		Walk(v, n.Condition())
		Walk(v, n.IfBody())
		if n.ElseBody() != nil {
			Walk(v, n.ElseBody())
		}

	case *Return:
		if n.Value() != nil {
			Walk(v, n.Value())
		}

	case *BinaryOp:
		Walk(v, n.Left())
		Walk(v, n.Right())

	case *UnaryOp:
		Walk(v, n.Operand())

	case *Location:
		if n.Index() != nil {
			Walk(v, n.Index())
		}
	}
}

type inspector func(Node) bool

func (f inspector) Visit(node Node) Visitor {
	if f(node) {
		return f
	}
	return nil
}

// Inspect traverses an AST in depth-first order, calling f for each node.
// If f returns false, children of the node are not visited.
func Inspect(node Node, f func(Node) bool) {
	Walk(inspector(f), node)
}
