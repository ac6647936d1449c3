package parser

import (
	"github.com/decaflang/decaf/ast"
	"github.com/decaflang/decaf/token"
)

// Expression parsing methods for the Parser.
//
// The expression grammar is deliberately restricted: no operator precedence,
// no parenthesized sub-expressions, no function calls, and at most one
// binary operator per expression. Three forms are recognized:
//
//  1. "!" followed by a type keyword that must map to bool
//  2. a bare boolean keyword literal
//  3. operand operator operand

// binaryOperators maps operator symbol text to its operator tag. "<" and
// "<=" carry distinct tags.
var binaryOperators = map[string]ast.BinaryOperator{
	"||": ast.OpOr,
	"&&": ast.OpAnd,
	"==": ast.OpEq,
	"!=": ast.OpNotEq,
	"<":  ast.OpLess,
	"<=": ast.OpLessEq,
	">":  ast.OpGreater,
	">=": ast.OpGreaterEq,
	"+":  ast.OpAdd,
	"-":  ast.OpSub,
	"*":  ast.OpMul,
	"/":  ast.OpDiv,
	"%":  ast.OpMod,
}

func (p *Parser) parseExpression() (ast.Expr, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	line, err := p.peekLine()
	if err != nil {
		return nil, err
	}

	// The "!" form is a narrow special case, not general unary application:
	// the token after "!" must parse as the bool type keyword, and the
	// resulting operand is the literal true.
	if p.check(token.SYMBOL, "!") {
		p.discard()
		found := p.input.Peek().Literal
		typ, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if typ != ast.Bool {
			return nil, &InvalidOperandError{Found: found, line: line}
		}
		operand := ast.NewBoolLit(found != "false", line)
		return ast.NewUnaryOp(ast.OpNot, operand, line), nil
	}

	// Bare boolean literal
	if p.check(token.KEYWORD, "true") || p.check(token.KEYWORD, "false") {
		tok, _ := p.discard()
		return ast.NewBoolLit(tok.Literal == "true", line), nil
	}

	left, err := p.parseOperand()
	if err != nil {
		return nil, err
	}
	op, err := p.parseBinaryOperator()
	if err != nil {
		return nil, err
	}
	right, err := p.parseOperand()
	if err != nil {
		return nil, err
	}
	return ast.NewBinaryOp(op, left, right, line), nil
}

// parseOperand resolves a single expression operand: a variable reference,
// an integer literal, or a boolean literal.
func (p *Parser) parseOperand() (ast.Expr, error) {
	line, err := p.peekLine()
	if err != nil {
		return nil, err
	}
	switch {
	case p.checkKind(token.IDENT):
		name, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		return ast.NewLocation(name, nil, line), nil
	case p.checkKind(token.DECIMAL):
		tok, _ := p.discard()
		return p.intLiteral(tok, 10)
	case p.checkKind(token.HEX):
		tok, _ := p.discard()
		return p.intLiteral(tok, 16)
	case p.check(token.KEYWORD, "true") || p.check(token.KEYWORD, "false"):
		tok, _ := p.discard()
		return ast.NewBoolLit(tok.Literal == "true", line), nil
	default:
		return nil, &InvalidOperandError{Found: p.input.Peek().Literal, line: line}
	}
}

// parseBinaryOperator consumes the operator token between two operands.
func (p *Parser) parseBinaryOperator() (ast.BinaryOperator, error) {
	if p.input.IsEmpty() {
		return 0, &UnexpectedEOFError{Expected: "operator", line: p.lastLine}
	}
	tok := p.input.Remove()
	p.lastLine = tok.Line
	op, ok := binaryOperators[tok.Literal]
	if !ok {
		return 0, &InvalidOperatorError{Found: tok.Literal, line: tok.Line}
	}
	return op, nil
}
