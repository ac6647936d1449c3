package parser

import (
	"strconv"
	"strings"

	"github.com/decaflang/decaf/ast"
	"github.com/decaflang/decaf/token"
)

// Statement parsing methods for the Parser:
// - Blocks
// - Assignments
// - Conditionals
// - Terminal statements (break/continue/return)

// parseBlock parses `"{" vardecl* (assignment | conditional)* terminal "}"`.
// Local declarations must precede statements, and exactly one
// break/continue/return statement terminates every block. This ordering is a
// grammar restriction of the current language subset, not a general block
// grammar.
func (p *Parser) parseBlock() (*ast.Block, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	line, err := p.peekLine()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.SYMBOL, "{"); err != nil {
		return nil, err
	}

	var vars []*ast.VarDecl
	for p.check(token.KEYWORD, "int") || p.check(token.KEYWORD, "bool") {
		decl, err := p.parseVarDecl()
		if err != nil {
			return nil, err
		}
		vars = append(vars, decl)
	}

	var stmts []ast.Stmt
	for {
		if p.checkKind(token.IDENT) {
			assign, err := p.parseAssignment()
			if err != nil {
				return nil, err
			}
			stmts = append(stmts, assign)
		} else if p.check(token.KEYWORD, "if") {
			cond, err := p.parseConditional()
			if err != nil {
				return nil, err
			}
			stmts = append(stmts, cond)
		} else {
			break
		}
	}

	terminal, err := p.parseTerminalStatement()
	if err != nil {
		return nil, err
	}
	stmts = append(stmts, terminal)

	if err := p.expect(token.SYMBOL, "}"); err != nil {
		return nil, err
	}
	return ast.NewBlock(vars, stmts, line), nil
}

// parseAssignment parses `identifier "=" value ";"` where value is a single
// literal or variable reference. Function calls are not supported.
func (p *Parser) parseAssignment() (*ast.Assignment, error) {
	line, err := p.peekLine()
	if err != nil {
		return nil, err
	}
	name, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	target := ast.NewLocation(name, nil, line)

	if err := p.expect(token.SYMBOL, "="); err != nil {
		return nil, err
	}

	value, err := p.parseAssignmentValue()
	if err != nil {
		return nil, err
	}

	if err := p.expect(token.SYMBOL, ";"); err != nil {
		return nil, err
	}
	return ast.NewAssignment(target, value, line), nil
}

func (p *Parser) parseAssignmentValue() (ast.Expr, error) {
	line, err := p.peekLine()
	if err != nil {
		return nil, err
	}
	switch {
	case p.checkKind(token.DECIMAL):
		tok, _ := p.discard()
		return p.intLiteral(tok, 10)
	case p.checkKind(token.HEX):
		tok, _ := p.discard()
		return p.intLiteral(tok, 16)
	case p.checkKind(token.STRING):
		tok, _ := p.discard()
		return ast.NewStringLit(stripQuotes(tok.Literal), tok.Line), nil
	case p.check(token.KEYWORD, "true") || p.check(token.KEYWORD, "false"):
		tok, _ := p.discard()
		return ast.NewBoolLit(tok.Literal == "true", tok.Line), nil
	case p.checkKind(token.IDENT):
		tok, _ := p.discard()
		return ast.NewLocation(tok.Literal, nil, tok.Line), nil
	default:
		return nil, &InvalidAssignmentError{line: line}
	}
}

// parseConditional parses `"if" "(" expression ")" block ["else" block]`.
func (p *Parser) parseConditional() (*ast.Conditional, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	line, err := p.peekLine()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.KEYWORD, "if"); err != nil {
		return nil, err
	}
	if err := p.expect(token.SYMBOL, "("); err != nil {
		return nil, err
	}
	condition, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.SYMBOL, ")"); err != nil {
		return nil, err
	}
	ifBody, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	if !p.check(token.KEYWORD, "else") {
		return ast.NewConditional(condition, ifBody, nil, line), nil
	}
	if _, err := p.discard(); err != nil {
		return nil, err
	}
	elseBody, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return ast.NewConditional(condition, ifBody, elseBody, line), nil
}

// parseTerminalStatement parses the single statement that terminates every
// block: `continue;`, `break;`, or `return [value];`.
func (p *Parser) parseTerminalStatement() (ast.Stmt, error) {
	line, err := p.peekLine()
	if err != nil {
		return nil, err
	}
	switch {
	case p.check(token.KEYWORD, "continue"):
		p.discard()
		if err := p.expect(token.SYMBOL, ";"); err != nil {
			return nil, err
		}
		return ast.NewContinue(line), nil
	case p.check(token.KEYWORD, "break"):
		p.discard()
		if err := p.expect(token.SYMBOL, ";"); err != nil {
			return nil, err
		}
		return ast.NewBreak(line), nil
	case p.check(token.KEYWORD, "return"):
		p.discard()
		return p.parseReturnValue(line)
	default:
		tok := p.input.Peek()
		return nil, &UnexpectedTokenError{
			Expected: "'break', 'continue', or 'return'",
			Found:    tok.Literal,
			line:     line,
		}
	}
}

// parseReturnValue parses what follows the "return" keyword: a bare
// semicolon, or a single literal or variable reference followed by one.
func (p *Parser) parseReturnValue(line int) (*ast.Return, error) {
	switch {
	case p.checkKind(token.SYMBOL):
		if err := p.expect(token.SYMBOL, ";"); err != nil {
			return nil, err
		}
		return ast.NewReturn(nil, line), nil
	case p.checkKind(token.IDENT):
		name, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		if err := p.expect(token.SYMBOL, ";"); err != nil {
			return nil, err
		}
		return ast.NewReturn(ast.NewLocation(name, nil, line), line), nil
	case p.checkKind(token.DECIMAL):
		tok, _ := p.discard()
		value, err := p.intLiteral(tok, 10)
		if err != nil {
			return nil, err
		}
		if err := p.expect(token.SYMBOL, ";"); err != nil {
			return nil, err
		}
		return ast.NewReturn(value, line), nil
	case p.checkKind(token.HEX):
		tok, _ := p.discard()
		value, err := p.intLiteral(tok, 16)
		if err != nil {
			return nil, err
		}
		if err := p.expect(token.SYMBOL, ";"); err != nil {
			return nil, err
		}
		return ast.NewReturn(value, line), nil
	case p.checkKind(token.STRING):
		tok, _ := p.discard()
		value := ast.NewStringLit(stripQuotes(tok.Literal), tok.Line)
		if err := p.expect(token.SYMBOL, ";"); err != nil {
			return nil, err
		}
		return ast.NewReturn(value, line), nil
	case p.check(token.KEYWORD, "true") || p.check(token.KEYWORD, "false"):
		tok, _ := p.discard()
		value := ast.NewBoolLit(tok.Literal == "true", tok.Line)
		if err := p.expect(token.SYMBOL, ";"); err != nil {
			return nil, err
		}
		return ast.NewReturn(value, line), nil
	default:
		return nil, &InvalidReturnError{line: line}
	}
}

// intLiteral converts an integer token in the given base to an IntLit node.
func (p *Parser) intLiteral(tok token.Token, base int) (*ast.IntLit, error) {
	text := tok.Literal
	if base == 16 {
		text = strings.TrimPrefix(strings.TrimPrefix(text, "0x"), "0X")
	}
	value, err := strconv.ParseInt(text, base, 64)
	if err != nil {
		return nil, &InvalidLiteralError{Found: tok.Literal, line: tok.Line}
	}
	return ast.NewIntLit(value, tok.Line), nil
}

// stripQuotes removes the surrounding double quotes from a string literal's
// source text.
func stripQuotes(literal string) string {
	if len(literal) >= 2 && literal[0] == '"' && literal[len(literal)-1] == '"' {
		return literal[1 : len(literal)-1]
	}
	return literal
}
