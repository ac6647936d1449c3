package parser

import (
	"github.com/decaflang/decaf/ast"
	"github.com/decaflang/decaf/token"
)

// Declaration parsing methods for the Parser:
// - Types and identifiers
// - Variable declarations
// - Parameter lists
// - Function declarations

// parseType consumes one keyword token and maps it to a Decaf type.
func (p *Parser) parseType() (ast.Type, error) {
	if p.input.IsEmpty() {
		return ast.Void, &UnexpectedEOFError{Expected: "type", line: p.lastLine}
	}
	tok := p.input.Remove()
	p.lastLine = tok.Line
	if tok.Type != token.KEYWORD {
		return ast.Void, &InvalidTypeError{Found: tok.Literal, line: tok.Line}
	}
	switch tok.Literal {
	case "int":
		return ast.Int, nil
	case "bool":
		return ast.Bool, nil
	case "void":
		return ast.Void, nil
	default:
		return ast.Void, &InvalidTypeError{Found: tok.Literal, line: tok.Line}
	}
}

// parseIdentifier consumes one identifier token and returns its text.
func (p *Parser) parseIdentifier() (string, error) {
	if p.input.IsEmpty() {
		return "", &UnexpectedEOFError{Expected: "identifier", line: p.lastLine}
	}
	tok := p.input.Remove()
	p.lastLine = tok.Line
	if tok.Type != token.IDENT {
		return "", &InvalidIdentifierError{Found: tok.Literal, line: tok.Line}
	}
	if len(tok.Literal) > MaxIdentifierLength {
		return "", &InvalidIdentifierError{Found: tok.Literal[:MaxIdentifierLength], line: tok.Line}
	}
	return tok.Literal, nil
}

// parseVarDecl parses `type identifier ";"`.
func (p *Parser) parseVarDecl() (*ast.VarDecl, error) {
	line, err := p.peekLine()
	if err != nil {
		return nil, err
	}
	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}
	name, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.SYMBOL, ";"); err != nil {
		return nil, err
	}
	return ast.NewVarDecl(name, typ, false, 1, line), nil
}

// parseParameterList parses zero or more `type identifier` pairs separated
// by commas. The list ends when the lookahead is not a type keyword; after a
// comma another parameter is required, so a trailing comma fails in
// parseType when it sees the closing parenthesis.
func (p *Parser) parseParameterList() ([]*ast.Parameter, error) {
	var params []*ast.Parameter
	if !p.check(token.KEYWORD, "int") && !p.check(token.KEYWORD, "bool") {
		return params, nil
	}
	for {
		typ, err := p.parseType()
		if err != nil {
			return nil, err
		}
		name, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		params = append(params, ast.NewParameter(name, typ))
		if !p.check(token.SYMBOL, ",") {
			return params, nil
		}
		if _, err := p.discard(); err != nil {
			return nil, err
		}
	}
}

// parseFunctionDecl parses `"def" type identifier "(" parameterList ")" block`.
func (p *Parser) parseFunctionDecl() (*ast.FuncDecl, error) {
	line, err := p.peekLine()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.KEYWORD, "def"); err != nil {
		return nil, err
	}
	returnType, err := p.parseType()
	if err != nil {
		return nil, err
	}
	name, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.SYMBOL, "("); err != nil {
		return nil, err
	}
	params, err := p.parseParameterList()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.SYMBOL, ")"); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return ast.NewFuncDecl(name, returnType, params, body, line), nil
}
