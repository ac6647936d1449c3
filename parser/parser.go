// Package parser converts a stream of Decaf tokens into an abstract syntax
// tree (AST).
//
// The parser is a recursive-descent parser with one grammar-rule method per
// non-terminal. Every rule consumes a syntactically self-contained prefix of
// the token stream before returning, so the stream position after a rule
// call is exactly the first token past that construct. Each rule decides its
// production from at most one token of lookahead; there is no backtracking.
//
// Parsing is fail-fast: the first malformed construct aborts the entire
// parse and the typed error propagates unchanged to the caller. There is no
// error recovery and no partial AST.
package parser

import (
	"github.com/decaflang/decaf/ast"
	"github.com/decaflang/decaf/lexer"
	"github.com/decaflang/decaf/token"
)

// Stream is the token stream consumed by the parser. It must be finite and
// yield tokens strictly in source order with accurate line numbers.
// *token.Queue implements Stream.
type Stream interface {
	// IsEmpty returns true if no tokens remain.
	IsEmpty() bool

	// Peek returns the front token without removing it.
	Peek() token.Token

	// Remove removes and returns the front token.
	Remove() token.Token
}

// MaxIdentifierLength bounds the length of a parsed identifier.
const MaxIdentifierLength = 256

// DefaultMaxDepth is the default maximum nesting depth for parsing.
const DefaultMaxDepth = 500

// Option is a configuration function for a Parser.
type Option func(*Parser)

// WithMaxDepth sets the maximum nesting depth for the parser. This prevents
// stack overflow on deeply nested input. The default is 500.
func WithMaxDepth(depth int) Option {
	return func(p *Parser) {
		p.maxDepth = depth
	}
}

// Parser consumes a token Stream and produces an AST. A Parser should be
// used only once, by calling Parse to produce the tree.
type Parser struct {
	// input is the token stream; the only mutable state shared between rules
	input Stream

	// lastLine is the line of the last successfully consumed token, used to
	// report a best-known line when the stream runs out
	lastLine int

	// current recursion depth
	depth int

	// maximum allowed recursion depth
	maxDepth int
}

// New returns a Parser that consumes the given token stream.
func New(input Stream, options ...Option) *Parser {
	p := &Parser{
		input:    input,
		lastLine: 1,
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

// Parse the provided source as Decaf code and return the AST. This is a
// shorthand way to run the lexer and then a Parser on its token queue.
func Parse(source string, options ...Option) (*ast.Program, error) {
	queue, err := lexer.Tokenize(source)
	if err != nil {
		return nil, err
	}
	return New(queue, options...).Parse()
}

// Parse consumes the entire token stream and returns the Program root, or
// the first parse error encountered in source order.
func (p *Parser) Parse() (*ast.Program, error) {
	return p.parseProgram()
}

// parseProgram parses the whole stream as a sequence of top-level variable
// declarations and function declarations. A leading "def" routes to function
// parsing; anything else must be a variable declaration.
func (p *Parser) parseProgram() (*ast.Program, error) {
	if p.input.IsEmpty() {
		return nil, &UnexpectedEOFError{Expected: "declaration", line: p.lastLine}
	}
	var vars []*ast.VarDecl
	var funcs []*ast.FuncDecl
	for !p.input.IsEmpty() {
		if p.check(token.KEYWORD, "def") {
			fn, err := p.parseFunctionDecl()
			if err != nil {
				return nil, err
			}
			funcs = append(funcs, fn)
		} else {
			decl, err := p.parseVarDecl()
			if err != nil {
				return nil, err
			}
			vars = append(vars, decl)
		}
	}
	return ast.NewProgram(vars, funcs), nil
}

// enter increments the nesting depth, failing when the limit is exceeded.
// Rules that recurse through blocks and conditionals call enter/leave in
// pairs.
func (p *Parser) enter() error {
	p.depth++
	if p.depth > p.maxDepth {
		return &MaxDepthError{line: p.lastLine}
	}
	return nil
}

func (p *Parser) leave() {
	p.depth--
}

// Stream cursor protocol. No operation removes more than one token.

// peekLine returns the source line of the next token.
func (p *Parser) peekLine() (int, error) {
	if p.input.IsEmpty() {
		return 0, &UnexpectedEOFError{line: p.lastLine}
	}
	return p.input.Peek().Line, nil
}

// expect removes the next token, which must match the given kind and text
// exactly.
func (p *Parser) expect(typ token.Type, text string) error {
	if p.input.IsEmpty() {
		return &UnexpectedEOFError{Expected: "'" + text + "'", line: p.lastLine}
	}
	tok := p.input.Remove()
	p.lastLine = tok.Line
	if tok.Type != typ || tok.Literal != text {
		return &UnexpectedTokenError{Expected: "'" + text + "'", Found: tok.Literal, line: tok.Line}
	}
	return nil
}

// discard removes and returns the next token unconditionally.
func (p *Parser) discard() (token.Token, error) {
	if p.input.IsEmpty() {
		return token.Token{}, &UnexpectedEOFError{line: p.lastLine}
	}
	tok := p.input.Remove()
	p.lastLine = tok.Line
	return tok, nil
}

// checkKind returns true if the next token has the given kind. It never
// fails: an empty stream reports false.
func (p *Parser) checkKind(typ token.Type) bool {
	if p.input.IsEmpty() {
		return false
	}
	return p.input.Peek().Type == typ
}

// check returns true if the next token has the given kind and text. It never
// fails: an empty stream reports false.
func (p *Parser) check(typ token.Type, text string) bool {
	if p.input.IsEmpty() {
		return false
	}
	tok := p.input.Peek()
	return tok.Type == typ && tok.Literal == text
}
