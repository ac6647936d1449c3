// Package lexer scans Decaf source code into a queue of tokens.
//
// The scanner is deliberately small: it recognizes identifiers, reserved
// keywords, decimal and hexadecimal integer literals, double-quoted string
// literals, one- and two-character symbols, and line comments. It tracks
// 1-indexed source lines for diagnostics and stops at the first illegal
// input.
package lexer

import (
	"fmt"

	"github.com/decaflang/decaf/token"
)

// Error describes a scanning failure at a particular source line.
type Error struct {
	Message string
	Line    int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s on line %d", e.Message, e.Line)
}

// Lexer scans an input string into tokens.
type Lexer struct {
	input string
	pos   int
	line  int
}

// New returns a Lexer for the given source text.
func New(input string) *Lexer {
	return &Lexer{input: input, line: 1}
}

// Tokenize scans the entire source text and returns the token queue the
// parser consumes. It fails on the first illegal character or unterminated
// string.
func Tokenize(input string) (*token.Queue, error) {
	l := New(input)
	queue := token.NewQueue(nil)
	for {
		tok, ok, err := l.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return queue, nil
		}
		queue.Push(tok)
	}
}

// Next returns the next token. The second result is false once the input is
// exhausted.
func (l *Lexer) Next() (token.Token, bool, error) {
	l.skipWhitespaceAndComments()
	if l.pos >= len(l.input) {
		return token.Token{}, false, nil
	}
	ch := l.input[l.pos]
	switch {
	case isLetter(ch) || ch == '_':
		return l.scanIdentifier(), true, nil
	case isDigit(ch):
		return l.scanNumber(), true, nil
	case ch == '"':
		tok, err := l.scanString()
		if err != nil {
			return token.Token{}, false, err
		}
		return tok, true, nil
	default:
		tok, err := l.scanSymbol()
		if err != nil {
			return token.Token{}, false, err
		}
		return tok, true, nil
	}
}

func (l *Lexer) skipWhitespaceAndComments() {
	for l.pos < len(l.input) {
		ch := l.input[l.pos]
		switch {
		case ch == '\n':
			l.line++
			l.pos++
		case ch == ' ' || ch == '\t' || ch == '\r':
			l.pos++
		case ch == '/' && l.pos+1 < len(l.input) && l.input[l.pos+1] == '/':
			for l.pos < len(l.input) && l.input[l.pos] != '\n' {
				l.pos++
			}
		default:
			return
		}
	}
}

func (l *Lexer) scanIdentifier() token.Token {
	start := l.pos
	for l.pos < len(l.input) && (isLetter(l.input[l.pos]) || isDigit(l.input[l.pos]) || l.input[l.pos] == '_') {
		l.pos++
	}
	literal := l.input[start:l.pos]
	return token.Token{Type: token.LookupIdentifier(literal), Literal: literal, Line: l.line}
}

func (l *Lexer) scanNumber() token.Token {
	start := l.pos
	// Hexadecimal literals start with "0x" or "0X"
	if l.input[l.pos] == '0' && l.pos+1 < len(l.input) &&
		(l.input[l.pos+1] == 'x' || l.input[l.pos+1] == 'X') && l.pos+2 < len(l.input) && isHexDigit(l.input[l.pos+2]) {
		l.pos += 2
		for l.pos < len(l.input) && isHexDigit(l.input[l.pos]) {
			l.pos++
		}
		return token.Token{Type: token.HEX, Literal: l.input[start:l.pos], Line: l.line}
	}
	for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
		l.pos++
	}
	return token.Token{Type: token.DECIMAL, Literal: l.input[start:l.pos], Line: l.line}
}

// scanString scans a double-quoted string literal. The returned literal
// includes the surrounding quotes; the parser strips them.
func (l *Lexer) scanString() (token.Token, error) {
	startLine := l.line
	start := l.pos
	l.pos++ // opening quote
	for l.pos < len(l.input) {
		ch := l.input[l.pos]
		if ch == '"' {
			l.pos++
			return token.Token{Type: token.STRING, Literal: l.input[start:l.pos], Line: startLine}, nil
		}
		if ch == '\n' {
			break
		}
		if ch == '\\' && l.pos+1 < len(l.input) {
			l.pos++ // keep escape sequences intact
		}
		l.pos++
	}
	return token.Token{}, &Error{Message: "unterminated string literal", Line: startLine}
}

// twoCharSymbols lists symbols scanned greedily before single characters.
var twoCharSymbols = []string{"&&", "||", "==", "!=", "<=", ">="}

const singleCharSymbols = "(){}[],;=+-*/%<>!"

func (l *Lexer) scanSymbol() (token.Token, error) {
	for _, sym := range twoCharSymbols {
		if l.pos+2 <= len(l.input) && l.input[l.pos:l.pos+2] == sym {
			l.pos += 2
			return token.Token{Type: token.SYMBOL, Literal: sym, Line: l.line}, nil
		}
	}
	ch := l.input[l.pos]
	for i := 0; i < len(singleCharSymbols); i++ {
		if ch == singleCharSymbols[i] {
			l.pos++
			return token.Token{Type: token.SYMBOL, Literal: string(ch), Line: l.line}, nil
		}
	}
	return token.Token{}, &Error{Message: fmt.Sprintf("illegal character %q", ch), Line: l.line}
}

func isLetter(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isHexDigit(ch byte) bool {
	return isDigit(ch) || ('a' <= ch && ch <= 'f') || ('A' <= ch && ch <= 'F')
}
