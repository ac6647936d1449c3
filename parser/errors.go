package parser

import "fmt"

// ParseError is the interface implemented by all errors reported by the
// parser. Line is the best-known source line for the failure: the line of
// the token that failed to match, or the line of the last successfully
// consumed token if the stream was already empty.
type ParseError interface {
	error
	Line() int
}

// UnexpectedEOFError is reported when a grammar rule needs another token and
// the stream is empty. Expected names the construct or text the rule was
// looking for; it may be empty.
type UnexpectedEOFError struct {
	Expected string
	line     int
}

func (e *UnexpectedEOFError) Line() int { return e.line }

func (e *UnexpectedEOFError) Error() string {
	if e.Expected == "" {
		return fmt.Sprintf("unexpected end of input on line %d", e.line)
	}
	return fmt.Sprintf("unexpected end of input (expected %s) on line %d", e.Expected, e.line)
}

// UnexpectedTokenError is reported when the next token does not match the
// exact kind and text a rule requires.
type UnexpectedTokenError struct {
	Expected string
	Found    string
	line     int
}

func (e *UnexpectedTokenError) Line() int { return e.line }

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("expected %s but found '%s' on line %d", e.Expected, e.Found, e.line)
}

// InvalidTypeError is reported when a token in type position is not one of
// the type keywords.
type InvalidTypeError struct {
	Found string
	line  int
}

func (e *InvalidTypeError) Line() int { return e.line }

func (e *InvalidTypeError) Error() string {
	return fmt.Sprintf("invalid type '%s' on line %d", e.Found, e.line)
}

// InvalidIdentifierError is reported when a token in identifier position is
// not an identifier, or when an identifier exceeds the maximum length.
type InvalidIdentifierError struct {
	Found string
	line  int
}

func (e *InvalidIdentifierError) Line() int { return e.line }

func (e *InvalidIdentifierError) Error() string {
	return fmt.Sprintf("invalid identifier '%s' on line %d", e.Found, e.line)
}

// InvalidOperatorError is reported when the symbol between two expression
// operands is not a known binary operator.
type InvalidOperatorError struct {
	Found string
	line  int
}

func (e *InvalidOperatorError) Line() int { return e.line }

func (e *InvalidOperatorError) Error() string {
	return fmt.Sprintf("invalid operator '%s' on line %d", e.Found, e.line)
}

// InvalidOperandError is reported when a token in expression operand
// position is none of an identifier, integer literal, or boolean literal.
type InvalidOperandError struct {
	Found string
	line  int
}

func (e *InvalidOperandError) Line() int { return e.line }

func (e *InvalidOperandError) Error() string {
	return fmt.Sprintf("invalid operand '%s' on line %d", e.Found, e.line)
}

// InvalidAssignmentError is reported when the right-hand side of an
// assignment is not a literal or variable reference.
type InvalidAssignmentError struct {
	line int
}

func (e *InvalidAssignmentError) Line() int { return e.line }

func (e *InvalidAssignmentError) Error() string {
	return fmt.Sprintf("invalid assignment value on line %d", e.line)
}

// InvalidReturnError is reported when the token following "return" is not a
// semicolon, literal, or variable reference.
type InvalidReturnError struct {
	line int
}

func (e *InvalidReturnError) Line() int { return e.line }

func (e *InvalidReturnError) Error() string {
	return fmt.Sprintf("invalid return expression on line %d", e.line)
}

// InvalidLiteralError is reported when an integer literal cannot be parsed,
// e.g. it overflows int64.
type InvalidLiteralError struct {
	Found string
	line  int
}

func (e *InvalidLiteralError) Line() int { return e.line }

func (e *InvalidLiteralError) Error() string {
	return fmt.Sprintf("invalid literal '%s' on line %d", e.Found, e.line)
}

// MaxDepthError is reported when block or conditional nesting exceeds the
// parser's depth limit.
type MaxDepthError struct {
	line int
}

func (e *MaxDepthError) Line() int { return e.line }

func (e *MaxDepthError) Error() string {
	return fmt.Sprintf("maximum nesting depth exceeded on line %d", e.line)
}
