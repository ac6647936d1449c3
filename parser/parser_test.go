package parser

import (
	"strings"
	"testing"

	"github.com/decaflang/decaf/ast"
	"github.com/decaflang/decaf/lexer"
	"github.com/decaflang/decaf/token"
	"github.com/stretchr/testify/require"
)

// Core parser tests (parser.go)
// - Entry points and the program rule
// - Stream cursor protocol
// - Empty-input and single-declaration boundaries
// - Max depth limits

func TestParseSingleDeclaration(t *testing.T) {
	program, err := Parse("int x;")
	require.NoError(t, err)
	require.Len(t, program.Variables(), 1)
	require.Empty(t, program.Functions())

	decl := program.Variables()[0]
	require.Equal(t, "x", decl.Name())
	require.Equal(t, ast.Int, decl.Type())
	require.False(t, decl.IsArray())
	require.Equal(t, 1, decl.ArrayLen())
	require.Equal(t, 1, decl.Line())
}

func TestParseSimpleFunction(t *testing.T) {
	program, err := Parse("def int f() { return 1; }")
	require.NoError(t, err)
	require.Empty(t, program.Variables())
	require.Len(t, program.Functions(), 1)

	fn := program.Functions()[0]
	require.Equal(t, "f", fn.Name())
	require.Equal(t, ast.Int, fn.ReturnType())
	require.Empty(t, fn.Parameters())

	body := fn.Body()
	require.Empty(t, body.Variables())
	require.Len(t, body.Statements(), 1)

	ret, ok := body.Statements()[0].(*ast.Return)
	require.True(t, ok)
	lit, ok := ret.Value().(*ast.IntLit)
	require.True(t, ok)
	require.Equal(t, int64(1), lit.Value())
}

func TestParseBlockOrdering(t *testing.T) {
	program, err := Parse("def int f() { int x; x = 5; return x; }")
	require.NoError(t, err)

	body := program.Functions()[0].Body()
	require.Len(t, body.Variables(), 1)
	require.Equal(t, "x", body.Variables()[0].Name())

	stmts := body.Statements()
	require.Len(t, stmts, 2)
	_, isAssign := stmts[0].(*ast.Assignment)
	require.True(t, isAssign)
	_, isReturn := stmts[1].(*ast.Return)
	require.True(t, isReturn)
}

func TestParseEmptyInput(t *testing.T) {
	_, err := Parse("")
	require.Error(t, err)
	var eof *UnexpectedEOFError
	require.ErrorAs(t, err, &eof)
	require.Equal(t, "declaration", eof.Expected)
}

func TestParseMissingSemicolon(t *testing.T) {
	_, err := Parse("int x")
	require.Error(t, err)

	pe, ok := err.(ParseError)
	require.True(t, ok)
	require.Equal(t, 1, pe.Line())
	require.Contains(t, err.Error(), "';'")
	require.Contains(t, err.Error(), "line 1")
}

func TestParseMixedTopLevel(t *testing.T) {
	program, err := Parse(`
int a;
bool b;

def void main() {
	a = 1;
	return;
}

int c;
`)
	require.NoError(t, err)
	require.Len(t, program.Variables(), 3)
	require.Len(t, program.Functions(), 1)

	// Declarations keep source order
	require.Equal(t, "a", program.Variables()[0].Name())
	require.Equal(t, "b", program.Variables()[1].Name())
	require.Equal(t, "c", program.Variables()[2].Name())
	require.Equal(t, 2, program.Variables()[0].Line())
	require.Equal(t, 3, program.Variables()[1].Line())
	require.Equal(t, 10, program.Variables()[2].Line())

	fn := program.Functions()[0]
	require.Equal(t, "main", fn.Name())
	require.Equal(t, ast.Void, fn.ReturnType())
	require.Equal(t, 5, fn.Line())
}

func TestParseParameterList(t *testing.T) {
	program, err := Parse("def bool cmp(int a, int b, bool strict) { return true; }")
	require.NoError(t, err)

	params := program.Functions()[0].Parameters()
	require.Len(t, params, 3)
	require.Equal(t, "a", params[0].Name())
	require.Equal(t, ast.Int, params[0].Type())
	require.Equal(t, "b", params[1].Name())
	require.Equal(t, ast.Int, params[1].Type())
	require.Equal(t, "strict", params[2].Name())
	require.Equal(t, ast.Bool, params[2].Type())
}

func TestParseTrailingParameterComma(t *testing.T) {
	// A comma promises another parameter; the rule that expects a type
	// surfaces the error on the closing parenthesis.
	_, err := Parse("def int f(int a,) { return 1; }")
	require.Error(t, err)
	var invalidType *InvalidTypeError
	require.ErrorAs(t, err, &invalidType)
	require.Equal(t, ")", invalidType.Found)
}

func TestParseFromStream(t *testing.T) {
	// The parser consumes any Stream; feed it a hand-built token queue.
	queue := token.NewQueue([]token.Token{
		{Type: token.KEYWORD, Literal: "bool", Line: 1},
		{Type: token.IDENT, Literal: "flag", Line: 1},
		{Type: token.SYMBOL, Literal: ";", Line: 1},
	})
	program, err := New(queue).Parse()
	require.NoError(t, err)
	require.Len(t, program.Variables(), 1)
	require.Equal(t, ast.Bool, program.Variables()[0].Type())
	require.True(t, queue.IsEmpty())
}

func TestParseStopsAtFirstError(t *testing.T) {
	// Fail-fast: the second declaration is fine but never reached once the
	// first one fails.
	_, err := Parse("int 5; bool ok;")
	require.Error(t, err)
	var invalidIdent *InvalidIdentifierError
	require.ErrorAs(t, err, &invalidIdent)
	require.Equal(t, "5", invalidIdent.Found)
}

func TestMaxDepth(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("def void f() { ")
	for i := 0; i < 600; i++ {
		sb.WriteString("if (true) { ")
	}
	sb.WriteString("return; ")
	for i := 0; i < 600; i++ {
		sb.WriteString("} return; ")
	}
	sb.WriteString("}")
	input := sb.String()

	_, err := Parse(input)
	require.Error(t, err)
	require.Contains(t, err.Error(), "maximum nesting depth")

	_, err = Parse(input, WithMaxDepth(5000))
	require.NoError(t, err)

	_, err = Parse("def void f() { if (true) { return; } return; }", WithMaxDepth(2))
	require.Error(t, err)
	require.Contains(t, err.Error(), "maximum nesting depth")
}

func TestParseLexerErrorPropagates(t *testing.T) {
	_, err := Parse("int x @")
	require.Error(t, err)
	var lexErr *lexer.Error
	require.ErrorAs(t, err, &lexErr)
}

func TestCursorProtocol(t *testing.T) {
	queue := token.NewQueue([]token.Token{
		{Type: token.KEYWORD, Literal: "int", Line: 3},
		{Type: token.IDENT, Literal: "x", Line: 4},
	})
	p := New(queue)

	line, err := p.peekLine()
	require.NoError(t, err)
	require.Equal(t, 3, line)

	require.True(t, p.check(token.KEYWORD, "int"))
	require.True(t, p.checkKind(token.KEYWORD))
	require.False(t, p.check(token.KEYWORD, "bool"))
	require.False(t, p.checkKind(token.SYMBOL))

	require.NoError(t, p.expect(token.KEYWORD, "int"))

	tok, err := p.discard()
	require.NoError(t, err)
	require.Equal(t, "x", tok.Literal)

	// Non-consuming checks never fail on an empty stream
	require.False(t, p.checkKind(token.IDENT))
	require.False(t, p.check(token.IDENT, "x"))

	// Consuming operations do, reporting the last consumed token's line
	_, err = p.peekLine()
	var eof *UnexpectedEOFError
	require.ErrorAs(t, err, &eof)
	require.Equal(t, 4, eof.Line())

	_, err = p.discard()
	require.ErrorAs(t, err, &eof)

	err = p.expect(token.SYMBOL, ";")
	require.ErrorAs(t, err, &eof)
	require.Equal(t, "';'", eof.Expected)
}
