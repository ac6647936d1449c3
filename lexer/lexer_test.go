package lexer

import (
	"testing"

	"github.com/decaflang/decaf/token"
	"github.com/stretchr/testify/require"
)

func tokenize(t *testing.T, input string) []token.Token {
	t.Helper()
	queue, err := Tokenize(input)
	require.NoError(t, err)
	var tokens []token.Token
	for !queue.IsEmpty() {
		tokens = append(tokens, queue.Remove())
	}
	return tokens
}

func TestTokenizeDeclaration(t *testing.T) {
	tokens := tokenize(t, "int x;")
	require.Equal(t, []token.Token{
		{Type: token.KEYWORD, Literal: "int", Line: 1},
		{Type: token.IDENT, Literal: "x", Line: 1},
		{Type: token.SYMBOL, Literal: ";", Line: 1},
	}, tokens)
}

func TestTokenizeFunction(t *testing.T) {
	tokens := tokenize(t, "def int f(int a, bool b) { return a; }")
	literals := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		literals = append(literals, tok.Literal)
	}
	require.Equal(t, []string{
		"def", "int", "f", "(", "int", "a", ",", "bool", "b", ")",
		"{", "return", "a", ";", "}",
	}, literals)
	require.Equal(t, token.KEYWORD, tokens[0].Type)
	require.Equal(t, token.IDENT, tokens[2].Type)
	require.Equal(t, token.SYMBOL, tokens[3].Type)
}

func TestTokenizeLiterals(t *testing.T) {
	tests := []struct {
		input    string
		expected token.Type
	}{
		{"42", token.DECIMAL},
		{"0", token.DECIMAL},
		{"0x1A", token.HEX},
		{"0XFF", token.HEX},
		{`"hello"`, token.STRING},
		{`""`, token.STRING},
		{"true", token.KEYWORD},
		{"false", token.KEYWORD},
		{"counter", token.IDENT},
	}
	for _, tt := range tests {
		tokens := tokenize(t, tt.input)
		require.Len(t, tokens, 1, tt.input)
		require.Equal(t, tt.expected, tokens[0].Type, tt.input)
		require.Equal(t, tt.input, tokens[0].Literal, tt.input)
	}
}

func TestTokenizeSymbols(t *testing.T) {
	tokens := tokenize(t, "&& || == != <= >= < > + - * / % = ! ( ) { } [ ] , ;")
	require.Len(t, tokens, 23)
	for _, tok := range tokens {
		require.Equal(t, token.SYMBOL, tok.Type, tok.Literal)
	}
	// Two-character symbols are scanned greedily
	require.Equal(t, "&&", tokens[0].Literal)
	require.Equal(t, "<=", tokens[4].Literal)
	require.Equal(t, ">=", tokens[5].Literal)
}

func TestTokenizeLineTracking(t *testing.T) {
	tokens := tokenize(t, "int x;\nint y;\n\nbool z;")
	require.Len(t, tokens, 9)
	require.Equal(t, 1, tokens[0].Line)
	require.Equal(t, 2, tokens[3].Line)
	require.Equal(t, 4, tokens[6].Line)
}

func TestTokenizeComments(t *testing.T) {
	tokens := tokenize(t, "int x; // the counter\n// full line comment\nint y;")
	literals := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		literals = append(literals, tok.Literal)
	}
	require.Equal(t, []string{"int", "x", ";", "int", "y", ";"}, literals)
	require.Equal(t, 3, tokens[3].Line)
}

func TestTokenizeEmpty(t *testing.T) {
	queue, err := Tokenize("")
	require.NoError(t, err)
	require.True(t, queue.IsEmpty())

	queue, err = Tokenize("   \n\t  // just a comment\n")
	require.NoError(t, err)
	require.True(t, queue.IsEmpty())
}

func TestTokenizeErrors(t *testing.T) {
	_, err := Tokenize("int x @ 5;")
	require.Error(t, err)
	var lexErr *Error
	require.ErrorAs(t, err, &lexErr)
	require.Equal(t, 1, lexErr.Line)
	require.Contains(t, err.Error(), "illegal character")

	_, err = Tokenize("\n\nx = \"oops;")
	require.ErrorAs(t, err, &lexErr)
	require.Equal(t, 3, lexErr.Line)
	require.Contains(t, err.Error(), "unterminated string")
}

func TestTokenizeStringWithEscape(t *testing.T) {
	tokens := tokenize(t, `x = "a \"quoted\" word";`)
	require.Len(t, tokens, 4)
	require.Equal(t, token.STRING, tokens[2].Type)
	require.Equal(t, `"a \"quoted\" word"`, tokens[2].Literal)
}
