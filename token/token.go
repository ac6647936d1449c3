// Package token defines the lexical tokens of the Decaf language.
package token

// Type describes the kind of a token as a string.
type Type string

// Token types
const (
	IDENT   Type = "IDENT"   // variable and function names
	KEYWORD Type = "KEYWORD" // reserved words like "def" and "int"
	SYMBOL  Type = "SYMBOL"  // operators and punctuation
	DECIMAL Type = "DECIMAL" // base-10 integer literal
	HEX     Type = "HEX"     // base-16 integer literal, "0x" prefixed
	STRING  Type = "STRING"  // quoted string literal, quotes included
)

// Token represents one token scanned from the input source code. Line is the
// 1-indexed source line the token starts on.
type Token struct {
	Type    Type
	Literal string
	Line    int
}

// Reserved keywords
var keywords = map[string]bool{
	"bool":     true,
	"break":    true,
	"continue": true,
	"def":      true,
	"else":     true,
	"false":    true,
	"if":       true,
	"int":      true,
	"return":   true,
	"true":     true,
	"void":     true,
	"while":    true,
}

// LookupIdentifier is used to determine whether an identifier is a reserved
// keyword or not.
func LookupIdentifier(identifier string) Type {
	if keywords[identifier] {
		return KEYWORD
	}
	return IDENT
}
