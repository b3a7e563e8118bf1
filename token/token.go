package token

// Type is the type of an argument token.
type Type string

// Token represents one unit inside an entry's arguments: an argument value
// or the whitespace run separating two values.
type Token struct {
	Type    Type
	Literal string
}

const (
	// Special tokens
	ILLEGAL Type = "ILLEGAL" // An unscannable argument; the literal holds the reason
	EOF     Type = "EOF"     // End of the arguments string

	// Argument tokens
	PURE       Type = "PURE"       // example.com
	QUOTED     Type = "QUOTED"     // "a b" (literal holds the raw inner text)
	WHITESPACE Type = "WHITESPACE" // spaces and tabs between values
)

// Pure returns an unquoted value token.
func Pure(s string) Token { return Token{Type: PURE, Literal: s} }

// Quoted returns a double-quoted value token. The literal is the raw text
// between the quotes; escape sequences are kept verbatim, not decoded.
func Quoted(s string) Token { return Token{Type: QUOTED, Literal: s} }

// Whitespace returns a separator token consisting of spaces and tabs.
func Whitespace(s string) Token { return Token{Type: WHITESPACE, Literal: s} }

// IsValue reports whether the token carries an argument value,
// as opposed to the whitespace between values.
func (t Token) IsValue() bool {
	return t.Type == PURE || t.Type == QUOTED
}

// String returns the exact source text of the token.
func (t Token) String() string {
	switch t.Type {
	case QUOTED:
		return `"` + t.Literal + `"`
	case PURE, WHITESPACE:
		return t.Literal
	default:
		return ""
	}
}
