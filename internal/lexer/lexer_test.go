package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KimNorgaard/go-sshconf/internal/lexer"
	"github.com/KimNorgaard/go-sshconf/token"
)

func TestNextToken(t *testing.T) {
	input := "lol!*.com \"example.com\" \t !kek!"

	expectedTokens := []struct {
		expectedType    token.Type
		expectedLiteral string
	}{
		{token.PURE, "lol!*.com"},
		{token.WHITESPACE, " "},
		{token.QUOTED, "example.com"},
		{token.WHITESPACE, " \t "},
		{token.PURE, "!kek!"},
		{token.EOF, ""},
	}

	l := lexer.New(input)

	for i, tt := range expectedTokens {
		tok := l.NextToken()
		require.Equal(t, tt.expectedType, tok.Type, "test[%d] - wrong token type", i)
		require.Equal(t, tt.expectedLiteral, tok.Literal, "test[%d] - wrong literal", i)
	}
}

func TestQuotedArguments(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple", `"a b"`, "a b"},
		{"glob", `"*"`, "*"},
		{"escaped quote kept raw", `"hello # \" lol "`, `hello # \" lol `},
		{"empty", `""`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := lexer.New(tt.input)
			tok := l.NextToken()
			require.Equal(t, token.QUOTED, tok.Type)
			require.Equal(t, tt.expected, tok.Literal)
			require.Equal(t, token.EOF, l.NextToken().Type)
		})
	}
}

func TestIllegalArguments(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unterminated quote", `"lol`},
		{"hash alone", "#"},
		{"hash at start of value", "#kek"},
		{"hash inside value", "k#k"},
		{"hash at end of value", "kek#"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := lexer.New(tt.input)
			tok := l.NextToken()
			require.Equal(t, token.ILLEGAL, tok.Type)
		})
	}
}

func TestPureKeepsEmbeddedQuote(t *testing.T) {
	// A quote only opens a quoted token at the start of a value; inside a
	// run of non-whitespace it is ordinary data.
	l := lexer.New(`ke"k`)
	tok := l.NextToken()
	require.Equal(t, token.PURE, tok.Type)
	require.Equal(t, `ke"k`, tok.Literal)
}

func TestAdjacentQuotedTokens(t *testing.T) {
	l := lexer.New(`"a""b"`)
	require.Equal(t, token.Quoted("a"), l.NextToken())
	require.Equal(t, token.Quoted("b"), l.NextToken())
	require.Equal(t, token.EOF, l.NextToken().Type)
}
