package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	tests := []struct {
		name     string
		tok      Token
		expected string
	}{
		{"pure", Pure("example.com"), "example.com"},
		{"quoted", Quoted("a b"), `"a b"`},
		{"quoted keeps escapes raw", Quoted(`a \" b`), `"a \" b"`},
		{"whitespace", Whitespace(" \t "), " \t "},
		{"eof", Token{Type: EOF}, ""},
		{"illegal", Token{Type: ILLEGAL, Literal: "unterminated quoted argument"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.tok.String())
		})
	}
}

func TestIsValue(t *testing.T) {
	require.True(t, Pure("a").IsValue())
	require.True(t, Quoted("a").IsValue())
	require.False(t, Whitespace(" ").IsValue())
	require.False(t, Token{Type: EOF}.IsValue())
}
