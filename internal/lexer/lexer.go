package lexer

import (
	"strings"

	"github.com/KimNorgaard/go-sshconf/token"
)

// Lexer holds the state for tokenizing the arguments part of an entry.
//
// The input is the substring that follows an entry's separator on a single
// line; it never contains a newline. Scanning is byte-oriented: every
// delimiter is ASCII, so multi-byte runes pass through inside literals
// untouched.
type Lexer struct {
	input string
	pos   int
}

// New creates and returns a new Lexer over input.
func New(input string) *Lexer {
	return &Lexer{input: input}
}

// NextToken scans the input and returns the next token.
//
// Malformed input yields an ILLEGAL token whose literal describes the
// reason: an unterminated quoted argument, or an unquoted '#' inside a
// value, which is indistinguishable from a trailing comment and therefore
// rejected rather than guessed at.
func (l *Lexer) NextToken() token.Token {
	if l.pos >= len(l.input) {
		return token.Token{Type: token.EOF}
	}
	switch ch := l.input[l.pos]; {
	case isSpace(ch):
		return l.readWhitespace()
	case ch == '"':
		return l.readQuoted()
	default:
		return l.readPure()
	}
}

func (l *Lexer) readWhitespace() token.Token {
	start := l.pos
	for l.pos < len(l.input) && isSpace(l.input[l.pos]) {
		l.pos++
	}
	return token.Whitespace(l.input[start:l.pos])
}

// readQuoted scans for the first '"' not immediately preceded by a
// backslash. Tracking a single byte of lookback is all the escape handling
// there is; the inner text is kept raw, backslashes included.
func (l *Lexer) readQuoted() token.Token {
	start := l.pos + 1
	var prev byte
	for i := start; i < len(l.input); i++ {
		ch := l.input[i]
		if ch == '"' && prev != '\\' {
			l.pos = i + 1
			return token.Quoted(l.input[start:i])
		}
		prev = ch
	}
	l.pos = len(l.input)
	return token.Token{Type: token.ILLEGAL, Literal: "unterminated quoted argument"}
}

func (l *Lexer) readPure() token.Token {
	start := l.pos
	for l.pos < len(l.input) && !isSpace(l.input[l.pos]) {
		l.pos++
	}
	lit := l.input[start:l.pos]
	if strings.ContainsRune(lit, '#') {
		return token.Token{Type: token.ILLEGAL, Literal: "unquoted '#' in argument"}
	}
	return token.Pure(lit)
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t'
}
