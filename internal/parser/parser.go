package parser

import (
	"strings"

	"github.com/KimNorgaard/go-sshconf/ast"
	"github.com/KimNorgaard/go-sshconf/internal/lexer"
	"github.com/KimNorgaard/go-sshconf/token"
)

// Parse parses an ssh_config document into its full-fidelity AST.
//
// It never fails: content that does not fit the keyword-separator-arguments
// grammar is preserved verbatim in Malformed nodes. A final line terminator
// is optional; per line, a trailing run of '\r' and '\n' is dropped and
// regenerated as a single '\n' on serialization, so only \n-normalized text
// round-trips byte for byte.
func Parse(content string) *ast.File {
	f := &ast.File{}
	if content == "" {
		return f
	}
	lines := strings.Split(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for _, line := range lines {
		f.Lines = append(f.Lines, ParseLine(line))
	}
	return f
}

// ParseLine parses one physical line. Callers must not pass embedded
// newlines; Parse guarantees this by construction, and the public API
// rejects multi-line input before reaching here.
func ParseLine(line string) *ast.Line {
	content := strings.TrimRight(line, "\r\n")

	i := 0
	for i < len(content) && isSpace(content[i]) {
		i++
	}
	prefix := content[:i]
	rest := content[i:]

	j := len(rest)
	for j > 0 && isSpace(rest[j-1]) {
		j--
	}

	return &ast.Line{
		Prefix: prefix,
		Expr:   parseExpression(rest[:j]),
		Suffix: rest[j:],
	}
}

// parseExpression classifies trimmed line content. Every input maps to
// exactly one variant; Malformed is the total fallback and always carries
// the full original content, never a partially consumed remainder.
func parseExpression(content string) ast.Expression {
	if content == "" {
		return &ast.Empty{}
	}
	if content[0] == '#' {
		return &ast.Comment{Text: content}
	}

	i := 0
	for i < len(content) && isAlpha(content[i]) {
		i++
	}
	if i == 0 {
		return &ast.Malformed{Text: content}
	}
	keyword := content[:i]

	j := i
	for j < len(content) && (isSpace(content[j]) || content[j] == '=') {
		j++
	}
	separator := content[i:j]
	if !validSeparator(separator) {
		return &ast.Malformed{Text: content}
	}

	args, ok := scanArguments(strings.Trim(content[j:], " \t"))
	if !ok {
		return &ast.Malformed{Text: content}
	}

	return &ast.Entry{Keyword: keyword, Separator: separator, Args: args}
}

// validSeparator reports whether the run between keyword and arguments is
// pure whitespace or a whitespace-padded single '='.
func validSeparator(sep string) bool {
	if sep == "" {
		return false
	}
	residual := strings.Trim(sep, " \t")
	return residual == "" || residual == "="
}

// scanArguments tokenizes the arguments substring. It fails as a whole on
// any ILLEGAL token and on an empty result: a keyword with no arguments is
// never a valid entry.
func scanArguments(content string) ([]token.Token, bool) {
	l := lexer.New(content)
	var args []token.Token
	for {
		tok := l.NextToken()
		switch tok.Type {
		case token.EOF:
			if len(args) == 0 {
				return nil, false
			}
			return args, true
		case token.ILLEGAL:
			return nil, false
		default:
			args = append(args, tok)
		}
	}
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t'
}

func isAlpha(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}
