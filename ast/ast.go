package ast

import (
	"bytes"
	"strings"

	"github.com/KimNorgaard/go-sshconf/token"
)

// Node is the base interface for all AST nodes.
type Node interface {
	// String returns the exact source text of the node.
	String() string
}

// Expression is the content of a line between its indents. It is a closed
// set: *Entry, *Comment, *Empty or *Malformed.
type Expression interface {
	Node
	exprNode()
}

// File is the root node of an ssh_config document. It owns its lines; line
// order is document order and is significant.
type File struct {
	Lines []*Line
	// Path is the original location of the file, when known. It is kept so
	// the source of an entry can be traced back after parsing.
	Path string
}

// String returns the serialized file: the concatenation of all line texts.
func (f *File) String() string {
	var out bytes.Buffer
	for _, l := range f.Lines {
		out.WriteString(l.String())
	}
	return out.String()
}

// Entries returns the entry expressions of the file in document order.
func (f *File) Entries() []*Entry {
	var entries []*Entry
	for _, l := range f.Lines {
		if e, ok := l.Expr.(*Entry); ok {
			entries = append(entries, e)
		}
	}
	return entries
}

// Get returns the first entry whose keyword matches, ignoring case, or nil.
// Keywords in ssh_config are case-insensitive and the first obtained value
// wins, so the first match is the effective one.
func (f *File) Get(keyword string) *Entry {
	for _, e := range f.Entries() {
		if strings.EqualFold(e.Keyword, keyword) {
			return e
		}
	}
	return nil
}

// Line is one physical line: an expression bounded by its original
// indentation. Prefix and Suffix are maximal, non-overlapping runs of
// space and tab characters; a line of pure whitespace keeps it all in
// Prefix. Prefix + Expr.String() + Suffix + "\n" reconstructs the line.
type Line struct {
	Prefix string
	Expr   Expression
	// Suffix may look useless to keep, but it is what makes reading and
	// writing a file idempotent.
	Suffix string
}

// String returns the exact source text of the line, newline included.
func (l *Line) String() string {
	return l.Prefix + l.Expr.String() + l.Suffix + "\n"
}

// Entry is a keyword-argument configuration line, e.g. "Port 22" or
// "Host = example.com".
type Entry struct {
	// Keyword is the case-insensitive [A-Za-z]+ name of the field being set.
	Keyword string
	// Separator sits between keyword and arguments: either a run of spaces
	// and tabs, or a single '=' with optional spaces and tabs around it.
	Separator string
	// Args alternates value tokens and whitespace tokens and contains at
	// least one value token.
	Args []token.Token
}

func (e *Entry) exprNode() {}

// String returns the exact source text of the entry.
func (e *Entry) String() string {
	var out bytes.Buffer
	out.WriteString(e.Keyword)
	out.WriteString(e.Separator)
	for _, t := range e.Args {
		out.WriteString(t.String())
	}
	return out.String()
}

// Values returns the argument values of the entry, without the whitespace
// between them. Quoted values are returned as their raw inner text.
func (e *Entry) Values() []string {
	var vals []string
	for _, t := range e.Args {
		if t.IsValue() {
			vals = append(vals, t.Literal)
		}
	}
	return vals
}

// Comment is a line whose content starts with '#'. The text is stored
// verbatim, '#' included.
type Comment struct {
	Text string
}

func (c *Comment) exprNode()      {}
func (c *Comment) String() string { return c.Text }

// Empty is a line with no content between its indents.
type Empty struct{}

func (e *Empty) exprNode()      {}
func (e *Empty) String() string { return "" }

// Malformed is any content that is not an entry, a comment or empty. The
// original text is stored verbatim so nothing is lost on re-serialization.
type Malformed struct {
	Text string
}

func (m *Malformed) exprNode()      {}
func (m *Malformed) String() string { return m.Text }

// NewEntry builds an entry in canonical form: a single-space separator and
// space-separated arguments. At least one argument is required; NewEntry
// panics without one, since an entry with no arguments does not exist in
// the grammar.
//
// Arguments that cannot stand alone as a pure token (empty, containing
// whitespace or '#', or starting with '"') are quoted, with inner quotes
// escaped, so the entry re-parses to itself. The one gap is a value that
// needs quoting and ends in a backslash: the grammar's single-character
// lookback reads the closing quote as escaped, so such a value has no
// representation and the serialized entry re-parses as Malformed.
func NewEntry(keyword string, args ...string) *Entry {
	if len(args) == 0 {
		panic("sshconf/ast: NewEntry requires at least one argument")
	}
	e := &Entry{Keyword: keyword, Separator: " "}
	for i, a := range args {
		if i > 0 {
			e.Args = append(e.Args, token.Whitespace(" "))
		}
		if canBePure(a) {
			e.Args = append(e.Args, token.Pure(a))
		} else {
			e.Args = append(e.Args, token.Quoted(strings.ReplaceAll(a, `"`, `\"`)))
		}
	}
	return e
}

// NewLine wraps an expression in an unindented line.
func NewLine(expr Expression) *Line {
	return &Line{Expr: expr}
}

// canBePure reports whether s survives as an unquoted argument token: it
// must be non-empty, free of whitespace and '#', and must not start with a
// quote, which would open a quoted token. A '"' later in the run is plain
// data to the tokenizer and needs no quoting.
func canBePure(s string) bool {
	return s != "" && !strings.ContainsAny(s, " \t#") && s[0] != '"'
}
