package sshconf

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/KimNorgaard/go-sshconf/ast"
	"github.com/KimNorgaard/go-sshconf/internal/parser"
)

// ErrMultiLine is returned by ParseLine when the input still contains a
// newline after terminator stripping. That is a caller bug, not bad input
// data: it means several physical lines were passed as one.
var ErrMultiLine = errors.New("sshconf: multi-line input passed to ParseLine")

// Parse parses ssh_config data into its full-fidelity document tree.
//
// Parse is total: it never fails, for any input. Content that does not fit
// the grammar is preserved in Malformed nodes. A trailing '\r' before each
// line terminator is dropped and not restored on serialization, so a file
// using \r\n endings round-trips only in its \n-normalized form.
func Parse(data []byte) *ast.File {
	return parser.Parse(string(data))
}

// ParseLine parses one physical line, optionally terminated by '\n' or
// "\r\n". It returns ErrMultiLine if the input spans several lines.
func ParseLine(line string) (*ast.Line, error) {
	if strings.ContainsRune(strings.TrimRight(line, "\r\n"), '\n') {
		return nil, ErrMultiLine
	}
	return parser.ParseLine(line), nil
}

// Marshal returns the serialized text of f. Serialization is a total
// function: it cannot fail for any tree the parser or the ast constructors
// produce.
func Marshal(f *ast.File) []byte {
	return []byte(f.String())
}

// Load reads and parses the ssh_config file at path. The returned file
// records path as its origin.
func Load(path string) (*ast.File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("sshconf: reading %s: %w", path, err)
	}
	f := Parse(data)
	f.Path = path
	return f, nil
}

// Save serializes f and writes it to path atomically: the text is written
// to a temporary file in the target directory and renamed into place, so a
// failed write never truncates an existing config.
func Save(f *ast.File, path string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("sshconf: creating temp file in %s: %w", dir, err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(Marshal(f)); err != nil {
		tmp.Close()
		return fmt.Errorf("sshconf: writing %s: %w", tmpPath, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sshconf: syncing %s: %w", tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("sshconf: closing %s: %w", tmpPath, err)
	}
	if err := os.Chmod(tmpPath, 0o600); err != nil {
		return fmt.Errorf("sshconf: setting permissions on %s: %w", tmpPath, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("sshconf: renaming %s to %s: %w", tmpPath, path, err)
	}
	return nil
}
