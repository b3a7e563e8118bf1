package sshconf

import (
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"

	"github.com/KimNorgaard/go-sshconf/ast"
)

// Decode extracts entry values from f into the struct pointed to by v.
//
// Struct fields match entry keywords case-insensitively; the `sshconf` tag
// overrides the field name. When a keyword appears several times, the first
// occurrence wins, matching ssh_config semantics. An entry with a single
// argument decodes as a scalar, one with several arguments as a []string.
// Conversion is weakly typed, so "22" decodes into an int field and "yes"
// into a string one. Keywords with no matching field are ignored; no
// keyword or value semantics are checked.
func Decode(f *ast.File, v any) error {
	values := make(map[string]any)
	for _, e := range f.Entries() {
		key := strings.ToLower(e.Keyword)
		if _, seen := values[key]; seen {
			continue
		}
		vals := e.Values()
		if len(vals) == 1 {
			values[key] = vals[0]
		} else {
			values[key] = vals
		}
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           v,
		TagName:          "sshconf",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("sshconf: %w", err)
	}
	if err := dec.Decode(values); err != nil {
		return fmt.Errorf("sshconf: decoding entries: %w", err)
	}
	return nil
}
