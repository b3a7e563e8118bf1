/*
Package sshconf is a lossless parser and serializer for OpenSSH client
configuration files (ssh_config). A parsed file serializes back to text that
is byte-identical to its source wherever the structure was not modified:
indentation, comment text, separator style (whitespace vs '='), argument
quoting and blank lines all survive the round trip.

The package offers two workflows depending on the use case:

1. Full-Fidelity Document Manipulation

Parse builds a document tree of lines and expressions that can be inspected
or edited, then written back without disturbing untouched lines:

	f, err := sshconf.Load("~/.ssh/config")
	if err != nil {
		// handle error
	}

	if e := f.Get("IdentityFile"); e != nil {
		fmt.Println(e.Values())
	}

	f.Lines = append(f.Lines, ast.NewLine(ast.NewEntry("User", "root")))

	if err := sshconf.Save(f, "~/.ssh/config"); err != nil {
		// handle error
	}

Parsing is total: lines that do not fit the keyword-argument grammar are
kept verbatim as Malformed nodes instead of being rejected, so no input
file can fail to parse. Keyword semantics are not validated and Include
directives are not resolved; unknown entries are simply preserved.

2. Data-Oriented Decoding

For pulling values out of a configuration, Decode maps entry keywords onto
struct fields (case-insensitively, first occurrence wins):

	type Config struct {
		Host string
		Port int
		User string
	}

	var cfg Config
	if err := sshconf.Decode(f, &cfg); err != nil {
		// handle error
	}

Line terminators are normalized: a parsed file always serializes with '\n'
endings, so only \n-terminated input round-trips byte for byte.
*/
package sshconf
