/*
Package filetype defines the core domain entities used to turn a user-supplied
filetype token into the canonical name of a gitignore template.
*/
package filetype

import (
	"sort"
	"strings"
)

/*
Alias maps a short filetype token (e.g. "py") to the canonical filetype
name used to build a template filename (e.g. "python").
*/
type Alias struct {
	Token    string `yaml:"token"`
	Filetype string `yaml:"filetype"`
}

/*
AliasTable is an immutable token -> canonical name mapping. It is built once
at startup and passed by value; the zero value is an empty table.
*/
type AliasTable struct {
	entries map[string]string
}

// NewAliasTable builds a table from the given aliases. Later entries win on duplicate tokens.
func NewAliasTable(aliases []Alias) AliasTable {
	entries := make(map[string]string, len(aliases))
	for _, a := range aliases {
		entries[a.Token] = a.Filetype
	}
	return AliasTable{entries: entries}
}

/*
Resolve returns the canonical filetype name for token. The lookup is an exact
match on the token as given; tokens without an alias resolve to their
lowercased form.
*/
func (t AliasTable) Resolve(token string) string {
	if name, ok := t.Lookup(token); ok {
		return name
	}
	return strings.ToLower(token)
}

// Lookup reports the alias target for token, if any.
func (t AliasTable) Lookup(token string) (string, bool) {
	name, ok := t.entries[token]
	return name, ok
}

// Aliases returns a copy of the table sorted by token.
func (t AliasTable) Aliases() []Alias {
	out := make([]Alias, 0, len(t.entries))
	for token, name := range t.entries {
		out = append(out, Alias{Token: token, Filetype: name})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Token < out[j].Token
	})
	return out
}
