package ports

import (
	"io"

	"github.com/AntonioJCosta/ign/internal/core/domain/filetype"
	"github.com/AntonioJCosta/ign/internal/core/domain/template"
)

// LookupResult describes a completed lookup.
type LookupResult struct {
	Token        string
	Filetype     string
	RepoRoot     string
	TemplatePath string
	Mode         template.OutputMode
	Destination  string // append mode only
	BytesWritten int    // append mode only
}

// SearchStarted is called once the collection root is known, before the search runs.
type SearchStarted func(LookupResult)

// TemplateLookupService defines the contract for resolving and emitting gitignore templates.
type TemplateLookupService interface {
	// ResolveFiletype maps a user token to its canonical filetype name.
	ResolveFiletype(token string) string

	// RepoRoot returns the template collection root.
	RepoRoot() (string, error)

	/*
	   Apply resolves token, finds its template and emits it according to mode.
	   Print output goes to out. onSearch, if not nil, receives the result
	   with RepoRoot set just before the search. The partially filled result
	   is returned alongside any error so callers can report what was attempted.
	*/
	Apply(token string, mode template.OutputMode, out io.Writer, onSearch SearchStarted) (LookupResult, error)

	// ListTemplates returns the collection root and every template in it.
	ListTemplates() (string, []template.Template, error)

	// Aliases returns the alias table sorted by token.
	Aliases() []filetype.Alias
}
