/*
Package template defines the core domain entities for gitignore templates:
where they live, how a search for one ends, and how its contents are emitted.
*/
package template

import (
	"errors"
	"strings"
)

// Extension is the suffix shared by every template file in the collection.
const Extension = ".gitignore"

var (
	// ErrRepoNotFound indicates the template collection root does not exist.
	ErrRepoNotFound = errors.New("gitignore repository not found")
	// ErrTemplateNotFound indicates no template matched the requested filetype.
	ErrTemplateNotFound = errors.New("gitignore template not found")
	// ErrSearchAborted indicates the search stopped on an unreadable directory.
	ErrSearchAborted = errors.New("gitignore template search aborted")
)

// FileName returns the template filename for a canonical filetype name, e.g. "python.gitignore".
func FileName(filetype string) string {
	return filetype + Extension
}

// MatchesFileName reports whether name is the template filename for filetype, ignoring case.
func MatchesFileName(name, filetype string) bool {
	return strings.EqualFold(name, FileName(filetype))
}

/*
Template describes a single template file found in the collection.
Name is the filename without the extension, Dir is the directory relative to
the collection root ("." for top level) and Path is the absolute path.
*/
type Template struct {
	Name string
	Dir  string
	Path string
}

// SearchStatus is the tag of a SearchResult.
type SearchStatus int

const (
	// NotFound means the whole tree was visited without a match.
	NotFound SearchStatus = iota
	// Found means Path holds the first matching template.
	Found
	// Failed means the search was aborted; Err holds the cause.
	Failed
)

func (s SearchStatus) String() string {
	switch s {
	case Found:
		return "found"
	case Failed:
		return "failed"
	default:
		return "not found"
	}
}

// SearchResult is the outcome of a template search.
type SearchResult struct {
	Status SearchStatus
	Path   string
	Err    error
}

// FoundAt returns a Found result for path.
func FoundAt(path string) SearchResult {
	return SearchResult{Status: Found, Path: path}
}

// Missing returns a NotFound result.
func Missing() SearchResult {
	return SearchResult{Status: NotFound}
}

// FailedWith returns a Failed result carrying err.
func FailedWith(err error) SearchResult {
	return SearchResult{Status: Failed, Err: err}
}

// OutputMode selects where a template's contents go.
type OutputMode int

const (
	// Print writes the template to standard output.
	Print OutputMode = iota
	// Append appends the template to the local .gitignore.
	Append
)

func (m OutputMode) String() string {
	if m == Append {
		return "append"
	}
	return "print"
}
