package templaterepo

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/AntonioJCosta/ign/internal/core/domain/template"
	"github.com/AntonioJCosta/ign/internal/core/ports"
	ignore "github.com/sabhiram/go-gitignore"
)

// DefaultSkipPatterns lists directories never descended into, in gitignore syntax.
var DefaultSkipPatterns = []string{".git"}

// Finder searches a template collection on the local filesystem.
type Finder struct {
	skip *ignore.GitIgnore
}

// NewFinder creates a Finder that skips directories matching skipPatterns.
func NewFinder(skipPatterns ...string) ports.TemplateFinder {
	f := &Finder{}
	if len(skipPatterns) > 0 {
		f.skip = ignore.CompileIgnoreLines(skipPatterns...)
	}
	return f
}

// Find implements the ports.TemplateFinder interface.
//
// The walk is a pre-order depth first search in directory listing order: a
// matching file returns immediately and a subdirectory is searched before its
// later siblings. Directory symlinks are not followed. Any error reading a
// directory aborts the whole search.
func (f *Finder) Find(root, filetype string) template.SearchResult {
	slog.Debug("searching for template", "root", root, "file", template.FileName(filetype))
	return f.search(root, "", filetype)
}

func (f *Finder) search(dir, rel, filetype string) template.SearchResult {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return template.FailedWith(fmt.Errorf("failed to read directory %s: %w", dir, err))
	}

	for _, entry := range entries {
		entryPath := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			entryRel := path.Join(rel, entry.Name())
			if f.skipped(entryRel) {
				slog.Debug("skipping directory", "dir", entryPath)
				continue
			}
			if res := f.search(entryPath, entryRel, filetype); res.Status != template.NotFound {
				return res
			}
			continue
		}
		if template.MatchesFileName(entry.Name(), filetype) {
			slog.Debug("template found", "path", entryPath)
			return template.FoundAt(entryPath)
		}
	}
	return template.Missing()
}

func (f *Finder) skipped(rel string) bool {
	return f.skip != nil && f.skip.MatchesPath(rel)
}

// List implements the ports.TemplateFinder interface.
// Templates are returned in walk order; the collection's own .gitignore is not a template.
func (f *Finder) List(root string) ([]template.Template, error) {
	var templates []template.Template

	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, relErr := filepath.Rel(root, p)
		if relErr != nil {
			return relErr
		}
		if d.IsDir() {
			if p != root && f.skipped(filepath.ToSlash(rel)) {
				return filepath.SkipDir
			}
			return nil
		}

		name := d.Name()
		if len(name) <= len(template.Extension) || !strings.EqualFold(name[len(name)-len(template.Extension):], template.Extension) {
			return nil
		}
		templates = append(templates, template.Template{
			Name: name[:len(name)-len(template.Extension)],
			Dir:  filepath.Dir(rel),
			Path: p,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list templates under %s: %w", root, err)
	}
	return templates, nil
}
