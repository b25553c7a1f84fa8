package ports

import "github.com/AntonioJCosta/ign/internal/core/domain/template"

/*
TemplateFinder searches a template collection on disk.
This is a driven port, typically implemented by a filesystem repository.
*/
type TemplateFinder interface {
	// Find returns the first template under root whose filename matches filetype.
	Find(root, filetype string) template.SearchResult

	// List returns every template under root.
	List(root string) ([]template.Template, error)
}
