package templatelookup

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/AntonioJCosta/ign/internal/core/domain/filetype"
	"github.com/AntonioJCosta/ign/internal/core/domain/template"
	"github.com/AntonioJCosta/ign/internal/core/ports"
)

type service struct {
	aliases filetype.AliasTable
	locator ports.RepoLocator
	finder  ports.TemplateFinder
	sink    ports.TemplateSink
}

// NewService creates a new template lookup service.
// It panics if locator, finder or sink is nil.
func NewService(
	aliases filetype.AliasTable,
	locator ports.RepoLocator,
	finder ports.TemplateFinder,
	sink ports.TemplateSink,
) ports.TemplateLookupService {
	if locator == nil {
		panic("repoLocator cannot be nil")
	}
	if finder == nil {
		panic("templateFinder cannot be nil")
	}
	if sink == nil {
		panic("templateSink cannot be nil")
	}
	return &service{
		aliases: aliases,
		locator: locator,
		finder:  finder,
		sink:    sink,
	}
}

func (s *service) ResolveFiletype(token string) string {
	return s.aliases.Resolve(token)
}

func (s *service) RepoRoot() (string, error) {
	return s.locator.Locate()
}

// Apply implements the ports.TemplateLookupService interface.
//
// A missing repository or template is reported through template.ErrRepoNotFound
// and template.ErrTemplateNotFound; an unreadable directory through
// template.ErrSearchAborted. Nothing is emitted in any of those cases.
func (s *service) Apply(
	token string,
	mode template.OutputMode,
	out io.Writer,
	onSearch ports.SearchStarted,
) (ports.LookupResult, error) {
	result := ports.LookupResult{
		Token:    token,
		Filetype: s.ResolveFiletype(token),
		Mode:     mode,
	}

	root, err := s.locator.Locate()
	if err != nil {
		return result, err
	}
	result.RepoRoot = root
	if onSearch != nil {
		onSearch(result)
	}

	found := s.finder.Find(root, result.Filetype)
	switch found.Status {
	case template.NotFound:
		return result, fmt.Errorf("%w: %s", template.ErrTemplateNotFound, template.FileName(result.Filetype))
	case template.Failed:
		return result, fmt.Errorf("%w: %w", template.ErrSearchAborted, found.Err)
	}
	result.TemplatePath = found.Path
	slog.Debug("template resolved", "token", token, "filetype", result.Filetype, "path", found.Path, "mode", mode)

	if mode == template.Append {
		result.Destination = s.sink.Destination()
		n, err := s.sink.Append(found.Path)
		result.BytesWritten = n
		if err != nil {
			return result, fmt.Errorf("failed to append template to %s: %w", result.Destination, err)
		}
		return result, nil
	}

	if err := s.sink.Print(found.Path, out); err != nil {
		return result, fmt.Errorf("failed to print template: %w", err)
	}
	return result, nil
}

func (s *service) ListTemplates() (string, []template.Template, error) {
	root, err := s.locator.Locate()
	if err != nil {
		return "", nil, err
	}
	templates, err := s.finder.List(root)
	if err != nil {
		return root, nil, fmt.Errorf("failed to list templates: %w", err)
	}
	return root, templates, nil
}

func (s *service) Aliases() []filetype.Alias {
	return s.aliases.Aliases()
}
