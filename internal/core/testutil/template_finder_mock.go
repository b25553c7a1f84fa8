package testutil

import (
	"github.com/AntonioJCosta/ign/internal/core/domain/template"
	"github.com/AntonioJCosta/ign/internal/core/ports"
)

// MockTemplateFinder is a mock implementation of ports.TemplateFinder.
type MockTemplateFinder struct {
	FindFunc func(root, filetype string) template.SearchResult
	ListFunc func(root string) ([]template.Template, error)
	// FindCalls records the filetype of every Find call.
	FindCalls []string
}

// Find mocks the Find method. It reports NotFound when FindFunc is unset.
func (m *MockTemplateFinder) Find(root, filetype string) template.SearchResult {
	m.FindCalls = append(m.FindCalls, filetype)
	if m.FindFunc != nil {
		return m.FindFunc(root, filetype)
	}
	return template.Missing()
}

// List mocks the List method.
func (m *MockTemplateFinder) List(root string) ([]template.Template, error) {
	if m.ListFunc != nil {
		return m.ListFunc(root)
	}
	return nil, nil
}

var _ ports.TemplateFinder = (*MockTemplateFinder)(nil)
