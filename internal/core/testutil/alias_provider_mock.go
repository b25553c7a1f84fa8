package testutil

import (
	"github.com/AntonioJCosta/ign/internal/core/domain/filetype"
	"github.com/AntonioJCosta/ign/internal/core/ports"
)

// MockAliasProvider is a mock implementation of ports.AliasProvider.
type MockAliasProvider struct {
	GetAliasesFunc func() ([]filetype.Alias, error)
}

func (m *MockAliasProvider) GetAliases() ([]filetype.Alias, error) {
	if m.GetAliasesFunc != nil {
		return m.GetAliasesFunc()
	}
	return []filetype.Alias{}, nil
}

var _ ports.AliasProvider = (*MockAliasProvider)(nil)
