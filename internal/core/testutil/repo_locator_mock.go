package testutil

import (
	"errors"

	"github.com/AntonioJCosta/ign/internal/core/ports"
)

// MockRepoLocator is a mock implementation of ports.RepoLocator.
type MockRepoLocator struct {
	LocateFunc  func() (string, error)
	LocateCalls int
}

// Locate mocks the Locate method.
func (m *MockRepoLocator) Locate() (string, error) {
	m.LocateCalls++
	if m.LocateFunc != nil {
		return m.LocateFunc()
	}
	return "", errors.New("MockRepoLocator.LocateFunc not implemented")
}

var _ ports.RepoLocator = (*MockRepoLocator)(nil)
