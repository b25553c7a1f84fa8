package testutil

import (
	"errors"
	"io"

	"github.com/AntonioJCosta/ign/internal/core/ports"
)

// MockTemplateSink is a mock implementation of ports.TemplateSink.
type MockTemplateSink struct {
	PrintFunc  func(templatePath string, out io.Writer) error
	AppendFunc func(templatePath string) (int, error)
	Dest       string

	PrintCalls  []string
	AppendCalls []string
}

func (m *MockTemplateSink) Print(templatePath string, out io.Writer) error {
	m.PrintCalls = append(m.PrintCalls, templatePath)
	if m.PrintFunc != nil {
		return m.PrintFunc(templatePath, out)
	}
	return errors.New("MockTemplateSink.PrintFunc not implemented")
}

func (m *MockTemplateSink) Append(templatePath string) (int, error) {
	m.AppendCalls = append(m.AppendCalls, templatePath)
	if m.AppendFunc != nil {
		return m.AppendFunc(templatePath)
	}
	return 0, errors.New("MockTemplateSink.AppendFunc not implemented")
}

func (m *MockTemplateSink) Destination() string {
	return m.Dest
}

var _ ports.TemplateSink = (*MockTemplateSink)(nil)
