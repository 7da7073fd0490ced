package testutil

import (
	"github.com/stretchr/testify/mock"
)

// MockTerminalInput provides a testify mock for ports.TerminalInput
type MockTerminalInput struct {
	mock.Mock
}

func (m *MockTerminalInput) ReadPassword(prompt string) (string, error) {
	args := m.Called(prompt)
	return args.String(0), args.Error(1)
}

func (m *MockTerminalInput) IsTerminal() bool {
	args := m.Called()
	return args.Bool(0)
}
