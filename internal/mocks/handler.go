package mocks

import (
	"io"

	"github.com/stretchr/testify/mock"
)

// MockHandler records verb invocations for dispatcher tests across packages.
// Wrap Handle in a closure to register it as a shell handler.
type MockHandler struct {
	mock.Mock
}

func (m *MockHandler) Handle(words []string) error {
	args := m.Called(words)

	// Handle function return types (for complex tests)
	if fn, ok := args.Get(0).(func([]string) error); ok {
		return fn(words)
	}
	return args.Error(0)
}

// MockWriter implements io.Writer so tests can fail output on demand
type MockWriter struct {
	mock.Mock
}

func (m *MockWriter) Write(p []byte) (int, error) {
	args := m.Called(p)
	return args.Int(0), args.Error(1)
}

var _ io.Writer = (*MockWriter)(nil)
