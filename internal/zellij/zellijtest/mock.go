// Package zellijtest provides test doubles for the zellij package.
// Import this package only from _test.go files.
package zellijtest

import "zpick/internal/zellij"

// MockClient is a test double for zellij.ClientIface.
// Set fields before calling methods to control return values.
type MockClient struct {
	Sessions []string

	AttachCode int
	AttachErr  error
	CreateCode int
	CreateErr  error
	KillErr    error
	DeleteErr  error

	// Track calls for assertions.
	AttachCalls []string
	CreateCalls []string
	KillCalls   []string
	DeleteCalls []string
}

// Compile-time check that MockClient satisfies zellij.ClientIface.
var _ zellij.ClientIface = (*MockClient)(nil)

func (m *MockClient) ListSessions() []string { return m.Sessions }

func (m *MockClient) Attach(name string) (int, error) {
	m.AttachCalls = append(m.AttachCalls, name)
	return m.AttachCode, m.AttachErr
}

func (m *MockClient) Create(name string) (int, error) {
	m.CreateCalls = append(m.CreateCalls, name)
	return m.CreateCode, m.CreateErr
}

func (m *MockClient) Kill(name string) error {
	m.KillCalls = append(m.KillCalls, name)
	return m.KillErr
}

func (m *MockClient) Delete(name string) error {
	m.DeleteCalls = append(m.DeleteCalls, name)
	return m.DeleteErr
}
