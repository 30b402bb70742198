package rexec

import (
	"context"
	"sync"

	"github.com/statforge/rkit/internal/errors"
)

// MockRunner is a mock implementation of Runner for testing
type MockRunner struct {
	mu sync.Mutex

	// Calls records every Run invocation for verification.
	Calls []MockCall

	// ExitCodes maps script strings to exit codes. Scripts not listed
	// succeed.
	ExitCodes map[string]int

	// SpawnErr, if set, is returned for every script as a spawn failure.
	SpawnErr error
}

// MockCall records one Run invocation.
type MockCall struct {
	Dir    string
	Script string
}

// NewMockRunner creates a new mock runner where every script succeeds.
func NewMockRunner() *MockRunner {
	return &MockRunner{
		Calls:     make([]MockCall, 0),
		ExitCodes: make(map[string]int),
	}
}

// SetExitCode makes the given script fail with code.
func (m *MockRunner) SetExitCode(script string, code int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ExitCodes[script] = code
}

// GetCalls returns all recorded Run invocations.
func (m *MockRunner) GetCalls() []MockCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	calls := make([]MockCall, len(m.Calls))
	copy(calls, m.Calls)
	return calls
}

// Reset clears recorded calls and configured exit codes.
func (m *MockRunner) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = make([]MockCall, 0)
	m.ExitCodes = make(map[string]int)
	m.SpawnErr = nil
}

// Run records the invocation and returns the configured outcome.
func (m *MockRunner) Run(ctx context.Context, dir, script string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, MockCall{Dir: dir, Script: script})

	if m.SpawnErr != nil {
		return errors.SpawnFailed(m.SpawnErr)
	}
	if code, ok := m.ExitCodes[script]; ok && code != 0 {
		return errors.ExternalFailure(code, script)
	}
	return nil
}
