package provider

import (
	"context"
	"sync"
)

// GenerateCall records the arguments of one Generate call.
type GenerateCall struct {
	Model  string
	Prompt string
}

// MockGenerator is a test double for Generator.
// It supports fixed responses, sequential responses, and custom handlers.
type MockGenerator struct {
	mu           sync.Mutex
	responses    []string
	responseIdx  int
	err          error
	generateFunc func(ctx context.Context, model, prompt string) (string, error)

	// Calls tracks all requests for assertions.
	Calls []GenerateCall
}

// NewMockGenerator creates a mock that returns a fixed response.
func NewMockGenerator(response string) *MockGenerator {
	return &MockGenerator{responses: []string{response}}
}

// WithResponses configures sequential responses.
// Each call to Generate returns the next response in the list.
// Cycles back to the beginning after exhausting all responses.
func (m *MockGenerator) WithResponses(responses ...string) *MockGenerator {
	m.responses = responses
	return m
}

// WithError configures the mock to always return an error.
func (m *MockGenerator) WithError(err error) *MockGenerator {
	m.err = err
	return m
}

// WithGenerateFunc sets a custom handler for Generate calls.
// This takes precedence over fixed responses.
func (m *MockGenerator) WithGenerateFunc(fn func(ctx context.Context, model, prompt string) (string, error)) *MockGenerator {
	m.generateFunc = fn
	return m
}

// Generate implements Generator.
func (m *MockGenerator) Generate(ctx context.Context, model, prompt string) (string, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, GenerateCall{Model: model, Prompt: prompt})
	fn := m.generateFunc
	err := m.err
	response := ""
	if fn == nil && err == nil && len(m.responses) > 0 {
		response = m.responses[m.responseIdx%len(m.responses)]
		m.responseIdx++
	}
	m.mu.Unlock()

	// Check for context cancellation
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	if fn != nil {
		return fn(ctx, model, prompt)
	}
	if err != nil {
		return "", err
	}
	return response, nil
}

// Provider implements Generator.
func (m *MockGenerator) Provider() string {
	return "mock"
}

// Reset clears the call history and response index.
func (m *MockGenerator) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = nil
	m.responseIdx = 0
}

// CallCount returns the number of times Generate was called.
func (m *MockGenerator) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// LastCall returns the most recent call, or nil if no calls were made.
func (m *MockGenerator) LastCall() *GenerateCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Calls) == 0 {
		return nil
	}
	call := m.Calls[len(m.Calls)-1]
	return &call
}
