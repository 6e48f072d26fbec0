package generation

import (
	"context"
	"sync"
)

// MockGenerator is a configurable Generator implementation for tests.
// Assign function fields to control behavior; unset fields return benign
// defaults. Calls are recorded so tests can assert on fan-out behavior.
type MockGenerator struct {
	GenerateFn    func(ctx context.Context, req Request) (*Result, error)
	HealthCheckFn func(ctx context.Context) HealthStatus
	Model         string

	mu    sync.Mutex
	calls []Request
}

// Generate implements Generator.
func (m *MockGenerator) Generate(ctx context.Context, req Request) (*Result, error) {
	m.mu.Lock()
	m.calls = append(m.calls, req)
	m.mu.Unlock()

	if m.GenerateFn != nil {
		return m.GenerateFn(ctx, req)
	}
	return &Result{Text: "mock response", Model: m.ModelName()}, nil
}

// HealthCheck implements Generator.
func (m *MockGenerator) HealthCheck(ctx context.Context) HealthStatus {
	if m.HealthCheckFn != nil {
		return m.HealthCheckFn(ctx)
	}
	return HealthStatus{OK: true, Model: m.ModelName(), Message: "Connection successful"}
}

// ModelName implements Generator.
func (m *MockGenerator) ModelName() string {
	if m.Model != "" {
		return m.Model
	}
	return "mock-model"
}

// Calls returns a copy of all recorded generation requests.
func (m *MockGenerator) Calls() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Request, len(m.calls))
	copy(out, m.calls)
	return out
}

// Statically verify the mock satisfies the interface.
var _ Generator = (*MockGenerator)(nil)
