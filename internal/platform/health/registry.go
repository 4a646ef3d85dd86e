// Package health tracks the readiness of the tracker's collaborators: the
// in-memory stores behind the engine and, when seeding remotely, the fixture
// source. The readiness endpoint reports every registered check.
package health

import (
	"context"
	"sync"

	"github.com/jsamuelsen11/phase-tracker/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.HealthRegistry = (*Registry)(nil)
	_ ports.HealthChecker  = Check{}
)

// Check adapts a plain function to [ports.HealthChecker].
type Check struct {
	name string
	fn   func(context.Context) error
}

// NewCheck returns a named checker backed by fn.
func NewCheck(name string, fn func(context.Context) error) Check {
	return Check{name: name, fn: fn}
}

// Name returns the check name.
func (c Check) Name() string { return c.name }

// HealthCheck runs the wrapped function.
func (c Check) HealthCheck(ctx context.Context) error { return c.fn(ctx) }

// Registry is a thread-safe implementation of [ports.HealthRegistry].
type Registry struct {
	mu       sync.RWMutex
	checkers []ports.HealthChecker
}

// New creates an empty health check registry.
func New() *Registry {
	return &Registry{}
}

// Register adds a health checker to the registry. Safe for concurrent use.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers = append(r.checkers, checker)
}

// CheckAll runs every registered check concurrently and returns results keyed
// by checker name. Nil values indicate healthy components. When two checkers
// share a name the one registered last wins.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := make([]ports.HealthChecker, len(r.checkers))
	copy(checkers, r.checkers)
	r.mu.RUnlock()

	errs := make([]error, len(checkers))
	var wg sync.WaitGroup
	for i, c := range checkers {
		wg.Go(func() {
			errs[i] = c.HealthCheck(ctx)
		})
	}
	wg.Wait()

	results := make(map[string]error, len(checkers))
	for i, c := range checkers {
		results[c.Name()] = errs[i]
	}
	return results
}
