// Package health provides a thread-safe health check registry for tracking
// the health of backing stores such as the database. The registry is used by
// the readiness endpoint to determine whether the service can accept traffic.
package health

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/jsamuelsen11/college-predictor/internal/ports"
)

// Compile-time interface check.
var _ ports.HealthRegistry = (*Registry)(nil)

// Registry is a thread-safe implementation of [ports.HealthRegistry].
// Components that implement [ports.HealthChecker] are registered at startup
// and checked on each readiness probe.
type Registry struct {
	mu       sync.RWMutex
	checkers []ports.HealthChecker
}

// New creates an empty health check registry.
func New() *Registry {
	return &Registry{}
}

// Register adds a health checker to the registry. A checker whose name is
// already registered replaces the earlier one in place. Safe for concurrent use.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := checker.Name()
	for i, c := range r.checkers {
		if c.Name() == name {
			r.checkers[i] = checker
			return
		}
	}
	r.checkers = append(r.checkers, checker)
}

// CheckAll executes all registered health checks and returns results keyed by
// checker name. Nil values indicate healthy components. The slice is copied
// under a read lock so checks run without holding the lock. A panicking
// check is reported as unhealthy rather than taking down the probe.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := slices.Clone(r.checkers)
	r.mu.RUnlock()

	results := make(map[string]error, len(checkers))
	for _, c := range checkers {
		results[c.Name()] = runCheck(ctx, c)
	}
	return results
}

func runCheck(ctx context.Context, c ports.HealthChecker) (err error) {
	defer func() {
		if v := recover(); v != nil {
			err = fmt.Errorf("health check %s panicked: %v", c.Name(), v)
		}
	}()
	return c.HealthCheck(ctx)
}
