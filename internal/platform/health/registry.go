// Package health tracks the readiness of the dependencies a service needs
// before it accepts traffic. The calculator web registers the factorial API
// client; the API itself registers nothing and is ready once it is serving.
package health

import (
	"context"
	"sync"
	"time"

	"github.com/jsamuelsen11/factorial-service/internal/ports"
)

var _ ports.HealthRegistry = (*Registry)(nil)

// DefaultCheckTimeout bounds a single checker when New is given zero.
const DefaultCheckTimeout = 2 * time.Second

// Registry is safe for concurrent registration and checking.
type Registry struct {
	mu       sync.RWMutex
	checkers []ports.HealthChecker
	timeout  time.Duration
}

// New returns an empty registry. Each check gets its own deadline of
// timeout, or DefaultCheckTimeout when timeout is not positive.
func New(timeout time.Duration) *Registry {
	if timeout <= 0 {
		timeout = DefaultCheckTimeout
	}
	return &Registry{timeout: timeout}
}

// Register adds a checker. Names should be unique; a later checker with the
// same name overwrites the earlier result in CheckAll.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers = append(r.checkers, checker)
}

// CheckAll runs every checker concurrently and returns results keyed by
// name. A nil value means healthy.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := append([]ports.HealthChecker(nil), r.checkers...)
	r.mu.RUnlock()

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		results = make(map[string]error, len(checkers))
	)
	for _, c := range checkers {
		wg.Go(func() {
			checkCtx, cancel := context.WithTimeout(ctx, r.timeout)
			defer cancel()

			err := c.HealthCheck(checkCtx)

			mu.Lock()
			results[c.Name()] = err
			mu.Unlock()
		})
	}
	wg.Wait()

	return results
}

// Healthy reports whether every result in a CheckAll map is nil.
func Healthy(results map[string]error) bool {
	for _, err := range results {
		if err != nil {
			return false
		}
	}
	return true
}
