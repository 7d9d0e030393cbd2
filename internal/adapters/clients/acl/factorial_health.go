package acl

import (
	"context"
	"fmt"
)

// Name is the key this client reports under in readiness results. It is the
// service name given to the underlying httpclient.Client.
func (c *FactorialClient) Name() string {
	return c.req.ServiceName()
}

// HealthCheck reads the circuit breaker; no request is sent. A half-open
// breaker is reported as degraded and an open one as failing.
func (c *FactorialClient) HealthCheck(_ context.Context) error {
	switch state := c.req.CircuitBreakerState(); state {
	case "closed":
		return nil
	case "half-open":
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", c.Name())
	case "open":
		return fmt.Errorf("%s: failing (circuit breaker open)", c.Name())
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %q", c.Name(), state)
	}
}
