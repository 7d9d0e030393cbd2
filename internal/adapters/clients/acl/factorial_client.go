package acl

import (
	"context"
	"log/slog"
	"math/big"
	"net/url"

	"github.com/jsamuelsen11/factorial-service/internal/adapters/clients/acl/factorialapi"
	"github.com/jsamuelsen11/factorial-service/internal/domain/factorial"
	"github.com/jsamuelsen11/factorial-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/factorial-service/internal/ports"
)

var (
	_ ports.FactorialClient = (*FactorialClient)(nil)
	_ ports.HealthChecker   = (*FactorialClient)(nil)
)

// FactorialClient is the calculator web's outbound adapter for the factorial
// API. Calls go through httpclient.Client, so they are traced, retried,
// rate limited and circuit broken.
//
// Results come back as *factorial.Result. An API rejection tagged
// invalid_factorial_input comes back as *factorial.InvalidInputError, other
// rejections as *domain.ValidationError, and everything else that stops the
// call as domain.ErrUnavailable.
type FactorialClient struct {
	req *Requester
}

// NewFactorialClient creates a FactorialClient. client's base URL points
// at the API root, e.g. "http://localhost:8000".
func NewFactorialClient(client *httpclient.Client, logger *slog.Logger) *FactorialClient {
	return &FactorialClient{req: NewRequester(client, logger)}
}

// Factorial requests n! from GET /factorial/{n}.
func (c *FactorialClient) Factorial(ctx context.Context, n *big.Int) (*factorial.Result, error) {
	path := "/factorial/" + url.PathEscape(n.String())

	var dto factorialapi.ResultDTO
	if err := c.req.Get(ctx, path, &dto); err != nil {
		return nil, factorialapi.ToDomainError(err, n)
	}
	return factorialapi.ToDomainResult(&dto, n)
}
