package ports

import (
	"context"
	"math/big"

	"github.com/jsamuelsen11/factorial-service/internal/domain/factorial"
)

// FactorialService computes factorials on behalf of the factorial API.
// Implemented by the application layer; called by the API handler.
type FactorialService interface {
	// Compute returns n! together with its input and digit count.
	// Returns factorial.ErrInvalidInput for negative n and a
	// *domain.ValidationError when n exceeds the configured bound.
	Compute(ctx context.Context, n *big.Int) (*factorial.Result, error)
}

// CalculatorService is the calculator web's use case. It takes raw user
// input, validates it as an integer, and asks the factorial API for the
// result.
type CalculatorService interface {
	// Calculate parses raw and returns the factorial computed remotely.
	// Returns a *domain.ValidationError when raw is not an integer,
	// factorial.ErrInvalidInput when the API rejects the value, and
	// domain.ErrUnavailable when the API cannot be reached.
	Calculate(ctx context.Context, raw string) (*factorial.Result, error)
}
