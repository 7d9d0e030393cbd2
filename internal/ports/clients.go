package ports

import (
	"context"
	"math/big"

	"github.com/jsamuelsen11/factorial-service/internal/domain/factorial"
)

// FactorialClient defines the client port for the downstream factorial API.
// Implemented by the ACL adapter; called by the calculator service.
type FactorialClient interface {
	// Factorial requests n! from the downstream API.
	// Returns factorial.ErrInvalidInput if the API reports a domain error.
	Factorial(ctx context.Context, n *big.Int) (*factorial.Result, error)
}
