// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"math/big"

	"github.com/jsamuelsen11/factorial-service/internal/domain/factorial"
)

// FactorialResponse is the body of a successful GET /factorial/{number}.
// Both integers are encoded as JSON numbers of arbitrary length.
type FactorialResponse struct {
	Number    *big.Int `json:"number"`
	Factorial *big.Int `json:"factorial"`
	Digits    int      `json:"digits"`
}

// ToFactorialResponse converts a domain Result to its HTTP representation.
func ToFactorialResponse(r *factorial.Result) FactorialResponse {
	return FactorialResponse{
		Number:    r.Input,
		Factorial: r.Value,
		Digits:    r.Digits,
	}
}

// HealthResponse is the body of the liveness and readiness endpoints.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}
