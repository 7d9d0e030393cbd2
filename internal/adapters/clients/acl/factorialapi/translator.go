package factorialapi

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/jsamuelsen11/factorial-service/internal/domain"
	"github.com/jsamuelsen11/factorial-service/internal/domain/factorial"
)

// ErrMalformedResult reports a 200 body that is missing fields or does not
// describe the requested input.
var ErrMalformedResult = errors.New("malformed factorial result")

// ToDomainResult checks dto against the requested input n and converts it.
// Digits is recomputed when the API omits it.
func ToDomainResult(dto *ResultDTO, n *big.Int) (*factorial.Result, error) {
	if dto.Factorial == nil || dto.Number == nil {
		return nil, fmt.Errorf("%w: missing number or factorial", ErrMalformedResult)
	}
	if dto.Number.Cmp(n) != 0 {
		return nil, fmt.Errorf("%w: asked for %s, got %s", ErrMalformedResult, n, dto.Number)
	}

	digits := dto.Digits
	if digits == 0 {
		digits = factorial.Digits(dto.Factorial)
	}
	return &factorial.Result{
		Input:  dto.Number,
		Value:  dto.Factorial,
		Digits: digits,
	}, nil
}

// ToDomainError restores the engine's error for a rejection the API tagged
// with factorial.CodeInvalidInput. Other errors pass through unchanged.
func ToDomainError(err error, n *big.Int) error {
	var verr *domain.ValidationError
	if errors.As(err, &verr) && verr.Code == factorial.CodeInvalidInput {
		return &factorial.InvalidInputError{N: new(big.Int).Set(n)}
	}
	return err
}
