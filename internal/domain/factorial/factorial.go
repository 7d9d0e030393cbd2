// Package factorial implements the factorial engine: a pure, validated
// iterative product over arbitrary-precision integers.
package factorial

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/jsamuelsen11/factorial-service/internal/domain"
)

// CodeInvalidInput is the error code reported for negative inputs.
const CodeInvalidInput = "invalid_factorial_input"

// ErrInvalidInput is the domain error returned for inputs outside the
// factorial's domain (negative integers).
var ErrInvalidInput = errors.New("invalid factorial input")

// InvalidInputError reports the rejected input. It matches both
// ErrInvalidInput and domain.ErrValidation.
type InvalidInputError struct {
	N *big.Int
}

func (e *InvalidInputError) Error() string {
	if e.N == nil {
		return ErrInvalidInput.Error() + ": missing value"
	}
	return fmt.Sprintf("%s: %s is negative, factorial is only defined for n >= 0", ErrInvalidInput.Error(), e.N)
}

func (e *InvalidInputError) Unwrap() []error {
	return []error{ErrInvalidInput, domain.ErrValidation}
}

// ErrorCode implements domain.Coded.
func (e *InvalidInputError) ErrorCode() string {
	return CodeInvalidInput
}

var one = big.NewInt(1)

// Compute returns n! computed by iterative multiplication. It returns an
// *InvalidInputError when n is nil or negative. n is never modified and the
// returned value is always a fresh allocation.
func Compute(n *big.Int) (*big.Int, error) {
	if n == nil {
		return nil, &InvalidInputError{}
	}
	if n.Sign() < 0 {
		return nil, &InvalidInputError{N: new(big.Int).Set(n)}
	}

	result := big.NewInt(1)
	for i := big.NewInt(2); i.Cmp(n) <= 0; i.Add(i, one) {
		result.Mul(result, i)
	}
	return result, nil
}

// Of is Compute for fixed-width callers.
func Of(n int64) (*big.Int, error) {
	return Compute(big.NewInt(n))
}

// Digits returns the number of decimal digits in |v|. Zero has one digit.
func Digits(v *big.Int) int {
	if v == nil {
		return 0
	}
	s := new(big.Int).Abs(v).Text(10)
	return len(s)
}
