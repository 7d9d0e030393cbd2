package factorial

import (
	"math/big"
	"strings"

	"github.com/jsamuelsen11/factorial-service/internal/domain"
)

// Result is a completed calculation.
type Result struct {
	Input  *big.Int
	Value  *big.Int
	Digits int
}

// NewResult computes n! and wraps it with its input and digit count.
func NewResult(n *big.Int) (*Result, error) {
	v, err := Compute(n)
	if err != nil {
		return nil, err
	}
	return &Result{
		Input:  new(big.Int).Set(n),
		Value:  v,
		Digits: Digits(v),
	}, nil
}

// ParseInput parses raw as a base-10 integer with an optional sign,
// ignoring surrounding whitespace. Failures are reported as a
// *domain.ValidationError on field "number" attributed to source.
func ParseInput(raw, source string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(strings.TrimSpace(raw), 10)
	if !ok {
		return nil, &domain.ValidationError{
			Source: source,
			Code:   domain.CodeInvalidNumber,
			Fields: map[string]string{"number": domain.MsgNotInteger},
		}
	}
	return n, nil
}
