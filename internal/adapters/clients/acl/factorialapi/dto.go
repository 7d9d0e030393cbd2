// Package factorialapi holds the factorial API's wire format and its
// translation to domain values.
package factorialapi

import "math/big"

// ResultDTO matches the body of GET /factorial/{number}. The API writes
// arbitrary-length JSON numbers, which *big.Int decodes directly.
type ResultDTO struct {
	Number    *big.Int `json:"number"`
	Factorial *big.Int `json:"factorial"`
	Digits    int      `json:"digits"`
}
