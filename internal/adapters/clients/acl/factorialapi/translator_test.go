package factorialapi_test

import (
	"errors"
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/factorial-service/internal/adapters/clients/acl/factorialapi"
	"github.com/jsamuelsen11/factorial-service/internal/domain"
	"github.com/jsamuelsen11/factorial-service/internal/domain/factorial"
)

func TestToDomainResult(t *testing.T) {
	t.Parallel()

	got, err := factorialapi.ToDomainResult(&factorialapi.ResultDTO{
		Number:    big.NewInt(10),
		Factorial: big.NewInt(3628800),
		Digits:    7,
	}, big.NewInt(10))

	require.NoError(t, err)
	assert.Zero(t, got.Input.Cmp(big.NewInt(10)))
	assert.Zero(t, got.Value.Cmp(big.NewInt(3628800)))
	assert.Equal(t, 7, got.Digits)
}

func TestToDomainResult_RecomputesMissingDigits(t *testing.T) {
	t.Parallel()

	got, err := factorialapi.ToDomainResult(&factorialapi.ResultDTO{
		Number:    big.NewInt(0),
		Factorial: big.NewInt(1),
	}, big.NewInt(0))

	require.NoError(t, err)
	assert.Equal(t, 1, got.Digits)
}

func TestToDomainResult_Malformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		dto  factorialapi.ResultDTO
	}{
		{name: "empty body", dto: factorialapi.ResultDTO{}},
		{name: "missing factorial", dto: factorialapi.ResultDTO{Number: big.NewInt(5)}},
		{name: "different input", dto: factorialapi.ResultDTO{Number: big.NewInt(6), Factorial: big.NewInt(720)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := factorialapi.ToDomainResult(&tt.dto, big.NewInt(5))
			assert.ErrorIs(t, err, factorialapi.ErrMalformedResult)
		})
	}
}

func TestToDomainError(t *testing.T) {
	t.Parallel()

	n := big.NewInt(-4)

	t.Run("invalid input code restores engine error", func(t *testing.T) {
		t.Parallel()

		err := factorialapi.ToDomainError(&domain.ValidationError{
			Code:   factorial.CodeInvalidInput,
			Fields: map[string]string{"number": "negative"},
		}, n)

		var ierr *factorial.InvalidInputError
		require.ErrorAs(t, err, &ierr)
		assert.Zero(t, ierr.N.Cmp(n))
		assert.NotSame(t, n, ierr.N)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("other errors pass through", func(t *testing.T) {
		t.Parallel()

		tooLarge := &domain.ValidationError{Code: domain.CodeInputTooLarge}
		unavailable := fmt.Errorf("factorial-api: %w", domain.ErrUnavailable)

		assert.Same(t, tooLarge, factorialapi.ToDomainError(tooLarge, n))
		assert.Equal(t, unavailable, factorialapi.ToDomainError(unavailable, n))
		assert.False(t, errors.Is(factorialapi.ToDomainError(tooLarge, n), factorial.ErrInvalidInput))
	})
}
