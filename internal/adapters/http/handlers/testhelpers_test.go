package handlers_test

import (
	"context"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/factorial-service/internal/domain/factorial"
)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}

// bigArg matches a *big.Int mock argument by value.
func bigArg(want int64) any {
	return mock.MatchedBy(func(n *big.Int) bool {
		return n != nil && n.Cmp(big.NewInt(want)) == 0
	})
}

func mustResult(t *testing.T, n int64) *factorial.Result {
	t.Helper()
	res, err := factorial.NewResult(big.NewInt(n))
	if err != nil {
		t.Fatalf("NewResult(%d) error = %v", n, err)
	}
	return res
}
