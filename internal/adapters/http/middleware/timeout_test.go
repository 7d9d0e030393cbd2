package middleware_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/factorial-service/internal/adapters/http/middleware"
)

func TestTimeout_FastHandlerResponseIsCopied(t *testing.T) {
	t.Parallel()

	h := middleware.Timeout(time.Second)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"code":"invalid_number"}`))
	}))

	rec := serve(h, http.MethodGet, "/factorial/x", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"code":"invalid_number"}`, rec.Body.String())
}

func TestTimeout_ImplicitOKAndEmptyResponse(t *testing.T) {
	t.Parallel()

	h := middleware.Timeout(time.Second)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))
	rec := serve(h, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())

	h = middleware.Timeout(time.Second)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	rec = serve(h, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestTimeout_SlowHandlerGetsProblem(t *testing.T) {
	t.Parallel()

	writeErr := make(chan error, 1)
	h := middleware.Timeout(20 * time.Millisecond)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
		// Give the middleware time to answer before the late write.
		time.Sleep(20 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("too late"))
		writeErr <- err
	}))

	rec := serve(h, http.MethodGet, "/factorial/100000", nil)

	require.Equal(t, http.StatusGatewayTimeout, rec.Code)
	assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Gateway Timeout", body["title"])
	assert.Equal(t, "request exceeded 20ms", body["detail"])
	assert.Equal(t, "/factorial/100000", body["instance"])

	select {
	case err := <-writeErr:
		assert.True(t, errors.Is(err, http.ErrHandlerTimeout))
	case <-time.After(time.Second):
		t.Fatal("handler never attempted its late write")
	}
	assert.NotContains(t, rec.Body.String(), "too late")
}

func TestTimeout_ContextHasDeadline(t *testing.T) {
	t.Parallel()

	var ok bool
	h := middleware.Timeout(time.Second)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		_, ok = r.Context().Deadline()
	}))

	serve(h, http.MethodGet, "/", nil)
	assert.True(t, ok)
}

func TestTimeout_NonPositiveDisables(t *testing.T) {
	t.Parallel()

	for _, d := range []time.Duration{0, -time.Second} {
		var hasDeadline bool
		inner := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			_, hasDeadline = r.Context().Deadline()
		})

		serve(middleware.Timeout(d)(inner), http.MethodGet, "/", nil)
		assert.False(t, hasDeadline, "timeout %s", d)
	}
}

func TestTimeout_PanicReachesCaller(t *testing.T) {
	t.Parallel()

	h := middleware.Timeout(time.Second)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("nil input")
	}))

	assert.PanicsWithValue(t, "nil input", func() {
		serve(h, http.MethodGet, "/", nil)
	})
}

func TestTimeout_UnderRecovery(t *testing.T) {
	t.Parallel()

	h := middleware.Recovery(discardLogger())(middleware.Timeout(time.Second)(
		http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("boom") }),
	))

	assert.Equal(t, http.StatusInternalServerError, serve(h, http.MethodGet, "/", nil).Code)
}
