package httpclient_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/factorial-service/internal/platform/config"
	"github.com/jsamuelsen11/factorial-service/internal/platform/httpclient"
)

func testConfig(baseURL string) *config.ClientConfig {
	return &config.ClientConfig{
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     3,
			InitialInterval: 5 * time.Millisecond,
			MaxInterval:     50 * time.Millisecond,
			Multiplier:      2.0,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   3,
			Timeout:       time.Second,
			HalfOpenLimit: 1,
		},
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func newGet(t *testing.T, ctx context.Context, url string) *http.Request {
	t.Helper()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	require.NoError(t, err)
	return req
}

// closeIfPresent tolerates the nil response returned on breaker rejection.
func closeIfPresent(resp *http.Response) {
	if resp != nil {
		_ = resp.Body.Close()
	}
}

func TestDo_Success(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"number":5,"factorial":120,"digits":3}`))
	}))
	t.Cleanup(srv.Close)

	client := httpclient.New(testConfig(srv.URL), "factorial-api", nil, testLogger())

	resp, err := client.Do(context.Background(), newGet(t, context.Background(), srv.URL+"/factorial/5"))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"number":5,"factorial":120,"digits":3}`, string(body))
}

func TestDo_RetryOnRetryableStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		failStatus   int
		failCount    int32
		wantAttempts int32
	}{
		{name: "5xx retries until success", failStatus: http.StatusBadGateway, failCount: 2, wantAttempts: 3},
		{name: "429 retries until success", failStatus: http.StatusTooManyRequests, failCount: 1, wantAttempts: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var count atomic.Int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				if count.Add(1) <= tt.failCount {
					w.WriteHeader(tt.failStatus)
					return
				}
				w.WriteHeader(http.StatusOK)
			}))
			t.Cleanup(srv.Close)

			client := httpclient.New(testConfig(srv.URL), "factorial-api", nil, testLogger())

			resp, err := client.Do(context.Background(), newGet(t, context.Background(), srv.URL+"/factorial/3"))
			require.NoError(t, err)
			defer func() { _ = resp.Body.Close() }()

			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, tt.wantAttempts, count.Load())
		})
	}
}

func TestDo_NoRetryOnBadRequest(t *testing.T) {
	t.Parallel()

	var count atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		count.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	t.Cleanup(srv.Close)

	client := httpclient.New(testConfig(srv.URL), "factorial-api", nil, testLogger())

	resp, err := client.Do(context.Background(), newGet(t, context.Background(), srv.URL+"/factorial/-1"))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, int32(1), count.Load(), "4xx must not be retried")
}

func TestDo_MaxRetriesExhausted(t *testing.T) {
	t.Parallel()

	var count atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		count.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("unavailable"))
	}))
	t.Cleanup(srv.Close)

	client := httpclient.New(testConfig(srv.URL), "factorial-api", nil, testLogger())

	resp, err := client.Do(context.Background(), newGet(t, context.Background(), srv.URL+"/factorial/7"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 503 from factorial-api")
	assert.Equal(t, int32(3), count.Load())

	require.NotNil(t, resp, "last response must be returned with its body")
	defer func() { _ = resp.Body.Close() }()
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "unavailable", string(body))
}

func TestDo_RequestBodyPreservedAcrossRetries(t *testing.T) {
	t.Parallel()

	var (
		mu     sync.Mutex
		bodies []string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		mu.Lock()
		bodies = append(bodies, string(b))
		n := len(bodies)
		mu.Unlock()
		if n == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	client := httpclient.New(testConfig(srv.URL), "factorial-api", nil, testLogger())

	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, srv.URL+"/", strings.NewReader("number=4"))
	require.NoError(t, err)

	resp, err := client.Do(context.Background(), req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"number=4", "number=4"}, bodies)
}

func TestDo_HeaderInjection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		ctx        func() context.Context
		wantReqID  string
		wantCorrID string
	}{
		{
			name: "ids from context",
			ctx: func() context.Context {
				ctx := httpclient.WithRequestID(context.Background(), "req-123")
				return httpclient.WithCorrelationID(ctx, "corr-456")
			},
			wantReqID:  "req-123",
			wantCorrID: "corr-456",
		},
		{
			name: "no ids",
			ctx:  context.Background,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var gotReqID, gotCorrID atomic.Value
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotReqID.Store(r.Header.Get("X-Request-ID"))
				gotCorrID.Store(r.Header.Get("X-Correlation-ID"))
				w.WriteHeader(http.StatusOK)
			}))
			t.Cleanup(srv.Close)

			client := httpclient.New(testConfig(srv.URL), "factorial-api", nil, testLogger())

			ctx := tt.ctx()
			resp, err := client.Do(ctx, newGet(t, ctx, srv.URL+"/factorial/1"))
			require.NoError(t, err)
			defer func() { _ = resp.Body.Close() }()

			assert.Equal(t, tt.wantReqID, gotReqID.Load())
			assert.Equal(t, tt.wantCorrID, gotCorrID.Load())
		})
	}
}

func TestDo_CircuitBreakerOpens(t *testing.T) {
	t.Parallel()

	var count atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		count.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	cfg := testConfig(srv.URL)
	cfg.CircuitBreaker.MaxFailures = 1
	cfg.Retry.MaxAttempts = 1

	client := httpclient.New(cfg, "factorial-api", nil, testLogger())

	resp, _ := client.Do(context.Background(), newGet(t, context.Background(), srv.URL+"/factorial/2"))
	closeIfPresent(resp)
	assert.Equal(t, "open", client.CircuitBreakerState())

	before := count.Load()
	resp, err := client.Do(context.Background(), newGet(t, context.Background(), srv.URL+"/factorial/2"))
	closeIfPresent(resp)

	require.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, before, count.Load(), "server must not be hit while the breaker is open")
}

func TestDo_CircuitBreakerRecovery(t *testing.T) {
	t.Parallel()

	var failing atomic.Bool
	failing.Store(true)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if failing.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	cfg := testConfig(srv.URL)
	cfg.CircuitBreaker.MaxFailures = 1
	cfg.CircuitBreaker.Timeout = 100 * time.Millisecond
	cfg.Retry.MaxAttempts = 1

	client := httpclient.New(cfg, "factorial-api", nil, testLogger())

	resp, _ := client.Do(context.Background(), newGet(t, context.Background(), srv.URL+"/factorial/2"))
	closeIfPresent(resp)
	require.Equal(t, "open", client.CircuitBreakerState())

	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, "half-open", client.CircuitBreakerState())

	failing.Store(false)

	resp, err := client.Do(context.Background(), newGet(t, context.Background(), srv.URL+"/factorial/2"))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "closed", client.CircuitBreakerState())
}

func TestDo_ContextCancellation(t *testing.T) {
	t.Parallel()

	var count atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		count.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	client := httpclient.New(testConfig(srv.URL), "factorial-api", nil, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	resp, err := client.Do(ctx, newGet(t, ctx, srv.URL+"/factorial/9"))
	closeIfPresent(resp)

	require.Error(t, err)
	assert.Zero(t, count.Load())
}

func TestDo_RateLimitWaitHonoursContext(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	cfg := testConfig(srv.URL)
	cfg.RateLimit = config.RateLimitConfig{RequestsPerSecond: 0.001, BurstSize: 1}

	client := httpclient.New(cfg, "factorial-api", nil, testLogger())

	// The single burst token is consumed here.
	resp, err := client.Do(context.Background(), newGet(t, context.Background(), srv.URL+"/factorial/1"))
	require.NoError(t, err)
	_ = resp.Body.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	resp, err = client.Do(ctx, newGet(t, ctx, srv.URL+"/factorial/1"))
	closeIfPresent(resp)
	require.Error(t, err, "second call must fail waiting for a token")
}

func TestClient_Accessors(t *testing.T) {
	t.Parallel()

	client := httpclient.New(testConfig("http://factorial-api:8000/"), "factorial-api", nil, nil)

	assert.Equal(t, "http://factorial-api:8000", client.BaseURL())
	assert.Equal(t, "factorial-api", client.ServiceName())
	assert.Equal(t, "closed", client.CircuitBreakerState())
}
