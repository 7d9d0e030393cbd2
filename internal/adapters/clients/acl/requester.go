package acl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/factorial-service/internal/domain"
	"github.com/jsamuelsen11/factorial-service/internal/platform/httpclient"
)

// Requester runs a request through httpclient.Client and owns the rest of
// its lifecycle: status check, error translation, JSON decoding and closing
// the body.
type Requester struct {
	client *httpclient.Client
	logger *slog.Logger
}

// NewRequester creates a Requester backed by the given HTTP client and logger.
func NewRequester(client *httpclient.Client, logger *slog.Logger) *Requester {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Requester{client: client, logger: logger}
}

// Get sends GET {base}{path} and decodes a 200 JSON body into respBody.
//
// Non-200 responses go through TranslateHTTPError. Failures with no
// response at all (transport errors, open circuit breaker, exhausted
// retries, rate-limit waits cut short) wrap domain.ErrUnavailable.
func (r *Requester) Get(ctx context.Context, path string, respBody any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.client.BaseURL()+path, http.NoBody)
	if err != nil {
		return fmt.Errorf("creating GET request for %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(ctx, req)
	if resp != nil {
		defer r.closeBody(ctx, resp)
	}
	if err != nil && resp == nil {
		r.logger.ErrorContext(ctx, "request failed",
			slog.String("url", req.URL.String()),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("%s %s: %w: %w", r.client.ServiceName(), path, domain.ErrUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		r.logger.WarnContext(ctx, "unexpected status",
			slog.String("url", req.URL.String()),
			slog.Int("status", resp.StatusCode),
		)
		return TranslateHTTPError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(respBody); err != nil {
		return fmt.Errorf("decoding response from %s: %w: %w", path, domain.ErrUnavailable, err)
	}
	return nil
}

// BaseURL returns the base URL from the underlying HTTP client.
func (r *Requester) BaseURL() string {
	return r.client.BaseURL()
}

// CircuitBreakerState returns the underlying client's breaker state.
func (r *Requester) CircuitBreakerState() string {
	return r.client.CircuitBreakerState()
}

// ServiceName returns the downstream name the client was built with.
func (r *Requester) ServiceName() string {
	return r.client.ServiceName()
}

func (r *Requester) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		r.logger.WarnContext(ctx, "failed to close response body",
			slog.String("error", err.Error()),
		)
	}
}
