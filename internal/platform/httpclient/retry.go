package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/jsamuelsen11/factorial-service/internal/platform/logging"
)

// jitterFraction is the backoff randomization factor (±25%).
const jitterFraction = 0.25

// doWithRetry sends req, retrying transport errors and retryable statuses
// with exponential backoff. The body is buffered so every attempt can replay
// it. The final response is written to resp rather than returned so the
// bodyclose linter does not flag callers; the caller closes it.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request, resp **http.Response) error {
	if c.retryCfg.maxAttempts <= 0 {
		return fmt.Errorf("httpclient: maxAttempts must be >= 1, got %d", c.retryCfg.maxAttempts)
	}

	bodyBytes, err := bufferRequestBody(req)
	if err != nil {
		return err
	}

	attempt := 0
	op := func() error {
		attempt++
		resetRequestBody(req, bodyBytes)

		r, err := c.httpClient.Do(req)
		if err != nil {
			if !isRetryable(err) {
				return backoff.Permanent(err)
			}
			return err
		}

		if !isRetryableStatus(r.StatusCode) {
			*resp = r
			return nil
		}

		statusErr := fmt.Errorf("HTTP %d from %s", r.StatusCode, c.serviceName)
		if attempt >= c.retryCfg.maxAttempts {
			// Hand the last response to the caller with its body intact.
			*resp = r
			return backoff.Permanent(statusErr)
		}
		drainResponseBody(r)
		return statusErr
	}

	notify := func(err error, delay time.Duration) {
		logging.FromContext(ctx).WarnContext(ctx, "retrying HTTP request",
			slog.String("operation", "httpclient.Do"),
			slog.String("method", req.Method),
			slog.String("url", req.URL.String()),
			slog.String("peer_service", c.serviceName),
			slog.Int("attempt", attempt+1),
			slog.Int("max_attempts", c.retryCfg.maxAttempts),
			slog.Duration("backoff", delay),
			slog.Any("error", err),
		)
	}

	return backoff.RetryNotify(op, c.newBackOff(ctx), notify)
}

// newBackOff builds the policy for one Do call: exponential growth from
// initialInterval by multiplier, capped at maxInterval, ±25% jitter, at most
// maxAttempts-1 retries, stopped early by ctx.
func (c *Client) newBackOff(ctx context.Context) backoff.BackOffContext {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = c.retryCfg.initialInterval
	bo.MaxInterval = c.retryCfg.maxInterval
	bo.Multiplier = c.retryCfg.multiplier
	bo.RandomizationFactor = jitterFraction
	bo.MaxElapsedTime = 0

	retries := uint64(0)
	if c.retryCfg.maxAttempts > 1 {
		retries = uint64(c.retryCfg.maxAttempts - 1)
	}
	return backoff.WithContext(backoff.WithMaxRetries(bo, retries), ctx)
}

func bufferRequestBody(req *http.Request) ([]byte, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return nil, nil
	}

	bodyBytes, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	_ = req.Body.Close()

	return bodyBytes, nil
}

func resetRequestBody(req *http.Request, bodyBytes []byte) {
	if bodyBytes == nil {
		return
	}
	req.Body = io.NopCloser(bytes.NewReader(bodyBytes))
	req.ContentLength = int64(len(bodyBytes))
}

// drainResponseBody discards and closes the body so the connection can be reused.
func drainResponseBody(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

// isRetryable reports whether a transport error is worth another attempt.
// Cancellation and deadlines are final; everything else is retried.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// isRetryableStatus reports 429 and 5xx.
func isRetryableStatus(statusCode int) bool {
	return statusCode == http.StatusTooManyRequests || statusCode >= http.StatusInternalServerError
}
