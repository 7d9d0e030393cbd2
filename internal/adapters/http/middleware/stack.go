package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/factorial-service/internal/platform/telemetry"
)

// StackOptions configures Stack. Metrics may be nil.
type StackOptions struct {
	Logger  *slog.Logger
	Metrics *telemetry.Metrics
	Timeout time.Duration
}

// Stack returns the inbound middleware shared by both services, outermost
// first, ready for the routers' variadic middleware parameter.
func Stack(opts StackOptions) []func(http.Handler) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return []func(http.Handler) http.Handler{
		Recovery(logger),
		RequestID(),
		CorrelationID(),
		OpenTelemetry(opts.Metrics),
		Logging(logger),
		Timeout(opts.Timeout),
	}
}
