// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"log/slog"
	"math/big"
	"time"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/factorial-service/internal/domain"
	"github.com/jsamuelsen11/factorial-service/internal/domain/factorial"
	"github.com/jsamuelsen11/factorial-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/factorial-service/internal/ports"
)

var _ ports.FactorialService = (*FactorialService)(nil)

// Result labels for factorial.compute.total.
const (
	resultSuccess      = "success"
	resultInvalidInput = "invalid_input"
	resultTooLarge     = "too_large"
)

// FactorialService implements ports.FactorialService for the factorial API.
// It guards the engine with an upper input bound, logs each calculation and
// records compute metrics.
type FactorialService struct {
	maxInput *big.Int // nil means unbounded
	metrics  *telemetry.Metrics
	logger   *slog.Logger
}

// NewFactorialService creates a FactorialService. maxInput <= 0 disables the
// upper bound. metrics and logger may be nil.
func NewFactorialService(maxInput int64, metrics *telemetry.Metrics, logger *slog.Logger) *FactorialService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &FactorialService{metrics: metrics, logger: logger}
	if maxInput > 0 {
		s.maxInput = big.NewInt(maxInput)
	}
	return s
}

// Compute returns n! for the API. Inputs above the configured bound are
// rejected with a *domain.ValidationError before any work is done; negative
// inputs surface the engine's *factorial.InvalidInputError unchanged.
func (s *FactorialService) Compute(ctx context.Context, n *big.Int) (*factorial.Result, error) {
	s.logger.InfoContext(ctx, "calculating factorial", slog.String("number", n.String()))

	start := time.Now()

	if s.maxInput != nil && n != nil && n.Cmp(s.maxInput) > 0 {
		err := &domain.ValidationError{
			Source: "path",
			Code:   domain.CodeInputTooLarge,
			Fields: map[string]string{"number": "must not exceed " + s.maxInput.String()},
		}
		s.logger.WarnContext(ctx, "factorial input rejected",
			slog.String("operation", "Compute"),
			slog.String("number", n.String()),
			slog.Any("error", err),
		)
		s.record(ctx, start, resultTooLarge, 0)
		return nil, err
	}

	res, err := factorial.NewResult(n)
	if err != nil {
		s.logger.WarnContext(ctx, "factorial input rejected",
			slog.String("operation", "Compute"),
			slog.String("number", n.String()),
			slog.Any("error", err),
		)
		label := resultInvalidInput
		if !errors.Is(err, factorial.ErrInvalidInput) {
			label = "error"
		}
		s.record(ctx, start, label, 0)
		return nil, err
	}

	s.logger.DebugContext(ctx, "factorial calculated",
		slog.String("number", n.String()),
		slog.Int("digits", res.Digits),
		slog.Duration("elapsed", time.Since(start)),
	)
	s.record(ctx, start, resultSuccess, res.Digits)

	return res, nil
}

func (s *FactorialService) record(ctx context.Context, start time.Time, result string, digits int) {
	if s.metrics == nil {
		return
	}

	attrs := metric.WithAttributes(s.metrics.ServiceAttr(), telemetry.AttrResult.String(result))
	s.metrics.FactorialComputeDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	s.metrics.FactorialComputeTotal.Add(ctx, 1, attrs)
	if result == resultSuccess {
		s.metrics.FactorialResultDigits.Record(ctx, int64(digits), metric.WithAttributes(s.metrics.ServiceAttr()))
	}
}
