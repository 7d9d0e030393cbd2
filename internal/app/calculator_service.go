package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/factorial-service/internal/domain/factorial"
	"github.com/jsamuelsen11/factorial-service/internal/ports"
)

var _ ports.CalculatorService = (*CalculatorService)(nil)

// CalculatorService implements ports.CalculatorService for the calculator web.
// It validates raw form input locally and delegates the computation to the
// factorial API through the FactorialClient port.
type CalculatorService struct {
	client ports.FactorialClient
	logger *slog.Logger
}

// NewCalculatorService creates a CalculatorService. A nil logger discards output.
func NewCalculatorService(client ports.FactorialClient, logger *slog.Logger) *CalculatorService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &CalculatorService{client: client, logger: logger}
}

// Calculate parses raw as a base-10 integer and returns its factorial as
// computed by the API. Parse failures never reach the API.
func (s *CalculatorService) Calculate(ctx context.Context, raw string) (*factorial.Result, error) {
	n, err := factorial.ParseInput(raw, "form")
	if err != nil {
		s.logger.InfoContext(ctx, "rejected calculator input", slog.String("input", raw))
		return nil, err
	}

	s.logger.InfoContext(ctx, "requesting factorial", slog.String("number", n.String()))

	res, err := s.client.Factorial(ctx, n)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to calculate factorial",
			slog.String("operation", "Calculate"),
			slog.String("number", n.String()),
			slog.Any("error", err),
		)
		return nil, err
	}

	return res, nil
}
