// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/factorial-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/factorial-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/factorial-service/internal/domain"
)

// NewAPIRouter builds the factorial API's routes. Middleware is applied
// globally in the order given.
func NewAPIRouter(
	factorialHandler *handlers.FactorialHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := newBaseRouter(healthHandler, middlewares)

	r.Get("/factorial/{number}", factorialHandler.GetFactorial)

	return r
}

// NewWebRouter builds the calculator web's routes.
func NewWebRouter(
	calculatorHandler *handlers.CalculatorHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := newBaseRouter(healthHandler, middlewares)

	r.Get("/", calculatorHandler.Index)
	r.Post("/", calculatorHandler.Calculate)

	return r
}

// newBaseRouter registers the middleware stack, the health probes and
// problem+json responses for unknown routes and methods.
func newBaseRouter(healthHandler *handlers.HealthHandler, middlewares []func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		dto.WriteErrorResponse(w, r, domain.ErrNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		dto.WriteProblem(w, r, dto.ErrorResponse{
			Type:     "about:blank",
			Title:    http.StatusText(http.StatusMethodNotAllowed),
			Status:   http.StatusMethodNotAllowed,
			Detail:   r.Method + " is not supported for " + r.URL.Path,
			Instance: r.RequestURI,
		})
	})

	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	return r
}
