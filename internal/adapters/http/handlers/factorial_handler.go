package handlers

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/factorial-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/factorial-service/internal/domain/factorial"
	"github.com/jsamuelsen11/factorial-service/internal/ports"
)

// FactorialHandler serves the factorial API.
type FactorialHandler struct {
	service ports.FactorialService
}

// NewFactorialHandler creates a FactorialHandler backed by service.
func NewFactorialHandler(service ports.FactorialService) *FactorialHandler {
	return &FactorialHandler{service: service}
}

// GetFactorial handles GET /factorial/{number}.
func (h *FactorialHandler) GetFactorial(w http.ResponseWriter, r *http.Request) {
	n, err := factorial.ParseInput(numberParam(r), "path")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	res, err := h.service.Compute(r.Context(), n)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToFactorialResponse(res))
}

// numberParam returns the decoded {number} segment. chi matches against
// RawPath when the client percent-encoded the path, so "%2D5" arrives here
// undecoded. A malformed escape is returned as is and fails parsing.
func numberParam(r *http.Request) string {
	raw := chi.URLParam(r, "number")
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}
